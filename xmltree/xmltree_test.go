package xmltree

import (
	"encoding/xml"
	"testing"
)

var doc = []byte(`<?xml version="1.0" encoding="utf-8"?>
<xsd:schema xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <xsd:simpleType name="dateType">
    <xsd:union>
      <xsd:simpleType><xsd:restriction base="xsd:date"/></xsd:simpleType>
    </xsd:union>
  </xsd:simpleType>
  <xsd:complexType name="complexType1">
    <xsd:all>
      <xsd:element name="a" type="xsd:integer"/>
      <xsd:element name="b" type="xsd:string" minOccurs="0"/>
    </xsd:all>
  </xsd:complexType>
  <xsd:complexType name="complexType2" xmlns:ext="urn:example:ext">
    <xsd:sequence>
      <ext:element name="xsItem" type="xsd:integer" maxOccurs="unbounded" minOccurs="0"/>
    </xsd:sequence>
  </xsd:complexType>
  <xsd:element name="Root" type="complexType1"/>
</xsd:schema>`)

func TestParse(t *testing.T) {
	var buf struct {
		Data []byte `xml:",innerxml"`
	}
	el, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	el.walk(func(el *Element) {
		el.walk(func(el *Element) {
			if err := el.Unmarshal(&buf); err != nil {
				t.Error(err)
			}
			t.Logf("%s", buf.Data)
		})
	})
}

func TestSearch(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}

	result := root.Search("http://www.w3.org/2001/XMLSchema", "complexType")
	if len(result) != 2 {
		t.Errorf(`Search("...XMLSchema", "complexType") = %d results, want 2`, len(result))
	}
}

func TestNSResolution(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}

	for _, el := range root.Search("http://www.w3.org/2001/XMLSchema", "schema") {
		if name, ok := el.ResolveNS("xsd:foo"); !ok {
			t.Errorf("failed to resolve xsd: prefix at <%s>", el.Name.Local)
		} else if name.Space != "http://www.w3.org/2001/XMLSchema" {
			t.Errorf("resolved xsd:foo to %q, want XMLSchema namespace", name.Space)
		}
	}

	extScoped := root.SearchFunc(func(el *Element) bool {
		if (el.Name != xml.Name{Space: "http://www.w3.org/2001/XMLSchema", Local: "complexType"}) {
			return false
		}
		return el.Attr("", "name") == "complexType2"
	})
	if len(extScoped) != 1 {
		t.Fatalf("expected to find complexType2, found %d matches", len(extScoped))
	}
	child := extScoped[0].Children[0].Children[0]
	name := child.Resolve("ext:element")
	if name.Space != "urn:example:ext" {
		t.Errorf("Resolve(ext:element) at <%s>: got space %q, want urn:example:ext",
			child.Name.Local, name.Space)
	}
}

func TestString(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	s := root.String()
	if len(s) < 5 {
		t.Error(s)
	}
}
