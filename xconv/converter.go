// Package xconv implements the Format Converter (spec component C7): a
// bidirectional JSON<->XML walker driven step-for-step by an
// *xsdindex.Index, so the XML produced or consumed always matches the
// shape the index was built from.
package xconv

import (
	"bytes"
	"encoding/xml"
	"sort"

	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xmltree"
	"github.com/cognitoiq/json2xsd/xsderr"
	"github.com/cognitoiq/json2xsd/xsdindex"
	"github.com/cognitoiq/json2xsd/xsdmodel"
)

// instanceNS is the XML Schema Instance namespace used for the
// no-namespace schema location hint on the outermost element.
const instanceNS = "http://www.w3.org/2001/XMLSchema-instance"

// Converter walks a document against an *xsdindex.Index, coercing
// primitive values through rec.
type Converter struct {
	idx *xsdindex.Index
	rec typegraph.FormatRecognizer
}

// New builds a Converter. rec may be nil, in which case every
// transformed-string value (date/time/dateTime/uri) is rejected as
// malformed input.
func New(idx *xsdindex.Index, rec typegraph.FormatRecognizer) *Converter {
	return &Converter{idx: idx, rec: rec}
}

// ToXML renders value, a decoded JSON document, as an XML document with
// root element rootTag, validating against the schema at xsdFileName.
func (c *Converter) ToXML(rootTag string, value any, xsdFileName string) (*xmltree.Element, error) {
	scope := xmltree.Scope{}.Bind("xsd", instanceNS)
	root := xmltree.NewElement(xml.Name{Local: rootTag}, scope)
	root.SetAttr(instanceNS, "noNamespaceSchemaLocation", xsdFileName)
	if err := c.buildElement(root, rootTag, value); err != nil {
		return nil, err
	}
	return root, nil
}

// FromXML parses root, an XML document with root element name rootTag,
// back into a JSON-shaped value (map[string]any / []any / primitives).
func (c *Converter) FromXML(rootTag string, root *xmltree.Element) (any, error) {
	return c.parseElement(rootTag, root)
}

func (c *Converter) buildElement(el *xmltree.Element, path string, value any) error {
	if err := c.idx.Ensure(path); err != nil {
		return err
	}
	if members, ok := c.idx.UnionByPath[path]; ok {
		return c.buildUnion(el, path, members, value)
	}
	if arr, ok := c.idx.ArrayByPath[path]; ok {
		return c.buildArray(el, path, arr, value)
	}
	if props, ok := c.idx.ObjectByPath[path]; ok {
		return c.buildClass(el, path, props, value)
	}
	return c.buildPrimitive(el, path, value)
}

func (c *Converter) buildUnion(el *xmltree.Element, path string, members []xsdmodel.PrimitiveKind, value any) error {
	for _, kind := range members {
		if text, ok := toXMLText(c.rec, kind, value); ok {
			setText(el, text)
			return nil
		}
	}
	return xsderr.New(xsderr.MalformedInput, "no union member of "+path+" accepts the given value")
}

func (c *Converter) buildArray(el *xmltree.Element, path string, arr xsdindex.ArrayInfo, value any) error {
	items, ok := value.([]any)
	if !ok {
		return xsderr.New(xsderr.MalformedInput, path+" must be a JSON array")
	}
	itemPath := path + "." + arr.ItemTag
	for _, item := range items {
		child := xmltree.NewElement(xml.Name{Local: arr.ItemTag}, el.Scope)
		el.AppendChild(child)
		if err := c.buildElement(child, itemPath, item); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) buildClass(el *xmltree.Element, path string, props map[string]xsdindex.PropInfo, value any) error {
	obj, ok := value.(map[string]any)
	if !ok {
		return xsderr.New(xsderr.MalformedInput, path+" must be a JSON object")
	}
	for name := range obj {
		if _, declared := props[name]; !declared {
			return xsderr.New(xsderr.MalformedInput, path+"."+name+" is not a declared property")
		}
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := props[name]
		v, present := obj[name]
		if !present {
			if info.Optional {
				continue
			}
			return xsderr.New(xsderr.MalformedInput, path+"."+name+" is required")
		}
		child := xmltree.NewElement(xml.Name{Local: name}, el.Scope)
		el.AppendChild(child)
		if err := c.buildElement(child, path+"."+name, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Converter) buildPrimitive(el *xmltree.Element, path string, value any) error {
	kind, ok := c.idx.PrimitiveAt(path)
	if !ok {
		return xsderr.New(xsderr.InternalError, "no primitive mapping recorded for "+path)
	}
	text, ok := toXMLText(c.rec, kind, value)
	if !ok {
		return xsderr.New(xsderr.MalformedInput, path+" does not accept the given value")
	}
	setText(el, text)
	return nil
}

func (c *Converter) parseElement(path string, el *xmltree.Element) (any, error) {
	if err := c.idx.Ensure(path); err != nil {
		return nil, err
	}
	if members, ok := c.idx.UnionByPath[path]; ok {
		return c.parseUnion(path, el, members)
	}
	if arr, ok := c.idx.ArrayByPath[path]; ok {
		return c.parseArray(path, el, arr)
	}
	if props, ok := c.idx.ObjectByPath[path]; ok {
		return c.parseClass(path, el, props)
	}
	return c.parsePrimitive(path, el)
}

func (c *Converter) parseUnion(path string, el *xmltree.Element, members []xsdmodel.PrimitiveKind) (any, error) {
	text, err := textOf(el)
	if err != nil {
		return nil, xsderr.Wrap(xsderr.MalformedInput, path, err)
	}
	for _, kind := range members {
		if v, ok := fromXMLText(c.rec, kind, text); ok {
			return v, nil
		}
	}
	return nil, xsderr.New(xsderr.MalformedInput, "no union member of "+path+" accepts "+text)
}

func (c *Converter) parseArray(path string, el *xmltree.Element, arr xsdindex.ArrayInfo) (any, error) {
	itemPath := path + "." + arr.ItemTag
	items := []any{}
	for _, child := range el.Children {
		if child.Name.Local != arr.ItemTag {
			continue
		}
		v, err := c.parseElement(itemPath, child)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

func (c *Converter) parseClass(path string, el *xmltree.Element, props map[string]xsdindex.PropInfo) (any, error) {
	byName := make(map[string]*xmltree.Element, len(el.Children))
	for _, child := range el.Children {
		byName[child.Name.Local] = child
	}

	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	obj := make(map[string]any, len(props))
	for _, name := range names {
		info := props[name]
		child, present := byName[name]
		if !present {
			if info.Optional {
				continue
			}
			return nil, xsderr.New(xsderr.MalformedInput, path+"."+name+" is required")
		}
		v, err := c.parseElement(path+"."+name, child)
		if err != nil {
			return nil, err
		}
		obj[name] = v
	}
	return obj, nil
}

func (c *Converter) parsePrimitive(path string, el *xmltree.Element) (any, error) {
	kind, ok := c.idx.PrimitiveAt(path)
	if !ok {
		return nil, xsderr.New(xsderr.InternalError, "no primitive mapping recorded for "+path)
	}
	text, err := textOf(el)
	if err != nil {
		return nil, xsderr.Wrap(xsderr.MalformedInput, path, err)
	}
	v, ok := fromXMLText(c.rec, kind, text)
	if !ok {
		return nil, xsderr.New(xsderr.MalformedInput, path+" does not accept "+text)
	}
	return v, nil
}

// setText assigns s as el's text content, XML-escaping it first. Unlike
// the schema builder (which never produces text nodes), the converter
// constructs leaf elements directly, so it is responsible for the
// escaping xmltree's encoder expects to already be present in Content.
func setText(el *xmltree.Element, s string) {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	el.Content = buf.Bytes()
}

// textOf decodes el's text content via Unmarshal rather than reading
// Content directly, since Content holds raw, still-escaped bytes.
func textOf(el *xmltree.Element) (string, error) {
	var s string
	if err := el.Unmarshal(&s); err != nil {
		return "", err
	}
	return s, nil
}
