package json2xsd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	json2xsd "github.com/cognitoiq/json2xsd"
	"github.com/cognitoiq/json2xsd/typegraph"
)

// These cases mirror the six concrete worked scenarios: a type graph and
// a representative document go in, a schema and a validating XML
// document come out, end to end through the real pipeline (lower ->
// xsdindex -> xconv), with no package internals touched directly.

func TestRenderScenario1PrimitiveClass(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
		typegraph.Prop{Name: "b", Type: typegraph.Primitive(typegraph.KindString), Optional: true},
	)
	doc := map[string]any{"a": int64(1), "b": "x"}

	xsd, xml, err := json2xsd.Render("Root", root, doc, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xsd), `name="complexType1"`)
	require.Contains(t, string(xsd), `<xsd:element name="Root" type="complexType1"`)
	require.Contains(t, string(xml), `<a>1</a>`)
	require.Contains(t, string(xml), `<b>x</b>`)
}

func TestRenderScenario2ArrayOfPrimitives(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "xs", Type: typegraph.Array(typegraph.Primitive(typegraph.KindInteger))},
	)
	doc := map[string]any{"xs": []any{int64(1), int64(2), int64(3)}}

	_, xml, err := json2xsd.Render("Root", root, doc, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xml), `<xsItem>1</xsItem>`)
	require.Contains(t, string(xml), `<xsItem>2</xsItem>`)
	require.Contains(t, string(xml), `<xsItem>3</xsItem>`)
}

func TestRenderScenario3NameCollision(t *testing.T) {
	address1 := typegraph.Class(typegraph.Prop{Name: "city", Type: typegraph.Primitive(typegraph.KindString)})
	address2 := typegraph.Class(typegraph.Prop{Name: "zip", Type: typegraph.Primitive(typegraph.KindString)})
	person := typegraph.Class(typegraph.Prop{Name: "address", Type: address1})
	out := typegraph.Class(
		typegraph.Prop{Name: "person", Type: person},
		typegraph.Prop{Name: "address", Type: address2},
	)

	xsd, _, err := json2xsd.Render("Out", out, map[string]any{
		"person":  map[string]any{"address": map[string]any{"city": "x"}},
		"address": map[string]any{"zip": "y"},
	}, "out.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xsd), `name="PersonAddress"`)
	require.Contains(t, string(xsd), `name="OutAddress"`)
}

func TestRenderScenario4PrimitiveUnion(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "id", Type: typegraph.Union(
			typegraph.Primitive(typegraph.KindInteger),
			typegraph.Primitive(typegraph.KindString),
		)},
	)

	_, xmlInt, err := json2xsd.Render("Root", root, map[string]any{"id": int64(7)}, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xmlInt), `<id>7</id>`)

	_, xmlStr, err := json2xsd.Render("Root", root, map[string]any{"id": "A"}, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xmlStr), `<id>A</id>`)
}

func TestRenderScenario5DateTransform(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "d", Type: typegraph.TransformedString(typegraph.FormatDate)},
	)

	_, xml, err := json2xsd.Render("Root", root, map[string]any{"d": "01.02.2023"}, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xml), `<d>01.02.2023</d>`)
}

func TestRenderScenario6Null(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "x", Type: typegraph.Primitive(typegraph.KindNull)},
	)

	_, xml, err := json2xsd.Render("Root", root, map[string]any{"x": nil}, "root.xsd")
	require.NoError(t, err)
	require.Contains(t, string(xml), `<x></x>`)
}
