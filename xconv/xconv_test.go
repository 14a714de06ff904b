package xconv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cognitoiq/json2xsd/format"
	"github.com/cognitoiq/json2xsd/lower"
	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xconv"
	"github.com/cognitoiq/json2xsd/xmltree"
	"github.com/cognitoiq/json2xsd/xsdindex"
)

func build(t *testing.T, rootTag string, root typegraph.TypeRef) *xconv.Converter {
	t.Helper()
	schema, err := lower.Render(rootTag, root)
	require.NoError(t, err)
	idx := xsdindex.Build(schema.Root())
	return xconv.New(idx, format.New())
}

func TestConvertPrimitiveClassRoundTrips(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
		typegraph.Prop{Name: "b", Type: typegraph.Primitive(typegraph.KindString), Optional: true},
	)
	c := build(t, "Root", root)

	value := map[string]any{"a": int64(42), "b": "hello"}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)
	require.Len(t, xml.Children, 2)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": int64(42), "b": "hello"}, back)
}

func TestConvertDropsOptionalPropertyWhenAbsent(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
		typegraph.Prop{Name: "b", Type: typegraph.Primitive(typegraph.KindString), Optional: true},
	)
	c := build(t, "Root", root)

	value := map[string]any{"a": int64(1)}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)
	require.Len(t, xml.Children, 1)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"a": int64(1)}, back)
}

func TestConvertRequiredPropertyMissingIsMalformed(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
	)
	c := build(t, "Root", root)

	_, err := c.ToXML("Root", map[string]any{}, "root.xsd")
	require.Error(t, err)
}

func TestConvertArrayOfPrimitivesRoundTrips(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "xs", Type: typegraph.Array(typegraph.Primitive(typegraph.KindInteger))},
	)
	c := build(t, "Root", root)

	value := map[string]any{"xs": []any{int64(1), int64(2), int64(3)}}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertEmptyArrayRoundTrips(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "xs", Type: typegraph.Array(typegraph.Primitive(typegraph.KindInteger))},
	)
	c := build(t, "Root", root)

	value := map[string]any{"xs": []any{}}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertPrimitiveUnionPicksFirstMatchingMember(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "id", Type: typegraph.Union(
			typegraph.Primitive(typegraph.KindInteger),
			typegraph.Primitive(typegraph.KindString),
		)},
	)
	c := build(t, "Root", root)

	asInt, err := c.ToXML("Root", map[string]any{"id": int64(7)}, "root.xsd")
	require.NoError(t, err)
	back, err := c.FromXML("Root", asInt)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"id": int64(7)}, back)

	asStr, err := c.ToXML("Root", map[string]any{"id": "abc"}, "root.xsd")
	require.NoError(t, err)
	back, err = c.FromXML("Root", asStr)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"id": "abc"}, back)
}

func TestConvertUnionRejectsValueNoMemberAccepts(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "id", Type: typegraph.Union(
			typegraph.Primitive(typegraph.KindInteger),
			typegraph.Primitive(typegraph.KindBool),
		)},
	)
	c := build(t, "Root", root)

	_, err := c.ToXML("Root", map[string]any{"id": "not-a-number-or-bool"}, "root.xsd")
	require.Error(t, err)
}

func TestConvertTransformedStringRoundTripsOriginalText(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "when", Type: typegraph.TransformedString(typegraph.FormatDate)},
	)
	c := build(t, "Root", root)

	value := map[string]any{"when": "2020-01-15"}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertNullPropertyRoundTrips(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindNull)},
	)
	c := build(t, "Root", root)

	value := map[string]any{"a": nil}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertIntegerStringNormalizesToStringOnJSONOut(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "code", Type: typegraph.TransformedString(typegraph.FormatIntegerString)},
	)
	c := build(t, "Root", root)

	xml, err := c.ToXML("Root", map[string]any{"code": "007"}, "root.xsd")
	require.NoError(t, err)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"code": "7"}, back)
}

func TestConvertEmptyClassRoundTrips(t *testing.T) {
	root := typegraph.Class()
	c := build(t, "Root", root)

	value := map[string]any{}
	xml, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)
	require.Empty(t, xml.Children)

	back, err := c.FromXML("Root", xml)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertSurvivesMarshalParseRoundTrip(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
		typegraph.Prop{Name: "xs", Type: typegraph.Array(typegraph.Primitive(typegraph.KindString))},
	)
	c := build(t, "Root", root)

	value := map[string]any{"a": int64(1), "xs": []any{"x", "y"}}
	built, err := c.ToXML("Root", value, "root.xsd")
	require.NoError(t, err)

	reparsed, err := xmltree.Parse(xmltree.Marshal(built))
	require.NoError(t, err)
	require.True(t, xmltree.Equal(built, reparsed))

	back, err := c.FromXML("Root", reparsed)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestConvertOutermostElementCarriesSchemaLocation(t *testing.T) {
	root := typegraph.Class(
		typegraph.Prop{Name: "a", Type: typegraph.Primitive(typegraph.KindInteger)},
	)
	c := build(t, "Root", root)

	xml, err := c.ToXML("Root", map[string]any{"a": int64(1)}, "root.xsd")
	require.NoError(t, err)
	require.Equal(t, "root.xsd", xml.Attr("http://www.w3.org/2001/XMLSchema-instance", "noNamespaceSchemaLocation"))
}
