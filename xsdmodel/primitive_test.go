package xsdmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cognitoiq/json2xsd/xsdmodel"
)

func TestTypeNameKnownKinds(t *testing.T) {
	cases := map[xsdmodel.PrimitiveKind]string{
		xsdmodel.KindNull:          "nullType",
		xsdmodel.KindBool:          "boolean",
		xsdmodel.KindInteger:       "integer",
		xsdmodel.KindDouble:        "decimal",
		xsdmodel.KindString:        "string",
		xsdmodel.KindDate:          "dateType",
		xsdmodel.KindTime:          "timeType",
		xsdmodel.KindDateTime:      "dateTimeType",
		xsdmodel.KindURI:           "uriType",
		xsdmodel.KindIntegerString: "integerStringType",
		xsdmodel.KindBoolString:    "booleanStringType",
	}
	for kind, want := range cases {
		require.Equal(t, want, xsdmodel.TypeName(kind))
	}
}

func TestTypeNameAnyAndNoneAreEmpty(t *testing.T) {
	require.Empty(t, xsdmodel.TypeName(xsdmodel.KindAny))
	require.Empty(t, xsdmodel.TypeName(xsdmodel.KindNone))
}

func TestKindByTypeNameRoundTripsBuiltins(t *testing.T) {
	cases := map[string]xsdmodel.PrimitiveKind{
		"xsd:boolean": xsdmodel.KindBool,
		"xsd:integer": xsdmodel.KindInteger,
		"xsd:decimal": xsdmodel.KindDouble,
		"xsd:string":  xsdmodel.KindString,
	}
	for name, want := range cases {
		got, ok := xsdmodel.KindByTypeName(name)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestKindByTypeNameRoundTripsBasicTypesLibrary(t *testing.T) {
	for _, name := range xsdmodel.BasicTypeNames {
		_, ok := xsdmodel.KindByTypeName(name)
		require.True(t, ok, "expected %s to classify", name)
	}
}

func TestKindByTypeNameUnknownNameIsNotOk(t *testing.T) {
	_, ok := xsdmodel.KindByTypeName("complexType1")
	require.False(t, ok)
}

func TestKindByTypeNameHasNoAnyOrNoneEntry(t *testing.T) {
	for _, kind := range []xsdmodel.PrimitiveKind{xsdmodel.KindAny, xsdmodel.KindNone} {
		found := false
		for _, name := range append([]string{"xsd:boolean", "xsd:integer", "xsd:decimal", "xsd:string"}, xsdmodel.BasicTypeNames...) {
			got, ok := xsdmodel.KindByTypeName(name)
			if ok && got == kind {
				found = true
			}
		}
		require.False(t, found)
	}
}

func TestStringUnknownKindIsUnknown(t *testing.T) {
	require.Equal(t, "unknown", xsdmodel.PrimitiveKind(999).String())
}
