package xsdmodel

// PrimitiveKind is the leaf vocabulary shared by the lowerer (which picks
// an XSD type name for a given kind), the indexer (which classifies a
// referenced type name back into a kind after re-parsing the schema),
// and the format converter (which coerces values by kind). It covers the
// typegraph kinds that can appear at a leaf position in an emitted
// schema, with transformed-string split into one kind per format, plus
// the `any`/`none` passthrough cases named in spec §4.8 that never get an
// XSD type of their own.
type PrimitiveKind int

const (
	KindNull PrimitiveKind = iota
	KindBool
	KindInteger
	KindDouble
	KindString
	KindDate
	KindTime
	KindDateTime
	KindURI
	KindIntegerString
	KindBoolString
	KindAny
	KindNone
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "date-time"
	case KindURI:
		return "uri"
	case KindIntegerString:
		return "integer-string"
	case KindBoolString:
		return "bool-string"
	case KindAny:
		return "any"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// typeNameByKind gives the attribute value the Builder should be handed
// for each PrimitiveKind. Built-in base names (boolean, integer, decimal,
// string) are rewritten to carry the xsd: prefix by Builder.Elem; this
// module's own basic-types library names (nullType, dateType, ...) are
// not, since they are not XMLSchema built-ins.
var typeNameByKind = map[PrimitiveKind]string{
	KindNull:          "nullType",
	KindBool:          "boolean",
	KindInteger:       "integer",
	KindDouble:        "decimal",
	KindString:        "string",
	KindDate:          "dateType",
	KindTime:          "timeType",
	KindDateTime:      "dateTimeType",
	KindURI:           "uriType",
	KindIntegerString: "integerStringType",
	KindBoolString:    "booleanStringType",
}

// TypeName returns the (pre-rewrite) attribute value for a leaf kind.
// KindAny and KindNone have no XSD type (they are never lowered; see
// spec §4.3) and return the empty string.
func TypeName(k PrimitiveKind) string { return typeNameByKind[k] }

// kindByTypeName is the inverse mapping the indexer (C6) uses to
// classify a `@type` attribute value it finds in the re-parsed schema,
// per spec §4.6 step 1. Built-ins are matched by their xsd:-prefixed
// canonical form, since that is what Builder.Elem always emits them as.
var kindByTypeName = map[string]PrimitiveKind{
	"xsd:boolean":       KindBool,
	"xsd:integer":       KindInteger,
	"xsd:decimal":       KindDouble,
	"xsd:string":        KindString,
	"nullType":          KindNull,
	"dateType":          KindDate,
	"timeType":          KindTime,
	"dateTimeType":      KindDateTime,
	"uriType":           KindURI,
	"integerStringType": KindIntegerString,
	"booleanStringType": KindBoolString,
}

// KindByTypeName classifies a type name found in a re-parsed schema. Its
// second return value is false when name does not refer to a known
// primitive mapping (spec §4.6 step 1) -- i.e. it may be a complex or
// simple type this module defined itself, which the indexer resolves by
// inspecting the schema rather than this table.
func KindByTypeName(name string) (PrimitiveKind, bool) {
	k, ok := kindByTypeName[name]
	return k, ok
}
