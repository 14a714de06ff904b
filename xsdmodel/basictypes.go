package xsdmodel

// EmitBasicTypes emits, once, the fixed library of derived simple types
// the XSD core relies on to lower transformed-string values (spec §4.2).
// It must be called exactly once per schema, before any complex types are
// lowered, so that ordering invariant (spec §5: basic types, then complex
// types in lowering order, then top-level elements) holds.
func EmitBasicTypes(schema *Builder) {
	dateType(schema)
	timeType(schema)
	dateTimeType(schema)
	simpleStringRestriction(schema, "integerStringType", `(0|-?[1-9]*)`)
	simpleStringRestriction(schema, "booleanStringType", `true|false`)
	simpleStringRestriction(schema, "uriType", `(https?|ftp):\/\/[^{}]+\.[^{}]+`)
	nullType(schema)
}

func dateType(schema *Builder) {
	union := schema.Elem("simpleType", Attr{"name", "dateType"}).Elem("union")
	union.Elem("simpleType").Elem("restriction", Attr{"base", "date"})
	union.Elem("simpleType").Elem("restriction", Attr{"base", "string"},
		Attr{"pattern", `(0?[1-9]|[12][0-9]|3[01])[/.](0?[1-9]|1[0-2])[/.]\d{4}`})
}

func timeType(schema *Builder) {
	union := schema.Elem("simpleType", Attr{"name", "timeType"}).Elem("union")
	union.Elem("simpleType").Elem("restriction", Attr{"base", "time"})
	union.Elem("simpleType").Elem("restriction", Attr{"base", "string"},
		Attr{"pattern", `([0-1]?[0-9]|2[0-3]):([0-5][0-9])`})
	union.Elem("simpleType").Elem("restriction", Attr{"base", "string"},
		Attr{"pattern", `(0?[0-9]|1[01]):([0-5][0-9]) (AM|PM|a\.m\.|p\.m\.)`})
}

// dateTimeType supplements the basic-types table in spec §4.2, which
// named the date/time/date-time/uri transform set in §3 but only spelled
// out date and time. Completing the date-time member keeps the
// transformed-string format set exhaustively lowerable.
func dateTimeType(schema *Builder) {
	union := schema.Elem("simpleType", Attr{"name", "dateTimeType"}).Elem("union")
	union.Elem("simpleType").Elem("restriction", Attr{"base", "dateTime"})
	union.Elem("simpleType").Elem("restriction", Attr{"base", "string"},
		Attr{"pattern", `\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`})
}

func simpleStringRestriction(schema *Builder, name, pattern string) {
	schema.Elem("simpleType", Attr{"name", name}).
		Elem("restriction", Attr{"base", "string"}, Attr{"pattern", pattern})
}

func nullType(schema *Builder) {
	schema.Elem("simpleType", Attr{"name", "nullType"}).
		Elem("restriction", Attr{"base", "string"}, Attr{"length", "0"})
}

// BasicTypeNames lists every name EmitBasicTypes declares, in the order
// it declares them.
var BasicTypeNames = []string{
	"dateType", "timeType", "dateTimeType",
	"integerStringType", "booleanStringType", "uriType", "nullType",
}
