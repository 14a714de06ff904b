package xconv

import (
	"math"
	"strconv"

	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xsdmodel"
)

// toXMLText implements the XML-out column of spec §4.8: coerce a JSON
// value into the text content an element of the given kind should
// carry. The second return value is false for any value the kind does
// not accept.
func toXMLText(rec typegraph.FormatRecognizer, kind xsdmodel.PrimitiveKind, v any) (string, bool) {
	switch kind {
	case xsdmodel.KindInteger, xsdmodel.KindIntegerString:
		n, ok := asInt64(v)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	case xsdmodel.KindDouble:
		f, ok := asFloat64(v)
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(f, 'f', -1, 64), true
	case xsdmodel.KindBool, xsdmodel.KindBoolString:
		switch v := v.(type) {
		case bool:
			if v {
				return "true", true
			}
			return "false", true
		case string:
			if v == "true" || v == "false" {
				return v, true
			}
		}
		return "", false
	case xsdmodel.KindDate:
		return recognized(v, rec != nil && isString(v) && rec.IsDate(v.(string)))
	case xsdmodel.KindTime:
		return recognized(v, rec != nil && isString(v) && rec.IsTime(v.(string)))
	case xsdmodel.KindDateTime:
		return recognized(v, rec != nil && isString(v) && rec.IsDateTime(v.(string)))
	case xsdmodel.KindURI:
		return recognized(v, rec != nil && isString(v) && rec.IsURI(v.(string)))
	case xsdmodel.KindNull:
		if v == nil {
			return "", true
		}
		return "", false
	case xsdmodel.KindString:
		s, ok := v.(string)
		return s, ok
	case xsdmodel.KindAny:
		return "", true
	case xsdmodel.KindNone:
		return "", true
	default:
		return "", false
	}
}

// fromXMLText implements the JSON-out column of spec §4.8: coerce an
// element's decoded text content into a JSON value for the given kind.
func fromXMLText(rec typegraph.FormatRecognizer, kind xsdmodel.PrimitiveKind, text string) (any, bool) {
	switch kind {
	case xsdmodel.KindInteger:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case xsdmodel.KindDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case xsdmodel.KindIntegerString:
		if _, err := strconv.ParseInt(text, 10, 64); err != nil {
			return nil, false
		}
		return text, true
	case xsdmodel.KindBool:
		switch text {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case xsdmodel.KindBoolString:
		switch text {
		case "true", "false":
			return text, true
		}
		return nil, false
	case xsdmodel.KindDate:
		if rec != nil && rec.IsDate(text) {
			return text, true
		}
		return nil, false
	case xsdmodel.KindTime:
		if rec != nil && rec.IsTime(text) {
			return text, true
		}
		return nil, false
	case xsdmodel.KindDateTime:
		if rec != nil && rec.IsDateTime(text) {
			return text, true
		}
		return nil, false
	case xsdmodel.KindURI:
		if rec != nil && rec.IsURI(text) {
			return text, true
		}
		return nil, false
	case xsdmodel.KindNull:
		if text == "" {
			return nil, true
		}
		return nil, false
	case xsdmodel.KindString:
		return text, true
	case xsdmodel.KindAny:
		return text, true
	case xsdmodel.KindNone:
		if text == "" {
			return nil, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func recognized(v any, ok bool) (string, bool) {
	if !ok {
		return "", false
	}
	return v.(string), true
}

func asInt64(v any) (int64, bool) {
	switch v := v.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
