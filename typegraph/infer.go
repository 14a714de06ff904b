package typegraph

import "sort"

// FormatRecognizer is the small capability set the external
// StringFormatRecognizer collaborator must provide: does a string value
// look like a date, time, date-time, or URI. Infer accepts this as an
// interface (rather than importing a concrete recognizer type) so callers
// can plug in whichever implementation they have; this package ships none
// of its own.
type FormatRecognizer interface {
	IsDate(string) bool
	IsTime(string) bool
	IsDateTime(string) bool
	IsURI(string) bool
}

// Infer builds a type graph from one or more decoded JSON documents
// (as produced by encoding/json.Unmarshal into interface{}). Multiple
// documents are merged into a single graph, widening classes to the
// union of properties seen and marking properties absent from some
// documents as optional.
//
// Infer is a minimal, in-repo stand-in for the external JSON ingestion
// pipeline named in the specification's out-of-scope section; it lets
// the rest of this module be exercised end-to-end without that
// collaborator.
func Infer(rec FormatRecognizer, docs ...any) *Node {
	var merged *Node
	for _, doc := range docs {
		merged = merge(merged, infer(rec, doc))
	}
	if merged == nil {
		return Primitive(KindNone)
	}
	return merged
}

func infer(rec FormatRecognizer, v any) *Node {
	switch v := v.(type) {
	case nil:
		return Primitive(KindNull)
	case bool:
		return Primitive(KindBool)
	case float64:
		if v == float64(int64(v)) {
			return Primitive(KindInteger)
		}
		return Primitive(KindDouble)
	case string:
		return inferString(rec, v)
	case []any:
		items := (*Node)(nil)
		for _, item := range v {
			items = merge(items, infer(rec, item))
		}
		if items == nil {
			items = Primitive(KindNone)
		}
		return Array(items)
	case map[string]any:
		// map[string]any has already lost JSON key order by the time it
		// reaches here; sort for determinism rather than pretend to
		// preserve an order that's gone.
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		props := make([]Prop, 0, len(names))
		for _, name := range names {
			props = append(props, Prop{Name: name, Type: infer(rec, v[name])})
		}
		return Class(props...)
	default:
		return Primitive(KindAny)
	}
}

func inferString(rec FormatRecognizer, s string) *Node {
	if rec != nil {
		switch {
		case rec.IsDateTime(s):
			return TransformedString(FormatDateTime)
		case rec.IsDate(s):
			return TransformedString(FormatDate)
		case rec.IsTime(s):
			return TransformedString(FormatTime)
		case rec.IsURI(s):
			return TransformedString(FormatURI)
		}
	}
	return Primitive(KindString)
}

// merge widens a against b, producing a node compatible with values of
// both. Identical primitive kinds collapse to themselves; a class merge
// unions the property sets, marking any property missing from one side
// as optional; anything else that disagrees becomes a union.
func merge(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.Kind == b.Kind {
		switch a.Kind {
		case KindArray:
			return Array(merge(a.Items, b.Items))
		case KindClass:
			return mergeClass(a, b)
		case KindTransformedString:
			if a.Format == b.Format {
				return a
			}
		default:
			return a
		}
	}
	return Union(a, b)
}

func mergeClass(a, b *Node) *Node {
	byName := make(map[string]*Prop, len(a.Props)+len(b.Props))
	var order []string

	for i := range a.Props {
		p := a.Props[i]
		byName[p.Name] = &p
		order = append(order, p.Name)
	}
	inB := make(map[string]bool, len(b.Props))
	for i := range b.Props {
		p := b.Props[i]
		inB[p.Name] = true
		if existing, ok := byName[p.Name]; ok {
			existing.Type = merge(existing.Type, p.Type)
			existing.Optional = existing.Optional || p.Optional
		} else {
			p.Optional = true
			byName[p.Name] = &p
			order = append(order, p.Name)
		}
	}
	for name, p := range byName {
		if !inB[name] {
			p.Optional = true
		}
	}

	sort.Strings(order)
	props := make([]Prop, 0, len(order))
	for _, name := range order {
		props = append(props, *byName[name])
	}
	return Class(props...)
}
