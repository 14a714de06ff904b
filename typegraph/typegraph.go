// Package typegraph models the inferred type graph that the (external)
// JSON ingestion pipeline hands to the XSD synthesis core: a read-only
// tree of type nodes describing the shape of one or more JSON sample
// documents.
//
// A Node's identity (its pointer value) is its TypeRef: two occurrences
// of "the same" inferred type in the graph share a *Node, which is what
// lets the lowerer detect cycles and perform complex-type deduplication
// by map lookup rather than by structural comparison.
package typegraph

// Kind is the closed set of type-node variants a Node may hold.
type Kind int

const (
	KindNone Kind = iota
	KindAny
	KindNull
	KindBool
	KindInteger
	KindDouble
	KindString
	KindArray
	KindClass
	KindMap
	KindObject
	KindEnum
	KindUnion
	KindTransformedString
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAny:
		return "any"
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
	case KindArray:
		return "array"
	case KindClass:
		return "class"
	case KindMap:
		return "map"
	case KindObject:
		return "object"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindTransformedString:
		return "transformed-string"
	default:
		return "unknown"
	}
}

// Format names the transform applied to a KindTransformedString node.
type Format string

const (
	FormatDate          Format = "date"
	FormatTime          Format = "time"
	FormatDateTime      Format = "dateTime"
	FormatURI           Format = "uri"
	FormatIntegerString Format = "integerString"
	FormatBoolString    Format = "boolString"
)

// Prop is one named, ordered property of a KindClass node.
type Prop struct {
	Name     string
	Type     *Node
	Optional bool
}

// Node is a tagged variant over Kind. TypeRef is simply *Node: a pointer
// already has map-key identity, so no separate opaque handle type is
// needed the way a closed source-language enum might require one.
type Node struct {
	Kind Kind

	// KindArray
	Items *Node

	// KindClass. Props is a slice, not a map, so that declaration
	// order (spec invariant: class content follows property
	// declaration order) is preserved without a separate ordered-map
	// type.
	Props []Prop

	// KindUnion
	Members []*Node

	// KindTransformedString
	Format Format
}

// TypeRef is the stable identity of a type node, usable as a map key for
// deduplication. It is an alias for *Node rather than a distinct type:
// the pointer itself already satisfies the identity requirement.
type TypeRef = *Node

func Primitive(k Kind) *Node { return &Node{Kind: k} }

func Array(items *Node) *Node { return &Node{Kind: KindArray, Items: items} }

func Class(props ...Prop) *Node { return &Node{Kind: KindClass, Props: props} }

func Union(members ...*Node) *Node { return &Node{Kind: KindUnion, Members: members} }

func TransformedString(format Format) *Node {
	return &Node{Kind: KindTransformedString, Format: format}
}
