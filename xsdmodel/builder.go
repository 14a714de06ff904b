// Package xsdmodel implements the XSD Builder (spec component C2) and
// the Basic Types Emitter (C3): a thin wrapper around xmltree.Element
// that knows how to bind the xsd: prefix and rewrite built-in base-type
// attribute values, plus the fixed library of derived simple types every
// emitted schema carries.
package xsdmodel

import (
	"encoding/xml"

	"github.com/cognitoiq/json2xsd/xmltree"
)

// SchemaNS is the standard XMLSchema namespace. This module never binds
// any other namespace prefix (spec Non-goals: "no XML namespaces beyond
// the single xsd: prefix").
const SchemaNS = "http://www.w3.org/2001/XMLSchema"

// builtinBaseNames are the XMLSchema built-ins whose `base`/`type`
// attribute values the Builder rewrites to carry the xsd: prefix, per
// spec §4.1.
var builtinBaseNames = map[string]bool{
	"string":   true,
	"integer":  true,
	"decimal":  true,
	"dateTime": true,
	"date":     true,
	"time":     true,
	"boolean":  true,
}

// Attr is one attribute to set on an element created by Builder.Elem. A
// slice of Attr (rather than a map) is used so callers control emission
// order, matching the canonical attribute order in the specification's
// worked examples (name, then type, then minOccurs/maxOccurs).
type Attr struct {
	Name, Value string
}

// Builder incrementally constructs an in-memory XSD document tree. All
// element names it creates are automatically bound to the xsd: prefix;
// its only other behavior is rewriting base/type attribute values that
// name an XMLSchema built-in to carry that same prefix, keeping the
// lowerer free of namespace bookkeeping (spec §4.1).
type Builder struct {
	el *xmltree.Element
}

// NewSchema creates the root <xsd:schema> element, with
// xmlns:xsd="http://www.w3.org/2001/XMLSchema" bound once.
func NewSchema() *Builder {
	scope := xmltree.Scope{}.Bind("xsd", SchemaNS)
	root := xmltree.NewElement(xml.Name{Space: SchemaNS, Local: "schema"}, scope)
	return &Builder{el: root}
}

// Root returns the <xsd:schema> root element.
func (b *Builder) Root() *xmltree.Element { return b.el }

// Elem creates a child element named local (bound to the xsd: prefix)
// with the given attributes, and returns a Builder wrapping it so the
// caller can chain further Elem calls to build its content.
func (b *Builder) Elem(local string, attrs ...Attr) *Builder {
	child := xmltree.NewElement(xml.Name{Space: SchemaNS, Local: local}, b.el.Scope)
	for _, a := range attrs {
		child.SetAttr("", a.Name, rewriteBaseAttr(a.Name, a.Value))
	}
	b.el.AppendChild(child)
	return &Builder{el: child}
}

// rewriteBaseAttr implements the one non-trivial rule the Builder knows:
// a `base` or `type` attribute whose value names an XMLSchema built-in is
// rewritten to carry the xsd: prefix.
func rewriteBaseAttr(name, value string) string {
	if (name == "base" || name == "type") && builtinBaseNames[value] {
		return "xsd:" + value
	}
	return value
}
