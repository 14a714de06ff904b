// Package json2xsd is the conceptual entry point tying the XSD synthesis
// core together: given an inferred type graph and a representative JSON
// document, it renders both the XSD describing the graph's shape and an
// XML serialization of the document that validates against it.
package json2xsd

import (
	"encoding/json"

	"github.com/cognitoiq/json2xsd/format"
	"github.com/cognitoiq/json2xsd/lower"
	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xconv"
	"github.com/cognitoiq/json2xsd/xmltree"
	"github.com/cognitoiq/json2xsd/xsdindex"
)

// Render lowers graph into a schema rooted at rootTag, then serializes
// doc as XML validating against that schema. xsdFileName is the value
// written into the outermost element's xsd:noNamespaceSchemaLocation
// attribute (the xsd prefix there is bound to the XMLSchema-instance
// namespace) (typically the basename the caller will give the .xsd
// file it writes alongside the .xml).
func Render(rootTag string, graph typegraph.TypeRef, doc any, xsdFileName string, opts ...lower.Option) (xsd []byte, xml []byte, err error) {
	schema, err := lower.Render(rootTag, graph, opts...)
	if err != nil {
		return nil, nil, err
	}

	idx := xsdindex.Build(schema.Root())
	conv := xconv.New(idx, format.New())
	root, err := conv.ToXML(rootTag, doc, xsdFileName)
	if err != nil {
		return nil, nil, err
	}

	// The XSD is purely structural (no element ever carries both
	// children and text), so MarshalIndent's unconditional newline
	// before every closing tag is safe there. The rendered document,
	// by contrast, has real leaf text content (every primitive value),
	// and that same unconditional newline would land inside it -- so
	// it is written flat, with xmltree.Marshal, instead.
	return xmltree.MarshalIndent(schema.Root(), "", "  "), xmltree.Marshal(root), nil
}

// DecodeJSON is a small convenience wrapper around encoding/json for
// callers (such as the CLI) that start from raw JSON bytes rather than
// an already-decoded document.
func DecodeJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
