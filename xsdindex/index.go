// Package xsdindex implements the XSD Indexer (spec component C6): it
// re-parses a freshly emitted schema and exposes three path-indexed
// dictionaries (objects, arrays, unions) that the Format Converter (C7)
// walks in lock-step with a JSON or XML document.
//
// Unlike the teacher's own schema indexer (which eagerly walked a
// finite, acyclic set of WSDL types), this indexer resolves paths
// lazily, one segment at a time, memoizing as it goes. A self-
// referential class (e.g. a tree node with an optional "parent" of its
// own type) has no static bound on path depth — "Node.parent.parent...."
// is a legal path for as long as the JSON data recurses — so eagerly
// walking the whole schema up front is not just wasted work, it would
// never terminate. Resolving on demand bounds the work to exactly the
// paths the converter actually visits, which is always finite because
// it is driven by a concrete JSON/XML document.
package xsdindex

import (
	"github.com/cognitoiq/json2xsd/xmltree"
	"github.com/cognitoiq/json2xsd/xsderr"
	"github.com/cognitoiq/json2xsd/xsdmodel"
)

// PropInfo describes one property of a class at a given path.
type PropInfo struct {
	TypeName string
	Optional bool
}

// ArrayInfo describes the item position of an array at a given path.
type ArrayInfo struct {
	ItemTag      string
	ItemTypeName string
}

// Index is the re-parsed, lazily-classified form of an emitted schema.
type Index struct {
	simpleTypes  map[string]*xmltree.Element
	complexTypes map[string]*xmltree.Element
	elements     map[string]string

	pathType map[string]string
	resolved map[string]bool

	// ObjectByPath, ArrayByPath, and UnionByPath are populated as paths
	// are resolved via Ensure; until a path is visited it simply has no
	// entry in any of the three maps, even if it eventually would.
	ObjectByPath map[string]map[string]PropInfo
	ArrayByPath  map[string]ArrayInfo
	UnionByPath  map[string][]xsdmodel.PrimitiveKind
}

// Build re-parses schema's top-level declarations into lookup tables.
// No path resolution happens yet; call Ensure for each path the
// converter visits.
func Build(schema *xmltree.Element) *Index {
	idx := &Index{
		simpleTypes:  make(map[string]*xmltree.Element),
		complexTypes: make(map[string]*xmltree.Element),
		elements:     make(map[string]string),
		pathType:     make(map[string]string),
		resolved:     make(map[string]bool),
		ObjectByPath: make(map[string]map[string]PropInfo),
		ArrayByPath:  make(map[string]ArrayInfo),
		UnionByPath:  make(map[string][]xsdmodel.PrimitiveKind),
	}
	for _, el := range schema.Children {
		switch el.Name.Local {
		case "simpleType":
			idx.simpleTypes[el.Attr("", "name")] = el
		case "complexType":
			idx.complexTypes[el.Attr("", "name")] = el
		case "element":
			idx.elements[el.Attr("", "name")] = el.Attr("", "type")
		}
	}
	for tag, typeName := range idx.elements {
		idx.pathType[tag] = typeName
	}
	return idx
}

// TypeOf returns the @type of the top-level element named tag.
func (idx *Index) TypeOf(tag string) (string, bool) {
	t, ok := idx.elements[tag]
	return t, ok
}

// Ensure resolves path if it has not already been resolved, populating
// exactly one of ObjectByPath/ArrayByPath/UnionByPath (or none of them,
// for a primitive or unrecognized leaf) and recording the type of any
// child paths it discovers, so a subsequent Ensure on a child path can
// find its type.
func (idx *Index) Ensure(path string) error {
	if idx.resolved[path] {
		return nil
	}
	typeName, ok := idx.pathType[path]
	if !ok {
		return xsderr.New(xsderr.InternalError, "no type recorded for path "+path)
	}
	c, err := idx.classify(typeName)
	if err != nil {
		return err
	}
	switch c.kind {
	case kindUnion:
		idx.UnionByPath[path] = c.unionMembers
	case kindArray:
		idx.ArrayByPath[path] = ArrayInfo{ItemTag: c.itemTag, ItemTypeName: c.itemTypeName}
		idx.pathType[path+"."+c.itemTag] = c.itemTypeName
	case kindClass:
		props := make(map[string]PropInfo, len(c.props))
		for _, p := range c.props {
			props[p.name] = PropInfo{TypeName: p.typeName, Optional: p.optional}
			idx.pathType[path+"."+p.name] = p.typeName
		}
		idx.ObjectByPath[path] = props
	case kindPrimitive, kindNone:
		// Leaf: nothing to record in the by-path dictionaries.
	}
	idx.resolved[path] = true
	return nil
}

// PrimitiveAt returns the primitive kind governing path, if its type
// resolves to one of the known primitive mappings.
func (idx *Index) PrimitiveAt(path string) (xsdmodel.PrimitiveKind, bool) {
	typeName, ok := idx.pathType[path]
	if !ok {
		return 0, false
	}
	return xsdmodel.KindByTypeName(typeName)
}

type structKind int

const (
	kindNone structKind = iota
	kindPrimitive
	kindUnion
	kindArray
	kindClass
)

type classProp struct {
	name, typeName string
	optional       bool
}

type classification struct {
	kind         structKind
	primitive    xsdmodel.PrimitiveKind
	unionMembers []xsdmodel.PrimitiveKind
	itemTag      string
	itemTypeName string
	props        []classProp
}

// classify inspects the shape of a single type name, per spec §4.6
// steps 1-5. It never recurses into referenced types, which is what
// keeps it safe to call on a self-referential schema.
func (idx *Index) classify(name string) (classification, error) {
	if prim, ok := xsdmodel.KindByTypeName(name); ok {
		return classification{kind: kindPrimitive, primitive: prim}, nil
	}
	if st, ok := idx.simpleTypes[name]; ok {
		if union := firstChild(st, "union"); union != nil {
			members := make([]xsdmodel.PrimitiveKind, 0, len(union.Children))
			for _, member := range children(union, "simpleType") {
				restriction := firstChild(member, "restriction")
				if restriction == nil {
					return classification{}, xsderr.New(xsderr.InternalError, "union member of "+name+" has no restriction")
				}
				base := restriction.Attr("", "base")
				prim, ok := xsdmodel.KindByTypeName(base)
				if !ok {
					return classification{}, xsderr.New(xsderr.InternalError, "union member base "+base+" is not a primitive mapping")
				}
				members = append(members, prim)
			}
			return classification{kind: kindUnion, unionMembers: members}, nil
		}
		return classification{}, xsderr.New(xsderr.InternalError, "simpleType "+name+" is not a recognized union")
	}
	if ct, ok := idx.complexTypes[name]; ok {
		if seq := firstChild(ct, "sequence"); seq != nil {
			item := firstChild(seq, "element")
			if item == nil {
				return classification{}, xsderr.New(xsderr.InternalError, "array complexType "+name+" has no item element")
			}
			return classification{
				kind:         kindArray,
				itemTag:      item.Attr("", "name"),
				itemTypeName: item.Attr("", "type"),
			}, nil
		}
		if all := firstChild(ct, "all"); all != nil {
			elems := children(all, "element")
			props := make([]classProp, 0, len(elems))
			for _, el := range elems {
				props = append(props, classProp{
					name:     el.Attr("", "name"),
					typeName: el.Attr("", "type"),
					optional: el.Attr("", "minOccurs") == "0",
				})
			}
			return classification{kind: kindClass, props: props}, nil
		}
		return classification{kind: kindNone}, nil
	}
	return classification{kind: kindNone}, nil
}

func firstChild(el *xmltree.Element, local string) *xmltree.Element {
	for _, c := range el.Children {
		if c.Name.Local == local {
			return c
		}
	}
	return nil
}

func children(el *xmltree.Element, local string) []*xmltree.Element {
	var out []*xmltree.Element
	for _, c := range el.Children {
		if c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}
