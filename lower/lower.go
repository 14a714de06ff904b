// Package lower implements the Type Lowerer and Element Resolver (spec
// components C4 and C5): it walks a typegraph.Node, emitting the
// corresponding XSD fragments onto an xsdmodel.Builder, then resolves
// every tag under which a non-primitive type occurred into one or more
// disambiguated top-level element declarations.
package lower

import (
	"fmt"

	"github.com/cognitoiq/json2xsd/typegraph"
	"github.com/cognitoiq/json2xsd/xsderr"
	"github.com/cognitoiq/json2xsd/xsdmodel"
)

// elementRecord is one occurrence of a non-primitive type under a given
// tag: the type it resolved to, and the chain of enclosing tags
// (nearest first) available for prefix-chain disambiguation if this tag
// turns out to collide with another occurrence (spec §4.5).
type elementRecord struct {
	typeRef typegraph.TypeRef
	chain   []string
}

type ctx struct {
	schema        *xsdmodel.Builder
	cfg           Config
	processed     map[typegraph.TypeRef]string
	byElementName map[string][]elementRecord
	counter       int
}

// Render lowers a single top-level type graph into a complete schema:
// the fixed basic-types library (C3), then every complex/simple type the
// root and its descendants require (C4), then the disambiguated
// top-level element declarations (C5).
func Render(rootTag string, root typegraph.TypeRef, opts ...Option) (*xsdmodel.Builder, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	schema := xsdmodel.NewSchema()
	xsdmodel.EmitBasicTypes(schema)

	c := &ctx{
		schema:        schema,
		cfg:           cfg,
		processed:     make(map[typegraph.TypeRef]string),
		byElementName: make(map[string][]elementRecord),
	}
	if err := c.lowerRoot(rootTag, root); err != nil {
		return nil, err
	}
	if err := c.resolveElements(); err != nil {
		return nil, err
	}
	return schema, nil
}

// RenderMulti rejects a type graph with more than one top-level type
// outright (spec §4.3: "multiple top-level types -> not-implemented"),
// and otherwise delegates to Render.
func RenderMulti(roots map[string]typegraph.TypeRef, opts ...Option) (*xsdmodel.Builder, error) {
	if len(roots) > 1 {
		return nil, xsderr.New(xsderr.NotImplemented, "multiple top-level types")
	}
	for tag, root := range roots {
		return Render(tag, root, opts...)
	}
	return nil, xsderr.New(xsderr.MalformedInput, "no top-level type provided")
}

func (c *ctx) lowerRoot(tag string, ref typegraph.TypeRef) error {
	switch ref.Kind {
	case typegraph.KindNull, typegraph.KindBool, typegraph.KindInteger,
		typegraph.KindDouble, typegraph.KindString, typegraph.KindTransformedString:
		typeName, err := c.resolveType(nil, tag, ref)
		if err != nil {
			return err
		}
		c.schema.Elem("element", xsdmodel.Attr{Name: "name", Value: tag}, xsdmodel.Attr{Name: "type", Value: typeName})
		return nil
	case typegraph.KindArray, typegraph.KindClass, typegraph.KindUnion:
		_, err := c.resolveType(nil, tag, ref)
		return err
	default:
		return xsderr.New(xsderr.NotImplemented, "root type kind "+ref.Kind.String())
	}
}

// resolveType ensures ref's XSD type exists, allocating and lowering a
// new complex or simple type if this is the first time ref has been
// seen (processed acts as both a memo and a cycle guard: it is
// populated before recursing into ref's children). It returns the
// attribute value a caller should use to reference ref's type, or the
// empty string for the no-op kinds spec §4.3 lowers to nothing.
func (c *ctx) resolveType(chain []string, key string, ref typegraph.TypeRef) (string, error) {
	switch ref.Kind {
	case typegraph.KindNull:
		return xsdmodel.TypeName(xsdmodel.KindNull), nil
	case typegraph.KindBool:
		return xsdmodel.TypeName(xsdmodel.KindBool), nil
	case typegraph.KindInteger:
		return xsdmodel.TypeName(xsdmodel.KindInteger), nil
	case typegraph.KindDouble:
		return xsdmodel.TypeName(xsdmodel.KindDouble), nil
	case typegraph.KindString:
		return xsdmodel.TypeName(xsdmodel.KindString), nil
	case typegraph.KindTransformedString:
		return transformedTypeName(ref.Format), nil
	case typegraph.KindArray:
		return c.resolveComplex(chain, key, ref, c.lowerArray)
	case typegraph.KindClass:
		return c.resolveComplex(chain, key, ref, c.lowerClass)
	case typegraph.KindUnion:
		if !allPrimitiveMembers(ref) {
			return "", xsderr.New(xsderr.UnsupportedUnion, key)
		}
		return c.resolveComplex(chain, key, ref, c.lowerUnion)
	case typegraph.KindMap, typegraph.KindObject, typegraph.KindEnum, typegraph.KindAny, typegraph.KindNone:
		// Open question (ii): map/object/enum lowering is out of scope
		// (spec Non-goals), and any/none carry no structural shape to
		// lower. All five yield no type name: lowerClass drops such a
		// property entirely rather than emit an empty placeholder, and
		// lowerArray rejects such an item type with not-implemented.
		return "", nil
	default:
		return "", xsderr.New(xsderr.NotImplemented, ref.Kind.String())
	}
}

type lowerFunc func(chain []string, key string, ref typegraph.TypeRef, name string) error

// resolveComplex allocates (or reuses) a generated type name for ref,
// lowering it via lowerFn on first encounter, and always records the
// occurrence under key for the Element Resolver.
func (c *ctx) resolveComplex(chain []string, key string, ref typegraph.TypeRef, lowerFn lowerFunc) (string, error) {
	name, ok := c.processed[ref]
	if !ok {
		c.counter++
		name = fmt.Sprintf("%s%d", c.cfg.ComplexTypePrefix, c.counter)
		c.processed[ref] = name
		c.cfg.Logger.Debug().Str("type", name).Str("key", key).Msg("lowering type")
		if err := lowerFn(chain, key, ref, name); err != nil {
			return "", err
		}
	}
	c.byElementName[key] = append(c.byElementName[key], elementRecord{typeRef: ref, chain: chain})
	return name, nil
}

func (c *ctx) lowerClass(chain []string, key string, ref typegraph.TypeRef, name string) error {
	complexType := c.schema.Elem("complexType", xsdmodel.Attr{Name: "name", Value: name})
	all := complexType.Elem("all")
	childChain := prepend(key, chain)
	for _, p := range ref.Props {
		typeName, err := c.resolveType(childChain, p.Name, p.Type)
		if err != nil {
			return err
		}
		if typeName == "" {
			continue
		}
		attrs := []xsdmodel.Attr{{Name: "name", Value: p.Name}, {Name: "type", Value: typeName}}
		if p.Optional {
			attrs = append(attrs, xsdmodel.Attr{Name: "minOccurs", Value: "0"})
		}
		all.Elem("element", attrs...)
	}
	return nil
}

func (c *ctx) lowerArray(chain []string, key string, ref typegraph.TypeRef, name string) error {
	complexType := c.schema.Elem("complexType", xsdmodel.Attr{Name: "name", Value: name})
	seq := complexType.Elem("sequence")
	itemKey := key + "Item"
	typeName, err := c.resolveType(prepend(key, chain), itemKey, ref.Items)
	if err != nil {
		return err
	}
	if typeName == "" {
		return xsderr.New(xsderr.NotImplemented, key+": array of "+ref.Items.Kind.String())
	}
	seq.Elem("element",
		xsdmodel.Attr{Name: "name", Value: itemKey},
		xsdmodel.Attr{Name: "type", Value: typeName},
		xsdmodel.Attr{Name: "minOccurs", Value: "0"},
		xsdmodel.Attr{Name: "maxOccurs", Value: "unbounded"})
	return nil
}

// lowerUnion lowers a primitive union (every member already confirmed
// primitive by resolveType) into a <simpleType><union> of single-member
// restrictions, matching the shape the basic-types library itself uses.
func (c *ctx) lowerUnion(chain []string, key string, ref typegraph.TypeRef, name string) error {
	union := c.schema.Elem("simpleType", xsdmodel.Attr{Name: "name", Value: name}).Elem("union")
	for _, m := range ref.Members {
		memberType, err := c.resolveType(chain, key, m)
		if err != nil {
			return err
		}
		union.Elem("simpleType").Elem("restriction", xsdmodel.Attr{Name: "base", Value: memberType})
	}
	return nil
}

func allPrimitiveMembers(ref typegraph.TypeRef) bool {
	for _, m := range ref.Members {
		switch m.Kind {
		case typegraph.KindNull, typegraph.KindBool, typegraph.KindInteger,
			typegraph.KindDouble, typegraph.KindString, typegraph.KindTransformedString:
		default:
			return false
		}
	}
	return true
}

func transformedTypeName(format typegraph.Format) string {
	switch format {
	case typegraph.FormatDate:
		return xsdmodel.TypeName(xsdmodel.KindDate)
	case typegraph.FormatTime:
		return xsdmodel.TypeName(xsdmodel.KindTime)
	case typegraph.FormatDateTime:
		return xsdmodel.TypeName(xsdmodel.KindDateTime)
	case typegraph.FormatURI:
		return xsdmodel.TypeName(xsdmodel.KindURI)
	case typegraph.FormatIntegerString:
		return xsdmodel.TypeName(xsdmodel.KindIntegerString)
	case typegraph.FormatBoolString:
		return xsdmodel.TypeName(xsdmodel.KindBoolString)
	default:
		return xsdmodel.TypeName(xsdmodel.KindString)
	}
}

func prepend(key string, chain []string) []string {
	out := make([]string, 0, len(chain)+1)
	out = append(out, key)
	return append(out, chain...)
}
