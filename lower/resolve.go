package lower

import (
	"strings"

	"github.com/cognitoiq/json2xsd/internal/ordered"
	"github.com/cognitoiq/json2xsd/xsderr"
	"github.com/cognitoiq/json2xsd/xsdmodel"
)

// resolveElements implements C5: every tag under which a non-primitive
// type occurred gets one or more top-level <element> declarations. A tag
// used by only one underlying type is emitted as-is; a tag used by more
// than one distinct type is disambiguated by prepending enclosing tags,
// one at a time, until the generated names no longer collide. Tags are
// visited in sorted order so a schema rendered twice from the same type
// graph is byte-identical.
func (c *ctx) resolveElements() error {
	var firstErr error
	ordered.RangeStrings(c.byElementName, func(tag string) {
		if firstErr != nil {
			return
		}
		entries := dedupeEntries(c.byElementName[tag])
		if len(entries) == 1 {
			firstErr = c.emitTopLevelElement(tag, entries[0])
			return
		}
		firstErr = c.disambiguate(tag, entries)
	})
	return firstErr
}

// dedupeEntries collapses occurrences that share the same underlying
// type reference: the same class/array appearing twice under one tag
// needs only a single top-level element, not a duplicate.
func dedupeEntries(entries []elementRecord) []elementRecord {
	seen := make(map[interface{}]bool, len(entries))
	out := entries[:0:0]
	for _, e := range entries {
		if seen[e.typeRef] {
			continue
		}
		seen[e.typeRef] = true
		out = append(out, e)
	}
	return out
}

func (c *ctx) disambiguate(tag string, entries []elementRecord) error {
	maxChain := 0
	for _, e := range entries {
		if len(e.chain) > maxChain {
			maxChain = len(e.chain)
		}
	}

	names := make([]string, len(entries))
	for depth := 0; ; depth++ {
		seen := make(map[string]int, len(entries))
		for i, e := range entries {
			names[i] = buildName(tag, e.chain, depth)
			seen[names[i]]++
		}
		collided := false
		for _, n := range seen {
			if n > 1 {
				collided = true
				break
			}
		}
		if !collided {
			break
		}
		if depth >= maxChain {
			return xsderr.New(xsderr.InternalError, "cannot disambiguate element name "+tag)
		}
	}

	for i, e := range entries {
		if err := c.emitTopLevelElement(names[i], e); err != nil {
			return err
		}
	}
	return nil
}

// buildName prepends the nearest depth entries of chain (nearest
// enclosing tag first) onto tag, title-casing each component. depth 0
// returns tag unchanged.
func buildName(tag string, chain []string, depth int) string {
	if depth == 0 {
		return tag
	}
	name := titleCase(tag)
	for i := 0; i < depth && i < len(chain); i++ {
		name = titleCase(chain[i]) + name
	}
	return name
}

// titleCase upper-cases only the first byte of s. It is ASCII-only by
// design: element-name disambiguation only ever combines tags already
// drawn from JSON property names, which in every scenario this module
// targets are ASCII identifiers; a rune-aware title case is not worth
// the complexity it would add here.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c *ctx) emitTopLevelElement(name string, e elementRecord) error {
	typeName, ok := c.processed[e.typeRef]
	if !ok {
		return xsderr.New(xsderr.InternalError, "no lowered type recorded for element "+name)
	}
	c.schema.Elem("element", xsdmodel.Attr{Name: "name", Value: name}, xsdmodel.Attr{Name: "type", Value: typeName})
	return nil
}
