// Package chunknbt provides schema-tolerant access to a chunk's NBT
// tree and the biome-palette rewrite applied to it.
//
// gophertunnel's nbt package decodes a compound into a generic
// map[string]interface{}, lists into []interface{}, and strings into
// string. This file wraps that generic tree in a small tagged-variant
// accessor so the rest of the package can pattern-match on NBT shape
// without repeating type assertions at every call site.
package chunknbt

// Value wraps a node from a decoded NBT tree (as produced by
// nbt.UnmarshalEncoding into a map[string]interface{}) so callers can
// try a shape and get ok=false instead of a panic when it doesn't
// match.
type Value struct {
	raw interface{}
}

// Wrap adapts a raw decoded NBT node into a Value.
func Wrap(raw interface{}) Value {
	return Value{raw: raw}
}

// Valid reports whether v wraps a non-nil decoded node.
func (v Value) Valid() bool {
	return v.raw != nil
}

// AsCompound returns v as a compound (TAG_Compound), if it is one.
func (v Value) AsCompound() (map[string]interface{}, bool) {
	m, ok := v.raw.(map[string]interface{})
	return m, ok
}

// AsList returns v as a list (TAG_List), if it is one.
func (v Value) AsList() ([]interface{}, bool) {
	l, ok := v.raw.([]interface{})
	return l, ok
}

// AsString returns v as a string (TAG_String), if it is one.
func (v Value) AsString() (string, bool) {
	s, ok := v.raw.(string)
	return s, ok
}

// AsInt returns v as an integer, accepting any of the NBT integer tag
// widths gophertunnel may decode it as.
func (v Value) AsInt() (int, bool) {
	switch n := v.raw.(type) {
	case int8:
		return int(n), true
	case uint8:
		// TAG_Byte (e.g. a section's Y) is a signed byte on disk.
		return int(int8(n)), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// Field looks up a key in a compound value, trying each name in order
// and returning the first present one. This is how this package copes
// with casing differences across chunk schema versions (e.g.
// Field(root, "sections", "Sections")).
func Field(v Value, names ...string) Value {
	m, ok := v.AsCompound()
	if !ok {
		return Value{}
	}
	for _, name := range names {
		if elem, ok := m[name]; ok {
			return Value{raw: elem}
		}
	}
	return Value{}
}
