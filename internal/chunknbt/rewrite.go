package chunknbt

import "strings"

// Lookup resolves a normalized biome id to its replacement. It returns
// ok=false when no replacement applies (the palette entry is left
// alone). Implemented by the remap engine (internal/remap).
type Lookup func(normalizedID string) (replacement string, ok bool)

// Normalize strips universal-resource-pack prefixes before any mapping
// lookup: universal_minecraft: and universal_terralith: collapse to
// their un-prefixed namespace.
func Normalize(id string) string {
	if rest, ok := strings.CutPrefix(id, "universal_minecraft:"); ok {
		return "minecraft:" + rest
	}
	if rest, ok := strings.CutPrefix(id, "universal_terralith:"); ok {
		return "terralith:" + rest
	}
	return id
}

// RewritePalettes walks the chunk's sections, applies the Y filter if
// yFiltered is set, and remaps every biome palette string entry via
// lookup. It returns whether any entry changed and how many did.
func RewritePalettes(root map[string]interface{}, yMin, yMax int, yFiltered bool, lookup Lookup) (changed bool, entriesChanged int) {
	for _, sec := range Sections(root) {
		if !sec.OverlapsY(yMin, yMax, yFiltered) {
			continue
		}
		for _, palette := range sec.Palettes() {
			for i, elem := range palette {
				raw, ok := Value{raw: elem}.AsString()
				if !ok {
					continue // Non-string entry: left as-is.
				}
				norm := Normalize(raw)
				replacement, ok := lookup(norm)
				if !ok || replacement == norm {
					continue
				}
				palette[i] = replacement
				changed = true
				entriesChanged++
			}
		}
	}
	return changed, entriesChanged
}

// VisitPalettes walks every biome palette entry in the chunk (subject to
// the Y filter), calling visit with each entry's normalized id. It makes
// no modifications and does not consult a mapping table.
func VisitPalettes(root map[string]interface{}, yMin, yMax int, yFiltered bool, visit func(sectionY int, hasY bool, normalizedID string)) {
	for _, sec := range Sections(root) {
		if !sec.OverlapsY(yMin, yMax, yFiltered) {
			continue
		}
		for _, palette := range sec.Palettes() {
			for _, elem := range palette {
				raw, ok := Value{raw: elem}.AsString()
				if !ok {
					continue
				}
				visit(sec.Y, sec.HasY, Normalize(raw))
			}
		}
	}
}
