package chunknbt

// Section is one vertical slice of a chunk's section list, along with
// its Y index (if the section has one -- sections that don't are
// always processed, since we can't prove they don't overlap a Y
// filter).
type Section struct {
	Y    int
	HasY bool
	node Value
}

// Sections locates a chunk's section list, trying every known schema
// variant: root-level "sections" (1.18+), root-level "Sections"
// (pre-flattening), and both casings again nested under a legacy
// "Level" compound.
func Sections(root map[string]interface{}) []Section {
	_, sections := sectionsWithVariant(root)
	return sections
}

// SchemaVariant reports which of the known section-list shapes a chunk's
// root compound matched (e.g. for --debug-structure sampling): "sections",
// "Sections", "Level.sections", "Level.Sections", or "" if none matched.
func SchemaVariant(root map[string]interface{}) string {
	variant, _ := sectionsWithVariant(root)
	return variant
}

func sectionsWithVariant(root map[string]interface{}) (string, []Section) {
	rv := Value{raw: root}
	if l, ok := Field(rv, "sections").AsList(); ok {
		return "sections", toSections(l)
	}
	if l, ok := Field(rv, "Sections").AsList(); ok {
		return "Sections", toSections(l)
	}
	level := Field(rv, "Level")
	if l, ok := Field(level, "sections").AsList(); ok {
		return "Level.sections", toSections(l)
	}
	if l, ok := Field(level, "Sections").AsList(); ok {
		return "Level.Sections", toSections(l)
	}
	return "", nil
}

func toSections(raw []interface{}) []Section {
	out := make([]Section, 0, len(raw))
	for _, elem := range raw {
		v := Value{raw: elem}
		compound, ok := v.AsCompound()
		if !ok {
			continue
		}
		sec := Section{node: v}
		if y, ok := Field(Value{raw: compound}, "Y").AsInt(); ok {
			sec.Y, sec.HasY = y, true
		}
		out = append(out, sec)
	}
	return out
}

// OverlapsY reports whether the section overlaps the inclusive
// worldspace range [yMin, yMax]. A section lacking a Y value always
// overlaps, since there's no way to prove it doesn't.
func (s Section) OverlapsY(yMin, yMax int, filtered bool) bool {
	if !filtered || !s.HasY {
		return true
	}
	secMin := s.Y * 16
	secMax := secMin + 15
	return secMax >= yMin && secMin <= yMax
}

// Palettes yields the sequence-shaped biome palette lists attached to
// the section: its "biomes" (or "Biomes") compound's "palette" (or
// "Palette") list. Non-list-shaped or missing palette fields are
// silently skipped.
func (s Section) Palettes() [][]interface{} {
	var out [][]interface{}
	for _, biomesKey := range []string{"biomes", "Biomes"} {
		biomes := Field(s.node, biomesKey)
		pal := Field(biomes, "palette", "Palette")
		if l, ok := pal.AsList(); ok {
			out = append(out, l)
		}
	}
	return out
}
