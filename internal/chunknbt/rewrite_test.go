package chunknbt

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"universal_minecraft:plains": "minecraft:plains",
		"universal_terralith:cave":   "terralith:cave",
		"minecraft:plains":           "minecraft:plains",
		"terralith:yellowstone":      "terralith:yellowstone",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func section(y int, hasY bool, palette []interface{}) map[string]interface{} {
	sec := map[string]interface{}{
		"biomes": map[string]interface{}{
			"palette": palette,
		},
	}
	if hasY {
		sec["Y"] = int32(y)
	}
	return sec
}

func root1_18(sections ...map[string]interface{}) map[string]interface{} {
	list := make([]interface{}, len(sections))
	for i, s := range sections {
		list[i] = s
	}
	return map[string]interface{}{"sections": list}
}

func staticLookup(table map[string]string) Lookup {
	return func(norm string) (string, bool) {
		v, ok := table[norm]
		return v, ok
	}
}

func TestRewritePalettesBasic(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{"terralith:yellowstone", "minecraft:plains"}))

	changed, n := RewritePalettes(root, 0, 0, false, staticLookup(map[string]string{
		"terralith:yellowstone": "minecraft:badlands",
	}))
	if !changed || n != 1 {
		t.Fatalf("changed=%v n=%d, want changed=true n=1", changed, n)
	}

	pal := root["sections"].([]interface{})[0].(map[string]interface{})["biomes"].(map[string]interface{})["palette"].([]interface{})
	if pal[0] != "minecraft:badlands" || pal[1] != "minecraft:plains" {
		t.Fatalf("palette after rewrite = %v", pal)
	}
}

func TestRewritePalettesLegacySchemaVariants(t *testing.T) {
	// Legacy-wrapped "Level.Sections" with uppercase "Biomes"/"Palette".
	sec := map[string]interface{}{
		"Biomes": map[string]interface{}{
			"Palette": []interface{}{"terralith:yellowstone"},
		},
	}
	root := map[string]interface{}{
		"Level": map[string]interface{}{
			"Sections": []interface{}{sec},
		},
	}

	changed, n := RewritePalettes(root, 0, 0, false, staticLookup(map[string]string{
		"terralith:yellowstone": "minecraft:badlands",
	}))
	if !changed || n != 1 {
		t.Fatalf("changed=%v n=%d, want changed=true n=1", changed, n)
	}
	if variant := SchemaVariant(root); variant != "Level.Sections" {
		t.Fatalf("SchemaVariant = %q, want Level.Sections", variant)
	}
}

func TestRewritePalettesNoChangeWhenNotInMapping(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{"minecraft:plains"}))
	changed, n := RewritePalettes(root, 0, 0, false, staticLookup(nil))
	if changed || n != 0 {
		t.Fatalf("changed=%v n=%d, want no-op", changed, n)
	}
}

func TestRewritePalettesYFilterExcludesSection(t *testing.T) {
	// Section Y=4 -> worldspace [64,79]; Y=8 -> [128,143]. Filter [100,200]
	// should only overlap the Y=8 section.
	low := section(4, true, []interface{}{"terralith:yellowstone"})
	high := section(8, true, []interface{}{"terralith:yellowstone"})
	root := root1_18(low, high)

	changed, n := RewritePalettes(root, 100, 200, true, staticLookup(map[string]string{
		"terralith:yellowstone": "minecraft:badlands",
	}))
	if !changed || n != 1 {
		t.Fatalf("changed=%v n=%d, want exactly one section rewritten", changed, n)
	}

	lowPal := low["biomes"].(map[string]interface{})["palette"].([]interface{})
	if lowPal[0] != "terralith:yellowstone" {
		t.Fatalf("Y=4 section should be untouched, got %v", lowPal)
	}
	highPal := high["biomes"].(map[string]interface{})["palette"].([]interface{})
	if highPal[0] != "minecraft:badlands" {
		t.Fatalf("Y=8 section should be rewritten, got %v", highPal)
	}
}

func TestRewritePalettesSectionWithoutYAlwaysProcessed(t *testing.T) {
	sec := section(0, false, []interface{}{"terralith:yellowstone"})
	root := root1_18(sec)

	changed, _ := RewritePalettes(root, 1000, 2000, true, staticLookup(map[string]string{
		"terralith:yellowstone": "minecraft:badlands",
	}))
	if !changed {
		t.Fatalf("a section lacking Y must always be processed under a Y filter")
	}
}

func TestRewritePalettesSkipsNonStringEntries(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{int32(5), "minecraft:plains"}))
	changed, n := RewritePalettes(root, 0, 0, false, staticLookup(map[string]string{
		"minecraft:plains": "minecraft:ocean",
	}))
	if !changed || n != 1 {
		t.Fatalf("changed=%v n=%d, want the string entry rewritten and the int entry skipped", changed, n)
	}
}

func TestRewritePalettesUniversalPrefix(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{"universal_terralith:yellowstone"}))
	changed, n := RewritePalettes(root, 0, 0, false, staticLookup(map[string]string{
		"terralith:yellowstone": "minecraft:badlands",
	}))
	if !changed || n != 1 {
		t.Fatalf("changed=%v n=%d, want the universal-prefixed entry normalized and rewritten", changed, n)
	}
}

func TestVisitPalettesDoesNotMutate(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{"terralith:yellowstone"}))
	var seen []string
	VisitPalettes(root, 0, 0, false, func(_ int, _ bool, id string) {
		seen = append(seen, id)
	})
	if len(seen) != 1 || seen[0] != "terralith:yellowstone" {
		t.Fatalf("seen = %v", seen)
	}
	pal := root["sections"].([]interface{})[0].(map[string]interface{})["biomes"].(map[string]interface{})["palette"].([]interface{})
	if pal[0] != "terralith:yellowstone" {
		t.Fatalf("VisitPalettes must not mutate the tree, got %v", pal)
	}
}

func TestIdempotence(t *testing.T) {
	root := root1_18(section(0, true, []interface{}{"terralith:yellowstone", "minecraft:plains"}))
	lookup := staticLookup(map[string]string{"terralith:yellowstone": "minecraft:badlands"})

	if changed, _ := RewritePalettes(root, 0, 0, false, lookup); !changed {
		t.Fatalf("first pass should change the palette")
	}
	if changed, n := RewritePalettes(root, 0, 0, false, lookup); changed || n != 0 {
		t.Fatalf("second pass should be a no-op, got changed=%v n=%d", changed, n)
	}
}
