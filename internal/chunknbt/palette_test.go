package chunknbt

import "testing"

func TestSectionsMissingReturnsNil(t *testing.T) {
	if got := Sections(map[string]interface{}{"unrelated": "value"}); got != nil {
		t.Fatalf("Sections on a compound with no section list = %v, want nil", got)
	}
}

func TestSectionsPrefersRootOverLegacy(t *testing.T) {
	rootSec := section(1, true, []interface{}{"minecraft:plains"})
	legacySec := section(2, true, []interface{}{"minecraft:ocean"})
	root := map[string]interface{}{
		"sections": []interface{}{rootSec},
		"Level":    map[string]interface{}{"sections": []interface{}{legacySec}},
	}

	got := Sections(root)
	if len(got) != 1 || got[0].Y != 1 {
		t.Fatalf("expected the root-level sections list to win, got %+v", got)
	}
}

func TestPalettesIgnoresNonListAndMissingFields(t *testing.T) {
	sec := Section{node: Value{raw: map[string]interface{}{
		"biomes": map[string]interface{}{
			"palette": "not-a-list",
		},
	}}}
	if pals := sec.Palettes(); pals != nil {
		t.Fatalf("Palettes() on a non-list palette field = %v, want nil", pals)
	}

	noBiomes := Section{node: Value{raw: map[string]interface{}{}}}
	if pals := noBiomes.Palettes(); pals != nil {
		t.Fatalf("Palettes() with no biomes compound = %v, want nil", pals)
	}
}

func TestOverlapsY(t *testing.T) {
	cases := []struct {
		name        string
		sec         Section
		yMin, yMax  int
		filtered    bool
		wantOverlap bool
	}{
		{"unfiltered always overlaps", Section{Y: 0, HasY: true}, 1000, 2000, false, true},
		{"no Y always overlaps when filtered", Section{HasY: false}, 1000, 2000, true, true},
		{"section fully inside range", Section{Y: 8, HasY: true}, 100, 200, true, true},             // [128,143]
		{"section fully outside range", Section{Y: 4, HasY: true}, 100, 200, true, false},           // [64,79]
		{"section spans exactly the filter range", Section{Y: -1, HasY: true}, -16, -1, true, true}, // [-16,-1]
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.sec.OverlapsY(c.yMin, c.yMax, c.filtered); got != c.wantOverlap {
				t.Errorf("OverlapsY = %v, want %v", got, c.wantOverlap)
			}
		})
	}
}
