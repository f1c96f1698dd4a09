// Package remap owns the biome translation table: a primary mapping,
// an optional terralith:* fallback, and the target-id legacy fixup
// applied once when the table is built.
package remap

import "strings"

// legacyTargets maps a target biome id that no longer resolves in
// current game versions to the id that replaced it. Applied once, at
// construction, to every mapping value and to the fallback id.
var legacyTargets = map[string]string{
	"minecraft:mountains": "minecraft:windswept_hills",
}

func normalizeTarget(id string) string {
	if repl, ok := legacyTargets[id]; ok {
		return repl
	}
	return id
}

func normalizeSource(id string) string {
	if rest, ok := strings.CutPrefix(id, "universal_minecraft:"); ok {
		return "minecraft:" + rest
	}
	if rest, ok := strings.CutPrefix(id, "universal_terralith:"); ok {
		return "terralith:" + rest
	}
	return id
}

// Mapping is a finite function BiomeId -> BiomeId, plus an optional
// fallback used for unmapped terralith:* ids.
type Mapping struct {
	table       map[string]string
	fallback    string
	hasFallback bool
}

// New builds a Mapping from a pre-parsed set of entries (e.g. loaded
// from an INI file's [mapping] section, or the built-in default table).
// Keys and values are normalized exactly once, here, rather than on
// every lookup.
func New(entries map[string]string) *Mapping {
	table := make(map[string]string, len(entries))
	for k, v := range entries {
		if k == "" || v == "" {
			continue
		}
		table[normalizeSource(k)] = normalizeTarget(normalizeSource(v))
	}
	return &Mapping{table: table}
}

// WithFallback sets the fallback biome id used for any terralith:*
// source id that isn't a key in the mapping. It is normalized the same
// way mapping values are.
func (m *Mapping) WithFallback(id string) *Mapping {
	if id == "" {
		return m
	}
	m.fallback = normalizeTarget(normalizeSource(id))
	m.hasFallback = true
	return m
}

// Len reports the number of entries in the primary table.
func (m *Mapping) Len() int {
	return len(m.table)
}

// Lookup resolves an already-normalized biome id to its replacement:
// the primary table first, then (if unset and the id is in the
// terralith: namespace) the fallback.
func (m *Mapping) Lookup(normalizedID string) (string, bool) {
	if repl, ok := m.table[normalizedID]; ok {
		return repl, true
	}
	if m.hasFallback && strings.HasPrefix(normalizedID, "terralith:") {
		return m.fallback, true
	}
	return "", false
}
