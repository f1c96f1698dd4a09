// Package probe implements a read-only diagnostic scanner: search
// region files for the first biome palette entry whose normalized id
// begins with a prefix, and report its location.
package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bwkimmel/biomeremap/internal/chunknbt"
	"github.com/bwkimmel/biomeremap/internal/envelope"
	"github.com/bwkimmel/biomeremap/internal/region"
)

// maxHitsLogged caps how many unique hits are logged from the palette
// where the prefix is first found.
const maxHitsLogged = 20

// Options configures a probe run.
type Options struct {
	Prefix     string
	YMin, YMax int
	YFiltered  bool
	MaxRegions int // 0 = no limit.
	MaxChunks  int // 0 = no limit.
}

// Result reports the outcome of a probe run.
type Result struct {
	Found          bool
	RegionFile     string
	ChunkIndex     int
	SectionY       int
	HasSectionY    bool
	Hits           []string
	RegionsScanned int
	ChunksScanned  int
}

// Run scans region files in order, up to the region/chunk budgets,
// until it finds a palette entry whose normalized id starts with
// opts.Prefix. It makes no modifications and does not consult a
// mapping table.
func Run(files []string, opts Options) (Result, error) {
	var result Result
	if opts.Prefix == "" {
		return result, fmt.Errorf("probe: prefix is empty")
	}

	for _, path := range files {
		if opts.MaxRegions > 0 && result.RegionsScanned >= opts.MaxRegions {
			break
		}
		result.RegionsScanned++

		data, err := os.ReadFile(path)
		if err != nil {
			continue // Unreadable region: skip it, keep scanning.
		}
		locs, err := region.ParseLocations(data)
		if err != nil {
			continue
		}

		budgetExhausted := false
		for _, ptr := range region.IterPresent(locs) {
			if opts.MaxChunks > 0 && result.ChunksScanned >= opts.MaxChunks {
				budgetExhausted = true
				break
			}
			blob, ok := region.ExtractBlob(data, ptr.SectorOff, ptr.SectorCount)
			if !ok {
				continue
			}
			result.ChunksScanned++

			nbtBytes, _, err := envelope.Decompress(envelope.Blob(blob))
			if err != nil {
				continue
			}
			root, err := chunknbt.Decode(nbtBytes)
			if err != nil {
				continue
			}

			found := findPrefixHit(root, ptr.Index, opts, &result)
			if found {
				result.Found = true
				result.RegionFile = filepath.Base(path)
				return result, nil
			}
		}
		if budgetExhausted {
			break
		}
	}

	return result, nil
}

// findPrefixHit scans a chunk's sections for the first biome palette
// containing an entry matching the prefix. When found, it records up to
// maxHitsLogged unique hits from that same palette (not the whole
// chunk) onto result and returns true.
func findPrefixHit(root map[string]interface{}, chunkIdx int, opts Options, result *Result) bool {
	for _, sec := range chunknbt.Sections(root) {
		if !sec.OverlapsY(opts.YMin, opts.YMax, opts.YFiltered) {
			continue
		}
		for _, palette := range sec.Palettes() {
			var hits []string
			for _, elem := range palette {
				raw, ok := chunknbt.Wrap(elem).AsString()
				if !ok {
					continue
				}
				id := chunknbt.Normalize(raw)
				if !strings.HasPrefix(id, opts.Prefix) {
					continue
				}
				if slices.Contains(hits, id) {
					continue
				}
				hits = append(hits, id)
			}
			if len(hits) == 0 {
				continue
			}
			result.ChunkIndex = chunkIdx
			result.SectionY = sec.Y
			result.HasSectionY = sec.HasY
			if len(hits) > maxHitsLogged {
				hits = hits[:maxHitsLogged]
			}
			result.Hits = hits
			return true
		}
	}
	return false
}
