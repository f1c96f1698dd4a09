package probe

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bwkimmel/biomeremap/internal/chunknbt"
	"github.com/bwkimmel/biomeremap/internal/envelope"
	"github.com/bwkimmel/biomeremap/internal/region"
)

func writeRegionWithChunk(t *testing.T, path string, slot int, root map[string]interface{}) {
	t.Helper()
	nbtBytes, err := chunknbt.Encode(root)
	if err != nil {
		t.Fatalf("chunknbt.Encode: %v", err)
	}
	blob, _, err := envelope.Compress(nbtBytes, envelope.Zlib)
	if err != nil {
		t.Fatalf("envelope.Compress: %v", err)
	}
	sectors := (len(blob) + region.SectorSize - 1) / region.SectorSize
	if sectors < 1 {
		sectors = 1
	}

	out := make([]byte, region.HeaderSize)
	base := slot * 4
	off := 2
	out[base] = byte(off >> 16)
	out[base+1] = byte(off >> 8)
	out[base+2] = byte(off)
	out[base+3] = byte(sectors)
	binary.BigEndian.PutUint32(out[region.SectorSize+slot*4:], 1)

	out = append(out, blob...)
	if pad := sectors*region.SectorSize - len(blob); pad > 0 {
		out = append(out, make([]byte, pad)...)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func chunkWithPalette(y int32, palette ...string) map[string]interface{} {
	pal := make([]interface{}, len(palette))
	for i, p := range palette {
		pal[i] = p
	}
	return map[string]interface{}{
		"sections": []interface{}{
			map[string]interface{}{
				"Y": y,
				"biomes": map[string]interface{}{
					"palette": pal,
				},
			},
		},
	}
}

func TestProbeFindsPrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.0.0.mca")
	writeRegionWithChunk(t, path, 42, chunkWithPalette(5, "terralith:lush_desert"))

	result, err := Run([]string{path}, Options{Prefix: "terralith:"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected a hit")
	}
	if result.ChunkIndex != 42 {
		t.Fatalf("ChunkIndex = %d, want 42", result.ChunkIndex)
	}
	if !result.HasSectionY || result.SectionY != 5 {
		t.Fatalf("SectionY = %d (has=%v), want 5", result.SectionY, result.HasSectionY)
	}
	if len(result.Hits) != 1 || result.Hits[0] != "terralith:lush_desert" {
		t.Fatalf("Hits = %v", result.Hits)
	}
}

func TestProbeMiss(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.0.0.mca")
	writeRegionWithChunk(t, path, 42, chunkWithPalette(5, "terralith:lush_desert"))

	result, err := Run([]string{path}, Options{Prefix: "bluenether:"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Found {
		t.Fatalf("expected no hit for an absent prefix")
	}
	if result.RegionsScanned != 1 || result.ChunksScanned != 1 {
		t.Fatalf("scan counters = regions=%d chunks=%d", result.RegionsScanned, result.ChunksScanned)
	}
}

func TestProbeCapsHitsAtTwenty(t *testing.T) {
	var palette []string
	for i := 0; i < 30; i++ {
		palette = append(palette, "terralith:biome_"+string(rune('a'+i%26))+string(rune('0'+i/26)))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "r.0.0.mca")
	writeRegionWithChunk(t, path, 0, chunkWithPalette(0, palette...))

	result, err := Run([]string{path}, Options{Prefix: "terralith:"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Found {
		t.Fatalf("expected a hit")
	}
	if len(result.Hits) != 20 {
		t.Fatalf("len(Hits) = %d, want capped at 20", len(result.Hits))
	}
}

func TestProbeRequiresPrefix(t *testing.T) {
	if _, err := Run(nil, Options{}); err == nil {
		t.Fatalf("expected an error for an empty prefix")
	}
}

func TestProbeRespectsMaxRegions(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 3; i++ {
		path := filepath.Join(dir, filepath.Base(dir)+string(rune('0'+i))+".mca")
		writeRegionWithChunk(t, path, 0, chunkWithPalette(0, "minecraft:plains"))
		paths = append(paths, path)
	}

	result, err := Run(paths, Options{Prefix: "terralith:", MaxRegions: 2})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Found {
		t.Fatalf("no region here contains the prefix")
	}
	if result.RegionsScanned != 2 {
		t.Fatalf("RegionsScanned = %d, want 2 (capped)", result.RegionsScanned)
	}
}
