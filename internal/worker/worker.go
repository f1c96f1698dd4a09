// Package worker implements the per-region pipeline: read a region file
// fully into memory, remap every chunk's biome palettes, and atomically
// replace the file if anything changed.
package worker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwkimmel/biomeremap/internal/chunknbt"
	"github.com/bwkimmel/biomeremap/internal/envelope"
	"github.com/bwkimmel/biomeremap/internal/region"
	"github.com/bwkimmel/biomeremap/internal/remap"
)

// Options configures a single region's processing run.
type Options struct {
	Mapping        *remap.Mapping
	YMin, YMax     int
	YFiltered      bool
	DryRun         bool
	MakeBackup     bool
	DebugSample    int // Max palette samples to collect for diagnostics (0 disables).
	DebugErrors    int // Max chunk parse-error details to collect (0 disables).
	DebugStructure int // Max schema-variant samples to collect (0 disables).
}

// Report summarizes a single region's processing run, aggregated by the
// job controller.
type Report struct {
	Filename         string
	ChunksProcessed  int
	ChunksChanged    int
	EntriesChanged   int
	ParseErrors      int
	DebugSamples     []string
	ErrorSamples     []string
	StructureSamples []string
}

// ProcessRegion reads a region file, remaps every readable chunk's
// biome palettes, and (unless dry-run or nothing changed) atomically
// rebuilds the file on disk.
//
// Corrupt sector tables, truncated files, or IO errors fail the whole
// region (the error is returned so the caller can log it and continue
// with other regions); individual chunk parse errors are swallowed and
// only counted.
func ProcessRegion(path string, opts Options) (Report, error) {
	report := Report{Filename: filepath.Base(path)}

	original, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("worker: read %s: %w", path, err)
	}

	locs, err := region.ParseLocations(original)
	if err != nil {
		return report, fmt.Errorf("worker: %s: %w", path, err)
	}

	updated := make(map[int]region.UpdatedBlob)

	for _, ptr := range region.IterPresent(locs) {
		blob, ok := region.ExtractBlob(original, ptr.SectorOff, ptr.SectorCount)
		if !ok {
			// Unreadable slot: count it and leave it out of the rebuild.
			report.ParseErrors++
			continue
		}
		report.ChunksProcessed++

		nbtBytes, comp, err := envelope.Decompress(envelope.Blob(blob))
		if err != nil {
			report.ParseErrors++
			sampleError(&report, opts, path, ptr.Index, err)
			continue
		}
		root, err := chunknbt.Decode(nbtBytes)
		if err != nil {
			report.ParseErrors++
			sampleError(&report, opts, path, ptr.Index, err)
			continue
		}

		if opts.DebugStructure > 0 && len(report.StructureSamples) < opts.DebugStructure {
			if variant := chunknbt.SchemaVariant(root); variant != "" {
				report.StructureSamples = append(report.StructureSamples, fmt.Sprintf("chunk %d: %s", ptr.Index, variant))
			}
		}

		if opts.DebugSample > 0 && len(report.DebugSamples) < opts.DebugSample {
			chunknbt.VisitPalettes(root, opts.YMin, opts.YMax, opts.YFiltered, func(_ int, _ bool, id string) {
				if len(report.DebugSamples) < opts.DebugSample {
					report.DebugSamples = append(report.DebugSamples, id)
				}
			})
		}

		changed, entriesChanged := chunknbt.RewritePalettes(root, opts.YMin, opts.YMax, opts.YFiltered, opts.Mapping.Lookup)
		if !changed {
			continue
		}

		newNBT, err := chunknbt.Encode(root)
		if err != nil {
			report.ParseErrors++
			continue
		}
		newBlob, _, err := envelope.Compress(newNBT, comp)
		if err != nil {
			report.ParseErrors++
			continue
		}

		updated[ptr.Index] = region.UpdatedBlob{Blob: []byte(newBlob), Changed: true}
		report.ChunksChanged++
		report.EntriesChanged += entriesChanged
	}

	if len(updated) == 0 || opts.DryRun {
		return report, nil
	}

	rebuilt, err := region.Rebuild(original, updated)
	if err != nil {
		return report, fmt.Errorf("worker: rebuild %s: %w", path, err)
	}

	if opts.MakeBackup {
		backupPath := path + ".bak"
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			if err := os.WriteFile(backupPath, original, 0o644); err != nil {
				return report, fmt.Errorf("worker: write backup %s: %w", backupPath, err)
			}
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, rebuilt, 0o644); err != nil {
		return report, fmt.Errorf("worker: write temp %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return report, fmt.Errorf("worker: rename %s -> %s: %w", tmpPath, path, err)
	}

	return report, nil
}

// sampleError records a chunk parse-error detail on report, up to
// opts.DebugErrors samples. Parse errors are otherwise swallowed and only
// counted; this is the --debug-errors escape hatch.
func sampleError(report *Report, opts Options, path string, chunkIdx int, err error) {
	if opts.DebugErrors <= 0 || len(report.ErrorSamples) >= opts.DebugErrors {
		return
	}
	report.ErrorSamples = append(report.ErrorSamples, fmt.Sprintf("%s: chunk %d: %v", filepath.Base(path), chunkIdx, err))
}
