// Package job implements the job controller: it resolves the region
// directory for a dimension, enumerates region files, dispatches them
// to a worker pool with no shared mutable state, and aggregates
// progress and a final summary.
//
// Regions are distributed to a fixed-size pool of goroutines, each
// handling whole regions end to end with nothing shared but a
// read-only Options value and a results channel.
package job

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/bwkimmel/biomeremap/internal/worker"
	"github.com/bwkimmel/biomeremap/log"
)

// ErrRegionFolderMissing is returned by ResolveRegionDir when the
// resolved path is not a directory.
var ErrRegionFolderMissing = fmt.Errorf("region folder missing")

// ResolveRegionDir maps a dimension alias to its region directory
// within a world: "overworld" (or "world"/"0") -> world/region,
// "nether" (or "-1") -> world/DIM-1/region, "end" (or "1") ->
// world/DIM1/region. Any other string is treated as a literal path.
func ResolveRegionDir(world, dimension string) (string, error) {
	var dir string
	switch dimension {
	case "overworld", "world", "0", "":
		dir = filepath.Join(world, "region")
	case "nether", "-1", "dim-1", "DIM-1":
		dir = filepath.Join(world, "DIM-1", "region")
	case "end", "1", "dim1", "DIM1":
		dir = filepath.Join(world, "DIM1", "region")
	default:
		dir = dimension
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRegionFolderMissing, dir)
	}
	return dir, nil
}

// Enumerate lists the region files (r.<X>.<Z>.mca) in a region
// directory, sorted for a stable processing order.
func Enumerate(regionDir string) ([]string, error) {
	entries, err := os.ReadDir(regionDir)
	if err != nil {
		return nil, fmt.Errorf("job: read region dir %s: %w", regionDir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		var x, z int
		if _, err := fmt.Sscanf(name, "r.%d.%d.mca", &x, &z); err != nil {
			continue
		}
		// Sscanf accepts trailing input, so r.0.0.mca.bak/.tmp would match.
		if name != fmt.Sprintf("r.%d.%d.mca", x, z) {
			continue
		}
		files = append(files, filepath.Join(regionDir, name))
	}
	sort.Strings(files)
	return files, nil
}

// Options configures a full job run.
type Options struct {
	Processes int // 0 defaults to runtime.NumCPU().
	Worker    worker.Options
}

// Totals aggregates counters across every region processed in a run.
type Totals struct {
	RegionsProcessed int
	RegionsChanged   int
	RegionsFailed    int
	ChunksProcessed  int
	ChunksChanged    int
	EntriesChanged   int
	ParseErrors      int
	Samples          []string
	ErrorSamples     []string
	StructureSamples []string
}

type regionResult struct {
	report worker.Report
	err    error
}

// Run dispatches every region file in files to a pool of goroutines
// (no shared mutable state beyond opts, which is read-only for the
// duration of the run), collects results as they complete, and emits
// progress/summary log lines in a stable format a GUI can parse with a
// simple regex.
//
// ctx is checked between dispatches only: in-flight workers always
// finish their current region before the pool stops accepting new work,
// so a region rebuild is never interrupted partway through.
func Run(ctx context.Context, files []string, opts Options) Totals {
	processes := opts.Processes
	if processes <= 0 {
		processes = runtime.NumCPU()
		if processes < 1 {
			processes = 1
		}
	}

	jobs := make(chan string)
	results := make(chan regionResult)

	var pool sync.WaitGroup
	pool.Add(processes)
	for w := 0; w < processes; w++ {
		go func() {
			defer pool.Done()
			for path := range jobs {
				report, err := worker.ProcessRegion(path, opts.Worker)
				results <- regionResult{report: report, err: err}
			}
		}()
	}
	go func() {
		pool.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	var totals Totals
	total := len(files)
	started := time.Now()
	lastProgress := started

	for res := range results {
		totals.RegionsProcessed++
		if res.err != nil {
			totals.RegionsFailed++
			log.Errorf("Region %s: %v", res.report.Filename, res.err)
			continue
		}
		totals.ChunksProcessed += res.report.ChunksProcessed
		totals.ChunksChanged += res.report.ChunksChanged
		totals.EntriesChanged += res.report.EntriesChanged
		totals.ParseErrors += res.report.ParseErrors
		if res.report.ChunksChanged > 0 {
			totals.RegionsChanged++
		}
		for _, s := range res.report.DebugSamples {
			if opts.Worker.DebugSample > 0 && len(totals.Samples) < opts.Worker.DebugSample {
				totals.Samples = append(totals.Samples, s)
			}
		}
		for _, s := range res.report.ErrorSamples {
			if opts.Worker.DebugErrors > 0 && len(totals.ErrorSamples) < opts.Worker.DebugErrors {
				totals.ErrorSamples = append(totals.ErrorSamples, s)
			}
		}
		for _, s := range res.report.StructureSamples {
			if opts.Worker.DebugStructure > 0 && len(totals.StructureSamples) < opts.Worker.DebugStructure {
				totals.StructureSamples = append(totals.StructureSamples, s)
			}
		}

		now := time.Now()
		if res.report.ChunksChanged > 0 || now.Sub(lastProgress) >= 5*time.Second || totals.RegionsProcessed == total {
			if log.Enabled(log.InfoLevel) {
				elapsed := now.Sub(started).Seconds()
				var rps float64
				if elapsed > 0 {
					rps = float64(totals.RegionsProcessed) / elapsed
				}
				log.Infof(
					"Progress: regions %d/%d (%.2f r/s), chunks %d, changed_chunks %d, palette_changes %d",
					totals.RegionsProcessed, total, rps, totals.ChunksProcessed, totals.ChunksChanged, totals.EntriesChanged,
				)
			}
			lastProgress = now
		}
	}

	elapsed := time.Since(started)
	mm := int(elapsed.Minutes())
	ss := int(elapsed.Seconds()) % 60
	log.Infof(
		"Summary: regions %d processed, %d changed, %d failed; chunks %d processed, %d changed, %d parse errors; palette entries changed: %d; elapsed %02d:%02d",
		totals.RegionsProcessed, totals.RegionsChanged, totals.RegionsFailed,
		totals.ChunksProcessed, totals.ChunksChanged, totals.ParseErrors, totals.EntriesChanged, mm, ss,
	)
	return totals
}
