package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/subcommands"

	"github.com/bwkimmel/biomeremap/internal/job"
	"github.com/bwkimmel/biomeremap/internal/probe"
	"github.com/bwkimmel/biomeremap/internal/remap"
	"github.com/bwkimmel/biomeremap/internal/worker"
	"github.com/bwkimmel/biomeremap/log"
)

// Remap implements the remap command: it edits a Minecraft world's
// region files in place, rewriting biome palette strings according to a
// translation table.
type Remap struct {
	dimension           string
	yRange              yRangeFlag
	processes           int
	dryRun              bool
	noBackup            bool
	yes                 bool
	mappingINIPath      string
	exportDefaultPath   string
	unmappedTerralithTo string
	debugSample         int
	debugErrors         int
	debugStructure      int
	probePrefix         string
	probeMaxRegions     int
	probeMaxChunks      int
}

func (*Remap) Name() string { return "remap" }

func (*Remap) Synopsis() string {
	return "Remap biome palette ids in a Minecraft world's region files."
}

func (*Remap) Usage() string {
	return `remap [<flags>...] <world>
Remap biome identifiers inside a Minecraft Java Edition world's region
files (the Anvil *.mca format used by 1.18+), in place.

WARNING: This command will modify your world in-place. You should make a
backup of your world before proceeding.

Only biome palette strings are rewritten; blocks, entities, tile
entities, heightmaps, and the packed biome index data are left
untouched.

`
}

func (r *Remap) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.dimension, "dimension", "overworld", "overworld|nether|end|<path to a region folder>.")
	f.Var(&r.yRange, "y", "Y_MIN,Y_MAX as one comma-separated value (e.g. -y 100,200): optional inclusive Y filter. Two separate values are not accepted.")
	f.IntVar(&r.processes, "processes", 0, "Worker goroutines (default: logical CPU count).")
	f.BoolVar(&r.dryRun, "dry-run", false, "Do not write files, just report what would change.")
	f.BoolVar(&r.noBackup, "no-backup", false, "Do not create .bak backups for modified region files.")
	f.BoolVar(&r.yes, "yes", false, "Do not ask for confirmation before proceeding.")
	f.StringVar(&r.mappingINIPath, "mapping-ini", "", "Path to a mapping INI file. If omitted, uses the built-in default mapping.")
	f.StringVar(&r.exportDefaultPath, "export-default-mapping-ini", "", "Write the built-in default mapping.ini to this path and exit.")
	f.StringVar(&r.unmappedTerralithTo, "unmapped-terralith-to", "", "Remap any terralith:* biome not in the mapping to this biome id.")
	f.IntVar(&r.debugSample, "debug-sample", 0, "Print N sampled biome palette entries from the world (0 disables).")
	f.IntVar(&r.debugErrors, "debug-errors", 0, "Print details for up to N chunk parse errors, otherwise silently counted (0 disables).")
	f.IntVar(&r.debugStructure, "debug-structure", 0, "Print up to N sampled chunks' matched NBT schema variant (0 disables).")
	f.StringVar(&r.probePrefix, "probe-prefix", "", "Scan until a biome palette entry starts with this prefix; does not modify anything.")
	f.IntVar(&r.probeMaxRegions, "probe-max-regions", 200, "Max region files to scan in probe mode (0 = no limit).")
	f.IntVar(&r.probeMaxChunks, "probe-max-chunks", 200000, "Max chunks to scan in probe mode (0 = no limit).")
}

func (r *Remap) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if r.exportDefaultPath != "" {
		if err := os.WriteFile(r.exportDefaultPath, []byte(remap.DefaultMappingINI), 0o644); err != nil {
			log.Errorf("ERROR: cannot write default mapping: %v", err)
			return subcommands.ExitFailure
		}
		log.Infof("Wrote default mapping.ini to: %s", r.exportDefaultPath)
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		log.Error("ERROR: <world> is required.")
		return subcommands.ExitUsageError
	}
	if f.NArg() > 1 {
		log.Error("ERROR: extra positional arguments found.")
		return subcommands.ExitUsageError
	}
	world := f.Arg(0)

	regionDir, err := job.ResolveRegionDir(world, r.dimension)
	if err != nil {
		log.Errorf("ERROR: %v", err)
		return subcommands.ExitFailure
	}

	files, err := job.Enumerate(regionDir)
	if err != nil {
		log.Errorf("ERROR: %v", err)
		return subcommands.ExitFailure
	}
	if len(files) == 0 {
		log.Errorf("ERROR: no region files found in: %s", regionDir)
		return subcommands.ExitFailure
	}

	yFiltered := r.yRange.set
	if r.probePrefix != "" {
		log.Infof("Probe mode: prefix=%q", r.probePrefix)
		if yFiltered {
			log.Infof("Y filter: %d..%d", r.yRange.min, r.yRange.max)
		}
		result, err := probe.Run(files, probe.Options{
			Prefix:     r.probePrefix,
			YMin:       r.yRange.min,
			YMax:       r.yRange.max,
			YFiltered:  yFiltered,
			MaxRegions: r.probeMaxRegions,
			MaxChunks:  r.probeMaxChunks,
		})
		if err != nil {
			log.Errorf("ERROR: %v", err)
			return subcommands.ExitFailure
		}
		if !result.Found {
			log.Infof("Not found. Scanned regions=%d, chunks=%d, prefix=%q", result.RegionsScanned, result.ChunksScanned, r.probePrefix)
			return subcommands.ExitStatus(2)
		}
		sy := "?"
		if result.HasSectionY {
			sy = fmt.Sprintf("%d", result.SectionY)
		}
		log.Infof("FOUND in %s (chunk_idx=%d, sectionY=%s):", result.RegionFile, result.ChunkIndex, sy)
		for _, h := range result.Hits {
			log.Infof("  - %s", h)
		}
		return subcommands.ExitSuccess
	}

	entries, mappingSrc, err := r.loadMapping()
	if err != nil {
		log.Errorf("ERROR: %v", err)
		return subcommands.ExitFailure
	}
	mapping := remap.New(entries)
	if r.unmappedTerralithTo != "" {
		mapping = mapping.WithFallback(r.unmappedTerralithTo)
	}

	if !r.yes && !r.dryRun {
		confirm()
	}

	log.Infof("Region folder: %s", regionDir)
	log.Infof("Regions: %d", len(files))
	log.Infof("Mapping entries: %d (source: %s)", mapping.Len(), mappingSrc)
	if r.unmappedTerralithTo != "" {
		log.Infof("Unmapped terralith:* -> %s", r.unmappedTerralithTo)
	}
	if yFiltered {
		log.Infof("Y filter: %d..%d", r.yRange.min, r.yRange.max)
	} else {
		log.Info("Y filter: off (processing all Y levels)")
	}
	log.Infof("Backups: %s", onOff(!r.noBackup))

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	totals := job.Run(runCtx, files, job.Options{
		Processes: r.processes,
		Worker: worker.Options{
			Mapping:        mapping,
			YMin:           r.yRange.min,
			YMax:           r.yRange.max,
			YFiltered:      yFiltered,
			DryRun:         r.dryRun,
			MakeBackup:     !r.noBackup,
			DebugSample:    r.debugSample,
			DebugErrors:    r.debugErrors,
			DebugStructure: r.debugStructure,
		},
	})

	if r.debugSample > 0 {
		uniq := uniqueInOrder(totals.Samples)
		log.Infof("Sample biome palette entries (up to %d, unique=%d):", r.debugSample, len(uniq))
		for _, s := range uniq {
			log.Infof("  - %s", s)
		}
	}
	if r.debugErrors > 0 {
		log.Infof("Chunk parse errors (up to %d of %d total):", r.debugErrors, totals.ParseErrors)
		for _, s := range totals.ErrorSamples {
			log.Infof("  - %s", s)
		}
	}
	if r.debugStructure > 0 {
		log.Infof("Sampled NBT schema variants (up to %d):", r.debugStructure)
		for _, s := range totals.StructureSamples {
			log.Infof("  - %s", s)
		}
	}
	if r.dryRun {
		log.Info("Dry-run: no files were modified.")
	}

	return subcommands.ExitSuccess
}

func (r *Remap) loadMapping() (map[string]string, string, error) {
	if r.mappingINIPath == "" {
		return loadMappingINIText(remap.DefaultMappingINI), "builtin", nil
	}
	if _, err := os.Stat(r.mappingINIPath); err != nil {
		return nil, "", fmt.Errorf("mapping INI not found: %s", r.mappingINIPath)
	}
	entries, err := loadMappingINIFile(r.mappingINIPath)
	if err != nil {
		return nil, "", err
	}
	return entries, fmt.Sprintf("ini:%s", r.mappingINIPath), nil
}

// uniqueInOrder removes duplicates from samples, keeping first-seen
// order.
func uniqueInOrder(samples []string) []string {
	seen := make(map[string]bool, len(samples))
	var out []string
	for _, s := range samples {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// yRangeFlag implements flag.Value for the --y flag, accepting a
// "min,max" pair. The bounds are swapped if given in reverse order.
type yRangeFlag struct {
	min, max int
	set      bool
}

func (y *yRangeFlag) String() string {
	if !y.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", y.min, y.max)
}

func (y *yRangeFlag) Set(s string) error {
	var a, b int
	if _, err := fmt.Sscanf(s, "%d,%d", &a, &b); err != nil {
		return fmt.Errorf("expected Y_MIN,Y_MAX, got %q", s)
	}
	if a > b {
		a, b = b, a
	}
	y.min, y.max, y.set = a, b, true
	return nil
}
