// Package driver walks the completed runs of an experiment, feeds each one
// through the result-extraction core, and merges the canonical records into
// their result tables. It never invokes the partitioner binaries; it only
// consumes outputs they already wrote.
package driver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"partbench/internal/expconfig"
	"partbench/internal/results"
)

type Options struct {
	// ResultsRoot is where merged CSV tables are written.
	ResultsRoot string
	// OutputsRoot is where the external runner left the raw run outputs.
	OutputsRoot string
	// GraphSetsDir holds the graph set files, one graph name per line.
	GraphSetsDir string
	// Overwrite replaces existing rows instead of skipping them.
	Overwrite bool
}

type Driver struct {
	cfg  *expconfig.Config
	opts Options
}

func New(cfg *expconfig.Config, opts Options) *Driver {
	return &Driver{cfg: cfg, opts: opts}
}

// Run is one completed run to extract. Exactly one of ArtifactPath (FBS) and
// LinePath (line-based) is set, per the algorithm's output format.
type Run struct {
	Meta         results.RunMeta
	Format       results.OutputFormat
	ArtifactPath string
	LinePath     string
}

// Summary counts what happened to each enumerated run.
type Summary struct {
	Merged  int
	Skipped int
	Missing int
	Failed  int
}

// Tasks enumerates every (ordering, set, configuration, to_run row, graph, k)
// combination enabled by the config and resolves where its raw output lives:
//
//	<outputsRoot>/<set>/<ordering>/<cores>/<algName>/<graph>_<k>.bin|.txt
func (d *Driver) Tasks() ([]Run, error) {
	server := d.cfg.Server
	if server == "" {
		server = expconfig.DefaultServer()
	}

	var runs []Run
	for _, ordering := range sortedKeys(d.cfg.Orderings) {
		sets := d.cfg.Orderings[ordering]
		for _, set := range sortedKeys(sets) {
			if !sets[set] {
				continue
			}
			graphs, err := expconfig.ReadGraphSet(d.opts.GraphSetsDir, set)
			if err != nil {
				return nil, err
			}
			setCfg := d.cfg.SetFor(set)

			for _, conf := range d.cfg.Configurations {
				for _, row := range conf.ToRun {
					algName, err := expconfig.AlgoName(conf, row)
					if err != nil {
						return nil, err
					}
					params, err := expconfig.RunParams(conf, row)
					if err != nil {
						return nil, err
					}
					format := results.Classify(algName)

					for _, graph := range graphs {
						rawGraph, err := expconfig.GraphName(graph, ordering)
						if err != nil {
							return nil, err
						}
						for _, k := range setCfg.K {
							run := Run{
								Meta: results.RunMeta{
									Server:         server,
									Ordering:       ordering,
									CoreCount:      conf.MaxCores,
									Graph:          rawGraph,
									K:              k,
									Algorithm:      algName,
									Params:         params,
									GraphEdgeCount: d.cfg.Graphs[graph],
								},
								Format: format,
							}
							base := filepath.Join(d.opts.OutputsRoot, set, ordering,
								results.FormatCoreCount(conf.MaxCores), algName,
								fmt.Sprintf("%s_%d", rawGraph, k))
							if format == results.LineBased {
								run.LinePath = base + ".txt"
							} else {
								run.ArtifactPath = base + ".bin"
							}
							runs = append(runs, run)
						}
					}
				}
			}
		}
	}
	return runs, nil
}

// ProcessAll extracts and merges every run. A run that fails to parse or
// merge is logged with enough context to find it again and the batch
// continues; only enumeration-level problems abort.
func (d *Driver) ProcessAll(runs []Run) Summary {
	log := slog.With("batch", uuid.New().String())

	policy := results.SkipExisting
	if d.opts.Overwrite {
		policy = results.Overwrite
	}

	var sum Summary
	for _, run := range runs {
		outputPath := run.ArtifactPath
		if run.Format == results.LineBased {
			outputPath = run.LinePath
		}
		if _, err := os.Stat(outputPath); err != nil {
			sum.Missing++
			log.Debug("run output not found",
				"algorithm", run.Meta.Algorithm, "graph", run.Meta.Graph, "k", run.Meta.K,
				"path", outputPath)
			continue
		}

		outcome, err := d.process(run, policy)
		if err != nil {
			sum.Failed++
			log.Warn("run extraction failed",
				"algorithm", run.Meta.Algorithm, "graph", run.Meta.Graph, "k", run.Meta.K,
				"error", err)
			continue
		}
		if outcome == results.Skipped {
			sum.Skipped++
			continue
		}
		sum.Merged++
	}

	log.Info("batch done",
		"merged", sum.Merged, "skipped", sum.Skipped,
		"missing", sum.Missing, "failed", sum.Failed)
	return sum
}

func (d *Driver) process(run Run, policy results.MergePolicy) (results.MergeOutcome, error) {
	var (
		rec results.MetricRecord
		err error
	)
	switch run.Format {
	case results.LineBased:
		var line string
		line, err = readFirstLine(run.LinePath)
		if err == nil {
			rec, err = results.ParseLine(line, run.Meta)
		}
	default:
		rec, err = results.ParseFBS(run.ArtifactPath, run.Meta)
	}
	if err != nil {
		return results.Skipped, err
	}

	tablePath, _, err := results.BuildKey(d.opts.ResultsRoot, run.Meta)
	if err != nil {
		return results.Skipped, err
	}
	return results.Merge(tablePath, rec, policy)
}

func readFirstLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read result line: %w", err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return line, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
