package main

import (
	"flag"
	"os"
	"path/filepath"

	"partbench/internal/expconfig"
)

type cliConfig struct {
	ConfigPath   string
	GraphSetsDir string
	OutputsRoot  string
	ResultsRoot  string
	Overwrite    bool
	EnvPath      string
	Verbose      bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to the experiment config YAML (required)")
	flag.StringVar(&cfg.GraphSetsDir, "graph-sets", "graph_sets", "Directory with graph set files")
	flag.StringVar(&cfg.OutputsRoot, "outputs", "", "Directory with raw run outputs (default ~/results)")
	flag.StringVar(&cfg.ResultsRoot, "results-root", "", "Directory for merged CSV tables (default from config, RESULTS_ROOT, or ~/results/processed_results)")
	flag.BoolVar(&cfg.Overwrite, "overwrite", false, "Replace existing rows instead of skipping them")
	flag.StringVar(&cfg.EnvPath, "env", ".env", "Path to .env file")
	flag.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

// resolveResultsRoot picks the results root by precedence: flag, config
// value, RESULTS_ROOT env var, then the fixed default under the home
// directory. Set once at startup; read-only afterwards.
func resolveResultsRoot(cli cliConfig, cfg *expconfig.Config) (string, error) {
	switch {
	case cli.ResultsRoot != "":
		return expandHome(cli.ResultsRoot)
	case cfg.ResultsRoot != "":
		return expandHome(cfg.ResultsRoot)
	case os.Getenv("RESULTS_ROOT") != "":
		return expandHome(os.Getenv("RESULTS_ROOT"))
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "results", "processed_results"), nil
	}
}

func resolveOutputsRoot(cli cliConfig) (string, error) {
	if cli.OutputsRoot != "" {
		return expandHome(cli.OutputsRoot)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "results"), nil
}

func expandHome(path string) (string, error) {
	if len(path) < 2 || path[:2] != "~/" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
