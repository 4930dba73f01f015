package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"partbench/internal/driver"
	"partbench/internal/expconfig"
	"partbench/pkg/config/env"
)

func main() {
	cli := parseFlags()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	env.LoadDotEnv(cli.EnvPath)

	if cli.ConfigPath == "" {
		slog.Error("Missing required --config flag")
		os.Exit(1)
	}

	cfg, err := expconfig.LoadFromFile(cli.ConfigPath)
	if err != nil {
		slog.Error("Failed to load experiment config", "path", cli.ConfigPath, "error", err)
		os.Exit(1)
	}
	if cfg.Server == "" {
		cfg.Server = expconfig.DefaultServer()
	}

	resultsRoot, err := resolveResultsRoot(cli, cfg)
	if err != nil {
		slog.Error("Failed to resolve results root", "error", err)
		os.Exit(1)
	}
	outputsRoot, err := resolveOutputsRoot(cli)
	if err != nil {
		slog.Error("Failed to resolve outputs root", "error", err)
		os.Exit(1)
	}

	d := driver.New(cfg, driver.Options{
		ResultsRoot:  resultsRoot,
		OutputsRoot:  outputsRoot,
		GraphSetsDir: cli.GraphSetsDir,
		Overwrite:    cli.Overwrite,
	})

	runs, err := d.Tasks()
	if err != nil {
		slog.Error("Failed to enumerate runs", "error", err)
		os.Exit(1)
	}
	slog.Info("Extracting results",
		"server", cfg.Server,
		"runs", len(runs),
		"results_root", resultsRoot,
		"outputs_root", filepath.Clean(outputsRoot))

	sum := d.ProcessAll(runs)
	if sum.Failed > 0 {
		os.Exit(1)
	}
}
