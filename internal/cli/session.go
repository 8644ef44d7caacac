// Package cli holds the session logic behind the kauffman commands, kept
// out of package main so it can be tested with ordinary writers.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nbertram/kauffman"
	"github.com/nbertram/kauffman/internal/config"
	"github.com/nbertram/kauffman/internal/logging"
)

// RunOptions configures a single experiment run.
type RunOptions struct {
	// ConfigPath points to a YAML experiment file. When empty, Experiment
	// is used as-is (built from flags).
	ConfigPath string
	Experiment config.Experiment

	// JSON streams NDJSON frames to the output writer.
	JSON bool

	// Debug enables step-level engine logging.
	Debug bool
}

// RunExperiment builds a network from the experiment definition, drives a
// full run, and logs the diagnostic stats. Frames go to out when JSON mode
// is on; logs always go to stderr.
func RunExperiment(opts RunOptions, out io.Writer) error {
	logger := createLogger(opts.Debug)

	exp := opts.Experiment
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load experiment: %w", err)
		}
		exp = loaded
	} else if err := exp.Validate(); err != nil {
		return err
	}

	seed := exp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen, err := exp.Generator()
	if err != nil {
		return err
	}

	engineOpts := []kauffman.Option{
		kauffman.WithSeed(seed),
		kauffman.WithGenerator(gen),
		kauffman.WithActivationProbability(exp.ActivationProbability),
		kauffman.WithInitialStateProbability(exp.InitialStateProbability),
	}
	if opts.Debug {
		engineOpts = append(engineOpts, kauffman.WithLogger(logger))
	}

	net, err := kauffman.New(exp.Nodes, exp.Edges, engineOpts...)
	if err != nil {
		return fmt.Errorf("construct network: %w", err)
	}

	stats := net.Stats()
	logger.Info("network constructed",
		"nodes", exp.Nodes,
		"edges", exp.Edges,
		"topology", exp.Topology,
		"total_edges", stats.TotalEdges,
		"max_in_degree", stats.MaxInDegree,
		"seed", seed,
	)

	runner := &kauffman.Runner{
		Steps:                  exp.Steps,
		Disturbances:           exp.Disturbances,
		DisturbanceProbability: exp.DisturbanceProbability,
		Logger:                 logger,
	}
	if opts.JSON {
		runner.Sink = NewFrameWriter(out)
	}

	if err := runner.Run(net); err != nil {
		return fmt.Errorf("run experiment: %w", err)
	}

	logger.Info("run complete",
		"steps", net.Steps(),
		"active", net.State().ActiveCount(),
	)
	return nil
}

func createLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}
