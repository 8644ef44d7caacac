package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbertram/kauffman/internal/cli"
	"github.com/nbertram/kauffman/internal/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a random boolean network experiment",
	Long: `Builds a network from an experiment file or flags, drives it through the
configured number of transitions, and logs the run diagnostics. With --json
every state vector is streamed to stdout as NDJSON, one frame per line, for
an external renderer to consume.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")

		exp := config.Default()
		exp.Nodes, _ = cmd.Flags().GetInt("nodes")
		exp.Edges, _ = cmd.Flags().GetInt("edges")
		exp.Topology, _ = cmd.Flags().GetString("topology")
		exp.ActivationProbability, _ = cmd.Flags().GetFloat64("activation")
		exp.InitialStateProbability, _ = cmd.Flags().GetFloat64("initial")
		exp.Steps, _ = cmd.Flags().GetInt("steps")
		exp.Disturbances, _ = cmd.Flags().GetInt("disturbances")
		exp.DisturbanceProbability, _ = cmd.Flags().GetFloat64("disturbance-probability")
		exp.Seed, _ = cmd.Flags().GetInt64("seed")

		opts := cli.RunOptions{
			ConfigPath: configPath,
			Experiment: exp,
			JSON:       jsonMode,
			Debug:      debug,
		}
		if err := cli.RunExperiment(opts, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "Path to a YAML experiment file (overrides the other flags)")
	runCmd.Flags().Bool("json", false, "Stream frames to stdout as NDJSON")

	defaults := config.Default()
	runCmd.Flags().Int("nodes", 40, "Number of nodes")
	runCmd.Flags().Int("edges", 400, "Number of distinct edges")
	runCmd.Flags().String("topology", defaults.Topology, "Edge-generation algorithm")
	runCmd.Flags().Float64("activation", defaults.ActivationProbability, "Probability a rule-table entry outputs on")
	runCmd.Flags().Float64("initial", defaults.InitialStateProbability, "Probability a node starts on")
	runCmd.Flags().Int("steps", 2000, "Number of transitions in the run")
	runCmd.Flags().Int("disturbances", 0, "Number of evenly spaced disturbance events")
	runCmd.Flags().Float64("disturbance-probability", defaults.DisturbanceProbability, "Per-node flip probability of each disturbance")
	runCmd.Flags().Int64("seed", 0, "Random seed (0 picks one)")
}
