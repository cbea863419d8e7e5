package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcurve",
		Short: "Passcurve - pass@k comparison curves for agent evaluation runs",
		Long: `Passcurve computes unbiased pass@k statistics over agent evaluation results.

Given per-agent result files (attempt budget plus per-task pass counts), it
produces a comparison curve: for each sample budget k, every agent's average
probability that at least one of k sampled attempts passes.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newCurveCommand())
	cmd.AddCommand(newEstimateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
