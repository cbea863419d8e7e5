package main

import (
	"encoding/json"
	"fmt"

	"github.com/spboyer/passcurve/internal/statistics"
	"github.com/spf13/cobra"
)

func newEstimateCommand() *cobra.Command {
	var (
		attempts int
		correct  int
		budget   int
		format   string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Compute a single pass@k value",
		Long: `Compute the unbiased pass@k estimator for one task.

Given n total attempts of which c passed, prints the probability that at
least one of k attempts sampled without replacement is a pass:

  passcurve estimate -n 10 -c 3 -k 1   # 0.3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format %q: must be text or json", format)
			}
			if attempts < 1 {
				return fmt.Errorf("attempts (-n) must be at least 1, got %d", attempts)
			}
			if correct < 0 || correct > attempts {
				return fmt.Errorf("correct (-c) must be in [0, %d], got %d", attempts, correct)
			}

			value := statistics.PassAtK(attempts, correct, budget)

			if format == "json" {
				out := struct {
					N       int     `json:"n"`
					C       int     `json:"c"`
					K       int     `json:"k"`
					PassAtK float64 `json:"pass_at_k"`
				}{attempts, correct, budget, value}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal estimate: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Printf("pass@%d = %.6f\n", budget, value)
			return nil
		},
	}

	cmd.Flags().IntVarP(&attempts, "attempts", "n", 0, "Total attempts recorded for the task")
	cmd.Flags().IntVarP(&correct, "correct", "c", 0, "Attempts that passed")
	cmd.Flags().IntVarP(&budget, "budget", "k", 1, "Sample budget k")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("attempts")

	return cmd
}
