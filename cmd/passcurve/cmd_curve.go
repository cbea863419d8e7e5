package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/passcurve/internal/curve"
	"github.com/spboyer/passcurve/internal/projectconfig"
	"github.com/spboyer/passcurve/internal/results"
	"github.com/spboyer/passcurve/internal/statistics"
	"github.com/spf13/cobra"
)

var (
	curveMaxK         int
	curveOutputFormat string
	curveWithCI       bool
	curveCIMethod     string
)

func newCurveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve <results.json> [results2.json ...]",
		Short: "Compute a pass@k comparison curve across agents",
		Long: `Compute the pass@k comparison curve for one or more agent result files.

Each file holds one agent's attempt budget and per-task pass counts (JSON or
YAML, optionally gzipped). The output has one row per sample budget k from 1
up to --max-k (default: the largest attempt budget across agents), with every
agent's cross-task average pass@k at that k.`,
		Args: cobra.MinimumNArgs(1),
		RunE: curveCommandE,
	}

	cmd.Flags().IntVar(&curveMaxK, "max-k", 0, "Curve ceiling (default: largest attempt budget)")
	cmd.Flags().StringVarP(&curveOutputFormat, "format", "f", "", "Output format: table or json")
	cmd.Flags().BoolVar(&curveWithCI, "ci", false, "Append confidence intervals at the final k")
	cmd.Flags().StringVar(&curveCIMethod, "ci-method", "bootstrap", "Interval method: bootstrap or normal (95% normal approximation)")

	return cmd
}

// agentInterval pairs an agent with its uncertainty band at the final k.
type agentInterval struct {
	Agent    string              `json:"agent"`
	Interval statistics.Interval `json:"interval"`
}

// curveReport is the full curve output.
type curveReport struct {
	Files     []string        `json:"files"`
	Agents    []string        `json:"agents"`
	MaxK      int             `json:"max_k"`
	Points    []curve.Point   `json:"points"`
	Intervals []agentInterval `json:"intervals,omitempty"`
}

func curveCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	maxK := curveMaxK
	if maxK <= 0 {
		maxK = cfg.Defaults.MaxK
	}
	format := curveOutputFormat
	if format == "" {
		format = cfg.Defaults.Format
	}
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}
	if curveCIMethod != "bootstrap" && curveCIMethod != "normal" {
		return fmt.Errorf("unsupported ci-method %q: must be bootstrap or normal", curveCIMethod)
	}

	agents, err := results.LoadFiles(args)
	if err != nil {
		return err
	}

	points := curve.Compute(agents, maxK)
	if len(points) == 0 {
		return fmt.Errorf("no curve points: no agent has a positive attempt budget")
	}

	report := buildCurveReport(args, agents, points, cfg)

	if format == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal curve report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}
	printCurveTable(cmd, report)
	return nil
}

func buildCurveReport(files []string, agents map[string]curve.AgentStats, points []curve.Point, cfg *projectconfig.ProjectConfig) *curveReport {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &curveReport{
		Files:  files,
		Agents: names,
		MaxK:   len(points),
		Points: points,
	}

	if curveWithCI {
		finalK := points[len(points)-1].K
		for _, name := range names {
			values := curve.TaskValues(agents[name], finalK)
			var iv statistics.Interval
			if curveCIMethod == "normal" {
				lo, hi := statistics.ConfidenceInterval95(values)
				iv = statistics.Interval{Lower: lo, Upper: hi, Mean: statistics.Mean(values), Confidence: 0.95}
			} else {
				iv = statistics.BootstrapIntervalSeeded(values, cfg.Confidence.Level, cfg.Confidence.Bootstrap, -1)
			}
			report.Intervals = append(report.Intervals, agentInterval{Agent: name, Interval: iv})
		}
	}

	return report
}

func printCurveTable(cmd *cobra.Command, r *curveReport) {
	const valueWidth = 10

	colWidths := make([]int, len(r.Agents))
	for i, name := range r.Agents {
		colWidths[i] = max(runewidth.StringWidth(name), valueWidth)
	}

	// Header
	cmd.Printf("  %-5s", "k")
	for i, name := range r.Agents {
		cmd.Printf("  %s", padRight(name, colWidths[i]))
	}
	cmd.Println()

	cmd.Printf("  %s", strings.Repeat("-", 5))
	for _, w := range colWidths {
		cmd.Printf("  %s", strings.Repeat("-", w))
	}
	cmd.Println()

	for _, p := range r.Points {
		cmd.Printf("  %-5d", p.K)
		for i, name := range r.Agents {
			cmd.Printf("  %s", padRight(fmt.Sprintf("%.4f", p.Values[name]), colWidths[i]))
		}
		cmd.Println()
	}

	if len(r.Intervals) > 0 {
		finalK := r.Points[len(r.Points)-1].K
		cmd.Println()
		cmd.Printf("  %.0f%% bootstrap intervals at k=%d:\n", r.Intervals[0].Interval.Confidence*100, finalK)
		for _, ai := range r.Intervals {
			iv := ai.Interval
			cmd.Printf("    %s  mean %.4f  [%.4f, %.4f]\n", padRight(ai.Agent, longestAgent(r.Agents)), iv.Mean, iv.Lower, iv.Upper)
		}
	}
}

func longestAgent(agents []string) int {
	w := 0
	for _, a := range agents {
		w = max(w, runewidth.StringWidth(a))
	}
	return w
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
