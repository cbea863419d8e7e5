// Package curve aggregates per-task pass@k values into comparison curves
// across agents, one data point per sample budget k.
package curve

import (
	"github.com/spboyer/passcurve/internal/statistics"
)

// TaskResult is the attempt outcome for a single task: how many of the
// agent's attempts at it passed.
type TaskResult struct {
	Task    string `json:"task"`
	Correct int    `json:"correct"`
}

// AgentStats holds one agent's evaluation data: the attempt budget applied
// uniformly to every task, and the per-task pass counts.
type AgentStats struct {
	Attempts int          `json:"attempts"`
	Tasks    []TaskResult `json:"tasks"`
}

// Point is one curve sample: the budget k and each agent's cross-task
// average pass@k at that budget.
type Point struct {
	K      int                `json:"k"`
	Values map[string]float64 `json:"values"`
}

// Compute builds the pass@k comparison curve for the given agents, one Point
// per k from 1 up to the ceiling, ascending with no gaps. The ceiling is
// maxK when positive, otherwise the largest attempt budget across agents.
// An empty agent map or a non-positive ceiling yields a nil slice.
//
// Agents with no task results contribute a defined 0 at every k rather than
// a missing entry, so every Point carries a value for every agent. Inputs
// are never mutated; task pass counts are fed to the estimator as supplied,
// so records violating 0 ≤ correct ≤ attempts produce undefined values.
func Compute(agents map[string]AgentStats, maxK int) []Point {
	if len(agents) == 0 {
		return nil
	}

	ceiling := maxK
	if ceiling <= 0 {
		for _, stats := range agents {
			if stats.Attempts > ceiling {
				ceiling = stats.Attempts
			}
		}
	}
	if ceiling <= 0 {
		return nil
	}

	points := make([]Point, 0, ceiling)
	for k := 1; k <= ceiling; k++ {
		point := Point{K: k, Values: make(map[string]float64, len(agents))}
		for agent, stats := range agents {
			point.Values[agent] = averagePassAtK(stats, k)
		}
		points = append(points, point)
	}
	return points
}

// averagePassAtK is the cross-task mean of the estimator for one agent at
// one budget. No tasks means a defined zero.
func averagePassAtK(stats AgentStats, k int) float64 {
	if len(stats.Tasks) == 0 {
		return 0
	}
	values := make([]float64, len(stats.Tasks))
	for i, task := range stats.Tasks {
		values[i] = statistics.PassAtK(stats.Attempts, task.Correct, k)
	}
	return statistics.Mean(values)
}

// TaskValues returns the per-task pass@k values for one agent at one budget,
// in task order. Used to derive uncertainty bands over the same values the
// curve averages.
func TaskValues(stats AgentStats, k int) []float64 {
	values := make([]float64, len(stats.Tasks))
	for i, task := range stats.Tasks {
		values[i] = statistics.PassAtK(stats.Attempts, task.Correct, k)
	}
	return values
}
