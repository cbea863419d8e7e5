package statistics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.75}, 0.75},
		{"multiple", []float64{0.1, 0.2, 0.3, 0.4, 0.5}, 0.3},
		{"all_same", []float64{0.5, 0.5, 0.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Mean(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.4}, 0},
		{"identical", []float64{0.3, 0.3, 0.3}, 0},
		{"spread", []float64{0, 1}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Variance(tt.input)
			if !approxEqual(got, tt.expect) {
				t.Errorf("Variance(%v) = %f, want %f", tt.input, got, tt.expect)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	got := StdDev([]float64{0, 1})
	if !approxEqual(got, 0.5) {
		t.Errorf("StdDev([0, 1]) = %f, want 0.5", got)
	}
}

func TestConfidenceInterval95_Degenerate(t *testing.T) {
	lo, hi := ConfidenceInterval95([]float64{0.6})
	if lo != 0.6 || hi != 0.6 {
		t.Errorf("expected degenerate interval (0.6, 0.6), got (%f, %f)", lo, hi)
	}
	lo, hi = ConfidenceInterval95(nil)
	if lo != 0 || hi != 0 {
		t.Errorf("expected zero interval for empty input, got (%f, %f)", lo, hi)
	}
}

func TestConfidenceInterval95_ContainsMean(t *testing.T) {
	values := []float64{0.2, 0.4, 0.6, 0.8}
	lo, hi := ConfidenceInterval95(values)
	m := Mean(values)
	if lo >= m || hi <= m {
		t.Errorf("interval (%f, %f) should strictly contain mean %f", lo, hi, m)
	}
}
