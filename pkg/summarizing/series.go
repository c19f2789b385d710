package summarizing

import (
	"math"
)

// RollingWindow is the trailing window of the rolling mean overlay.
const RollingWindow = 5

// Traffic units for counter charts. Counters are logged in kB.
const (
	UnitMB = "MB"
	UnitGB = "GB"
)

// RollingMean returns the trailing mean over window samples. Windows at the
// start of the series use the samples available; NaN values are ignored and
// a window without any value yields NaN.
func RollingMean(values []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		out[i] = Mean(values[start : i+1])
	}
	return out
}

// Deltas returns successive differences of a cumulative counter. The first
// sample has no predecessor and is NaN; negative differences (counter resets)
// are clamped to zero.
func Deltas(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		if i == 0 {
			out[i] = math.NaN()
			continue
		}
		d := values[i] - values[i-1]
		if d < 0 {
			d = 0
		}
		out[i] = d
	}
	return out
}

// ConvertTraffic converts kB deltas to the requested unit.
func ConvertTraffic(values []float64, unit string) []float64 {
	divisor := 1.0
	switch unit {
	case UnitMB:
		divisor = 1000
	case UnitGB:
		divisor = 1e6
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / divisor
	}
	return out
}

// Present returns the non-NaN values.
func Present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
