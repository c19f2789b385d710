package summarizing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics of one metric of one log.
//
// For cumulative counters Mean holds the total delta (Max - Min) across the
// log and Median/StdDev are NaN.
type Summary struct {
	Profile string
	Type    LogType
	Metric  string
	Mean    float64
	Median  float64
	StdDev  float64
	Min     float64
	Max     float64
	Count   int
}

// Summarize computes the statistics of a normalized column.
func Summarize(profile string, logType LogType, metric string, values []float64) Summary {
	present := Present(values)
	s := Summary{
		Profile: profile,
		Type:    logType,
		Metric:  metric,
		Min:     Min(present),
		Max:     Max(present),
		Count:   len(present),
	}

	if IsCounter(metric) {
		s.Mean = s.Max - s.Min
		s.Median = math.NaN()
		s.StdDev = math.NaN()
		return s
	}

	s.Mean = Mean(present)
	s.Median = Median(present)
	s.StdDev = StdDev(present)
	return s
}

// Mean returns the mean of the non-NaN values, or NaN if there are none.
func Mean(values []float64) float64 {
	p := Present(values)
	if len(p) == 0 {
		return math.NaN()
	}
	return stat.Mean(p, nil)
}

// Median returns the median of the non-NaN values. Even counts average the
// two central values.
func Median(values []float64) float64 {
	p := Present(values)
	if len(p) == 0 {
		return math.NaN()
	}
	sort.Float64s(p)
	mid := len(p) / 2
	if len(p)%2 == 1 {
		return p[mid]
	}
	return (p[mid-1] + p[mid]) / 2
}

// StdDev returns the sample standard deviation of the non-NaN values. Fewer
// than two values yield NaN.
func StdDev(values []float64) float64 {
	p := Present(values)
	if len(p) < 2 {
		return math.NaN()
	}
	return stat.StdDev(p, nil)
}

// Min returns the smallest non-NaN value, or NaN if there are none.
func Min(values []float64) float64 {
	p := Present(values)
	if len(p) == 0 {
		return math.NaN()
	}
	return floats.Min(p)
}

// Max returns the largest non-NaN value, or NaN if there are none.
func Max(values []float64) float64 {
	p := Present(values)
	if len(p) == 0 {
		return math.NaN()
	}
	return floats.Max(p)
}

// Accumulator collects summaries across all processed logs.
type Accumulator struct {
	summaries []Summary
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends a summary.
func (a *Accumulator) Add(s Summary) {
	a.summaries = append(a.summaries, s)
}

// Summaries returns the collected summaries in insertion order.
func (a *Accumulator) Summaries() []Summary {
	return a.summaries
}

// Len returns the number of collected summaries.
func (a *Accumulator) Len() int {
	return len(a.summaries)
}
