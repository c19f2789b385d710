package summarizing

import (
	"math"
	"sort"
)

// Key identifies a (type, metric) pair.
type Key struct {
	Type   LogType
	Metric string
}

func (k Key) less(o Key) bool {
	if k.Type != o.Type {
		return k.Type < o.Type
	}
	return k.Metric < o.Metric
}

// Metrics returns the distinct metric names in order of first appearance.
func Metrics(summaries []Summary) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range summaries {
		if !seen[s.Metric] {
			seen[s.Metric] = true
			out = append(out, s.Metric)
		}
	}
	return out
}

// Filter returns the summaries of one (type, metric) pair.
func Filter(summaries []Summary, logType LogType, metric string) []Summary {
	var out []Summary
	for _, s := range summaries {
		if s.Type == logType && s.Metric == metric {
			out = append(out, s)
		}
	}
	return out
}

// ProfileMeans returns one value per distinct profile, in order of first
// appearance. A profile logged more than once keeps its first summary.
func ProfileMeans(summaries []Summary) ([]string, []float64) {
	seen := make(map[string]bool)
	var profiles []string
	var values []float64
	for _, s := range summaries {
		if seen[s.Profile] {
			continue
		}
		seen[s.Profile] = true
		profiles = append(profiles, s.Profile)
		values = append(values, s.Mean)
	}
	return profiles, values
}

// Pivot is the profile × (type, metric) table of mean values.
type Pivot struct {
	Profiles []string
	Columns  []Key

	// Values[i][j] is the value of Profiles[i] in Columns[j]; NaN when absent.
	Values [][]float64
}

// BuildPivot averages the Mean field per (profile, type, metric). Rows and
// columns are sorted; rows and columns without any value are dropped.
func BuildPivot(summaries []Summary) *Pivot {
	type cell struct {
		profile string
		key     Key
	}
	groups := make(map[cell][]float64)
	profileSet := make(map[string]bool)
	keySet := make(map[Key]bool)

	for _, s := range summaries {
		if math.IsNaN(s.Mean) {
			continue
		}
		c := cell{profile: s.Profile, key: Key{Type: s.Type, Metric: s.Metric}}
		groups[c] = append(groups[c], s.Mean)
		profileSet[s.Profile] = true
		keySet[c.key] = true
	}

	p := &Pivot{}
	for profile := range profileSet {
		p.Profiles = append(p.Profiles, profile)
	}
	sort.Strings(p.Profiles)

	for k := range keySet {
		p.Columns = append(p.Columns, k)
	}
	sort.Slice(p.Columns, func(i, j int) bool { return p.Columns[i].less(p.Columns[j]) })

	p.Values = make([][]float64, len(p.Profiles))
	for i, profile := range p.Profiles {
		row := make([]float64, len(p.Columns))
		for j, k := range p.Columns {
			row[j] = Mean(groups[cell{profile: profile, key: k}])
		}
		p.Values[i] = row
	}
	return p
}

// GlobalStat aggregates one (type, metric) pair across every profile.
type GlobalStat struct {
	Key

	// Mean is the mean of the per-log means, StdDev the mean of the per-log
	// standard deviations.
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// GlobalStats groups summaries by (type, metric), sorted by type then metric.
func GlobalStats(summaries []Summary) []GlobalStat {
	type acc struct {
		means, stds, mins, maxs []float64
	}
	groups := make(map[Key]*acc)
	var keys []Key

	for _, s := range summaries {
		k := Key{Type: s.Type, Metric: s.Metric}
		g, ok := groups[k]
		if !ok {
			g = &acc{}
			groups[k] = g
			keys = append(keys, k)
		}
		g.means = append(g.means, s.Mean)
		g.stds = append(g.stds, s.StdDev)
		g.mins = append(g.mins, s.Min)
		g.maxs = append(g.maxs, s.Max)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	out := make([]GlobalStat, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		out = append(out, GlobalStat{
			Key:    k,
			Mean:   Mean(g.means),
			StdDev: Mean(g.stds),
			Min:    Min(g.mins),
			Max:    Max(g.maxs),
		})
	}
	return out
}
