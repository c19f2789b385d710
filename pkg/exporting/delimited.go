// Package exporting writes run summaries as delimited tables, a Parquet
// archive and a YAML run report.
package exporting

import (
	"SyncProfiler/pkg/formatting"
	"SyncProfiler/pkg/summarizing"
	"SyncProfiler/pkg/utils"
)

// SummaryHeader is the column layout of the summary tables.
var SummaryHeader = []string{"perfil", "tipo", "metrica", "media", "mediana", "std", "min", "max", "valores"}

// GlobalHeader is the column layout of the global statistics table.
var GlobalHeader = []string{"tipo", "metrica", "media", "std", "min", "max"}

// SummaryRows renders summaries as delimited rows. Missing values are empty.
func SummaryRows(summaries []summarizing.Summary) [][]string {
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			s.Profile,
			string(s.Type),
			s.Metric,
			utils.FormatFloat(s.Mean),
			utils.FormatFloat(s.Median),
			utils.FormatFloat(s.StdDev),
			utils.FormatFloat(s.Min),
			utils.FormatFloat(s.Max),
			utils.FormatValue(s.Count),
		}
	}
	return rows
}

// WriteSummaries writes the summary table. An empty table keeps its header.
func WriteSummaries(path string, summaries []summarizing.Summary) error {
	return formatting.SaveRows(path, formatting.SemicolonDelimiter, SummaryHeader, SummaryRows(summaries))
}

// WritePivot writes the profile × (type, metric) table. The two column
// levels occupy the first two header rows, the index name the third.
func WritePivot(path string, p *summarizing.Pivot) error {
	types := make([]string, 0, len(p.Columns)+1)
	metrics := make([]string, 0, len(p.Columns)+1)
	index := make([]string, len(p.Columns)+1)

	types = append(types, "tipo")
	metrics = append(metrics, "metrica")
	index[0] = "perfil"
	for _, k := range p.Columns {
		types = append(types, string(k.Type))
		metrics = append(metrics, k.Metric)
	}

	rows := make([][]string, len(p.Profiles))
	for i, profile := range p.Profiles {
		row := make([]string, 0, len(p.Columns)+1)
		row = append(row, profile)
		for _, v := range p.Values[i] {
			row = append(row, utils.FormatFloat(v))
		}
		rows[i] = row
	}

	return formatting.SaveTable(path, formatting.SemicolonDelimiter, [][]string{types, metrics, index}, rows)
}

// WriteGlobalStats writes the cross-profile statistics table.
func WriteGlobalStats(path string, stats []summarizing.GlobalStat) error {
	rows := make([][]string, len(stats))
	for i, g := range stats {
		rows[i] = []string{
			string(g.Type),
			g.Metric,
			utils.FormatFloat(g.Mean),
			utils.FormatFloat(g.StdDev),
			utils.FormatFloat(g.Min),
			utils.FormatFloat(g.Max),
		}
	}
	return formatting.SaveRows(path, formatting.SemicolonDelimiter, GlobalHeader, rows)
}
