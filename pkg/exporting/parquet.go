package exporting

import (
	"fmt"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"

	"SyncProfiler/pkg/summarizing"
)

// SummaryRecord is the columnar layout of a summary. Missing statistics are
// stored as nulls.
type SummaryRecord struct {
	Profile string   `parquet:"perfil"`
	Type    string   `parquet:"tipo"`
	Metric  string   `parquet:"metrica"`
	Mean    *float64 `parquet:"media"`
	Median  *float64 `parquet:"mediana"`
	StdDev  *float64 `parquet:"std"`
	Min     *float64 `parquet:"min"`
	Max     *float64 `parquet:"max"`
	Count   int64    `parquet:"valores"`
}

func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewSummaryRecord converts a summary to its columnar form.
func NewSummaryRecord(s summarizing.Summary) SummaryRecord {
	return SummaryRecord{
		Profile: s.Profile,
		Type:    string(s.Type),
		Metric:  s.Metric,
		Mean:    optional(s.Mean),
		Median:  optional(s.Median),
		StdDev:  optional(s.StdDev),
		Min:     optional(s.Min),
		Max:     optional(s.Max),
		Count:   int64(s.Count),
	}
}

// WriteParquet archives the summaries as a Snappy-compressed Parquet file.
func WriteParquet(path string, summaries []summarizing.Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	records := make([]SummaryRecord, len(summaries))
	for i, s := range summaries {
		records[i] = NewSummaryRecord(s)
	}

	writer := parquet.NewGenericWriter[SummaryRecord](file, parquet.Compression(&parquet.Snappy))
	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
