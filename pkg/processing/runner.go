package processing

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"SyncProfiler/pkg/config"
	"SyncProfiler/pkg/exporting"
	"SyncProfiler/pkg/graphing"
	"SyncProfiler/pkg/summarizing"
)

// CompletionMessage is logged once every artifact has been written.
const CompletionMessage = "Todos los gráficos y CSV fueron generados correctamente."

// RunReport describes one pipeline run.
type RunReport struct {
	RunID      string       `yaml:"run_id"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	InputDir   string       `yaml:"input_dir"`
	OutputDir  string       `yaml:"output_dir"`
	Files      []FileResult `yaml:"files"`
	Summaries  int          `yaml:"summaries"`
	Artifacts  []string     `yaml:"artifacts"`
}

// Count returns the number of files with the given status.
func (r *RunReport) Count(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

func (r *RunReport) add(path string) {
	r.Artifacts = append(r.Artifacts, path)
}

// FindLogs returns the regular files directly under dir whose names carry a
// log marker, sorted by name.
func FindLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !summarizing.IsLogFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// Run processes every log in cfg.InputDir and writes the summary and
// comparison artifacts under cfg.OutputDir.
func Run(cfg *config.Config) (*RunReport, error) {
	report := &RunReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		InputDir:  cfg.InputDir,
		OutputDir: cfg.OutputDir,
	}
	logger := log.WithField("run", report.RunID)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths, err := FindLogs(cfg.InputDir)
	if err != nil {
		return nil, err
	}
	logger.Infof("Procesando %d archivos de %s", len(paths), cfg.InputDir)

	acc := summarizing.NewAccumulator()
	for _, path := range paths {
		report.Files = append(report.Files, ProcessFile(cfg, path, acc))
	}
	summaries := acc.Summaries()
	report.Summaries = len(summaries)

	if err := exporting.WriteSummaries(cfg.SummaryPath(), summaries); err != nil {
		return nil, fmt.Errorf("failed to write summary table: %w", err)
	}
	report.add(cfg.SummaryPath())

	parquetPath := cfg.OutputPath(config.SummaryParquet)
	if err := exporting.WriteParquet(parquetPath, summaries); err != nil {
		return nil, fmt.Errorf("failed to write summary archive: %w", err)
	}
	report.add(parquetPath)

	if len(summaries) > 0 {
		if err := writeComparisons(cfg, summaries, report); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("No hay resúmenes, se omiten las comparativas")
	}

	report.FinishedAt = time.Now()
	reportPath := cfg.OutputPath(config.ReportFile)
	if err := exporting.WriteReport(reportPath, report); err != nil {
		return nil, fmt.Errorf("failed to write run report: %w", err)
	}

	logger.WithFields(log.Fields{
		"processed": report.Count(StatusProcessed),
		"skipped":   report.Count(StatusSkipped),
		"failed":    report.Count(StatusFailed),
		"summaries": report.Summaries,
	}).Info(CompletionMessage)
	return report, nil
}

func writeComparisons(cfg *config.Config, summaries []summarizing.Summary, report *RunReport) error {
	dir := cfg.ComparisonDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create comparison directory: %w", err)
	}

	for _, logType := range summarizing.LogTypes {
		for _, metric := range summarizing.Metrics(summaries) {
			path, err := graphing.RenderComparison(dir, summaries, logType, metric)
			if err != nil {
				return fmt.Errorf("failed to render comparison %s/%s: %w", logType, metric, err)
			}
			if path != "" {
				report.add(path)
			}
		}
	}

	pivotPath := cfg.ComparisonPath(config.PivotFile)
	if err := exporting.WritePivot(pivotPath, summarizing.BuildPivot(summaries)); err != nil {
		return fmt.Errorf("failed to write comparison table: %w", err)
	}
	report.add(pivotPath)

	fullPath := cfg.ComparisonPath(config.FullSummaryFile)
	if err := exporting.WriteSummaries(fullPath, summaries); err != nil {
		return fmt.Errorf("failed to write full summary: %w", err)
	}
	report.add(fullPath)

	globalPath := cfg.ComparisonPath(config.GlobalStatsFile)
	if err := exporting.WriteGlobalStats(globalPath, summarizing.GlobalStats(summaries)); err != nil {
		return fmt.Errorf("failed to write global statistics: %w", err)
	}
	report.add(globalPath)

	pagePath := cfg.ComparisonPath(config.ComparisonPage)
	if _, err := graphing.RenderComparisonPage(pagePath, summaries); err != nil {
		return err
	}
	report.add(pagePath)

	return nil
}
