// Package processing runs the chart pipeline: one pass over each monitoring
// log followed by the cross-profile comparison stage.
package processing

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"SyncProfiler/pkg/config"
	"SyncProfiler/pkg/formatting"
	"SyncProfiler/pkg/graphing"
	"SyncProfiler/pkg/summarizing"
)

// Status is the outcome of processing one file.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// FileResult records what happened to one input file.
type FileResult struct {
	Path    string              `yaml:"path"`
	Status  Status              `yaml:"status"`
	Reason  string              `yaml:"reason,omitempty"`
	Type    summarizing.LogType `yaml:"type,omitempty"`
	Profile string              `yaml:"profile,omitempty"`
	Rows    int                 `yaml:"rows,omitempty"`
	Dropped int                 `yaml:"dropped_rows,omitempty"`

	// Charts lists the metrics charted, Missing the expected metric columns
	// absent from the file. Errors holds render failures.
	Charts  []string `yaml:"charts,omitempty"`
	Missing []string `yaml:"missing,omitempty"`
	Errors  []string `yaml:"errors,omitempty"`
}

func skipped(path, reason string) FileResult {
	return FileResult{Path: path, Status: StatusSkipped, Reason: reason}
}

func failed(path string, err error) FileResult {
	return FileResult{Path: path, Status: StatusFailed, Reason: err.Error()}
}

// ProcessFile charts every known metric of one log and appends its
// summaries to acc. Unusable files are reported, never returned as errors.
func ProcessFile(cfg *config.Config, path string, acc *summarizing.Accumulator) FileResult {
	logger := log.WithField("file", filepath.Base(path))

	table, err := formatting.LoadTable(path)
	switch {
	case errors.Is(err, formatting.ErrNoCycleColumn):
		logger.Warnf("No se encontró '%s', archivo omitido", formatting.CycleColumn)
		return skipped(path, err.Error())
	case errors.Is(err, io.EOF):
		logger.Warn("Archivo vacío, omitido")
		return skipped(path, "empty file")
	case err != nil:
		logger.WithError(err).Error("Error al leer el archivo")
		return failed(path, err)
	case table.Empty():
		logger.Warn("Archivo sin filas válidas, omitido")
		return skipped(path, "no data rows")
	}

	logType, profile, err := summarizing.Classify(path)
	if err != nil {
		logger.WithError(err).Error("No se pudo identificar el perfil")
		return failed(path, err)
	}

	dir := cfg.ChartDir(string(logType), profile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		err = fmt.Errorf("failed to create chart directory: %w", err)
		logger.WithError(err).Error("No se pudo crear el directorio de gráficos")
		return failed(path, err)
	}

	result := FileResult{
		Path:    path,
		Status:  StatusProcessed,
		Type:    logType,
		Profile: profile,
		Rows:    table.Len(),
		Dropped: table.Skipped,
	}
	logger = logger.WithFields(log.Fields{"type": logType, "profile": profile})

	cycles := table.CycleAxis()
	for _, m := range summarizing.MetricsFor(logType) {
		values, ok := table.Numeric(m.Column)
		if !ok {
			logger.WithField("metric", m.Column).Warn("Columna no encontrada")
			result.Missing = append(result.Missing, m.Column)
			continue
		}

		out := filepath.Join(dir, m.Column+".png")
		if m.Counter {
			err = graphing.RenderTraffic(out, m, profile, cycles, values, summarizing.UnitMB)
		} else {
			err = graphing.RenderMetric(out, m, profile, cycles, values)
		}
		if err != nil {
			logger.WithField("metric", m.Column).WithError(err).Error("Error al generar el gráfico")
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", m.Column, err))
		} else {
			result.Charts = append(result.Charts, m.Column)
		}

		acc.Add(summarizing.Summarize(profile, logType, m.Column, values))
	}

	logger.WithField("charts", len(result.Charts)).Info("Archivo procesado")
	return result
}
