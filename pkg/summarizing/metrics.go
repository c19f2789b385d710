// Package summarizing computes per-log metric statistics and the
// cross-profile aggregates built from them.
package summarizing

import (
	"fmt"
	"path/filepath"
	"strings"

	"SyncProfiler/pkg/config"
)

// LogType distinguishes logs captured during synchronization from logs
// captured afterwards.
type LogType string

const (
	TypeSync LogType = "sync"
	TypePost LogType = "post"
)

// LogTypes lists the types in comparison order.
var LogTypes = []LogType{TypeSync, TypePost}

// Metric describes one recognized value column.
type Metric struct {
	Column string
	Title  string
	Unit   string

	// Counter marks cumulative counters whose summary uses total-delta
	// semantics and whose chart plots per-interval differences.
	Counter bool
}

// Recognized metric columns.
const (
	ColumnProgress  = "verificationprogress"
	ColumnCPU       = "cpu_percent"
	ColumnMemPct    = "mem_percent"
	ColumnMemUsed   = "mem_used_MB"
	ColumnDisk      = "disk_used_MB"
	ColumnNetRx     = "net_rx_kB"
	ColumnNetTx     = "net_tx_kB"
	ColumnUptime    = "uptime_minutes"
	ColumnProcesses = "num_processes"
)

// SyncMetrics are charted for sync logs.
var SyncMetrics = []Metric{
	{Column: ColumnProgress, Title: "Progreso de sincronización", Unit: "%"},
	{Column: ColumnCPU, Title: "Uso de CPU", Unit: "%"},
	{Column: ColumnMemPct, Title: "Uso de RAM", Unit: "%"},
	{Column: ColumnDisk, Title: "Uso de Disco", Unit: "MB"},
	{Column: ColumnNetRx, Title: "Red Entrante", Unit: "kB", Counter: true},
	{Column: ColumnNetTx, Title: "Red Saliente", Unit: "kB", Counter: true},
}

// PostMetrics are charted for post-sync logs.
var PostMetrics = []Metric{
	{Column: ColumnCPU, Title: "Uso de CPU", Unit: "%"},
	{Column: ColumnMemUsed, Title: "Memoria Usada", Unit: "MB"},
	{Column: ColumnDisk, Title: "Disco Usado", Unit: "MB"},
	{Column: ColumnNetRx, Title: "Red Entrante", Unit: "kB", Counter: true},
	{Column: ColumnNetTx, Title: "Red Saliente", Unit: "kB", Counter: true},
	{Column: ColumnUptime, Title: "Minutos Encendido", Unit: "minutos"},
	{Column: ColumnProcesses, Title: "Nº de Procesos", Unit: "cantidad"},
}

// MetricsFor returns the metric set of a log type.
func MetricsFor(t LogType) []Metric {
	if t == TypePost {
		return PostMetrics
	}
	return SyncMetrics
}

// IsCounter reports whether a column is a cumulative network counter.
func IsCounter(column string) bool {
	return column == ColumnNetRx || column == ColumnNetTx
}

// IsLogFile reports whether a file name carries one of the log markers.
func IsLogFile(name string) bool {
	return strings.Contains(name, config.SyncLogMarker) || strings.Contains(name, config.PostSyncLogMarker)
}

// Classify derives the log type and profile from a file name. The profile
// is the underscore-separated token following the marker words: index 3
// for post-sync logs, index 2 for sync logs, extension excluded.
func Classify(path string) (LogType, string, error) {
	name := filepath.Base(path)

	logType := TypeSync
	position := 2
	if strings.Contains(name, config.PostSyncLogMarker) {
		logType = TypePost
		position = 3
	}

	tokens := strings.Split(strings.TrimSuffix(name, filepath.Ext(name)), "_")
	if position >= len(tokens) || tokens[position] == "" {
		return logType, "", fmt.Errorf("no profile token at position %d in %q", position, name)
	}
	return logType, tokens[position], nil
}
