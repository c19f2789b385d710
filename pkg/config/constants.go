package config

// File name markers that select which logs are processed.
const (
	SyncLogMarker     = "sync_log"
	PostSyncLogMarker = "post_sync_metrics"
)

// Output artifact names.
const (
	ComparisonSubdir = "comparativas"
	SummaryFile      = "resumen_estadistico.csv"
	SummaryParquet   = "resumen_estadistico.parquet"
	ReportFile       = "informe_ejecucion.yaml"
	PivotFile        = "tabla_comparativa.csv"
	FullSummaryFile  = "resumen_completo.csv"
	GlobalStatsFile  = "estadisticas_globales.csv"
	ComparisonPage   = "comparativas.html"
)
