// Package commands provides the CLI entry point.
package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"SyncProfiler/pkg/config"
	"SyncProfiler/pkg/processing"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "syncprof [input-dir]",
		Short: "Chart blockchain sync monitoring logs",
		Long: `SyncProfiler charts the monitoring logs captured while a node synchronizes
and after it finishes.

Every file in the input directory whose name contains "sync_log" or
"post_sync_metrics" gets one PNG chart per known metric. A statistical
summary is written for all files together, followed by comparison charts
and tables across profiles.

Output (default <input-dir>/graficos):
  <type>/<profile>/<metric>.png
  resumen_estadistico.csv, resumen_estadistico.parquet, informe_ejecucion.yaml
  comparativas/

Example:
  syncprof ./logs
  syncprof ./logs -o ./charts
  syncprof --config syncprof.yaml`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddFlags(cmd)

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString(config.FlagConfig)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log.Debugf("Configuration:\n%s", cfg)

	report, err := processing.Run(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[✔] %s (%d archivos, resultados en %s)\n",
		processing.CompletionMessage, report.Count(processing.StatusProcessed), cfg.OutputDir)
	return nil
}

// Execute runs the root command.
func Execute() {
	ConfigureLogging()
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// ConfigureLogging sets the text formatter with full timestamps on stdout.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
}
