package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names bound to configuration keys.
const (
	FlagOutput = "output"
	FlagConfig = "config"
)

// AddFlags adds the pipeline flags to a command.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP(FlagOutput, "o", "", "Output directory (default <input-dir>/graficos)")
	flags.String(FlagConfig, "", "Configuration file with input_dir and output_dir keys")
}

// Load builds a Config from an optional configuration file and the command
// flags. Changed flags take precedence over the file, the file over defaults.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("input_dir", DefaultInputDir)
	v.SetDefault("output_dir", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if f := flags.Lookup(FlagOutput); f != nil {
			if err := v.BindPFlag("output_dir", f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", FlagOutput, err)
			}
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
