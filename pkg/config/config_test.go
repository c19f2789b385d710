package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{InputDir: "logs"}
	cfg.ApplyDefaults()
	assert.Equal(t, filepath.Join("logs", DefaultOutputSubdir), cfg.OutputDir)

	cfg = &Config{}
	cfg.ApplyDefaults()
	assert.Equal(t, DefaultInputDir, cfg.InputDir)

	cfg = &Config{InputDir: "logs", OutputDir: "out"}
	cfg.ApplyDefaults()
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{InputDir: dir, OutputDir: filepath.Join(dir, "out")}, false},
		{"missing input", Config{InputDir: filepath.Join(dir, "nope"), OutputDir: dir}, true},
		{"input is file", Config{InputDir: file, OutputDir: dir}, true},
		{"output is file", Config{InputDir: dir, OutputDir: file}, true},
		{"empty", Config{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Equal(t, tt.wantErr, err != nil, "%v", err)
		})
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{OutputDir: "out"}
	assert.Equal(t, filepath.Join("out", "sync", "nodeA"), cfg.ChartDir("sync", "nodeA"))
	assert.Equal(t, filepath.Join("out", SummaryFile), cfg.SummaryPath())
	assert.Equal(t, filepath.Join("out", ComparisonSubdir, PivotFile), cfg.ComparisonPath(PivotFile))
}

func newFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", newFlags(t).Flags())
	require.NoError(t, err)
	assert.Equal(t, DefaultInputDir, cfg.InputDir)
	assert.Empty(t, cfg.OutputDir)
}

func TestLoad_FileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "syncprof.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_dir: logs\noutput_dir: from-file\n"), 0644))

	cfg, err := Load(path, newFlags(t).Flags())
	require.NoError(t, err)
	assert.Equal(t, "logs", cfg.InputDir)
	assert.Equal(t, "from-file", cfg.OutputDir)

	cfg, err = Load(path, newFlags(t, "-o", "from-flag").Flags())
	require.NoError(t, err)
	assert.Equal(t, "logs", cfg.InputDir)
	assert.Equal(t, "from-flag", cfg.OutputDir)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}
