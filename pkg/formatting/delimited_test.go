package formatting

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDelimiterFor(t *testing.T) {
	assert.Equal(t, SemicolonDelimiter, DelimiterFor("a/sync_log_x.csv"))
	assert.Equal(t, SemicolonDelimiter, DelimiterFor("a/sync_log_x.CSV"))
	assert.Equal(t, CommaDelimiter, DelimiterFor("a/sync_log_x.txt"))
	assert.Equal(t, CommaDelimiter, DelimiterFor("a/sync_log_x"))
}

func TestLoadTable_Semicolon(t *testing.T) {
	path := writeFile(t, "sync_log_a.csv", "ciclo;cpu_percent;mem_percent\n1;12,5;40\n2;13,0;41\n\n3;abc;42\n")

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []int{1, 2, 3}, table.Cycles)
	assert.Equal(t, []float64{1, 2, 3}, table.CycleAxis())
	assert.True(t, table.HasColumn("cpu_percent"))
	assert.False(t, table.HasColumn("net_rx_kB"))

	cpu, ok := table.Numeric("cpu_percent")
	require.True(t, ok)
	assert.Equal(t, 12.5, cpu[0])
	assert.Equal(t, 13.0, cpu[1])
	assert.True(t, math.IsNaN(cpu[2]))
}

func TestLoadTable_CommaForOtherExtensions(t *testing.T) {
	path := writeFile(t, "sync_log_a.txt", "ciclo,cpu_percent\n1,10\n2,20\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, CommaDelimiter, table.Delimiter)

	cpu, ok := table.Numeric("cpu_percent")
	require.True(t, ok)
	assert.Equal(t, []float64{10, 20}, cpu)
}

func TestLoadTable_MissingCycleColumn(t *testing.T) {
	path := writeFile(t, "sync_log_a.csv", "cycle;cpu_percent\n1;10\n")

	table, err := LoadTable(path)
	assert.Nil(t, table)
	assert.True(t, errors.Is(err, ErrNoCycleColumn), "got %v", err)
}

func TestLoadTable_SkipsMalformedRows(t *testing.T) {
	content := "ciclo;cpu_percent;mem_percent\n" +
		"1;10;20\n" +
		"2;11;21;99\n" + // too many fields
		"x;12;22\n" + // non-integer cycle
		"4;13\n" // short row, padded
	path := writeFile(t, "post_sync_metrics_a.csv", content)

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 4}, table.Cycles)
	assert.Equal(t, 2, table.Skipped)

	mem, ok := table.Numeric("mem_percent")
	require.True(t, ok)
	assert.Equal(t, 20.0, mem[0])
	assert.True(t, math.IsNaN(mem[1]))
}

func TestLoadTable_HeaderOnly(t *testing.T) {
	path := writeFile(t, "sync_log_a.csv", "ciclo;cpu_percent\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestLoadTable_EmptyFile(t *testing.T) {
	path := writeFile(t, "sync_log_a.csv", "")

	_, err := LoadTable(path)
	assert.True(t, errors.Is(err, io.EOF), "got %v", err)
}

func TestLoadTable_ByteOrderMark(t *testing.T) {
	path := writeFile(t, "sync_log_a.csv", "\ufeffciclo;cpu_percent\n1;5\n")

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, table.Cycles)
}

func TestSaveTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	headers := [][]string{{"tipo", "sync"}, {"metrica", "cpu_percent"}}
	rows := [][]string{{"a", "1.5"}}

	require.NoError(t, SaveTable(path, SemicolonDelimiter, headers, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tipo;sync\nmetrica;cpu_percent\na;1.5\n", string(data))
}
