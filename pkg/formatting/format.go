// Package formatting reads monitoring logs into typed tables and writes
// delimited output tables.
package formatting

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"SyncProfiler/pkg/utils"
)

// CycleColumn is the required sampling-cycle column used as the time axis.
const CycleColumn = "ciclo"

// Delimiters chosen by file extension.
const (
	SemicolonDelimiter = ';'
	CommaDelimiter     = ','
)

// ErrNoCycleColumn is returned when a log has no cycle column.
var ErrNoCycleColumn = errors.New("no '" + CycleColumn + "' column")

// Table is a row-major view of one monitoring log. Every row is padded to
// the header width and carries an integer cycle number.
type Table struct {
	Path      string
	Delimiter rune
	Header    []string
	Cycles    []int

	// Skipped counts malformed rows dropped while parsing.
	Skipped int

	rows  [][]string
	index map[string]int
}

// DelimiterFor returns the field delimiter for a file: semicolon for .csv,
// comma for everything else.
func DelimiterFor(path string) rune {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return SemicolonDelimiter
	}
	return CommaDelimiter
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the raw cells of a column.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	cells := make([]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = row[i]
	}
	return cells, true
}

// Numeric returns a column normalized to float64; missing values are NaN.
func (t *Table) Numeric(name string) ([]float64, bool) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, false
	}
	return utils.NormalizeColumn(cells), true
}

// CycleAxis returns the cycle numbers as chart x values.
func (t *Table) CycleAxis() []float64 {
	xs := make([]float64, len(t.Cycles))
	for i, c := range t.Cycles {
		xs[i] = float64(c)
	}
	return xs
}

// LoadTable reads a delimited log into a Table.
func LoadTable(path string) (*Table, error) {
	reader := NewDelimitedReader(DelimiterFor(path))
	if err := reader.Open(path); err != nil {
		return nil, err
	}
	defer reader.Close()

	table, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return table, nil
}

func newTable(path string, delimiter rune, header []string) (*Table, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	if _, ok := index[CycleColumn]; !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCycleColumn)
	}
	return &Table{
		Path:      path,
		Delimiter: delimiter,
		Header:    header,
		index:     index,
	}, nil
}

// appendRow validates and stores one parsed row. It reports false when the
// row is malformed.
func (t *Table) appendRow(row []string) bool {
	if len(row) > len(t.Header) {
		return false
	}
	cycle, ok := utils.ParseCycle(cellAt(row, t.index[CycleColumn]))
	if !ok {
		return false
	}

	padded := make([]string, len(t.Header))
	copy(padded, row)
	t.rows = append(t.rows, padded)
	t.Cycles = append(t.Cycles, cycle)
	return true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
