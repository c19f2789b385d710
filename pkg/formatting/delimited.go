package formatting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DelimitedReader reads semicolon or comma separated logs.
type DelimitedReader struct {
	path      string
	file      *os.File
	reader    *csv.Reader
	table     *Table
	delimiter rune
}

// NewDelimitedReader creates a reader for the given delimiter.
func NewDelimitedReader(delimiter rune) *DelimitedReader {
	return &DelimitedReader{delimiter: delimiter}
}

// Open opens the file and reads the header row.
func (r *DelimitedReader) Open(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	r.path = path
	r.file = file
	r.reader = csv.NewReader(file)
	r.reader.Comma = r.delimiter
	r.reader.FieldsPerRecord = -1 // rows are checked against the header ourselves
	r.reader.LazyQuotes = true

	header, err := r.reader.Read()
	if err != nil {
		_ = r.file.Close()
		return fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	table, err := newTable(path, r.delimiter, header)
	if err != nil {
		_ = r.file.Close()
		return err
	}
	r.table = table
	return nil
}

// Read parses all rows, skipping malformed ones.
func (r *DelimitedReader) Read() (*Table, error) {
	if r.table == nil {
		return nil, fmt.Errorf("reader not initialized")
	}

	for {
		row, err := r.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				r.table.Skipped++
				continue
			}
			return nil, err
		}
		if !r.table.appendRow(row) {
			r.table.Skipped++
		}
	}

	return r.table, nil
}

// Close closes the underlying file handle.
func (r *DelimitedReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// DelimitedWriter writes a fixed-header delimited table.
type DelimitedWriter struct {
	path      string
	file      *os.File
	writer    *csv.Writer
	delimiter rune
}

// NewDelimitedWriter creates a writer for the given delimiter.
func NewDelimitedWriter(delimiter rune) *DelimitedWriter {
	return &DelimitedWriter{delimiter: delimiter}
}

// Init creates the file and writes the header rows. A table may carry more
// than one header row (pivot tables do).
func (w *DelimitedWriter) Init(path string, headers ...[]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w.path = path
	w.file = file
	w.writer = csv.NewWriter(file)
	w.writer.Comma = w.delimiter

	for _, h := range headers {
		if err := w.writer.Write(h); err != nil {
			_ = w.file.Close()
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	return nil
}

// Write writes a single row.
func (w *DelimitedWriter) Write(row []string) error {
	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

// WriteBatch writes multiple rows.
func (w *DelimitedWriter) WriteBatch(rows [][]string) error {
	for i, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying file.
func (w *DelimitedWriter) Flush() error {
	if w.writer != nil {
		w.writer.Flush()
		return w.writer.Error()
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (w *DelimitedWriter) Close() error {
	if err := w.Flush(); err != nil {
		if w.file != nil {
			_ = w.file.Close()
		}
		return err
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}

// Path returns the file path.
func (w *DelimitedWriter) Path() string {
	return w.path
}

// SaveRows writes a complete table in one call.
func SaveRows(path string, delimiter rune, header []string, rows [][]string) error {
	return SaveTable(path, delimiter, [][]string{header}, rows)
}

// SaveTable writes a complete table with one or more header rows.
func SaveTable(path string, delimiter rune, headers [][]string, rows [][]string) error {
	writer := NewDelimitedWriter(delimiter)
	if err := writer.Init(path, headers...); err != nil {
		return fmt.Errorf("failed to initialize writer: %w", err)
	}

	if err := writer.WriteBatch(rows); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write rows: %w", err)
	}

	return writer.Close()
}
