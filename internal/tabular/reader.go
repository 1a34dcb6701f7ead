// Package tabular loads and persists the tabular datasets the pipeline works
// with. Source files are CSV or Excel, distinguished by extension; output
// artifacts are always CSV.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrUnsupportedFormat indicates a source file extension that is
	// neither .csv nor .xlsx. Raised before any rows are read.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMissingColumn indicates a required column is absent from the
	// source header row.
	ErrMissingColumn = errors.New("missing required column")
)

// Table is a header-indexed tabular dataset materialized fully in memory.
// Row cells are keyed by header name; cells absent from a short row are
// present in the map as empty strings.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Load reads a tabular dataset from path, choosing the parser by file
// extension. Parse failures are fatal and propagate to the caller.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q (expected .csv or .xlsx)", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// RequireColumns verifies the named columns exist in the header row.
// Validation happens once at ingestion rather than per row access.
func (t *Table) RequireColumns(names ...string) error {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}
	for _, name := range names {
		if !present[name] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	return nil
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, missing cells become ""

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return fromRecords(records), nil
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	// Data is always on the first sheet in duplicate-detection exports.
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("failed to parse %s: workbook has no sheets", path)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q from %s: %w", sheet, path, err)
	}
	return fromRecords(records), nil
}

func fromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return &Table{}
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return &Table{Headers: headers, Rows: rows}
}
