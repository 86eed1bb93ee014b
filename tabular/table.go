// SPDX-License-Identifier: MIT
// Package tabular: CSV parsing and formatting.

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table is a header plus rectangular numeric rows.
type Table struct {
	Names []string
	Rows  [][]float64
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) ([]float64, error) {
	for j, n := range t.Names {
		if n != name {
			continue
		}
		out := make([]float64, len(t.Rows))
		for i, row := range t.Rows {
			out[i] = row[j]
		}

		return out, nil
	}

	return nil, fmt.Errorf("Column %q: %w", name, ErrUnknownColumn)
}

// Read parses a CSV stream whose first record holds the variable names.
//
// Implementation:
//   - Stage 1: the header line; names are trimmed.
//   - Stage 2: every following non-blank line must have len(Names) fields,
//     each a number after trimming spaces.
//
// Errors: ErrNoHeader, ErrNoRows, ErrFieldCount, *ParseError (ErrNotNumeric),
// and I/O or CSV syntax errors from the reader.
func Read(r io.Reader) (*Table, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Read: %w", ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	t := &Table{Names: make([]string, len(header))}
	for j, h := range header {
		t.Names[j] = strings.TrimSpace(h)
	}

	t.Rows, err = readRows(cr, t.Names)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("Read: %w", ErrNoRows)
	}

	return t, nil
}

// ReadMatrix parses a headerless numeric CSV stream into rows.
//
// Errors: ErrNoRows, ErrFieldCount, *ParseError (ErrNotNumeric).
func ReadMatrix(r io.Reader) ([][]float64, error) {
	rows, err := readRows(newReader(r), nil)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ReadMatrix: %w", ErrNoRows)
	}

	return rows, nil
}

// Write emits t as CSV with the header first. Numbers use the shortest
// representation that round-trips.
func Write(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	record := make([]string, len(t.Names))
	for i, row := range t.Rows {
		if len(row) != len(t.Names) {
			return fmt.Errorf("Write: row %d has %d values, want %d: %w", i, len(row), len(t.Names), ErrFieldCount)
		}
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// newReader configures a csv.Reader for variable-width records so the width
// check can report ErrFieldCount with a line number.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return cr
}

// readRows parses records until EOF. With names == nil the first record fixes
// the width and columns are labelled by index.
func readRows(cr *csv.Reader, names []string) ([][]float64, error) {
	width := len(names)
	var rows [][]float64
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if width == 0 {
			width = len(record)
		}
		if len(record) != width {
			return nil, fmt.Errorf("line %d has %d fields, want %d: %w", line, len(record), width, ErrFieldCount)
		}

		row := make([]float64, width)
		for j, cell := range record {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				col := strconv.Itoa(j + 1)
				if names != nil {
					col = names[j]
				}

				return nil, &ParseError{Line: line, Column: col, Value: cell, Err: ErrNotNumeric}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
}
