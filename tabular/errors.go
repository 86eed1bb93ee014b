// SPDX-License-Identifier: MIT
// Package tabular: sentinel errors and the positioned parse error.

package tabular

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned for input without a header line.
	ErrNoHeader = errors.New("tabular: missing header")

	// ErrNoRows is returned when the header is not followed by data.
	ErrNoRows = errors.New("tabular: no data rows")

	// ErrNotNumeric is wrapped by *ParseError for a cell that is not a number.
	ErrNotNumeric = errors.New("tabular: value is not numeric")

	// ErrFieldCount is returned when a row's width differs from the header.
	ErrFieldCount = errors.New("tabular: wrong number of fields")

	// ErrUnknownColumn is returned by Table.Column for an absent name.
	ErrUnknownColumn = errors.New("tabular: unknown column")
)

// ParseError locates a cell that failed numeric parsing. Line is 1-based and
// counts the header; Column is the header name (or the 1-based index when the
// input has no header).
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("tabular: line %d, column %q: value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap exposes the underlying sentinel.
func (e *ParseError) Unwrap() error { return e.Err }
