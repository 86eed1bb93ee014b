// SPDX-License-Identifier: MIT
// Package regression: functional options.

package regression

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvstat/matrix"
)

// Method selects how the normal equations are solved.
type Method int

const (
	// Uncentered inverts XᵗX of the design matrix with the intercept column.
	Uncentered Method = iota
	// Centered solves the mean-centered system and recovers the intercept.
	Centered
)

// DefaultMethod is the solver used when no WithMethod option is given.
const DefaultMethod = Uncentered

// String returns the lower-case method name.
func (m Method) String() string {
	switch m {
	case Uncentered:
		return "uncentered"
	case Centered:
		return "centered"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMethod maps "uncentered" / "centered" (case-insensitive, empty means
// the default) onto a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uncentered", "normal":
		return Uncentered, nil
	case "centered", "centred":
		return Centered, nil
	}

	return 0, fmt.Errorf("ParseMethod %q: %w", s, ErrUnknownMethod)
}

// Option mutates Options. Last writer wins.
type Option func(*Options)

// Options is the resolved configuration of a Fit call.
type Options struct {
	method   Method
	names    []string
	pivotTol float64
}

// WithMethod selects the solver. Panics on a Method value outside the
// declared constants.
func WithMethod(m Method) Option {
	if m != Uncentered && m != Centered {
		panic("regression: WithMethod: unknown method " + m.String())
	}

	return func(o *Options) { o.method = m }
}

// WithVariableNames labels the columns, response last. The names are copied.
func WithVariableNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

// WithPivotTolerance forwards a pivot tolerance to the matrix kernels.
// Fit scales predictor columns to unit root mean square before solving, so
// tol is compared against pivots of unit-scale columns whatever the units of
// the data. Panics on negative or non-finite values.
func WithPivotTolerance(tol float64) Option {
	matrix.WithPivotTolerance(tol) // validates, panics on nonsense

	return func(o *Options) { o.pivotTol = tol }
}

func gatherOptions(user ...Option) Options {
	o := Options{method: DefaultMethod, pivotTol: matrix.DefaultPivotTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
