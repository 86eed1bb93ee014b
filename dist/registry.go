// SPDX-License-Identifier: MIT
// Package dist: name-based construction.
//
// Lookup lets transport layers (HTTP, CLI) pick a distribution at run time
// from a name and a flat parameter map.

package dist

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Canonical distribution names.
const (
	NameNormal    = "normal"
	NameBinomial  = "binomial"
	NamePoisson   = "poisson"
	NameStudentT  = "t"
	NameChiSquare = "chisquare"
	NameF         = "f"
)

// MaxSummationTerms bounds binomial n and Poisson λ accepted by Lookup.
// Their CDFs add one PMF term per unit, so the bound caps the work of a
// single evaluation built from untrusted parameters.
const MaxSummationTerms = 1_000_000

// Distribution is the common surface of every family in this package.
// Density is the PDF for continuous families and the PMF for discrete ones.
type Distribution interface {
	Name() string
	Density(x float64) float64
	CDF(x float64) float64
	Survival(x float64) float64
}

// Quantiler is implemented by distributions with an inverse CDF.
type Quantiler interface {
	Quantile(p float64) (float64, error)
}

// Compile-time conformance.
var (
	_ Distribution = Normal{}
	_ Distribution = Binomial{}
	_ Distribution = Poisson{}
	_ Distribution = StudentT{}
	_ Distribution = ChiSquare{}
	_ Distribution = F{}
	_ Quantiler    = Normal{}
	_ Quantiler    = StudentT{}
	_ Quantiler    = ChiSquare{}
	_ Quantiler    = F{}
)

// builder constructs a distribution from its parameter map.
type builder func(params map[string]float64) (Distribution, error)

var registry = map[string]builder{
	NameNormal: func(ps map[string]float64) (Distribution, error) {
		return NewNormal(paramOr(ps, 0, "mean", "mu"), paramOr(ps, 1, "sd", "sigma"))
	},
	NameBinomial: func(ps map[string]float64) (Distribution, error) {
		n, err := param(ps, NameBinomial, "n", "trials")
		if err != nil {
			return nil, err
		}
		if n != math.Floor(n) {
			return nil, paramErrorf("Lookup", "binomial trials must be an integer, got %g", n)
		}
		if n > MaxSummationTerms {
			return nil, paramErrorf("Lookup", "binomial trials must be <= %d, got %g", MaxSummationTerms, n)
		}
		p, err := param(ps, NameBinomial, "p")
		if err != nil {
			return nil, err
		}

		return NewBinomial(int(n), p)
	},
	NamePoisson: func(ps map[string]float64) (Distribution, error) {
		l, err := param(ps, NamePoisson, "lambda", "rate")
		if err != nil {
			return nil, err
		}
		if l > MaxSummationTerms {
			return nil, paramErrorf("Lookup", "poisson lambda must be <= %d, got %g", MaxSummationTerms, l)
		}

		return NewPoisson(l)
	},
	NameStudentT: func(ps map[string]float64) (Distribution, error) {
		df, err := param(ps, NameStudentT, "df")
		if err != nil {
			return nil, err
		}

		return NewStudentT(df)
	},
	NameChiSquare: func(ps map[string]float64) (Distribution, error) {
		df, err := param(ps, NameChiSquare, "df")
		if err != nil {
			return nil, err
		}

		return NewChiSquare(df)
	},
	NameF: func(ps map[string]float64) (Distribution, error) {
		d1, err := param(ps, NameF, "df1", "d1")
		if err != nil {
			return nil, err
		}
		d2, err := param(ps, NameF, "df2", "d2")
		if err != nil {
			return nil, err
		}

		return NewF(d1, d2)
	},
}

// aliases maps accepted spellings onto canonical names.
var aliases = map[string]string{
	"gaussian":   NameNormal,
	"studentt":   NameStudentT,
	"student-t":  NameStudentT,
	"chi2":       NameChiSquare,
	"chi-square": NameChiSquare,
	"chisq":      NameChiSquare,
}

// Lookup builds the distribution called name from params.
//
// Parameter keys: normal(mean=0, sd=1), binomial(n, p), poisson(lambda),
// t(df), chisquare(df), f(df1, df2). Names are case-insensitive.
//
// Binomial n and Poisson λ above MaxSummationTerms are rejected.
//
// Errors: ErrUnknownDistribution, ErrInvalidParameter (missing or out of domain).
func Lookup(name string, params map[string]float64) (Distribution, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	build, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("Lookup %q: %w", name, ErrUnknownDistribution)
	}

	return build(params)
}

// Names lists the canonical names accepted by Lookup, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// param returns the first present key, or ErrInvalidParameter naming the first key.
func param(ps map[string]float64, dist string, keys ...string) (float64, error) {
	for _, k := range keys {
		if v, ok := ps[k]; ok {
			return v, nil
		}
	}

	return 0, paramErrorf("Lookup", "%s requires parameter %q", dist, keys[0])
}

// paramOr returns the first present key or def.
func paramOr(ps map[string]float64, def float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := ps[k]; ok {
			return v
		}
	}

	return def
}
