// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstat/describe"
	"github.com/katalvlaran/lvstat/dist"
	"github.com/katalvlaran/lvstat/internal/web"
	"github.com/katalvlaran/lvstat/matrix"
	"github.com/katalvlaran/lvstat/regression"
	"github.com/katalvlaran/lvstat/tabular"
)

// significance is the p-value below which coefficients are highlighted.
const significance = 0.05

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("starting server", zap.String("addr", a.cfg.Addr), zap.Int64("maxBodyBytes", a.cfg.MaxBodyBytes))

			return web.NewServer(a.cfg, a.log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&a.cfg.Addr, "addr", a.cfg.Addr, "listen address")
	cmd.Flags().DurationVar(&a.cfg.ReadTimeout, "read-timeout", a.cfg.ReadTimeout, "request read timeout")
	cmd.Flags().DurationVar(&a.cfg.WriteTimeout, "write-timeout", a.cfg.WriteTimeout, "response write timeout")
	cmd.Flags().DurationVar(&a.cfg.ShutdownTimeout, "shutdown-timeout", a.cfg.ShutdownTimeout, "graceful shutdown limit")
	cmd.Flags().Int64Var(&a.cfg.MaxBodyBytes, "max-body-bytes", a.cfg.MaxBodyBytes, "request body size limit")

	return cmd
}

func regressCmd(a *app) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "regress [file.csv]",
		Short: "Fit an OLS model; the last CSV column is the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := regression.ParseMethod(method)
			if err != nil {
				return err
			}
			t, err := readTable(args[0])
			if err != nil {
				return err
			}
			res, err := regression.Fit(t.Rows, regression.WithMethod(m), regression.WithVariableNames(t.Names...))
			if err != nil {
				return err
			}
			a.log.Debug("fitted", zap.String("file", args[0]), zap.Int("n", res.Observations), zap.Stringer("method", res.Method))
			printRegression(cmd.OutOrStdout(), res)

			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", regression.DefaultMethod.String(), "solver (uncentered, centered)")

	return cmd
}

func printRegression(w io.Writer, res *regression.Result) {
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	green := color.New(color.FgGreen)

	_, _ = cyan.Fprintf(w, "%-14s %12s %12s %10s %10s\n", "Term", "Estimate", "Std.Error", "t", "p")
	_, _ = dim.Fprintln(w, strings.Repeat("-", 62))
	for _, c := range res.Table() {
		line := fmt.Sprintf("%-14s %12.6g %12.6g %10.4g %10.4g\n", c.Term, c.Estimate, c.StdErr, c.T, c.P)
		if c.P < significance {
			_, _ = green.Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}
	}
	_, _ = dim.Fprintln(w, strings.Repeat("-", 62))
	fmt.Fprintf(w, "R² = %.6g   adjusted R² = %.6g   n = %d   df = %d\n",
		res.RSquared, res.AdjustedRSquared, res.Observations, res.DF)
	if ft, err := res.FStatistic(); err == nil {
		fmt.Fprintf(w, "F(%d, %d) = %.6g   p = %.4g\n", ft.DF1, ft.DF2, ft.F, ft.PValue)
	}
}

func distCmd(a *app) *cobra.Command {
	var params map[string]string

	cmd := &cobra.Command{
		Use:   "dist [name] [pdf|cdf|sf|quantile] [x]",
		Short: "Evaluate a distribution function",
		Long: "Evaluate a distribution function. Names: " + strings.Join(dist.Names(), ", ") +
			". Parameters are passed as --param key=value.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := make(map[string]float64, len(params))
			for k, v := range params {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return fmt.Errorf("param %s=%q: %w", k, v, err)
				}
				ps[k] = f
			}
			x, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("x %q: %w", args[2], err)
			}
			d, err := dist.Lookup(args[0], ps)
			if err != nil {
				return err
			}

			var v float64
			switch strings.ToLower(args[1]) {
			case web.OpPDF, "pmf":
				v = d.Density(x)
			case web.OpCDF:
				v = d.CDF(x)
			case web.OpSurvival:
				v = d.Survival(x)
			case web.OpQuantile:
				q, ok := d.(dist.Quantiler)
				if !ok {
					return fmt.Errorf("%s has no quantile function", d.Name())
				}
				if v, err = q.Quantile(x); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown operation %q", args[1])
			}
			a.log.Debug("evaluated", zap.String("dist", d.Name()), zap.String("op", args[1]), zap.Float64("x", x))
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))

			return nil
		},
	}

	cmd.Flags().StringToStringVarP(&params, "param", "p", nil, "distribution parameter key=value (repeatable)")

	return cmd
}

func describeCmd(a *app) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "describe [file.csv]",
		Short: "Summarize one column of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(args[0])
			if err != nil {
				return err
			}
			if column == "" {
				column = t.Names[0]
			}
			xs, err := t.Column(column)
			if err != nil {
				return err
			}
			s, err := describe.Summarize(xs)
			if err != nil {
				return err
			}
			a.log.Debug("summarized", zap.String("column", column), zap.Int("n", s.N))

			w := cmd.OutOrStdout()
			_, _ = color.New(color.FgCyan).Fprintf(w, "%s (n = %d)\n", column, s.N)
			rows := []struct {
				label string
				v     float64
			}{
				{"mean", s.Mean}, {"median", s.Median}, {"std dev", s.StdDev},
				{"variance", s.Variance}, {"min", s.Min}, {"q1", s.Q1},
				{"q3", s.Q3}, {"max", s.Max}, {"iqr", s.IQR},
			}
			for _, r := range rows {
				fmt.Fprintf(w, "  %-9s %g\n", r.label, r.v)
			}
			fmt.Fprintf(w, "  %-9s %v (count %d)\n", "modes", s.Modes, s.ModeCount)

			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "column name (default: first column)")

	return cmd
}

func invertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "invert [file.csv]",
		Short: "Invert a square matrix stored as headerless CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			rows, err := tabular.ReadMatrix(f)
			if err != nil {
				return err
			}
			inv, err := matrix.InvertMatrix(rows)
			if err != nil {
				return err
			}
			a.log.Debug("inverted", zap.Int("n", len(inv)))

			w := cmd.OutOrStdout()
			for _, row := range inv {
				cells := make([]string, len(row))
				for j, v := range row {
					cells[j] = strconv.FormatFloat(cleanZero(v), 'g', 10, 64)
				}
				fmt.Fprintln(w, strings.Join(cells, ","))
			}

			return nil
		},
	}
}

// cleanZero maps -0 to 0 for printing.
func cleanZero(v float64) float64 {
	if v == 0 {
		return math.Abs(v)
	}

	return v
}

func readTable(path string) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return tabular.Read(f)
}
