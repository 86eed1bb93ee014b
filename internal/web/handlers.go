// SPDX-License-Identifier: MIT
// Package web: request handlers.

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvstat/describe"
	"github.com/katalvlaran/lvstat/dist"
	"github.com/katalvlaran/lvstat/matrix"
	"github.com/katalvlaran/lvstat/regression"
)

// Distribution operations accepted by /api/distribution.
const (
	OpPDF      = "pdf"
	OpCDF      = "cdf"
	OpSurvival = "sf"
	OpQuantile = "quantile"
)

var errUnknownOp = errors.New("web: unknown distribution operation")

type regressionRequest struct {
	Data          [][]float64 `json:"data"`
	VariableNames []string    `json:"variableNames"`
	Method        string      `json:"method"`
}

type regressionResponse struct {
	*regression.Result
	Table []regression.Coefficient `json:"table"`
	F     *regression.FTest        `json:"f,omitempty"`
}

type distributionRequest struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params"`
	Op     string             `json:"op"`
	X      float64            `json:"x"`
}

type valueResponse struct {
	Value float64 `json:"value"`
}

type matrixRequest struct {
	Matrix [][]float64 `json:"matrix"`
}

type matrixResponse struct {
	Matrix [][]float64 `json:"matrix"`
}

type multiplyRequest struct {
	A [][]float64 `json:"a"`
	B [][]float64 `json:"b"`
}

type describeRequest struct {
	Data []float64 `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleRegression(w http.ResponseWriter, r *http.Request) {
	var req regressionRequest
	if !s.decode(w, r, &req) {
		return
	}
	method, err := regression.ParseMethod(req.Method)
	if err != nil {
		s.fail(w, "regression", err)
		return
	}
	opts := []regression.Option{regression.WithMethod(method)}
	if len(req.VariableNames) > 0 {
		opts = append(opts, regression.WithVariableNames(req.VariableNames...))
	}

	res, err := regression.Fit(req.Data, opts...)
	if err != nil {
		s.fail(w, "regression", err)
		return
	}
	out := regressionResponse{Result: res, Table: res.Table()}
	if ft, ferr := res.FStatistic(); ferr == nil {
		out.F = &ft
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	var req distributionRequest
	if !s.decode(w, r, &req) {
		return
	}
	d, err := dist.Lookup(req.Name, req.Params)
	if err != nil {
		s.fail(w, "distribution", err)
		return
	}

	var v float64
	switch strings.ToLower(req.Op) {
	case OpPDF, "pmf", "density":
		v = d.Density(req.X)
	case OpCDF:
		v = d.CDF(req.X)
	case OpSurvival, "survival":
		v = d.Survival(req.X)
	case OpQuantile:
		q, ok := d.(dist.Quantiler)
		if !ok {
			s.fail(w, "distribution", fmt.Errorf("%s has no quantile: %w", d.Name(), errUnknownOp))
			return
		}
		if v, err = q.Quantile(req.X); err != nil {
			s.fail(w, "distribution", err)
			return
		}
	default:
		s.fail(w, "distribution", fmt.Errorf("%q: %w", req.Op, errUnknownOp))
		return
	}
	writeJSON(w, http.StatusOK, valueResponse{Value: v})
}

func (s *Server) handleInverse(w http.ResponseWriter, r *http.Request) {
	var req matrixRequest
	if !s.decode(w, r, &req) {
		return
	}
	inv, err := matrix.InvertMatrix(req.Matrix)
	if err != nil {
		s.fail(w, "inverse", err)
		return
	}
	writeJSON(w, http.StatusOK, matrixResponse{Matrix: inv})
}

func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	var req multiplyRequest
	if !s.decode(w, r, &req) {
		return
	}
	prod, err := matrix.MultiplyMatrices(req.A, req.B)
	if err != nil {
		s.fail(w, "multiply", err)
		return
	}
	writeJSON(w, http.StatusOK, matrixResponse{Matrix: prod})
}

func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if !s.decode(w, r, &req) {
		return
	}
	sum, err := describe.Summarize(req.Data)
	if err != nil {
		s.fail(w, "describe", err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads the JSON body into dst, answering 400 or 413 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := api.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	s.log.Debug("bad request body", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())

	return false
}

// fail maps a computation error onto a status and counts it.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	code, reason := classify(err)
	s.metrics.failures.WithLabelValues(op, reason).Inc()
	s.log.Debug("computation rejected", zap.String("op", op), zap.String("reason", reason), zap.Error(err))
	writeError(w, code, err.Error())
}

// classify returns 422 for well-formed input the numerics cannot process and
// 400 for invalid input.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return http.StatusUnprocessableEntity, "singular"
	case errors.Is(err, regression.ErrInsufficientData):
		return http.StatusUnprocessableEntity, "insufficient_data"
	case errors.Is(err, regression.ErrZeroVariance):
		return http.StatusUnprocessableEntity, "zero_variance"
	case errors.Is(err, dist.ErrUnknownDistribution):
		return http.StatusBadRequest, "unknown_distribution"
	case errors.Is(err, dist.ErrInvalidParameter):
		return http.StatusBadRequest, "invalid_parameter"
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrBadShape):
		return http.StatusBadRequest, "shape"
	default:
		return http.StatusBadRequest, "invalid_input"
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := api.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}
