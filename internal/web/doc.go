// SPDX-License-Identifier: MIT

// Package web exposes the numeric packages as a JSON API:
//
//	POST /api/regression        OLS fit of a data table
//	POST /api/distribution      pdf, cdf, sf or quantile of a named distribution
//	POST /api/matrix/inverse    Gauss-Jordan inverse
//	POST /api/matrix/multiply   matrix product
//	POST /api/describe          descriptive summary of a sample
//	GET  /healthz               liveness
//	GET  /metrics               Prometheus exposition
//
// Every request passes through panic recovery, a body size limit, zap request
// logging and Prometheus request metrics. Non-finite numbers in responses are
// encoded as JSON null.
package web
