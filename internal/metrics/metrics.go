// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus metrics for resolution cycles and
// loader calls.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "typedconf"

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics owns a private registry. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	resolutions        *prometheus.CounterVec
	resolutionDuration prometheus.Histogram
	loaderCalls        *prometheus.CounterVec
	loaderDuration     *prometheus.HistogramVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them, together with the Go and
// process collectors, on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of resolution cycles by result",
			},
			[]string{"result"},
		),
		resolutionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "resolution_duration_seconds",
				Help:      "Duration of resolution cycles in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		loaderCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "loader_calls_total",
				Help:      "Total number of loader invocations by loader and result",
			},
			[]string{"loader", "result"},
		),
		loaderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "loader_duration_seconds",
				Help:      "Duration of loader invocations in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"loader"},
		),
	}

	registry.MustRegister(
		m.resolutions,
		m.resolutionDuration,
		m.loaderCalls,
		m.loaderDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordResolution records the outcome of one resolution cycle.
func (m *Metrics) RecordResolution(duration time.Duration, err error) {
	if m == nil {
		return
	}

	m.resolutions.WithLabelValues(result(err)).Inc()
	m.resolutionDuration.Observe(duration.Seconds())
}

// ObserveLoader records one loader invocation.
func (m *Metrics) ObserveLoader(name string, duration time.Duration, err error) {
	if m == nil {
		return
	}

	m.loaderCalls.WithLabelValues(name, result(err)).Inc()
	m.loaderDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
