package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fortune_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fortune_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	fortunesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fortune_generated_total",
			Help: "Fortune generation attempts by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	panicRecoveries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fortune_panic_recoveries_total",
			Help: "Total number of panics recovered in HTTP handlers",
		},
	)
)
