// Package metrics exposes prometheus instrumentation for the request pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "samvaad_http_requests_total",
		Help: "Total number of HTTP requests, by route and status code",
	}, []string{"route", "code"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "samvaad_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "samvaad_stage_duration_seconds",
		Help:    "Duration of pipeline stages (decode, classify, compose, translate)",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"stage"})

	StageErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "samvaad_stage_errors_total",
		Help: "Total number of failed pipeline stages",
	}, []string{"stage"})

	GesturesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "samvaad_gestures_total",
		Help: "Total number of classified gestures, by label",
	}, []string{"gesture"})

	ContextSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "samvaad_context_size",
		Help: "Number of gestures currently held in the sentence context",
	})

	ActiveStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "samvaad_active_streams",
		Help: "Number of open prediction websocket connections",
	})
)

// Stage names used with StageDuration and StageErrorsTotal.
const (
	StageDecode    = "decode"
	StageClassify  = "classify"
	StageCompose   = "compose"
	StageTranslate = "translate"
)
