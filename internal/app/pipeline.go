package app

import (
	"time"

	"github.com/ayusman/samvaad/internal/metrics"
)

// observe runs one pipeline stage and records its duration and failure.
func observe[T any](stage string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	metrics.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StageErrorsTotal.WithLabelValues(stage).Inc()
	}
	return v, err
}
