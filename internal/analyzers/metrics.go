package analyzers

import (
	"log-analyzer/internal/shared/metrics"
)

const fieldSourceKind = "source_kind"

var (
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "runs_total",
		},
		[]string{metrics.FieldOutcome, metrics.FieldErrorCode},
	)

	metricRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{metrics.FieldOutcome},
	)

	metricLinesReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "lines_read_total",
		},
		[]string{fieldSourceKind},
	)

	metricLinesMatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "lines_matched_total",
		},
		[]string{fieldSourceKind},
	)

	metricReportEndpoints = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "endpoints",
			Help:      "Number of endpoints in the last written report, before the top-N cutoff.",
		},
		[]string{},
	)
)
