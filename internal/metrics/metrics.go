package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Logging metrics
var (
	LinesWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ioclog_lines_written_total",
			Help: "Total number of log lines written to the sink",
		},
		[]string{"level"},
	)

	LinesSuppressedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ioclog_lines_suppressed_total",
			Help: "Total number of log calls below the active level",
		},
		[]string{"level"},
	)

	ActiveLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ioclog_active_level",
			Help: "Active log threshold as an slog numeric level (-4 debug .. 12 critical)",
		},
	)

	LevelChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ioclog_level_changes_total",
			Help: "Total number of log threshold changes",
		},
		[]string{"direction"}, // "raise", "lower"
	)
)

// Defang metrics
var (
	DefangFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ioclog_defang_fallbacks_total",
			Help: "Total number of resources logged as absent because the transform failed",
		},
		[]string{"reason"},
	)
)

// Fallback reasons used as DefangFallbacksTotal labels.
const (
	ReasonEmptyValue    = "empty_value"
	ReasonMissingScheme = "missing_scheme"
	ReasonOther         = "other"
)

// InitializeMetrics pre-populates label combinations so every series is
// exported from the first scrape.
func InitializeMetrics(levels []string) {
	for _, level := range levels {
		LinesWrittenTotal.WithLabelValues(level)
		LinesSuppressedTotal.WithLabelValues(level)
	}
	for _, direction := range []string{"raise", "lower"} {
		LevelChangesTotal.WithLabelValues(direction)
	}
	for _, reason := range []string{ReasonEmptyValue, ReasonMissingScheme, ReasonOther} {
		DefangFallbacksTotal.WithLabelValues(reason)
	}
}
