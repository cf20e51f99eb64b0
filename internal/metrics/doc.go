// Package metrics provides Prometheus instrumentation for ioclog.
//
// All metrics are prefixed with "ioclog_" and registered with the default
// registry through promauto.
//
// # Metrics
//
//   - LinesWrittenTotal: Counter of log lines written, by level
//   - LinesSuppressedTotal: Counter of log calls dropped by the level threshold, by level
//   - DefangFallbacksTotal: Counter of resources logged as absent after a failed transform, by reason
//   - LevelChangesTotal: Counter of threshold changes, by direction (raise/lower)
//   - ActiveLevel: Gauge of the current threshold as an slog numeric level
//
// # Usage
//
// Mount promhttp on the metrics endpoint:
//
//	r.Handle("/metrics", promhttp.Handler())
//
// Example PromQL, suppression ratio at INFO:
//
//	rate(ioclog_lines_suppressed_total{level="INFO"}[5m]) /
//	(rate(ioclog_lines_suppressed_total{level="INFO"}[5m]) + rate(ioclog_lines_written_total{level="INFO"}[5m]))
package metrics
