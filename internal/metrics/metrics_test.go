package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLoggingMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"LinesWrittenTotal", LinesWrittenTotal},
		{"LinesSuppressedTotal", LinesSuppressedTotal},
		{"ActiveLevel", ActiveLevel},
		{"LevelChangesTotal", LevelChangesTotal},
		{"DefangFallbacksTotal", DefangFallbacksTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestInitializeMetrics(t *testing.T) {
	InitializeMetrics([]string{"DEBUG", "INFO"})

	// Two written + two suppressed series.
	if n := testutil.CollectAndCount(LinesWrittenTotal); n < 2 {
		t.Errorf("LinesWrittenTotal series = %d, want at least 2", n)
	}
	if n := testutil.CollectAndCount(LinesSuppressedTotal); n < 2 {
		t.Errorf("LinesSuppressedTotal series = %d, want at least 2", n)
	}
	if n := testutil.CollectAndCount(LevelChangesTotal); n < 2 {
		t.Errorf("LevelChangesTotal series = %d, want at least 2", n)
	}
	if n := testutil.CollectAndCount(DefangFallbacksTotal); n < 3 {
		t.Errorf("DefangFallbacksTotal series = %d, want at least 3", n)
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(DefangFallbacksTotal.WithLabelValues(ReasonOther))
	DefangFallbacksTotal.WithLabelValues(ReasonOther).Inc()
	after := testutil.ToFloat64(DefangFallbacksTotal.WithLabelValues(ReasonOther))

	if after-before != 1 {
		t.Errorf("counter delta = %v, want 1", after-before)
	}
}
