package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/nerrad567/ioclog/internal/defang"
	"github.com/nerrad567/ioclog/internal/infrastructure/config"
	"github.com/nerrad567/ioclog/internal/metrics"
)

// Logger writes leveled log lines with defanged resources.
//
// Thread Safety:
//   - Log calls are safe for concurrent use; writes are serialized.
//   - RaiseLevel and LowerLevel may race each other (see package docs).
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	policy defang.Policy
	closer io.Closer
}

// New creates a Logger that appends to the file at cfg.Path.
//
// The parent directory is created if missing. The initial threshold comes
// from cfg.Level (INFO when empty).
//
// Parameters:
//   - cfg: Logging configuration from ioclog.yaml
//
// Returns:
//   - *Logger: Logger owning the opened file; call Close when done
//   - error: If the file cannot be opened or the defang policy is unknown
func New(cfg config.LoggingConfig) (*Logger, error) {
	if cfg.Path == "" {
		return nil, errors.New("logging: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(cfg.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l, err := NewWithWriter(f, cfg)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closer = f

	return l, nil
}

// NewWithWriter creates a Logger that writes to w. cfg.Path is ignored.
// The caller keeps ownership of w.
func NewWithWriter(w io.Writer, cfg config.LoggingConfig) (*Logger, error) {
	policy, err := defang.ParsePolicy(cfg.Defang.Policy)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	return &Logger{
		logger: slog.New(newLineHandler(w, level)),
		level:  level,
		policy: policy,
	}, nil
}

// Default creates a logger for use before configuration is loaded.
//
// It writes to stderr at info level with the full defang policy. It should
// only be used during early startup and for process lifecycle messages.
func Default() *Logger {
	l, _ := NewWithWriter(os.Stderr, config.LoggingConfig{Level: "info"})
	return l
}

// Close releases the file opened by New. It is a no-op for loggers built
// with NewWithWriter.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Handler exposes the underlying slog.Handler so the sink can back an
// *slog.Logger elsewhere. Records passed to it are not defanged.
func (l *Logger) Handler() slog.Handler {
	return l.logger.Handler()
}

// Policy returns the defang policy applied to resources.
func (l *Logger) Policy() defang.Policy {
	return l.policy
}

// Debug logs at DEBUG. Non-production diagnostics.
func (l *Logger) Debug(message string, resource ...string) {
	l.log(LevelDebug, message, resource)
}

// Info logs at INFO.
func (l *Logger) Info(message string, resource ...string) {
	l.log(LevelInfo, message, resource)
}

// Warning logs at WARNING.
func (l *Logger) Warning(message string, resource ...string) {
	l.log(LevelWarning, message, resource)
}

// Error logs at ERROR.
func (l *Logger) Error(message string, resource ...string) {
	l.log(LevelError, message, resource)
}

// Critical logs at CRITICAL.
func (l *Logger) Critical(message string, resource ...string) {
	l.log(LevelCritical, message, resource)
}

// log defangs resource, formats message and emits one record. The caller's
// frame is recorded as the source location, so it must be called directly
// from one of the level methods.
func (l *Logger) log(level slog.Level, message string, resource []string) {
	ctx := context.Background()
	name := LevelName(level)

	if !l.logger.Enabled(ctx, level) {
		metrics.LinesSuppressedTotal.WithLabelValues(name).Inc()
		return
	}

	res := defang.Resource(l.policy, resource)
	if err := res.Reason(); err != nil {
		metrics.DefangFallbacksTotal.WithLabelValues(fallbackReason(err)).Inc()
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, log, level method]

	r := slog.NewRecord(time.Now(), level, formatMessage(message, res.Args()), pcs[0])
	if err := l.logger.Handler().Handle(ctx, r); err != nil {
		return
	}
	metrics.LinesWrittenTotal.WithLabelValues(name).Inc()
}

// Level returns the active threshold.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// RaiseLevel moves the threshold one step toward CRITICAL. No-op at CRITICAL.
func (l *Logger) RaiseLevel() {
	l.step(1, "raise")
}

// LowerLevel moves the threshold one step toward DEBUG. No-op at DEBUG.
func (l *Logger) LowerLevel() {
	l.step(-1, "lower")
}

func (l *Logger) step(delta int, direction string) {
	next := levelIndex(l.level.Level()) + delta
	if next < 0 || next >= len(levels) {
		return
	}
	l.level.Set(levels[next])

	metrics.LevelChangesTotal.WithLabelValues(direction).Inc()
	metrics.ActiveLevel.Set(float64(levels[next]))
}

// formatMessage substitutes args into template. Args beyond the number of
// verbs in template are dropped, so an absent resource does not decorate a
// template that has no placeholder.
func formatMessage(template string, args []any) string {
	if n := countVerbs(template); len(args) > n {
		args = args[:n]
	}
	return fmt.Sprintf(template, args...)
}

// countVerbs counts the arguments a fmt template consumes. Explicit argument
// indexes are not interpreted.
func countVerbs(template string) int {
	n := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			continue
		}
		i++
		if i < len(template) && template[i] == '%' {
			continue
		}
		n++
		for ; i < len(template); i++ {
			c := template[i]
			if c == '*' {
				n++
				continue
			}
			if strings.IndexByte("+-# 0123456789.[]", c) < 0 {
				break
			}
		}
	}
	return n
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, defang.ErrEmptyValue):
		return metrics.ReasonEmptyValue
	case errors.Is(err, defang.ErrMissingScheme):
		return metrics.ReasonMissingScheme
	default:
		return metrics.ReasonOther
	}
}
