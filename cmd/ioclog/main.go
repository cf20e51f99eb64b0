// ioclog - defanging indicator logger
//
// ioclog reads indicators of compromise (URLs, hostnames, IPs) from stdin,
// one per line, and appends each to the configured log file in defanged
// form so the log never contains a clickable link.
//
//	cat iocs.txt | IOCLOG_CONFIG=configs/ioclog.yaml ioclog
//
// While running, SIGUSR1 raises and SIGUSR2 lowers the log threshold by one
// level. When metrics are enabled, /metrics and /healthz are served on
// metrics.listen.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nerrad567/ioclog/internal/infrastructure/config"
	"github.com/nerrad567/ioclog/internal/infrastructure/logging"
	"github.com/nerrad567/ioclog/internal/metrics"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/ioclog.yaml"

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//   - in: Source of indicators, one per line
//
// Returns:
//   - error: nil when input is exhausted or ctx is cancelled
func run(ctx context.Context, in io.Reader) error {
	// Lifecycle messages go to stderr; indicators go to the configured file.
	ops := slog.New(logging.Default().Handler())
	ops.Info("starting ioclog",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer func() {
		if closeErr := log.Close(); closeErr != nil {
			ops.Error("error closing log", "error", closeErr)
		}
	}()
	ops.Info("logger initialised",
		"path", cfg.Logging.Path,
		"level", logging.LevelName(log.Level()),
		"policy", log.Policy().String(),
	)

	metrics.InitializeMetrics(logging.LevelNames())
	metrics.ActiveLevel.Set(float64(log.Level()))

	if cfg.Metrics.Enabled {
		srv := startMetricsServer(cfg.Metrics.Listen, ops)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
				ops.Error("error stopping metrics server", "error", shutdownErr)
			}
		}()
	}

	stopSignals := watchLevelSignals(ctx, log, ops)
	defer stopSignals()

	count, err := logIndicators(ctx, log, in)
	ops.Info("ioclog stopped", "indicators", count)
	return err
}

// logIndicators logs every non-blank line of in at INFO until in is
// exhausted or ctx is cancelled.
func logIndicators(ctx context.Context, log *logging.Logger, in io.Reader) (int, error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return count, nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					if err != nil {
						return count, fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				return count, nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			log.Info("indicator observed: %s", line)
			count++
		}
	}
}

// getConfigPath returns the configuration file path.
// Checks IOCLOG_CONFIG environment variable first, then uses default.
func getConfigPath() string {
	if path := os.Getenv("IOCLOG_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// loadConfig loads path. A missing file at the default path falls back to
// built-in defaults; a missing file that was asked for explicitly is an error.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.LoadDefaults()
	}
	return cfg, err
}

// newMetricsRouter builds the router for the metrics endpoint.
func newMetricsRouter() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")
	return r
}

// startMetricsServer serves newMetricsRouter on addr in the background.
func startMetricsServer(addr string, ops *slog.Logger) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           newMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		ops.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ops.Error("metrics server error", "error", err)
		}
	}()

	return srv
}
