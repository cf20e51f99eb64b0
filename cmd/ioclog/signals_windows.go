//go:build windows

package main

import (
	"context"
	"log/slog"

	"github.com/nerrad567/ioclog/internal/infrastructure/logging"
)

// watchLevelSignals is a no-op: Windows has no SIGUSR1/SIGUSR2.
func watchLevelSignals(_ context.Context, _ *logging.Logger, _ *slog.Logger) func() {
	return func() {}
}
