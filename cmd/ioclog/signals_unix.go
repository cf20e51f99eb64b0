//go:build !windows

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/ioclog/internal/infrastructure/logging"
)

// watchLevelSignals steps the log threshold on SIGUSR1 (raise) and SIGUSR2
// (lower) until ctx is done or the returned stop func is called.
func watchLevelSignals(ctx context.Context, log *logging.Logger, ops *slog.Logger) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGUSR1, syscall.SIGUSR2)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case sig := <-sigs:
				applyLevelSignal(log, sig)
				ops.Info("log level changed", "level", logging.LevelName(log.Level()))
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func applyLevelSignal(log *logging.Logger, sig os.Signal) {
	switch sig {
	case syscall.SIGUSR1:
		log.RaiseLevel()
	case syscall.SIGUSR2:
		log.LowerLevel()
	}
}
