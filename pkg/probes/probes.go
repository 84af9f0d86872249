// Package probes exposes process health through files, for orchestrators that probe with `cat` or `test -f`.
package probes

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/abgdnv/filecommerce/pkg/config"
)

// Run writes the readiness file, then refreshes the liveness file every LivenessInterval until ctx is done.
// Both files are removed on return.
func Run(ctx context.Context, cfg config.ProbesConfig, logger *slog.Logger) error {
	if !cfg.Enabled {
		return nil
	}
	defer remove(cfg.ReadinessFileName, logger)
	defer remove(cfg.LivenessFileName, logger)

	if err := touch(cfg.LivenessFileName); err != nil {
		return fmt.Errorf("failed to write liveness probe: %w", err)
	}
	if err := touch(cfg.ReadinessFileName); err != nil {
		return fmt.Errorf("failed to write readiness probe: %w", err)
	}
	logger.Info("Probes ready", "readiness", cfg.ReadinessFileName, "liveness", cfg.LivenessFileName)

	ticker := time.NewTicker(cfg.LivenessInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := touch(cfg.LivenessFileName); err != nil {
				logger.Warn("Failed to refresh liveness probe", "error", err)
			}
		}
	}
}

// touch writes the current time into the file, creating it if needed.
func touch(name string) error {
	return os.WriteFile(name, []byte(time.Now().UTC().Format(time.RFC3339)), 0o644)
}

func remove(name string, logger *slog.Logger) {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to remove probe file", "file", name, "error", err)
	}
}
