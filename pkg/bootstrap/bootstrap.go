// Package bootstrap builds the process-wide dependencies shared by service entrypoints.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abgdnv/filecommerce/pkg/config"
	"github.com/abgdnv/filecommerce/pkg/logger"
	"github.com/abgdnv/filecommerce/pkg/messaging"
	"github.com/abgdnv/filecommerce/pkg/messaging/events"
	"github.com/abgdnv/filecommerce/pkg/nats"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
func NewLogger(level string) *slog.Logger {
	return logger.New(os.Stdout, level)
}

// NewPublisher connects to NATS, makes sure the event stream exists and returns a circuit-broken publisher.
// When NATS is disabled a no-op publisher is returned. The close func is always safe to call.
func NewPublisher(ctx context.Context, cfg config.NATSConfig, log *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Enabled {
		log.Info("NATS is disabled, domain events will not be published")
		return messaging.NoopPublisher{}, func() {}, nil
	}

	nc, err := nats.NewClient(cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := nats.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}

	streamCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := nats.EnsureStream(streamCtx, js, cfg.Stream, events.Subjects()); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to prepare event stream: %w", err)
	}
	log.Info("Successfully connected to NATS", "url", nc.ConnectedUrl(), "stream", cfg.Stream)

	closeFn := func() {
		if err := nc.Drain(); err != nil {
			log.Warn("Failed to drain NATS connection", "error", err)
		}
	}
	return nats.NewNatsPublisher(js, cfg.CircuitBreaker, log), closeFn, nil
}
