package nats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abgdnv/filecommerce/pkg/config"
	"github.com/abgdnv/filecommerce/pkg/messaging"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/sony/gobreaker/v2"
)

// ErrPayload is returned when an event cannot be encoded. It does not count against the breaker.
var ErrPayload = errors.New("failed to get event payload")

// StreamPublisher is the part of jetstream.JetStream the publisher needs.
type StreamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type NatsPublisher struct {
	js      StreamPublisher
	breaker *gobreaker.CircuitBreaker[*jetstream.PubAck]
}

// NewNatsPublisher wraps every publish call in a circuit breaker so an unavailable broker fails fast.
func NewNatsPublisher(js StreamPublisher, cfg config.CircuitBreakerConfig, logger *slog.Logger) *NatsPublisher {
	st := gobreaker.Settings{
		Name:        "nats-publisher-cb",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			total := counts.TotalSuccesses + counts.TotalFailures
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures ||
				(total > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(total)*100 > float64(cfg.ErrorRatePercent))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrPayload)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
	return &NatsPublisher{
		js:      js,
		breaker: gobreaker.NewCircuitBreaker[*jetstream.PubAck](st),
	}
}

func (p *NatsPublisher) Publish(ctx context.Context, event messaging.Event) error {
	_, err := p.breaker.Execute(func() (*jetstream.PubAck, error) {
		data, err := event.Payload()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPayload, err)
		}
		return p.js.Publish(ctx, event.Subject(), data)
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Subject(), err)
	}
	return nil
}

// State reports the breaker state, mostly for diagnostics.
func (p *NatsPublisher) State() gobreaker.State {
	return p.breaker.State()
}
