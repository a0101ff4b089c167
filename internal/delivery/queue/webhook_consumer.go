package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/infra/queue/rabbitmq"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

type WebhookConsumerParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Client  *rabbitmq.Client
	Webhook usecase.WebhookUsecase
}

// webhookConsumer drains the identity provider event queue and mirrors
// account changes into the profile store.
type webhookConsumer struct {
	queue    string
	logger   *slog.Logger
	client   *rabbitmq.Client
	webhook  usecase.WebhookUsecase
	stopping atomic.Bool
}

// NewWebhookConsumer is the constructor for the webhook consumer.
func NewWebhookConsumer(params WebhookConsumerParams) delivery.Delivery {
	consumer := &webhookConsumer{
		queue:   params.Config.Broker.WebhookQueue,
		logger:  params.Logger,
		client:  params.Client,
		webhook: params.Webhook,
	}

	// This hook runs before the broker connection's OnStop closes the
	// delivery channel, so Serve can tell a shutdown from a broker failure.
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			consumer.stopping.Store(true)

			return nil
		},
	})

	return consumer
}

// Serve consumes until the context is cancelled or the broker channel closes.
func (c *webhookConsumer) Serve(ctx context.Context) error {
	deliveries, err := c.client.Consume(c.queue)
	if err != nil {
		return errors.Wrap(err, "failed to start webhook consumer")
	}

	c.logger.Info("Webhook consumer started", slog.String("queue", c.queue))

	return c.drain(ctx, deliveries)
}

func (c *webhookConsumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				if c.stopping.Load() {
					c.logger.Info("Webhook consumer stopped", slog.String("queue", c.queue))

					return nil
				}

				return errors.New("webhook queue channel closed")
			}

			c.handle(ctx, msg)
		}
	}
}

func (c *webhookConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	var event usecase.IdentityEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		c.logger.Warn("Discarding malformed identity event", slog.String("error", err.Error()))
		c.nack(msg)

		return
	}

	if err := c.webhook.HandleIdentityEvent(ctx, &event); err != nil {
		c.logger.Error("Identity event handling failed",
			slog.String("event_type", event.Type),
			slog.String("user_id", event.User.ID),
			slog.String("error", err.Error()),
		)
		c.nack(msg)

		return
	}

	c.logger.Info("Identity event applied",
		slog.String("event_type", event.Type),
		slog.String("user_id", event.User.ID),
	)

	if err := msg.Ack(false); err != nil {
		c.logger.Error("Failed to ack identity event", slog.String("error", err.Error()))
	}
}

func (c *webhookConsumer) nack(msg amqp.Delivery) {
	if err := msg.Nack(false, false); err != nil {
		c.logger.Error("Failed to nack identity event", slog.String("error", err.Error()))
	}
}
