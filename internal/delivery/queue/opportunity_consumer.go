// Package queue contains the broker-facing deliveries. Each consumer drains
// one durable queue and settles every message exactly once.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/domain/entity"
	"beacon/internal/infra/queue/rabbitmq"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

type OpportunityConsumerParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Client   *rabbitmq.Client
	Dispatch usecase.DispatchUsecase
}

// opportunityConsumer drains the public opportunity queue and fans each
// message out to matching subscribers.
type opportunityConsumer struct {
	queue    string
	logger   *slog.Logger
	client   *rabbitmq.Client
	dispatch usecase.DispatchUsecase
	stopping atomic.Bool
}

// NewOpportunityConsumer is the constructor for the opportunity consumer.
func NewOpportunityConsumer(params OpportunityConsumerParams) delivery.Delivery {
	consumer := &opportunityConsumer{
		queue:    params.Config.Broker.OpportunityQueue,
		logger:   params.Logger,
		client:   params.Client,
		dispatch: params.Dispatch,
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
func (c *opportunityConsumer) Serve(ctx context.Context) error {
	deliveries, err := c.client.Consume(c.queue)
	if err != nil {
		return errors.Wrap(err, "failed to start opportunity consumer")
	}

	c.logger.Info("Opportunity consumer started", slog.String("queue", c.queue))

	return c.drain(ctx, deliveries)
}

func (c *opportunityConsumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				if c.stopping.Load() {
					c.logger.Info("Opportunity consumer stopped", slog.String("queue", c.queue))

					return nil
				}

				return errors.New("opportunity queue channel closed")
			}

			c.handle(ctx, msg)
		}
	}
}

// handle settles exactly once: ack after a completed dispatch, nack without
// requeue otherwise. Requeueing is never safe here, a poison message would
// loop forever and a systemic failure would re-email the subscribers that
// already got their copy.
func (c *opportunityConsumer) handle(ctx context.Context, msg amqp.Delivery) {
	var opportunity entity.Opportunity
	if err := json.Unmarshal(msg.Body, &opportunity); err != nil {
		c.logger.Warn("Discarding malformed opportunity message", slog.String("error", err.Error()))
		c.nack(msg)

		return
	}

	report, err := c.dispatch.Dispatch(ctx, &opportunity)
	if err != nil {
		c.logger.Error("Opportunity dispatch failed",
			slog.String("opportunity_id", opportunity.ID),
			slog.String("error", err.Error()),
		)
		c.nack(msg)

		return
	}

	c.logger.Info("Opportunity dispatched",
		slog.String("opportunity_id", report.OpportunityID),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	if err := msg.Ack(false); err != nil {
		c.logger.Error("Failed to ack opportunity message", slog.String("error", err.Error()))
	}
}

func (c *opportunityConsumer) nack(msg amqp.Delivery) {
	if err := msg.Nack(false, false); err != nil {
		c.logger.Error("Failed to nack opportunity message", slog.String("error", err.Error()))
	}
}
