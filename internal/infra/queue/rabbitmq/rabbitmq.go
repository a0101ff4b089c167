// Package rabbitmq provides the AMQP broker connection shared by the queue
// consumers.
package rabbitmq

import (
	"context"
	"log/slog"

	"beacon/config"
	"beacon/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Client owns one AMQP connection for the lifetime of the process. Channels
// are cheap and per-consumer; the connection is the expensive part.
type Client struct {
	conn     *amqp.Connection
	prefetch int
	logger   *slog.Logger
}

// New creates the broker client and ties the connection to the fx lifecycle.
func New(params Params) (*Client, error) {
	if params.Config.Broker == nil || params.Config.Broker.URL == "" {
		return nil, errors.New("broker is not configured")
	}

	conn, err := amqp.Dial(params.Config.Broker.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to broker")
	}

	client := &Client{
		conn:     conn,
		prefetch: params.Config.Broker.Prefetch,
		logger:   params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Close()
		},
	})

	return client, nil
}

// Consume declares the named durable queue and returns its delivery stream.
// Autoack is disabled: every delivery must be settled explicitly by the
// consumer, and the channel prefetch bounds what the broker keeps in flight.
func (c *Client) Consume(queue string) (<-chan amqp.Delivery, error) {
	channel, err := c.conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open channel")
	}

	if err := channel.Qos(c.prefetch, 0, false); err != nil {
		return nil, errors.Wrap(err, "failed to set channel prefetch")
	}

	if _, err := channel.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	deliveries, err := channel.Consume(
		queue,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to consume from queue %s", queue)
	}

	c.logger.Info("Queue consumer registered",
		slog.String("queue", queue),
		slog.Int("prefetch", c.prefetch),
	)

	return deliveries, nil
}
