package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studio/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetchCount  = 50
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// Delivery is the part of an AMQP delivery handlers care about.
type Delivery struct {
	MessageID string
	Type      string
	Body      []byte
}

type Handler func(ctx context.Context, d Delivery) error

// Consumer acks handled messages and rejects failed ones without requeue,
// so a poison message cannot spin the loop.
type Consumer struct {
	url     string
	queue   string
	handler Handler
	log     *logger.Logger
}

func NewConsumer(url, queue string, handler Handler, log *logger.Logger) *Consumer {
	return &Consumer{url: url, queue: queue, handler: handler, log: log}
}

// Run reconnects with exponential backoff until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	backoff := initialBackoff
	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("RabbitMQ dial failed, retrying", "queue", c.queue, "backoff", backoff, "error", err)
			if !wait(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = initialBackoff

		err = c.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("RabbitMQ consume loop ended, reconnecting", "queue", c.queue, "error", err)
		if !wait(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		c.log.Warn("RabbitMQ set QoS failed", "error", err)
	}
	if err := DeclareQueue(ch, c.queue); err != nil {
		return err
	}

	msgs, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.log.Info("RabbitMQ consumer started", "queue", c.queue)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery) {
	err := c.handler(ctx, Delivery{MessageID: d.MessageId, Type: d.Type, Body: d.Body})
	if err != nil {
		c.log.Error("RabbitMQ message handling failed", "queue", c.queue, "message_id", d.MessageId, "error", err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			c.log.Error("RabbitMQ nack failed", "message_id", d.MessageId, "error", nackErr)
		}
		return
	}
	if ackErr := d.Ack(false); ackErr != nil {
		c.log.Error("RabbitMQ ack failed", "message_id", d.MessageId, "error", ackErr)
	}
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
