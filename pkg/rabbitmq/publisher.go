// Package rabbitmq publishes and consumes JSON messages on durable queues
// through the default exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studio/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const ContentTypeJSON = "application/json"

// Publisher dials the broker per message. Booking events are rare enough
// that a pooled connection is not worth its reconnect handling.
type Publisher struct {
	url   string
	queue string
	log   *logger.Logger
	dial  func(url string) (*amqp.Connection, error)
}

func NewPublisher(url, queue string, log *logger.Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		log:   log,
		dial:  amqp.Dial,
	}
}

func (p *Publisher) Queue() string {
	return p.queue
}

// PublishJSON marshals v and publishes it as a persistent message.
func (p *Publisher) PublishJSON(ctx context.Context, messageID, messageType string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	conn, err := p.dial(p.url)
	if err != nil {
		p.log.Error("RabbitMQ dial failed", "queue", p.queue, "error", err)
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := DeclareQueue(ch, p.queue); err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Type:         messageType,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish to %s: %w", p.queue, err)
	}
	return nil
}

// DeclareQueue declares a durable, non-exclusive queue. Safe to repeat.
func DeclareQueue(ch *amqp.Channel, name string) error {
	if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", name, err)
	}
	return nil
}
