package events

import (
	"context"
	"fmt"

	"studio/pkg/config"
	"studio/pkg/kafka"
	kafka_config "studio/pkg/kafka/config"
	kafka_middleware "studio/pkg/kafka/middleware"
	"studio/pkg/logger"
	"studio/pkg/rabbitmq"
)

// Queue is the RabbitMQ queue booking events travel on.
const Queue = "studio.bookings"

type Publisher interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

// NewPublisher picks the broker named by EVENT_BROKER.
func NewPublisher(cfg *config.Config) (Publisher, error) {
	switch cfg.EventBroker {
	case config.BrokerKafka:
		kafkaCfg, err := kafka_config.Load()
		if err != nil {
			return nil, err
		}
		kafkaCfg.LogConfiguration(cfg.Log.Info)
		return NewKafkaPublisher(kafkaCfg, cfg.Log)
	case config.BrokerRabbitMQ:
		return NewRabbitPublisher(rabbitmq.NewPublisher(cfg.RabbitMQURL, Queue, cfg.Log)), nil
	default:
		return NewNoopPublisher(cfg.Log), nil
	}
}

// NoopPublisher only logs. Used when no broker is configured.
type NoopPublisher struct {
	log *logger.Logger
}

func NewNoopPublisher(log *logger.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) Publish(_ context.Context, event BookingEvent) error {
	p.log.Debug("Booking event not published, no broker configured",
		"event_type", event.EventType,
		"booking_id", event.BookingID,
	)
	return nil
}

func (p *NoopPublisher) Close() error { return nil }

type KafkaPublisher struct {
	producer *kafka.Producer
	metrics  *kafka_middleware.Metrics
	log      *logger.Logger
}

func NewKafkaPublisher(cfg *kafka_config.Config, log *logger.Logger) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	metrics := kafka_middleware.NewMetrics()
	producer.Use(kafka_middleware.LoggingProducerMiddleware(log))
	producer.Use(metrics.ProducerMiddleware())

	return &KafkaPublisher{producer: producer, metrics: metrics, log: log}, nil
}

// Publish keys messages by booking id so one booking's events stay ordered.
func (p *KafkaPublisher) Publish(ctx context.Context, event BookingEvent) error {
	msg, err := kafka.NewMessage().
		WithKey(event.BookingID).
		WithValue(event).
		WithEventID(event.EventID).
		WithEventType(string(event.EventType)).
		WithSource(Source).
		Build()
	if err != nil {
		return fmt.Errorf("build kafka message: %w", err)
	}
	return p.producer.Publish(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	p.metrics.LogMetrics(p.log)
	return p.producer.Close()
}

type jsonPublisher interface {
	PublishJSON(ctx context.Context, messageID, messageType string, v any) error
}

type RabbitPublisher struct {
	publisher jsonPublisher
}

func NewRabbitPublisher(publisher jsonPublisher) *RabbitPublisher {
	return &RabbitPublisher{publisher: publisher}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event BookingEvent) error {
	return p.publisher.PublishJSON(ctx, event.EventID, string(event.EventType), event)
}

func (p *RabbitPublisher) Close() error { return nil }
