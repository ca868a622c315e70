package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	bookingrepo "studio/internal/bookings/repository"
	"studio/internal/events"
	"studio/internal/notifications"
	"studio/pkg/config"
	"studio/pkg/kafka"
	kafka_config "studio/pkg/kafka/config"
	kafka_middleware "studio/pkg/kafka/middleware"
	"studio/pkg/rabbitmq"
)

const ServiceName = "notifier"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notifier := notifications.NewNotifier(notifications.NewSender(cfg), cfg)

	reminders := notifications.NewReminderJob(bookingrepo.NewMongoBookingRepository(cfg), notifier, cfg)
	scheduler, err := reminders.Start(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to start reminder scheduler", "error", err)
	}
	defer func() {
		<-scheduler.Stop().Done()
		cfg.Log.Info("Reminder scheduler stopped")
	}()

	switch cfg.EventBroker {
	case config.BrokerKafka:
		runKafka(ctx, cfg, notifier)
	case config.BrokerRabbitMQ:
		runRabbitMQ(ctx, cfg, notifier)
	default:
		cfg.Log.Warn("No event broker configured, only reminders will be sent")
		<-ctx.Done()
	}

	cfg.Log.Info("Notifier stopped")
}

func runKafka(ctx context.Context, cfg *config.Config, notifier *notifications.Notifier) {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log.Info)

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.Log, notifier.KafkaHandler())
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	metrics := kafka_middleware.NewMetrics()
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(metrics.ConsumerMiddleware())

	cfg.Log.Info("Consuming booking events from Kafka", "topic", kafkaCfg.Topic, "group", kafkaCfg.ConsumerGroup)
	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		cfg.Log.Error("Kafka consumer stopped", "error", err)
	}

	metrics.LogMetrics(cfg.Log)
	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}
}

func runRabbitMQ(ctx context.Context, cfg *config.Config, notifier *notifications.Notifier) {
	consumer := rabbitmq.NewConsumer(cfg.RabbitMQURL, events.Queue, notifier.RabbitHandler(), cfg.Log)

	cfg.Log.Info("Consuming booking events from RabbitMQ", "queue", events.Queue)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		cfg.Log.Error("RabbitMQ consumer stopped", "error", err)
	}
}
