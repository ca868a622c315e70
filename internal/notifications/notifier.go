package notifications

import (
	"context"
	"fmt"

	"studio/internal/events"
	"studio/pkg/config"
	"studio/pkg/kafka"
	"studio/pkg/model"
	"studio/pkg/rabbitmq"
	"studio/pkg/sanitizer"
)

type Notifier struct {
	sender Sender
	studio Studio
	cfg    *config.Config
}

func NewNotifier(sender Sender, cfg *config.Config) *Notifier {
	return &Notifier{
		sender: sender,
		studio: Studio{
			Name:          cfg.StudioName,
			Phone:         cfg.StudioPhone,
			PublicBaseURL: cfg.PublicBaseURL,
		},
		cfg: cfg,
	}
}

// HandleEvent sends the message a booking event calls for, if any.
func (n *Notifier) HandleEvent(ctx context.Context, event events.BookingEvent) error {
	var body string

	switch event.EventType {
	case events.BookingCreated:
		body = confirmationMessage(n.studio, event.CustomerName, event.PackageName, event.EventDate,
			event.BookingID, event.AdvanceAmount, event.Status)
	case events.BookingStatusChanged:
		switch event.Status {
		case model.StatusPaid:
			body = paymentReceivedMessage(n.studio, event.CustomerName, event.EventDate, event.AdvanceAmount)
		case model.StatusConfirmed:
			body = confirmedMessage(n.studio, event.CustomerName, event.PackageName, event.EventDate)
		case model.StatusCancelled:
			body = cancelledMessage(n.studio, event.CustomerName, event.PackageName, event.EventDate)
		}
	}

	if body == "" {
		n.cfg.Log.Debug("No notification for event", "event_type", event.EventType, "status", event.Status)
		return nil
	}
	_, err := n.send(ctx, event.BookingID, event.CustomerPhone, body)
	return err
}

// send reports whether the message went out. Numbers that cannot be
// normalized are skipped without an error since retrying would not fix them.
func (n *Notifier) send(ctx context.Context, bookingID, phone, body string) (bool, error) {
	to := sanitizer.NormalizePhone(phone, n.cfg.PhoneRegion)
	if to == "" {
		n.cfg.Log.Warn("Skipping notification, unusable phone number", "booking_id", bookingID)
		return false, nil
	}

	if err := n.sender.Send(ctx, to, body); err != nil {
		return false, fmt.Errorf("notify booking %s: %w", bookingID, err)
	}
	return true, nil
}

// KafkaHandler adapts the notifier to the Kafka consumer. Undecodable
// messages go straight to the DLQ.
func (n *Notifier) KafkaHandler() kafka.MessageHandler {
	return func(ctx context.Context, msg kafka.Message) error {
		event, err := events.DecodeBookingEvent(msg.Value)
		if err != nil {
			return fmt.Errorf("%w: %v", kafka.ErrPermanentFailure, err)
		}
		return n.HandleEvent(ctx, event)
	}
}

// RabbitHandler adapts the notifier to the RabbitMQ consumer, which logs
// and drops failed deliveries.
func (n *Notifier) RabbitHandler() rabbitmq.Handler {
	return func(ctx context.Context, d rabbitmq.Delivery) error {
		event, err := events.DecodeBookingEvent(d.Body)
		if err != nil {
			return err
		}
		return n.HandleEvent(ctx, event)
	}
}
