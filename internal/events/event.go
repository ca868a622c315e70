package events

import (
	"encoding/json"
	"fmt"
	"time"

	"studio/pkg/model"

	"github.com/google/uuid"
)

type EventType string

const (
	BookingCreated       EventType = "booking.created"
	BookingStatusChanged EventType = "booking.status_changed"
	BookingDeleted       EventType = "booking.deleted"
)

// Source is stamped on every event published by the API.
const Source = "studio-api"

type BookingEvent struct {
	EventID        string              `json:"event_id"`
	EventType      EventType           `json:"event_type"`
	BookingID      string              `json:"booking_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerPhone  string              `json:"customer_phone"`
	EventDate      string              `json:"event_date"`
	PackageName    string              `json:"package_name"`
	AdvanceAmount  int64               `json:"advance_amount"`
	Status         model.BookingStatus `json:"status"`
	PreviousStatus model.BookingStatus `json:"previous_status,omitempty"`
	OccurredAt     time.Time           `json:"occurred_at"`
}

func NewBookingEvent(eventType EventType, booking *model.Booking, previous model.BookingStatus) BookingEvent {
	return BookingEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		BookingID:      booking.ID,
		CustomerName:   booking.CustomerName,
		CustomerPhone:  booking.CustomerPhone,
		EventDate:      booking.EventDate,
		PackageName:    booking.PackageName,
		AdvanceAmount:  booking.AdvanceAmount,
		Status:         booking.Status,
		PreviousStatus: previous,
		OccurredAt:     time.Now().UTC(),
	}
}

func DecodeBookingEvent(data []byte) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event: %w", err)
	}
	if event.BookingID == "" || event.EventType == "" {
		return BookingEvent{}, fmt.Errorf("booking event missing booking_id or event_type")
	}
	return event, nil
}
