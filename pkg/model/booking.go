package model

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusPaid      BookingStatus = "Paid"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// EventDateLayout is the calendar date format of Booking.EventDate.
const EventDateLayout = "2006-01-02"

var allowedTransitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusPaid:      true,
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusPaid: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
	StatusCompleted: {
		StatusCancelled: true,
	},
	StatusCancelled: {},
}

func BookingStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusPaid, StatusConfirmed, StatusCompleted, StatusCancelled}
}

func (s BookingStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether the table allows moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return allowedTransitions[s][next]
}

// IsSettled reports whether the advance has been received.
func (s BookingStatus) IsSettled() bool {
	return s == StatusPaid || s == StatusConfirmed || s == StatusCompleted
}

func (s BookingStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

type Booking struct {
	ID            string        `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CustomerName  string        `json:"customer_name" bson:"customer_name" validate:"required,max=100"`
	CustomerPhone string        `json:"customer_phone" bson:"customer_phone" validate:"required,max=20,containsany=0123456789"`
	EventDate     string        `json:"event_date" bson:"event_date" validate:"required,datetime=2006-01-02"`
	PackageID     string        `json:"package_id" bson:"package_id" validate:"required"`
	PackageName   string        `json:"package_name" bson:"package_name" validate:"required"`
	PackagePrice  int64         `json:"package_price" bson:"package_price" validate:"gt=0"`
	AdvanceAmount int64         `json:"advance_amount" bson:"advance_amount" validate:"gt=0,ltefield=PackagePrice"`
	Status        BookingStatus `json:"status" bson:"status" validate:"required,booking_status"`
	PaymentID     string        `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}

// BalanceDue is what remains after the advance, never negative.
func (b *Booking) BalanceDue() int64 {
	return max(0, b.PackagePrice-b.AdvanceAmount)
}

// EventDay parses EventDate as a calendar day in loc.
func (b *Booking) EventDay(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(EventDateLayout, b.EventDate, loc)
}

type BookingRequest struct {
	PackageID     string `json:"package_id"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	EventDate     string `json:"event_date"`
}

type StatusUpdate struct {
	Status BookingStatus `json:"status"`
}

// PaymentInfo is the confirmed payment recorded when a booking becomes Paid.
type PaymentInfo struct {
	PaymentID string    `json:"payment_id" bson:"payment_id"`
	Amount    int64     `json:"amount" bson:"amount"`
	PaidAt    time.Time `json:"paid_at" bson:"paid_at"`
}
