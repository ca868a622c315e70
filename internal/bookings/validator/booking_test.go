package validator

import (
	"errors"
	"testing"

	"studio/pkg/logger"
	"studio/pkg/model"
)

func newTestValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	}))
}

func validBooking() *model.Booking {
	return &model.Booking{
		CustomerName:  "Aditya & Priya",
		CustomerPhone: "9999999999",
		EventDate:     "2026-02-14",
		PackageID:     "gold",
		PackageName:   "Gold Wedding",
		PackagePrice:  45000,
		AdvanceAmount: 10000,
		Status:        model.StatusPaid,
	}
}

func TestValidate_Valid(t *testing.T) {
	v := newTestValidator()
	if err := v.Validate(validBooking()); err != nil {
		t.Fatalf("expected valid booking, got %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(b *model.Booking)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing name",
			mutate:    func(b *model.Booking) { b.CustomerName = "" },
			wantField: "customer_name",
			wantMsg:   "customer_name is required",
		},
		{
			name:      "name too long",
			mutate:    func(b *model.Booking) { b.CustomerName = string(make([]byte, 101)) },
			wantField: "customer_name",
		},
		{
			name:      "missing phone",
			mutate:    func(b *model.Booking) { b.CustomerPhone = "" },
			wantField: "customer_phone",
			wantMsg:   "customer_phone is required",
		},
		{
			name:      "phone without digits",
			mutate:    func(b *model.Booking) { b.CustomerPhone = "call me" },
			wantField: "customer_phone",
			wantMsg:   "customer_phone must contain at least one digit",
		},
		{
			name:      "phone too long",
			mutate:    func(b *model.Booking) { b.CustomerPhone = "+91 99999 99999 99999 9" },
			wantField: "customer_phone",
		},
		{
			name:      "missing date",
			mutate:    func(b *model.Booking) { b.EventDate = "" },
			wantField: "event_date",
			wantMsg:   "event_date is required",
		},
		{
			name:      "malformed date",
			mutate:    func(b *model.Booking) { b.EventDate = "14-02-2026" },
			wantField: "event_date",
			wantMsg:   "event_date must be a calendar date in YYYY-MM-DD format",
		},
		{
			name:      "impossible date",
			mutate:    func(b *model.Booking) { b.EventDate = "2026-02-30" },
			wantField: "event_date",
		},
		{
			name:      "unknown status",
			mutate:    func(b *model.Booking) { b.Status = "Refunded" },
			wantField: "status",
		},
		{
			name:      "advance above price",
			mutate:    func(b *model.Booking) { b.AdvanceAmount = 50000 },
			wantField: "advance_amount",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)

			err := v.Validate(b)
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T (%v)", err, err)
			}
			details := verrs.Details()
			msg, ok := details[tt.wantField]
			if !ok {
				t.Fatalf("expected error on %s, got %v", tt.wantField, details)
			}
			if tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "customer_name", Message: "customer_name is required"},
		{Field: "event_date", Message: "bad"},
	}
	want := "validation failed: 2 error(s): [customer_name: customer_name is required; event_date: bad]"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have empty message")
	}
}
