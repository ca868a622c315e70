package invoices

import (
	"context"
	"reflect"
	"testing"
	"time"

	apperrors "studio/pkg/errors"
	"studio/pkg/model"
)

type mockBookingReader struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Booking, error)
}

func (m *mockBookingReader) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.getByIDFunc(ctx, id)
}

var testIssuer = model.InvoiceIssuer{
	Name:    "Shruti Fotography",
	Address: []string{"Main Road", "Karwar, Karnataka"},
	Phone:   "+91 98765 43210",
}

func goldBooking() *model.Booking {
	return &model.Booking{
		ID:            "65f1c0ffee0000000000abcd",
		CustomerName:  "Aditya & Priya",
		CustomerPhone: "9999999999",
		EventDate:     "2026-02-14",
		PackageID:     "gold",
		PackageName:   "Gold Wedding",
		PackagePrice:  45000,
		AdvanceAmount: 10000,
		Status:        model.StatusPaid,
		CreatedAt:     time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC),
	}
}

func TestRender_GoldBooking(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")
	inv := Render(goldBooking(), testIssuer, loc)

	if len(inv.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(inv.Items))
	}
	if inv.Items[0].Description != "Gold Wedding Package (Booking Advance)" {
		t.Errorf("description = %q", inv.Items[0].Description)
	}
	if inv.Items[0].Amount != 10000 || inv.Subtotal != 10000 || inv.Total != 10000 {
		t.Errorf("amounts = %d/%d/%d", inv.Items[0].Amount, inv.Subtotal, inv.Total)
	}
	if inv.Discount != 0 {
		t.Errorf("discount = %d", inv.Discount)
	}
	if inv.BalanceDue != 35000 {
		t.Errorf("balance_due = %d, want 35000", inv.BalanceDue)
	}
	if !inv.Paid {
		t.Error("a Paid booking renders as paid")
	}
	if inv.Number != "#65F1C0FF" {
		t.Errorf("number = %q", inv.Number)
	}
	// 20:00 UTC is already the next day in Kolkata.
	if inv.IssuedOn != "2026-01-11" {
		t.Errorf("issued_on = %q", inv.IssuedOn)
	}
	if inv.BilledTo.Name != "Aditya & Priya" || inv.EventDate != "2026-02-14" {
		t.Errorf("billed_to/event = %+v / %s", inv.BilledTo, inv.EventDate)
	}
}

func TestRender_Deterministic(t *testing.T) {
	b := goldBooking()
	first := Render(b, testIssuer, time.UTC)
	second := Render(b, testIssuer, time.UTC)

	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same booking twice must give the same invoice")
	}

	first.Issuer.Address[0] = "changed"
	if testIssuer.Address[0] != "Main Road" {
		t.Error("invoice must not share the issuer address slice")
	}
}

func TestRender_PendingNotPaid(t *testing.T) {
	b := goldBooking()
	b.Status = model.StatusPending
	if Render(b, testIssuer, nil).Paid {
		t.Error("pending booking must not render as paid")
	}
}

func TestRenderInvoice(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"found", nil, ""},
		{"unknown id", apperrors.NotFoundWithID("Booking", "x"), apperrors.CodeNotFound},
		{"empty id", apperrors.InvalidInput("Booking ID cannot be empty"), apperrors.CodeNotFound},
		{"store down", apperrors.Persistence("Failed to retrieve booking", nil), apperrors.CodePersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := &mockBookingReader{
				getByIDFunc: func(ctx context.Context, id string) (*model.Booking, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return goldBooking(), nil
				},
			}
			svc := NewInvoiceService(reader, testIssuer, time.UTC)

			inv, err := svc.RenderInvoice(context.Background(), "65f1c0ffee0000000000abcd")
			if tt.wantCode == "" {
				if err != nil || inv == nil {
					t.Fatalf("RenderInvoice() = %v, %v", inv, err)
				}
				return
			}
			if inv != nil {
				t.Error("no partial invoice on error")
			}
			if !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}
