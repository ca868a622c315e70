// Package invoices projects stored bookings into printable invoices.
package invoices

import (
	"context"
	"strings"
	"time"

	apperrors "studio/pkg/errors"
	"studio/pkg/model"
)

const (
	itemSuffix   = " Package (Booking Advance)"
	numberLength = 8
)

var notes = []string{
	"Balance amount due on event date.",
	"This is a computer-generated invoice.",
}

// Render builds the invoice for booking. It reads nothing but its arguments,
// so rendering the same booking twice yields the same invoice.
func Render(booking *model.Booking, issuer model.InvoiceIssuer, loc *time.Location) *model.Invoice {
	if loc == nil {
		loc = time.UTC
	}
	amount := booking.AdvanceAmount

	return &model.Invoice{
		Number:    invoiceNumber(booking.ID),
		BookingID: booking.ID,
		IssuedOn:  booking.CreatedAt.In(loc).Format(model.EventDateLayout),
		EventDate: booking.EventDate,
		BilledTo: model.InvoiceParty{
			Name:  booking.CustomerName,
			Phone: booking.CustomerPhone,
		},
		Issuer: model.InvoiceIssuer{
			Name:    issuer.Name,
			Address: append([]string(nil), issuer.Address...),
			Phone:   issuer.Phone,
		},
		Status:   booking.Status,
		Paid:     booking.Status.IsSettled(),
		Currency: model.CurrencyINR,
		Items: []model.InvoiceItem{
			{Description: booking.PackageName + itemSuffix, Amount: amount},
		},
		Subtotal:   amount,
		Discount:   0,
		Total:      amount,
		BalanceDue: booking.BalanceDue(),
		Notes:      append([]string(nil), notes...),
	}
}

func invoiceNumber(id string) string {
	if len(id) > numberLength {
		id = id[:numberLength]
	}
	return "#" + strings.ToUpper(id)
}

type BookingReader interface {
	GetByID(ctx context.Context, id string) (*model.Booking, error)
}

type InvoiceService interface {
	RenderInvoice(ctx context.Context, id string) (*model.Invoice, error)
}

type invoiceService struct {
	bookings BookingReader
	issuer   model.InvoiceIssuer
	loc      *time.Location
}

func NewInvoiceService(bookings BookingReader, issuer model.InvoiceIssuer, loc *time.Location) InvoiceService {
	return &invoiceService{bookings: bookings, issuer: issuer, loc: loc}
}

// RenderInvoice fetches exactly one booking. Any id that does not resolve,
// malformed ones included, is reported as a missing invoice.
func (s *invoiceService) RenderInvoice(ctx context.Context, id string) (*model.Invoice, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) || apperrors.HasCode(err, apperrors.CodeInvalidInput) {
			return nil, apperrors.NotFoundWithID("Invoice", id)
		}
		return nil, err
	}
	return Render(booking, s.issuer, s.loc), nil
}
