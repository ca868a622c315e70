// Package payments confirms booking advances reported by the payment
// gateway's webhook.
package payments

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studio/pkg/client"
	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/model"
)

const StatusCaptured = "captured"

// WebhookEvent is the payload the gateway posts.
type WebhookEvent struct {
	BookingID string `json:"booking_id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// Result reports what a webhook did. Ignored events leave the booking as is.
type Result struct {
	Ignored bool           `json:"ignored"`
	Reason  string         `json:"reason,omitempty"`
	Booking *model.Booking `json:"booking,omitempty"`
}

type BookingPayer interface {
	MarkPaid(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error)
}

// Verifier re-reads a payment from the gateway before it is trusted.
type Verifier interface {
	Verify(ctx context.Context, paymentID string, amount int64) error
}

type PaymentService interface {
	HandleWebhook(ctx context.Context, event WebhookEvent) (*Result, error)
}

type paymentService struct {
	bookings BookingPayer
	verifier Verifier
	cfg      *config.Config
	now      func() time.Time
}

func NewPaymentService(bookings BookingPayer, verifier Verifier, cfg *config.Config) PaymentService {
	return &paymentService{bookings: bookings, verifier: verifier, cfg: cfg, now: time.Now}
}

func (s *paymentService) HandleWebhook(ctx context.Context, event WebhookEvent) (*Result, error) {
	event.BookingID = strings.TrimSpace(event.BookingID)
	event.PaymentID = strings.TrimSpace(event.PaymentID)
	event.Status = strings.ToLower(strings.TrimSpace(event.Status))

	details := map[string]any{}
	if event.BookingID == "" {
		details["booking_id"] = "booking_id is required"
	}
	if event.PaymentID == "" {
		details["payment_id"] = "payment_id is required"
	}
	if event.Amount <= 0 {
		details["amount"] = "amount must be greater than 0"
	}
	if len(details) > 0 {
		return nil, apperrors.Validation("Invalid payment event", details)
	}

	if event.Status != StatusCaptured {
		s.cfg.Log.Info("Payment event ignored",
			"booking_id", event.BookingID,
			"payment_id", event.PaymentID,
			"status", event.Status,
		)
		return &Result{Ignored: true, Reason: "payment status " + event.Status}, nil
	}

	if err := s.verifier.Verify(ctx, event.PaymentID, event.Amount); err != nil {
		s.cfg.Log.Warn("Payment verification failed",
			"booking_id", event.BookingID,
			"payment_id", event.PaymentID,
			"error", err,
		)
		return nil, err
	}

	booking, err := s.bookings.MarkPaid(ctx, event.BookingID, model.PaymentInfo{
		PaymentID: event.PaymentID,
		Amount:    event.Amount,
		PaidAt:    s.now(),
	})
	if err != nil {
		return nil, err
	}
	return &Result{Booking: booking}, nil
}

// NoopVerifier accepts every payment. Used when no gateway URL is
// configured and the signature is the only proof.
type NoopVerifier struct{}

func (NoopVerifier) Verify(context.Context, string, int64) error { return nil }

type gatewayPayment struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

type GatewayVerifier struct {
	client *client.HttpClient
}

func NewGatewayVerifier(baseURL, apiKey string, timeout time.Duration) *GatewayVerifier {
	c := client.NewHttpClient(strings.TrimRight(baseURL, "/"), timeout)
	if apiKey != "" {
		c.Headers["Authorization"] = "Bearer " + apiKey
	}
	return &GatewayVerifier{client: c}
}

// NewVerifier returns a gateway verifier when PAYMENT_GATEWAY_URL is set.
func NewVerifier(cfg *config.Config) Verifier {
	if cfg.PaymentGatewayURL == "" {
		return NoopVerifier{}
	}
	return NewGatewayVerifier(cfg.PaymentGatewayURL, cfg.PaymentGatewayKey, cfg.RequestTimeout)
}

func (v *GatewayVerifier) Verify(ctx context.Context, paymentID string, amount int64) error {
	resp, err := v.client.GET(ctx, "/payments/"+url.PathEscape(paymentID))
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "Payment gateway unreachable", http.StatusServiceUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.Validation("Payment not recognised by gateway", map[string]any{
			"payment_id": "payment_id is unknown to the gateway",
		})
	case resp.StatusCode != http.StatusOK:
		return apperrors.Unavailable("Payment gateway")
	}

	var payment gatewayPayment
	if err := resp.DecodeJSON(&payment); err != nil {
		return apperrors.Wrap(err, apperrors.CodeUnavailable, "Invalid payment gateway response", http.StatusServiceUnavailable)
	}
	if !strings.EqualFold(payment.Status, StatusCaptured) {
		return apperrors.Validation("Payment not captured", map[string]any{
			"status": "gateway reports payment as " + payment.Status,
		})
	}
	if payment.Amount != amount {
		return apperrors.Validation("Payment amount mismatch", map[string]any{
			"amount": fmt.Sprintf("gateway captured %d, event reported %d", payment.Amount, amount),
		})
	}
	return nil
}
