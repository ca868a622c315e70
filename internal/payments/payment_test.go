package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio/pkg/config"
	apperrors "studio/pkg/errors"
	"studio/pkg/logger"
	"studio/pkg/model"
)

type mockPayer struct {
	markPaidFunc func(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error)
	calls        int
}

func (m *mockPayer) MarkPaid(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error) {
	m.calls++
	return m.markPaidFunc(ctx, id, payment)
}

type mockVerifier struct {
	err error
}

func (m mockVerifier) Verify(context.Context, string, int64) error { return m.err }

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{
			Level:   "error",
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func paidBooking(id string, payment model.PaymentInfo) *model.Booking {
	return &model.Booking{ID: id, Status: model.StatusPaid, PaymentID: payment.PaymentID, AdvanceAmount: payment.Amount}
}

// ──── HandleWebhook ────────────────────────────────────────────────────────

func TestHandleWebhook_CapturedMarksPaid(t *testing.T) {
	payer := &mockPayer{
		markPaidFunc: func(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error) {
			if id != "b1" || payment.PaymentID != "pay_1" || payment.Amount != 10000 {
				t.Errorf("MarkPaid(%s, %+v)", id, payment)
			}
			if payment.PaidAt.IsZero() {
				t.Error("paid_at should be set")
			}
			return paidBooking(id, payment), nil
		},
	}
	svc := NewPaymentService(payer, NoopVerifier{}, testConfig())

	result, err := svc.HandleWebhook(context.Background(), WebhookEvent{
		BookingID: " b1 ", PaymentID: "pay_1", Amount: 10000, Status: "CAPTURED",
	})
	if err != nil {
		t.Fatalf("HandleWebhook() error = %v", err)
	}
	if result.Ignored || result.Booking.Status != model.StatusPaid {
		t.Errorf("result = %+v", result)
	}
}

func TestHandleWebhook_NonCapturedIgnored(t *testing.T) {
	payer := &mockPayer{}
	svc := NewPaymentService(payer, NoopVerifier{}, testConfig())

	for _, status := range []string{"authorized", "failed", "refunded"} {
		result, err := svc.HandleWebhook(context.Background(), WebhookEvent{
			BookingID: "b1", PaymentID: "pay_1", Amount: 10000, Status: status,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error %v", status, err)
		}
		if !result.Ignored {
			t.Errorf("%s should be ignored", status)
		}
	}
	if payer.calls != 0 {
		t.Errorf("MarkPaid called %d times, want 0", payer.calls)
	}
}

func TestHandleWebhook_Errors(t *testing.T) {
	tests := []struct {
		name        string
		event       WebhookEvent
		verifierErr error
		payErr      error
		wantCode    string
	}{
		{
			name:     "missing ids",
			event:    WebhookEvent{Amount: 10000, Status: StatusCaptured},
			wantCode: apperrors.CodeValidation,
		},
		{
			name:     "zero amount",
			event:    WebhookEvent{BookingID: "b1", PaymentID: "p", Status: StatusCaptured},
			wantCode: apperrors.CodeValidation,
		},
		{
			name:        "gateway disagrees",
			event:       WebhookEvent{BookingID: "b1", PaymentID: "p", Amount: 10000, Status: StatusCaptured},
			verifierErr: apperrors.Validation("Payment not captured", nil),
			wantCode:    apperrors.CodeValidation,
		},
		{
			name:     "booking already confirmed",
			event:    WebhookEvent{BookingID: "b1", PaymentID: "p", Amount: 10000, Status: StatusCaptured},
			payErr:   apperrors.Conflict("Booking is Confirmed, only Pending bookings can be paid"),
			wantCode: apperrors.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payer := &mockPayer{
				markPaidFunc: func(ctx context.Context, id string, payment model.PaymentInfo) (*model.Booking, error) {
					return nil, tt.payErr
				},
			}
			svc := NewPaymentService(payer, mockVerifier{err: tt.verifierErr}, testConfig())

			_, err := svc.HandleWebhook(context.Background(), tt.event)
			if !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

// ──── GatewayVerifier ──────────────────────────────────────────────────────

func TestGatewayVerifier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key_1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/payments/pay_ok":
			_, _ = w.Write([]byte(`{"id":"pay_ok","amount":10000,"status":"captured"}`))
		case "/payments/pay_auth":
			_, _ = w.Write([]byte(`{"id":"pay_auth","amount":10000,"status":"authorized"}`))
		case "/payments/pay_boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	v := NewGatewayVerifier(server.URL+"/", "key_1", time.Second)

	tests := []struct {
		name      string
		paymentID string
		amount    int64
		wantCode  string
	}{
		{"captured", "pay_ok", 10000, ""},
		{"amount mismatch", "pay_ok", 5000, apperrors.CodeValidation},
		{"not captured", "pay_auth", 10000, apperrors.CodeValidation},
		{"unknown", "pay_missing", 10000, apperrors.CodeValidation},
		{"gateway error", "pay_boom", 10000, apperrors.CodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Verify(context.Background(), tt.paymentID, tt.amount)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !apperrors.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestGatewayVerifier_Unreachable(t *testing.T) {
	v := NewGatewayVerifier("http://127.0.0.1:1", "", 200*time.Millisecond)

	err := v.Verify(context.Background(), "pay_1", 100)
	if !apperrors.HasCode(err, apperrors.CodeUnavailable) {
		t.Errorf("expected unavailable, got %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Error("transport error should be wrapped")
	}
}

func TestNewVerifier(t *testing.T) {
	cfg := testConfig()
	if _, ok := NewVerifier(cfg).(NoopVerifier); !ok {
		t.Error("no gateway URL should give NoopVerifier")
	}
	cfg.PaymentGatewayURL = "https://gateway.example"
	if _, ok := NewVerifier(cfg).(*GatewayVerifier); !ok {
		t.Error("gateway URL should give GatewayVerifier")
	}
}
