package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(CodeValidation, "validation failed", http.StatusUnprocessableEntity)

	if err.Code != CodeValidation {
		t.Errorf("expected code %s, got %s", CodeValidation, err.Code)
	}
	if err.Message != "validation failed" {
		t.Errorf("expected message 'validation failed', got %s", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name: "without underlying error",
			appErr: &AppError{
				Code:    CodeNotFound,
				Message: "Booking not found",
			},
			expected: "NOT_FOUND: Booking not found",
		},
		{
			name: "with underlying error",
			appErr: &AppError{
				Code:    CodePersistence,
				Message: "Failed to save booking",
				Err:     errors.New("connection reset"),
			},
			expected: "PERSISTENCE_FAILURE: Failed to save booking (caused by: connection reset)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appErr.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(appErr, originalErr) {
		t.Errorf("errors.Is should find the original error through Unwrap")
	}
}

func TestConstructors_StatusAndCode(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFoundWithID("Booking", "abc"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid selection", InvalidSelection("no package"), CodeInvalidSelection, http.StatusBadRequest},
		{"persistence", Persistence("store down", errors.New("x")), CodePersistence, http.StatusServiceUnavailable},
		{"invalid input", InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{"unauthorized", Unauthorized("bad signature"), CodeUnauthorized, http.StatusUnauthorized},
		{"conflict", Conflict("illegal transition"), CodeConflict, http.StatusConflict},
		{"too large", TooLarge("file too large"), CodeTooLarge, http.StatusRequestEntityTooLarge},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"unavailable", Unavailable("payment gateway"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.status)
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Invoice", "12345")

	if err.Message != "Invoice not found" {
		t.Errorf("expected message 'Invoice not found', got %s", err.Message)
	}
	if err.Details["resource"] != "Invoice" {
		t.Errorf("expected resource 'Invoice', got %v", err.Details["resource"])
	}
	if err.Details["id"] != "12345" {
		t.Errorf("expected id '12345', got %v", err.Details["id"])
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("plain error becomes internal", func(t *testing.T) {
		appErr := AsAppError(errors.New("boom"))
		if appErr.Code != CodeInternal {
			t.Errorf("expected %s, got %s", CodeInternal, appErr.Code)
		}
	})

	t.Run("wrapped app error is found", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", NotFound("Booking"))
		appErr := AsAppError(wrapped)
		if appErr.Code != CodeNotFound {
			t.Errorf("expected %s, got %s", CodeNotFound, appErr.Code)
		}
		if !IsAppError(wrapped) {
			t.Error("IsAppError should see through wrapping")
		}
	})
}

func TestHasCode(t *testing.T) {
	if !HasCode(InvalidSelection("x"), CodeInvalidSelection) {
		t.Error("expected HasCode to match")
	}
	if HasCode(errors.New("x"), CodeInvalidSelection) {
		t.Error("plain errors never carry a code")
	}
}

func TestToJSON(t *testing.T) {
	err := Validation("Invalid booking", map[string]any{"customer_name": "customer_name is required"})
	got := string(err.ToJSON())
	want := `{"code":"VALIDATION_ERROR","message":"Invalid booking","details":{"customer_name":"customer_name is required"}}`
	if got != want {
		t.Errorf("ToJSON() = %s, want %s", got, want)
	}
}
