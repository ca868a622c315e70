package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studio/pkg/client"
	"studio/pkg/config"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type echoHandler struct{}

func (echoHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/echo", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		_ = httputil.WriteCreated(w, map[string]string{"ok": "yes"})
	})
}

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    time.Second,
		IdempotencyTTL:    time.Minute,
		MaxRequestSize:    1024,
		MaxUploadSize:     4096,
		ShutdownTimeout:   time.Second,
		PaymentMode:       config.PaymentModeTrustOnSubmit,
		Log:               logger.Discard(),
		Client:            client.NewClient(),
	}
}

func TestApplication_MiddlewareChain(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(echoHandler{})
	defer a.rateLimiter.Stop()
	defer a.idempotencyStore.Stop()

	post := func(contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/echo", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, req)
		return rec
	}

	rec := post("text/plain")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("text/plain status = %d, want 415", rec.Code)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id header missing")
	}

	for i := range 2 {
		if rec := post("application/json"); rec.Code != http.StatusCreated {
			t.Errorf("json request %d status = %d, want 201", i, rec.Code)
		}
	}
	if rec := post("application/json"); rec.Code != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", rec.Code)
	}
}

func TestApplication_HealthBypassesLimits(t *testing.T) {
	a := NewApplication(testConfig())
	a.SetApp(echoHandler{})
	defer a.rateLimiter.Stop()
	defer a.idempotencyStore.Stop()

	for range 5 {
		rec := httptest.NewRecorder()
		a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("health status = %d", rec.Code)
		}
	}
}
