package handler

import (
	"net/http"

	"studio/internal/payments"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

const SignatureHeader = "X-Payment-Signature"

type WebhookHandler struct {
	service payments.PaymentService
	secret  string
	log     *logger.Logger
}

func NewWebhookHandler(service payments.PaymentService, secret string, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{service: service, secret: secret, log: log}
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event payments.WebhookEvent
	if err := httputil.DecodeJSON(r, &event); err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.service.HandleWebhook(r.Context(), event)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Webhook", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WebhookHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "Webhook", "operation", "WriteError", "error", writeErr)
	}
}

// RegisterRoutes mounts the webhook behind signature verification.
func (h *WebhookHandler) RegisterRoutes(router *httprouter.Router) {
	verified := middleware.SignatureVerification(SignatureHeader, h.secret, h.log)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.Handle(w, r, httprouter.ParamsFromContext(r.Context()))
		}),
	)
	router.Handler(http.MethodPost, "/api/v1/payments/webhook", verified)
}
