package handler

import (
	"bytes"
	"net/http"

	"studio/internal/invoices"
	apperrors "studio/pkg/errors"
	httputil "studio/pkg/http"
	"studio/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	notFoundMessage    = "Invoice not found."
	unavailableMessage = "Invoice is temporarily unavailable. Please try again."
)

type InvoiceHandler struct {
	service invoices.InvoiceService
	log     *logger.Logger
}

func NewInvoiceHandler(service invoices.InvoiceService, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{service: service, log: log}
}

func (h *InvoiceHandler) GetJSON(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	invoice, err := h.service.RenderInvoice(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetJSON", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, invoice); err != nil {
		h.log.Error("failed to write success response", "handler", "GetJSON", "operation", "WriteSuccess", "error", err)
	}
}

// GetPage serves the printable invoice. It renders into a buffer first so a
// template failure never leaves half a page on the wire.
func (h *InvoiceHandler) GetPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	invoice, err := h.service.RenderInvoice(r.Context(), ps.ByName("id"))
	if err != nil {
		appErr := apperrors.AsAppError(err)
		message := unavailableMessage
		if appErr.Code == apperrors.CodeNotFound {
			message = notFoundMessage
		}
		h.writePage(w, appErr.StatusCode(), func(buf *bytes.Buffer) error {
			return messagePage.Execute(buf, message)
		})
		return
	}

	h.writePage(w, http.StatusOK, func(buf *bytes.Buffer) error {
		return invoicePage.Execute(buf, invoice)
	})
}

func (h *InvoiceHandler) writePage(w http.ResponseWriter, status int, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		h.log.Error("failed to render invoice page", "handler", "GetPage", "error", err)
		http.Error(w, unavailableMessage, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Error("failed to write invoice page", "handler", "GetPage", "error", err)
	}
}

func (h *InvoiceHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/invoices/:id", h.GetJSON)
	router.GET("/invoice/:id", h.GetPage)
}
