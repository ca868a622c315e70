package handler

import (
	"net/http"
	"strings"

	"studio/internal/bookings/service"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	baseURL string
	log     *logger.Logger
}

type SubmitResponse struct {
	Booking    *model.Booking `json:"booking"`
	InvoiceURL string         `json:"invoice_url"`
}

func NewBookingHandler(service service.BookingService, publicBaseURL string, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		log:     log,
	}
}

func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Submit(r.Context(), req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Submit", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp := SubmitResponse{
		Booking:    booking,
		InvoiceURL: h.baseURL + "/invoice/" + booking.ID,
	}
	if err := httputil.WriteCreated(w, resp); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Submit)
	router.GET("/api/v1/bookings/:id", h.GetByID)
}
