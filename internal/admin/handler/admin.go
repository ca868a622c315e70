package handler

import (
	"net/http"
	"strconv"

	"studio/internal/admin"
	apperrors "studio/pkg/errors"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	service admin.AdminService
	log     *logger.Logger
}

func NewAdminHandler(service admin.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{service: service, log: log}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	views, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.writeError(w, "ListBookings", err)
		return
	}

	views = h.service.Search(views, r.URL.Query().Get("q"))
	if err := httputil.WriteList(w, views, len(views)); err != nil {
		h.log.Error("failed to write list response", "handler", "ListBookings", "operation", "WriteList", "error", err)
	}
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	confirmed := false
	if raw := r.URL.Query().Get("confirm"); raw != "" {
		var err error
		if confirmed, err = strconv.ParseBool(raw); err != nil {
			h.writeError(w, "DeleteBooking", apperrors.InvalidInput("invalid confirm parameter: "+raw))
			return
		}
	}

	if err := h.service.DeleteBooking(r.Context(), ps.ByName("id"), confirmed); err != nil {
		h.writeError(w, "DeleteBooking", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.StatusUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	view, err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), update.Status)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stats, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.writeError(w, "Dashboard", err)
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Dashboard", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AdminHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/admin/bookings", h.ListBookings)
	router.DELETE("/api/v1/admin/bookings/:id", h.DeleteBooking)
	router.PATCH("/api/v1/admin/bookings/:id/status", h.UpdateStatus)
	router.GET("/api/v1/admin/dashboard", h.Dashboard)
}
