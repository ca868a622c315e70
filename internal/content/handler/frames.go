package handler

import (
	"net/http"

	"studio/internal/content/service"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type FrameHandler struct {
	service service.FrameService
	log     *logger.Logger
}

func NewFrameHandler(service service.FrameService, log *logger.Logger) *FrameHandler {
	return &FrameHandler{service: service, log: log}
}

func (h *FrameHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	frames, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.log, "List", err)
		return
	}

	if err := httputil.WriteList(w, frames, len(frames)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *FrameHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.FrameRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeError(w, h.log, "Create", err)
		return
	}

	frame, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, frame); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *FrameHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, h.log, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *FrameHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/frames", h.List)
	router.POST("/api/v1/admin/frames", h.Create)
	router.DELETE("/api/v1/admin/frames/:id", h.Delete)
}
