package handler

import (
	"net/http"

	"studio/internal/content/service"
	httputil "studio/pkg/http"
	"studio/pkg/logger"
	"studio/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReviewHandler struct {
	service service.ReviewService
	log     *logger.Logger
}

func NewReviewHandler(service service.ReviewService, log *logger.Logger) *ReviewHandler {
	return &ReviewHandler{service: service, log: log}
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, err := httputil.ExtractLimit(r, service.DefaultReviewLimit, service.MaxReviewLimit)
	if err != nil {
		writeError(w, h.log, "List", err)
		return
	}

	reviews, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, h.log, "List", err)
		return
	}

	if err := httputil.WriteList(w, reviews, len(reviews)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.ReviewRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeError(w, h.log, "Submit", err)
		return
	}

	review, err := h.service.Submit(r.Context(), req)
	if err != nil {
		writeError(w, h.log, "Submit", err)
		return
	}

	if err := httputil.WriteCreated(w, review); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, h.log, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *ReviewHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/reviews", h.List)
	router.POST("/api/v1/reviews", h.Submit)
	router.DELETE("/api/v1/admin/reviews/:id", h.Delete)
}
