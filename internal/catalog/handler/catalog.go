package handler

import (
	"net/http"

	"studio/internal/catalog"
	httputil "studio/pkg/http"
	"studio/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type CatalogHandler struct {
	provider catalog.Provider
	log      *logger.Logger
}

func NewCatalogHandler(provider catalog.Provider, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		provider: provider,
		log:      log,
	}
}

func (h *CatalogHandler) List(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.provider.ListPackages()); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/packages", h.List)
}
