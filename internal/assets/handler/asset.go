package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"studio/internal/assets"
	apperrors "studio/pkg/errors"
	httputil "studio/pkg/http"
	"studio/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type AssetHandler struct {
	store assets.Store
	log   *logger.Logger
}

func NewAssetHandler(store assets.Store, log *logger.Logger) *AssetHandler {
	return &AssetHandler{store: store, log: log}
}

// Serve streams the stored bytes. Keys are never reused, so responses are
// cached for a year.
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	key := ps.ByName("key")

	object, err := h.store.Open(r.Context(), key)
	if err != nil {
		if errors.Is(err, assets.ErrAssetNotFound) {
			err = apperrors.NotFoundWithID("Asset", key)
		} else {
			h.log.Error("Failed to open asset", "key", key, "error", err)
			err = apperrors.Persistence("Failed to load asset", err)
		}
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Serve", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", object.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(object.Size, 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, object); err != nil {
		h.log.Warn("Asset stream interrupted", "key", key, "error", err)
	}
}

func (h *AssetHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/assets/:key", h.Serve)
}
