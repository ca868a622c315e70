package handler

import (
	"errors"
	"net/http"

	"studio/internal/assets"
	"studio/internal/content/service"
	apperrors "studio/pkg/errors"
	httputil "studio/pkg/http"
	"studio/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

// multipartMemory is how much of an upload is held in memory before the
// rest spills to a temporary file.
const multipartMemory = 8 << 20

type GalleryHandler struct {
	service service.GalleryService
	log     *logger.Logger
}

func NewGalleryHandler(service service.GalleryService, log *logger.Logger) *GalleryHandler {
	return &GalleryHandler{service: service, log: log}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	images, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, h.log, "List", err)
		return
	}

	if err := httputil.WriteList(w, images, len(images)); err != nil {
		h.log.Error("failed to write list response", "handler", "List", "operation", "WriteList", "error", err)
	}
}

func (h *GalleryHandler) Categories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Categories()); err != nil {
		h.log.Error("failed to write success response", "handler", "Categories", "operation", "WriteSuccess", "error", err)
	}
}

func (h *GalleryHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, h.log, "Upload", apperrors.TooLarge("Upload exceeds the maximum allowed size"))
			return
		}
		writeError(w, h.log, "Upload", apperrors.InvalidInput("Expected a multipart form with a file"))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, h.log, "Upload", apperrors.Validation("Invalid gallery image", map[string]any{
			"file": "file is required",
		}))
		return
	}
	defer file.Close()

	contentType, err := assets.Sniff(file)
	if err != nil {
		writeError(w, h.log, "Upload", apperrors.InvalidInput("Unreadable upload"))
		return
	}

	image, err := h.service.Upload(r.Context(), service.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}, r.FormValue("category"))
	if err != nil {
		writeError(w, h.log, "Upload", err)
		return
	}

	if err := httputil.WriteCreated(w, image); err != nil {
		h.log.Error("failed to write created response", "handler", "Upload", "operation", "WriteCreated", "error", err)
	}
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		writeError(w, h.log, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *GalleryHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/gallery", h.List)
	router.GET("/api/v1/gallery/categories", h.Categories)
	router.POST("/api/v1/admin/gallery", h.Upload)
	router.DELETE("/api/v1/admin/gallery/:id", h.Delete)
}

func writeError(w http.ResponseWriter, log *logger.Logger, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}
