package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/api/metrics"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

// CleanupDispatcher is the interface the handler uses to schedule deletion
// of replaced upload objects.
type CleanupDispatcher interface {
	Enqueue(url string)
}

// UploadHandler handles image uploads for avatars, pets, listings and posts.
type UploadHandler struct {
	store    ports.Storage
	cleanup  CleanupDispatcher
	maxBytes int64
}

func NewUploadHandler(store ports.Storage, cleanup CleanupDispatcher, maxBytes int64) *UploadHandler {
	return &UploadHandler{store: store, cleanup: cleanup, maxBytes: maxBytes}
}

// Upload handles POST /upload. The image arrives as the multipart field
// "image"; an optional "oldImageUrl" field schedules background deletion of
// the object being replaced.
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image        formData  file    true   "Image file (jpeg, png, gif, webp; max 5 MB)"
// @Param        oldImageUrl  formData  string  false  "URL of the image being replaced"
// @Success      201  {object}  ports.UploadResult
// @Failure      400  {object}  errorResponse
// @Failure      413  {object}  errorResponse
// @Failure      415  {object}  errorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if _, _, err := ctxUser(c); err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return ports.ErrNoFile
	}
	if fh.Size > h.maxBytes {
		return ports.ErrFileTooLarge
	}

	contentType := fh.Header.Get(echo.HeaderContentType)

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer src.Close()

	result, err := h.store.Save(c.Request().Context(), src, fh.Size, contentType)
	if err != nil {
		return err
	}

	if old := c.FormValue("oldImageUrl"); old != "" {
		h.cleanup.Enqueue(old)
	}

	metrics.UploadsTotal.WithLabelValues(result.ContentType).Inc()

	return c.JSON(http.StatusCreated, result)
}
