package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/dto"
	apperrors "github.com/akmalhakim05/fundizen-backend-sub000/internal/domain/errors"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

type UploadHandler struct {
	media  *usecase.MediaService
	logger *zap.Logger
}

func NewUploadHandler(media *usecase.MediaService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{media: media, logger: logger}
}

// Upload handles POST /api/uploads with a multipart "file" part. Campaign
// images and videos are stored under the campaigns folder and served from
// object storage.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.Validation("missing file")
	}
	if fileHeader.Size > usecase.MaxUploadSize {
		return apperrors.Validation("file exceeds the 10MB upload limit")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return apperrors.Validation("unreadable file")
	}
	defer src.Close()

	url, err := h.media.Upload(
		c.Request().Context(),
		"campaigns",
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		src,
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dto.UploadResponse{URL: url})
}

// Delete handles DELETE /api/uploads?url=..., removing a previously uploaded
// object by its public URL.
func (h *UploadHandler) Delete(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return apperrors.Validation("missing url parameter")
	}

	if err := h.media.Delete(c.Request().Context(), url); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "upload deleted"})
}
