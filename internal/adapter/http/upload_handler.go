package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cashit-backend/internal/infrastructure/storage"
	"cashit-backend/pkg/id"
)

type UploadHandler struct{ files storage.Store }

func NewUploadHandler(files storage.Store) *UploadHandler { return &UploadHandler{files: files} }

// Upload accepts a multipart "file" field and returns the stored URL.
// Filenames get a random prefix so repeated uploads never clobber each other.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file field"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file"})
	}
	defer src.Close()

	name := id.NewID32()[:8] + "_" + fh.Filename
	url, err := h.files.Save(name, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store failed"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"url": url})
}
