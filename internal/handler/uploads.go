package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/storage"
)

// UploadHandler serves stored specimen images. It is the only unauthenticated
// read path in the API, so confinement to the upload root is enforced before
// the filesystem is ever touched.
type UploadHandler struct {
	Uploads *storage.Uploads
}

func NewUploadHandler(uploads *storage.Uploads) *UploadHandler {
	return &UploadHandler{Uploads: uploads}
}

// Serve streams the requested file from the upload root. Any traversal
// attempt is answered with the same 404 as a missing file.
func (h *UploadHandler) Serve(c echo.Context) error {
	requested := c.Param("*")
	// The wildcard param may still carry percent-encoding; decode it so
	// "%2e%2e" cannot slip past the path check.
	if unescaped, err := url.PathUnescape(requested); err == nil {
		requested = unescaped
	}

	full, err := h.Uploads.Resolve(requested)
	if err != nil {
		return httperr.NotFound("File not found")
	}
	if err := c.File(full); err != nil {
		return httperr.NotFound("File not found")
	}
	return nil
}
