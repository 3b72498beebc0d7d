package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/storage"
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// CreateImage accepts a multipart image, recompresses it and stores it.
// The returned URL goes into a message's image_url or a profile's
// portfolio_image_url.
func (h *UploadHandler) CreateImage(c *gin.Context) {
	if !h.uploader.Enabled() {
		httperr.Internal(c, "storage_not_configured", "Image storage is not configured.")
		return
	}

	prefix := "chat-images"
	if c.Query("kind") == "portfolio" {
		prefix = "portfolio"
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), prefix, file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
