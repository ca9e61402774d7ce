package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/riod94/pitaya-store-sub001/internal/http/middleware"
	"github.com/riod94/pitaya-store-sub001/internal/shared/apperr"
	"github.com/riod94/pitaya-store-sub001/internal/storage"
)

const maxUploadBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadsHandler stores admin-submitted images (product photos, banner
// art, avatars) and returns the public URL to embed in payloads.
type UploadsHandler struct {
	store storage.Storage
}

func NewUploadsHandler(store storage.Storage) *UploadsHandler {
	return &UploadsHandler{store: store}
}

func (h *UploadsHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("A file is required.", nil))
		return
	}
	if fh.Size > maxUploadBytes {
		middleware.Fail(c, apperr.InvalidErr("File too large (max 5 MB).", nil))
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		middleware.Fail(c, apperr.InvalidErr("Only JPEG, PNG and WebP images are accepted.", nil))
		return
	}

	folder := strings.TrimSpace(c.PostForm("folder"))
	if folder == "" {
		folder = "products"
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.store.Put(c.Request.Context(), f, storage.PutInput{
		Folder:      folder,
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "File uploaded", "data": gin.H{"key": res.Key, "url": res.URL}})
}
