package upload

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/folio-space/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStore is the bucket surface the handler needs; *Uploader implements
// it against S3.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
	Key(name string) string
}

// Handler exposes the admin image host: batch upload plus delete-by-key.
type Handler struct {
	store ObjectStore
	log   *zap.Logger
}

func NewHandler(store ObjectStore, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/projects", authMW)
	g.POST("/upload-image", h.uploadImages)
	g.DELETE("/upload-image", h.deleteImage)
}

type uploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Filename string `json:"filename"`
}

// uploadImages accepts a multipart batch under the "file[]" field. Files are
// processed independently: one bad file does not sink the batch, but a batch
// with zero successes fails as a whole.
func (h *Handler) uploadImages(c *gin.Context) {
	if h.store == nil {
		response.ServiceUnavailable(c, "Image storage is not configured")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}
	files := form.File["file[]"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		response.BadRequest(c, "No images provided")
		return
	}

	var (
		uploaded []uploadedImage
		failed   []string
	)
	for _, fh := range files {
		item, err := h.uploadOne(c, fh)
		if err != nil {
			h.log.Warn("image upload rejected", zap.String("file", fh.Filename), zap.Error(err))
			failed = append(failed, err.Error())
			continue
		}
		uploaded = append(uploaded, item)
	}

	if len(uploaded) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "All uploads failed",
			"errors":  failed,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "uploads": uploaded, "errors": failed})
}

func (h *Handler) uploadOne(c *gin.Context, fh *multipart.FileHeader) (uploadedImage, error) {
	ct, err := ValidateImage(fh)
	if err != nil {
		return uploadedImage{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return uploadedImage{}, err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := h.store.Key(uuid.NewString() + ext)
	url, err := h.store.Put(c.Request.Context(), key, ct, f, fh.Size)
	if err != nil {
		return uploadedImage{}, err
	}
	return uploadedImage{URL: url, PublicID: key, Filename: fh.Filename}, nil
}

func (h *Handler) deleteImage(c *gin.Context) {
	if h.store == nil {
		response.ServiceUnavailable(c, "Image storage is not configured")
		return
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		response.BadRequest(c, "publicId is required")
		return
	}
	if err := h.store.Delete(c.Request.Context(), publicID); err != nil {
		h.log.Error("delete image", zap.String("key", publicID), zap.Error(err))
		response.InternalError(c)
		return
	}
	response.Message(c, "Image deleted")
}
