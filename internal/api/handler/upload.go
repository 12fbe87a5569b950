package handler

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tomoki/kanjilens/internal/config"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/logger"
	"github.com/tomoki/kanjilens/internal/service"
	"github.com/tomoki/kanjilens/internal/storage"
)

// UploadHistory lists and prunes recorded uploads. Implemented by
// repository.UploadRepository.
type UploadHistory interface {
	Recent(ctx context.Context, limit int) ([]domain.Upload, error)
	Count(ctx context.Context) (int64, error)
	DeleteByKey(ctx context.Context, key string) error
}

// UploadHandler handles image upload endpoints.
type UploadHandler struct {
	uploadService *service.UploadService
	history       UploadHistory
	storage       storage.ObjectStorage
	cfg           config.UploadConfig
}

// NewUploadHandler creates a new upload handler.
// Parameters:
//   - uploadService: upload processing service.
//   - history: upload history store; may be nil.
//   - objectStorage: backend the images live in, for serving and deletion.
//   - cfg: upload configuration (allowed extensions, size cap).
// Returns:
//   - *UploadHandler: initialized handler.
func NewUploadHandler(uploadService *service.UploadService, history UploadHistory, objectStorage storage.ObjectStorage, cfg config.UploadConfig) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		history:       history,
		storage:       objectStorage,
		cfg:           cfg,
	}
}

// Upload handles POST /api/upload.
// Expects multipart/form-data with an "image" file field.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No image file provided",
		})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No file selected",
		})
		return
	}

	if !service.AllowedExtension(file.Filename, h.cfg.AllowedExtensions) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(h.cfg.AllowedExtensions, ", ")),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error opening upload %q: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process image",
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error reading upload %q: %v", file.Filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process image",
		})
		return
	}

	filename := service.SanitizeFilename(file.Filename)
	contentType := file.Header.Get("Content-Type")

	result, _, err := h.uploadService.Process(c.Request.Context(), filename, contentType, data)
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error processing upload %q: %v", filename, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to process image",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"filename":    filename,
		"ocr_results": result,
		"message":     "Image processed successfully (using stub data)",
	})
}

// uploadEntry is an upload history row plus its storage location.
type uploadEntry struct {
	domain.Upload
	URL string `json:"url"`
}

// ListUploads handles GET /api/uploads.
func (h *UploadHandler) ListUploads(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error":   "Upload history is not available",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	uploads, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error listing uploads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to list uploads",
		})
		return
	}

	// total is the table count, not the page size
	total, err := h.history.Count(c.Request.Context())
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error counting uploads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to list uploads",
		})
		return
	}

	entries := make([]uploadEntry, 0, len(uploads))
	for _, u := range uploads {
		entries = append(entries, uploadEntry{Upload: u, URL: h.storage.GetURL(u.StoredKey)})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"uploads": entries,
		"total":   total,
	})
}

// ServeUpload handles GET /api/uploads/:key, streaming the stored image.
func (h *UploadHandler) ServeUpload(c *gin.Context) {
	key := c.Param("key")
	if key == "" || strings.ContainsAny(key, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid file name",
		})
		return
	}

	exists, err := h.storage.Exists(c.Request.Context(), key)
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error checking upload %q: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to read image",
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Image not found",
		})
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), key)
	if err != nil {
		logger.CtxError(c.Request.Context(), "Error reading upload %q: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to read image",
		})
		return
	}
	defer reader.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		logger.CtxError(c.Request.Context(), "Error streaming upload %q: %v", key, err)
	}
}

// DeleteUpload handles DELETE /api/uploads/:key, removing the stored image
// and its history row.
func (h *UploadHandler) DeleteUpload(c *gin.Context) {
	key := c.Param("key")
	if key == "" || strings.ContainsAny(key, "/\\") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid file name",
		})
		return
	}

	if err := h.storage.Delete(c.Request.Context(), key); err != nil {
		logger.CtxError(c.Request.Context(), "Error deleting upload %q: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete image",
		})
		return
	}

	if h.history != nil {
		if err := h.history.DeleteByKey(c.Request.Context(), key); err != nil {
			// The object itself is gone; a stale history row is not worth
			// failing the request over.
			logger.CtxWarn(c.Request.Context(), "Failed to delete upload history for %q: %v", key, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image deleted",
	})
}
