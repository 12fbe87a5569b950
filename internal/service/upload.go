package service

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tomoki/kanjilens/internal/domain"
	"github.com/tomoki/kanjilens/internal/logger"
	"github.com/tomoki/kanjilens/internal/storage"
)

// UploadRecorder persists upload metadata. Implemented by
// repository.UploadRepository.
type UploadRecorder interface {
	Record(ctx context.Context, upload *domain.Upload) error
}

// UploadService stores uploaded images and runs recognition on them.
type UploadService struct {
	storage  storage.ObjectStorage
	recorder UploadRecorder
	ocr      *OCRService
	logger   *logger.Logger
}

// NewUploadService creates an upload service.
// Parameters:
//   - objectStorage: backend for image persistence.
//   - recorder: upload metadata store.
//   - ocr: recognition service.
//   - log: logger instance.
// Returns:
//   - *UploadService: initialized service.
func NewUploadService(objectStorage storage.ObjectStorage, recorder UploadRecorder, ocr *OCRService, log *logger.Logger) *UploadService {
	if log == nil {
		log = logger.GetDefault()
	}
	return &UploadService{
		storage:  objectStorage,
		recorder: recorder,
		ocr:      ocr,
		logger:   log,
	}
}

// withLogger seeds ctx with the service logger when no request logger is
// attached, so the log calls below pick it up via FromContext.
func (s *UploadService) withLogger(ctx context.Context) context.Context {
	if logger.InContext(ctx) == nil {
		ctx = s.logger.WithContext(ctx)
	}
	return ctx
}

// Process stores the uploaded image under a collision-resistant name,
// records its metadata, and returns the recognition result.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - originalName: client-supplied file name (already validated).
//   - contentType: client-supplied MIME type.
//   - data: raw image bytes.
// Returns:
//   - *domain.OCRResult: recognition result for the image.
//   - string: the key the image was stored under.
//   - error: non-nil if persistence fails.
func (s *UploadService) Process(ctx context.Context, originalName, contentType string, data []byte) (*domain.OCRResult, string, error) {
	storedKey := fmt.Sprintf("%s_%s", strings.ReplaceAll(uuid.New().String(), "-", ""), SanitizeFilename(originalName))
	ctx = logger.WithField(s.withLogger(ctx), logger.FieldUploadID, storedKey)

	if err := s.storage.Upload(ctx, storedKey, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return nil, "", fmt.Errorf("failed to store upload %q: %w", originalName, err)
	}

	width, height := s.ocr.ProbeDimensions(data)

	if s.recorder != nil {
		upload := &domain.Upload{
			OriginalName: originalName,
			StoredKey:    storedKey,
			ContentType:  contentType,
			SizeBytes:    int64(len(data)),
			Width:        width,
			Height:       height,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.recorder.Record(ctx, upload); err != nil {
			// The image is already on disk; losing the history row is
			// not worth failing the request over.
			logger.FromContext(ctx).WithError(err).Warn("Failed to record upload history")
		}
	}

	logger.With(logger.Fields{
		logger.FieldSize: len(data),
	}).Info(ctx, "Stored upload %q as %q", originalName, storedKey)

	return s.ocr.Recognize(ctx, data), storedKey, nil
}

// SanitizeFilename strips path components and replaces characters that are
// unsafe in file names or object keys.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	// Leading dots would produce hidden files on the local backend
	sanitized := strings.TrimLeft(b.String(), ".")
	if sanitized == "" {
		sanitized = "upload"
	}
	return sanitized
}

// AllowedExtension reports whether name carries one of the allowed image
// extensions. Matching is case-insensitive.
func AllowedExtension(name string, allowed []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}
