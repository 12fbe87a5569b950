package repository

import (
	"context"
	"fmt"

	"github.com/tomoki/kanjilens/internal/domain"
	"gorm.io/gorm"
)

// UploadRepository persists upload history records.
type UploadRepository struct {
	db *gorm.DB
}

// NewUploadRepository creates a new upload repository.
func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

// Record inserts a new upload record.
func (r *UploadRepository) Record(ctx context.Context, upload *domain.Upload) error {
	if err := r.db.WithContext(ctx).Create(upload).Error; err != nil {
		return fmt.Errorf("failed to record upload: %w", err)
	}
	return nil
}

// Recent returns the most recent uploads, newest first.
func (r *UploadRepository) Recent(ctx context.Context, limit int) ([]domain.Upload, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var uploads []domain.Upload
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&uploads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	return uploads, nil
}

// DeleteByKey removes the history row for a stored key. Deleting a key
// with no row is not an error.
func (r *UploadRepository) DeleteByKey(ctx context.Context, key string) error {
	if err := r.db.WithContext(ctx).Where("stored_key = ?", key).Delete(&domain.Upload{}).Error; err != nil {
		return fmt.Errorf("failed to delete upload %q: %w", key, err)
	}
	return nil
}

// Count returns the total number of recorded uploads.
func (r *UploadRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Upload{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count uploads: %w", err)
	}
	return count, nil
}
