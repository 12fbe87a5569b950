package domain

import "time"

// Upload records a stored image upload.
type Upload struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OriginalName string    `gorm:"size:255;not null" json:"original_name"`
	StoredKey    string    `gorm:"size:255;uniqueIndex;not null" json:"stored_key"`
	ContentType  string    `gorm:"size:100" json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Upload) TableName() string {
	return "uploads"
}
