package upload

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInitialized Status = "INITIALIZED"
	StatusCompleted   Status = "COMPLETED"
	StatusFailed      Status = "FAILED"
)

// UploadFile represents upload_files. One row is written per upload request
// and tracks a single raw-bytes upload attempt.
type UploadFile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	URL         string    `gorm:"not null" json:"url"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName    string    `gorm:"not null" json:"file_name"`
	ContentType string    `gorm:"not null" json:"content_type"`
	Status      Status    `gorm:"type:varchar(16);not null;default:'INITIALIZED';index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (UploadFile) TableName() string {
	return "upload_files"
}

// SignedURL is a time-limited PUT destination for an upload's raw bytes.
// Every entry in Headers must be sent with the PUT as given or the store
// rejects the write.
type SignedURL struct {
	Path    string
	URL     string
	Headers map[string]string
}
