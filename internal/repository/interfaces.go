package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
)

type UploadRepository interface {
	Create(ctx context.Context, u *upload.UploadFile) error
	GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error)

	GetStaleUploads(ctx context.Context, olderThan time.Duration) ([]upload.UploadFile, error)
	MarkStaleFailed(ctx context.Context, olderThan time.Duration) (int64, error)
}

type PageRepository interface {
	// GetByUserURL returns ErrNotFound when the user has not saved url.
	GetByUserURL(ctx context.Context, userID uuid.UUID, url string) (page.Page, error)
	// Touch re-saves a page: saved_at is advanced and archived_at cleared.
	Touch(ctx context.Context, id string, savedAt time.Time) error
	// Upsert inserts p, or touches the existing page with the same
	// (user_id, url), and returns the id of the row that now holds the key.
	Upsert(ctx context.Context, p *page.Page) (string, error)
}
