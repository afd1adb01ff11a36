package services

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"paperstash/internal/analytics"
	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
)

type UploadStore interface {
	Create(ctx context.Context, u *upload.UploadFile) error
}

type PageStore interface {
	GetByUserURL(ctx context.Context, userID uuid.UUID, url string) (page.Page, error)
	Touch(ctx context.Context, id string, savedAt time.Time) error
	Upsert(ctx context.Context, p *page.Page) (string, error)
}

// URLIssuer hands out a destination path and a time-limited write URL for
// the raw bytes of an upload.
type URLIssuer interface {
	IssueUploadURL(ctx context.Context, uploadID uuid.UUID, fileName, contentType string) (upload.SignedURL, error)
}

type Tracker interface {
	Track(ctx context.Context, e analytics.Event)
}

type StaleUploadStore interface {
	GetStaleUploads(ctx context.Context, olderThan time.Duration) ([]upload.UploadFile, error)
	MarkStaleFailed(ctx context.Context, olderThan time.Duration) (int64, error)
}
