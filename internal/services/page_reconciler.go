package services

import (
	"context"
	"errors"
	"time"

	"paperstash/internal/domain/page"
	paperstash_errors "paperstash/pkg/errors"

	"github.com/google/uuid"
)

type ReconcileInput struct {
	UserID          uuid.UUID
	URL             string
	Path            string
	Title           string
	UploadFileID    uuid.UUID
	ClientRequestID string
}

// PageReconciler makes sure exactly one page exists per (user, url).
type PageReconciler struct {
	pages PageStore
	now   func() time.Time
	newID func() string
}

func NewPageReconciler(pages PageStore) *PageReconciler {
	return &PageReconciler{
		pages: pages,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

type lookupResult struct {
	found bool
	id    string
}

func (r *PageReconciler) lookup(ctx context.Context, userID uuid.UUID, url string) (lookupResult, error) {
	existing, err := r.pages.GetByUserURL(ctx, userID, url)
	switch {
	case err == nil:
		return lookupResult{found: true, id: existing.ID}, nil
	case errors.Is(err, paperstash_errors.ErrNotFound):
		return lookupResult{}, nil
	default:
		return lookupResult{}, err
	}
}

// Reconcile re-saves the user's existing page for in.URL or creates a new
// one, and returns its id.
func (r *PageReconciler) Reconcile(ctx context.Context, in ReconcileInput) (string, error) {
	res, err := r.lookup(ctx, in.UserID, in.URL)
	if err != nil {
		return "", err
	}

	now := r.now()
	if res.found {
		if err := r.pages.Touch(ctx, res.id, now); err != nil {
			return "", err
		}
		return res.id, nil
	}
	return r.create(ctx, in, now)
}

// create goes through Upsert so a concurrent save of the same key collapses
// onto the row that won.
func (r *PageReconciler) create(ctx context.Context, in ReconcileInput, now time.Time) (string, error) {
	id := in.ClientRequestID
	if id == "" {
		id = r.newID()
	}

	var uploadFileID *uuid.UUID
	if in.UploadFileID != uuid.Nil {
		ufID := in.UploadFileID
		uploadFileID = &ufID
	}

	p := &page.Page{
		ID:                         id,
		UserID:                     in.UserID,
		URL:                        in.URL,
		Title:                      in.Title,
		Slug:                       SlugOf(in.Path),
		Hash:                       in.Path,
		Content:                    "",
		PageType:                   page.PageTypeFile,
		State:                      page.StateProcessing,
		UploadFileID:               uploadFileID,
		ReadingProgressPercent:     0,
		ReadingProgressAnchorIndex: 0,
		SavedAt:                    now,
		ArchivedAt:                 nil,
		CreatedAt:                  now,
	}
	return r.pages.Upsert(ctx, p)
}
