package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"paperstash/internal/domain/page"
	"paperstash/internal/domain/upload"
	paperstash_errors "paperstash/pkg/errors"

	"github.com/google/uuid"
)

// MemoryUploadRepository keeps upload files in process memory. It backs the
// "memory" store driver and tests.
type MemoryUploadRepository struct {
	mu      sync.RWMutex
	uploads map[uuid.UUID]upload.UploadFile
}

func NewMemoryUploadRepository() *MemoryUploadRepository {
	return &MemoryUploadRepository{uploads: make(map[uuid.UUID]upload.UploadFile)}
}

func (r *MemoryUploadRepository) Create(ctx context.Context, u *upload.UploadFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.uploads[u.ID]; ok {
		return paperstash_errors.ErrAlreadyExists
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	r.uploads[u.ID] = *u
	return nil
}

func (r *MemoryUploadRepository) GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.uploads[id]
	if !ok {
		return upload.UploadFile{}, paperstash_errors.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUploadRepository) GetStaleUploads(ctx context.Context, olderThan time.Duration) ([]upload.UploadFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cutoff := time.Now().Add(-olderThan)
	var stale []upload.UploadFile
	for _, u := range r.uploads {
		if u.Status == upload.StatusInitialized && u.UpdatedAt.Before(cutoff) {
			stale = append(stale, u)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i].CreatedAt.Before(stale[j].CreatedAt) })
	return stale, nil
}

func (r *MemoryUploadRepository) MarkStaleFailed(ctx context.Context, olderThan time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var n int64
	for id, u := range r.uploads {
		if u.Status == upload.StatusInitialized && u.UpdatedAt.Before(cutoff) {
			u.Status = upload.StatusFailed
			u.UpdatedAt = time.Now()
			r.uploads[id] = u
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored upload files.
func (r *MemoryUploadRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.uploads)
}

// MemoryPageRepository serializes every write under one mutex, which gives
// the same guarantee as the (user_id, url) unique index in Postgres.
type MemoryPageRepository struct {
	mu    sync.RWMutex
	pages map[string]page.Page
	byKey map[pageKey]string
}

type pageKey struct {
	userID uuid.UUID
	url    string
}

func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages: make(map[string]page.Page),
		byKey: make(map[pageKey]string),
	}
}

func (r *MemoryPageRepository) GetByUserURL(ctx context.Context, userID uuid.UUID, url string) (page.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byKey[pageKey{userID: userID, url: url}]
	if !ok {
		return page.Page{}, paperstash_errors.ErrNotFound
	}
	return r.pages[id], nil
}

func (r *MemoryPageRepository) Touch(ctx context.Context, id string, savedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.touchLocked(id, savedAt)
}

func (r *MemoryPageRepository) touchLocked(id string, savedAt time.Time) error {
	p, ok := r.pages[id]
	if !ok {
		return paperstash_errors.ErrNotFound
	}
	p.SavedAt = savedAt
	p.ArchivedAt = nil
	p.UpdatedAt = time.Now()
	r.pages[id] = p
	return nil
}

func (r *MemoryPageRepository) Upsert(ctx context.Context, p *page.Page) (string, error) {
	if len(p.ID) > page.MaxIDLength {
		return "", fmt.Errorf("page id longer than %d characters", page.MaxIDLength)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := pageKey{userID: p.UserID, url: p.URL}
	if id, ok := r.byKey[key]; ok {
		return id, r.touchLocked(id, p.SavedAt)
	}
	if _, ok := r.pages[p.ID]; ok {
		return "", paperstash_errors.ErrAlreadyExists
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.ArchivedAt = nil
	r.pages[p.ID] = *p
	r.byKey[key] = p.ID
	return p.ID, nil
}

// Archive marks a page archived.
func (r *MemoryPageRepository) Archive(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[id]
	if !ok {
		return paperstash_errors.ErrNotFound
	}
	p.ArchivedAt = &at
	r.pages[id] = p
	return nil
}

// Count returns the number of stored pages.
func (r *MemoryPageRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pages)
}
