package repository

import (
	"context"
	"fmt"
	"time"

	"paperstash/internal/domain/page"
	paperstash_errors "paperstash/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresPageRepository struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) PageRepository {
	return &PostgresPageRepository{db: db}
}

func (r *PostgresPageRepository) GetByUserURL(ctx context.Context, userID uuid.UUID, url string) (page.Page, error) {
	var p page.Page
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND url = ?", userID, url).
		First(&p).Error
	if err != nil {
		return page.Page{}, translateError(err)
	}
	return p, nil
}

func (r *PostgresPageRepository) Touch(ctx context.Context, id string, savedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&page.Page{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"saved_at":    savedAt,
			"archived_at": nil,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return paperstash_errors.ErrNotFound
	}
	return nil
}

// upsertPageSQL relies on idx_pages_user_url. A conflicting insert only
// re-saves the existing row, so title, slug, state and progress survive.
const upsertPageSQL = `
	INSERT INTO pages (
		id, user_id, url, title, slug, hash, content, page_type, state,
		upload_file_id, reading_progress_percent, reading_progress_anchor_index,
		saved_at, archived_at, created_at, updated_at
	) VALUES (
		?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?, ?
	)
	ON CONFLICT (user_id, url) DO UPDATE SET
		saved_at = EXCLUDED.saved_at,
		archived_at = NULL,
		updated_at = EXCLUDED.updated_at
	RETURNING id`

func (r *PostgresPageRepository) Upsert(ctx context.Context, p *page.Page) (string, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	var id string
	err := r.db.WithContext(ctx).Raw(upsertPageSQL,
		p.ID,
		p.UserID,
		p.URL,
		p.Title,
		p.Slug,
		p.Hash,
		p.Content,
		string(p.PageType),
		string(p.State),
		p.UploadFileID,
		p.ReadingProgressPercent,
		p.ReadingProgressAnchorIndex,
		p.SavedAt,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&id).Error
	if err != nil {
		return "", fmt.Errorf("upsert page: %w", translateError(err))
	}
	if id == "" {
		return "", fmt.Errorf("upsert page: no id returned")
	}
	return id, nil
}
