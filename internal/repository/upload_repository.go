package repository

import (
	"context"
	"time"

	"paperstash/internal/domain/upload"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) UploadRepository {
	return &PostgresUploadRepository{db: db}
}

func (r *PostgresUploadRepository) Create(ctx context.Context, u *upload.UploadFile) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		return translateError(res.Error)
	}
	return nil
}

func (r *PostgresUploadRepository) GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error) {
	var u upload.UploadFile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		return upload.UploadFile{}, translateError(err)
	}
	return u, nil
}

func (r *PostgresUploadRepository) GetStaleUploads(ctx context.Context, olderThan time.Duration) ([]upload.UploadFile, error) {
	var uploads []upload.UploadFile
	cutoff := time.Now().Add(-olderThan)
	err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", upload.StatusInitialized, cutoff).
		Order("created_at ASC").
		Find(&uploads).Error
	if err != nil {
		return nil, err
	}
	return uploads, nil
}

func (r *PostgresUploadRepository) MarkStaleFailed(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := r.db.WithContext(ctx).
		Model(&upload.UploadFile{}).
		Where("status = ? AND updated_at < ?", upload.StatusInitialized, cutoff).
		Updates(map[string]interface{}{
			"status":     upload.StatusFailed,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
