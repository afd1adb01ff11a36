package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paperstash/internal/domain/upload"
	"paperstash/pkg/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Cache key patterns:
// - upload:{upload_id} - upload file lookups, short TTL

// CacheConfig contains configuration for caching
type CacheConfig struct {
	UploadTTL time.Duration
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		UploadTTL: time.Minute,
	}
}

// CacheStore handles caching in Redis
type CacheStore struct {
	client *goredis.Client
	config CacheConfig
}

func NewCacheStore(client *goredis.Client, config CacheConfig) *CacheStore {
	if config.UploadTTL <= 0 {
		config.UploadTTL = DefaultCacheConfig().UploadTTL
	}
	return &CacheStore{
		client: client,
		config: config,
	}
}

func uploadKey(id uuid.UUID) string {
	return fmt.Sprintf("upload:%s", id.String())
}

// GetUpload returns nil, nil on a cache miss.
func (c *CacheStore) GetUpload(ctx context.Context, id uuid.UUID) (*upload.UploadFile, error) {
	data, err := c.client.Get(ctx, uploadKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var u upload.UploadFile
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *CacheStore) SetUpload(ctx context.Context, u upload.UploadFile) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, uploadKey(u.ID), data, c.config.UploadTTL).Err()
}

func (c *CacheStore) InvalidateUpload(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, uploadKey(id)).Err()
}

type UploadGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error)
}

// CachedUploadReader is a read-through cache in front of an UploadGetter.
// Cache failures are logged and fall through to the store.
type CachedUploadReader struct {
	store  UploadGetter
	cache  *CacheStore
	logger *logger.Logger
}

func NewCachedUploadReader(store UploadGetter, cache *CacheStore, l *logger.Logger) *CachedUploadReader {
	return &CachedUploadReader{store: store, cache: cache, logger: l}
}

func (r *CachedUploadReader) GetByID(ctx context.Context, id uuid.UUID) (upload.UploadFile, error) {
	cached, err := r.cache.GetUpload(ctx, id)
	if err != nil {
		r.logger.WithContext(ctx).Warnf("upload cache get %s: %v", id, err)
	}
	if cached != nil {
		return *cached, nil
	}

	u, err := r.store.GetByID(ctx, id)
	if err != nil {
		return upload.UploadFile{}, err
	}
	if err := r.cache.SetUpload(ctx, u); err != nil {
		r.logger.WithContext(ctx).Warnf("upload cache set %s: %v", id, err)
	}
	return u, nil
}
