package services

import (
	"context"
	"sync"
	"time"

	"paperstash/pkg/logger"
)

// UploadJanitor fails upload files that never left INITIALIZED. Those are
// requests whose signed URL was never issued or never used.
type UploadJanitor struct {
	uploads  StaleUploadStore
	logger   *logger.Logger
	interval time.Duration
	maxAge   time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewUploadJanitor(uploads StaleUploadStore, l *logger.Logger, interval, maxAge time.Duration) *UploadJanitor {
	return &UploadJanitor{
		uploads:  uploads,
		logger:   l,
		interval: interval,
		maxAge:   maxAge,
		stopChan: make(chan struct{}),
	}
}

// Start begins the sweep loop
func (j *UploadJanitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go j.run(ctx)
}

// Stop gracefully shuts down
func (j *UploadJanitor) Stop() {
	close(j.stopChan)
	j.wg.Wait()
}

func (j *UploadJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-j.stopChan:
			return
		case <-ticker.C:
			if _, err := j.Sweep(ctx); err != nil {
				j.logger.Warnf("upload janitor: sweep failed: %v", err)
			}
		}
	}
}

// Sweep marks every stale upload file as FAILED and reports how many.
func (j *UploadJanitor) Sweep(ctx context.Context) (int64, error) {
	stale, err := j.uploads.GetStaleUploads(ctx, j.maxAge)
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}
	now := time.Now()
	for _, u := range stale {
		j.logger.Infof("upload janitor: upload %s of user %s idle for %s", u.ID, u.UserID, now.Sub(u.UpdatedAt).Round(time.Second))
	}

	n, err := j.uploads.MarkStaleFailed(ctx, j.maxAge)
	if err != nil {
		return 0, err
	}
	j.logger.Infof("upload janitor: marked %d stale uploads failed", n)
	return n, nil
}
