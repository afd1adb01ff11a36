package analytics

import (
	"context"
	"sync"
	"time"

	"paperstash/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, payload []byte) error
	Close() error
}

// AsyncTracker hands events to a Publisher on a separate goroutine. Track
// never blocks on the publisher and never reports its failures.
type AsyncTracker struct {
	publisher Publisher
	logger    *logger.Logger
	timeout   time.Duration
	wg        sync.WaitGroup
}

func NewAsyncTracker(publisher Publisher, l *logger.Logger, timeout time.Duration) *AsyncTracker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AsyncTracker{publisher: publisher, logger: l, timeout: timeout}
}

func (t *AsyncTracker) Track(ctx context.Context, e Event) {
	body, err := NewEnvelope(e, time.Now())
	if err != nil {
		t.logger.WithContext(ctx).Warnf("analytics: encode %s: %v", e.Name, err)
		return
	}

	log := t.logger.WithContext(ctx)
	pubCtx := context.WithoutCancel(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Warnf("analytics: publish %s panicked: %v", e.Name, r)
			}
		}()

		ctx, cancel := context.WithTimeout(pubCtx, t.timeout)
		defer cancel()
		if err := t.publisher.Publish(ctx, body); err != nil {
			log.Warnf("analytics: publish %s: %v", e.Name, err)
		}
	}()
}

// Close waits for in-flight events and closes the publisher.
func (t *AsyncTracker) Close() error {
	t.wg.Wait()
	return t.publisher.Close()
}

// NopTracker drops every event.
type NopTracker struct{}

func (NopTracker) Track(context.Context, Event) {}
