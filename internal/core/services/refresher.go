package services

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/logger"
)

// ListFetcher fetches the current list for a view.
type ListFetcher func(ctx context.Context) ([]domain.InquiryRecord, error)

// Refresher periodically re-fetches a list and replaces the view's
// in-memory copy on every delivery. It is bound to the lifetime of its
// owning view: Start at mount, Stop at teardown. Ticks fire regardless
// of in-flight requests; a response landing after Stop is dropped
// instead of updating torn-down state.
type Refresher struct {
	interval time.Duration
	fetch    ListFetcher
	deliver  func([]domain.InquiryRecord)

	stopChan chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

// NewRefresher creates a refresher delivering fetched lists to deliver.
func NewRefresher(interval time.Duration, fetch ListFetcher, deliver func([]domain.InquiryRecord)) *Refresher {
	return &Refresher{
		interval: interval,
		fetch:    fetch,
		deliver:  deliver,
		stopChan: make(chan struct{}),
	}
}

// Start loads once immediately, then refreshes every interval until Stop.
func (r *Refresher) Start() {
	go r.run()
}

// Stop cancels the repeating task. No delivery happens after Stop, even
// for requests still in flight. Stop is idempotent.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		r.stopped.Store(true)
		close(r.stopChan)
	})
}

func (r *Refresher) run() {
	// initial load at mount
	go r.refreshOnce()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// no overlap guard: a slow response does not delay the next tick
			go r.refreshOnce()
		case <-r.stopChan:
			return
		}
	}
}

func (r *Refresher) refreshOnce() {
	records, err := r.fetch(context.Background())
	if err != nil {
		// already logged/notified by the fetcher; next tick retries
		return
	}
	if r.stopped.Load() {
		logger.Log.Debug("dropping refresh result after teardown")
		return
	}
	r.deliver(records)
}
