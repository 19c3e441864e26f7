// Package pagination implements the infinite-scroll cursor shared by every
// paginated view: an accumulated item sequence, a 1-based page counter, a
// continuation flag, and the guards that keep fetches sequential and stale
// responses out.
package pagination

import (
	"context"
	"sync"
)

// Page is one fetched page of a resource.
type Page[T any] struct {
	Items   []T
	HasNext bool
}

// FetchFunc requests one page of the underlying resource. Pages are 1-based.
type FetchFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// State is a point-in-time snapshot of a cursor.
type State[T any] struct {
	Items    []T
	Page     int
	HasNext  bool
	Loading  bool
	HasError bool
}

// Cursor accumulates pages of T. All methods are safe for concurrent use,
// though the intended model is a single event loop: one fetch may be
// outstanding at a time, and triggers arriving while a fetch is in flight
// are ignored rather than queued.
type Cursor[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	epoch   uint64
	started bool

	items    []T
	page     int
	hasNext  bool
	loading  bool
	hasError bool
}

// NewCursor returns an idle cursor at page 1 with no items.
func NewCursor[T any](fetch FetchFunc[T]) *Cursor[T] {
	return &Cursor[T]{fetch: fetch, page: 1}
}

// Snapshot returns the current cursor state. The items slice is copied so the
// caller can hold it across later mutations.
func (c *Cursor[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return State[T]{
		Items:    items,
		Page:     c.page,
		HasNext:  c.hasNext,
		Loading:  c.loading,
		HasError: c.hasError,
	}
}

// Load performs the initial fetch of page 1. Calling it again after the
// cursor has started is a no-op; use SentinelVisible to advance.
func (c *Cursor[T]) Load(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.loading {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.fetchLocked(ctx)
}

// SentinelVisible is the visibility trigger for the last rendered item.
// It advances the page counter and fetches the next page. Triggers are
// ignored while a fetch is in flight, before the initial Load, after the
// sequence is exhausted, or while the cursor is in an error state (Retry
// owns that path). It reports whether a fetch was performed.
func (c *Cursor[T]) SentinelVisible(ctx context.Context) bool {
	c.mu.Lock()
	if !c.started || c.loading || c.hasError || !c.hasNext {
		c.mu.Unlock()
		return false
	}
	c.page++
	c.fetchLocked(ctx)
	return true
}

// Retry re-requests the page that last failed. The page counter was left
// unchanged by the failure, so the same page is fetched again.
func (c *Cursor[T]) Retry(ctx context.Context) {
	c.mu.Lock()
	if c.loading || !c.hasError {
		c.mu.Unlock()
		return
	}
	c.hasError = false
	c.started = true
	c.fetchLocked(ctx)
}

// Reset returns the cursor to idle: no items, page 1, no continuation. The
// epoch is advanced so any response still in flight is discarded instead of
// being merged into the fresh sequence.
func (c *Cursor[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.started = false
	c.items = nil
	c.page = 1
	c.hasNext = false
	c.loading = false
	c.hasError = false
}

// SetFetch rebinds the fetch function. Callers reset the cursor first so a
// response in flight against the old binding cannot apply.
func (c *Cursor[T]) SetFetch(fetch FetchFunc[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetch = fetch
}

// Reconcile applies a targeted upsert: every item matching match is replaced
// by apply(item), all other items keep their identity and values. It returns
// the number of items replaced.
func (c *Cursor[T]) Reconcile(match func(T) bool, apply func(T) T) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i, item := range c.items {
		if match(item) {
			c.items[i] = apply(item)
			n++
		}
	}
	return n
}

// fetchLocked issues the fetch for the current page. It is entered with the
// lock held and releases it around the network call; the epoch captured
// before the call decides whether the response may still be applied.
func (c *Cursor[T]) fetchLocked(ctx context.Context) {
	c.loading = true
	epoch := c.epoch
	page := c.page
	fetch := c.fetch
	c.mu.Unlock()

	result, err := fetch(ctx, page)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		// The cursor was reset while the request was in flight. The
		// response belongs to the previous identity; drop it.
		return
	}
	c.loading = false
	if err != nil {
		c.hasError = true
		return
	}
	c.items = append(c.items, result.Items...)
	c.hasNext = result.HasNext
}
