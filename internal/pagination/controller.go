package pagination

import "context"

// Controller binds a cursor to a view identity (the username or post whose
// items are being paged). Switching identity resets the cursor before any
// fetch for the new identity begins, so items accumulated for the previous
// identity can never appear merged into the new sequence.
type Controller[T any] struct {
	newFetch func(identity string) FetchFunc[T]
	identity string
	cursor   *Cursor[T]
}

// NewController returns a controller that builds a FetchFunc per identity.
func NewController[T any](newFetch func(identity string) FetchFunc[T]) *Controller[T] {
	return &Controller[T]{newFetch: newFetch}
}

// Visit points the controller at identity. The first visit creates the
// cursor; visiting a different identity resets it (bumping the epoch) and
// rebinds the fetch. Revisiting the current identity is a no-op.
func (c *Controller[T]) Visit(identity string) {
	if c.cursor != nil && c.identity == identity {
		return
	}
	if c.cursor == nil {
		c.cursor = NewCursor(c.newFetch(identity))
	} else {
		c.cursor.Reset()
		c.cursor.SetFetch(c.newFetch(identity))
	}
	c.identity = identity
}

// Identity returns the identity the controller currently points at.
func (c *Controller[T]) Identity() string {
	return c.identity
}

// Load fetches page 1 for the current identity.
func (c *Controller[T]) Load(ctx context.Context) {
	c.cursor.Load(ctx)
}

// SentinelVisible forwards the visibility trigger to the cursor.
func (c *Controller[T]) SentinelVisible(ctx context.Context) bool {
	return c.cursor.SentinelVisible(ctx)
}

// Retry re-requests the failed page.
func (c *Controller[T]) Retry(ctx context.Context) {
	c.cursor.Retry(ctx)
}

// Snapshot returns the cursor state for the current identity.
func (c *Controller[T]) Snapshot() State[T] {
	return c.cursor.Snapshot()
}

// Reconcile forwards a targeted upsert to the cursor.
func (c *Controller[T]) Reconcile(match func(T) bool, apply func(T) T) int {
	return c.cursor.Reconcile(match, apply)
}
