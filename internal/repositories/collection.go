package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dwellfront/dashboard-service/internal/utils"
)

/* ------------------------------------------------------------------
   Entity contract
------------------------------------------------------------------ */

// Entity is what a record must provide to live in a Collection:
// identity, optimistic-lock version, timestamp stamping, and a deep
// enough Clone that callers can never alias stored state.
type Entity[T any] interface {
	GetID() string
	GetRowVersion() int64
	SetRowVersion(int64)
	StampCreated(time.Time)
	StampUpdated(time.Time)
	Clone() T
}

const maxUpdateRetries = 5

/* ------------------------------------------------------------------
   Collection
------------------------------------------------------------------ */

// Collection is the canonical in-memory store for one domain. It is
// insertion-ordered and hands out clones on every read, so the only way
// to change a record is through Update and friends.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	now   func() time.Time
}

func NewCollection[T Entity[T]]() *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
		now:   time.Now,
	}
}

// Create stores a new record. The id must be assigned by the caller and
// must not collide with an existing record.
func (c *Collection[T]) Create(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := rec.GetID()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		return fmt.Errorf("create %q: %w", id, utils.ErrDuplicateID)
	}

	now := c.now().UTC()
	stored := rec.Clone()
	stored.StampCreated(now)
	stored.SetRowVersion(1)
	c.items[id] = stored
	c.order = append(c.order, id)

	// reflect bookkeeping back to the caller's copy
	rec.StampCreated(now)
	rec.SetRowVersion(1)
	return nil
}

func (c *Collection[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	stored, ok := c.items[id]
	if !ok {
		return zero, fmt.Errorf("get %q: %w", id, utils.ErrNotFound)
	}
	return stored.Clone(), nil
}

// List returns every record in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].Clone())
	}
	return out, nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// Update replaces the stored record unconditionally, refreshing
// UpdatedAt and bumping the row version.
func (c *Collection[T]) Update(ctx context.Context, rec T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := rec.GetID()

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.items[id]
	if !ok {
		return fmt.Errorf("update %q: %w", id, utils.ErrNotFound)
	}

	stored := rec.Clone()
	stored.StampUpdated(c.now().UTC())
	stored.SetRowVersion(current.GetRowVersion() + 1)
	c.items[id] = stored
	rec.SetRowVersion(stored.GetRowVersion())
	return nil
}

// UpdateIfVersion replaces the stored record only when its current row
// version matches expected.
func (c *Collection[T]) UpdateIfVersion(ctx context.Context, rec T, expected int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := rec.GetID()

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.items[id]
	if !ok {
		return fmt.Errorf("update %q: %w", id, utils.ErrNotFound)
	}
	if current.GetRowVersion() != expected {
		return fmt.Errorf("update %q: %w", id, utils.ErrRowVersionConflict)
	}

	stored := rec.Clone()
	stored.StampUpdated(c.now().UTC())
	stored.SetRowVersion(expected + 1)
	c.items[id] = stored
	rec.SetRowVersion(stored.GetRowVersion())
	return nil
}

// UpdateWithRetry runs a read-mutate-update loop with optimistic locking.
func (c *Collection[T]) UpdateWithRetry(ctx context.Context, id string, mutate func(T) error) error {
	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		current, err := c.GetByID(ctx, id)
		if err != nil {
			return err
		}

		oldVersion := current.GetRowVersion()

		if err := mutate(current); err != nil {
			return err
		}

		err = c.UpdateIfVersion(ctx, current, oldVersion)
		if err == nil {
			return nil
		}
		if !isVersionConflict(err) {
			return err
		}
		// someone else updated first – retry
	}
	return fmt.Errorf("too much contention updating %q", id)
}

// Delete removes the record. Deleting a missing id is reported, not
// swallowed.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return fmt.Errorf("delete %q: %w", id, utils.ErrNotFound)
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func isVersionConflict(err error) bool {
	return errors.Is(err, utils.ErrRowVersionConflict)
}
