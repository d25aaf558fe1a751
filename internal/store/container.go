// Package store holds the client-side state containers: one generic CRUD
// container instantiated per resource, the session container, and the UI
// container, all constructed once into an App context. State is mutated
// only from a container's own methods; callers observe snapshots and bus
// events. There is no request fencing: when the same fetch is issued twice
// the later response wins.
package store

import (
	"context"
	"sync"

	"github.com/stockpilot/stockpilot-go/internal/notify"

	"go.uber.org/zap"
)

// notifier is the slice of the UI container the resource containers need.
type notifier interface {
	ShowSuccess(message string)
	ShowError(message string)
}

// Container is the repeated per-resource state bundle: list, selected
// item, loading flag, last error. Every mutating operation follows the
// same contract: set loading, call the backend, splice the in-memory list
// on success and notify, capture the message and notify on failure, and
// report a bare bool to the caller — raw errors never leave the container.
type Container[T any] struct {
	mu       sync.Mutex
	name     string
	items    []T
	selected *T
	loading  bool
	err      string

	id     func(T) int64
	bus    *notify.Bus
	ui     notifier
	logger *zap.Logger
}

func newContainer[T any](name string, id func(T) int64, bus *notify.Bus, ui notifier, logger *zap.Logger) *Container[T] {
	return &Container[T]{
		name:   name,
		id:     id,
		bus:    bus,
		ui:     ui,
		logger: logger,
	}
}

// Items returns a copy of the in-memory list.
func (c *Container[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Selected returns the selected item, or nil.
func (c *Container[T]) Selected() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	v := *c.selected
	return &v
}

// Loading reports whether an operation is in flight.
func (c *Container[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the last operation's error message, or "".
func (c *Container[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// ClearSelected drops the selected item.
func (c *Container[T]) ClearSelected() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
	c.changed()
}

// ClearErr resets the error message.
func (c *Container[T]) ClearErr() {
	c.mu.Lock()
	c.err = ""
	c.mu.Unlock()
}

func (c *Container[T]) begin() {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()
	c.changed()
}

func (c *Container[T]) fail(err error) {
	c.mu.Lock()
	c.loading = false
	c.err = err.Error()
	c.mu.Unlock()
	c.changed()
}

func (c *Container[T]) changed() {
	c.bus.Publish(notify.TopicStateChanged, c.name)
}

// fetchAll replaces the list wholesale.
func (c *Container[T]) fetchAll(ctx context.Context, op func(context.Context) ([]T, error)) bool {
	c.begin()

	items, err := op(ctx)
	if err != nil {
		c.logger.Warn("store: fetch failed", zap.String("store", c.name), zap.Error(err))
		c.fail(err)
		return false
	}

	c.mu.Lock()
	c.items = items
	c.loading = false
	c.mu.Unlock()
	c.changed()
	return true
}

// fetchOne fills the selected slot.
func (c *Container[T]) fetchOne(ctx context.Context, op func(context.Context) (*T, error)) bool {
	c.begin()

	item, err := op(ctx)
	if err != nil {
		c.logger.Warn("store: fetch one failed", zap.String("store", c.name), zap.Error(err))
		c.fail(err)
		return false
	}

	c.mu.Lock()
	c.selected = item
	c.loading = false
	c.mu.Unlock()
	c.changed()
	return true
}

// create appends the server's copy to the list.
func (c *Container[T]) create(ctx context.Context, successMsg string, op func(context.Context) (*T, error)) (*T, bool) {
	c.begin()

	item, err := op(ctx)
	if err != nil {
		c.fail(err)
		c.ui.ShowError(err.Error())
		return nil, false
	}

	c.mu.Lock()
	c.items = append(c.items, *item)
	c.loading = false
	c.mu.Unlock()
	c.changed()

	c.ui.ShowSuccess(successMsg)
	return item, true
}

// update replaces the matching list entry (and the selected slot when it
// holds the same id) with the server's copy.
func (c *Container[T]) update(ctx context.Context, id int64, successMsg string, op func(context.Context) (*T, error)) bool {
	c.begin()

	item, err := op(ctx)
	if err != nil {
		c.fail(err)
		c.ui.ShowError(err.Error())
		return false
	}

	c.mu.Lock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = *item
			break
		}
	}
	if c.selected != nil && c.id(*c.selected) == id {
		c.selected = item
	}
	c.loading = false
	c.mu.Unlock()
	c.changed()

	c.ui.ShowSuccess(successMsg)
	return true
}

// remove drops the matching list entry and clears the selected slot when
// it holds the same id.
func (c *Container[T]) remove(ctx context.Context, id int64, successMsg string, op func(context.Context) error) bool {
	c.begin()

	if err := op(ctx); err != nil {
		c.fail(err)
		c.ui.ShowError(err.Error())
		return false
	}

	c.mu.Lock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if c.selected != nil && c.id(*c.selected) == id {
		c.selected = nil
	}
	c.loading = false
	c.mu.Unlock()
	c.changed()

	c.ui.ShowSuccess(successMsg)
	return true
}

// replaceSelected swaps the selected slot directly. Used by operations
// that mutate a sub-resource of the selected item (e.g. file attachments).
func (c *Container[T]) replaceSelected(item *T) {
	c.mu.Lock()
	c.selected = item
	c.mu.Unlock()
	c.changed()
}
