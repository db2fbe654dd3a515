// Package repository holds the storage backends and the shared connection handle.
package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrHandleClosed is returned by Acquire after the last reference was released.
var ErrHandleClosed = errors.New("storage handle closed")

// Handle is a lazily opened, reference-counted storage resource. The first Acquire
// opens it, later calls share it, and the Release that drops the count to zero closes it.
// A closed handle cannot be reopened.
type Handle[T any] struct {
	open  func(ctx context.Context) (T, error)
	close func(ctx context.Context, res T) error

	mu     sync.Mutex
	res    T
	refs   int
	opened bool
	closed bool
}

// NewHandle returns a Handle that opens with open and closes with close.
func NewHandle[T any](open func(ctx context.Context) (T, error), close func(ctx context.Context, res T) error) *Handle[T] {
	return &Handle[T]{open: open, close: close}
}

// Acquire returns the shared resource, opening it on first use.
func (h *Handle[T]) Acquire(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if h.closed {
		return zero, ErrHandleClosed
	}
	if !h.opened {
		res, err := h.open(ctx)
		if err != nil {
			return zero, err
		}
		h.res = res
		h.opened = true
	}
	h.refs++
	return h.res, nil
}

// Release drops one reference and closes the resource when none remain.
func (h *Handle[T]) Release(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.refs == 0 {
		return nil
	}
	h.refs--
	if h.refs > 0 {
		return nil
	}
	h.closed = true
	var zero T
	res := h.res
	h.res = zero
	return h.close(ctx, res)
}

// Refs returns the current reference count.
func (h *Handle[T]) Refs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}
