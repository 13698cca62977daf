// Package alloc defines the allocator boundary that backs owned refstring
// buffers. The core type never calls make directly; every owned buffer comes
// from an Allocator and goes back through the same Allocator exactly once.
package alloc

import "errors"

var (
	ErrExhausted = errors.New("allocator exhausted")
	ErrBadSize   = errors.New("negative allocation size")
)

// Allocator supplies raw byte buffers and takes them back. Deallocate is only
// ever called with a buffer previously returned by Allocate, and at most once
// per buffer; implementations need not defend against double frees.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Deallocate(p []byte)
}

// Heap allocates from the Go heap. Deallocate is a no-op: the garbage
// collector reclaims the buffer once the last reference drops.
type Heap struct{}

func (Heap) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	return make([]byte, n), nil
}

func (Heap) Deallocate([]byte) {}

// Budget caps the total bytes live at once, the constrained-heap case.
// Exceeding the cap fails with ErrExhausted instead of allocating.
type Budget struct {
	inner Allocator
	limit int
	used  int
}

func NewBudget(inner Allocator, limit int) *Budget {
	return &Budget{inner: inner, limit: limit}
}

func (b *Budget) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	if n > b.limit-b.used {
		return nil, ErrExhausted
	}
	p, err := b.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	b.used += n
	return p, nil
}

func (b *Budget) Deallocate(p []byte) {
	b.used -= len(p)
	b.inner.Deallocate(p)
}

// InUse returns the bytes currently held against the budget.
func (b *Budget) InUse() int { return b.used }
