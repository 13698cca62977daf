// Package refstring implements a byte-oriented string that either borrows
// caller-managed memory or owns an allocator-backed buffer shared through
// manual reference counting. Every construction, assignment, mutation and
// release decides deterministically whether a buffer is freed, shared, or
// left alone; there is no hidden lifetime management beyond that.
//
// A String with a nil shared cell is a borrowing view: it never frees its
// bytes and must not outlive whoever manages them. A String with a shared
// cell is one member of an owning group; the buffer goes back to its
// allocator exactly when the last member releases it.
package refstring

import (
	"errors"

	"github.com/rawbytedev/refstring/pkg/alloc"
	"github.com/rawbytedev/refstring/pkg/refbuf"
)

var (
	ErrOutOfBounds      = errors.New("substring out of bounds")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrOverflow         = errors.New("size overflow")
)

// String is a fixed-content byte string. The zero value is the empty state:
// no buffer, borrowing, safe to Release or reassign.
type String struct {
	data []byte
	size int
	// shared is non-nil iff this instance owns a share of data.
	shared *refbuf.Buffer
}

// Borrow wraps p as a non-owning view. The view never frees p and is only
// valid while p's real owner keeps it alive.
func Borrow(p []byte) String {
	return String{data: p, size: len(p)}
}

// Reserve allocates a fresh owned buffer of n bytes with the count at 1.
// The content is unspecified; the caller fills it through Data.
func Reserve(a alloc.Allocator, n int) (String, error) {
	buf, err := a.Allocate(n)
	if err != nil {
		return String{}, err
	}
	return String{data: buf, size: n, shared: refbuf.NewBuffer(buf, a.Deallocate)}, nil
}

// CopyOf allocates an owned buffer and copies p into it.
func CopyOf(a alloc.Allocator, p []byte) (String, error) {
	s, err := Reserve(a, len(p))
	if err != nil {
		return String{}, err
	}
	copy(s.data, p)
	return s, nil
}

// From builds a string over p, copied into an owned buffer or borrowed in
// place per copy.
func From(a alloc.Allocator, p []byte, copy bool) (String, error) {
	if copy {
		return CopyOf(a, p)
	}
	return Borrow(p), nil
}

// Clone duplicates the view. An owning clone joins the owning group,
// bumping the shared count; the buffer itself is aliased, not copied.
func (s String) Clone() String {
	if s.shared != nil {
		s.shared = s.shared.Ref()
	}
	return s
}

// Release drops this instance's share of its buffer, freeing it through the
// owning allocator when the count reaches zero, and resets to the empty
// state. Borrowed buffers are left alone.
func (s *String) Release() {
	if s.shared != nil {
		s.shared.Free()
	}
	*s = String{}
}

// Assign releases the current ownership and re-establishes the string over
// p, exactly as From would. Returns the receiver for chaining. On allocation
// failure the string is left unchanged.
func (s *String) Assign(a alloc.Allocator, p []byte, copy bool) (*String, error) {
	next, err := From(a, p, copy)
	if err != nil {
		return s, err
	}
	s.Release()
	*s = next
	return s, nil
}

// Set is copy assignment: release what the receiver owned, adopt src's view
// and ownership, bumping src's count when owning. Assigning a string to an
// alias of itself is a no-op on the shared state.
func (s *String) Set(src String) {
	if s.shared != nil && s.shared == src.shared {
		s.data, s.size = src.data, src.size
		return
	}
	if src.shared != nil {
		src.shared = src.shared.Ref()
	}
	if s.shared != nil {
		s.shared.Free()
	}
	*s = src
}

// Size returns the raw byte extent of the view, trailing NUL included.
func (s String) Size() int { return s.size }

// Data exposes the underlying bytes. Writable only while this is the sole
// owner (the fill-after-Reserve case); never write through a borrowed view
// or a shared group.
func (s String) Data() []byte {
	if s.data == nil {
		return nil
	}
	return s.data[:s.size]
}

// Owned reports whether this instance participates in an owning group.
func (s String) Owned() bool { return s.shared != nil }

// Refs returns the owning group's current count, 0 for borrowed views.
func (s String) Refs() int {
	return int(s.shared.Refs())
}
