// Package refbuf implements a manually reference-counted byte buffer. One
// counter cell is shared by every Buffer handle cloned from the same
// allocation; the free function runs exactly once, when the count reaches
// zero.
//
// The counter is a plain shared *int32: refstring is single-threaded by
// contract, and any one buffer with its counter is assumed to stay on one
// goroutine. Moving buffers across goroutines would require swapping the
// counter for an atomic, which is a deliberate redesign rather than a local
// patch.
package refbuf

type Buffer struct {
	data  []byte
	refs  *int32
	free  func([]byte)
	freed bool
}

// NewBuffer wraps data in an owning Buffer with the count at 1. The data is
// not copied. free may be nil for buffers that need no release step.
func NewBuffer(data []byte, free func([]byte)) *Buffer {
	refs := int32(1)
	return &Buffer{data: data, refs: &refs, free: free}
}

// Ref returns a new handle sharing this buffer and its counter, bumping the
// count by one. Each handle is freed independently.
func (b *Buffer) Ref() *Buffer {
	if b.freed {
		panic("refbuf: Ref on freed buffer")
	}
	*b.refs++
	return &Buffer{data: b.data, refs: b.refs, free: b.free}
}

// Free drops this handle's reference. When the count reaches zero the free
// function runs on the data, once. Calling Free again on the same handle is a
// no-op; reading the data afterwards panics.
func (b *Buffer) Free() {
	if b.freed {
		return
	}
	b.freed = true
	*b.refs--
	if *b.refs == 0 && b.free != nil {
		b.free(b.data)
	}
	b.data = nil
}

// Data returns the underlying bytes. The caller may write to them while it
// holds the only reference (the fill-after-Reserve case); with the count
// above one the bytes must be treated as read-only.
func (b *Buffer) Data() []byte {
	if b.freed {
		panic("refbuf: Data on freed buffer")
	}
	return b.data
}

// Len returns the buffer size. Works on nil handles.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Refs returns the current shared count, 0 for nil or freed handles.
func (b *Buffer) Refs() int32 {
	if b == nil || b.freed {
		return 0
	}
	return *b.refs
}
