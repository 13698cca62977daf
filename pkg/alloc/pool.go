package alloc

import "sync"

// Size classes for pooled buffers. Requests above the largest class fall
// through to the plain heap.
var classes = [...]int{64, 256, 1024, 4096, 16384}

// Pool recycles buffers through per-class sync.Pools. Allocate returns a
// slice of the requested length over a class-sized backing array; Deallocate
// puts the backing array back for reuse.
type Pool struct {
	pools [len(classes)]sync.Pool
}

func NewPool() *Pool {
	p := &Pool{}
	for i, c := range classes {
		size := c
		p.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

func (p *Pool) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	for i, c := range classes {
		if n <= c {
			buf := *p.pools[i].Get().(*[]byte)
			return buf[:n], nil
		}
	}
	return make([]byte, n), nil
}

func (p *Pool) Deallocate(b []byte) {
	for i, c := range classes {
		if cap(b) == c {
			full := b[:c]
			p.pools[i].Put(&full)
			return
		}
	}
	// oversized or foreign capacity, let the GC have it
}
