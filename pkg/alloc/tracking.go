package alloc

// Tracking wraps an Allocator and records every buffer it hands out, so tests
// can assert the exactly-once-free discipline: no buffer freed twice, no
// foreign buffer freed, nothing left live at the end.
type Tracking struct {
	inner    Allocator
	live     map[*byte]int
	allocs   int
	frees    int
	misfrees int
}

func NewTracking(inner Allocator) *Tracking {
	if inner == nil {
		inner = Heap{}
	}
	return &Tracking{inner: inner, live: make(map[*byte]int)}
}

func (t *Tracking) Allocate(n int) ([]byte, error) {
	p, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	t.allocs++
	if n > 0 {
		t.live[&p[0]] = n
	}
	return p, nil
}

func (t *Tracking) Deallocate(p []byte) {
	if len(p) == 0 {
		t.frees++
		return
	}
	key := &p[0]
	if _, ok := t.live[key]; !ok {
		t.misfrees++
		return
	}
	delete(t.live, key)
	t.frees++
	t.inner.Deallocate(p)
}

// Allocs returns the number of successful Allocate calls.
func (t *Tracking) Allocs() int { return t.allocs }

// Frees returns the number of valid Deallocate calls.
func (t *Tracking) Frees() int { return t.frees }

// Live returns the number of buffers allocated but not yet freed.
func (t *Tracking) Live() int { return len(t.live) }

// Misfrees returns the number of double or foreign frees observed.
func (t *Tracking) Misfrees() int { return t.misfrees }
