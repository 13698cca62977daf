package refstring

import (
	"github.com/rawbytedev/refstring/pkg/alloc"
	"github.com/rawbytedev/refstring/pkg/refbuf"
	"github.com/rawbytedev/refstring/pkg/sink"
)

// Substr extracts the range [offset, offset+n), copied into a fresh owned
// buffer or borrowing the same memory per copy. A borrowed sub-view does not
// join the owning group and must not outlive it.
func (s String) Substr(a alloc.Allocator, offset, n int, copy bool) (String, error) {
	if offset < 0 || n < 0 || offset >= s.size || offset+n >= s.size {
		return String{}, ErrOutOfBounds
	}
	return From(a, s.data[offset:offset+n], copy)
}

// At returns the byte at index i. Read-only.
func (s String) At(i int) (byte, error) {
	if i < 0 || i >= s.size {
		return 0, ErrIndexOutOfBounds
	}
	return s.data[i], nil
}

// Len returns the byte length of the content, excluding one trailing NUL if
// present.
func (s String) Len() int {
	if s.terminated() {
		return s.size - 1
	}
	return s.size
}

// LenUTF8 counts UTF-8 characters, excluding a trailing NUL. A byte starts a
// character unless it is a continuation byte (10xxxxxx); continuation bytes
// are skipped. Malformed sequences are not rejected, they simply undercount.
func (s String) LenUTF8() int {
	end := s.size
	if s.terminated() {
		end--
	}
	n := 0
	for _, b := range s.data[:end] {
		if !isContinuation(b) {
			n++
		}
	}
	return n
}

// Append concatenates o onto s, always into a fresh owned buffer with the
// count at 1. If s's content is NUL-terminated the terminator is dropped
// before appending. The overflow check runs before the allocator is
// consulted; s's old share is released only after the new buffer is built.
func (s *String) Append(a alloc.Allocator, o String) error {
	if err := checkConcatSize(s.size, o.size); err != nil {
		return err
	}
	head := s.size
	if s.terminated() {
		head--
	}
	buf, err := a.Allocate(head + o.size)
	if err != nil {
		return err
	}
	copy(buf, s.data[:head])
	copy(buf[head:], o.data[:o.size])
	next := String{data: buf, size: head + o.size, shared: refbuf.NewBuffer(buf, a.Deallocate)}
	s.Release()
	*s = next
	return nil
}

// Concat is the binary form of Append: lhs is cloned, appended to, and
// returned as a new instance; neither operand is mutated.
func Concat(a alloc.Allocator, lhs, rhs String) (String, error) {
	out := lhs.Clone()
	if err := out.Append(a, rhs); err != nil {
		out.Release()
		return String{}, err
	}
	return out, nil
}

// Compare orders strings lexicographically byte by byte over their full
// extent, terminators included. The shorter string is less when one runs out
// first; otherwise the larger byte wins.
//
// Returns 1 if s is greater, -1 if s is smaller, 0 if equal.
func (s String) Compare(o String) int {
	for i := 0; ; i++ {
		sDone, oDone := i >= s.size, i >= o.size
		switch {
		case sDone && oDone:
			return 0
		case sDone:
			return -1
		case oDone:
			return 1
		}
		if s.data[i] != o.data[i] {
			if s.data[i] > o.data[i] {
				return 1
			}
			return -1
		}
	}
}

func (s String) Less(o String) bool     { return s.Compare(o) < 0 }
func (s String) Greater(o String) bool  { return s.Compare(o) > 0 }
func (s String) Equal(o String) bool    { return s.Compare(o) == 0 }
func (s String) NotEqual(o String) bool { return s.Compare(o) != 0 }

// Print writes the content to out. Terminated content goes through the
// sink's terminated entry point, which stops at the NUL; anything else must
// carry an explicit length so the sink never reads past the view.
func (s String) Print(out sink.Sink) {
	if s.terminated() {
		out.PutTerminated(s.data[:s.size])
	} else {
		out.Put(s.data[:s.size])
	}
}
