package refstring

import (
	"bytes"
	"testing"

	"github.com/rawbytedev/refstring/pkg/alloc"
)

func BenchmarkAppendHeap(b *testing.B) {
	rhs := Borrow([]byte("0123456789abcdef"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, _ := CopyOf(alloc.Heap{}, []byte("seed"))
		_ = s.Append(alloc.Heap{}, rhs)
		s.Release()
	}
}

func BenchmarkAppendPool(b *testing.B) {
	pool := alloc.NewPool()
	rhs := Borrow([]byte("0123456789abcdef"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s, _ := CopyOf(pool, []byte("seed"))
		_ = s.Append(pool, rhs)
		s.Release()
	}
}

func BenchmarkCloneRelease(b *testing.B) {
	s, _ := CopyOf(alloc.Heap{}, []byte("shared payload"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Release()
	}
	s.Release()
}

func BenchmarkCompare(b *testing.B) {
	x := Borrow([]byte("a moderately long byte string for comparison"))
	y := Borrow([]byte("a moderately long byte string for comparisons"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = x.Compare(y)
	}
}

func BenchmarkBytesCompareBaseline(b *testing.B) {
	x := []byte("a moderately long byte string for comparison")
	y := []byte("a moderately long byte string for comparisons")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = bytes.Compare(x, y)
	}
}

func BenchmarkLenUTF8(b *testing.B) {
	s := Borrow([]byte("héllo wörld, 你好, こんにちは"))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.LenUTF8()
	}
}
