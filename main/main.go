package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/refstring"
	"github.com/rawbytedev/refstring/pkg/alloc"
	"github.com/rawbytedev/refstring/pkg/sink"
)

// Allocation churn harness: builds and tears down owning groups through the
// pool allocator so heap profiles show refcount-driven reuse.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	pool := alloc.NewPool()
	out := sink.NewLogger(logrus.StandardLogger())

	words := [][]byte{
		[]byte("alpha\x00"), []byte("beta"), []byte("gamma\x00"), []byte("delta"),
	}
	for i := 0; i < 10000; i++ {
		s, err := refstring.CopyOf(pool, words[i%len(words)])
		if err != nil {
			log.Fatal(err)
		}
		clone := s.Clone()
		if err := s.Append(pool, refstring.Borrow(words[(i+1)%len(words)])); err != nil {
			log.Fatal(err)
		}
		if i%1000 == 0 {
			s.Print(out)
		}
		clone.Release()
		s.Release()
	}
	pprof.WriteHeapProfile(f)
}
