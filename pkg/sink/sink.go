// Package sink delivers raw string bytes to a diagnostic destination. It has
// two entry points because terminated and unterminated content need different
// handling: PutTerminated stops at the first NUL, Put writes an exact byte
// count.
package sink

import (
	"bytes"
	"io"
)

type Sink interface {
	// PutTerminated writes p up to but excluding the first NUL byte.
	PutTerminated(p []byte)
	// Put writes exactly len(p) bytes.
	Put(p []byte)
}

// Writer adapts an io.Writer into a Sink.
type Writer struct {
	W io.Writer
}

func (w Writer) PutTerminated(p []byte) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	w.W.Write(p)
}

func (w Writer) Put(p []byte) {
	w.W.Write(p)
}
