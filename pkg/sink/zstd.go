package sink

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd compresses everything put into it before handing it to the underlying
// writer. Meant for capturing high-volume diagnostic output; Close must be
// called to flush the final frame.
type Zstd struct {
	enc *zstd.Encoder
}

func NewZstd(w io.Writer) (*Zstd, error) {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return &Zstd{enc: enc}, nil
}

func (z *Zstd) PutTerminated(p []byte) {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	z.enc.Write(p)
}

func (z *Zstd) Put(p []byte) {
	z.enc.Write(p)
}

func (z *Zstd) Close() error {
	return z.enc.Close()
}
