package sink

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestWriterTerminated(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{W: &buf}

	w.PutTerminated([]byte("hello\x00trailing garbage"))
	require.Equal(t, "hello", buf.String())

	buf.Reset()
	w.PutTerminated([]byte("no terminator"))
	require.Equal(t, "no terminator", buf.String())
}

func TestWriterExactLength(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{W: &buf}
	w.Put([]byte("a\x00b"))
	require.Equal(t, []byte("a\x00b"), buf.Bytes())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	s := NewLogger(l)
	s.PutTerminated([]byte("greeting\x00junk"))
	require.Contains(t, buf.String(), "greeting")
	require.NotContains(t, buf.String(), "junk")

	buf.Reset()
	s.Put([]byte("plain"))
	require.Contains(t, buf.String(), "plain")
	require.Contains(t, buf.String(), "bytes=5")
}

func TestZstdRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewZstd(&buf)
	require.NoError(t, err)

	z.PutTerminated([]byte("first\x00ignored"))
	z.Put([]byte(" second"))
	require.NoError(t, z.Close())

	dec, err := zstd.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer dec.Close()
	out, err := io.ReadAll(dec)
	require.NoError(t, err)
	require.Equal(t, "first second", string(out))
}
