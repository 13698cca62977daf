package refbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeRunsOnceAtZero(t *testing.T) {
	freed := 0
	b := NewBuffer([]byte("data"), func([]byte) { freed++ })
	require.EqualValues(t, 1, b.Refs())

	r1 := b.Ref()
	r2 := b.Ref()
	require.EqualValues(t, 3, b.Refs())

	r1.Free()
	require.Equal(t, 0, freed)
	b.Free()
	require.Equal(t, 0, freed)
	r2.Free()
	require.Equal(t, 1, freed)
}

func TestFreeIdempotentPerHandle(t *testing.T) {
	freed := 0
	b := NewBuffer([]byte("data"), func([]byte) { freed++ })
	r := b.Ref()
	r.Free()
	r.Free() // repeated free of the same handle is a no-op
	require.EqualValues(t, 1, b.Refs())
	b.Free()
	require.Equal(t, 1, freed)
}

func TestUseAfterFreePanics(t *testing.T) {
	b := NewBuffer([]byte("data"), nil)
	b.Free()
	require.Panics(t, func() { b.Data() })
	require.Panics(t, func() { b.Ref() })
	require.EqualValues(t, 0, b.Refs())
}

func TestNilHandleAccessors(t *testing.T) {
	var b *Buffer
	require.Equal(t, 0, b.Len())
	require.EqualValues(t, 0, b.Refs())
}

func TestFreeReceivesOriginalData(t *testing.T) {
	data := []byte("payload")
	var got []byte
	b := NewBuffer(data, func(p []byte) { got = p })
	r := b.Ref()
	b.Free()
	r.Free()
	require.Equal(t, data, got)
}
