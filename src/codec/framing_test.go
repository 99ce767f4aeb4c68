package codec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tinyproto/tinyproto/src/codec"
)

func TestWriteLengthDelimitedInvariant(t *testing.T) {
	buf := make([]byte, 32)
	w := codec.NewWriter(buf)

	// Write an unrelated leading byte so start != 0, exercising the shift.
	require.NoError(t, w.Write([]byte{0xAB}))
	startBeforeFrame := w.Pos()

	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	require.NoError(t, w.WriteLengthDelimited(func(w *codec.Writer) error {
		return w.Write(payload)
	}))

	want := append([]byte{0xAB, byte(len(payload))}, payload...)
	if diff := cmp.Diff(want, w.Bytes()); diff != "" {
		t.Fatalf("unexpected frame bytes (-want +got):\n%s", diff)
	}
	require.Equal(t, len(want), w.Pos())

	// Reading it back must reproduce length and payload exactly.
	r := codec.NewReader(w.Bytes()[startBeforeFrame:])
	got, err := r.ReadLengthDelimited()
	require.NoError(t, err)
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Fatalf("unexpected decoded payload (-want +got):\n%s", diff)
	}
	require.True(t, r.EOF())
}

func TestWriteLengthDelimitedNestedFrames(t *testing.T) {
	// Nested composite scenario: outer message has tag 1
	// of submessage type holding a single u32 field tag 1 = 42.
	// Bytes: 0A 02 08 2A
	buf := make([]byte, 32)
	w := codec.NewWriter(buf)

	require.NoError(t, w.EncodeVarUint32(0x0A)) // tag 1, length-delimited
	require.NoError(t, w.WriteLengthDelimited(func(w *codec.Writer) error {
		if err := w.EncodeVarUint32(0x08); err != nil { // tag 1, varint
			return err
		}
		return w.EncodeVarUint32(42)
	}))

	want := []byte{0x0A, 0x02, 0x08, 0x2A}
	require.Equal(t, want, w.Bytes())
}

func TestWriteLengthDelimitedOverflowFails(t *testing.T) {
	buf := make([]byte, 3)
	w := codec.NewWriter(buf)
	err := w.WriteLengthDelimited(func(w *codec.Writer) error {
		return w.Write([]byte{0x01, 0x02, 0x03})
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, codec.ErrWrite))
}

func TestWriteLengthDelimitedPropagatesInnerError(t *testing.T) {
	buf := make([]byte, 32)
	w := codec.NewWriter(buf)
	err := w.WriteLengthDelimited(func(w *codec.Writer) error {
		return w.Write(make([]byte, 1000))
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, codec.ErrWrite))
}

func TestReadLengthDelimitedTruncatedFails(t *testing.T) {
	// Length says 5 bytes but only 2 remain.
	r := codec.NewReader([]byte{0x05, 0x01, 0x02})
	_, err := r.ReadLengthDelimited()
	require.Error(t, err)
	require.True(t, errors.Is(err, codec.ErrRead))
}
