package codec_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinyproto/tinyproto/src/codec"
)

func TestVarUint32RoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 127, 128, 300, 16384, math.MaxUint32}
	for _, v := range cases {
		buf := make([]byte, 16)
		w := codec.NewWriter(buf)
		require.NoError(t, w.EncodeVarUint32(v))

		r := codec.NewReader(w.Bytes())
		got, err := r.DecodeVarUint32()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.True(t, r.EOF())
	}
}

func TestVarUint64RoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64}
	for _, v := range cases {
		buf := make([]byte, 16)
		w := codec.NewWriter(buf)
		require.NoError(t, w.EncodeVarUint64(v))

		r := codec.NewReader(w.Bytes())
		got, err := r.DecodeVarUint64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarintCanonicalEncoding(t *testing.T) {
	// 150 must encode as exactly two bytes: 0x96 0x01.
	buf := make([]byte, 16)
	w := codec.NewWriter(buf)
	require.NoError(t, w.EncodeVarUint32(150))
	require.Equal(t, []byte{0x96, 0x01}, w.Bytes())

	// 0 must encode as the single byte 0x00.
	buf2 := make([]byte, 16)
	w2 := codec.NewWriter(buf2)
	require.NoError(t, w2.EncodeVarUint32(0))
	require.Equal(t, []byte{0x00}, w2.Bytes())
}

func TestVarintOverlongReadToleratesPadding(t *testing.T) {
	// 0x96 0x01 canonically encodes 150; an over-long encoding using 3
	// bytes (0x96 0x81 0x00) must still decode to 150.
	r := codec.NewReader([]byte{0x96, 0x81, 0x00})
	got, err := r.DecodeVarUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(150), got)
}

func TestVarintOverwidthBitsDiscardedOnRead(t *testing.T) {
	// A 32-bit decode of a 64-bit-wide negative-int32 sign extension must
	// discard bits beyond 32 rather than error. -1 sign-extended to 64
	// bits, varint-encoded, is 9 continuation bytes of 0xFF followed by
	// 0x01 (10 bytes in all).
	raw := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	r := codec.NewReader(raw)
	got, err := r.DecodeVarUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), got)
	require.True(t, r.EOF(), "all continuation bytes must be consumed")
}

func TestVarintTruncatedReadFails(t *testing.T) {
	// A continuation byte with nothing after it must fail, not hang.
	r := codec.NewReader([]byte{0x80})
	_, err := r.DecodeVarUint32()
	require.Error(t, err)
	require.True(t, errors.Is(err, codec.ErrRead))
}

func TestVarintEmptyBufferFails(t *testing.T) {
	r := codec.NewReader(nil)
	_, err := r.DecodeVarUint32()
	require.Error(t, err)
	require.True(t, errors.Is(err, codec.ErrRead))
}

func TestZigZag32BoundaryValues(t *testing.T) {
	cases := []int32{0, -1, 1, math.MinInt32, math.MaxInt32}
	for _, v := range cases {
		got := codec.DecodeZigZag32(codec.EncodeZigZag32(v))
		require.Equal(t, v, got)
	}
}

func TestZigZag64BoundaryValues(t *testing.T) {
	cases := []int64{0, -1, 1, math.MinInt64, math.MaxInt64}
	for _, v := range cases {
		got := codec.DecodeZigZag64(codec.EncodeZigZag64(v))
		require.Equal(t, v, got)
	}
}

func TestZigZagNegativeOneEncodesToOne(t *testing.T) {
	// signed -1 zigzags to unsigned 1.
	require.Equal(t, uint32(1), codec.EncodeZigZag32(-1))
	require.Equal(t, uint64(1), codec.EncodeZigZag64(-1))
}

func TestRawVarintReturnsExactByteRange(t *testing.T) {
	buf := make([]byte, 16)
	w := codec.NewWriter(buf)
	require.NoError(t, w.EncodeVarUint32(300))
	want := append([]byte(nil), w.Bytes()...)

	r := codec.NewReader(w.Bytes())
	got, err := r.RawVarint()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.True(t, r.EOF())
}
