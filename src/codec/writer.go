package codec

import "fmt"

// Writer is a mutable cursor over a caller-supplied byte buffer. Writes
// advance pos monotonically; the written prefix is always buf[:pos]. A
// failed write leaves pos unchanged, except mid-way through
// WriteLengthDelimited, where pos may have advanced past the frame's start
// and the Writer must not be used again (see WriteLengthDelimited).
type Writer struct {
	buf []byte
	pos int
}

// NewWriter returns a Writer that writes into buf starting at offset 0.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the bytes written so far, a view into buf.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// Write appends b to the buffer, failing if it would not fit.
func (w *Writer) Write(b []byte) error {
	if len(w.buf)-w.pos < len(b) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrWrite, len(b), len(w.buf)-w.pos)
	}
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
	return nil
}

// EncodeVarUint32 writes val as a canonical (minimum-length) unsigned
// varint: the value 0 encodes as the single byte 0x00.
func (w *Writer) EncodeVarUint32(val uint32) error {
	var tmp [5]byte
	n := 0
	for {
		b := byte(val & 0x7F)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		tmp[n] = b
		n++
		if val == 0 {
			break
		}
	}
	return w.Write(tmp[:n])
}

// EncodeVarUint64 writes val as a canonical unsigned varint.
func (w *Writer) EncodeVarUint64(val uint64) error {
	var tmp [10]byte
	n := 0
	for {
		b := byte(val & 0x7F)
		val >>= 7
		if val != 0 {
			b |= 0x80
		}
		tmp[n] = b
		n++
		if val == 0 {
			break
		}
	}
	return w.Write(tmp[:n])
}

// EncodeZigZag32 maps a signed 32-bit integer to its zigzag unsigned form.
func EncodeZigZag32(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

// EncodeZigZag64 maps a signed 64-bit integer to its zigzag unsigned form.
func EncodeZigZag64(n int64) uint64 {
	return uint64((n << 1) ^ (n >> 63))
}

// EncodeVarInt32 writes a zigzag-encoded signed 32-bit varint.
func (w *Writer) EncodeVarInt32(v int32) error {
	return w.EncodeVarUint32(EncodeZigZag32(v))
}

// EncodeVarInt64 writes a zigzag-encoded signed 64-bit varint.
func (w *Writer) EncodeVarInt64(v int64) error {
	return w.EncodeVarUint64(EncodeZigZag64(v))
}

// WriteLengthDelimited writes a length-delimited frame without knowing the
// payload length in advance: it remembers the current position, runs f to
// write the payload in place, computes the payload length, encodes it as a
// varint into a small scratch array, then shifts the just-written payload
// forward to make room for the header and copies the header into the gap.
//
// This is O(payload length) for a single level of nesting but becomes
// quadratic in nesting depth, since every enclosing frame re-shifts the
// bytes of every frame nested inside it. That tradeoff is accepted in
// exchange for never running the caller's write logic twice.
//
// If f fails, or if there is no room for the header once the payload has
// already been written, WriteLengthDelimited returns an error. In the
// no-room-for-header case pos has already advanced past start; per the
// cursor poisoning rule the Writer must not be used again after an error.
func (w *Writer) WriteLengthDelimited(f func(*Writer) error) error {
	start := w.pos
	if err := f(w); err != nil {
		return err
	}
	length := w.pos - start

	var hdrBuf [5]byte
	hdr := Writer{buf: hdrBuf[:]}
	if err := hdr.EncodeVarUint32(uint32(length)); err != nil {
		return err
	}
	header := hdr.Bytes()

	if len(w.buf)-w.pos < len(header) {
		return fmt.Errorf("%w: no room for %d-byte length header", ErrWrite, len(header))
	}

	// Shift the payload forward to make room for the header. copy handles
	// the overlapping source/destination ranges correctly (memmove
	// semantics), same as the reserve-and-shift technique's copy_within.
	copy(w.buf[start+len(header):w.pos+len(header)], w.buf[start:w.pos])
	copy(w.buf[start:], header)
	w.pos += len(header)
	return nil
}
