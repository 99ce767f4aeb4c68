package tinyproto

import (
	"fmt"
	"unicode/utf8"

	"github.com/tinyproto/tinyproto/src/codec"
)

// BoundedString is a UTF-8 string backed by a capacity check applied on
// every write, modeling a fixed-capacity string type for constrained
// embedded hosts. Go has no const generic array length, so capacity is a
// constructor argument rather than a type parameter; 0 means unbounded.
type BoundedString struct {
	capacity int
	value    string
}

// NewBoundedString creates an empty BoundedString that rejects strings
// longer than capacity bytes (0 for unbounded).
func NewBoundedString(capacity int) *BoundedString {
	return &BoundedString{capacity: capacity}
}

func (*BoundedString) WireType() WireType { return WireLengthDelimited }

// String returns the current value.
func (s *BoundedString) String() string { return s.value }

// Set overwrites the value, failing if v exceeds the configured capacity.
func (s *BoundedString) Set(v string) error {
	if s.capacity > 0 && len(v) > s.capacity {
		return fmt.Errorf("%w: string of %d bytes exceeds capacity %d", codec.ErrRead, len(v), s.capacity)
	}
	s.value = v
	return nil
}

func (s *BoundedString) WriteRaw(w *codec.Writer) error {
	return w.Write([]byte(s.value))
}

func (s *BoundedString) ReadRaw(r *codec.Reader) error {
	data := r.ReadToEnd()
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: invalid UTF-8", codec.ErrRead)
	}
	return s.Set(string(data))
}

// BoundedBytes is an arbitrary byte sequence backed by a capacity check
// applied on every write, the fixed-capacity byte-buffer counterpart to
// BoundedString. Capacity is a constructor argument (0 means unbounded)
// for the same reason as BoundedString.
type BoundedBytes struct {
	capacity int
	value    []byte
}

// NewBoundedBytes creates an empty BoundedBytes that rejects values longer
// than capacity bytes (0 for unbounded).
func NewBoundedBytes(capacity int) *BoundedBytes {
	return &BoundedBytes{capacity: capacity}
}

func (*BoundedBytes) WireType() WireType { return WireLengthDelimited }

// Bytes returns the current value. The caller must not mutate it.
func (b *BoundedBytes) Bytes() []byte { return b.value }

// Set overwrites the value, failing if v exceeds the configured capacity.
func (b *BoundedBytes) Set(v []byte) error {
	if b.capacity > 0 && len(v) > b.capacity {
		return fmt.Errorf("%w: %d bytes exceeds capacity %d", codec.ErrRead, len(v), b.capacity)
	}
	b.value = append(b.value[:0], v...)
	return nil
}

func (b *BoundedBytes) WriteRaw(w *codec.Writer) error {
	return w.Write(b.value)
}

func (b *BoundedBytes) ReadRaw(r *codec.Reader) error {
	return b.Set(r.ReadToEnd())
}
