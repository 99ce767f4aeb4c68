// Package tinyproto is a minimal, allocation-optional codec for a subset
// of the Protocol Buffers wire format: varints and length-delimited blobs.
// It has no notion of a schema file or a code generator — user types
// implement Message (and, for composite fields, Optional/Repeated/Oneof)
// directly, the way generated code would.
package tinyproto

import (
	"fmt"

	"github.com/tinyproto/tinyproto/src/codec"
)

// WireType re-exports codec.WireType so that generated/hand-written
// message code only needs to import this package.
type WireType = codec.WireType

// Wire type constants, re-exported from the codec package.
const (
	WireVarint          = codec.WireVarint
	WireLengthDelimited = codec.WireLengthDelimited
)

// Message is implemented by every type tinyproto can serialize: the
// built-in scalar adapters, BoundedString/BoundedBytes, and hand-written
// composite message types. Messages whose WireType is WireVarint are
// scalars and never frame themselves as length-delimited; messages whose
// WireType is WireLengthDelimited are composites, strings, or byte blobs.
type Message interface {
	// WireType is the wire type this message is framed with when it
	// appears as a field of an outer message. It does not depend on the
	// receiver's current value.
	WireType() WireType
	// WriteRaw appends this message's body (not a tag header) to w.
	WriteRaw(w *codec.Writer) error
	// ReadRaw replaces this message's value by consuming r's entire
	// remaining contents.
	ReadRaw(r *codec.Reader) error
}

// Serialize writes msg's wire-format body into the start of buf and
// returns the number of bytes written.
func Serialize(msg Message, buf []byte) (int, error) {
	w := codec.NewWriter(buf)
	if err := msg.WriteRaw(w); err != nil {
		return 0, err
	}
	return w.Pos(), nil
}

// Parse default-constructs a value via newFn, merges buf's fields into it,
// and returns the result. Parsing is additive: each recognized field
// mutates the default-constructed value, and the final value is the
// result. After a failed Parse the returned value's contents are
// unspecified.
func Parse[M Message](newFn func() M, buf []byte) (M, error) {
	msg := newFn()
	r := codec.NewReader(buf)
	if err := msg.ReadRaw(r); err != nil {
		var zero M
		return zero, err
	}
	return msg, nil
}

// WriteField writes tag's header followed by msg's body, wrapping the body
// in a length-delimited frame when msg.WireType() requires it.
func WriteField(w *codec.Writer, tag uint32, msg Message) error {
	header := (tag << 3) | uint32(msg.WireType())
	if err := w.EncodeVarUint32(header); err != nil {
		return err
	}
	if msg.WireType() == WireLengthDelimited {
		return w.WriteLengthDelimited(func(w *codec.Writer) error {
			return msg.WriteRaw(w)
		})
	}
	return msg.WriteRaw(w)
}

// ReadInto decodes field's payload into msg, first checking that field's
// wire type matches msg's declared wire type.
func ReadInto(field codec.WireField, msg Message) error {
	if field.WireType != msg.WireType() {
		return fmt.Errorf("%w: field %d: wire type mismatch: got %s, want %s",
			codec.ErrRead, field.Tag, field.WireType, msg.WireType())
	}
	return msg.ReadRaw(codec.NewReader(field.Payload))
}
