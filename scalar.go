package tinyproto

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tinyproto/tinyproto/src/codec"
)

// narrowUnsigned checks that x, already decoded as a lenient (bit-
// discarding) 32-bit varint, fits exactly into the narrower unsigned type
// T. Unlike the 32/64-bit decode itself, this check is strict: u8/u16 (and
// i8/i16, via narrowSigned) must reject values that don't fit rather than
// silently truncating them.
func narrowUnsigned[T constraints.Unsigned](x uint32) (T, error) {
	t := T(x)
	if uint32(t) != x {
		var zero T
		return zero, fmt.Errorf("%w: value %d does not fit in target integer type", codec.ErrRead, x)
	}
	return t, nil
}

// narrowSigned is narrowUnsigned's counterpart for signed destination
// types, applied after zigzag decoding to a signed 32-bit intermediate.
func narrowSigned[T constraints.Signed](x int32) (T, error) {
	t := T(x)
	if int32(t) != x {
		var zero T
		return zero, fmt.Errorf("%w: value %d does not fit in target integer type", codec.ErrRead, x)
	}
	return t, nil
}

// Bool is the Message implementation for protobuf bool fields. Any wire
// value other than 0 or 1 is a decode error; there is no silent
// truncation to boolean for scalars.
type Bool bool

func (*Bool) WireType() WireType { return WireVarint }

func (b *Bool) WriteRaw(w *codec.Writer) error {
	v := uint32(0)
	if *b {
		v = 1
	}
	return w.EncodeVarUint32(v)
}

func (b *Bool) ReadRaw(r *codec.Reader) error {
	v, err := r.DecodeVarUint32()
	if err != nil {
		return err
	}
	switch v {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return fmt.Errorf("%w: invalid bool discriminant %d", codec.ErrRead, v)
	}
	return nil
}

// U8 is the Message implementation for an unsigned 8-bit scalar field.
type U8 uint8

func (*U8) WireType() WireType { return WireVarint }

func (v *U8) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarUint32(uint32(*v))
}

func (v *U8) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarUint32()
	if err != nil {
		return err
	}
	n, err := narrowUnsigned[uint8](x)
	if err != nil {
		return err
	}
	*v = U8(n)
	return nil
}

// U16 is the Message implementation for an unsigned 16-bit scalar field.
type U16 uint16

func (*U16) WireType() WireType { return WireVarint }

func (v *U16) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarUint32(uint32(*v))
}

func (v *U16) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarUint32()
	if err != nil {
		return err
	}
	n, err := narrowUnsigned[uint16](x)
	if err != nil {
		return err
	}
	*v = U16(n)
	return nil
}

// U32 is the Message implementation for an unsigned 32-bit scalar field.
type U32 uint32

func (*U32) WireType() WireType { return WireVarint }

func (v *U32) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarUint32(uint32(*v))
}

func (v *U32) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarUint32()
	if err != nil {
		return err
	}
	*v = U32(x)
	return nil
}

// U64 is the Message implementation for an unsigned 64-bit scalar field.
type U64 uint64

func (*U64) WireType() WireType { return WireVarint }

func (v *U64) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarUint64(uint64(*v))
}

func (v *U64) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarUint64()
	if err != nil {
		return err
	}
	*v = U64(x)
	return nil
}

// I8 is the Message implementation for a zigzag-encoded signed 8-bit
// scalar field.
type I8 int8

func (*I8) WireType() WireType { return WireVarint }

func (v *I8) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarInt32(int32(*v))
}

func (v *I8) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarInt32()
	if err != nil {
		return err
	}
	n, err := narrowSigned[int8](x)
	if err != nil {
		return err
	}
	*v = I8(n)
	return nil
}

// I16 is the Message implementation for a zigzag-encoded signed 16-bit
// scalar field.
type I16 int16

func (*I16) WireType() WireType { return WireVarint }

func (v *I16) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarInt32(int32(*v))
}

func (v *I16) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarInt32()
	if err != nil {
		return err
	}
	n, err := narrowSigned[int16](x)
	if err != nil {
		return err
	}
	*v = I16(n)
	return nil
}

// I32 is the Message implementation for a zigzag-encoded signed 32-bit
// scalar field.
type I32 int32

func (*I32) WireType() WireType { return WireVarint }

func (v *I32) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarInt32(int32(*v))
}

func (v *I32) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarInt32()
	if err != nil {
		return err
	}
	*v = I32(x)
	return nil
}

// I64 is the Message implementation for a zigzag-encoded signed 64-bit
// scalar field.
type I64 int64

func (*I64) WireType() WireType { return WireVarint }

func (v *I64) WriteRaw(w *codec.Writer) error {
	return w.EncodeVarInt64(int64(*v))
}

func (v *I64) ReadRaw(r *codec.Reader) error {
	x, err := r.DecodeVarInt64()
	if err != nil {
		return err
	}
	*v = I64(x)
	return nil
}
