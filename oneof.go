package tinyproto

import "github.com/tinyproto/tinyproto/src/codec"

// Oneof is implemented by generated tagged unions: at most one variant is
// active, and each variant's tag is unique within the union (and within
// the outer message it is embedded in — every oneof variant tag
// participates in the outer message's tag switch as if it were a distinct
// field).
type Oneof interface {
	// WriteRaw emits exactly one tag-prefixed field, that of the
	// currently active variant.
	WriteRaw(w *codec.Writer) error
	// ReadRaw sets the union to the variant matching field's tag, failing
	// if no variant claims that tag.
	ReadRaw(field codec.WireField) error
}

// WriteOneof delegates to o's own WriteRaw, which emits its own header.
func WriteOneof(w *codec.Writer, o Oneof) error {
	return o.WriteRaw(w)
}

// ReadOneof delegates to o's own ReadRaw.
func ReadOneof(field codec.WireField, o Oneof) error {
	return o.ReadRaw(field)
}

// OptionalOneof wraps a Oneof union so the whole union may be absent. The
// reverse nesting — a Oneof variant that is itself a Oneof — is rejected by
// the type system: a variant must satisfy Message, which Oneof does not
// provide, since a union has no single wire type of its own.
//
// A Oneof's ReadRaw always fully reassigns the receiver from the wire tag,
// so the zero value of has lets the same ReadRaw path serve both "never set
// before" and "overwrite the active variant" without a separate method for
// first-time construction.
type OptionalOneof[M Oneof] struct {
	newFn func() M
	value M
	has   bool
}

// NewOptionalOneof creates an empty OptionalOneof. newFn is the default
// producer invoked the first time a field is read into this holder.
func NewOptionalOneof[M Oneof](newFn func() M) *OptionalOneof[M] {
	return &OptionalOneof[M]{newFn: newFn}
}

// Get returns the current value and whether one is present.
func (o *OptionalOneof[M]) Get() (M, bool) {
	return o.value, o.has
}

// WriteOptionalOneof writes the active variant's field if present, and
// does nothing otherwise.
func WriteOptionalOneof[M Oneof](w *codec.Writer, o *OptionalOneof[M]) error {
	if !o.has {
		return nil
	}
	return o.value.WriteRaw(w)
}

// ReadOptionalOneof decodes field into o, materializing o's value via
// newFn the first time it is called.
func ReadOptionalOneof[M Oneof](field codec.WireField, o *OptionalOneof[M]) error {
	if !o.has {
		o.value = o.newFn()
	}
	if err := o.value.ReadRaw(field); err != nil {
		return err
	}
	o.has = true
	return nil
}
