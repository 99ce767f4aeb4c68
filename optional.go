package tinyproto

import "github.com/tinyproto/tinyproto/src/codec"

// Optional holds at most one value of a message type: the Go translation
// of a presence-tracking field. Zero occurrences on the wire leave the
// holder untouched (absent); one occurrence overwrites it.
type Optional[M Message] struct {
	newFn func() M
	value M
	has   bool
}

// NewOptional creates an empty Optional. newFn is the default producer
// invoked to materialize a fresh M each time a field is read into this
// holder; it is never called while writing.
func NewOptional[M Message](newFn func() M) *Optional[M] {
	return &Optional[M]{newFn: newFn}
}

// Get returns the current value and whether one is present.
func (o *Optional[M]) Get() (M, bool) {
	return o.value, o.has
}

// Set overwrites the holder with v, marking it present.
func (o *Optional[M]) Set(v M) {
	o.value = v
	o.has = true
}

// WriteOptional writes tag's field if o holds a value, and does nothing
// otherwise.
func WriteOptional[M Message](w *codec.Writer, tag uint32, o *Optional[M]) error {
	if v, ok := o.Get(); ok {
		return WriteField(w, tag, v)
	}
	return nil
}

// ReadOptional decodes field into a freshly produced M and stores it in o,
// overwriting whatever was previously held.
func ReadOptional[M Message](field codec.WireField, o *Optional[M]) error {
	v := o.newFn()
	if err := ReadInto(field, v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}
