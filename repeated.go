package tinyproto

import (
	"fmt"

	"github.com/tinyproto/tinyproto/src/codec"
)

// Repeated holds zero or more values of a message type in insertion
// order, each encoding as an independent wire field sharing one tag.
// Packed encoding is neither produced nor accepted.
//
// capacity bounds the number of elements Append will accept, modeling a
// fixed-capacity embedded container; a capacity of 0 means unbounded.
type Repeated[M Message] struct {
	newFn    func() M
	items    []M
	capacity int
}

// NewRepeated creates an empty Repeated with room for up to capacity
// elements (0 for unbounded). newFn is the default producer invoked for
// each element read from the wire.
func NewRepeated[M Message](newFn func() M, capacity int) *Repeated[M] {
	var items []M
	if capacity > 0 {
		items = make([]M, 0, capacity)
	}
	return &Repeated[M]{newFn: newFn, capacity: capacity, items: items}
}

// Iter returns the current elements in insertion order.
func (r *Repeated[M]) Iter() []M { return r.items }

// Len returns the number of elements currently held.
func (r *Repeated[M]) Len() int { return len(r.items) }

// Append adds v, failing if the holder is already at capacity.
func (r *Repeated[M]) Append(v M) error {
	if r.capacity > 0 && len(r.items) >= r.capacity {
		return fmt.Errorf("%w: repeated field at capacity %d", codec.ErrRead, r.capacity)
	}
	r.items = append(r.items, v)
	return nil
}

// WriteRepeated emits one independent tag-prefixed field per element, in
// insertion order.
func WriteRepeated[M Message](w *codec.Writer, tag uint32, r *Repeated[M]) error {
	for _, v := range r.Iter() {
		if err := WriteField(w, tag, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadRepeated decodes field into a freshly produced element and appends
// it to r.
func ReadRepeated[M Message](field codec.WireField, r *Repeated[M]) error {
	v := r.newFn()
	if err := ReadInto(field, v); err != nil {
		return err
	}
	return r.Append(v)
}
