package tinyproto

import (
	"fmt"

	"github.com/tinyproto/tinyproto/src/codec"
)

// WalkFn is called once per top-level field found by WalkFields.
type WalkFn func(field codec.WireField) (cont bool, err error)

// WalkFields iterates over every top-level field in buf without knowing
// its schema, calling fn for each one. It stops at the first field whose
// header or payload is malformed, or as soon as fn returns false or an
// error.
//
// This is the untyped counterpart to Parse: useful for inspecting a
// message whose schema isn't available to the caller (debugging tools,
// logging a truncated/rejected buffer) rather than for ordinary decoding,
// which should go through a generated Message implementation instead.
func WalkFields(r *codec.Reader, fn WalkFn) error {
	for !r.EOF() {
		field, err := r.ReadField()
		if err != nil {
			return fmt.Errorf("WalkFields: %w", err)
		}
		cont, err := fn(field)
		if err != nil || !cont {
			return err
		}
	}
	return nil
}
