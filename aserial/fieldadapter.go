// Package aserial gives RecurrentEventSet an HTTP/field serializer
// contract: read produces wire JSON, write validates wire JSON before
// decoding it. Grounded on a Django REST Framework field's
// to_representation/to_internal_value split, translated to Go idiom.
package aserial

import (
	"github.com/jpfluger/atempo/acodec"
	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aset"
)

// FieldAdapter reads and writes a RecurrentEventSet's expression as wire
// JSON, the shape a web-framework field binding or admin form needs.
type FieldAdapter interface {
	// ToJSON renders s's expression as wire JSON, omitting the set's ID
	// (never part of the wire form).
	ToJSON(s *aset.RecurrentEventSet) ([]byte, error)

	// FromJSON validates and decodes raw wire JSON into a new
	// RecurrentEventSet with a freshly generated ID.
	FromJSON(raw []byte) (*aset.RecurrentEventSet, error)
}

// An admin-form widget rendering a FieldAdapter's output as an editable
// control is out of scope here; form widgets are not implemented.

// DefaultFieldAdapter is the straightforward FieldAdapter backed directly
// by acodec, with no additional transformation.
type DefaultFieldAdapter struct{}

var _ FieldAdapter = DefaultFieldAdapter{}

// ToJSON implements FieldAdapter.
func (DefaultFieldAdapter) ToJSON(s *aset.RecurrentEventSet) ([]byte, error) {
	if s == nil {
		return nil, aerr.NewInvalidArgument("aserial: nil set")
	}
	return acodec.ToJSON(s.Expr)
}

// FromJSON implements FieldAdapter. It validates the wire form before
// decoding, matching the fail-fast incorrect_format behavior of the
// adapter this is grounded on.
func (DefaultFieldAdapter) FromJSON(raw []byte) (*aset.RecurrentEventSet, error) {
	if !acodec.Validate(raw) {
		return nil, aerr.NewStructural("aserial: incorrect format")
	}
	expr, err := acodec.FromJSON(raw)
	if err != nil {
		return nil, err
	}
	return aset.New(expr)
}
