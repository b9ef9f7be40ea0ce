package arelational

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jpfluger/atempo/acodec"
	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aset"
)

var validate = validator.New()

// Row is the flat shape a query against atempo_recurrent_event_sets scans
// into, ahead of being promoted into a *aset.RecurrentEventSet.
type Row struct {
	ID   uuid.UUID       `db:"id" validate:"required,uuid4"`
	Expr json.RawMessage `db:"expr" validate:"required"`
}

// Validate checks r's struct tags and that Expr is a well-formed wire
// expression.
func (r *Row) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if !acodec.Validate(r.Expr) {
		return aerr.NewStructural("arelational: row expr is not a well-formed wire expression")
	}
	return nil
}

// ToSet promotes r into a RecurrentEventSet, decoding its wire expression.
func (r *Row) ToSet() (*aset.RecurrentEventSet, error) {
	expr, err := acodec.FromJSON(r.Expr)
	if err != nil {
		return nil, err
	}
	return aset.NewWithID(r.ID, expr)
}

// FromSet flattens a RecurrentEventSet into its row representation.
func FromSet(s *aset.RecurrentEventSet) (*Row, error) {
	raw, err := acodec.ToJSON(s.Expr)
	if err != nil {
		return nil, err
	}
	return &Row{ID: s.ID, Expr: raw}, nil
}
