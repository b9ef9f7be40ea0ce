// Package aset implements RecurrentEventSet: a named, identifiable boolean
// expression of RecurrentEvents, with point/interval containment and a
// lazy forward enumeration of the instant ranges the whole expression is
// true on.
package aset

import (
	"github.com/google/uuid"

	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
)

// RecurrentEventSet pairs an expression tree with a stable identifier used
// solely as a foreign-key handle by external collaborators (the relational
// adapter); the ID is never part of the JSON wire form the expression
// round-trips through.
type RecurrentEventSet struct {
	ID   uuid.UUID
	Expr *aexpr.Node
}

// New builds a RecurrentEventSet with a freshly generated ID.
func New(expr *aexpr.Node) (*RecurrentEventSet, error) {
	return NewWithID(uuid.New(), expr)
}

// NewWithID builds a RecurrentEventSet with a caller-supplied ID, e.g. one
// loaded back from storage.
func NewWithID(id uuid.UUID, expr *aexpr.Node) (*RecurrentEventSet, error) {
	if expr == nil {
		return nil, aerr.NewStructural("aset: nil expression")
	}
	if err := expr.Validate(); err != nil {
		return nil, err
	}
	return &RecurrentEventSet{ID: id, Expr: expr}, nil
}

// Contains reports whether the single instant t satisfies the expression.
func (s *RecurrentEventSet) Contains(t acalendar.Instant) bool {
	v, ok := aexpr.Walk(s.Expr,
		func(re *arecur.RecurrentEvent) (bool, bool) { return re.Contains(t), true },
		boolOpFn,
	)
	return ok && v
}

// ContainsInterval reports whether the closed interval [lo, hi] satisfies
// the expression: every leaf is evaluated against both endpoints and the
// same straddling rules as RecurrentEvent.ContainsInterval apply.
func (s *RecurrentEventSet) ContainsInterval(lo, hi acalendar.Instant) bool {
	v, ok := aexpr.Walk(s.Expr,
		func(re *arecur.RecurrentEvent) (bool, bool) { return re.ContainsInterval(lo, hi), true },
		boolOpFn,
	)
	return ok && v
}

func boolOpFn(kind aexpr.Kind, args []bool) (bool, bool) {
	switch kind {
	case aexpr.KindAnd:
		for _, a := range args {
			if !a {
				return false, true
			}
		}
		return true, true
	case aexpr.KindOr:
		for _, a := range args {
			if a {
				return true, true
			}
		}
		return false, true
	case aexpr.KindNot:
		if len(args) != 1 {
			return false, false
		}
		return !args[0], true
	default:
		return false, false
	}
}
