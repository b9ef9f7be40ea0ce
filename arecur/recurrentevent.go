// Package arecur implements the RecurrentEvent leaf: a half-open position
// range [start, stop) measured in Unit against an optional Recurrence
// window, plus point/interval containment and forward enumeration.
package arecur

import (
	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aunit"
)

// RecurrentEvent names the half-open position range [Start, Stop) measured
// in Unit. When Recurrence is nil the range anchors once at the epoch
// (acalendar.Min); when set, it re-anchors at the start of every
// Recurrence window, recurring forever.
type RecurrentEvent struct {
	Start      int
	Stop       int
	Unit       aunit.Unit
	Recurrence *aunit.Unit
}

// New builds a RecurrentEvent, rejecting an invalid unit or a
// unit/recurrence pair that isn't strictly finer-than-coarser. It does not
// reject Start >= Stop: a degenerate, permanently-empty event is a valid
// (if useless) value, and acodec.Validate is the layer responsible for
// rejecting that shape in wire input.
func New(start, stop int, unit aunit.Unit, recurrence *aunit.Unit) (*RecurrentEvent, error) {
	if !unit.IsValid() {
		return nil, aerr.NewStructural("arecur: invalid unit " + unit.String())
	}
	if recurrence != nil {
		if !recurrence.IsValid() {
			return nil, aerr.NewStructural("arecur: invalid recurrence unit " + recurrence.String())
		}
		if !aunit.Less(unit, *recurrence) {
			return nil, aerr.NewStructural("arecur: unit must recur more finely than recurrence")
		}
	}
	return &RecurrentEvent{Start: start, Stop: stop, Unit: unit, Recurrence: recurrence}, nil
}

// anchor returns the start of the recurrence window containing t, or
// acalendar.Min when this event doesn't recur.
func (re *RecurrentEvent) anchor(t acalendar.Instant) acalendar.Instant {
	if re.Recurrence == nil {
		return acalendar.Min
	}
	return acalendar.Floor(t, *re.Recurrence)
}

// position measures t's offset within its recurrence window, in Unit, with
// the base correction applied.
func (re *RecurrentEvent) position(anchor, t acalendar.Instant) int {
	return int(acalendar.Delta(anchor, acalendar.Floor(t, re.Unit), re.Unit)) + aunit.Base(re.Unit)
}

// Contains reports whether the single instant t falls in [Start, Stop).
func (re *RecurrentEvent) Contains(t acalendar.Instant) bool {
	p := re.position(re.anchor(t), t)
	return re.Start <= p && p < re.Stop
}

// ContainsInterval reports whether both endpoints of [lo, hi] measure into
// [Start, Stop) and fall within the same recurrence window; an interval
// straddling a window boundary is never contained.
func (re *RecurrentEvent) ContainsInterval(lo, hi acalendar.Instant) bool {
	if hi.Before(lo) {
		return false
	}
	anchorLo := re.anchor(lo)
	anchorHi := re.anchor(hi)
	if re.Recurrence != nil && !anchorLo.Equal(anchorHi) {
		return false
	}
	pLo := re.position(anchorLo, lo)
	pHi := re.position(anchorHi, hi)
	return re.Start <= pLo && pLo < re.Stop && re.Start <= pHi && pHi < re.Stop
}
