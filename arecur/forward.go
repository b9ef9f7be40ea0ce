package arecur

import (
	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aunit"
)

// Pair is a half-open instant range [Lo, Hi).
type Pair struct {
	Lo acalendar.Instant
	Hi acalendar.Instant
}

// Forward is a lazy, external iterator over the instant ranges a
// RecurrentEvent is true on, from some starting point onward, in
// increasing order. Call Next repeatedly until it returns ok == false.
type Forward struct {
	re   *RecurrentEvent
	from acalendar.Instant
	trim bool

	done bool

	// non-recurring state
	recurring bool
	emitted   bool

	// recurring state
	anchor       acalendar.Instant
	firstIter    bool
	anchorFailed bool
}

// Forward builds a Forward iterator starting from "from". When trim is
// true, the first yielded pair is clipped so its Lo never precedes "from".
// When false, a recurring event's pair already in progress at "from" is
// yielded with its Lo unchanged, except that a Lo before the window anchor
// is clamped to the anchor; a non-recurring event's pair already in
// progress at "from" is not yielded at all.
func (re *RecurrentEvent) Forward(from acalendar.Instant, trim bool) *Forward {
	f := &Forward{re: re, from: from, trim: trim, firstIter: true}
	if re.Recurrence != nil {
		f.recurring = true
		f.anchor = acalendar.Floor(from, *re.Recurrence)
	}
	return f
}

// Next produces the next pair in the sequence. ok is false once the
// sequence is exhausted (non-recurring: after its single pair; recurring:
// once advancing the anchor would overflow the representable range).
func (f *Forward) Next() (Pair, bool) {
	if f.done {
		return Pair{}, false
	}
	if !f.recurring {
		return f.nextNonRecurring()
	}
	return f.nextRecurring()
}

func (f *Forward) nextNonRecurring() (Pair, bool) {
	f.done = true
	u := f.re.Unit
	first, err := acalendar.FloorAdd(acalendar.Min, int64(f.re.Start-aunit.Base(u)), u)
	if err != nil {
		return Pair{}, false
	}
	second, err := acalendar.FloorAdd(acalendar.Min, int64(f.re.Stop-aunit.Base(u)), u)
	if err != nil {
		return Pair{}, false
	}
	if f.from.After(first) && f.from.Before(second) && f.trim {
		first = f.from
	}
	if !f.from.After(first) {
		return Pair{Lo: first, Hi: second}, true
	}
	return Pair{}, false
}

func (f *Forward) nextRecurring() (Pair, bool) {
	u := f.re.Unit
	rec := *f.re.Recurrence

	first, err := acalendar.FloorAdd(f.anchor, int64(f.re.Start-aunit.Base(u)), u)
	if err != nil {
		f.done = true
		return Pair{}, false
	}
	second, err := acalendar.FloorAdd(f.anchor, int64(f.re.Stop-aunit.Base(u)), u)
	if err != nil {
		f.done = true
		return Pair{}, false
	}

	// A week measured inside a month-recurrence window can start its count
	// before the month itself begins (the first week of the month may be
	// only a few days long); clamp it back to the anchor.
	if u == aunit.Week && rec == aunit.Month && first.Before(f.anchor) {
		first = f.anchor
	}

	windowEnd, err := acalendar.FloorAdd(f.anchor, 1, rec)
	if err != nil {
		f.done = true
		return Pair{}, false
	}
	if second.After(windowEnd) {
		second = windowEnd
	}
	if first.After(windowEnd) {
		first = windowEnd
	}

	if f.firstIter {
		if f.from.After(first) {
			if f.trim {
				first = f.from
			} else if first.Before(f.anchor) {
				first = f.anchor
			}
		}
		f.firstIter = false
	}

	// Gapless shortcut: if this leaf's position range spans the entire
	// recurrence window, every subsequent window is identical and
	// contiguous with this one, so the whole remaining forward range
	// collapses into a single pair running to Max.
	unitsPerWindow, upwErr := acalendar.UnitsPerWindow(f.anchor, u, rec)
	if upwErr == nil && f.re.Start-aunit.Base(u) == 0 && int64(f.re.Stop-aunit.Base(u)) == unitsPerWindow {
		f.done = true
		return Pair{Lo: first, Hi: acalendar.Max}, true
	}

	pair := Pair{Lo: first, Hi: second}

	next, err := acalendar.Add(f.anchor, 1, rec)
	if err != nil {
		f.done = true
	} else {
		f.anchor = next
	}
	return pair, true
}
