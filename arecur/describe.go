package arecur

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jpfluger/atempo/aunit"
)

// Describe renders a best-effort human-readable RFC5545 description of
// re's recurrence shape, bridging to the rrule-go vocabulary the way a
// calendar UI or admin form would. This is descriptive only: it is never
// used to evaluate containment or forward enumeration, which stay on the
// position-arithmetic defined in this package. Unit/recurrence pairs that
// don't map cleanly onto a single BYxxx rule fall back to a plain-English
// sentence describing the position range.
func (re *RecurrentEvent) Describe(dtstart time.Time) string {
	if re.Recurrence == nil {
		return fmt.Sprintf("positions %d to %d of %s, once, starting from the epoch", re.Start, re.Stop, re.Unit)
	}

	opt, ok := re.toROption(dtstart)
	if !ok {
		return fmt.Sprintf("positions %d to %d of %s, recurring every %s", re.Start, re.Stop, re.Unit, re.Recurrence.String())
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return fmt.Sprintf("positions %d to %d of %s, recurring every %s", re.Start, re.Stop, re.Unit, re.Recurrence.String())
	}
	return r.String()
}

// toROption attempts to express re as a single rrule-go ROption, covering
// the common single-step position ranges (one hour of the day, one day of
// the week, one day of the month, one month of the year). Multi-position
// ranges (e.g. "hours 9 through 17") are approximated as a BY-list.
func (re *RecurrentEvent) toROption(dtstart time.Time) (rrule.ROption, bool) {
	opt := rrule.ROption{Dtstart: dtstart, Interval: 1}

	switch *re.Recurrence {
	case aunit.Day:
		opt.Freq = rrule.DAILY
		hours := positionsOf(re.Start, re.Stop)
		if re.Unit != aunit.Hour || len(hours) == 0 {
			return opt, false
		}
		opt.Byhour = hours
		return opt, true
	case aunit.Week:
		opt.Freq = rrule.WEEKLY
		if re.Unit != aunit.Day {
			return opt, false
		}
		var days []rrule.Weekday
		for _, p := range positionsOf(re.Start, re.Stop) {
			days = append(days, isoWeekday(p))
		}
		if len(days) == 0 {
			return opt, false
		}
		opt.Byweekday = days
		return opt, true
	case aunit.Month:
		opt.Freq = rrule.MONTHLY
		if re.Unit != aunit.Day {
			return opt, false
		}
		days := positionsOf(re.Start, re.Stop)
		if len(days) == 0 {
			return opt, false
		}
		opt.Bymonthday = days
		return opt, true
	case aunit.Year:
		opt.Freq = rrule.YEARLY
		if re.Unit != aunit.Month {
			return opt, false
		}
		months := positionsOf(re.Start, re.Stop)
		if len(months) == 0 {
			return opt, false
		}
		opt.Bymonth = months
		return opt, true
	default:
		return opt, false
	}
}

// positionsOf expands [start, stop) into the concrete wire-format
// positions it names.
func positionsOf(start, stop int) []int {
	if stop-start > 31 {
		return nil // too wide to usefully enumerate as a BY-list
	}
	out := make([]int, 0, stop-start)
	for p := start; p < stop; p++ {
		out = append(out, p)
	}
	return out
}

// isoWeekday maps a Monday=1..Sunday=7 day-of-week position to rrule-go's
// weekday constants.
func isoWeekday(p int) rrule.Weekday {
	switch p {
	case 1:
		return rrule.MO
	case 2:
		return rrule.TU
	case 3:
		return rrule.WE
	case 4:
		return rrule.TH
	case 5:
		return rrule.FR
	case 6:
		return rrule.SA
	default:
		return rrule.SU
	}
}
