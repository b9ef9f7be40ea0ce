package acalendar

import (
	"time"

	"github.com/jpfluger/atempo/aerr"
	"github.com/jpfluger/atempo/aunit"
)

// mondayIndex returns the ISO weekday offset from Monday: Monday=0 .. Sunday=6.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Floor truncates t down to the start of the window named by u. Week floors
// to the Monday of the containing ISO week; all other units floor to the
// conventional calendar boundary.
func Floor(t Instant, u aunit.Unit) Instant {
	tt := t.Time()
	switch u {
	case aunit.Second:
		return New(tt)
	case aunit.Minute:
		return New(time.Date(tt.Year(), tt.Month(), tt.Day(), tt.Hour(), tt.Minute(), 0, 0, time.UTC))
	case aunit.Hour:
		return New(time.Date(tt.Year(), tt.Month(), tt.Day(), tt.Hour(), 0, 0, 0, time.UTC))
	case aunit.Day:
		return New(time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC))
	case aunit.Week:
		day := New(time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC))
		return New(day.Time().AddDate(0, 0, -mondayIndex(tt)))
	case aunit.Month:
		return New(time.Date(tt.Year(), tt.Month(), 1, 0, 0, 0, 0, time.UTC))
	case aunit.Year:
		return New(time.Date(tt.Year(), 1, 1, 0, 0, 0, 0, time.UTC))
	default:
		return t
	}
}

// Delta measures the unsigned number of whole u-windows between a and b,
// counting from whichever of the two is earlier.
func Delta(a, b Instant, u aunit.Unit) int64 {
	earlier, later := a, b
	if b.Before(a) {
		earlier, later = b, a
	}
	switch u {
	case aunit.Second:
		return int64(later.Time().Sub(earlier.Time()) / time.Second)
	case aunit.Minute:
		return int64(later.Time().Sub(earlier.Time()) / time.Minute)
	case aunit.Hour:
		return int64(later.Time().Sub(earlier.Time()) / time.Hour)
	case aunit.Day:
		return int64(later.Time().Sub(earlier.Time()) / (24 * time.Hour))
	case aunit.Week:
		days := int64(later.Time().Sub(earlier.Time()) / (24 * time.Hour))
		return (days + int64(mondayIndex(earlier.Time()))) / 7
	case aunit.Month:
		ey, em, _ := earlier.Time().Date()
		ly, lm, _ := later.Time().Date()
		return int64(ly-ey)*12 + int64(lm-em)
	case aunit.Year:
		return int64(later.Time().Year() - earlier.Time().Year())
	default:
		return 0
	}
}

// Add shifts t by n whole units of u, returning an Overflow error if the
// result would fall outside [Min, Max].
func Add(t Instant, n int64, u aunit.Unit) (Instant, error) {
	var result time.Time
	tt := t.Time()
	switch u {
	case aunit.Second:
		result = tt.Add(time.Duration(n) * time.Second)
	case aunit.Minute:
		result = tt.Add(time.Duration(n) * time.Minute)
	case aunit.Hour:
		result = tt.Add(time.Duration(n) * time.Hour)
	case aunit.Day:
		result = tt.AddDate(0, 0, int(n))
	case aunit.Week:
		result = tt.AddDate(0, 0, int(n)*7)
	case aunit.Month:
		result = tt.AddDate(0, int(n), 0)
	case aunit.Year:
		result = tt.AddDate(int(n), 0, 0)
	default:
		return Instant{}, aerr.NewStructural("acalendar: unknown unit")
	}
	out := New(result)
	if out.Before(Min) || out.After(Max) {
		return Instant{}, aerr.NewOverflow("acalendar: result outside [0001-01-01, 9999-12-31]")
	}
	return out, nil
}

// FloorAdd is the common "advance the anchor by n units of u, then floor to
// u" composition used throughout the recurrent-event forward algorithm.
func FloorAdd(t Instant, n int64, u aunit.Unit) (Instant, error) {
	shifted, err := Add(t, n, u)
	if err != nil {
		return Instant{}, err
	}
	return Floor(shifted, u), nil
}

// UnitsPerWindow counts how many whole u-windows fit between anchor and the
// start of anchor's next recurrence window. It is recomputed per anchor
// rather than held in a static table because variable-length windows (days
// in a month, weeks in a month) depend on the specific anchor in play.
func UnitsPerWindow(anchor Instant, u, recurrence aunit.Unit) (int64, error) {
	windowEnd, err := FloorAdd(anchor, 1, recurrence)
	if err != nil {
		return 0, err
	}
	return Delta(anchor, windowEnd, u), nil
}
