// Package aunit defines the recurrence Unit vocabulary shared by the
// calendar arithmetic, recurrent-event, and expression layers.
package aunit

import "strings"

// Unit is one of the seven granularities a RecurrentEvent can be expressed
// or recurred in.
type Unit string

// The supported units, ordered from finest to coarsest granularity.
const (
	Second Unit = "second"
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

// order gives the total ordering referenced throughout the spec:
// second < minute < hour < day < week < month < year.
var order = map[Unit]int{
	Second: 0,
	Minute: 1,
	Hour:   2,
	Day:    3,
	Week:   4,
	Month:  5,
	Year:   6,
}

// base is the additive correction applied when mapping "the nth unit" to a
// one-based position: zero-based clock units, one-based calendar units.
var base = map[Unit]int{
	Second: 0,
	Minute: 0,
	Hour:   0,
	Day:    1,
	Week:   1,
	Month:  1,
	Year:   1,
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}

// IsValid reports whether u is one of the seven known units.
func (u Unit) IsValid() bool {
	_, ok := order[u]
	return ok
}

// IsEmpty reports whether u is the zero value.
func (u Unit) IsEmpty() bool {
	return strings.TrimSpace(string(u)) == ""
}

// Order returns u's position in the second < ... < year ordering. Callers
// must only invoke this on a valid unit; it returns -1 for an unknown one.
func Order(u Unit) int {
	if o, ok := order[u]; ok {
		return o
	}
	return -1
}

// Base returns the additive correction for u: 0 for clock units
// (second/minute/hour), 1 for calendar units (day/week/month/year).
func Base(u Unit) int {
	return base[u]
}

// Less reports whether a recurs more finely than b, i.e. order(a) < order(b).
func Less(a, b Unit) bool {
	return Order(a) < Order(b)
}

// All returns the seven units in increasing order of granularity.
func All() []Unit {
	return []Unit{Second, Minute, Hour, Day, Week, Month, Year}
}
