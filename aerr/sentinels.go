package aerr

import (
	"errors"
	"fmt"
)

// The three error kinds recurrent-event construction and calendar
// arithmetic can produce. Containment and forward enumeration never
// surface these; they only arise from construction, JSON decoding, or a
// direct call to the calendar arithmetic in acalendar.
var (
	// ErrOverflow marks calendar arithmetic that would leave the
	// representable [0001-01-01, 9999-12-31] range.
	ErrOverflow = errors.New("atempo: calendar overflow")

	// ErrStructural marks a malformed expression or recurrent-event shape:
	// bad operator token, wrong arity, invalid unit, unit/recurrence
	// ordering violation, or start >= stop.
	ErrStructural = errors.New("atempo: structural error")

	// ErrInvalidArgument marks a caller-supplied argument that is
	// otherwise well-formed but not acceptable at the call site.
	ErrInvalidArgument = errors.New("atempo: invalid argument")
)

// NewOverflow builds an *Error wrapping ErrOverflow with a descriptive
// message, preserving errors.Is(_, ErrOverflow).
func NewOverflow(msg string) *Error {
	return NewError(fmt.Errorf("%w: %s", ErrOverflow, msg))
}

// NewStructural builds an *Error wrapping ErrStructural.
func NewStructural(msg string) *Error {
	return NewError(fmt.Errorf("%w: %s", ErrStructural, msg))
}

// NewInvalidArgument builds an *Error wrapping ErrInvalidArgument.
func NewInvalidArgument(msg string) *Error {
	return NewError(fmt.Errorf("%w: %s", ErrInvalidArgument, msg))
}
