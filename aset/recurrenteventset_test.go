package aset

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfluger/atempo/acalendar"
	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
	"github.com/jpfluger/atempo/aunit"
)

func mustUTC(s string) acalendar.Instant {
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return acalendar.New(tt)
}

func unitPtr(u aunit.Unit) *aunit.Unit { return &u }

func businessHoursLeaf(t *testing.T) *aexpr.Node {
	t.Helper()
	re, err := arecur.New(9, 17, aunit.Hour, unitPtr(aunit.Day))
	require.NoError(t, err)
	return aexpr.NewLeaf(re)
}

func weekdayLeaf(t *testing.T) *aexpr.Node {
	t.Helper()
	re, err := arecur.New(1, 6, aunit.Day, unitPtr(aunit.Week))
	require.NoError(t, err)
	return aexpr.NewLeaf(re)
}

func TestNew_GeneratesID(t *testing.T) {
	s, err := New(businessHoursLeaf(t))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
}

func TestNewWithID_RejectsNilExpr(t *testing.T) {
	_, err := NewWithID(uuid.New(), nil)
	assert.Error(t, err)
}

func TestContains_BusinessHoursAndWeekday(t *testing.T) {
	and, err := aexpr.NewAnd(businessHoursLeaf(t), weekdayLeaf(t))
	require.NoError(t, err)
	s, err := New(and)
	require.NoError(t, err)

	assert.True(t, s.Contains(mustUTC("2024-03-14T10:00:00Z")))  // Thursday, 10am
	assert.False(t, s.Contains(mustUTC("2024-03-16T10:00:00Z"))) // Saturday
	assert.False(t, s.Contains(mustUTC("2024-03-14T20:00:00Z"))) // after hours
}

func TestContains_Or(t *testing.T) {
	or, err := aexpr.NewOr(businessHoursLeaf(t), weekdayLeaf(t))
	require.NoError(t, err)
	s, err := New(or)
	require.NoError(t, err)

	// Saturday evening: neither leaf true.
	assert.False(t, s.Contains(mustUTC("2024-03-16T20:00:00Z")))
	// Saturday during business hours: weekday leaf false, hours leaf true -> OR true.
	assert.True(t, s.Contains(mustUTC("2024-03-16T10:00:00Z")))
}

func TestContains_Not(t *testing.T) {
	not, err := aexpr.NewNot(weekdayLeaf(t))
	require.NoError(t, err)
	s, err := New(not)
	require.NoError(t, err)

	assert.True(t, s.Contains(mustUTC("2024-03-16T10:00:00Z")))  // Saturday
	assert.False(t, s.Contains(mustUTC("2024-03-14T10:00:00Z"))) // Thursday
}

func TestContainsInterval(t *testing.T) {
	s, err := New(businessHoursLeaf(t))
	require.NoError(t, err)

	assert.True(t, s.ContainsInterval(mustUTC("2024-03-14T10:00:00Z"), mustUTC("2024-03-14T11:00:00Z")))
	assert.False(t, s.ContainsInterval(mustUTC("2024-03-14T16:00:00Z"), mustUTC("2024-03-14T18:00:00Z")))
}
