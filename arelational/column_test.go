package arelational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfluger/atempo/aexpr"
	"github.com/jpfluger/atempo/arecur"
	"github.com/jpfluger/atempo/aset"
	"github.com/jpfluger/atempo/aunit"
)

func unitPtr(u aunit.Unit) *aunit.Unit { return &u }

func mustSet(t *testing.T) *aset.RecurrentEventSet {
	t.Helper()
	re, err := arecur.New(9, 17, aunit.Hour, unitPtr(aunit.Day))
	require.NoError(t, err)
	s, err := aset.New(aexpr.NewLeaf(re))
	require.NoError(t, err)
	return s
}

func TestColumn_ValueThenScan(t *testing.T) {
	s := mustSet(t)
	col := Column{Set: s}

	v, err := col.Value()
	require.NoError(t, err)
	raw, ok := v.([]byte)
	require.True(t, ok)

	var out Column
	require.NoError(t, out.Scan(raw))
	require.NotNil(t, out.Set)
	assert.True(t, out.Set.Expr.IsLeaf())
}

func TestColumn_ScanNil(t *testing.T) {
	var col Column
	require.NoError(t, col.Scan(nil))
	assert.Nil(t, col.Set)
}

func TestColumn_ScanRejectsBadType(t *testing.T) {
	var col Column
	err := col.Scan(42)
	assert.Error(t, err)
}

func TestColumn_ValueNilSet(t *testing.T) {
	var col Column
	v, err := col.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDDL_NonEmpty(t *testing.T) {
	assert.Contains(t, DDL(), "CREATE TABLE")
	assert.Contains(t, UninstallDDL(), "DROP TABLE")
}
