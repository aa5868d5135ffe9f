package construction_test

import (
	"testing"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/construction"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoc struct{}

func (stubDoc) CoordinateSystem() string { return "Euclidean" }

func TestConstructionModeTwoClicksComplete(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)

	p1 := imp.NewPointImp(imp.Coordinate{X: 0, Y: 0})
	result, err := m.Click("obj-a", p1)
	require.NoError(t, err)
	assert.Equal(t, argspec.Valid, result)
	assert.False(t, m.IsComplete())

	p2 := imp.NewPointImp(imp.Coordinate{X: 4, Y: 2})
	result, err = m.Click("obj-b", p2)
	require.NoError(t, err)
	assert.Equal(t, argspec.Complete, result)
	assert.True(t, m.IsComplete())

	out, err := m.Build(stubDoc{})
	require.NoError(t, err)
	got := out.(imp.PointImp)
	assert.InDelta(t, 2, got.Coord.X, 1e-9)
}

func TestCursorHypothesisSnapsToGrid(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	m.SetSnapToGrid(true, 2)

	result, snapped := m.CursorHypothesis(imp.Coordinate{X: 2.9, Y: 1.1})
	assert.Equal(t, argspec.Valid, result)
	assert.Equal(t, imp.Coordinate{X: 2, Y: 2}, snapped.Coord)
}

func TestHypothesisDoesNotMutate(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	before := len(m.Accepted())

	m.Hypothesis(imp.NewPointImp(imp.Coordinate{X: 1, Y: 1}))
	assert.Len(t, m.Accepted(), before)
}

func TestRejectedClickLeavesStateUnchanged(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	_, err := m.Click("bad", imp.NewStringImp("not a point"))
	require.ErrorIs(t, err, construction.ErrRejected)
	assert.Empty(t, m.Accepted())
}

func TestBuildBeforeCompleteErrors(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	_, err := m.Build(stubDoc{})
	require.ErrorIs(t, err, construction.ErrNotComplete)
}

func TestCancelClearsProgress(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	_, _ = m.Click("a", imp.NewPointImp(imp.Coordinate{X: 1}))
	m.Cancel()
	assert.Empty(t, m.Accepted())
}

func TestAlreadySelectedRejectedWithoutAllowReselect(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	p := imp.NewPointImp(imp.Coordinate{X: 1, Y: 1})
	_, err := m.Click("same-handle", p)
	require.NoError(t, err)

	_, err = m.Click("same-handle", p)
	require.ErrorIs(t, err, construction.ErrAlreadySelected)
}

func TestUndoRemovesLastAccepted(t *testing.T) {
	m := construction.NewMode(objtype.MidpointType)
	_, _ = m.Click("a", imp.NewPointImp(imp.Coordinate{X: 1}))
	_, _ = m.Click("b", imp.NewPointImp(imp.Coordinate{X: 2}))
	m.Undo()
	assert.Len(t, m.Accepted(), 1)
}
