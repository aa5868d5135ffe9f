package hierarchy_test

import (
	"testing"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/hierarchy"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoc struct{}

func (stubDoc) CoordinateSystem() string { return "Euclidean" }

// midpointHierarchy builds a two-Given, one-Apply recipe computing the
// midpoint of its two free point arguments.
func midpointHierarchy() hierarchy.Hierarchy {
	return hierarchy.Hierarchy{Nodes: []hierarchy.Node{
		{Kind: hierarchy.Given, GivenType: imp.PointType},
		{Kind: hierarchy.Given, GivenType: imp.PointType},
		{Kind: hierarchy.Apply, ApplyType: objtype.MidpointType, ApplyArgs: []int{0, 1}},
	}}
}

func TestBuildObjectsAndCalc(t *testing.T) {
	h := midpointHierarchy()
	a := imp.NewPointImp(imp.Coordinate{X: 0, Y: 0})
	b := imp.NewPointImp(imp.Coordinate{X: 4, Y: 2})

	built, err := h.BuildObjects([]imp.Imp{a, b})
	require.NoError(t, err)
	require.Len(t, built, 3)

	sorted, err := objgraph.Sort(built)
	require.NoError(t, err)
	objgraph.Calc(stubDoc{}, sorted)

	result := h.FinalObject(built).Imp().(imp.PointImp)
	assert.InDelta(t, 2, result.Coord.X, 1e-9)
	assert.InDelta(t, 1, result.Coord.Y, 1e-9)
}

func TestBuildObjectsWrongArgCount(t *testing.T) {
	h := midpointHierarchy()
	_, err := h.BuildObjects([]imp.Imp{imp.NewPointImp(imp.Coordinate{})})
	require.ErrorIs(t, err, hierarchy.ErrWrongArgCount)
}

func TestArgParserMatchesFreeGivens(t *testing.T) {
	h := midpointHierarchy()
	spec := h.ArgParser()
	assert.Equal(t, 2, spec.NumFixed())

	pts := []imp.Imp{
		imp.NewPointImp(imp.Coordinate{X: 1}),
		imp.NewPointImp(imp.Coordinate{X: 2}),
	}
	result, _ := argspec.Check(spec, pts)
	assert.Equal(t, argspec.Complete, result)
}

func TestWithFixedArgsReducesFreeGivens(t *testing.T) {
	h := midpointHierarchy()
	fixed := h.WithFixedArgs(map[int]imp.Imp{0: imp.NewPointImp(imp.Coordinate{X: 9, Y: 9})})

	assert.Equal(t, 1, fixed.NumGivens())

	built, err := fixed.BuildObjects([]imp.Imp{imp.NewPointImp(imp.Coordinate{X: 1, Y: 1})})
	require.NoError(t, err)
	sorted, err := objgraph.Sort(built)
	require.NoError(t, err)
	objgraph.Calc(stubDoc{}, sorted)

	result := fixed.FinalObject(built).Imp().(imp.PointImp)
	assert.InDelta(t, 5, result.Coord.X, 1e-9)
	assert.InDelta(t, 5, result.Coord.Y, 1e-9)
}

func TestTransformFinalObject(t *testing.T) {
	h := midpointHierarchy()
	transformed := h.TransformFinalObject(objtype.ApplyTransformationType, imp.TransformationType)

	assert.Equal(t, 3, transformed.NumGivens())

	args := []imp.Imp{
		imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}),
		imp.NewPointImp(imp.Coordinate{X: 4, Y: 0}),
		imp.NewTransformationImp(imp.TranslationTransformation(imp.Coordinate{X: 1, Y: 1})),
	}
	built, err := transformed.BuildObjects(args)
	require.NoError(t, err)
	sorted, err := objgraph.Sort(built)
	require.NoError(t, err)
	objgraph.Calc(stubDoc{}, sorted)

	result := transformed.FinalObject(built).Imp().(imp.PointImp)
	assert.InDelta(t, 3, result.Coord.X, 1e-9)
	assert.InDelta(t, 1, result.Coord.Y, 1e-9)
}

func TestLocusSamplesCircle(t *testing.T) {
	h := hierarchy.Hierarchy{Nodes: []hierarchy.Node{
		{Kind: hierarchy.Given, GivenType: imp.DoubleType},
		{Kind: hierarchy.Fixed, FixedValue: imp.NewCircleImp(imp.Coordinate{X: 0, Y: 0}, 1)},
		{Kind: hierarchy.Apply, ApplyType: objtype.ConstrainedPointType, ApplyArgs: []int{1, 0}},
		{Kind: hierarchy.Apply, ApplyType: objtype.MidpointType, ApplyArgs: []int{2, 2}},
	}}
	loc := hierarchy.NewLocus(h)
	samples := loc.Sample(8)
	assert.Len(t, samples, 8)

	poly := loc.AsPolygon(8)
	assert.True(t, poly.Open)
	assert.False(t, poly.Inside)
}
