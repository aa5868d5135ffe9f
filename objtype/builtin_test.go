package objtype_test

import (
	"testing"

	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
)

func TestMidpointCalc(t *testing.T) {
	a := imp.NewPointImp(imp.Coordinate{X: 0, Y: 0})
	b := imp.NewPointImp(imp.Coordinate{X: 4, Y: 2})
	got := objtype.MidpointType.Calc([]imp.Imp{a, b}, stubDoc{})
	p, ok := got.(imp.PointImp)
	assert.True(t, ok)
	assert.Equal(t, imp.Coordinate{X: 2, Y: 1}, p.Coord)
}

func TestLineLineIntersection(t *testing.T) {
	l1 := imp.NewLineImp(imp.Coordinate{X: 0, Y: 0}, imp.Coordinate{X: 1, Y: 0})
	l2 := imp.NewLineImp(imp.Coordinate{X: 0, Y: -1}, imp.Coordinate{X: 0, Y: 1})
	got := objtype.LineLineIntersectionType.Calc([]imp.Imp{l1, l2}, stubDoc{})
	p, ok := got.(imp.PointImp)
	assert.True(t, ok)
	assert.InDelta(t, 0, p.Coord.X, 1e-9)
	assert.InDelta(t, 0, p.Coord.Y, 1e-9)
}

func TestLineLineIntersectionParallelIsInvalid(t *testing.T) {
	l1 := imp.NewLineImp(imp.Coordinate{X: 0, Y: 0}, imp.Coordinate{X: 1, Y: 0})
	l2 := imp.NewLineImp(imp.Coordinate{X: 0, Y: 1}, imp.Coordinate{X: 1, Y: 1})
	got := objtype.LineLineIntersectionType.Calc([]imp.Imp{l1, l2}, stubDoc{})
	assert.False(t, got.Valid())
}

func TestPerpendicularLine(t *testing.T) {
	base := imp.NewLineImp(imp.Coordinate{X: 0, Y: 0}, imp.Coordinate{X: 1, Y: 0})
	through := imp.NewPointImp(imp.Coordinate{X: 5, Y: 5})
	got := objtype.PerpendicularLineType.Calc([]imp.Imp{through, base}, stubDoc{})
	l, ok := got.(imp.LineImp)
	assert.True(t, ok)
	// A line perpendicular to the horizontal base must be vertical:
	// passing through (5,5) and some other point with the same X.
	assert.True(t, l.Contains(imp.Coordinate{X: 5, Y: -20}, 1e-9, 1))
}

func TestFixedPointMove(t *testing.T) {
	replaced := objtype.FixedPointType.Move(nil, imp.Coordinate{X: 3, Y: 4}, nil)
	assert.Len(t, replaced, 2)
	assert.Equal(t, 3.0, replaced[0].(imp.DoubleImp).Value)
	assert.Equal(t, 4.0, replaced[1].(imp.DoubleImp).Value)
}

func TestPolygonByVerticesCalc(t *testing.T) {
	args := []imp.Imp{
		imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}),
		imp.NewPointImp(imp.Coordinate{X: 2, Y: 0}),
		imp.NewPointImp(imp.Coordinate{X: 2, Y: 2}),
	}
	got := objtype.PolygonByVerticesType.Calc(args, stubDoc{})
	p, ok := got.(imp.PolygonImp)
	assert.True(t, ok)
	assert.Len(t, p.Vertices, 3)
}

type stubDoc struct{}

func (stubDoc) CoordinateSystem() string { return "Euclidean" }
