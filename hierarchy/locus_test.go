package hierarchy_test

import (
	"testing"

	"github.com/gokig/kigcore/hierarchy"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// circleMidpointLocus builds a Hierarchy whose sole free Given is a
// scalar parameter t, constraining a point to the unit circle and
// taking its midpoint with a fixed point at (2,0).
func circleMidpointLocus() hierarchy.Locus {
	unitCircle := imp.NewCircleImp(imp.Coordinate{X: 0, Y: 0}, 1)
	h := hierarchy.Hierarchy{Nodes: []hierarchy.Node{
		{Kind: hierarchy.Given, GivenType: imp.DoubleType},
		{Kind: hierarchy.Fixed, FixedValue: unitCircle},
		{Kind: hierarchy.Apply, ApplyType: objtype.ConstrainedPointType, ApplyArgs: []int{1, 0}},
		{Kind: hierarchy.Fixed, FixedValue: imp.NewPointImp(imp.Coordinate{X: 2, Y: 0})},
		{Kind: hierarchy.Apply, ApplyType: objtype.MidpointType, ApplyArgs: []int{2, 3}},
	}}
	return hierarchy.NewLocus(h)
}

func TestLocusHasSingleScalarGiven(t *testing.T) {
	l := circleMidpointLocus()
	assert.Equal(t, 1, l.H.NumGivens())
	assert.Equal(t, imp.DoubleType, l.H.ArgParser().Slots[0].RequiredType)
}

func TestLocusSampleAtExactParameters(t *testing.T) {
	l := circleMidpointLocus()

	got := l.SampleAt([]float64{0, 0.25, 0.5, 0.75})
	require.Len(t, got, 4)

	want := []imp.Coordinate{
		{X: 1.5, Y: 0},
		{X: 1, Y: 0.5},
		{X: 0.5, Y: 0},
		{X: 1, Y: -0.5},
	}
	for i, w := range want {
		assert.InDelta(t, w.X, got[i].X, 1e-9)
		assert.InDelta(t, w.Y, got[i].Y, 1e-9)
	}
}

func TestLocusSampleEvenlySpacedAcrossUnitInterval(t *testing.T) {
	l := circleMidpointLocus()

	got := l.Sample(5)
	require.Len(t, got, 5)
	// t=0 and t=1 both land on the circle's rightmost point, so the
	// first and last samples coincide.
	assert.InDelta(t, got[0].X, got[4].X, 1e-9)
	assert.InDelta(t, got[0].Y, got[4].Y, 1e-9)
}

func TestLocusAsPolygonProducesOpenChain(t *testing.T) {
	l := circleMidpointLocus()
	poly := l.AsPolygon(4)
	assert.True(t, poly.Valid())
}
