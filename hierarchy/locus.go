package hierarchy

import (
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
)

type locusDoc struct{}

func (locusDoc) CoordinateSystem() string { return "Euclidean" }

// Locus is a Hierarchy-backed parametric curve: H's single free Given
// slot is a scalar parameter t (conventionally ranging over [0,1], or
// wrapping at the underlying curve's own period), and H's recipe
// itself carries the driving curve (baked in as a Fixed node) and the
// point-on-curve construction that turns t into a coordinate —
// typically a kig.constrained_point Apply node. Because the
// constraint lives inside the recipe rather than behind a Go closure,
// a Locus is just a Hierarchy: it serializes and round-trips through
// save/load exactly like any other.
type Locus struct {
	H Hierarchy
}

// NewLocus wraps a Hierarchy whose lone free Given is the scalar
// parameter driving the locus.
func NewLocus(h Hierarchy) Locus {
	return Locus{H: h}
}

// Sample evaluates the locus at n evenly spaced parameter values
// across [0,1], returning the traced point's coordinate at each —
// skipping samples where the Hierarchy's result is invalid, so a
// locus with a few degenerate parameter values still renders the
// curve around them.
//
// Complexity: O(n) Hierarchy evaluations.
func (l Locus) Sample(n int) []imp.Coordinate {
	if n <= 0 {
		return nil
	}
	ts := make([]float64, n)
	for i := 0; i < n; i++ {
		if n == 1 {
			ts[i] = 0
			continue
		}
		ts[i] = float64(i) / float64(n-1)
	}
	return l.SampleAt(ts)
}

// SampleAt evaluates the locus at exactly the given parameter values,
// in order, skipping any that evaluate to an invalid result. Unlike
// Sample's evenly-spaced sweep, callers that need specific parameter
// values (e.g. reproducing a particular sweep of a driving point) can
// reach them directly through this method rather than reimplementing
// evaluateAt.
func (l Locus) SampleAt(ts []float64) []imp.Coordinate {
	out := make([]imp.Coordinate, 0, len(ts))
	for _, t := range ts {
		c, ok := l.evaluateAt(t)
		if !ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// evaluateAt builds and calculates H for parameter t, returning the
// result point's coordinate.
func (l Locus) evaluateAt(t float64) (imp.Coordinate, bool) {
	built, err := l.H.BuildObjects([]imp.Imp{imp.NewDoubleImp(t)})
	if err != nil {
		return imp.Coordinate{}, false
	}
	sorted, err := objgraph.Sort(built)
	if err != nil {
		return imp.Coordinate{}, false
	}
	objgraph.Calc(locusDoc{}, sorted)

	result := l.H.FinalObject(built).Imp()
	p, ok := result.(imp.PointImp)
	if !ok || !result.Valid() {
		return imp.Coordinate{}, false
	}
	return p.Coord, true
}

// AsPolygon renders n samples of the locus as an open polygonal
// chain — kigcore's stand-in for a dedicated locus Imp kind, reusing
// PolygonImp's existing rendering and hit-testing rather than adding a
// new Imp variant solely for display purposes.
func (l Locus) AsPolygon(n int) imp.PolygonImp {
	return imp.NewPolygonImp(l.Sample(n), false, true)
}
