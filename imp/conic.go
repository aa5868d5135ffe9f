package imp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConicImp is a general conic section Ax²+Bxy+Cy²+Dx+Ey+F=0, stored as
// the 3x3 symmetric matrix
//
//	[ A    B/2  D/2 ]
//	[ B/2  C    E/2 ]
//	[ D/2  E/2  F   ]
//
// so that p^T M p = 0 for homogeneous p=(x,y,1), and so that applying
// a projective Transformation is the single congruence M' = T^-T M T^-1
// (gonum/mat carries the inverse/transpose/multiply machinery).
type ConicImp struct {
	baseImp
	m *mat.SymDense // 3x3
}

// NewConicImpFromCoefficients builds a ConicImp from the six
// Ax²+Bxy+Cy²+Dx+Ey+F coefficients.
func NewConicImpFromCoefficients(a, b, c, d, e, f float64) ConicImp {
	sym := mat.NewSymDense(3, []float64{
		a, b / 2, d / 2,
		b / 2, c, e / 2,
		d / 2, e / 2, f,
	})
	return ConicImp{baseImp: baseImp{typ: ConicType}, m: sym}
}

var _ Imp = ConicImp{}

// coefficients extracts A,B,C,D,E,F back out of the symmetric matrix.
func (c ConicImp) coefficients() (a, b, cc, d, e, f float64) {
	a = c.m.At(0, 0)
	b = 2 * c.m.At(0, 1)
	cc = c.m.At(1, 1)
	d = 2 * c.m.At(0, 2)
	e = 2 * c.m.At(1, 2)
	f = c.m.At(2, 2)
	return
}

// Evaluate returns the quadratic form p^T M p for p=(x,y,1): zero
// exactly on the conic.
func (c ConicImp) Evaluate(p Coordinate) float64 {
	a, b, cc, d, e, f := c.coefficients()
	return a*p.X*p.X + b*p.X*p.Y + cc*p.Y*p.Y + d*p.X + e*p.Y + f
}

func (c ConicImp) Valid() bool { return c.m != nil }
func (c ConicImp) Copy() Imp   { return c }

// Transform applies the congruence M' = T^-T M T^-1. A conic Transform
// is invalid only when T itself is singular; the result may legitimately
// change conic class (an affine map of an ellipse stays an ellipse, but
// a projective one need not), which kigcore does not attempt to classify
// eagerly — AttachPoint/foci below do that lazily and report false when
// the class does not support well-defined foci.
func (c ConicImp) Transform(t Transformation) Imp {
	inv, err := t.Inverse()
	if err != nil {
		return InvalidImp{}
	}
	var tmp, out mat.Dense
	tmp.Mul(inv.m.T(), c.m)
	out.Mul(&tmp, inv.m)
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, (out.At(i, j)+out.At(j, i))/2)
		}
	}
	return ConicImp{baseImp: baseImp{typ: ConicType}, m: sym}
}

func (c ConicImp) Equals(other Imp) bool {
	o, ok := other.(ConicImp)
	if !ok {
		return false
	}
	return mat.EqualApprox(c.m, o.m, 1e-9)
}

// centralForm diagonalizes the quadratic part via gonum's symmetric
// eigensolver and locates the conic's center (where the gradient
// vanishes). ok is false for a parabola (singular quadratic part),
// which has no center.
func (c ConicImp) centralForm() (center Coordinate, eigen *mat.EigenSym, fPrime float64, ok bool) {
	a, b, cc, d, e, f := c.coefficients()
	q := mat.NewSymDense(2, []float64{a, b / 2, b / 2, cc})

	var lin mat.VecDense
	lin.SetVec(0, d/2)
	lin.SetVec(1, e/2)

	var qd mat.Dense
	qd.CloneFrom(q)
	var qinv mat.Dense
	if err := qinv.Inverse(&qd); err != nil {
		return Coordinate{}, nil, 0, false
	}
	var centerVec mat.VecDense
	centerVec.MulVec(&qinv, &lin)
	centerVec.ScaleVec(-1, &centerVec)
	center = Coordinate{X: centerVec.AtVec(0), Y: centerVec.AtVec(1)}

	fPrime = f + 2*lin.AtVec(0)*center.X + 2*lin.AtVec(1)*center.Y

	var es mat.EigenSym
	if !es.Factorize(q, true) {
		return Coordinate{}, nil, 0, false
	}
	return center, &es, fPrime, true
}

// Foci returns the one or two foci of a central conic (ellipse or
// hyperbola). A parabola has a single focus that requires a different
// (vertex/directrix) derivation; that path is not yet implemented, and
// Foci reports ok=false for it (TODO: derive the parabola focus from
// its axis of symmetry and latus rectum).
func (c ConicImp) Foci() (f1, f2 Coordinate, ok bool) {
	center, es, fPrime, ok := c.centralForm()
	if !ok || fPrime == 0 {
		return Coordinate{}, Coordinate{}, false
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	lambda1, lambda2 := vals[0], vals[1]
	if lambda1*lambda2 <= 0 {
		// Hyperbola: one positive, one negative eigenvalue.
		return hyperbolaFoci(center, &vecs, lambda1, lambda2, fPrime)
	}
	return ellipseFoci(center, &vecs, lambda1, lambda2, fPrime)
}

func ellipseFoci(center Coordinate, vecs *mat.Dense, lambda1, lambda2, fPrime float64) (Coordinate, Coordinate, bool) {
	a2 := -fPrime / lambda1
	b2 := -fPrime / lambda2
	if a2 < 0 || b2 < 0 {
		return Coordinate{}, Coordinate{}, false
	}
	majorIdx := 0
	a2Major, b2Minor := a2, b2
	if b2 > a2 {
		majorIdx = 1
		a2Major, b2Minor = b2, a2
	}
	cFocal := math.Sqrt(math.Max(0, a2Major-b2Minor))
	axis := Coordinate{X: vecs.At(0, majorIdx), Y: vecs.At(1, majorIdx)}
	offset := axis.Scale(cFocal)
	return center.Add(offset), center.Sub(offset), true
}

func hyperbolaFoci(center Coordinate, vecs *mat.Dense, lambda1, lambda2, fPrime float64) (Coordinate, Coordinate, bool) {
	// Transverse axis is the one whose eigenvalue has the opposite sign to fPrime.
	transverseIdx := 0
	lamT, lamC := lambda1, lambda2
	if (lambda1 > 0) == (fPrime > 0) {
		transverseIdx = 1
		lamT, lamC = lambda2, lambda1
	}
	a2 := -fPrime / lamT
	b2 := fPrime / lamC
	if a2 < 0 || b2 < 0 {
		return Coordinate{}, Coordinate{}, false
	}
	cFocal := math.Sqrt(a2 + b2)
	axis := Coordinate{X: vecs.At(0, transverseIdx), Y: vecs.At(1, transverseIdx)}
	offset := axis.Scale(cFocal)
	return center.Add(offset), center.Sub(offset), true
}

func (c ConicImp) Property(i int, _ Doc) (Imp, error) {
	f1, f2, ok := c.Foci()
	switch i {
	case 0:
		if !ok {
			return InvalidImp{}, nil
		}
		return NewPointImp(f1), nil
	case 1:
		if !ok {
			return InvalidImp{}, nil
		}
		return NewPointImp(f2), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (c ConicImp) AttachPoint() (Coordinate, bool) {
	center, _, _, ok := c.centralForm()
	return center, ok
}

// SurroundingRect is not computed in closed form for a general conic
// (an unbounded hyperbola/parabola has none, and an ellipse's requires
// the same eigendecomposition as Foci); kigcore returns an invalid
// Rect uniformly, matching LineImp/RayImp's treatment of unbounded Imps.
func (c ConicImp) SurroundingRect() Rect { return Rect{} }

func (c ConicImp) Contains(p Coordinate, width float64, scale float64) bool {
	// Approximate: compare the quadratic form's value against a
	// tolerance scaled by the local gradient magnitude, so the "band"
	// of acceptance is roughly width*scale wide in Euclidean distance.
	a, b, cc, d, e, _ := c.coefficients()
	gx := 2*a*p.X + b*p.Y + d
	gy := b*p.X + 2*cc*p.Y + e
	grad := math.Hypot(gx, gy)
	if grad == 0 {
		return false
	}
	return math.Abs(c.Evaluate(p))/grad <= width*scale
}

func (c ConicImp) Draw(painter Painter) {
	// Sample the conic's quadratic-form zero set is a nontrivial
	// root-finding problem; Draw delegates the actual curve tracing to
	// the host renderer (out of scope) and only forwards a
	// best-effort point cloud around the center when one exists.
	center, ok := c.AttachPoint()
	if !ok {
		return
	}
	painter.DrawPoint(center)
}

func (c ConicImp) String() string { return "<conic>" }
