package imp

import (
	"gonum.org/v1/gonum/mat"
)

// cubicBasisSize is the number of monomials of total degree <= 3 in
// two variables: x³,x²y,xy²,y³,x²,xy,y²,x,y,1.
const cubicBasisSize = 10

// CubicImp is a cubic curve, implicitly defined by the vanishing of a
// degree-3 polynomial in x,y. kigcore stores the 10 coefficients fit
// (by least squares, via gonum's SVD) from up to 9 defining points,
// plus an accumulated "pre-transform" so that Transform composes
// without needing to symbolically re-expand the polynomial: Evaluate
// always maps the query point through pre (query space to fit space)
// before evaluating the raw fit, so transforming a cubic is just
// composing the transform's inverse into pre.
type CubicImp struct {
	baseImp
	coeffs [cubicBasisSize]float64
	pre    Transformation // maps query-space -> fit-space
	valid  bool
}

// monomials returns the degree<=3 monomial basis at p.
func monomials(p Coordinate) [cubicBasisSize]float64 {
	x, y := p.X, p.Y
	return [cubicBasisSize]float64{
		x * x * x, x * x * y, x * y * y, y * y * y,
		x * x, x * y, y * y,
		x, y, 1,
	}
}

// NewCubicImpThroughPoints fits a cubic through pts (2 to 9 points) by
// taking the right singular vector of smallest singular value of the
// NxB monomial matrix (gonum/mat SVD) as the coefficient vector. Fewer
// than 9 points underdetermine the fit (many cubics pass through them);
// kigcore deterministically picks the SVD's minimal-norm solution
// rather than asserting a unique curve: callers only need Valid()==true
// once at least 2 points are given, not curve uniqueness.
//
// NewCubicImpThroughPoints returns InvalidImp-backed zero value (Valid
// reporting false) when fewer than 2 points are supplied.
func NewCubicImpThroughPoints(pts []Coordinate) CubicImp {
	if len(pts) < 2 {
		return CubicImp{baseImp: baseImp{typ: CubicType}, pre: IdentityTransformation()}
	}
	rows := make([]float64, 0, len(pts)*cubicBasisSize)
	for _, p := range pts {
		m := monomials(p)
		rows = append(rows, m[:]...)
	}
	a := mat.NewDense(len(pts), cubicBasisSize, rows)

	var svd mat.SVD
	ok := svd.Factorize(a, mat.SVDFull)
	var coeffs [cubicBasisSize]float64
	if ok {
		var v mat.Dense
		svd.VTo(&v)
		lastCol := cubicBasisSize - 1
		for i := 0; i < cubicBasisSize; i++ {
			coeffs[i] = v.At(i, lastCol)
		}
	}
	c := CubicImp{baseImp: baseImp{typ: CubicType}, coeffs: coeffs, pre: IdentityTransformation()}
	c.valid = ok
	return c
}

var _ Imp = CubicImp{}

func (c CubicImp) Valid() bool { return c.hasPoints() }

// hasPoints reports whether this CubicImp carries a non-trivial fit;
// callers construct CubicImp only through NewCubicImpThroughPoints, so
// valid tracks whether that constructor's SVD succeeded.
func (c CubicImp) hasPoints() bool { return c.valid }

func (c CubicImp) Copy() Imp { return c }

// Transform composes t into the accumulated pre-transform; see the
// type doc for why this avoids symbolic polynomial substitution.
func (c CubicImp) Transform(t Transformation) Imp {
	inv, err := t.Inverse()
	if err != nil {
		return InvalidImp{}
	}
	out := c
	out.pre = inv.Compose(c.pre)
	return out
}

func (c CubicImp) Equals(other Imp) bool {
	o, ok := other.(CubicImp)
	if !ok || c.valid != o.valid {
		return false
	}
	if !c.valid {
		return true
	}
	for i := range c.coeffs {
		if c.coeffs[i] != o.coeffs[i] {
			return false
		}
	}
	return mat.EqualApprox(c.pre.m, o.pre.m, 1e-12)
}

// Evaluate returns the fitted cubic's implicit polynomial value at the
// query-space point p (zero exactly on the curve).
func (c CubicImp) Evaluate(p Coordinate) float64 {
	fitSpace, ok := c.pre.Apply(p)
	if !ok {
		return 0
	}
	m := monomials(fitSpace)
	var sum float64
	for i := range m {
		sum += m[i] * c.coeffs[i]
	}
	return sum
}

func (c CubicImp) Property(i int, _ Doc) (Imp, error) { return propertyOutOfRange(i) }

func (c CubicImp) AttachPoint() (Coordinate, bool) { return Coordinate{}, false }

// SurroundingRect for a general cubic has no closed form; see ConicImp.
func (c CubicImp) SurroundingRect() Rect { return Rect{} }

func (c CubicImp) Contains(p Coordinate, width float64, scale float64) bool {
	// Same gradient-normalized tolerance idea as ConicImp.Contains,
	// using a numeric gradient since the cubic's pre-transform makes a
	// closed-form derivative impractical to keep in sync.
	const h = 1e-4
	v := c.Evaluate(p)
	gx := (c.Evaluate(Coordinate{X: p.X + h, Y: p.Y}) - v) / h
	gy := (c.Evaluate(Coordinate{X: p.X, Y: p.Y + h}) - v) / h
	grad := Coordinate{gx, gy}.Length()
	if grad == 0 {
		return false
	}
	return (v*v)/(grad*grad) <= (width * scale) * (width * scale)
}

func (c CubicImp) Draw(painter Painter) {}

func (c CubicImp) String() string { return "<cubic>" }
