package imp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularTransform is returned by Transformation.Inverse when the
// underlying matrix is not invertible.
var ErrSingularTransform = errors.New("imp: transformation matrix is singular")

// Transformation is a 2D projective map represented as a 3x3
// homogeneous matrix, composed and inverted with gonum/mat.
//
// Affine reports whether the transform is known to be affine (bottom
// row [0 0 1]); affine transforms never send a finite point to
// infinity, so PolygonImp.Transform only needs to check for the
// vanishing line when Affine is false.
type Transformation struct {
	m      *mat.Dense // 3x3
	affine bool
}

// IdentityTransformation returns the identity map.
func IdentityTransformation() Transformation {
	m := mat.NewDense(3, 3, nil)
	m.Set(0, 0, 1)
	m.Set(1, 1, 1)
	m.Set(2, 2, 1)
	return Transformation{m: m, affine: true}
}

// NewAffineTransformation builds a transform from a 2x2 linear part
// and a translation vector: x' = A x + t.
func NewAffineTransformation(a00, a01, a10, a11, tx, ty float64) Transformation {
	m := mat.NewDense(3, 3, []float64{
		a00, a01, tx,
		a10, a11, ty,
		0, 0, 1,
	})
	return Transformation{m: m, affine: true}
}

// NewProjectiveTransformation builds a general 3x3 homogeneous
// transform from row-major coefficients.
func NewProjectiveTransformation(rows [9]float64) Transformation {
	m := mat.NewDense(3, 3, rows[:])
	affine := rows[6] == 0 && rows[7] == 0 && rows[8] != 0
	return Transformation{m: m, affine: affine}
}

// TranslationTransformation returns a pure translation by v.
func TranslationTransformation(v Coordinate) Transformation {
	return NewAffineTransformation(1, 0, 0, 1, v.X, v.Y)
}

// RotationTransformation returns a rotation by angle radians about center.
func RotationTransformation(center Coordinate, angle float64) Transformation {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	// Compose T(center) * R * T(-center).
	t1 := TranslationTransformation(center)
	r := NewAffineTransformation(cosA, -sinA, sinA, cosA, 0, 0)
	t2 := TranslationTransformation(Coordinate{-center.X, -center.Y})
	return t1.Compose(r).Compose(t2)
}

// ScalingTransformation returns a uniform scale by factor about center.
func ScalingTransformation(center Coordinate, factor float64) Transformation {
	t1 := TranslationTransformation(center)
	s := NewAffineTransformation(factor, 0, 0, factor, 0, 0)
	t2 := TranslationTransformation(Coordinate{-center.X, -center.Y})
	return t1.Compose(s).Compose(t2)
}

// Affine reports whether t is known affine.
func (t Transformation) Affine() bool { return t.affine }

// Compose returns the transform "first t, then other": other ∘ t.
func (t Transformation) Compose(other Transformation) Transformation {
	var out mat.Dense
	out.Mul(other.m, t.m)
	return Transformation{m: &out, affine: t.affine && other.affine}
}

// Inverse returns t^-1, or ErrSingularTransform if t.m is not invertible.
func (t Transformation) Inverse() (Transformation, error) {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		return Transformation{}, fmt.Errorf("%w: %v", ErrSingularTransform, err)
	}
	return Transformation{m: &inv, affine: t.affine}, nil
}

// Apply maps c through t, returning ok=false when the homogeneous
// divide-by-w would be by exactly zero — the point maps to
// infinity, which geometrically invalid-ates any Imp built from it
//.
func (t Transformation) Apply(c Coordinate) (Coordinate, bool) {
	x := t.m.At(0, 0)*c.X + t.m.At(0, 1)*c.Y + t.m.At(0, 2)
	y := t.m.At(1, 0)*c.X + t.m.At(1, 1)*c.Y + t.m.At(1, 2)
	w := t.m.At(2, 0)*c.X + t.m.At(2, 1)*c.Y + t.m.At(2, 2)
	if w == 0 {
		return Coordinate{}, false
	}
	return Coordinate{X: x / w, Y: y / w}, true
}

// TransformationImp wraps a Transformation as a first-class Imp so it
// can flow through the object graph as the result of a "define
// transformation" construction and be consumed as an argument by
// transform-apply ObjectTypes.
type TransformationImp struct {
	baseImp
	T Transformation
}

// NewTransformationImp wraps t.
func NewTransformationImp(t Transformation) TransformationImp {
	return TransformationImp{baseImp: baseImp{typ: TransformationType}, T: t}
}

var _ Imp = TransformationImp{}

func (t TransformationImp) Valid() bool { return true }
func (t TransformationImp) Copy() Imp   { return t }

// Transform composes: applying transform u to a TransformationImp t
// yields the transform "first t, then u" — this is how chained
// transform macros are built.
func (t TransformationImp) Transform(u Transformation) Imp {
	return NewTransformationImp(t.T.Compose(u))
}

func (t TransformationImp) Equals(other Imp) bool {
	o, ok := other.(TransformationImp)
	if !ok {
		return false
	}
	return mat.EqualApprox(t.T.m, o.T.m, 1e-12)
}

func (t TransformationImp) Property(idx int, _ Doc) (Imp, error) { return propertyOutOfRange(idx) }
func (t TransformationImp) AttachPoint() (Coordinate, bool)      { return Coordinate{}, false }
func (t TransformationImp) SurroundingRect() Rect                { return Rect{} }
func (t TransformationImp) Contains(Coordinate, float64, float64) bool { return false }
func (t TransformationImp) Draw(Painter)                         {}
func (t TransformationImp) String() string                       { return "<transformation>" }
