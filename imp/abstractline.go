package imp

import (
	"fmt"
	"math"
)

// lineGeometry holds the two defining points shared by LineImp,
// SegmentImp and RayImp (grounded on the original's AbstractLineImp
// base class, objects/abstractline.h): A is always an on-curve point,
// B gives the direction (B-A). For LineImp and RayImp, B need not
// remain literally on the drawn curve after a transform — only the
// direction matters.
type lineGeometry struct {
	A, B Coordinate
}

// direction returns the (non-normalized) direction vector B-A.
func (l lineGeometry) direction() Coordinate { return l.B.Sub(l.A) }

// slope returns dy/dx of the line's direction, or +Inf for a vertical line.
func (l lineGeometry) slope() float64 {
	d := l.direction()
	if d.X == 0 {
		return math.Inf(1)
	}
	return d.Y / d.X
}

// distanceToInfiniteLine returns the perpendicular distance from p to
// the infinite line through A with direction B-A.
func (l lineGeometry) distanceToInfiniteLine(p Coordinate) float64 {
	d := l.direction()
	norm := d.Length()
	if norm == 0 {
		return l.A.Distance(p)
	}
	// |cross(d, p-A)| / |d|
	ap := p.Sub(l.A)
	cross := d.X*ap.Y - d.Y*ap.X
	return math.Abs(cross) / norm
}

// projectParam returns t such that A + t*d is the foot of the
// perpendicular from p onto the infinite line, where d = B-A.
func (l lineGeometry) projectParam(p Coordinate) float64 {
	d := l.direction()
	denom := d.Dot(d)
	if denom == 0 {
		return 0
	}
	return p.Sub(l.A).Dot(d) / denom
}

// equationCoefficients returns the a, b, c of the line's ax+by+c=0
// equation, the numbers behind the "equation" property.
func (l lineGeometry) equationCoefficients() (a, b, c float64) {
	d := l.direction()
	// Normal to d is (-d.Y, d.X); line: -d.Y*(x-A.X) + d.X*(y-A.Y) = 0
	a = -d.Y
	b = d.X
	c = d.Y*l.A.X - d.X*l.A.Y
	return
}

// equationString renders ax+by+c=0 as a short human-readable string.
func equationString(a, b, c float64) string {
	return fmt.Sprintf("%gx + %gy + %g = 0", a, b, c)
}
