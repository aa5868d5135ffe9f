package imp

import "math"

// CircleImp is a circle given by center and radius.
type CircleImp struct {
	baseImp
	Center Coordinate
	Radius float64
}

// NewCircleImp builds a CircleImp. A negative radius is not
// normalized here — callers must validate before constructing, since
// Imp construction is total and never asserts; Valid reports
// false for radius <= 0.
func NewCircleImp(center Coordinate, radius float64) CircleImp {
	return CircleImp{baseImp: baseImp{typ: CircleType}, Center: center, Radius: radius}
}

var _ Imp = CircleImp{}

func (c CircleImp) Valid() bool { return c.Radius > 0 }
func (c CircleImp) Copy() Imp   { return c }

// Transform on a circle under a non-uniform-scale affine map would
// yield an ellipse, which CircleImp cannot represent; kigcore only
// supports transforming circles by similarities (translation,
// rotation, uniform scale) and invalidates otherwise.
func (c CircleImp) Transform(t Transformation) Imp {
	center, ok := t.Apply(c.Center)
	if !ok || !t.Affine() {
		return InvalidImp{}
	}
	// Probe the transform's scale factor via a unit-offset point; if the
	// map is not a similarity the two probe directions will disagree.
	px, ok1 := t.Apply(c.Center.Add(Coordinate{X: 1}))
	py, ok2 := t.Apply(c.Center.Add(Coordinate{Y: 1}))
	if !ok1 || !ok2 {
		return InvalidImp{}
	}
	sx := center.Distance(px)
	sy := center.Distance(py)
	if math.Abs(sx-sy) > 1e-9 {
		return InvalidImp{}
	}
	return NewCircleImp(center, c.Radius*sx)
}

func (c CircleImp) Equals(other Imp) bool {
	o, ok := other.(CircleImp)
	return ok && o.Center == c.Center && o.Radius == c.Radius
}

func (c CircleImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewPointImp(c.Center), nil
	case 1:
		return NewDoubleImp(c.Radius), nil
	case 2:
		return NewDoubleImp(2 * math.Pi * c.Radius), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (c CircleImp) AttachPoint() (Coordinate, bool) { return c.Center, true }

func (c CircleImp) SurroundingRect() Rect {
	return NewRect(
		Coordinate{c.Center.X - c.Radius, c.Center.Y - c.Radius},
		Coordinate{c.Center.X + c.Radius, c.Center.Y + c.Radius},
	)
}

func (c CircleImp) Contains(p Coordinate, width float64, scale float64) bool {
	return math.Abs(c.Center.Distance(p)-c.Radius) <= width*scale
}

func (c CircleImp) Draw(painter Painter) { painter.DrawCircle(c.Center, c.Radius) }

func (c CircleImp) String() string { return "<circle>" }

var _ ParametricCurve = CircleImp{}

// PointAtParam places a point at angle 2*pi*t around the circle,
// t=0 starting at the rightmost point (Center + (Radius,0)) and
// increasing counterclockwise; t wraps, so every real t is valid on a
// circle.
func (c CircleImp) PointAtParam(t float64) (Coordinate, bool) {
	if !c.Valid() {
		return Coordinate{}, false
	}
	angle := 2 * math.Pi * t
	return c.Center.Add(Coordinate{X: c.Radius * math.Cos(angle), Y: c.Radius * math.Sin(angle)}), true
}
