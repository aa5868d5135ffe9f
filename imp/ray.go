package imp

// RayImp is a semi-infinite line starting at A and passing through B.
type RayImp struct {
	baseImp
	lineGeometry
}

// NewRayImp builds a RayImp starting at a, through b.
func NewRayImp(a, b Coordinate) RayImp {
	return RayImp{baseImp: baseImp{typ: RayType}, lineGeometry: lineGeometry{A: a, B: b}}
}

var _ Imp = RayImp{}

func (r RayImp) Valid() bool { return r.A != r.B }
func (r RayImp) Copy() Imp   { return r }

func (r RayImp) Transform(t Transformation) Imp {
	a, ok1 := t.Apply(r.A)
	b, ok2 := t.Apply(r.B)
	// A non-affine map can swap which side of A is "forward"; kigcore
	// treats that as invalidating the ray rather than silently flipping
	// its direction.
	if !ok1 || !ok2 || a == b || !t.Affine() {
		return InvalidImp{}
	}
	return NewRayImp(a, b)
}

func (r RayImp) Equals(other Imp) bool {
	o, ok := other.(RayImp)
	return ok && o.A == r.A && sameDirection(r.direction(), o.direction())
}

func (r RayImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewDoubleImp(r.slope()), nil
	case 1:
		a, b, c := r.equationCoefficients()
		return NewStringImp(equationString(a, b, c)), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (r RayImp) AttachPoint() (Coordinate, bool) { return r.A, true }

// SurroundingRect for a ray is unbounded.
func (r RayImp) SurroundingRect() Rect { return Rect{} }

func (r RayImp) Contains(p Coordinate, width float64, scale float64) bool {
	if r.distanceToInfiniteLine(p) > width*scale {
		return false
	}
	return r.projectParam(p) >= 0
}

func (r RayImp) Draw(painter Painter) {
	d := r.direction()
	if d.Length() == 0 {
		return
	}
	const extent = 1e4
	unit := d.Scale(extent / d.Length())
	painter.DrawSegment(r.A, r.A.Add(unit))
}

func (r RayImp) String() string { return "<ray>" }
