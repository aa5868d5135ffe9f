package imp

// LineImp is an infinite line determined by two distinct points, of
// which only the direction (B-A) and one on-line point (A) matter for
// its geometry; A and B themselves are not distinguishable afterwards.
type LineImp struct {
	baseImp
	lineGeometry
}

// NewLineImp builds a LineImp through a and b. a and b must differ;
// callers (ObjectTypes) are responsible for returning InvalidImp when
// they coincide — LineImp itself does not validate, to keep
// construction a pure, total operation matching the Imp contract.
func NewLineImp(a, b Coordinate) LineImp {
	return LineImp{baseImp: baseImp{typ: LineType}, lineGeometry: lineGeometry{A: a, B: b}}
}

var _ Imp = LineImp{}

func (l LineImp) Valid() bool { return l.A != l.B }
func (l LineImp) Copy() Imp   { return l }

func (l LineImp) Transform(t Transformation) Imp {
	a, ok1 := t.Apply(l.A)
	b, ok2 := t.Apply(l.B)
	if !ok1 || !ok2 || a == b {
		return InvalidImp{}
	}
	return NewLineImp(a, b)
}

func (l LineImp) Equals(other Imp) bool {
	o, ok := other.(LineImp)
	if !ok {
		return false
	}
	// Two lines are equal when they share direction and an on-line point.
	return l.distanceToInfiniteLine(o.A) == 0 && sameDirection(l.direction(), o.direction())
}

func (l LineImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewDoubleImp(l.slope()), nil
	case 1:
		a, b, c := l.equationCoefficients()
		return NewStringImp(equationString(a, b, c)), nil
	default:
		return propertyOutOfRange(i)
	}
}

// AttachPoint for an infinite line is its defining point A.
func (l LineImp) AttachPoint() (Coordinate, bool) { return l.A, true }

// SurroundingRect for an unbounded line is invalid: it has no finite extent.
func (l LineImp) SurroundingRect() Rect { return Rect{} }

func (l LineImp) Contains(p Coordinate, width float64, scale float64) bool {
	return l.distanceToInfiniteLine(p) <= width*scale
}

func (l LineImp) Draw(painter Painter) {
	// A Painter has no notion of "infinite"; draw a long finite segment
	// through A in the line's direction as a reasonable visual stand-in.
	d := l.direction()
	if d.Length() == 0 {
		return
	}
	const extent = 1e4
	unit := d.Scale(extent / d.Length())
	painter.DrawSegment(l.A.Sub(unit), l.A.Add(unit))
}

func (l LineImp) String() string { return "<line>" }

// sameDirection reports whether d1 and d2 are parallel (cross product ~0).
func sameDirection(d1, d2 Coordinate) bool {
	return d1.X*d2.Y-d1.Y*d2.X == 0
}
