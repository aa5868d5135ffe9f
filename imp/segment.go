package imp

// SegmentImp is the bounded line between two points A and B.
type SegmentImp struct {
	baseImp
	lineGeometry
}

// NewSegmentImp builds a SegmentImp with endpoints a, b.
func NewSegmentImp(a, b Coordinate) SegmentImp {
	return SegmentImp{baseImp: baseImp{typ: SegmentType}, lineGeometry: lineGeometry{A: a, B: b}}
}

var _ Imp = SegmentImp{}

// Valid reports true even for a zero-length segment (A==B): a
// degenerate segment is still a well-defined point-like Imp, matching
// the source's tolerance for coincident endpoints.
func (s SegmentImp) Valid() bool { return true }
func (s SegmentImp) Copy() Imp   { return s }

func (s SegmentImp) Transform(t Transformation) Imp {
	a, ok1 := t.Apply(s.A)
	b, ok2 := t.Apply(s.B)
	if !ok1 || !ok2 {
		return InvalidImp{}
	}
	return NewSegmentImp(a, b)
}

func (s SegmentImp) Equals(other Imp) bool {
	o, ok := other.(SegmentImp)
	return ok && o.A == s.A && o.B == s.B
}

// Length returns the Euclidean length of the segment.
func (s SegmentImp) Length() float64 { return s.A.Distance(s.B) }

// Midpoint returns the segment's midpoint.
func (s SegmentImp) Midpoint() Coordinate { return s.A.Add(s.B).Scale(0.5) }

func (s SegmentImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewDoubleImp(s.slope()), nil
	case 1:
		a, b, c := s.equationCoefficients()
		return NewStringImp(equationString(a, b, c)), nil
	case 2:
		return NewDoubleImp(s.Length()), nil
	case 3:
		return NewPointImp(s.Midpoint()), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (s SegmentImp) AttachPoint() (Coordinate, bool) { return s.Midpoint(), true }

func (s SegmentImp) SurroundingRect() Rect { return NewRect(s.A, s.B) }

func (s SegmentImp) Contains(p Coordinate, width float64, scale float64) bool {
	if s.distanceToInfiniteLine(p) > width*scale {
		return false
	}
	t := s.projectParam(p)
	return t >= 0 && t <= 1
}

func (s SegmentImp) Draw(painter Painter) { painter.DrawSegment(s.A, s.B) }

func (s SegmentImp) String() string { return "<segment>" }

var _ ParametricCurve = SegmentImp{}

// PointAtParam linearly interpolates between A (t=0) and B (t=1); t
// outside [0,1] is off the bounded segment and reported invalid.
func (s SegmentImp) PointAtParam(t float64) (Coordinate, bool) {
	if t < 0 || t > 1 {
		return Coordinate{}, false
	}
	return s.A.Add(s.B.Sub(s.A).Scale(t)), true
}
