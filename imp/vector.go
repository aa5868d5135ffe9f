package imp

// VectorImp is a free vector: a direction and magnitude with no fixed
// application point of its own (Begin is retained only to give it a
// drawable location and an AttachPoint).
type VectorImp struct {
	baseImp
	Begin, Dir Coordinate
}

// NewVectorImp builds a VectorImp from begin to begin+dir... actually
// from begin to end, storing the difference as Dir.
func NewVectorImp(begin, end Coordinate) VectorImp {
	return VectorImp{baseImp: baseImp{typ: VectorType}, Begin: begin, Dir: end.Sub(begin)}
}

var _ Imp = VectorImp{}

func (v VectorImp) Valid() bool { return true }
func (v VectorImp) Copy() Imp   { return v }

// End returns the vector's endpoint (Begin+Dir).
func (v VectorImp) End() Coordinate { return v.Begin.Add(v.Dir) }

func (v VectorImp) Transform(t Transformation) Imp {
	b, ok1 := t.Apply(v.Begin)
	e, ok2 := t.Apply(v.End())
	if !ok1 || !ok2 {
		return InvalidImp{}
	}
	return NewVectorImp(b, e)
}

func (v VectorImp) Equals(other Imp) bool {
	o, ok := other.(VectorImp)
	return ok && o.Begin == v.Begin && o.Dir == v.Dir
}

func (v VectorImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewDoubleImp(v.Dir.Length()), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (v VectorImp) AttachPoint() (Coordinate, bool) { return v.End(), true }

func (v VectorImp) SurroundingRect() Rect { return NewRect(v.Begin, v.End()) }

func (v VectorImp) Contains(p Coordinate, width float64, scale float64) bool {
	seg := SegmentImp{lineGeometry: lineGeometry{A: v.Begin, B: v.End()}}
	return seg.Contains(p, width, scale)
}

func (v VectorImp) Draw(painter Painter) { painter.DrawSegment(v.Begin, v.End()) }

func (v VectorImp) String() string { return "<vector>" }
