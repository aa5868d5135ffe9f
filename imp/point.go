package imp

// PointImp is a single 2D point value, the most common Imp in the
// system: free Data points, constrained points, and nearly every
// construction's output or input pass through a PointImp.
type PointImp struct {
	baseImp
	Coord Coordinate
}

// NewPointImp wraps c as a PointImp.
func NewPointImp(c Coordinate) PointImp {
	return PointImp{baseImp: baseImp{typ: PointType}, Coord: c}
}

var _ Imp = PointImp{}

func (p PointImp) Valid() bool { return true }
func (p PointImp) Copy() Imp   { return p }

func (p PointImp) Transform(t Transformation) Imp {
	c, ok := t.Apply(p.Coord)
	if !ok {
		return InvalidImp{}
	}
	return NewPointImp(c)
}

func (p PointImp) Equals(other Imp) bool {
	o, ok := other.(PointImp)
	return ok && o.Coord == p.Coord
}

// Property 0 is "coordinate", the point's own location, marked
// DefinedOnOrThrough in the registry since it denotes the same object.
func (p PointImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return p, nil
	default:
		return propertyOutOfRange(i)
	}
}

func (p PointImp) AttachPoint() (Coordinate, bool) { return p.Coord, true }

func (p PointImp) SurroundingRect() Rect { return NewRect(p.Coord, p.Coord) }

func (p PointImp) Contains(c Coordinate, width float64, scale float64) bool {
	return p.Coord.Distance(c) <= width*scale
}

func (p PointImp) Draw(painter Painter) { painter.DrawPoint(p.Coord) }

func (p PointImp) String() string {
	return "(" + DoubleImp{Value: p.Coord.X}.String() + ", " + DoubleImp{Value: p.Coord.Y}.String() + ")"
}
