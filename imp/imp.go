package imp

import (
	"errors"
	"fmt"
	"math"

	"github.com/gokig/kigcore/imptype"
)

// ErrNoSuchProperty is returned by Property when index is out of the
// Imp's declared property count. Unlike imptype.ErrPropertyIndex (a
// programmer-error panic on the Type's static property list), this is
// a normal error: property() is called with indices that ultimately
// come from user-driven UI actions, so it must degrade gracefully.
var ErrNoSuchProperty = errors.New("imp: no such property")

// Doc is the minimal read-only document context an Imp's calc-time
// operations may consult (e.g. the current coordinate system). kigcore
// itself never needs more than CoordinateSystem; a host embedding the
// core may carry richer state behind the same interface.
type Doc interface {
	// CoordinateSystem names the active coordinate convention
	// ("Euclidean" or "Polar"); Imps that sample parametric curves use
	// it only for display, never for correctness.
	CoordinateSystem() string
}

// Coordinate is a 2D Euclidean point, the common currency of most Imp
// geometry. It is a plain value type, not an Imp itself — PointImp
// wraps one.
type Coordinate struct {
	X, Y float64
}

// Add returns c+o.
func (c Coordinate) Add(o Coordinate) Coordinate { return Coordinate{c.X + o.X, c.Y + o.Y} }

// Sub returns c-o.
func (c Coordinate) Sub(o Coordinate) Coordinate { return Coordinate{c.X - o.X, c.Y - o.Y} }

// Scale returns c scaled by s.
func (c Coordinate) Scale(s float64) Coordinate { return Coordinate{c.X * s, c.Y * s} }

// Dot returns the Euclidean dot product of c and o.
func (c Coordinate) Dot(o Coordinate) float64 { return c.X*o.X + c.Y*o.Y }

// Length returns the Euclidean norm of c treated as a vector from the origin.
func (c Coordinate) Length() float64 { return math.Hypot(c.X, c.Y) }

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 { return c.Sub(o).Length() }

// ApproxEqual reports whether c and o differ by no more than eps in
// each coordinate; used throughout kigcore instead of exact float
// equality, at the ~1e-9 tolerance floating-point geometry needs.
func (c Coordinate) ApproxEqual(o Coordinate, eps float64) bool {
	return math.Abs(c.X-o.X) <= eps && math.Abs(c.Y-o.Y) <= eps
}

// Rect is an axis-aligned bounding rectangle, returned by
// Imp.SurroundingRect. A zero-value Rect with Valid()==false denotes
// "no bounding rectangle" (e.g. an InvalidImp or an unbounded line).
type Rect struct {
	Left, Top, Right, Bottom float64
	valid                    bool
}

// NewRect builds a valid Rect from two opposite corners, normalizing
// their order.
func NewRect(a, b Coordinate) Rect {
	r := Rect{valid: true}
	r.Left, r.Right = math.Min(a.X, b.X), math.Max(a.X, b.X)
	r.Bottom, r.Top = math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return r
}

// Valid reports whether r denotes an actual rectangle.
func (r Rect) Valid() bool { return r.valid }

// Contains reports whether p lies within r (inclusive).
func (r Rect) Contains(p Coordinate) bool {
	return r.valid && p.X >= r.Left && p.X <= r.Right && p.Y >= r.Bottom && p.Y <= r.Top
}

// Unite returns the smallest Rect containing both r and o. If either
// is invalid, the other is returned unchanged.
func (r Rect) Unite(o Rect) Rect {
	if !r.valid {
		return o
	}
	if !o.valid {
		return r
	}
	return Rect{
		Left:   math.Min(r.Left, o.Left),
		Right:  math.Max(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
		Top:    math.Max(r.Top, o.Top),
		valid:  true,
	}
}

// ParametricCurve is implemented by every Imp that can place a point
// at a scalar parameter t, normally ranging over [0,1] (wrapping at
// the curve's own period for closed curves): the interface a
// constrained point is built against, grounded on the original
// CurveImp::getPoint contract. Returns ok=false if t does not map to a
// point (e.g. t outside [0,1] on a bounded curve).
type ParametricCurve interface {
	PointAtParam(t float64) (Coordinate, bool)
}

// Painter is the drawing sink an Imp renders itself to. kigcore treats
// rendering as an external collaborator: Imp.Draw is a
// pure dispatch to whatever Painter the host supplies, and NopPainter
// (below) is sufficient for every kigcore-internal use (tests,
// headless recalculation).
type Painter interface {
	DrawPoint(c Coordinate)
	DrawSegment(a, b Coordinate)
	DrawCircle(center Coordinate, radius float64)
	DrawCurve(points []Coordinate)
	DrawText(text string, at Coordinate)
}

// NopPainter is a Painter that discards everything drawn to it.
type NopPainter struct{}

func (NopPainter) DrawPoint(Coordinate)                  {}
func (NopPainter) DrawSegment(a, b Coordinate)            {}
func (NopPainter) DrawCircle(center Coordinate, r float64) {}
func (NopPainter) DrawCurve(points []Coordinate)          {}
func (NopPainter) DrawText(text string, at Coordinate)    {}

// Imp is the interface every immutable geometric or primitive value
// implements. See the package doc for the value-semantics contract.
type Imp interface {
	// Type returns the Imp's unique ImpType.
	Type() *imptype.Type

	// Valid reports whether this Imp denotes a usable value. An
	// InvalidImp always returns false; a degenerate geometric value
	// (e.g. a line through two equal points, a circle of non-positive
	// radius, a polygon with fewer than three vertices) also does.
	Valid() bool

	// Copy returns an independent value equal to this one. Because
	// every Imp field is itself immutable or value-typed, Copy may
	// return the receiver unchanged for genuinely immutable
	// implementations, but the contract is that mutating the copy
	// (where mutation is possible at all, e.g. TextImp's cached
	// bounding rect) never affects the original.
	Copy() Imp

	// Transform applies t to this Imp, returning InvalidImp if the
	// transform cannot be meaningfully applied (e.g. a non-affine
	// transform moving a polygon vertex through the point at infinity).
	Transform(t Transformation) Imp

	// Equals reports extensional equality: same Type and same data,
	// not pointer identity.
	Equals(other Imp) bool

	// NumberOfProperties returns len(Properties()); forwarded from the
	// Imp's Type for convenience.
	NumberOfProperties() int

	// Property evaluates the i'th property against doc. Returns
	// InvalidImp and ErrNoSuchProperty if i is out of range — this is
	// an ordinary runtime condition (UI-driven index), not a panic.
	Property(i int, doc Doc) (Imp, error)

	// AttachPoint returns the coordinate used as a handle when placing
	// a label attached to this Imp, or (Coordinate{}, false) if none.
	AttachPoint() (Coordinate, bool)

	// SurroundingRect returns the smallest axis-aligned Rect containing
	// this Imp, or an invalid Rect if unbounded/undefined.
	SurroundingRect() Rect

	// Contains reports whether p lies on/within this Imp, within width
	// pixels at the given zoom scale — used for hit-testing.
	Contains(p Coordinate, width float64, scale float64) bool

	// Draw renders this Imp to the given Painter.
	Draw(p Painter)

	// String returns a short human-readable summary, used in error
	// messages and debugging, never parsed.
	String() string
}

// baseImp centralizes imptype.Type storage so concrete Imps need only
// embed it and set typ once in their constructor.
type baseImp struct {
	typ *imptype.Type
}

func (b baseImp) Type() *imptype.Type { return b.typ }

func (b baseImp) NumberOfProperties() int {
	if b.typ == nil {
		return 0
	}
	return b.typ.NumberOfProperties()
}

// propertyOutOfRange is the shared not-found path for Property
// implementations: always returns InvalidImp{}, never nil.
func propertyOutOfRange(i int) (Imp, error) {
	return InvalidImp{}, fmt.Errorf("%w: index %d", ErrNoSuchProperty, i)
}
