package imp

import "github.com/gokig/kigcore/imptype"

// InvalidImp is the universal "no value" result: the
// output of a mathematically impossible calc (e.g. intersecting
// parallel lines), never an error. Every Imp method on InvalidImp is
// defined and total; descendants that receive it as a parent Imp
// should themselves degrade to InvalidImp rather than panic — this is
// enforced by convention at each ObjectType's calc, not by the type
// system.
type InvalidImp struct{}

var _ Imp = InvalidImp{}

// Type returns the shared InvalidType singleton.
func (InvalidImp) Type() *imptype.Type { return InvalidType }

// Valid always reports false for InvalidImp.
func (InvalidImp) Valid() bool { return false }

// Copy returns an equal InvalidImp (InvalidImp has no mutable state).
func (InvalidImp) Copy() Imp { return InvalidImp{} }

// Transform always returns InvalidImp: there is nothing to transform.
func (InvalidImp) Transform(Transformation) Imp { return InvalidImp{} }

// Equals reports true only when other is also InvalidImp — invalidity
// is not a single unique value that compares equal across all
// "reasons" in the source model, but kigcore does not distinguish
// reasons, so all InvalidImps are mutually equal.
func (InvalidImp) Equals(other Imp) bool {
	_, ok := other.(InvalidImp)
	return ok
}

// NumberOfProperties is always 0.
func (InvalidImp) NumberOfProperties() int { return 0 }

// Property always fails with ErrNoSuchProperty.
func (InvalidImp) Property(i int, _ Doc) (Imp, error) { return propertyOutOfRange(i) }

// AttachPoint reports no attach point.
func (InvalidImp) AttachPoint() (Coordinate, bool) { return Coordinate{}, false }

// SurroundingRect returns an invalid Rect.
func (InvalidImp) SurroundingRect() Rect { return Rect{} }

// Contains is always false.
func (InvalidImp) Contains(Coordinate, float64, float64) bool { return false }

// Draw is a no-op: invalid objects are hidden
func (InvalidImp) Draw(Painter) {}

// String returns a fixed diagnostic label.
func (InvalidImp) String() string { return "<invalid>" }
