package imp

import (
	"fmt"
	"strconv"
)

// IntImp wraps an integer primitive value (e.g. a polygon's number of
// vertices, a cubic's requested sample count).
type IntImp struct {
	baseImp
	Value int
}

// NewIntImp wraps v as an IntImp.
func NewIntImp(v int) IntImp { return IntImp{baseImp: baseImp{typ: IntType}, Value: v} }

var _ Imp = IntImp{}

func (i IntImp) Valid() bool { return true }
func (i IntImp) Copy() Imp   { return i }

// Transform on a bare scalar primitive is the identity: translations,
// rotations etc. act on geometric data, not raw counters.
func (i IntImp) Transform(Transformation) Imp { return i }

func (i IntImp) Equals(other Imp) bool {
	o, ok := other.(IntImp)
	return ok && o.Value == i.Value
}

func (i IntImp) Property(idx int, _ Doc) (Imp, error) { return propertyOutOfRange(idx) }
func (i IntImp) AttachPoint() (Coordinate, bool)      { return Coordinate{}, false }
func (i IntImp) SurroundingRect() Rect                { return Rect{} }
func (i IntImp) Contains(Coordinate, float64, float64) bool { return false }
func (i IntImp) Draw(Painter)                         {}
func (i IntImp) String() string                       { return strconv.Itoa(i.Value) }

// DoubleImp wraps a floating-point primitive value (a free parameter's
// coordinate, a constrained point's curve parameter, a scalar result
// such as a polygon's area).
type DoubleImp struct {
	baseImp
	Value float64
}

// NewDoubleImp wraps v as a DoubleImp.
func NewDoubleImp(v float64) DoubleImp {
	return DoubleImp{baseImp: baseImp{typ: DoubleType}, Value: v}
}

var _ Imp = DoubleImp{}

func (d DoubleImp) Valid() bool                   { return true }
func (d DoubleImp) Copy() Imp                     { return d }
func (d DoubleImp) Transform(Transformation) Imp  { return d }
func (d DoubleImp) Equals(other Imp) bool {
	o, ok := other.(DoubleImp)
	return ok && o.Value == d.Value
}
func (d DoubleImp) Property(idx int, _ Doc) (Imp, error) { return propertyOutOfRange(idx) }
func (d DoubleImp) AttachPoint() (Coordinate, bool)      { return Coordinate{}, false }
func (d DoubleImp) SurroundingRect() Rect                { return Rect{} }
func (d DoubleImp) Contains(Coordinate, float64, float64) bool { return false }
func (d DoubleImp) Draw(Painter)                         {}
func (d DoubleImp) String() string                       { return strconv.FormatFloat(d.Value, 'g', -1, 64) }

// StringImp wraps a string primitive (e.g. a text label's format string).
type StringImp struct {
	baseImp
	Value string
}

// NewStringImp wraps v as a StringImp.
func NewStringImp(v string) StringImp {
	return StringImp{baseImp: baseImp{typ: StringType}, Value: v}
}

var _ Imp = StringImp{}

func (s StringImp) Valid() bool                  { return true }
func (s StringImp) Copy() Imp                    { return s }
func (s StringImp) Transform(Transformation) Imp { return s }
func (s StringImp) Equals(other Imp) bool {
	o, ok := other.(StringImp)
	return ok && o.Value == s.Value
}
func (s StringImp) Property(idx int, _ Doc) (Imp, error) { return propertyOutOfRange(idx) }
func (s StringImp) AttachPoint() (Coordinate, bool)      { return Coordinate{}, false }
func (s StringImp) SurroundingRect() Rect                { return Rect{} }
func (s StringImp) Contains(Coordinate, float64, float64) bool { return false }
func (s StringImp) Draw(Painter)                         {}
func (s StringImp) String() string                       { return s.Value }

// BoolImp wraps a boolean primitive (e.g. a test's pass/fail result).
type BoolImp struct {
	baseImp
	Value bool
}

// NewBoolImp wraps v as a BoolImp.
func NewBoolImp(v bool) BoolImp { return BoolImp{baseImp: baseImp{typ: BoolType}, Value: v} }

var _ Imp = BoolImp{}

func (b BoolImp) Valid() bool                  { return true }
func (b BoolImp) Copy() Imp                    { return b }
func (b BoolImp) Transform(Transformation) Imp { return b }
func (b BoolImp) Equals(other Imp) bool {
	o, ok := other.(BoolImp)
	return ok && o.Value == b.Value
}
func (b BoolImp) Property(idx int, _ Doc) (Imp, error) { return propertyOutOfRange(idx) }
func (b BoolImp) AttachPoint() (Coordinate, bool)      { return Coordinate{}, false }
func (b BoolImp) SurroundingRect() Rect                { return Rect{} }
func (b BoolImp) Contains(Coordinate, float64, float64) bool { return false }
func (b BoolImp) Draw(Painter)                         {}
func (b BoolImp) String() string                       { return fmt.Sprintf("%t", b.Value) }
