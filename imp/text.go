package imp

// TextImp is a text label: literal text, anchor location, and a
// "frame" flag (draw a box around the label). Its bounding rectangle
// is estimated by SurroundingRect and Contains, each of which works on
// a copy of the value, so the estimate is not kept between calls; Draw
// does not compute it. The rect cache fields are explicitly NOT part
// of Equals: two TextImps with the same text/location/frame are equal
// regardless of either's rect cache.
type TextImp struct {
	baseImp
	Text     string
	Location Coordinate
	Frame    bool

	cachedRect Rect
	rectValid  bool
}

// NewTextImp builds a TextImp.
func NewTextImp(text string, loc Coordinate, frame bool) TextImp {
	return TextImp{baseImp: baseImp{typ: TextType}, Text: text, Location: loc, Frame: frame}
}

var _ Imp = TextImp{}

func (t TextImp) Valid() bool { return true }

// Copy returns an independent TextImp whose own rect cache starts
// cold: the cache is a per-value observation, not shared state.
func (t TextImp) Copy() Imp {
	return TextImp{baseImp: t.baseImp, Text: t.Text, Location: t.Location, Frame: t.Frame}
}

func (t TextImp) Transform(tr Transformation) Imp {
	loc, ok := tr.Apply(t.Location)
	if !ok {
		return InvalidImp{}
	}
	return NewTextImp(t.Text, loc, t.Frame)
}

// Equals compares text, location and frame only — never the rect cache.
func (t TextImp) Equals(other Imp) bool {
	o, ok := other.(TextImp)
	return ok && o.Text == t.Text && o.Location == t.Location && o.Frame == t.Frame
}

func (t TextImp) Property(i int, _ Doc) (Imp, error) {
	switch i {
	case 0:
		return NewStringImp(t.Text), nil
	case 1:
		return NewPointImp(t.Location), nil
	case 2:
		return NewBoolImp(t.Frame), nil
	default:
		return propertyOutOfRange(i)
	}
}

func (t TextImp) AttachPoint() (Coordinate, bool) { return t.Location, true }

// rectEstimate approximates the label's bounding box from its text
// length; a real renderer would replace this with font-metric
// measurement.
func (t *TextImp) rectEstimate() Rect {
	if t.rectValid {
		return t.cachedRect
	}
	const charWidth, lineHeight = 7.0, 14.0
	w := float64(len(t.Text)) * charWidth
	r := NewRect(t.Location, Coordinate{t.Location.X + w, t.Location.Y + lineHeight})
	t.cachedRect = r
	t.rectValid = true
	return r
}

func (t TextImp) SurroundingRect() Rect {
	tt := t
	return tt.rectEstimate()
}

func (t TextImp) Contains(p Coordinate, width float64, scale float64) bool {
	tt := t
	return tt.rectEstimate().Contains(p)
}

func (t TextImp) Draw(painter Painter) { painter.DrawText(t.Text, t.Location) }

func (t TextImp) String() string { return t.Text }

// NumericTextImp is a TextImp that additionally carries the numeric
// value it displays (e.g. a polygon's area label).
type NumericTextImp struct {
	TextImp
	Value float64
}

// NewNumericTextImp builds a NumericTextImp.
func NewNumericTextImp(text string, loc Coordinate, frame bool, value float64) NumericTextImp {
	n := NumericTextImp{TextImp: NewTextImp(text, loc, frame), Value: value}
	n.typ = NumericTextType
	return n
}

var _ Imp = NumericTextImp{}

func (n NumericTextImp) Copy() Imp {
	return NumericTextImp{TextImp: n.TextImp.Copy().(TextImp), Value: n.Value}
}

func (n NumericTextImp) Transform(t Transformation) Imp {
	base := n.TextImp.Transform(t)
	tb, ok := base.(TextImp)
	if !ok {
		return InvalidImp{}
	}
	out := NumericTextImp{TextImp: tb, Value: n.Value}
	out.typ = NumericTextType
	return out
}

func (n NumericTextImp) Equals(other Imp) bool {
	o, ok := other.(NumericTextImp)
	return ok && n.TextImp.Equals(o.TextImp) && n.Value == o.Value
}

// BoolTextImp is a TextImp that additionally carries the boolean value
// it displays (e.g. a test object's pass/fail result).
type BoolTextImp struct {
	TextImp
	Value bool
}

// NewBoolTextImp builds a BoolTextImp.
func NewBoolTextImp(text string, loc Coordinate, frame bool, value bool) BoolTextImp {
	b := BoolTextImp{TextImp: NewTextImp(text, loc, frame), Value: value}
	b.typ = BoolTextType
	return b
}

var _ Imp = BoolTextImp{}

func (b BoolTextImp) Copy() Imp {
	return BoolTextImp{TextImp: b.TextImp.Copy().(TextImp), Value: b.Value}
}

func (b BoolTextImp) Transform(t Transformation) Imp {
	base := b.TextImp.Transform(t)
	tb, ok := base.(TextImp)
	if !ok {
		return InvalidImp{}
	}
	out := BoolTextImp{TextImp: tb, Value: b.Value}
	out.typ = BoolTextType
	return out
}

func (b BoolTextImp) Equals(other Imp) bool {
	o, ok := other.(BoolTextImp)
	return ok && b.TextImp.Equals(o.TextImp) && b.Value == o.Value
}
