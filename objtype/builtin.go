package objtype

import (
	"math"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
)

// Builtin ObjectTypes covering the constructions named in the
// end-to-end scenarios: points, lines and their derived relatives,
// circles, polygons, cubics, text labels and transform application.
// Each Calc is pure and total: a degenerate argument combination
// (coincident points, parallel lines) yields InvalidImp, never a
// panic or error.
var (
	FixedPointType = Register(Spec{
		Name:       "kig.fixed_point",
		Display:    "Fixed Point",
		ResultType: imp.PointType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.DoubleType, SelectText: "the point's x coordinate"},
			{RequiredType: imp.DoubleType, SelectText: "the point's y coordinate"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			x := args[0].(imp.DoubleImp).Value
			y := args[1].(imp.DoubleImp).Value
			return imp.NewPointImp(imp.Coordinate{X: x, Y: y})
		},
		CanMove: true,
		Move: func(_ imp.Imp, to imp.Coordinate, _ []imp.Imp) []imp.Imp {
			return []imp.Imp{imp.NewDoubleImp(to.X), imp.NewDoubleImp(to.Y)}
		},
	})

	// ConstrainedPointType places a point on a ParametricCurve (CircleImp,
	// SegmentImp) at a scalar parameter — the building block a Locus
	// hierarchy bakes in as its driving-point construction, grounded on
	// the original ConstrainedPointType/CurveImp::getPoint contract.
	ConstrainedPointType = Register(Spec{
		Name:       "kig.constrained_point",
		Display:    "Point by Parameter",
		ResultType: imp.PointType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.AnyType, SelectText: "select the curve to constrain the point to"},
			{RequiredType: imp.DoubleType, SelectText: "the point's parameter"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			curve, ok := args[0].(imp.ParametricCurve)
			if !ok {
				return imp.InvalidImp{}
			}
			t := args[1].(imp.DoubleImp).Value
			c, ok := curve.PointAtParam(t)
			if !ok {
				return imp.InvalidImp{}
			}
			return imp.NewPointImp(c)
		},
	})

	MidpointType = Register(Spec{
		Name:       "kig.midpoint",
		Display:    "Mid Point",
		ResultType: imp.PointType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the first point"},
			{RequiredType: imp.PointType, SelectText: "select the second point"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			a := args[0].(imp.PointImp).Coord
			b := args[1].(imp.PointImp).Coord
			return imp.NewPointImp(a.Add(b).Scale(0.5))
		},
	})

	LineByTwoPointsType = Register(Spec{
		Name:       "kig.line_by_two_points",
		Display:    "Line by Two Points",
		ResultType: imp.LineType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the first point"},
			{RequiredType: imp.PointType, SelectText: "select the second point"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			a := args[0].(imp.PointImp).Coord
			b := args[1].(imp.PointImp).Coord
			l := imp.NewLineImp(a, b)
			if !l.Valid() {
				return imp.InvalidImp{}
			}
			return l
		},
	})

	SegmentByTwoPointsType = Register(Spec{
		Name:       "kig.segment_by_two_points",
		Display:    "Segment by Two Points",
		ResultType: imp.SegmentType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the first endpoint"},
			{RequiredType: imp.PointType, SelectText: "select the second endpoint"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			a := args[0].(imp.PointImp).Coord
			b := args[1].(imp.PointImp).Coord
			return imp.NewSegmentImp(a, b)
		},
	})

	RayByTwoPointsType = Register(Spec{
		Name:       "kig.ray_by_two_points",
		Display:    "Ray by Two Points",
		ResultType: imp.RayType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the starting point"},
			{RequiredType: imp.PointType, SelectText: "select a point on the ray"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			a := args[0].(imp.PointImp).Coord
			b := args[1].(imp.PointImp).Coord
			r := imp.NewRayImp(a, b)
			if !r.Valid() {
				return imp.InvalidImp{}
			}
			return r
		},
	})

	PerpendicularLineType = Register(Spec{
		Name:       "kig.perpendicular_line",
		Display:    "Perpendicular Line",
		ResultType: imp.LineType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the point the line passes through"},
			{RequiredType: imp.AbstractLineType, SelectText: "select the line to be perpendicular to"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			p := args[0].(imp.PointImp).Coord
			base, ok := lineDirection(args[1])
			if !ok {
				return imp.InvalidImp{}
			}
			perp := imp.Coordinate{X: -base.Y, Y: base.X}
			l := imp.NewLineImp(p, p.Add(perp))
			if !l.Valid() {
				return imp.InvalidImp{}
			}
			return l
		},
	})

	ParallelLineType = Register(Spec{
		Name:       "kig.parallel_line",
		Display:    "Parallel Line",
		ResultType: imp.LineType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the point the line passes through"},
			{RequiredType: imp.AbstractLineType, SelectText: "select the line to be parallel to"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			p := args[0].(imp.PointImp).Coord
			base, ok := lineDirection(args[1])
			if !ok {
				return imp.InvalidImp{}
			}
			l := imp.NewLineImp(p, p.Add(base))
			if !l.Valid() {
				return imp.InvalidImp{}
			}
			return l
		},
	})

	CircleByCenterAndPointType = Register(Spec{
		Name:       "kig.circle_by_center_and_point",
		Display:    "Circle by Center and Point",
		ResultType: imp.CircleType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the center"},
			{RequiredType: imp.PointType, SelectText: "select a point on the circle"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			c := args[0].(imp.PointImp).Coord
			p := args[1].(imp.PointImp).Coord
			circle := imp.NewCircleImp(c, c.Distance(p))
			if !circle.Valid() {
				return imp.InvalidImp{}
			}
			return circle
		},
	})

	LineLineIntersectionType = Register(Spec{
		Name:       "kig.line_line_intersection",
		Display:    "Intersection Point",
		ResultType: imp.PointType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.AbstractLineType, SelectText: "select the first line"},
			{RequiredType: imp.AbstractLineType, SelectText: "select the second line"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			p1, d1, ok1 := lineOriginAndDirection(args[0])
			p2, d2, ok2 := lineOriginAndDirection(args[1])
			if !ok1 || !ok2 {
				return imp.InvalidImp{}
			}
			denom := d1.X*d2.Y - d1.Y*d2.X
			if math.Abs(denom) < 1e-12 {
				return imp.InvalidImp{} // parallel or coincident lines
			}
			diff := p2.Sub(p1)
			t := (diff.X*d2.Y - diff.Y*d2.X) / denom
			return imp.NewPointImp(p1.Add(d1.Scale(t)))
		},
	})

	PolygonByVerticesType = Register(Spec{
		Name:       "kig.polygon_by_vertices",
		Display:    "Polygon by Vertices",
		ResultType: imp.PolygonType,
		ArgSpec: argspec.Spec{
			Variadic:    &argspec.Slot{RequiredType: imp.PointType, SelectText: "select a vertex"},
			VariadicMin: 3,
		},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			pts := make([]imp.Coordinate, len(args))
			for i, a := range args {
				pts[i] = a.(imp.PointImp).Coord
			}
			p := imp.NewPolygonImp(pts, true, false)
			if !p.Valid() {
				return imp.InvalidImp{}
			}
			return p
		},
	})

	CubicThroughPointsType = Register(Spec{
		Name:       "kig.cubic_through_points",
		Display:    "Cubic Curve through Points",
		ResultType: imp.CubicType,
		ArgSpec: argspec.Spec{
			Variadic:    &argspec.Slot{RequiredType: imp.PointType, SelectText: "select a point on the cubic"},
			VariadicMin: 2,
			VariadicMax: 9,
		},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			pts := make([]imp.Coordinate, len(args))
			for i, a := range args {
				pts[i] = a.(imp.PointImp).Coord
			}
			c := imp.NewCubicImpThroughPoints(pts)
			if !c.Valid() {
				return imp.InvalidImp{}
			}
			return c
		},
	})

	TextLabelType = Register(Spec{
		Name:       "kig.text_label",
		Display:    "Text Label",
		ResultType: imp.TextType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the label's location"},
			{RequiredType: imp.StringType, SelectText: "the label's text"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			loc := args[0].(imp.PointImp).Coord
			text := args[1].(imp.StringImp).Value
			return imp.NewTextImp(text, loc, false)
		},
		CanMove: true,
		Move: func(_ imp.Imp, to imp.Coordinate, parents []imp.Imp) []imp.Imp {
			text := parents[1].(imp.StringImp).Value
			return []imp.Imp{imp.NewPointImp(to), imp.NewStringImp(text)}
		},
		Actions: []SpecialAction{{Name: "toggle_frame", Text: "Toggle Frame"}},
	})

	TranslationByVectorType = Register(Spec{
		Name:        "kig.translation_by_vector",
		Display:     "Translation",
		ResultType:  imp.TransformationType,
		IsTransform: true,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.VectorType, SelectText: "select the translation vector"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			v := args[0].(imp.VectorImp)
			return imp.NewTransformationImp(imp.TranslationTransformation(v.Dir))
		},
	})

	ApplyTransformationType = Register(Spec{
		Name:       "kig.apply_transformation",
		Display:    "Apply Transformation",
		ResultType: imp.AnyType,
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{
			{RequiredType: imp.AnyType, SelectText: "select the object to transform"},
			{RequiredType: imp.TransformationType, SelectText: "select the transformation"},
		}},
		Calc: func(args []imp.Imp, _ imp.Doc) imp.Imp {
			target := args[0]
			t := args[1].(imp.TransformationImp)
			return target.Transform(t.T)
		},
	})
)

// lineDirection extracts the direction vector of any AbstractLineType
// Imp (LineImp, SegmentImp, RayImp), or ok=false if v isn't one.
func lineDirection(v imp.Imp) (imp.Coordinate, bool) {
	_, d, ok := lineOriginAndDirection(v)
	return d, ok
}

// lineOriginAndDirection extracts an on-line point and direction from
// any AbstractLineType Imp.
func lineOriginAndDirection(v imp.Imp) (origin, direction imp.Coordinate, ok bool) {
	switch l := v.(type) {
	case imp.LineImp:
		return l.A, l.B.Sub(l.A), true
	case imp.SegmentImp:
		return l.A, l.B.Sub(l.A), true
	case imp.RayImp:
		return l.A, l.B.Sub(l.A), true
	default:
		return imp.Coordinate{}, imp.Coordinate{}, false
	}
}
