package imp

import "github.com/gokig/kigcore/imptype"

// Well-known ImpType singletons. Every concrete Imp in this package
// sets its baseImp.typ to one of these. Subtypes append properties to
// their parent's list per imptype.Register's inheritance rule.
var (
	AnyType = imptype.Register(imptype.Spec{
		Name:    "any",
		Display: "Object",
	})

	IntType = imptype.Register(imptype.Spec{
		Name:    "int",
		Display: "Integer",
		Parent:  AnyType,
	})

	DoubleType = imptype.Register(imptype.Spec{
		Name:    "double",
		Display: "Number",
		Parent:  AnyType,
	})

	StringType = imptype.Register(imptype.Spec{
		Name:    "string",
		Display: "Text value",
		Parent:  AnyType,
	})

	BoolType = imptype.Register(imptype.Spec{
		Name:    "bool",
		Display: "Boolean",
		Parent:  AnyType,
	})

	PointType = imptype.Register(imptype.Spec{
		Name:       "point",
		Display:    "Point",
		SelectText: "Select a point",
		VerbAdd:    "Add a point",
		VerbMove:   "Move a point",
		Parent:     AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "coordinate", Display: "Coordinate", DefinedOnOrThrough: true},
		},
	})

	AbstractLineType = imptype.Register(imptype.Spec{
		Name:    "abstractline",
		Display: "Line",
		Parent:  AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "slope", Display: "Slope"},
			{Internal: "equation", Display: "Equation"},
		},
	})

	LineType = imptype.Register(imptype.Spec{
		Name:       "line",
		Display:    "Line",
		SelectText: "Select a line",
		Parent:     AbstractLineType,
	})

	SegmentType = imptype.Register(imptype.Spec{
		Name:       "segment",
		Display:    "Segment",
		SelectText: "Select a segment",
		Parent:     AbstractLineType,
		OwnProperties: []imptype.Property{
			{Internal: "length", Display: "Length"},
			{Internal: "midpoint", Display: "Midpoint"},
		},
	})

	RayType = imptype.Register(imptype.Spec{
		Name:       "ray",
		Display:    "Ray",
		SelectText: "Select a ray",
		Parent:     AbstractLineType,
	})

	VectorType = imptype.Register(imptype.Spec{
		Name:       "vector",
		Display:    "Vector",
		SelectText: "Select a vector",
		Parent:     AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "length", Display: "Length"},
		},
	})

	CircleType = imptype.Register(imptype.Spec{
		Name:       "circle",
		Display:    "Circle",
		SelectText: "Select a circle",
		Parent:     AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "center", Display: "Center", DefinedOnOrThrough: true},
			{Internal: "radius", Display: "Radius"},
			{Internal: "circumference", Display: "Circumference"},
		},
	})

	ConicType = imptype.Register(imptype.Spec{
		Name:       "conic",
		Display:    "Conic",
		SelectText: "Select a conic section",
		Parent:     AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "focus1", Display: "First focus"},
			{Internal: "focus2", Display: "Second focus"},
		},
	})

	CubicType = imptype.Register(imptype.Spec{
		Name:       "cubic",
		Display:    "Cubic curve",
		SelectText: "Select a cubic curve",
		Parent:     AnyType,
	})

	PolygonType = imptype.Register(imptype.Spec{
		Name:       "polygon",
		Display:    "Polygon",
		SelectText: "Select a polygon",
		Parent:     AnyType,
		OwnProperties: []imptype.Property{
			{Internal: "perimeter", Display: "Perimeter"},
			{Internal: "surface", Display: "Surface area"},
			{Internal: "number_of_vertices", Display: "Number of vertices"},
			{Internal: "center_of_mass", Display: "Center of mass"},
		},
	})

	TextType = imptype.Register(imptype.Spec{
		Name:       "text",
		Display:    "Text Label",
		SelectText: "Select a text label",
		Parent:     AnyType,
	})

	NumericTextType = imptype.Register(imptype.Spec{
		Name:    "numeric_text",
		Display: "Numeric Label",
		Parent:  TextType,
	})

	BoolTextType = imptype.Register(imptype.Spec{
		Name:    "bool_text",
		Display: "Boolean Label",
		Parent:  TextType,
	})

	TransformationType = imptype.Register(imptype.Spec{
		Name:       "transformation",
		Display:    "Transformation",
		SelectText: "Select a transformation",
		Parent:     AnyType,
	})

	InvalidType = imptype.Register(imptype.Spec{
		Name:    "invalid",
		Display: "Invalid Object",
		Parent:  AnyType,
	})
)
