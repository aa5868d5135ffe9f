// Package imp implements ObjectImp: the immutable, value-semantic
// geometric and primitive data that flows through the dependency graph
// in package objgraph.
//
// Every concrete Imp (PointImp, LineImp, CircleImp, ConicImp, CubicImp,
// PolygonImp, TextImp, TransformationImp, and the primitive Int/Double/
// String/Bool Imps) implements the Imp interface and carries exactly
// one *imptype.Type. Imps are immutable: Copy, Transform and Equals are
// total functions that never panic on geometrically invalid input —
// an impossible transform (e.g. a non-affine map of a polygon across
// its vanishing line) yields InvalidImp rather than an error.
// Invalid-ness propagates: Transform, Property and most constructors
// return InvalidImp{} when given InvalidImp{} input rather than
// asserting.
//
// Matrix-heavy Imps (ConicImp, CubicImp, TransformationImp) hold their
// coefficients as gonum/mat matrices/vectors and use gonum/mat for
// determinant, inverse and solve.
package imp
