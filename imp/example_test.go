package imp_test

import (
	"fmt"

	"github.com/gokig/kigcore/imp"
)

// ExampleCircleImp_PointAtParam walks a unit circle at three parameter
// values, the same curve-parametrization contract a Locus hierarchy
// bakes in as its driving-point construction.
func ExampleCircleImp_PointAtParam() {
	c := imp.NewCircleImp(imp.Coordinate{X: 0, Y: 0}, 1)

	for _, t := range []float64{0, 0.25, 0.5} {
		p, ok := c.PointAtParam(t)
		fmt.Printf("t=%.2f ok=%v (%.3f, %.3f)\n", t, ok, p.X, p.Y)
	}

	// Output:
	// t=0.00 ok=true (1.000, 0.000)
	// t=0.25 ok=true (0.000, 1.000)
	// t=0.50 ok=true (-1.000, 0.000)
}

// ExampleLineImp_Valid demonstrates that a degenerate line (two
// coincident points) calculates to an invalid Imp rather than
// panicking.
func ExampleLineImp_Valid() {
	a := imp.Coordinate{X: 1, Y: 1}
	degenerate := imp.NewLineImp(a, a)
	fmt.Println(degenerate.Valid())

	distinct := imp.NewLineImp(a, imp.Coordinate{X: 2, Y: 2})
	fmt.Println(distinct.Valid())

	// Output:
	// false
	// true
}
