package hierarchy_test

import (
	"fmt"

	"github.com/gokig/kigcore/hierarchy"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

// ExampleHierarchy_BuildObjects recreates a midpoint from a two-Given
// recipe and evaluates it, the same shape a redefined construction's
// saved recipe takes.
func ExampleHierarchy_BuildObjects() {
	h := hierarchy.Hierarchy{Nodes: []hierarchy.Node{
		{Kind: hierarchy.Given, GivenType: imp.PointType},
		{Kind: hierarchy.Given, GivenType: imp.PointType},
		{Kind: hierarchy.Apply, ApplyType: objtype.MidpointType, ApplyArgs: []int{0, 1}},
	}}

	built, err := h.BuildObjects([]imp.Imp{
		imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}),
		imp.NewPointImp(imp.Coordinate{X: 4, Y: 2}),
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	sorted, _ := objgraph.Sort(built)
	objgraph.Calc(nil, sorted)

	result := h.FinalObject(built).Imp().(imp.PointImp)
	fmt.Printf("(%.1f, %.1f)\n", result.Coord.X, result.Coord.Y)

	// Output:
	// (2.0, 1.0)
}
