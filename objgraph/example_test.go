package objgraph_test

import (
	"fmt"

	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

// ExampleCalc wires two data points into a midpoint Node and
// recalculates after nudging one of them, the incremental path a
// Document's FinishObjectGroup drives.
func ExampleCalc() {
	a := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	b := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 2, Y: 0}))
	mid := objgraph.NewTypedNode(objtype.MidpointType, []*objgraph.Node{a, b})

	sorted, _ := objgraph.Sort([]*objgraph.Node{mid})
	objgraph.Calc(nil, sorted)
	fmt.Println(mid.Imp().(imp.PointImp).Coord)

	b.SetData(imp.NewPointImp(imp.Coordinate{X: 4, Y: 0}))
	affected := objgraph.DescendantsInOrder([]*objgraph.Node{b}, []*objgraph.Node{a, b, mid})
	objgraph.Calc(nil, affected)
	fmt.Println(mid.Imp().(imp.PointImp).Coord)

	// Output:
	// {1 0}
	// {2 0}
}
