package document_test

import (
	"fmt"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

type exampleDoc struct{}

func (exampleDoc) CoordinateSystem() string { return "Euclidean" }

// ExampleDocument_WhatAmIOn shows a point hit-test winning over an
// overlapping segment, regardless of which was added first.
func ExampleDocument_WhatAmIOn() {
	d := document.NewDocument(exampleDoc{})

	a := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	b := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 10, Y: 0}))
	segment := objgraph.NewTypedNode(objtype.SegmentByTwoPointsType, []*objgraph.Node{a, b})
	point := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 5, Y: 0}))

	d.StartObjectGroup()
	d.AddObject(a, "A")
	d.AddObject(b, "B")
	d.AddObject(segment, "AB")
	d.AddObject(point, "P")
	d.FinishObjectGroup()

	hits := d.WhatAmIOn(imp.Coordinate{X: 5, Y: 0}, 0.1, 1)
	fmt.Println(hits[0].Label)

	// Output:
	// P
}
