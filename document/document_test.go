package document_test

import (
	"testing"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoc struct{}

func (stubDoc) CoordinateSystem() string { return "Euclidean" }

func TestAddObjectRecalculatesImplicitGroup(t *testing.T) {
	d := document.NewDocument(stubDoc{})

	a := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0}))
	b := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 4}))
	mid := objgraph.NewTypedNode(objtype.MidpointType, []*objgraph.Node{a, b})

	d.AddObject(a, "A")
	d.AddObject(b, "B")
	d.AddObject(mid, "Midpoint")

	got := mid.Imp().(imp.PointImp)
	assert.InDelta(t, 2, got.Coord.X, 1e-9)
	assert.Equal(t, uint64(3), d.Generation())
}

func TestExplicitObjectGroupCoalescesGeneration(t *testing.T) {
	d := document.NewDocument(stubDoc{})

	d.StartObjectGroup()
	a := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0}))
	b := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 4}))
	mid := objgraph.NewTypedNode(objtype.MidpointType, []*objgraph.Node{a, b})
	d.AddObject(a, "A")
	d.AddObject(b, "B")
	d.AddObject(mid, "Midpoint")
	d.FinishObjectGroup()

	assert.Equal(t, uint64(1), d.Generation())
	assert.Equal(t, 2.0, mid.Imp().(imp.PointImp).Coord.X)
}

func TestCancelObjectGroupRollsBackAdds(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	d.StartObjectGroup()
	n := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{}))
	h := d.AddObject(n, "Temp")
	d.CancelObjectGroup()

	assert.Nil(t, d.Holder(h.Node.ID()))
	assert.Equal(t, uint64(0), d.Generation())
	assert.Empty(t, d.Holders())
}

func TestSelectionTracking(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	n := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{}))
	h := d.AddObject(n, "P")

	d.Select(h.Node.ID())
	require.Len(t, d.Selected(), 1)
	assert.Equal(t, h, d.Selected()[0])

	d.Deselect(h.Node.ID())
	assert.Empty(t, d.Selected())
}

func TestWhatAmIOnHitTestsTopmostFirst(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	p1 := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	p2 := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	d.AddObject(p1, "first")
	d.AddObject(p2, "second")

	hits := d.WhatAmIOn(imp.Coordinate{X: 0, Y: 0}, 0.5, 1)
	require.Len(t, hits, 2)
	assert.Equal(t, "second", hits[0].Label, "most recently added hits first")
}

func TestWhatAmIOnPrefersPointsOverOtherHits(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	seg := objgraph.NewDataNode(imp.NewSegmentImp(imp.Coordinate{X: -1, Y: 0}, imp.Coordinate{X: 1, Y: 0}))
	pt := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	d.AddObject(seg, "segment")
	d.AddObject(pt, "point")

	hits := d.WhatAmIOn(imp.Coordinate{X: 0, Y: 0}, 0.5, 1)
	require.Len(t, hits, 2)
	assert.Equal(t, "point", hits[0].Label, "points take precedence regardless of z-order")
	assert.Equal(t, "segment", hits[1].Label)
}

func TestRemoveObjectClearsSelection(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	n := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{}))
	h := d.AddObject(n, "P")
	d.Select(h.Node.ID())

	d.RemoveObject(h.Node.ID())
	assert.Empty(t, d.Selected())
	assert.Nil(t, d.Holder(h.Node.ID()))
}
