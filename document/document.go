package document

import (
	"sync"

	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
)

// Holder wraps one objgraph.Node with the display/bookkeeping state a
// Document needs but the graph itself has no business knowing about:
// a human-facing label and a show/hide flag.
type Holder struct {
	Node  *objgraph.Node
	Label string
	Shown bool
}

// Document owns a set of Holders, the current selection among them,
// and coalesces recalculation/notification across object groups — a
// batch of graph mutations (several AddObject/RemoveObject calls, or
// a single construction's Build result) that should recalculate and
// bump Generation exactly once, not once per mutation.
//
// AddObject and MarkDirty are each a complete, self-contained object
// group if no StartObjectGroup is already open: callers making
// one change at a time never need to think about grouping, and
// callers making several related changes wrap them in
// StartObjectGroup/FinishObjectGroup to get one recalculation instead
// of several.
type Document struct {
	mu sync.RWMutex

	doc imp.Doc

	holders map[uint64]*Holder
	order   []uint64

	selection map[uint64]bool

	generation uint64

	groupDepth int
	groupAdded []uint64
	groupDirty map[uint64]*objgraph.Node
}

// NewDocument creates an empty Document. doc is the imp.Doc context
// passed to every Calc invocation (coordinate system, etc.).
func NewDocument(doc imp.Doc) *Document {
	return &Document{
		doc:       doc,
		holders:   map[uint64]*Holder{},
		selection: map[uint64]bool{},
	}
}

// Generation returns a counter that increases by exactly one each
// time an object group finishes and recalculates — observers can
// cheaply poll it instead of registering callbacks.
func (d *Document) Generation() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.generation
}

// StartObjectGroup opens (or, if one is already open, extends) a
// mutation batch: recalculation and the Generation bump are deferred
// until the outermost FinishObjectGroup.
func (d *Document) StartObjectGroup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.groupDepth == 0 {
		d.groupAdded = nil
		d.groupDirty = map[uint64]*objgraph.Node{}
	}
	d.groupDepth++
}

// FinishObjectGroup closes one level of object group. At depth 0 it
// recalculates every Node touched during the group (and their
// descendants among the Document's own Holders), then bumps
// Generation once.
func (d *Document) FinishObjectGroup() {
	d.mu.Lock()
	if d.groupDepth == 0 {
		d.mu.Unlock()
		return
	}
	d.groupDepth--
	if d.groupDepth > 0 {
		d.mu.Unlock()
		return
	}

	dirty := make([]*objgraph.Node, 0, len(d.groupDirty))
	for _, n := range d.groupDirty {
		dirty = append(dirty, n)
	}
	universe := d.allNodesLocked()
	d.groupAdded = nil
	d.groupDirty = nil
	d.mu.Unlock()

	affected := objgraph.DescendantsInOrder(dirty, universe)
	objgraph.Calc(d.doc, affected)

	d.mu.Lock()
	d.generation++
	d.mu.Unlock()
}

// CancelObjectGroup aborts the entire current object group
// (regardless of nesting depth), rolling back every Holder added
// during it and discarding pending recalculation — no recalc runs and
// Generation does not change. Holder removals made during the group
// are not rolled back: once a Node is unlinked from the Document its
// callers must treat the removal as committed.
func (d *Document) CancelObjectGroup() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range d.groupAdded {
		delete(d.holders, id)
		d.order = removeID(d.order, id)
		delete(d.selection, id)
	}
	d.groupDepth = 0
	d.groupAdded = nil
	d.groupDirty = nil
}

// AddObject registers n as a new Holder with the given label, shown
// by default, and marks it dirty for the enclosing (or an implicit,
// single-call) object group.
func (d *Document) AddObject(n *objgraph.Node, label string) *Holder {
	implicit := d.maybeAutoStart()
	defer d.maybeAutoFinish(implicit)

	h := &Holder{Node: n, Label: label, Shown: true}

	d.mu.Lock()
	d.holders[n.ID()] = h
	d.order = append(d.order, n.ID())
	if d.groupDepth > 0 {
		d.groupAdded = append(d.groupAdded, n.ID())
		d.groupDirty[n.ID()] = n
	}
	d.mu.Unlock()

	return h
}

// RemoveObject deletes the Holder for id, if any. It does not remove
// n's Node from whatever objgraph links it still has to other
// Document Nodes; callers must Disconnect first if that matters.
func (d *Document) RemoveObject(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.holders, id)
	d.order = removeID(d.order, id)
	delete(d.selection, id)
	if d.groupDirty != nil {
		delete(d.groupDirty, id)
	}
}

// MarkDirty flags n for recalculation when the current (or an
// implicit) object group finishes — used after SetData on a Holder's
// Node, since SetData itself has no notion of Document grouping.
func (d *Document) MarkDirty(n *objgraph.Node) {
	implicit := d.maybeAutoStart()
	defer d.maybeAutoFinish(implicit)

	d.mu.Lock()
	if d.groupDirty != nil {
		d.groupDirty[n.ID()] = n
	}
	d.mu.Unlock()
}

func (d *Document) maybeAutoStart() bool {
	d.mu.RLock()
	open := d.groupDepth > 0
	d.mu.RUnlock()
	if open {
		return false
	}
	d.StartObjectGroup()
	return true
}

func (d *Document) maybeAutoFinish(owned bool) {
	if owned {
		d.FinishObjectGroup()
	}
}

// Holders returns every Holder in insertion order.
func (d *Document) Holders() []*Holder {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Holder, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.holders[id])
	}
	return out
}

// Holder returns the Holder for id, or nil if none exists.
func (d *Document) Holder(id uint64) *Holder {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.holders[id]
}

// allNodesLocked returns every Holder's Node; caller must hold d.mu.
func (d *Document) allNodesLocked() []*objgraph.Node {
	out := make([]*objgraph.Node, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.holders[id].Node)
	}
	return out
}

// Select adds id to the current selection.
func (d *Document) Select(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.holders[id]; ok {
		d.selection[id] = true
	}
}

// Deselect removes id from the current selection.
func (d *Document) Deselect(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.selection, id)
}

// ClearSelection empties the current selection.
func (d *Document) ClearSelection() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selection = map[uint64]bool{}
}

// Selected returns every currently selected Holder, in insertion order.
func (d *Document) Selected() []*Holder {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []*Holder
	for _, id := range d.order {
		if d.selection[id] {
			out = append(out, d.holders[id])
		}
	}
	return out
}

// WhatAmIOn hit-tests p (within width pixels at the given zoom scale)
// against every shown Holder's current Imp, nearest first in z-order
// (most recently added first, matching typical top-to-bottom canvas
// stacking) — except that point holders are prepended ahead of every
// non-point hit, so a point sitting on top of a line or circle always
// wins the hit-test regardless of insertion order.
func (d *Document) WhatAmIOn(p imp.Coordinate, width, scale float64) []*Holder {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var points, rest []*Holder
	for i := len(d.order) - 1; i >= 0; i-- {
		h := d.holders[d.order[i]]
		if !h.Shown {
			continue
		}
		if !h.Node.Imp().Contains(p, width, scale) {
			continue
		}
		if _, isPoint := h.Node.Imp().(imp.PointImp); isPoint {
			points = append(points, h)
		} else {
			rest = append(rest, h)
		}
	}
	return append(points, rest...)
}

func removeID(list []uint64, target uint64) []uint64 {
	out := list[:0]
	for _, id := range list {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}
