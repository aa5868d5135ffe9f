package objgraph

import (
	"sync"
	"sync/atomic"

	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
)

// Kind distinguishes the three Node flavors.
type Kind int

const (
	// DataKind Nodes hold a directly-set Imp with no parents: the
	// leaves of the dependency graph (a fixed point's coordinate, a
	// numeric slider's value).
	DataKind Kind = iota
	// PropertyKind Nodes derive their Imp by reading one numbered
	// property off a single parent Node's Imp.
	PropertyKind
	// TypedKind Nodes derive their Imp by running an objtype.Type's
	// Calc function over their parents' Imps.
	TypedKind
)

// String renders k for diagnostics.
func (k Kind) String() string {
	switch k {
	case DataKind:
		return "data"
	case PropertyKind:
		return "property"
	case TypedKind:
		return "typed"
	default:
		return "unknown"
	}
}

var nextID uint64

// Node is one vertex of the Object dependency graph. A Node's parents
// and children slices are kept symmetric: connect(p, c) appends c to
// p.children and then p to c.parents, each under that Node's own
// lock, so the link is complete on both sides once connect returns.
type Node struct {
	mu sync.RWMutex

	id   uint64
	kind Kind

	parents  []*Node
	children []*Node

	cached imp.Imp
	calced bool

	// DataKind
	data imp.Imp

	// PropertyKind
	propIndex int

	// TypedKind
	objType *objtype.Type
}

// ID returns a Node's process-lifetime-unique identifier, used as the
// stable handle other packages (document, hierarchy) key their own
// bookkeeping on.
func (n *Node) ID() uint64 { return n.id }

// Kind returns n's flavor.
func (n *Node) Kind() Kind { return n.kind }

// Parents returns a copy of n's current parent list.
func (n *Node) Parents() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node, len(n.parents))
	copy(out, n.parents)
	return out
}

// Children returns a copy of n's current child list.
func (n *Node) Children() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ObjectType returns n's ObjectType, or nil if n.Kind() != TypedKind.
func (n *Node) ObjectType() *objtype.Type {
	if n.kind != TypedKind {
		return nil
	}
	return n.objType
}

// Imp returns n's most recently calculated value. A DataKind Node
// holds its value from construction; before the first Calc pass a
// Property or Typed Node's Imp is InvalidImp.
func (n *Node) Imp() imp.Imp {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.calced {
		return imp.InvalidImp{}
	}
	return n.cached
}

// setCache stores v as n's calculated value under the write lock.
func (n *Node) setCache(v imp.Imp) {
	n.mu.Lock()
	n.cached = v
	n.calced = true
	n.mu.Unlock()
}

// NewDataNode creates a parentless Node directly holding value.
func NewDataNode(value imp.Imp) *Node {
	n := &Node{id: atomic.AddUint64(&nextID, 1), kind: DataKind}
	n.setCache(value)
	return n
}

// SetData replaces a DataKind Node's value in place, keeping its
// identity (and therefore every child link) stable — this is how a
// fixed point gets dragged, or a numeric slider gets nudged, without
// rebuilding the graph around it.
//
// SetData panics if n is not a DataKind Node: reassigning a derived
// Node's value directly would silently break the invariant that its
// value is always a pure function of its parents.
func (n *Node) SetData(value imp.Imp) {
	if n.kind != DataKind {
		panic("objgraph: SetData on a non-data Node")
	}
	n.setCache(value)
}

// NewPropertyNode creates a Node that reads property index off
// source's Imp. It is connected to source as a parent immediately.
func NewPropertyNode(source *Node, index int) *Node {
	n := &Node{id: atomic.AddUint64(&nextID, 1), kind: PropertyKind, propIndex: index}
	connect(source, n)
	return n
}

// PropertyIndex returns the property index a PropertyKind Node reads;
// meaningless for other Kinds.
func (n *Node) PropertyIndex() int { return n.propIndex }

// NewTypedNode creates a Node whose Imp is t.Calc(parentImps, doc). It
// is connected to every entry of args as a parent, in order, since
// Calc's Args must arrive in the order t.ArgSpec() declares.
func NewTypedNode(t *objtype.Type, args []*Node) *Node {
	n := &Node{id: atomic.AddUint64(&nextID, 1), kind: TypedKind, objType: t}
	for _, a := range args {
		connect(a, n)
	}
	return n
}

// connect links parent as one of child's parents and child as one of
// parent's children: first the parent's slice under the parent's lock,
// then the child's slice under the child's lock.
func connect(parent, child *Node) {
	parent.mu.Lock()
	parent.children = append(parent.children, child)
	parent.mu.Unlock()

	child.mu.Lock()
	child.parents = append(child.parents, parent)
	child.mu.Unlock()
}

// Disconnect removes the parent/child link between parent and child,
// symmetrically. It is a no-op if no such link exists. It is for
// callers whose Node's argument list changes after construction.
func Disconnect(parent, child *Node) {
	parent.mu.Lock()
	parent.children = removeNode(parent.children, child)
	parent.mu.Unlock()

	child.mu.Lock()
	child.parents = removeNode(child.parents, parent)
	child.mu.Unlock()
}

// Connect is the exported form of connect, for callers (the formats
// KGeo importer) that build Nodes whose parent list isn't known at
// NewXNode time, e.g. while linking forward references in a file.
func Connect(parent, child *Node) { connect(parent, child) }

func removeNode(list []*Node, target *Node) []*Node {
	out := list[:0]
	for _, n := range list {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
