package objgraph

import (
	"errors"

	"github.com/gokig/kigcore/imp"
)

// ErrCycleDetected indicates the Node set passed to Sort or
// DetectCycle contains a dependency cycle, which can only arise from
// a malformed serialized recipe (construction-time Nodes are always
// acyclic by how NewPropertyNode/NewTypedNode connect only to
// already-existing parents).
var ErrCycleDetected = errors.New("objgraph: cycle detected")

// mark is the grey/black visitation state used by the depth-first
// traversals below, the standard three-color scheme for a
// topological sort.
type mark int

const (
	white mark = iota
	grey
	black
)

// Sort returns nodes and every one of their ancestors (transitively),
// in a full topological order: every Node appears after all of its
// parents. Traversal is depth-first with an insertion-order tie-break
// (the order nodes is given in, and the order each Node's Parents()
// slice lists them), so the result is deterministic for a given
// construction history.
//
// Sort returns ErrCycleDetected if the reachable subgraph contains a
// cycle.
func Sort(nodes []*Node) ([]*Node, error) {
	state := map[uint64]mark{}
	order := make([]*Node, 0, len(nodes))

	var visit func(n *Node) error
	visit = func(n *Node) error {
		switch state[n.id] {
		case black:
			return nil
		case grey:
			return ErrCycleDetected
		}
		state[n.id] = grey
		for _, p := range n.Parents() {
			if err := visit(p); err != nil {
				return err
			}
		}
		state[n.id] = black
		order = append(order, n)
		return nil
	}

	for _, n := range nodes {
		if err := visit(n); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// DetectCycle reports ErrCycleDetected if nodes (considered together
// with their ancestors) contains a dependency cycle, and nil
// otherwise. It is Sort without building the ordered result, for
// callers that only need the acyclicity check.
func DetectCycle(nodes []*Node) error {
	_, err := Sort(nodes)
	return err
}

// DescendantsInOrder returns every Node reachable from from by
// following child links — from's descendants, not including from
// itself unless it is also reachable as a descendant of another entry
// in from — intersected with universe, in topological order. This is
// the incremental recalculation path: after a DataKind Node changes,
// only it and its descendants within universe need recomputing, not
// the whole document.
//
// Traversal is breadth-first over children using a standard
// queue/visited-set pattern; the result is then re-ordered
// topologically (a descendant can be reachable from `from` by more
// than one path of different lengths, so BFS visit order alone is not
// a valid calc order).
func DescendantsInOrder(from []*Node, universe []*Node) []*Node {
	inUniverse := make(map[uint64]bool, len(universe))
	for _, n := range universe {
		inUniverse[n.id] = true
	}

	visited := map[uint64]bool{}
	queue := make([]*Node, 0, len(from))
	var reached []*Node

	for _, n := range from {
		if !visited[n.id] {
			visited[n.id] = true
			queue = append(queue, n)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if inUniverse[cur.id] {
			reached = append(reached, cur)
		}
		for _, c := range cur.Children() {
			if !visited[c.id] {
				visited[c.id] = true
				queue = append(queue, c)
			}
		}
	}

	sorted, err := Sort(reached)
	if err != nil {
		// Construction-time Nodes are acyclic by invariant; surfacing
		// BFS order rather than panicking keeps this function total.
		return reached
	}

	// Sort's result includes ancestors outside `reached` too (anything
	// needed to order reached's own members); filter back down to the
	// originally reached set, preserving Sort's order.
	keep := make(map[uint64]bool, len(reached))
	for _, n := range reached {
		keep[n.id] = true
	}
	out := make([]*Node, 0, len(reached))
	for _, n := range sorted {
		if keep[n.id] {
			out = append(out, n)
		}
	}
	return out
}

// Calc recomputes the Imp of every Node in nodes, which must already
// be in topological order (as returned by Sort or
// DescendantsInOrder) — Calc does not sort its input itself, since
// callers that already hold a Sort result would otherwise pay for it
// twice.
//
// A TypedKind Node whose parents include any InvalidImp value is
// short-circuited to InvalidImp without invoking its ObjectType's
// Calc: invalidity propagates structurally
// through the graph rather than requiring every Calc implementation to
// re-check its own inputs for validity.
func Calc(doc imp.Doc, nodes []*Node) {
	for _, n := range nodes {
		switch n.kind {
		case DataKind:
			// Already holds its value; nothing to recompute.
		case PropertyKind:
			n.setCache(calcProperty(n, doc))
		case TypedKind:
			n.setCache(calcTyped(n, doc))
		}
	}
}

func calcProperty(n *Node, doc imp.Doc) imp.Imp {
	parents := n.Parents()
	if len(parents) != 1 {
		return imp.InvalidImp{}
	}
	source := parents[0].Imp()
	if !source.Valid() {
		return imp.InvalidImp{}
	}
	v, err := source.Property(n.propIndex, doc)
	if err != nil {
		return imp.InvalidImp{}
	}
	return v
}

func calcTyped(n *Node, doc imp.Doc) imp.Imp {
	if n.objType == nil {
		return imp.InvalidImp{}
	}
	parents := n.Parents()
	args := make([]imp.Imp, len(parents))
	for i, p := range parents {
		v := p.Imp()
		if !v.Valid() {
			return imp.InvalidImp{}
		}
		args[i] = v
	}
	return n.objType.Calc(args, doc)
}
