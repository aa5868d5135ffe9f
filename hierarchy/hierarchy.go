package hierarchy

import (
	"errors"
	"fmt"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/imptype"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

// NodeKind distinguishes the four recipe-node flavors.
type NodeKind int

const (
	// Given is a free argument slot, filled from the Imp list passed
	// to BuildObjects.
	Given NodeKind = iota
	// Fixed is a Given slot that withFixedArgs has baked a constant
	// value into: it no longer consumes an entry from BuildObjects'
	// argument list.
	Fixed
	// Fetch reads one numbered property off an earlier node's Imp.
	Fetch
	// Apply runs an objtype.Type's Calc over earlier nodes' Imps.
	Apply
)

// Node is one entry in a Hierarchy's linear recipe. Every index a Node
// references (FetchSource, ApplyArgs) must be strictly less than the
// Node's own position in Hierarchy.Nodes: the recipe is stored
// already topologically sorted, so acyclicity is structural rather
// than something BuildObjects must check.
type Node struct {
	Kind NodeKind

	// Given
	GivenType *imptype.Type

	// Fixed
	FixedValue imp.Imp

	// Fetch
	FetchSource   int
	FetchProperty int

	// Apply
	ApplyType *objtype.Type
	ApplyArgs []int
}

// ErrWrongArgCount indicates BuildObjects was given a different number
// of Imps than the Hierarchy has free Given slots.
var ErrWrongArgCount = errors.New("hierarchy: wrong number of arguments")

// ErrBadReference indicates a Fetch or Apply node referenced an index
// at or beyond its own position — a malformed recipe, only reachable
// via a corrupted or hand-edited serialized document.
var ErrBadReference = errors.New("hierarchy: node references itself or a later node")

// Hierarchy is a serializable recipe of Nodes. By convention the final
// entry of Nodes is always the recipe's result; every other node
// exists only to support it (LastResultIndex documents this).
type Hierarchy struct {
	Nodes []Node
}

// LastResultIndex returns the index of the Node this Hierarchy
// ultimately produces — always len(Nodes)-1 by construction.
func (h Hierarchy) LastResultIndex() int { return len(h.Nodes) - 1 }

// NumGivens returns the number of free (non-Fixed) Given slots
// BuildObjects expects arguments for, in the order they appear.
func (h Hierarchy) NumGivens() int {
	n := 0
	for _, nd := range h.Nodes {
		if nd.Kind == Given {
			n++
		}
	}
	return n
}

// validate checks that every reference points strictly backward.
func (h Hierarchy) validate() error {
	for i, nd := range h.Nodes {
		switch nd.Kind {
		case Fetch:
			if nd.FetchSource < 0 || nd.FetchSource >= i {
				return fmt.Errorf("%w: node %d fetches %d", ErrBadReference, i, nd.FetchSource)
			}
		case Apply:
			for _, a := range nd.ApplyArgs {
				if a < 0 || a >= i {
					return fmt.Errorf("%w: node %d applies over %d", ErrBadReference, i, a)
				}
			}
		}
	}
	return nil
}

// BuildObjects instantiates a fresh chain of objgraph.Nodes from h,
// consuming one entry of args per free Given slot, in order. The
// returned slice is parallel to h.Nodes; the recipe's result Node is
// at index h.LastResultIndex(). The returned Nodes are newly
// constructed and not yet Calc'd — callers run objgraph.Sort then
// objgraph.Calc over (a slice containing) the result to populate
// values.
func (h Hierarchy) BuildObjects(args []imp.Imp) ([]*objgraph.Node, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	if len(args) != h.NumGivens() {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrWrongArgCount, h.NumGivens(), len(args))
	}

	built := make([]*objgraph.Node, len(h.Nodes))
	argIdx := 0
	for i, nd := range h.Nodes {
		switch nd.Kind {
		case Given:
			built[i] = objgraph.NewDataNode(args[argIdx])
			argIdx++
		case Fixed:
			built[i] = objgraph.NewDataNode(nd.FixedValue)
		case Fetch:
			built[i] = objgraph.NewPropertyNode(built[nd.FetchSource], nd.FetchProperty)
		case Apply:
			parents := make([]*objgraph.Node, len(nd.ApplyArgs))
			for k, a := range nd.ApplyArgs {
				parents[k] = built[a]
			}
			built[i] = objgraph.NewTypedNode(nd.ApplyType, parents)
		}
	}
	return built, nil
}

// FinalObject returns the result Node out of a BuildObjects result.
func (h Hierarchy) FinalObject(built []*objgraph.Node) *objgraph.Node {
	return built[h.LastResultIndex()]
}

// ArgParser derives the argspec.Spec a Hierarchy's free Given slots
// imply, in declaration order, so construction mode can drive
// candidate matching without re-deriving it from the Node chain by
// hand each time.
func (h Hierarchy) ArgParser() argspec.Spec {
	var slots []argspec.Slot
	for _, nd := range h.Nodes {
		if nd.Kind == Given {
			slots = append(slots, argspec.Slot{RequiredType: nd.GivenType})
		}
	}
	return argspec.Spec{Slots: slots}
}

// WithFixedArgs returns a new Hierarchy with the free Given slot at
// each key of fixed replaced by a Fixed node holding that value —
// partial application, used by redefinition and macro construction.
// Indices are positions among free Given slots only (0-based, in
// declaration order), not raw Nodes indices.
func (h Hierarchy) WithFixedArgs(fixed map[int]imp.Imp) Hierarchy {
	out := Hierarchy{Nodes: make([]Node, len(h.Nodes))}
	copy(out.Nodes, h.Nodes)

	givenSeen := 0
	for i, nd := range out.Nodes {
		if nd.Kind != Given {
			continue
		}
		if v, ok := fixed[givenSeen]; ok {
			out.Nodes[i] = Node{Kind: Fixed, FixedValue: v}
		}
		givenSeen++
	}
	return out
}

// TransformFinalObject returns a new Hierarchy whose result is h's old
// result with applyType (an IsTransform ObjectType's companion
// apply-type, e.g. ApplyTransformationType) applied, under a new free
// Given slot of TransformationType appended after h's existing Givens
// — the transform macro's "which transformation" argument.
func (h Hierarchy) TransformFinalObject(applyType *objtype.Type, transformationType *imptype.Type) Hierarchy {
	out := Hierarchy{Nodes: make([]Node, len(h.Nodes), len(h.Nodes)+2)}
	copy(out.Nodes, h.Nodes)

	oldResult := h.LastResultIndex()
	transformGivenIdx := len(out.Nodes)
	out.Nodes = append(out.Nodes, Node{Kind: Given, GivenType: transformationType})
	out.Nodes = append(out.Nodes, Node{
		Kind:      Apply,
		ApplyType: applyType,
		ApplyArgs: []int{oldResult, transformGivenIdx},
	})
	return out
}
