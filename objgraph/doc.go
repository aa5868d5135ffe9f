// Package objgraph implements the Object dependency graph and its
// calc-path algorithms: every Object is a Node of one
// of three flavors (Data, Property, Typed), linked to its parents and
// children by mutual references kept in lockstep — connecting a and b
// always records a as b's parent AND b as a's child in the same call,
// so the reflexivity invariant "a.children contains b iff b.parents
// contains a" can never be violated from inside this package.
//
// Node construction is itself acyclic by design (a Property or Typed
// Node can only be built from Nodes that already exist), but
// DetectCycle is exposed for callers that reconstruct a graph from
// serialized recipes where a forward reference would otherwise slip
// through silently.
//
// Calc paths (Sort, DescendantsInOrder, Calc) are grounded on a
// grey/black depth-first traversal with an insertion-order tie-break,
// the same shape as a textbook topological sort: discovery order on
// the stack determines iteration order when several Nodes are equally
// eligible, so results are deterministic across runs given the same
// construction order.
//
// Complexity: Sort and DescendantsInOrder are O(V + E) over the
// reachable subgraph; Calc is O(V + E) plus whatever each Node's
// ObjectType.Calc costs.
package objgraph
