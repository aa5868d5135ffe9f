// Package kigcore is a dependency-graph geometry kernel: the
// calculation engine behind a Kig-style interactive geometry
// construction tool, without any UI.
//
// A construction is a DAG of Object nodes (objgraph) whose leaves hold
// directly-set values (a fixed point's coordinate) and whose internal
// nodes derive their value as a pure function of their parents' values
// (a midpoint, a perpendicular line, a polygon's vertices). Recomputing
// the DAG after an edit touches only the affected subtree
// (objgraph.DescendantsInOrder), not the whole document.
//
// Subpackages:
//
//	imp/         — the closed set of geometric value types (ObjectImp)
//	imptype/     — the Imp type lattice: a process-wide registry of
//	               singleton types with single inheritance
//	argspec/     — matches a candidate argument list against an
//	               ObjectType's declared slots
//	objtype/     — the ObjectType catalog: named pure (Args, Doc) → Imp
//	               functions plus capability metadata
//	objgraph/    — the Object dependency DAG: nodes, topological sort,
//	               incremental recalculation
//	hierarchy/   — serializable macro recipes (Given/Fixed/Fetch/Apply)
//	               and the Locus parametric-curve sampler built on them
//	construction/ — the interactive state machine for building a new
//	               Object from a sequence of speculative arguments
//	document/    — the Holder set, selection, and object-group
//	               transactional mutation batching
//	formats/     — the native XML document format and legacy KGeo import
//	cmd/kig/     — the command-line entry point
package kigcore
