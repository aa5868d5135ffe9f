// Package hierarchy implements ObjectHierarchy: a serializable
// recipe of Given/Fixed/Fetch/Apply nodes that can rebuild an object graph
// fragment from its own argument Imps, independent of any particular
// objgraph.Node instances. A Hierarchy is built once (typically by
// walking an existing fragment of the document's graph) and then
// reused to:
//
//   - buildObjects: instantiate a fresh objgraph.Node chain from a
//     concrete list of argument Imps, without touching the real graph.
//   - withFixedArgs: partially apply some of the recipe's Given slots,
//     producing a Hierarchy with fewer free arguments (redefinition,
//     macro construction).
//   - transformFinalObject: wrap the recipe's result in an Apply node
//     under a supplied Transformation, for transform macros.
//   - argParser: derive the argspec.Spec a Hierarchy's free Given
//     slots imply, so construction mode can drive matching without
//     re-deriving it from the node chain by hand.
//
// Locus, also in this package, is a Hierarchy-backed parametric curve:
// its one Given slot is a scalar parameter (a DoubleType), and it
// evaluates the Hierarchy at a series of parameter values, producing a
// polyline approximation of the traced curve.
package hierarchy
