// Package argspec implements the Args parser/matcher: given a fixed,
// ordered Spec of typed argument slots and an unordered multiset of
// candidate Imps, it decides whether a construction can proceed
// (Complete), is still partial (Valid), or is impossible (Invalid),
// and canonicalizes an accepted argument list into the spec's
// declared order for calc.
//
// Matching is a single greedy pass over the candidate list, not a
// general bipartite matcher: for each candidate Imp, in input order,
// the still-unassigned slot with the deepest (most specific) matching
// RequiredType is chosen, breaking ties deterministically the way a
// one-pass topological sort breaks ties by insertion order.
package argspec
