// Package document implements the top-level Document: the
// Holder set that owns every objgraph.Node in a drawing, the current
// selection, object groups (transactional batches of graph mutations
// that recalculate and notify exactly once), and a generation counter
// observers can poll to learn whether anything changed since they last
// looked, without Document having to track individual listener
// callbacks itself.
package document
