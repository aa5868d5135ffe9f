// Package imptype implements the single-inheritance type lattice over
// Imp values (see package imp).
//
// Every concrete Imp belongs to exactly one *Type, a process-lifetime
// singleton with pointer identity rooted at Any. Type.Inherits walks
// the parent chain to test subtyping; this is the only dispatch
// mechanism the rest of kigcore uses for argument matching, property
// lookup and display.
//
// Types are registered once, at package init of the imp package (and
// by any caller defining macro result types), via Register. Integer
// type codes exist only internally for switch dispatch in a few hot
// paths (see Code); the externally visible identity of a Type is
// always its machine Name, never an integer.
//
// Complexity:
//
//   - Time:   O(depth) for Inherits, where depth is the lattice height
//     (small and fixed for this domain, typically < 6).
//   - Memory: O(1) per Type; registry is O(number of registered types).
package imptype
