package argspec

import (
	"errors"

	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/imptype"
)

// Result is the tri-state outcome of matching a candidate Imp list
// against a Spec
type Result int

const (
	// Invalid means no assignment of the candidates to the spec's slots
	// exists at all: some candidate cannot fill any unassigned slot.
	Invalid Result = iota
	// Valid means the candidates assign cleanly but at least one fixed
	// slot remains unfilled: the construction could still succeed if
	// more Imps arrive.
	Valid
	// Complete means every fixed slot (and, if VariadicMin > 0, enough
	// of the variadic tail) has an assignment: the construction may
	// proceed to calc.
	Complete
)

// String renders r for diagnostics.
func (r Result) String() string {
	switch r {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// ErrNotComplete is returned by Sort when called on a candidate list
// that Check would not report Complete for.
var ErrNotComplete = errors.New("argspec: args do not complete the spec")

// Check matches impList against s using a single greedy pass: for each
// candidate, in input order, the still-unassigned slot with the
// deepest (most specific) matching RequiredType is chosen — the
// "most specific remaining slot" tie-break. It returns the
// overall Result plus, for each candidate, the logical slot index it
// was assigned to (or -1 if the candidate matched nothing).
//
// Complexity: O(len(impList) * spec depth), spec depth bounded by the
// number of declared slots.
func Check(s Spec, impList []imp.Imp) (Result, []int) {
	assigned := make([]int, len(impList))
	for i := range assigned {
		assigned[i] = -1
	}

	taken := map[int]bool{}
	variadicCount := 0

	for i, candidate := range impList {
		if candidate == nil || !candidate.Valid() {
			continue
		}
		slotIdx, ok := bestSlot(s, candidate, taken, variadicCount)
		if !ok {
			continue
		}
		assigned[i] = slotIdx
		if slotIdx >= len(s.Slots) {
			variadicCount++
		} else {
			taken[slotIdx] = true
		}
	}

	for _, a := range assigned {
		if a == -1 {
			return Invalid, assigned
		}
	}

	if len(taken) < len(s.Slots) {
		return Valid, assigned
	}
	if s.Variadic != nil && variadicCount < s.VariadicMin {
		return Valid, assigned
	}
	return Complete, assigned
}

// bestSlot finds the still-unassigned logical slot index whose
// RequiredType is the deepest ancestor candidate.Type() inherits from,
// among every slot candidate could fill (fixed slots not yet in taken,
// plus the variadic tail if not yet exhausted).
func bestSlot(s Spec, candidate imp.Imp, taken map[int]bool, variadicCount int) (int, bool) {
	best := -1
	var bestDepth int
	ct := candidate.Type()

	for i, slot := range s.Slots {
		if taken[i] {
			continue
		}
		if slot.RequiredType != nil && !ct.Inherits(slot.RequiredType) {
			continue
		}
		d := depth(slot.RequiredType)
		if best == -1 || d > bestDepth {
			best, bestDepth = i, d
		}
	}
	if best != -1 {
		return best, true
	}

	if s.Variadic != nil {
		withinMax := s.VariadicMax == 0 || variadicCount < s.VariadicMax
		if withinMax && (s.Variadic.RequiredType == nil || ct.Inherits(s.Variadic.RequiredType)) {
			return len(s.Slots) + variadicCount, true
		}
	}
	return -1, false
}

// depth returns the distance from t up to the lattice root, used only
// to compare "specificity" between two candidate RequiredTypes; a nil
// RequiredType (accepts Any) sorts as the least specific.
func depth(t *imptype.Type) int {
	n := 0
	for cur := t; cur != nil; cur = cur.Parent() {
		n++
	}
	return n
}

// MatchingArgs runs Check and, for every fixed slot with no assigned
// candidate, reports its logical index — the "holes" a construction
// mode hypothesis test needs to know it's still waiting on. The
// returned slice is empty (never nil) when result is Complete.
func MatchingArgs(s Spec, impList []imp.Imp) (result Result, unfilled []int) {
	result, assigned := Check(s, impList)

	taken := make([]bool, len(s.Slots))
	for _, a := range assigned {
		if a >= 0 && a < len(s.Slots) {
			taken[a] = true
		}
	}
	unfilled = make([]int, 0)
	for i, ok := range taken {
		if !ok {
			unfilled = append(unfilled, i)
		}
	}
	return result, unfilled
}

// Sort canonicalizes args into the order s declares: fixed slots
// first (in spec order), then any variadic-tail matches in the order
// they were supplied. Sort requires args to Check as Complete;
// otherwise it returns ErrNotComplete.
//
// Sort is idempotent: calling Sort on its own output reassigns every
// Imp to the same slot it already occupies, so Sort(Sort(xs)) ==
// Sort(xs) — each already-canonical position is itself the most
// specific remaining slot for its own Imp when matching proceeds
// left to right.
func Sort(s Spec, args []imp.Imp) ([]imp.Imp, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	result, assigned := Check(s, args)
	if result != Complete {
		return nil, ErrNotComplete
	}

	out := make([]imp.Imp, len(args))
	numFixed := len(s.Slots)
	variadicWrite := numFixed

	for i, a := range assigned {
		if a < numFixed {
			out[a] = args[i]
		} else {
			out[variadicWrite] = args[i]
			variadicWrite++
		}
	}
	return out, nil
}

// IsAlreadySelectedOK reports whether the slot at logical index
// matches may accept the same Imp that already fills it — a
// degenerate but legal re-selection (e.g. picking the same point
// twice for a "line through two points" where the second point is
// still pending). False for any index outside the declared slots or
// whose Slot.AllowReselect is unset.
func IsAlreadySelectedOK(s Spec, index int) bool {
	slot, ok := s.slotAt(index)
	if !ok {
		return false
	}
	return slot.AllowReselect
}
