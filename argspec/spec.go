package argspec

import (
	"errors"

	"github.com/gokig/kigcore/imptype"
)

// ErrEmptySpec indicates a Spec with no Slots and no Variadic tail was
// constructed; this is a programmer error, never user-reachable.
var ErrEmptySpec = errors.New("argspec: spec has no slots")

// Slot declares one fixed argument position.
type Slot struct {
	// RequiredType is the minimum ImpType a candidate must inherit from.
	RequiredType *imptype.Type
	// UseText is the hint shown once this slot is filled ("use this point as...").
	UseText string
	// SelectText is the hint shown while this slot is still empty.
	SelectText string
	// OnOrThrough marks a slot that accepts properties defined
	// on-or-through their owner Imp as equivalent to the owner itself
	//; unused by matching directly, carried for UI consumers.
	OnOrThrough bool
	// AllowReselect permits the same already-chosen Imp to fill this
	// slot again (IsAlreadySelectedOK), e.g. a degenerate bisector.
	AllowReselect bool
}

// Spec is a fixed, ordered argument specification: Slots are filled
// first, in order; if Variadic is non-nil, once all Slots are filled
// any further candidates matching Variadic.RequiredType extend the
// match indefinitely (or until VariadicMax, if > 0), covering
// "polygon through N points" / "cubic through up to 9 points".
type Spec struct {
	Slots       []Slot
	Variadic    *Slot
	VariadicMin int // minimum repeats of Variadic required for Complete (0 = none needed)
	VariadicMax int // 0 = unbounded
}

// NumFixed returns the number of fixed (non-variadic) slots.
func (s Spec) NumFixed() int { return len(s.Slots) }

// slotAt returns the requirement for logical position i (0-based),
// consulting the variadic tail once i reaches len(Slots).
func (s Spec) slotAt(i int) (Slot, bool) {
	if i < len(s.Slots) {
		return s.Slots[i], true
	}
	if s.Variadic == nil {
		return Slot{}, false
	}
	if s.VariadicMax > 0 && i >= len(s.Slots)+s.VariadicMax {
		return Slot{}, false
	}
	return *s.Variadic, true
}

// validate reports ErrEmptySpec for a Spec with nothing to match against.
func (s Spec) validate() error {
	if len(s.Slots) == 0 && s.Variadic == nil {
		return ErrEmptySpec
	}
	return nil
}
