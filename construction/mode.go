package construction

import (
	"errors"
	"math"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
)

// ErrRejected is returned by Click when the candidate cannot extend
// the current accepted argument list at all (it matches no remaining
// slot).
var ErrRejected = errors.New("construction: candidate rejected")

// ErrAlreadySelected is returned by Click when the candidate's handle
// has already been accepted for a slot whose Slot.AllowReselect is
// false.
var ErrAlreadySelected = errors.New("construction: object already selected")

// Mode drives one in-progress construction: a chosen ObjectType plus
// the Imps accepted so far, re-checked against the type's ArgSpec
// after every Click.
type Mode struct {
	objType *objtype.Type
	spec    argspec.Spec

	accepted []imp.Imp
	handles  []any

	snapToGrid bool
	gridSize   float64
}

// NewMode starts a construction of t.
func NewMode(t *objtype.Type) *Mode {
	return &Mode{objType: t, spec: t.ArgSpec()}
}

// ObjectType returns the ObjectType being constructed.
func (m *Mode) ObjectType() *objtype.Type { return m.objType }

// Accepted returns the Imps accepted so far, in acceptance order (not
// yet the canonical Spec order — that's only meaningful once
// Complete).
func (m *Mode) Accepted() []imp.Imp {
	out := make([]imp.Imp, len(m.accepted))
	copy(out, m.accepted)
	return out
}

// SetSnapToGrid enables or disables grid snapping for cursor
// hypotheses, and sets the grid cell size (ignored while disabled).
func (m *Mode) SetSnapToGrid(enabled bool, gridSize float64) {
	m.snapToGrid = enabled
	m.gridSize = gridSize
}

// SnapToGrid rounds c to the nearest multiple of gridSize in each
// coordinate. A non-positive gridSize is treated as "no snapping".
func SnapToGrid(c imp.Coordinate, gridSize float64) imp.Coordinate {
	if gridSize <= 0 {
		return c
	}
	return imp.Coordinate{
		X: math.Round(c.X/gridSize) * gridSize,
		Y: math.Round(c.Y/gridSize) * gridSize,
	}
}

// Hypothesis reports the Result of speculatively appending candidate
// to the accepted list, without mutating Mode — pure, rerunnable as
// often as the mouse moves, since argspec.Check is itself pure.
func (m *Mode) Hypothesis(candidate imp.Imp) argspec.Result {
	trial := append(append([]imp.Imp{}, m.accepted...), candidate)
	result, _ := argspec.Check(m.spec, trial)
	return result
}

// CursorHypothesis is the pendingPoint/cursorPoint test: it snaps raw
// to the grid if enabled, wraps it as a PointImp, and reports what
// Result accepting it right now would produce, alongside the
// (possibly snapped) PointImp itself so the caller can draw a preview
// at the exact location that would be used.
func (m *Mode) CursorHypothesis(raw imp.Coordinate) (argspec.Result, imp.PointImp) {
	c := raw
	if m.snapToGrid {
		c = SnapToGrid(c, m.gridSize)
	}
	candidate := imp.NewPointImp(c)
	return m.Hypothesis(candidate), candidate
}

// Click accepts candidate (identified by the opaque handle of the
// object it came from — a held object, or nil for empty-canvas
// clicks) as the next argument, if doing so doesn't leave the
// construction Invalid. It returns the Result after acceptance.
//
// handle lets Mode enforce IsAlreadySelectedOK: clicking the same
// existing object twice is only legal for a slot whose Spec marks
// AllowReselect.
func (m *Mode) Click(handle any, candidate imp.Imp) (argspec.Result, error) {
	trial := append(append([]imp.Imp{}, m.accepted...), candidate)
	result, assigned := argspec.Check(m.spec, trial)
	if result == argspec.Invalid {
		return result, ErrRejected
	}

	slotIdx := assigned[len(assigned)-1]
	if slotIdx == -1 {
		return argspec.Invalid, ErrRejected
	}
	if handle != nil {
		for _, h := range m.handles {
			if h == handle && !argspec.IsAlreadySelectedOK(m.spec, slotIdx) {
				return argspec.Invalid, ErrAlreadySelected
			}
		}
	}

	m.accepted = trial
	m.handles = append(m.handles, handle)
	return result, nil
}

// Undo removes the most recently accepted argument, if any.
func (m *Mode) Undo() {
	if len(m.accepted) == 0 {
		return
	}
	m.accepted = m.accepted[:len(m.accepted)-1]
	m.handles = m.handles[:len(m.handles)-1]
}

// Cancel discards every accepted argument, returning Mode to its
// just-started state. Safe to call at any time: every hypothesis
// tried so far was speculative and left nothing to roll back.
func (m *Mode) Cancel() {
	m.accepted = nil
	m.handles = nil
}

// IsComplete reports whether the accepted arguments currently Check
// as Complete.
func (m *Mode) IsComplete() bool {
	result, _ := argspec.Check(m.spec, m.accepted)
	return result == argspec.Complete
}

// ErrNotComplete is returned by Build when called before IsComplete.
var ErrNotComplete = errors.New("construction: not complete")

// Build canonicalizes the accepted arguments and evaluates the
// ObjectType's Calc over them. It fails with ErrNotComplete if the
// construction isn't yet Complete.
func (m *Mode) Build(doc imp.Doc) (imp.Imp, error) {
	if !m.IsComplete() {
		return imp.InvalidImp{}, ErrNotComplete
	}
	sorted, err := argspec.Sort(m.spec, m.accepted)
	if err != nil {
		return imp.InvalidImp{}, err
	}
	return m.objType.Calc(sorted, doc), nil
}
