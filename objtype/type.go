package objtype

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/imptype"
)

// Sentinel errors for the ObjectType registry, mirroring imptype's
// registry shape since both are append-only, name-addressed catalogs.
var (
	ErrEmptyName     = errors.New("objtype: machine name is empty")
	ErrDuplicateName = errors.New("objtype: machine name already registered")
	ErrUnknownName   = errors.New("objtype: unknown machine name")
)

// CalcFunc computes an ObjectType's result Imp from its already-sorted
// Args and the document context. CalcFunc is a total, pure function:
// args that don't describe a usable construction (degenerate,
// coincident, parallel where intersecting was required) yield
// InvalidImp, never an error or panic — only a structural failure
// (malformed input reaching Calc at all) is a programmer error, and
// that can only happen if a caller skips argspec.Check first.
type CalcFunc func(args []imp.Imp, doc imp.Doc) imp.Imp

// MoveFunc computes replacement values for the movable parents of an
// object being dragged to a new location. It returns one replacement
// Imp per entry in movableParents (same order), or nil if the move
// cannot be expressed (e.g. dragging a fully-constrained object).
type MoveFunc func(cur imp.Imp, to imp.Coordinate, parents []imp.Imp) []imp.Imp

// SpecialAction names a context-menu action an ObjectType exposes
// beyond the generic show/hide/remove set (e.g. "Add Text Label",
// "Redefine Point").
type SpecialAction struct {
	Name string
	Text string
}

// Type is a single registered ObjectType: the named pure function
// backing one kind of construction, plus the capability metadata a
// construction-mode UI needs to decide what it can do with instances
// of it.
type Type struct {
	name        string
	display     string
	spec        argspec.Spec
	resultType  *imptype.Type
	calc        CalcFunc
	canMove     bool
	move        MoveFunc
	isTransform bool
	actions     []SpecialAction
}

// Name returns t's unique machine name, its wire identity in
// serialized ObjectHierarchies.
func (t *Type) Name() string { return t.name }

// DisplayName returns the human-facing name of the construction.
func (t *Type) DisplayName() string { return t.display }

// ArgSpec returns the argspec.Spec candidate Imps are matched against
// before Calc may be invoked.
func (t *Type) ArgSpec() argspec.Spec { return t.spec }

// ResultType returns the ImpType Calc is expected to produce when
// given a Complete, valid argument list (informational; Calc itself
// remains the source of truth since a degenerate input still yields
// InvalidImp rather than violating this).
func (t *Type) ResultType() *imptype.Type { return t.resultType }

// Calc evaluates args (already Sorted by argspec.Sort) against doc.
func (t *Type) Calc(args []imp.Imp, doc imp.Doc) imp.Imp {
	return t.calc(args, doc)
}

// CanMove reports whether dragging an instance of t is meaningful.
func (t *Type) CanMove() bool { return t.canMove }

// Move computes replacement parent values for a drag to coordinate to,
// or nil if t.CanMove() is false or the move has no expression.
func (t *Type) Move(cur imp.Imp, to imp.Coordinate, parents []imp.Imp) []imp.Imp {
	if !t.canMove || t.move == nil {
		return nil
	}
	return t.move(cur, to, parents)
}

// IsTransform reports whether t represents one of the geometric
// transformation constructions (translation, rotation, reflection,
// ...), whose result is a TransformationImp that
// ApplyTransformationType then applies to another object.
func (t *Type) IsTransform() bool { return t.isTransform }

// SpecialActions returns the extra context-menu actions t exposes.
func (t *Type) SpecialActions() []SpecialAction { return t.actions }

// Spec describes a Type to be registered.
type Spec struct {
	Name        string
	Display     string
	ArgSpec     argspec.Spec
	ResultType  *imptype.Type
	Calc        CalcFunc
	CanMove     bool
	Move        MoveFunc
	IsTransform bool
	Actions     []SpecialAction
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Type{}
	order      []*Type
)

// Register creates, registers and returns a new *Type singleton from
// spec. Register panics on ErrEmptyName, ErrDuplicateName or a nil
// Calc function: all three are programmer errors made exclusively at
// package-init time, never from data driven at runtime.
func Register(spec Spec) *Type {
	if spec.Name == "" {
		panic(ErrEmptyName)
	}
	if spec.Calc == nil {
		panic(fmt.Errorf("objtype: %s registered with nil Calc", spec.Name))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[spec.Name]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateName, spec.Name))
	}

	t := &Type{
		name:        spec.Name,
		display:     spec.Display,
		spec:        spec.ArgSpec,
		resultType:  spec.ResultType,
		calc:        spec.Calc,
		canMove:     spec.CanMove,
		move:        spec.Move,
		isTransform: spec.IsTransform,
		actions:     spec.Actions,
	}
	registry[spec.Name] = t
	order = append(order, t)

	return t
}

// Lookup returns the registered Type for name, or ErrUnknownName. Used
// when deserializing an ObjectHierarchy: an unrecognized type name is
// a structural failure, never a panic.
func Lookup(name string) (*Type, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return t, nil
}

// All returns every registered Type, in registration order.
func All() []*Type {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]*Type, len(order))
	copy(out, order)
	return out
}
