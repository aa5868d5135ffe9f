package imptype

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for the type registry.
var (
	// ErrEmptyName indicates a Type was registered with an empty machine name.
	ErrEmptyName = errors.New("imptype: machine name is empty")

	// ErrDuplicateName indicates two Types were registered under the same machine name.
	ErrDuplicateName = errors.New("imptype: machine name already registered")

	// ErrUnknownName indicates Lookup was asked for a name with no registered Type.
	ErrUnknownName = errors.New("imptype: unknown machine name")

	// ErrPropertyIndex indicates a property index is out of range; this is a
	// programmer error and must never be reachable from user input.
	ErrPropertyIndex = errors.New("imptype: property index out of range")
)

// Property describes one entry in a Type's property list: an ordered,
// numbered, inherited sequence of named views onto an Imp.
//
// DefinedOnOrThrough marks properties that are geometrically the same
// object as their parent Imp (e.g. a circle's center): attaching a
// point to such a property and then intersecting it with the
// containing Imp must be treated as intersecting with the same object,
// not a coincidentally-equal one.
type Property struct {
	// Internal is the machine name used in serialization.
	Internal string
	// Display is the human-facing name.
	Display string
	// Icon names the icon resource associated with the property (may be empty).
	Icon string
	// Requires is the minimum Type an Imp must inherit from to expose this
	// property meaningfully; nil means no further restriction beyond the
	// owning Type itself.
	Requires *Type
	// DefinedOnOrThrough is true when the property's value denotes the same
	// underlying object as its parent, not merely an equal-valued copy.
	DefinedOnOrThrough bool
}

// Type is a single node in the Imp type lattice: a process-lifetime
// singleton identified by pointer and by a unique machine Name.
//
// Types are immutable after Register returns; the properties slice is
// the concatenation of the parent's properties (low indices) followed
// by this Type's own appended properties, established once at
// registration time so index lookups never need to walk the chain.
type Type struct {
	name       string
	display    string // singular display name
	selectText string // "select a %1" style hint text
	byIndex    string // "the %1'th selected object" style text
	verbAdd    string
	verbRemove string
	verbMove   string
	verbShow   string
	verbHide   string
	parent     *Type
	code       Code
	properties []Property
}

// Code is an internal enumeration used only for switch-dispatch
// optimizations; it carries no external meaning and is never
// serialized (machine Name is the wire identity).
type Code int

// Name returns o's unique machine name.
func (t *Type) Name() string { return t.name }

// DisplayName returns the singular, human-facing name of the type.
func (t *Type) DisplayName() string { return t.display }

// SelectText returns the hint text shown while the user is being asked
// to pick an object of this type ("select a point", etc.).
func (t *Type) SelectText() string { return t.selectText }

// ByIndexText returns the "by index" display template, e.g. for
// referring to the i'th point among several selected points.
func (t *Type) ByIndexText() string { return t.byIndex }

// Verb returns the action verb text for one of the standard actions:
// "add", "remove", "move", "show", "hide". Unknown actions return "".
func (t *Type) Verb(action string) string {
	switch action {
	case "add":
		return t.verbAdd
	case "remove":
		return t.verbRemove
	case "move":
		return t.verbMove
	case "show":
		return t.verbShow
	case "hide":
		return t.verbHide
	default:
		return ""
	}
}

// Code returns the internal dispatch code for t.
func (t *Type) Code() Code { return t.code }

// Parent returns t's parent in the lattice, or nil if t is the root (Any).
func (t *Type) Parent() *Type { return t.parent }

// Inherits reports whether t is other, or a descendant of other,
// walking the parent chain up to the root. Inherits(t, t) is always true.
//
// Complexity: O(depth).
func (t *Type) Inherits(other *Type) bool {
	if other == nil {
		return false
	}
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// NumberOfProperties returns the total number of properties visible on
// t, including inherited ones.
func (t *Type) NumberOfProperties() int { return len(t.properties) }

// Property returns the property descriptor at i.
//
// Precondition: 0 <= i < t.NumberOfProperties(). Violating it is a
// programmer error and panics with ErrPropertyIndex rather than
// returning a zero value silently, since no user-reachable path may
// ever supply an out-of-range index.
func (t *Type) Property(i int) Property {
	if i < 0 || i >= len(t.properties) {
		panic(fmt.Errorf("%w: %d (have %d)", ErrPropertyIndex, i, len(t.properties)))
	}
	return t.properties[i]
}

// Properties returns the full, ordered property list (inherited then own).
// The returned slice must not be mutated by callers.
func (t *Type) Properties() []Property { return t.properties }

// String returns the machine name, matching how Types are compared and
// serialized throughout kigcore.
func (t *Type) String() string { return t.name }

var (
	registryMu sync.RWMutex
	registry   = map[string]*Type{}
	nextCode   Code
)

// Spec describes a Type to be registered. Parent may be nil only for
// the root type (conventionally named "any").
type Spec struct {
	Name       string
	Display    string
	SelectText string
	ByIndex    string
	VerbAdd    string
	VerbRemove string
	VerbMove   string
	VerbShow   string
	VerbHide   string
	Parent     *Type
	// OwnProperties are appended after the parent's full property list.
	OwnProperties []Property
}

// Register creates, registers and returns a new *Type singleton from
// spec. Register panics on ErrEmptyName or ErrDuplicateName: both are
// programmer errors made exclusively at package-init time by code that
// defines new Imp kinds, never by data driven at runtime.
//
// Complexity: O(len(parent.properties) + len(spec.OwnProperties)).
func Register(spec Spec) *Type {
	if spec.Name == "" {
		panic(ErrEmptyName)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[spec.Name]; exists {
		panic(fmt.Errorf("%w: %s", ErrDuplicateName, spec.Name))
	}

	var props []Property
	if spec.Parent != nil {
		props = append(props, spec.Parent.properties...)
	}
	props = append(props, spec.OwnProperties...)

	t := &Type{
		name:       spec.Name,
		display:    spec.Display,
		selectText: spec.SelectText,
		byIndex:    spec.ByIndex,
		verbAdd:    spec.VerbAdd,
		verbRemove: spec.VerbRemove,
		verbMove:   spec.VerbMove,
		verbShow:   spec.VerbShow,
		verbHide:   spec.VerbHide,
		parent:     spec.Parent,
		code:       nextCode,
		properties: props,
	}
	nextCode++
	registry[spec.Name] = t

	return t
}

// Lookup returns the registered Type for name, or ErrUnknownName if no
// such Type has been registered. Used when deserializing an
// ObjectHierarchy or native document: a missing name is a structural
// failure, never a panic.
func Lookup(name string) (*Type, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	t, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return t, nil
}

// All returns every registered Type, in registration order. Intended
// for diagnostics and tests.
func All() []*Type {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]*Type, 0, len(registry))
	// Rebuild order by Code, which is monotonically assigned at Register time.
	byCode := make([]*Type, nextCode)
	for _, t := range registry {
		byCode[t.code] = t
	}
	for _, t := range byCode {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}
