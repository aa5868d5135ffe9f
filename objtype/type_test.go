package objtype_test

import (
	"testing"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	registered := objtype.Register(objtype.Spec{
		Name:    "test.objtype_echo",
		Display: "Echo",
		ArgSpec: argspec.Spec{Slots: []argspec.Slot{{RequiredType: imp.PointType}}},
		Calc:    func(args []imp.Imp, _ imp.Doc) imp.Imp { return args[0] },
	})

	found, err := objtype.Lookup("test.objtype_echo")
	require.NoError(t, err)
	assert.Same(t, registered, found)
}

func TestLookupUnknown(t *testing.T) {
	_, err := objtype.Lookup("test.objtype_does_not_exist")
	require.ErrorIs(t, err, objtype.ErrUnknownName)
}

func TestRegisterNilCalcPanics(t *testing.T) {
	assert.Panics(t, func() {
		objtype.Register(objtype.Spec{Name: "test.objtype_nilcalc"})
	})
}

func TestRegisterDuplicatePanics(t *testing.T) {
	objtype.Register(objtype.Spec{
		Name: "test.objtype_dup",
		Calc: func([]imp.Imp, imp.Doc) imp.Imp { return imp.InvalidImp{} },
	})
	assert.Panics(t, func() {
		objtype.Register(objtype.Spec{
			Name: "test.objtype_dup",
			Calc: func([]imp.Imp, imp.Doc) imp.Imp { return imp.InvalidImp{} },
		})
	})
}

func TestMoveReturnsNilWhenNotMovable(t *testing.T) {
	fixed := objtype.Register(objtype.Spec{
		Name:    "test.objtype_immovable",
		Calc:    func([]imp.Imp, imp.Doc) imp.Imp { return imp.InvalidImp{} },
		CanMove: false,
	})
	assert.Nil(t, fixed.Move(imp.InvalidImp{}, imp.Coordinate{}, nil))
}
