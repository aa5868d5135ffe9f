package objtype_test

import (
	"fmt"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objtype"
)

// ExampleLookup resolves a registered builtin by its wire machine name,
// the same path document deserialization takes for an Apply node.
func ExampleLookup() {
	t, err := objtype.Lookup("kig.midpoint")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.DisplayName())

	args := []imp.Imp{
		imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}),
		imp.NewPointImp(imp.Coordinate{X: 2, Y: 6}),
	}
	result, _ := argspec.Check(t.ArgSpec(), args)
	fmt.Println(result)

	// Output:
	// Mid Point
	// complete
}
