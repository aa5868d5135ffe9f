package imptype_test

import (
	"fmt"

	"github.com/gokig/kigcore/imptype"
)

// ExampleRegister builds a tiny two-level lattice and shows how
// Inherits walks the parent chain and property indices accumulate
// across it.
func ExampleRegister() {
	base := imptype.Register(imptype.Spec{
		Name:    "example.base",
		Display: "Base",
		OwnProperties: []imptype.Property{
			{Internal: "length", Display: "Length"},
		},
	})
	derived := imptype.Register(imptype.Spec{
		Name:    "example.derived",
		Display: "Derived",
		Parent:  base,
		OwnProperties: []imptype.Property{
			{Internal: "angle", Display: "Angle"},
		},
	})

	fmt.Println(derived.Inherits(base))
	fmt.Println(derived.NumberOfProperties())
	fmt.Println(derived.Property(0).Internal)
	fmt.Println(derived.Property(1).Internal)

	// Output:
	// true
	// 2
	// length
	// angle
}
