package argspec_test

import (
	"fmt"

	"github.com/gokig/kigcore/argspec"
	"github.com/gokig/kigcore/imp"
)

// ExampleCheck demonstrates matching two points against a
// "line through two points" spec as they arrive one at a time.
func ExampleCheck() {
	s := argspec.Spec{
		Slots: []argspec.Slot{
			{RequiredType: imp.PointType, SelectText: "select the first point"},
			{RequiredType: imp.PointType, SelectText: "select the second point"},
		},
	}

	p1 := imp.NewPointImp(imp.Coordinate{X: 0, Y: 0})
	result, _ := argspec.Check(s, []imp.Imp{p1})
	fmt.Println(result)

	p2 := imp.NewPointImp(imp.Coordinate{X: 1, Y: 1})
	result, _ = argspec.Check(s, []imp.Imp{p1, p2})
	fmt.Println(result)

	// Output:
	// valid
	// complete
}
