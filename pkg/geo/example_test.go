package geo_test

import (
	"fmt"

	"github.com/matzehuels/geo/pkg/geo"
)

func ExampleNewCircle() {
	c := geo.NewCircle(geo.NewPoint2D(0, 0), 3.5)

	fmt.Printf("area %.6g\n", c.Area())
	fmt.Printf("circumference %.6g\n", c.Perimeter())
	// Output:
	// area 38.4845
	// circumference 21.9911
}

func ExampleNewSquareAt() {
	s := geo.NewSquareAt(0, 0, 3)

	fmt.Println(s.Area(), s.Perimeter())
	// Output:
	// 9 12
}

func ExampleNewSphere() {
	s := geo.NewSphere(geo.NewPoint3D(0, 0, 0), 3.5)

	fmt.Printf("surface area %.6g\n", s.Area())
	fmt.Printf("circumference %.6g\n", s.Perimeter())
	fmt.Printf("volume %.6g\n", s.Volume())
	// Output:
	// surface area 153.938
	// circumference 21.9911
	// volume 179.594
}

func ExampleNewCube() {
	c := geo.NewCube(geo.NewPoint3D(0, 0, 0), 3)

	fmt.Println(c.Area(), c.Perimeter(), c.Volume())
	// Output:
	// 54 0 27
}

func ExampleMeasure() {
	shapes := []geo.Shape{
		geo.NewRectangleAt(0, 0, 2, 5),
		geo.NewCube(geo.NewPoint3D(0, 0, 0), 2),
	}

	for _, s := range shapes {
		m := geo.Measure(s)
		fmt.Printf("%s %v area=%g perimeter=%g", m.Kind, m.Params, m.Area, m.Perimeter)
		if m.HasVolume {
			fmt.Printf(" volume=%g", m.Volume)
		}
		fmt.Println()
	}
	// Output:
	// rectangle [width=2 height=5] area=10 perimeter=14
	// cube [edge=2] area=24 perimeter=0 volume=8
}

func ExampleValidate() {
	fmt.Println(geo.Validate(geo.NewCircleAt(0, 0, 1)))
	fmt.Println(geo.Validate(geo.NewCircleAt(0, 0, -1)))
	// Output:
	// <nil>
	// INVALID_DIMENSION: circle radius must be positive, got -1
}
