package geo

import (
	"fmt"
	"math"
)

// Sphere is a sphere around a spatial center.
//
// It keeps a Circle built from the planar projection of its center and
// borrows that circle's radius and circumference.
type Sphere struct {
	center Point3D
	circle Circle
}

// NewSphere returns a sphere of radius r centered at p.
func NewSphere(p Point3D, r float64) Sphere {
	return Sphere{center: p, circle: NewCircle(p.Planar(), r)}
}

func (s Sphere) Center() Point3D { return s.center }
func (s Sphere) Radius() float64 { return s.circle.Radius() }
func (Sphere) Kind() Kind        { return KindSphere }
func (Sphere) sealed()           {}

// Area returns the surface area 4πr².
func (s Sphere) Area() float64 {
	r := s.circle.Radius()
	return 4 * math.Pi * r * r
}

// Perimeter returns the circumference of the equatorial circle, 2πr.
// Unlike other solids, a sphere does not report 0.
func (s Sphere) Perimeter() float64 {
	return s.circle.Perimeter()
}

// Volume returns 4/3·πr³.
func (s Sphere) Volume() float64 {
	r := s.circle.Radius()
	return 4.0 / 3.0 * math.Pi * r * r * r
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere(r=%g @ %s)", s.Radius(), s.center)
}

// Cube is an axis-aligned cube around a spatial center.
//
// It keeps a Square built from the planar projection of its center and uses
// it for the edge length and face area. There is no perimeter override:
// whether it should count edges or edges and diagonals is ambiguous.
type Cube struct {
	center Point3D
	square Square
}

// NewCube returns a cube with edge a centered at p.
func NewCube(p Point3D, a float64) Cube {
	return Cube{center: p, square: NewSquare(p.Planar(), a)}
}

func (c Cube) Center() Point3D { return c.center }
func (c Cube) Edge() float64   { return c.square.Side() }
func (Cube) Kind() Kind        { return KindCube }
func (Cube) sealed()           {}

// Area returns the surface area of the six faces.
func (c Cube) Area() float64 {
	return 6 * c.square.Area()
}

// Perimeter is always 0.
func (c Cube) Perimeter() float64 {
	return solidPerimeter()
}

// Volume returns a³.
func (c Cube) Volume() float64 {
	a := c.square.Side()
	return a * a * a
}

func (c Cube) String() string {
	return fmt.Sprintf("cube(a=%g @ %s)", c.Edge(), c.center)
}
