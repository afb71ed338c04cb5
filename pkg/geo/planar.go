package geo

import (
	"fmt"
	"math"
)

// Circle is a circle of a given radius around a center point.
type Circle struct {
	center Point2D
	radius float64
}

// NewCircle returns a circle of radius r centered at p.
func NewCircle(p Point2D, r float64) Circle {
	return Circle{center: p, radius: r}
}

// NewCircleAt returns a circle of radius r centered at (x, y).
func NewCircleAt(x, y, r float64) Circle {
	return NewCircle(NewPoint2D(x, y), r)
}

func (c Circle) Center() Point2D { return c.center }
func (c Circle) Radius() float64 { return c.radius }
func (Circle) Kind() Kind        { return KindCircle }
func (Circle) sealed()           {}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Perimeter returns the circumference 2πr.
func (c Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(r=%g @ %s)", c.radius, c.center)
}

// Rectangle is an axis-aligned rectangle with a reference point.
type Rectangle struct {
	center        Point2D
	width, height float64
}

// NewRectangle returns a w by h rectangle referenced at p.
func NewRectangle(p Point2D, w, h float64) Rectangle {
	return Rectangle{center: p, width: w, height: h}
}

// NewRectangleAt returns a w by h rectangle referenced at (x, y).
func NewRectangleAt(x, y, w, h float64) Rectangle {
	return NewRectangle(NewPoint2D(x, y), w, h)
}

func (r Rectangle) Center() Point2D { return r.center }
func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }
func (Rectangle) Kind() Kind        { return KindRectangle }
func (Rectangle) sealed()           {}

// Area returns width times height.
func (r Rectangle) Area() float64 {
	return r.width * r.height
}

// Perimeter returns 2w + 2h.
func (r Rectangle) Perimeter() float64 {
	return 2*r.width + 2*r.height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("rectangle(w=%g h=%g @ %s)", r.width, r.height, r.center)
}

// Square is a square with a reference point.
type Square struct {
	center Point2D
	side   float64
}

// NewSquare returns a square of side s referenced at p.
func NewSquare(p Point2D, s float64) Square {
	return Square{center: p, side: s}
}

// NewSquareAt returns a square of side s referenced at (x, y).
func NewSquareAt(x, y, s float64) Square {
	return NewSquare(NewPoint2D(x, y), s)
}

func (s Square) Center() Point2D { return s.center }
func (s Square) Side() float64   { return s.side }
func (Square) Kind() Kind        { return KindSquare }
func (Square) sealed()           {}

// Area returns s².
func (s Square) Area() float64 {
	return s.side * s.side
}

// Perimeter returns 4s.
func (s Square) Perimeter() float64 {
	return 4 * s.side
}

func (s Square) String() string {
	return fmt.Sprintf("square(s=%g @ %s)", s.side, s.center)
}
