package geo

import "fmt"

// Point2D is a point in the plane.
type Point2D struct {
	x, y float64
}

// NewPoint2D returns the planar point (x, y).
func NewPoint2D(x, y float64) Point2D {
	return Point2D{x: x, y: y}
}

// X returns the point's x coordinate.
func (p Point2D) X() float64 { return p.x }

// Y returns the point's y coordinate.
func (p Point2D) Y() float64 { return p.y }

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// Point3D is a point in space. It is not a Point2D; use Planar to view it as one.
type Point3D struct {
	x, y, z float64
}

// NewPoint3D returns the spatial point (x, y, z).
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{x: x, y: y, z: z}
}

// X returns the point's x coordinate.
func (p Point3D) X() float64 { return p.x }

// Y returns the point's y coordinate.
func (p Point3D) Y() float64 { return p.y }

// Z returns the point's z coordinate.
func (p Point3D) Z() float64 { return p.z }

// Planar projects the point onto the xy plane by dropping z.
func (p Point3D) Planar() Point2D {
	return Point2D{x: p.x, y: p.y}
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.x, p.y, p.z)
}
