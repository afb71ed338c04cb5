package geo

// Kind identifies one variant of the closed shape set.
type Kind int

// Shape kinds. Planar kinds come first.
const (
	KindCircle Kind = iota
	KindRectangle
	KindSquare
	KindSphere
	KindCube

	kindCount
)

var kindNames = [kindCount]string{
	KindCircle:    "circle",
	KindRectangle: "rectangle",
	KindSquare:    "square",
	KindSphere:    "sphere",
	KindCube:      "cube",
}

// String returns the lowercase name of the kind, or "unknown".
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Spatial reports whether shapes of this kind are three dimensional.
func (k Kind) Spatial() bool {
	return k == KindSphere || k == KindCube
}

// Kinds returns every shape kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Shape is the capability shared by every shape.
//
// The interface is sealed: only types in this package implement it.
type Shape interface {
	// Area returns the shape's area. For solids this is the surface area.
	Area() float64
	// Perimeter returns the length of the shape's boundary.
	Perimeter() float64
	// Kind returns the variant of the shape.
	Kind() Kind

	sealed()
}

// Solid is a three dimensional Shape.
type Solid interface {
	Shape
	// Volume returns the space enclosed by the solid.
	Volume() float64
}

// Compile-time interface checks.
var (
	_ Shape = Circle{}
	_ Shape = Rectangle{}
	_ Shape = Square{}
	_ Solid = Sphere{}
	_ Solid = Cube{}
)

// solidPerimeter is the perimeter of a solid that does not define one.
func solidPerimeter() float64 { return 0 }
