// Package geo provides a closed taxonomy of planar and spatial shapes with
// closed-form area, perimeter, and volume calculations.
//
// # Points
//
// [Point2D] and [Point3D] are separate value records. A spatial point is not a
// planar point; code that only needs x and y uses [Point3D.Planar]:
//
//	p := geo.NewPoint3D(1, 2, 3)
//	q := p.Planar() // Point2D{1, 2}
//
// # Shapes
//
// Every shape satisfies [Shape] (area and perimeter). Spatial shapes also
// satisfy [Solid] (volume). The set of variants is fixed and enumerated by
// [Kind]:
//
//	geo.KindCircle     // planar, radius
//	geo.KindRectangle  // planar, width and height
//	geo.KindSquare     // planar, side
//	geo.KindSphere     // spatial, radius
//	geo.KindCube       // spatial, edge
//
// Planar shapes can be built from a reference point or from raw coordinates;
// both forms produce identical values:
//
//	c1 := geo.NewCircle(geo.NewPoint2D(0, 0), 3.5)
//	c2 := geo.NewCircleAt(0, 0, 3.5)
//
// [Sphere] and [Cube] hold a [Circle] and a [Square] built from the planar
// projection of their center. They reuse the helper's formulas but do not
// expose its methods.
//
// # Perimeter of Solids
//
// Perimeter is a planar notion. A [Cube] reports 0. A [Sphere] reports the
// circumference of its equatorial circle. The two are intentionally different:
// a cube's "perimeter" could mean its edges or its edges plus diagonals, so it
// is left at the solid default.
//
// # Measurement
//
// [Measure] flattens any shape into a [Measurement] holding its defining
// parameter, area, perimeter and, for solids, volume.
//
// # Validation
//
// Constructors accept any input, including zero, negative, or non-finite
// dimensions, and the formulas simply propagate them. Callers that want to
// reject such shapes call [Validate], which returns a structured error from
// the errors package.
//
// # Concurrency
//
// All types are immutable values and safe for concurrent use.
package geo
