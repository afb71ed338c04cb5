package geo

import (
	geoerrors "github.com/matzehuels/geo/pkg/errors"
)

// Validate reports whether s has finite, strictly positive dimensions and a
// finite reference point. It returns the first problem found as a
// *errors.Error with code INVALID_DIMENSION or INVALID_COORDINATE.
//
// Constructors never validate; callers opt in.
func Validate(s Shape) error {
	for _, p := range Measure(s).Params {
		if err := geoerrors.ValidateDimension(s.Kind().String()+" "+p.Name, p.Value); err != nil {
			return err
		}
	}

	switch v := s.(type) {
	case Circle:
		return validatePoint2D(v.Center())
	case Rectangle:
		return validatePoint2D(v.Center())
	case Square:
		return validatePoint2D(v.Center())
	case Sphere:
		return validatePoint3D(v.Center())
	case Cube:
		return validatePoint3D(v.Center())
	}
	return nil
}

func validatePoint2D(p Point2D) error {
	for _, c := range []struct {
		axis string
		v    float64
	}{{"x", p.X()}, {"y", p.Y()}} {
		if err := geoerrors.ValidateCoordinate(c.axis, c.v); err != nil {
			return err
		}
	}
	return nil
}

func validatePoint3D(p Point3D) error {
	if err := validatePoint2D(p.Planar()); err != nil {
		return err
	}
	return geoerrors.ValidateCoordinate("z", p.Z())
}
