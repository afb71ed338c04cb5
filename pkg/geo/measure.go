package geo

import (
	"fmt"

	geoerrors "github.com/matzehuels/geo/pkg/errors"
)

// Param is a named defining dimension of a shape, such as a radius.
type Param struct {
	Name  string
	Value float64
}

// Measurement is a flat record of everything computable about a shape.
type Measurement struct {
	Kind      Kind
	Params    []Param // defining dimensions, primary first
	Area      float64
	Perimeter float64
	Volume    float64 // zero unless HasVolume
	HasVolume bool
}

// Measure evaluates every formula for s.
//
// It panics if s is a shape kind this function does not know about, which can
// only happen when a new variant is added without extending the switch.
func Measure(s Shape) Measurement {
	m := Measurement{
		Kind:      s.Kind(),
		Area:      s.Area(),
		Perimeter: s.Perimeter(),
	}

	switch v := s.(type) {
	case Circle:
		m.Params = []Param{{"radius", v.Radius()}}
	case Rectangle:
		m.Params = []Param{{"width", v.Width()}, {"height", v.Height()}}
	case Square:
		m.Params = []Param{{"side", v.Side()}}
	case Sphere:
		m.Params = []Param{{"radius", v.Radius()}}
	case Cube:
		m.Params = []Param{{"edge", v.Edge()}}
	default:
		panic(geoerrors.New(geoerrors.ErrCodeInternal, "unhandled shape kind %s (%T)", s.Kind(), s))
	}

	if solid, ok := s.(Solid); ok {
		m.Volume = solid.Volume()
		m.HasVolume = true
	}
	return m
}

// Primary returns the first defining parameter.
func (m Measurement) Primary() Param {
	if len(m.Params) == 0 {
		return Param{}
	}
	return m.Params[0]
}

func (p Param) String() string {
	return fmt.Sprintf("%s=%g", p.Name, p.Value)
}
