package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/geo/pkg/geo"
)

const demoReport = `A circle with radius 3.5
 Circle's area is 38.4845
 Circle's circumference is 21.9911
A square with side 3
 Square's area is 9
 Square's perimeter is 12
A sphere with radius 3.5
 Sphere's surface area is 153.938
 Sphere's circumference is 21.9911
 Sphere's volume is 179.594
A cube with edge 3
 Cube's surface area is 54
 Cube's perimeter is 0
 Cube's volume is 27
`

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3.5, "3.5"},
		{9, "9"},
		{0, "0"},
		{38.48451000647496, "38.4845"},
		{179.59438003021648, "179.594"},
		{-6, "-6"},
		{1234567, "1.23457e+06"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteReportDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, demoShapes(), palette{}); err != nil {
		t.Fatalf("writeReport() error: %v", err)
	}

	if got := buf.String(); got != demoReport {
		t.Errorf("writeReport() =\n%s\nwant\n%s", got, demoReport)
	}
}

func TestWriteReportRectangle(t *testing.T) {
	var buf bytes.Buffer
	shapes := []geo.Shape{geo.NewRectangleAt(1, 1, 2, 5)}
	if err := writeReport(&buf, shapes, palette{}); err != nil {
		t.Fatalf("writeReport() error: %v", err)
	}

	want := "A rectangle with width 2 and height 5\n" +
		" Rectangle's area is 10\n" +
		" Rectangle's perimeter is 14\n"
	if got := buf.String(); got != want {
		t.Errorf("writeReport() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteReportStyledKeepsText(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReport(&buf, demoShapes(), palette{styled: true}); err != nil {
		t.Fatalf("writeReport() error: %v", err)
	}

	for _, want := range []string{"A circle", "radius", "3.5", "38.4845", "volume is", "179.594"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("styled report missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPalettePlain(t *testing.T) {
	var p palette
	for _, render := range []func(string) string{p.title, p.label, p.value, p.number} {
		if got := render("3.5"); got != "3.5" {
			t.Errorf("plain palette rendered %q, want %q", got, "3.5")
		}
	}
}

func TestLabels(t *testing.T) {
	tests := []struct {
		kind      geo.Kind
		area      string
		perimeter string
	}{
		{geo.KindCircle, "area", "circumference"},
		{geo.KindRectangle, "area", "perimeter"},
		{geo.KindSquare, "area", "perimeter"},
		{geo.KindSphere, "surface area", "circumference"},
		{geo.KindCube, "surface area", "perimeter"},
	}

	for _, tt := range tests {
		if got := areaLabel(tt.kind); got != tt.area {
			t.Errorf("areaLabel(%s) = %q, want %q", tt.kind, got, tt.area)
		}
		if got := perimeterLabel(tt.kind); got != tt.perimeter {
			t.Errorf("perimeterLabel(%s) = %q, want %q", tt.kind, got, tt.perimeter)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := capitalize("sphere"); got != "Sphere" {
		t.Errorf("capitalize(sphere) = %q", got)
	}
	if got := capitalize(""); got != "" {
		t.Errorf("capitalize(\"\") = %q", got)
	}
}
