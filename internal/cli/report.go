package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/geo/pkg/geo"
)

// formatNumber renders v with six significant digits, trimming trailing zeros
// (38.48451000647496 -> "38.4845", 9 -> "9").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// areaLabel names a kind's area in the report.
func areaLabel(k geo.Kind) string {
	if k.Spatial() {
		return "surface area"
	}
	return "area"
}

// perimeterLabel names a kind's perimeter in the report. Round shapes have a
// circumference.
func perimeterLabel(k geo.Kind) string {
	switch k {
	case geo.KindCircle, geo.KindSphere:
		return "circumference"
	default:
		return "perimeter"
	}
}

// describe renders the report heading, e.g. "A rectangle with width 2 and height 5".
func describe(m geo.Measurement, p palette) string {
	parts := make([]string, len(m.Params))
	for i, param := range m.Params {
		parts[i] = param.Name + " " + p.value(formatNumber(param.Value))
	}
	return p.title("A "+m.Kind.String()) + " with " + strings.Join(parts, " and ")
}

// writeReport prints one block per shape: its defining parameters, area,
// perimeter and, for solids, volume.
func writeReport(w io.Writer, shapes []geo.Shape, p palette) error {
	for _, s := range shapes {
		m := geo.Measure(s)
		owner := capitalize(m.Kind.String()) + "'s"

		lines := []string{
			describe(m, p),
			fmt.Sprintf(" %s %s", p.label(owner+" "+areaLabel(m.Kind)+" is"), p.number(formatNumber(m.Area))),
			fmt.Sprintf(" %s %s", p.label(owner+" "+perimeterLabel(m.Kind)+" is"), p.number(formatNumber(m.Perimeter))),
		}
		if m.HasVolume {
			lines = append(lines, fmt.Sprintf(" %s %s", p.label(owner+" volume is"), p.number(formatNumber(m.Volume))))
		}

		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
