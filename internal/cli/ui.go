package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorGreen = lipgloss.Color("35")  // Green - success
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader      = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
)

const iconSuccess = "✓"

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// =============================================================================
// Report Styling
// =============================================================================

// palette selects how report fragments are rendered.
// The zero value renders plain text.
type palette struct {
	styled bool
}

func (p palette) title(s string) string {
	if !p.styled {
		return s
	}
	return StyleTitle.Render(s)
}

func (p palette) label(s string) string {
	if !p.styled {
		return s
	}
	return StyleDim.Render(s)
}

func (p palette) value(s string) string {
	if !p.styled {
		return s
	}
	return StyleValue.Render(s)
}

func (p palette) number(s string) string {
	if !p.styled {
		return s
	}
	return StyleNumber.Render(s)
}
