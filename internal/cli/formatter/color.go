package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Shared palette. The accent color changes with the trip type; the rest
// stays fixed.
var (
	ColorGreen  = lipgloss.Color("#4ade80")
	ColorYellow = lipgloss.Color("#facc15")
	ColorRed    = lipgloss.Color("#f87171")
	ColorDim    = lipgloss.Color("#6b7280")
	ColorFg     = lipgloss.Color("#e5e7eb")

	ColorSky    = lipgloss.Color("#38bdf8")
	ColorIndigo = lipgloss.Color("#818cf8")
	ColorViolet = lipgloss.Color("#a78bfa")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Theme carries the trip-type accent used across the board and the
// command output.
type Theme struct {
	Accent lipgloss.Color
	Header lipgloss.Style
	Badge  lipgloss.Style
}

// ThemeFor maps a trip type to its accent theme: sky for beaches, indigo
// for mountains, violet for cities.
func ThemeFor(t domain.TripType) Theme {
	accent := ColorSky
	switch t {
	case domain.TripMountains:
		accent = ColorIndigo
	case domain.TripCities:
		accent = ColorViolet
	}
	return Theme{
		Accent: accent,
		Header: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Badge:  lipgloss.NewStyle().Foreground(accent),
	}
}

// Section renders a section header in the accent color with an underline.
func (th Theme) Section(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", th.Header.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
