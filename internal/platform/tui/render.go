package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"trexrunner/internal/core"
)

// dayStyles maps core.Color to lipgloss styles for the daytime scheme.
var dayStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// nightStyles is the inverted scheme used while the night cycle holds:
// everything shifts toward pale foregrounds so the scene reads as
// white-on-dark.
var nightStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("123")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("216")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences. The inverted flag selects the night scheme.
func RenderScreen(s *core.Screen, inverted bool) string {
	styles := dayStyles
	if inverted {
		styles = nightStyles
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
