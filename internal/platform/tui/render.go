package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/dino-run/internal/core"
)

// Runner palette hex values.
const (
	hexSky   = "#f7f7f7"
	hexInk   = "#535353"
	hexCloud = "#d3d3d3"
	hexEye   = "#ffffff"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorSky:     lipgloss.NewStyle().Background(lipgloss.Color(hexSky)),
	core.ColorInk:     lipgloss.NewStyle().Foreground(lipgloss.Color(hexInk)).Background(lipgloss.Color(hexSky)),
	core.ColorCloud:   lipgloss.NewStyle().Foreground(lipgloss.Color(hexCloud)).Background(lipgloss.Color(hexSky)),
	core.ColorEye:     lipgloss.NewStyle().Foreground(lipgloss.Color(hexEye)).Background(lipgloss.Color(hexInk)),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	if subtitle != "" {
		subtitleX := boxX + (boxW-len(subtitle))/2
		dst.DrawText(subtitleX, boxY+3, subtitle)
	}
}
