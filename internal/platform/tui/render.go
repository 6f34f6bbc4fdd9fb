package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// palette maps core.Color to terminal colors. Block and theme colors are
// true-color hex; lipgloss degrades them on smaller palettes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:    "#c0392b",
	core.ColorGreen:  "#27ae60",
	core.ColorPurple: "#8e44ad",
	core.ColorYellow: "#f1c40f",
	core.ColorBlue:   "#2980b9",
	core.ColorOrange: "#d35400",
	core.ColorTeal:   "#16a085",
	core.ColorGray:   "#7f8c8d",
	core.ColorWhite:  "#ecf0f1",
	core.ColorDim:    "#636e72",

	core.ColorWood:       "#4e342e",
	core.ColorWoodLight:  "#5d4037",
	core.ColorWoodMid:    "#6d4c41",
	core.ColorDarkWood:   "#3e2723",
	core.ColorNavy:       "#1a237e",
	core.ColorDeepPurple: "#311b92",
	core.ColorRedAlert:   "#b71c1c",
	core.ColorMaroon:     "#880e4f",
	core.ColorDarkGrey:   "#212121",
	core.ColorVoid:       "#2d2d2d", // pure black would vanish on dark terminals
}

// colorStyles holds one foreground style per palette entry.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, fg := range palette {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
