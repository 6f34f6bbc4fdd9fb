package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/fx"
)

// Screen layout. Each board cell is two characters wide so blocks look
// square in a terminal.
const (
	CellW  = 2
	FrameW = Cols*CellW + 2
	FrameH = Rows + 2
	PanelW = 14

	ScreenW = FrameW + PanelW
	ScreenH = FrameH

	panelX = FrameW + 2
)

// Render draws the playfield, the active piece, particles, the next-piece
// preview and any overlay into dst. The HUD numbers are drawn separately by
// DrawHUD from the stats the caller has received.
func (g *Game) Render(dst *core.Screen, effects *fx.System) {
	dst.Clear()

	if dst.Width() < ScreenW || dst.Height() < ScreenH {
		dst.DrawText(0, 0, "Window too small")
		dst.DrawText(0, 1, fmt.Sprintf("Need %dx%d", ScreenW, ScreenH))
		return
	}

	frame := core.NewRect(0, 0, FrameW, FrameH)
	dst.DrawBox(frame, core.ThemeColor(g.level))

	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v := g.board[y][x]; v != 0 {
				drawBlock(dst, 1+x*CellW, 1+y, core.Color(v))
			} else {
				dst.SetColored(1+x*CellW+1, 1+y, '·', core.ColorDim)
			}
		}
	}

	if g.phase == PhaseFalling || g.phase == PhaseGrounded {
		p := g.piece
		p.Shape.each(func(sx, sy int, v uint8) {
			y := p.Y + sy
			if y < 0 {
				return
			}
			drawBlock(dst, 1+(p.X+sx)*CellW, 1+y, core.Color(v))
		})
	}

	if effects != nil {
		effects.Draw(dst, 1, 1, CellW)
	}

	g.drawPreview(dst)

	switch {
	case g.phase == PhaseGameOver:
		drawOverlay(dst, frame, "GAME OVER", fmt.Sprintf("SCORE %05d", g.score))
	case g.paused:
		drawOverlay(dst, frame, "PAUSED", "P TO RESUME")
	}
}

func (g *Game) drawPreview(dst *core.Screen) {
	dst.DrawTextColored(panelX, 1, "NEXT", core.ColorWhite)
	next := g.Next()
	if next == 0 {
		return
	}
	ShapeOf(next).each(func(sx, sy int, v uint8) {
		drawBlock(dst, panelX+sx*CellW, 2+sy, core.Color(v))
	})
}

// DrawHUD draws the score panel to the right of the playfield.
func DrawHUD(dst *core.Screen, stats Stats, best int) {
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%05d", stats.Score)},
		{"LEVEL", fmt.Sprintf("%d", stats.Level)},
		{"LINES", fmt.Sprintf("%d", stats.Lines)},
		{"BEST", fmt.Sprintf("%05d", max(best, stats.Score))},
	}
	y := 7
	for _, r := range rows {
		dst.DrawTextColored(panelX, y, r.label, core.ColorDim)
		dst.DrawTextColored(panelX, y+1, r.value, core.ColorWhite)
		y += 3
	}

	hints := []string{"←→ MOVE", "↑  ROTATE", "↓  SOFT", "SPC DROP", "P  PAUSE"}
	for i, h := range hints {
		dst.DrawTextColored(panelX, ScreenH-len(hints)-1+i, h, core.ColorDim)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i := 0; i < CellW; i++ {
		dst.SetColored(x+i, y, '█', c)
	}
}

// drawOverlay draws a two-line message box centered over the playfield.
func drawOverlay(dst *core.Screen, frame core.Rect, title, detail string) {
	box := core.NewRect(frame.X+3, frame.Y+frame.H/2-3, frame.W-6, 6)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box, box.Y+2, title, core.ColorRed)
	dst.DrawTextCentered(box, box.Y+3, detail, core.ColorWhite)
}
