package blockfall

import (
	"math"
	"time"
)

// lineScores is the base score for clearing n rows at once. A piece spans at
// most four rows, so n never exceeds 4.
var lineScores = [5]int{0, 40, 100, 300, 1200}

const linesPerLevel = 10

// DropInterval returns the gravity period for a level: 800ms shrinking by
// 20% per level, never below 80ms.
func DropInterval(level int) time.Duration {
	ms := float64(InitialDropInterval/time.Millisecond) * math.Pow(0.8, float64(level-1))
	d := time.Duration(ms * float64(time.Millisecond))
	return max(d, MinDropInterval)
}

// GarbageRows returns how many garbage rows are pushed in when a level is
// reached.
func GarbageRows(level int) int {
	switch {
	case level < 2:
		return 0
	case level < 5:
		return 1
	case level < 10:
		return 2
	default:
		return 3
	}
}

// clearLines removes every complete row, scanning bottom-up, and applies
// scoring and level progression.
func (g *Game) clearLines() {
	cleared := 0
	for y := Rows - 1; y >= 0; y-- {
		if !g.board.rowFull(y) {
			continue
		}
		for x := 0; x < Cols; x++ {
			g.emit(Event{Kind: EventCellCleared, X: x, Y: y, Color: g.board[y][x]})
		}
		g.board.removeRow(y)
		cleared++
		y++ // the row above has moved into y
	}
	if cleared == 0 {
		return
	}

	g.lines += cleared
	g.score += lineScores[cleared] * g.level

	if level := g.lines/linesPerLevel + 1; level > g.level {
		g.level = level
		g.dropInterval = DropInterval(level)
		g.emit(Event{Kind: EventLevelUp, Count: level})
		g.InjectGarbage(GarbageRows(level))
	}

	kind := EventClear
	if cleared >= 4 {
		kind = EventMajorClear
	}
	g.emit(Event{Kind: kind, Count: cleared})
	g.emitStats()
}
