package blockfall

import (
	"testing"
	"time"
)

func fillRow(b *Board, y int, v uint8) {
	for x := 0; x < Cols; x++ {
		b[y][x] = v
	}
}

func TestLineClearScoring(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		level int
		score int
		kind  EventKind
	}{
		{"single", 1, 1, 40, EventClear},
		{"double", 2, 1, 100, EventClear},
		{"triple", 3, 1, 300, EventClear},
		{"four rows", 4, 1, 1200, EventMajorClear},
		{"single at level 3", 1, 3, 120, EventClear},
		{"four rows at level 2", 4, 2, 2400, EventMajorClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			g.level = tt.level
			g.lines = (tt.level - 1) * linesPerLevel
			for i := 0; i < tt.rows; i++ {
				fillRow(&g.board, Rows-1-i, 3)
			}
			g.Events()

			g.clearLines()

			if g.score != tt.score {
				t.Errorf("score = %d, expected %d", g.score, tt.score)
			}
			events := g.Events()
			if e, ok := findEvent(events, tt.kind); !ok || e.Count != tt.rows {
				t.Errorf("%v event = %+v, expected count %d", tt.kind, e, tt.rows)
			}
			if n := countEvents(events, EventCellCleared); n != tt.rows*Cols {
				t.Errorf("got %d cellCleared events, expected %d", n, tt.rows*Cols)
			}
			if e, ok := findEvent(events, EventStats); !ok || e.Stats.Score != tt.score {
				t.Errorf("stats event = %+v, expected score %d", e, tt.score)
			}
		})
	}
}

func TestClearReexaminesShiftedRow(t *testing.T) {
	// Two adjacent full rows with a marker row above them. After both rows
	// go, the marker sits on the floor.
	g := newTestGame(1)
	fillRow(&g.board, Rows-1, 1)
	fillRow(&g.board, Rows-2, 2)
	g.board[Rows-3][4] = 6

	g.clearLines()

	if g.lines != 2 {
		t.Errorf("lines = %d, expected 2", g.lines)
	}
	if g.board[Rows-1][4] != 6 {
		t.Errorf("marker should fall to the bottom row\n%s", g.board.String())
	}
	for y := 0; y < Rows-1; y++ {
		if !g.board.rowEmpty(y) {
			t.Errorf("row %d should be empty\n%s", y, g.board.String())
		}
	}
}

func TestCellClearedCarriesPosition(t *testing.T) {
	g := newTestGame(1)
	fillRow(&g.board, Rows-1, 2)
	g.board[Rows-1][7] = 5
	g.Events()

	g.clearLines()

	for _, e := range g.Events() {
		if e.Kind != EventCellCleared {
			continue
		}
		if e.Y != Rows-1 {
			t.Errorf("cleared cell y = %d, expected %d", e.Y, Rows-1)
		}
		want := uint8(2)
		if e.X == 7 {
			want = 5
		}
		if e.Color != want {
			t.Errorf("cell %d color = %d, expected %d", e.X, e.Color, want)
		}
	}
}

func TestNoClearNoEvents(t *testing.T) {
	g := newTestGame(1)
	g.board[Rows-1][0] = 1
	g.Events()

	g.clearLines()

	if events := g.Events(); len(events) != 0 {
		t.Errorf("expected no events, got %v", events)
	}
}

func TestLevelUpInjectsGarbage(t *testing.T) {
	g := newTestGame(1)
	g.lines = 9
	fillRow(&g.board, Rows-1, 1)
	g.Events()

	g.clearLines()

	if g.level != 2 {
		t.Fatalf("level = %d, expected 2", g.level)
	}
	if g.score != 40 {
		t.Errorf("score = %d, expected 40 at the pre-level-up multiplier", g.score)
	}
	if g.dropInterval != DropInterval(2) {
		t.Errorf("drop interval = %v, expected %v", g.dropInterval, DropInterval(2))
	}

	events := g.Events()
	if e, ok := findEvent(events, EventLevelUp); !ok || e.Count != 2 {
		t.Errorf("levelUp event = %+v", e)
	}
	if e, ok := findEvent(events, EventGarbage); !ok || e.Count != 1 {
		t.Errorf("garbage event = %+v, expected one row", e)
	}

	holes := 0
	for x := 0; x < Cols; x++ {
		switch g.board[Rows-1][x] {
		case 0:
			holes++
		case GarbageCell:
		default:
			t.Errorf("bottom row should be garbage\n%s", g.board.String())
		}
	}
	if holes < 1 || holes > 2 {
		t.Errorf("garbage row has %d holes", holes)
	}
}

func TestDropInterval(t *testing.T) {
	if got := DropInterval(1); got != 800*time.Millisecond {
		t.Errorf("DropInterval(1) = %v, expected 800ms", got)
	}
	if got := DropInterval(2); got != 640*time.Millisecond {
		t.Errorf("DropInterval(2) = %v, expected 640ms", got)
	}

	prev := DropInterval(1)
	for level := 2; level <= 30; level++ {
		cur := DropInterval(level)
		if cur < MinDropInterval {
			t.Fatalf("DropInterval(%d) = %v, below the floor", level, cur)
		}
		if cur > prev || (cur == prev && cur != MinDropInterval) {
			t.Errorf("DropInterval(%d) = %v, not decreasing from %v", level, cur, prev)
		}
		prev = cur
	}
	if got := DropInterval(30); got != MinDropInterval {
		t.Errorf("DropInterval(30) = %v, expected the 80ms floor", got)
	}
}

func TestGarbageRows(t *testing.T) {
	tests := []struct {
		level, rows int
	}{
		{1, 0}, {2, 1}, {4, 1}, {5, 2}, {9, 2}, {10, 3}, {20, 3},
	}
	for _, tt := range tests {
		if got := GarbageRows(tt.level); got != tt.rows {
			t.Errorf("GarbageRows(%d) = %d, expected %d", tt.level, got, tt.rows)
		}
	}
}
