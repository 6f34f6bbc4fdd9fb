package blockfall

import (
	"math/rand"
	"testing"
)

func TestCollide(t *testing.T) {
	var stacked Board
	stacked[Rows-1][3] = 5

	tests := []struct {
		name     string
		board    Board
		piece    Piece
		dx, dy   int
		expected bool
	}{
		{
			name:     "free space",
			piece:    Piece{Shape: ShapeOf(PieceO), X: 5, Y: 5},
			expected: false,
		},
		{
			name:     "left wall",
			piece:    Piece{Shape: ShapeOf(PieceO), X: 0, Y: 5},
			dx:       -1,
			expected: true,
		},
		{
			name:     "right wall",
			piece:    Piece{Shape: ShapeOf(PieceO), X: Cols - 2, Y: 5},
			dx:       1,
			expected: true,
		},
		{
			name:     "floor",
			piece:    Piece{Shape: ShapeOf(PieceO), X: 5, Y: Rows - 2},
			dy:       1,
			expected: true,
		},
		{
			name:     "resting one above the floor",
			piece:    Piece{Shape: ShapeOf(PieceO), X: 5, Y: Rows - 3},
			dy:       1,
			expected: false,
		},
		{
			// O over columns 2-3, one row above a block in column 3.
			name:     "occupied cell",
			board:    stacked,
			piece:    Piece{Shape: ShapeOf(PieceO), X: 2, Y: Rows - 3},
			dy:       1,
			expected: true,
		},
		{
			name:     "above the top edge",
			piece:    Piece{Shape: ShapeOf(PieceI), X: 4, Y: -3},
			expected: false,
		},
		{
			name:     "empty matrix cells are ignored",
			piece:    Piece{Shape: ShapeOf(PieceI), X: 4, Y: Rows - 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board
			if got := b.Collide(&tt.piece, tt.dx, tt.dy); got != tt.expected {
				t.Errorf("Collide() = %v, expected %v\n%s", got, tt.expected, b.String())
			}
		})
	}
}

func TestMergeDropsCellsAboveTop(t *testing.T) {
	var b Board
	p := Piece{Shape: ShapeOf(PieceT), X: 0, Y: -1}
	b.Merge(&p)

	// Only the bottom row of the T is on the board.
	for x := 0; x < 3; x++ {
		if b[0][x] != uint8(PieceT) {
			t.Errorf("board[0][%d] = %d, expected %d", x, b[0][x], PieceT)
		}
	}
	count := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b[y][x] != 0 {
				count++
			}
		}
	}
	if count != 3 {
		t.Errorf("merged %d cells, expected 3\n%s", count, b.String())
	}
}

func TestRemoveRowShiftsDown(t *testing.T) {
	var b Board
	b[0][0] = 1
	b[5][2] = 2
	b[6][3] = 3
	b.removeRow(6)

	if b[6][2] != 2 {
		t.Errorf("row 5 should move into row 6, got\n%s", b.String())
	}
	if b[1][0] != 1 {
		t.Errorf("row 0 should move into row 1, got\n%s", b.String())
	}
	if !b.rowEmpty(0) {
		t.Errorf("top row should be empty after removal")
	}
}

func TestRaiseAddsGarbageWithHoles(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		var b Board
		b[Rows-1][0] = 1
		b.raise(2, rand.New(rand.NewSource(seed)))

		if b[Rows-3][0] != 1 {
			t.Fatalf("seed %d: existing block should move up two rows\n%s", seed, b.String())
		}
		for y := Rows - 2; y < Rows; y++ {
			holes := 0
			for x := 0; x < Cols; x++ {
				switch b[y][x] {
				case 0:
					holes++
				case GarbageCell:
				default:
					t.Fatalf("seed %d: unexpected cell %d in garbage row %d", seed, b[y][x], y)
				}
			}
			if holes < 1 || holes > 2 {
				t.Errorf("seed %d: garbage row %d has %d holes, expected 1 or 2", seed, y, holes)
			}
		}
	}
}
