package blockfall

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRotatedClockwise(t *testing.T) {
	got := ShapeOf(PieceT).Rotated()
	expected := Shape{Size: 3, Cells: [4][4]uint8{
		{0, 3, 0},
		{0, 3, 3},
		{0, 3, 0},
	}}
	if got != expected {
		t.Errorf("T rotated = %v, expected %v", got.Cells, expected.Cells)
	}
}

func TestFourRotationsIsIdentity(t *testing.T) {
	for pt := PieceZ; pt <= PieceI; pt++ {
		s := ShapeOf(pt)
		r := s.Rotated().Rotated().Rotated().Rotated()
		if r != s {
			t.Errorf("%v: four rotations changed the shape", pt)
		}
	}
}

func verticalI(x int) Piece {
	return Piece{Type: PieceI, Shape: ShapeOf(PieceI).Rotated(), X: x, Y: 5}
}

func TestRotateKicks(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		ok    bool
		x     int
	}{
		{
			name:  "open space, no kick",
			piece: spawnPiece(PieceT),
			ok:    true,
			x:     5,
		},
		{
			// Vertical I in column 1; horizontal needs X >= 0.
			name:  "kick right off the left wall",
			piece: verticalI(-1),
			ok:    true,
			x:     0,
		},
		{
			// Vertical I in the last column; only x-1 would fit and the
			// search never goes left.
			name:  "no kick left off the right wall",
			piece: verticalI(Cols - 3),
			ok:    false,
			x:     Cols - 3,
		},
		{
			// Vertical I in column 0 would need a kick of +2.
			name:  "abort when no offset fits",
			piece: verticalI(-2),
			ok:    false,
			x:     -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Board
			got, ok := Rotate(&b, tt.piece)
			if ok != tt.ok {
				t.Fatalf("Rotate() ok = %v, expected %v", ok, tt.ok)
			}
			if got.X != tt.x {
				t.Errorf("Rotate() x = %d, expected %d", got.X, tt.x)
			}
			if !ok && got != tt.piece {
				t.Errorf("aborted rotation must leave the piece unchanged")
			}
			if ok && b.Collide(&got, 0, 0) {
				t.Errorf("rotated piece overlaps the board")
			}
		})
	}
}

func TestRotateBlockedByStack(t *testing.T) {
	// A vertical I in a one-wide well has no room to lie down at any
	// offset.
	var b Board
	p := Piece{Type: PieceI, Shape: ShapeOf(PieceI).Rotated(), X: 3, Y: 10}
	for y := 10; y < 14; y++ {
		for x := 0; x < Cols; x++ {
			if x != 5 {
				b[y][x] = GarbageCell
			}
		}
	}

	got, ok := Rotate(&b, p)
	if ok {
		t.Fatalf("rotation inside a one-wide well should fail, got x=%d", got.X)
	}
	if got != p {
		t.Errorf("failed rotation changed the piece")
	}
}

func TestRotateCommitsThroughGame(t *testing.T) {
	g := newTestGame(1)
	g.piece = spawnPiece(PieceT)
	g.Events()

	g.Push(core.ActionRotate)
	g.Drain()

	if g.piece.Shape != ShapeOf(PieceT).Rotated() {
		t.Errorf("rotation intent was not applied")
	}
	if !hasEvent(g.Events(), EventRotate) {
		t.Errorf("expected a rotate event")
	}
}
