package blockfall

import (
	"math/rand"
	"strings"
	"time"
)

// Playfield and timing constants.
const (
	Cols = 12
	Rows = 22

	SpawnRow     = 0
	GarbageCell  = 8
	MoveResetCap = 15

	InitialDropInterval = 800 * time.Millisecond
	MinDropInterval     = 80 * time.Millisecond
	LockDelay           = 500 * time.Millisecond
)

// Board is the playfield grid. Row 0 is the top; 0 means empty and 1..8 are
// cell ids.
type Board [Rows][Cols]uint8

// Collide reports whether p, offset by (dx, dy), would overlap a wall, the
// floor or an occupied cell. Cells above the top edge never collide.
func (b *Board) Collide(p *Piece, dx, dy int) bool {
	hit := false
	p.Shape.each(func(sx, sy int, _ uint8) {
		x := p.X + sx + dx
		y := p.Y + sy + dy
		if x < 0 || x >= Cols || y >= Rows {
			hit = true
			return
		}
		if y >= 0 && b[y][x] != 0 {
			hit = true
		}
	})
	return hit
}

// Merge writes the piece's cells into the board. Cells above the top edge
// are dropped.
func (b *Board) Merge(p *Piece) {
	p.Shape.each(func(sx, sy int, v uint8) {
		x := p.X + sx
		y := p.Y + sy
		if y >= 0 && y < Rows && x >= 0 && x < Cols {
			b[y][x] = v
		}
	})
}

func (b *Board) rowFull(y int) bool {
	for _, v := range b[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

func (b *Board) rowEmpty(y int) bool {
	for _, v := range b[y] {
		if v != 0 {
			return false
		}
	}
	return true
}

// removeRow deletes row y, shifts everything above it down by one and
// leaves an empty row at the top.
func (b *Board) removeRow(y int) {
	for r := y; r > 0; r-- {
		b[r] = b[r-1]
	}
	b[0] = [Cols]uint8{}
}

// raise shifts all rows up by n and fills the bottom n rows with garbage,
// each with one or two distinct holes. Callers check that the top n rows
// are empty first.
func (b *Board) raise(n int, rng *rand.Rand) {
	copy(b[:Rows-n], b[n:])
	for y := Rows - n; y < Rows; y++ {
		var row [Cols]uint8
		for x := range row {
			row[x] = GarbageCell
		}
		holes := 1 + rng.Intn(2)
		for _, x := range rng.Perm(Cols)[:holes] {
			row[x] = 0
		}
		b[y] = row
	}
}

// String renders the board as text, '.' for empty cells and the cell id
// otherwise. Handy in test failures.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if v := b[y][x]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
