package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// maxKick is the largest horizontal offset tried when a rotated piece
// collides.
const maxKick = 2

// Rotate returns p turned clockwise, shifted sideways if needed to fit.
// The offset grows 1, -2, 3 and the search stops as soon as it passes
// maxKick, so only the columns x and x+1 are ever tested. When neither fits
// it returns p unchanged and false.
func Rotate(b *Board, p Piece) (Piece, bool) {
	candidate := p
	candidate.Shape = p.Shape.Rotated()

	offset := 1
	for b.Collide(&candidate, 0, 0) {
		candidate.X += offset
		offset = -(offset + core.Sign(offset))
		if core.Abs(offset) > maxKick {
			return p, false
		}
	}
	return candidate, true
}
