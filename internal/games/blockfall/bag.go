package blockfall

import "math/rand"

// Bag hands out pieces in shuffled runs of seven: every aligned window of
// seven draws contains each piece type exactly once. It keeps at least one
// full run queued so the next piece can always be previewed.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates an empty bag drawing permutations from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// fill appends one Fisher-Yates shuffled run of all seven types.
func (b *Bag) fill() {
	run := [pieceTypes]PieceType{PieceZ, PieceS, PieceT, PieceO, PieceJ, PieceL, PieceI}
	for i := len(run) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		run[i], run[j] = run[j], run[i]
	}
	b.queue = append(b.queue, run[:]...)
}

// Next dequeues the next piece, placed at its spawn position.
func (b *Bag) Next() Piece {
	if len(b.queue) <= pieceTypes {
		b.fill()
	}
	t := b.queue[0]
	b.queue = b.queue[1:]
	return spawnPiece(t)
}

// Peek returns up to n upcoming piece types without consuming them.
func (b *Bag) Peek(n int) []PieceType {
	n = min(n, len(b.queue))
	out := make([]PieceType, n)
	copy(out, b.queue)
	return out
}

// Len returns the number of queued piece types.
func (b *Bag) Len() int {
	return len(b.queue)
}
