package blockfall

import "time"

// Snapshot is a read-only copy of the game state for renderers, tests and
// determinism checks.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Playing      bool
	Paused       bool
	Board        Board
	Piece        Piece
	Next         []PieceType
	Lock         LockState
	Stats        Stats
	DropInterval time.Duration
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	var next []PieceType
	if g.bag != nil {
		next = g.bag.Peek(pieceTypes)
	}
	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Playing:      g.playing,
		Paused:       g.paused,
		Board:        g.board,
		Piece:        g.piece,
		Next:         next,
		Lock:         g.lock,
		Stats:        g.Stats(),
		DropInterval: g.dropInterval,
	}
}
