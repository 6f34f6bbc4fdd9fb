package blockfall

import "time"

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle     Phase = iota // before the first Reset
	PhaseFalling               // piece can still move down
	PhaseGrounded              // piece rests on something; lock delay running
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseGrounded:
		return "grounded"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// LockState tracks the lock delay of the active piece.
type LockState struct {
	Grounded   bool
	Timer      time.Duration
	MoveResets int
}

// refresh restarts the lock timer after a committed move or rotation. It
// does nothing unless grounded, and stops working after MoveResetCap uses.
func (l *LockState) refresh() {
	if !l.Grounded || l.MoveResets >= MoveResetCap {
		return
	}
	l.Timer = 0
	l.MoveResets++
}

// ground moves the active piece into the grounded phase.
func (g *Game) ground() {
	g.phase = PhaseGrounded
	g.lock = LockState{Grounded: true}
	g.emit(Event{Kind: EventDrop})
}

// unground puts the piece back into free fall, e.g. after sliding off a
// ledge.
func (g *Game) unground() {
	g.phase = PhaseFalling
	g.lock.Grounded = false
}

// updateLock runs the lock-delay machine for one tick of length dt.
func (g *Game) updateLock(dt time.Duration) {
	switch g.phase {
	case PhaseFalling:
		if g.board.Collide(&g.piece, 0, 1) {
			g.ground()
		}
	case PhaseGrounded:
		g.lock.Timer += dt
		if !g.board.Collide(&g.piece, 0, 1) {
			g.unground()
			return
		}
		if g.lock.Timer > LockDelay {
			g.lockPiece()
		}
	}
}

// lockPiece merges the active piece, clears rows and spawns the next piece.
func (g *Game) lockPiece() {
	g.board.Merge(&g.piece)
	g.emit(Event{Kind: EventLock})
	g.clearLines()
	if g.phase == PhaseGameOver {
		return
	}
	g.spawn()
}

// spawn takes the next piece from the bag. A spawn that overlaps the stack
// ends the game.
func (g *Game) spawn() {
	g.piece = g.bag.Next()
	g.phase = PhaseFalling
	g.lock = LockState{}
	if g.board.Collide(&g.piece, 0, 0) {
		g.endGame()
	}
}

func (g *Game) endGame() {
	g.phase = PhaseGameOver
	g.playing = false
	g.paused = false
	g.emit(Event{Kind: EventGameOver, Score: g.score})
}
