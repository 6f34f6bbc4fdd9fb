// Package blockfall implements the falling-block puzzle engine: board and
// piece model, rotation with kicks, lock delay, line clears with level
// progression, and garbage rows.
//
// A Game is a single aggregate driven from one goroutine. Player intents are
// queued with Push and applied by Drain or at the start of Step; feedback
// for audio, effects and the HUD is buffered and collected with Events.
package blockfall

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game holds the whole state of one play session.
type Game struct {
	rng  *rand.Rand
	tick uint64

	board Board
	bag   *Bag
	piece Piece
	phase Phase
	lock  LockState

	playing bool // ticks and intents apply only while set
	paused  bool

	score        int
	level        int
	lines        int
	dropInterval time.Duration
	dropCounter  time.Duration

	intents []core.Action
	events  []Event
}

// New creates an idle game. Call Reset to start playing.
func New() *Game {
	return &Game{
		phase:        PhaseIdle,
		level:        1,
		dropInterval: InitialDropInterval,
	}
}

// Reset starts a new game, discarding the previous board and bag.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.board = Board{}
	g.bag = NewBag(g.rng)
	g.score = 0
	g.level = 1
	g.lines = 0
	g.dropInterval = InitialDropInterval
	g.dropCounter = 0
	g.intents = g.intents[:0]
	g.events = g.events[:0]
	g.paused = false
	g.playing = true

	g.spawn()
	g.emitStats()
}

// Push queues a player intent. Queued intents are applied in order by Drain
// or by the next Step.
func (g *Game) Push(a core.Action) {
	g.intents = append(g.intents, a)
}

// Drain applies all queued intents in arrival order.
func (g *Game) Drain() {
	for len(g.intents) > 0 {
		a := g.intents[0]
		g.intents = g.intents[1:]
		g.apply(a)
	}
}

func (g *Game) apply(a core.Action) {
	if a == core.ActionPause {
		g.TogglePause()
		return
	}
	if !g.playing {
		return
	}
	switch a {
	case core.ActionLeft:
		g.shift(-1)
	case core.ActionRight:
		g.shift(1)
	case core.ActionRotate:
		g.rotate()
	case core.ActionSoftDrop:
		g.softDrop()
	case core.ActionHardDrop:
		g.hardDrop()
	}
}

// TogglePause pauses or resumes a running game. It has no effect before the
// first Reset or after game over.
func (g *Game) TogglePause() {
	if g.phase == PhaseIdle || g.phase == PhaseGameOver {
		return
	}
	g.paused = !g.paused
	g.playing = !g.paused
}

// Step advances the game by dt: queued intents, then gravity, then lock
// delay. It does nothing unless the game is playing.
func (g *Game) Step(dt time.Duration) core.StepResult {
	if !g.playing {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.Drain()
	if !g.playing {
		return core.StepResult{State: g.State()}
	}

	g.dropCounter += dt
	if g.dropCounter > g.dropInterval {
		g.gravity()
		g.dropCounter = 0
	}

	g.updateLock(dt)

	return core.StepResult{State: g.State()}
}

// gravity moves the piece down one row, or grounds it when it cannot move.
func (g *Game) gravity() {
	if !g.board.Collide(&g.piece, 0, 1) {
		g.piece.Y++
		return
	}
	if g.phase == PhaseFalling {
		g.ground()
	}
}

func (g *Game) shift(dx int) bool {
	if g.board.Collide(&g.piece, dx, 0) {
		return false
	}
	g.piece.X += dx
	g.lock.refresh()
	g.emit(Event{Kind: EventMove})
	return true
}

func (g *Game) rotate() bool {
	rotated, ok := Rotate(&g.board, g.piece)
	if !ok {
		return false
	}
	g.piece = rotated
	g.lock.refresh()
	g.emit(Event{Kind: EventRotate})
	return true
}

// softDrop moves the piece down one row for one point.
func (g *Game) softDrop() bool {
	if g.board.Collide(&g.piece, 0, 1) {
		return false
	}
	g.piece.Y++
	g.score++
	if g.phase == PhaseGrounded {
		g.unground()
	}
	g.emitStats()
	return true
}

// hardDrop drops the piece to rest for two points per row and locks it at
// once.
func (g *Game) hardDrop() {
	rows := 0
	for !g.board.Collide(&g.piece, 0, 1) {
		g.piece.Y++
		rows++
	}
	g.score += 2 * rows
	g.emit(Event{Kind: EventHardDrop, Count: rows})
	g.emitStats()
	g.lockPiece()
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

func (g *Game) emitStats() {
	g.emit(Event{Kind: EventStats, Stats: g.Stats()})
}

// Events returns the feedback emitted since the last call and clears the
// buffer.
func (g *Game) Events() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// Stats returns the current score, level and line count.
func (g *Game) Stats() Stats {
	return Stats{Score: g.score, Level: g.level, Lines: g.lines}
}

// Next returns the upcoming piece type, or 0 before the game has started.
func (g *Game) Next() PieceType {
	if g.bag == nil {
		return 0
	}
	if next := g.bag.Peek(1); len(next) == 1 {
		return next[0]
	}
	return 0
}

// DropInterval returns the current gravity period.
func (g *Game) DropInterval() time.Duration {
	return g.dropInterval
}

// State returns the status reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		Playing:  g.playing,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}
