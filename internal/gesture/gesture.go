// Package gesture turns a continuous pointer drag into discrete game
// actions: sideways drags shift the piece one cell per cell-width of travel,
// downward drags soft-drop, a fast downward flick hard-drops and a tap
// rotates.
//
// Positions are in abstract pixels. The caller chooses the scale by passing
// the pixel size of one board cell to NewTranslator.
package gesture

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Point is a pointer position in pixels.
type Point struct {
	X, Y float64
}

// Axis is the direction a drag has been locked to.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return "none"
}

// Gesture tuning, in pixels unless noted. Changing any of these changes how
// the game feels.
const (
	thresholdFactor = 0.9 // of a cell: travel per sideways move
	softDropFactor  = 0.8 // of the move threshold: travel per soft drop
	axisLockAfter   = 10.0
	axisBias        = 1.5 // one axis must dominate by this ratio to lock
	flickMinDown    = 60.0
	flickMaxSide    = 40.0
	tapSlop         = 15.0
)

// Translator tracks one drag at a time. It is not safe for concurrent use.
type Translator struct {
	threshold float64

	active  bool
	origin  Point
	last    Point
	accX    float64
	accY    float64
	axis    Axis
	emitted bool
}

// NewTranslator creates a translator for a board whose cells are cellPixels
// wide.
func NewTranslator(cellPixels float64) *Translator {
	return &Translator{threshold: thresholdFactor * cellPixels}
}

// Active reports whether a drag is in progress.
func (t *Translator) Active() bool {
	return t.active
}

// Axis returns the axis the current drag is locked to.
func (t *Translator) Axis() Axis {
	return t.axis
}

// Start begins a new drag at p, discarding any previous one.
func (t *Translator) Start(p Point) {
	t.active = true
	t.origin = p
	t.last = p
	t.accX = 0
	t.accY = 0
	t.axis = AxisNone
	t.emitted = false
}

// Move feeds a new pointer position and returns the actions it produced.
// Calls without an active drag are ignored.
func (t *Translator) Move(p Point) []core.Action {
	if !t.active {
		return nil
	}
	dx := p.X - t.last.X
	dy := p.Y - t.last.Y
	t.last = p

	if t.axis == AxisNone {
		totalX := math.Abs(p.X - t.origin.X)
		totalY := math.Abs(p.Y - t.origin.Y)
		if totalX > axisLockAfter || totalY > axisLockAfter {
			switch {
			case totalY > totalX*axisBias:
				t.axis = AxisVertical
			case totalX > totalY*axisBias:
				t.axis = AxisHorizontal
			}
		}
	}

	switch t.axis {
	case AxisVertical:
		t.accY += dy
		t.accX = 0
	case AxisHorizontal:
		t.accX += dx
		t.accY = 0
	default:
		t.accX += dx
		t.accY += dy
	}

	var out []core.Action
	for math.Abs(t.accX) > t.threshold {
		if t.accX > 0 {
			out = append(out, core.ActionRight)
			t.accX -= t.threshold
		} else {
			out = append(out, core.ActionLeft)
			t.accX += t.threshold
		}
	}

	drop := t.threshold * softDropFactor
	for t.accY > drop {
		out = append(out, core.ActionSoftDrop)
		t.accY -= drop
	}

	if len(out) > 0 {
		t.emitted = true
	}
	return out
}

// End finishes the drag at p. A fast downward flick that was not locked
// sideways hard-drops; a tap that never produced an action rotates.
func (t *Translator) End(p Point) []core.Action {
	if !t.active {
		return nil
	}
	t.active = false

	dx := p.X - t.origin.X
	dy := p.Y - t.origin.Y

	if t.axis != AxisHorizontal && dy > flickMinDown && math.Abs(dx) < flickMaxSide {
		return []core.Action{core.ActionHardDrop}
	}
	if !t.emitted && math.Abs(dx) < tapSlop && math.Abs(dy) < tapSlop {
		return []core.Action{core.ActionRotate}
	}
	return nil
}
