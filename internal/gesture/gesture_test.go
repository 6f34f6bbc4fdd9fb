package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// cell is the board cell size used throughout; the move threshold is 22.5
// and the soft-drop step 18.
const cell = 25.0

func drag(tr *Translator, from Point, path ...Point) []core.Action {
	tr.Start(from)
	var out []core.Action
	for _, p := range path {
		out = append(out, tr.Move(p)...)
	}
	return out
}

func TestTapRotates(t *testing.T) {
	tr := NewTranslator(cell)
	tr.Start(Point{100, 100})
	got := tr.End(Point{105, 108})

	assert.Equal(t, []core.Action{core.ActionRotate}, got)
	assert.False(t, tr.Active())
}

func TestTapSlopIsExclusive(t *testing.T) {
	tr := NewTranslator(cell)
	tr.Start(Point{100, 100})
	assert.Empty(t, tr.End(Point{115, 100}))
}

func TestHorizontalDragMoves(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 0}, Point{12, 1}, Point{50, 2})

	// 50px of travel is two thresholds with 5px left over.
	assert.Equal(t, []core.Action{core.ActionRight, core.ActionRight}, got)
	assert.Equal(t, AxisHorizontal, tr.Axis())
	assert.InDelta(t, 5.0, tr.accX, 1e-9)
	assert.Zero(t, tr.accY, "horizontal lock discards vertical travel")

	// Releasing after moves is not a tap.
	assert.Empty(t, tr.End(Point{50, 2}))
}

func TestLeftDrag(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{200, 0}, Point{170, 0})
	assert.Equal(t, []core.Action{core.ActionLeft}, got)
}

func TestVerticalDragSoftDrops(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 0}, Point{2, 20}, Point{3, 40})

	// 40px down: two soft drops of 18px.
	assert.Equal(t, []core.Action{core.ActionSoftDrop, core.ActionSoftDrop}, got)
	assert.Equal(t, AxisVertical, tr.Axis())
	assert.Zero(t, tr.accX)
}

func TestLongVerticalSwipeSoftDrops(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 0}, Point{0, 20}, Point{0, 60}, Point{0, 120})

	// 120 / 18 rounds down to six steps; 12px carries over.
	expected := make([]core.Action, 6)
	for i := range expected {
		expected[i] = core.ActionSoftDrop
	}
	assert.Equal(t, expected, got)
	assert.Equal(t, AxisVertical, tr.Axis())
	assert.InDelta(t, 12, tr.accY, 1e-9)
}

func TestUpwardDragDoesNothing(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 100}, Point{0, 40})
	assert.Empty(t, got)
	assert.Empty(t, tr.End(Point{0, 40}))
}

func TestFlickHardDrops(t *testing.T) {
	tr := NewTranslator(cell)
	drag(tr, Point{0, 0}, Point{5, 70})
	assert.Equal(t, []core.Action{core.ActionHardDrop}, tr.End(Point{5, 70}))
}

func TestFlickAfterSoftDrops(t *testing.T) {
	// A long slow drag still ends in a hard drop once it passes 60px.
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 0}, Point{0, 20}, Point{0, 40}, Point{0, 65})
	require.NotEmpty(t, got)
	assert.Equal(t, []core.Action{core.ActionHardDrop}, tr.End(Point{0, 65}))
}

func TestFlickRejectedWhenHorizontal(t *testing.T) {
	tr := NewTranslator(cell)
	// Lock horizontally first, then sweep down.
	drag(tr, Point{0, 0}, Point{20, 0}, Point{30, 80})
	assert.Equal(t, AxisHorizontal, tr.Axis())
	assert.Empty(t, tr.End(Point{30, 80}))
}

func TestFlickRejectedWhenTooWide(t *testing.T) {
	tr := NewTranslator(cell)
	tr.Start(Point{0, 0})
	assert.Empty(t, tr.End(Point{45, 80}))
}

func TestDiagonalStaysUnlocked(t *testing.T) {
	tr := NewTranslator(cell)
	got := drag(tr, Point{0, 0}, Point{23, 23})

	assert.Equal(t, AxisNone, tr.Axis())
	assert.Equal(t, []core.Action{core.ActionRight, core.ActionSoftDrop}, got)
}

func TestNoAxisLockWithinTenPixels(t *testing.T) {
	tr := NewTranslator(cell)
	drag(tr, Point{0, 0}, Point{10, 0})
	assert.Equal(t, AxisNone, tr.Axis())
}

func TestMoveWithoutStartIsIgnored(t *testing.T) {
	tr := NewTranslator(cell)
	assert.Nil(t, tr.Move(Point{100, 0}))
	assert.Nil(t, tr.End(Point{100, 0}))

	tr.Start(Point{0, 0})
	tr.End(Point{0, 0})
	assert.Nil(t, tr.Move(Point{100, 0}), "moves after End are ignored")
}

func TestStartResetsState(t *testing.T) {
	tr := NewTranslator(cell)
	drag(tr, Point{0, 0}, Point{40, 0})

	tr.Start(Point{500, 500})
	assert.Equal(t, AxisNone, tr.Axis())
	assert.Equal(t, []core.Action{core.ActionRotate}, tr.End(Point{500, 500}))
}
