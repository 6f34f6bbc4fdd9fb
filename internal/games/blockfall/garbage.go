package blockfall

// InjectGarbage pushes n garbage rows in from the bottom. If any of the top
// n rows holds a block the stack would be pushed out of the field, so the
// game ends instead and the board is left untouched. It reports whether the
// rows were added.
func (g *Game) InjectGarbage(n int) bool {
	if n <= 0 {
		return true
	}
	n = min(n, Rows)
	for y := 0; y < n; y++ {
		if !g.board.rowEmpty(y) {
			g.endGame()
			return false
		}
	}
	g.board.raise(n, g.rng)
	g.emit(Event{Kind: EventGarbage, Count: n})
	return true
}
