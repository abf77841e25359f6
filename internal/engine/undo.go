package engine

// undoBudget is the budget granted on every committed placement. The budget
// is tracked and reported, but a successful undo consumes the snapshot
// outright, so only one undo per placement is actually usable. This mirrors
// the shipped behavior of the game; do not "fix" it here.
const undoBudget = 2

// undoSnapshot is a deep copy of the restorable aggregate, taken immediately
// before a placement commits. Each new placement overwrites it.
type undoSnapshot struct {
	board *Board
	tray  []Block
	score int
	level int
}

// takeUndoSnapshot captures the current state and resets the budget.
func (g *Game) takeUndoSnapshot() {
	g.undo = &undoSnapshot{
		board: g.board.Clone(),
		tray:  g.tray.Blocks(),
		score: g.score,
		level: g.level,
	}
	g.undoLeft = undoBudget
}

// Undo restores the state captured before the last placement. It reports
// false, with no state change, when no snapshot is available or the budget
// is exhausted. A successful undo marks the current level imperfect and
// consumes the snapshot, so a second undo needs a new placement first.
func (g *Game) Undo() bool {
	if g.undo == nil || g.undoLeft <= 0 {
		return false
	}

	snap := g.undo
	if snap.level != g.level {
		// The undone placement finished a level; the stream for the
		// restored level is re-derivable from its number alone.
		g.gen.SeedLevel(snap.level)
	}
	g.board = snap.board
	g.tray.setBlocks(snap.tray)
	g.score = snap.score
	g.level = snap.level

	g.undoLeft--
	g.undo = nil
	g.perfect = false
	g.undoCount++
	// The restored state predates the placement that caused any terminal
	// check, so the game is live again.
	g.gameOver = false

	g.emit(BoardChangedEvent{})
	return true
}

// UndoAvailable returns true if an Undo call would succeed.
func (g *Game) UndoAvailable() bool {
	return g.undo != nil && g.undoLeft > 0
}

// UndoBudget returns the remaining undo budget for the last placement.
func (g *Game) UndoBudget() int {
	return g.undoLeft
}
