// Package engine implements the block-smash puzzle rules: board and tray
// state, placement validation, line-clear and bonus scoring, level
// progression and single-step undo. The package is UI-agnostic and
// deterministic; all randomness flows through a per-level seeded stream.
//
// The engine is a single-threaded synchronous state machine. Every public
// operation is an atomic transition; callers serialize calls and drain the
// resulting events afterwards.
package engine

// Game is the complete engine aggregate.
type Game struct {
	board *Board
	tray  *Tray
	gen   *Generator

	score int
	level int
	chain int // Consecutive clearing resolves since last level-up

	perfect       bool // No undo used within the current level
	perfectStreak int

	usedColors map[Color]bool
	usedShapes map[string]bool

	blocksPlaced int
	linesCleared int
	groupsFormed int
	undoCount    int

	undo     *undoSnapshot
	undoLeft int

	gameOver bool
	pending  []Event
}

// PlacementOutcome is the result of ResolvePlacement. A rejected placement
// leaves every part of the game untouched.
type PlacementOutcome struct {
	Committed    bool
	ScoreDelta   int
	ClearedCells []Coord
	GroupsFound  int
}

// NewGame creates a fresh game at level 1 with a full tray.
func NewGame() *Game {
	g := &Game{
		board: NewBoard(DefaultBoardSize),
		tray:  NewTray(),
		gen:   NewGenerator(1),
	}
	g.reset()
	return g
}

// reset re-initializes everything for level 1.
func (g *Game) reset() {
	g.board.Reset()
	g.tray.Clear()
	g.gen.SeedLevel(1)
	g.score = 0
	g.level = 1
	g.chain = 0
	g.perfect = true
	g.perfectStreak = 0
	g.usedColors = make(map[Color]bool)
	g.usedShapes = make(map[string]bool)
	g.blocksPlaced = 0
	g.linesCleared = 0
	g.groupsFormed = 0
	g.undoCount = 0
	g.undo = nil
	g.undoLeft = 0
	g.gameOver = false
	g.pending = nil
	g.tray.Refill(g.gen)
}

// NewGameInPlace restarts the current game from scratch.
func (g *Game) NewGameInPlace() {
	g.reset()
	g.emit(BoardChangedEvent{})
}

// ResolvePlacement validates and, if possible, commits placing the tray
// block in the given slot at the anchor, then runs the full scoring pass:
// line clears with monochrome and multi-match bonuses, group bonuses, level
// progression and terminal detection. A placement that cannot be committed
// is reported as not committed and changes nothing.
func (g *Game) ResolvePlacement(slot int, anchor Coord) PlacementOutcome {
	if g.gameOver {
		return PlacementOutcome{}
	}
	block, ok := g.tray.At(slot)
	if !ok {
		return PlacementOutcome{}
	}
	if !g.board.CanPlace(block.Shape, anchor) {
		return PlacementOutcome{}
	}

	g.takeUndoSnapshot()

	g.board.Place(block, anchor)
	g.tray.Remove(slot)
	g.blocksPlaced++
	g.usedColors[block.Color] = true
	g.usedShapes[block.Shape.Name] = true
	g.emit(BoardChangedEvent{})

	outcome := PlacementOutcome{Committed: true}

	clears := resolveClears(g.board)
	outcome.ScoreDelta += clears.Score
	if clears.Cleared() {
		outcome.ClearedCells = clears.Cells
		g.chain++
		g.linesCleared += len(clears.Rows) + len(clears.Cols)
		g.emit(LinesClearedEvent{Cells: clears.Cells, Rows: clears.Rows, Cols: clears.Cols})

		groups, bonus := scanGroups(g.board)
		outcome.GroupsFound = groups
		outcome.ScoreDelta += bonus
		g.groupsFormed += groups
	}

	g.score += outcome.ScoreDelta
	if outcome.ScoreDelta != 0 {
		g.emit(ScoreChangedEvent{Delta: outcome.ScoreDelta, At: anchor})
	}

	// Level completion is gated on clearing the whole grid AND having the
	// score threshold; an empty board below threshold just stays empty.
	if g.board.IsEmpty() && g.score >= RequiredScore(g.level) {
		g.levelUp()
	}

	g.tray.Refill(g.gen)

	if !g.anyPlacementPossible() {
		g.gameOver = true
		g.emit(GameOverEvent{Score: g.score, Level: g.level})
	}

	return outcome
}

// levelUp advances to the next level: reseed the generator, reset board and
// tray, roll the perfect-level streak and clear per-level accounting.
// Score is carried over untouched.
func (g *Game) levelUp() {
	g.level++
	g.gen.SeedLevel(g.level)
	g.board.Reset()
	g.tray.Clear()
	g.tray.Refill(g.gen)

	if g.perfect {
		g.perfectStreak++
	}
	g.perfect = true
	g.chain = 0
	g.usedColors = make(map[Color]bool)
	g.usedShapes = make(map[string]bool)

	g.emit(BoardChangedEvent{})
	g.emit(LevelChangedEvent{Level: g.level})
}

// anyPlacementPossible reports whether any tray block fits anywhere.
func (g *Game) anyPlacementPossible() bool {
	for _, block := range g.tray.Blocks() {
		for y := 0; y < g.board.N; y++ {
			for x := 0; x < g.board.N; x++ {
				if g.board.CanPlace(block.Shape, C(x, y)) {
					return true
				}
			}
		}
	}
	return false
}

// emit queues an event for the caller.
func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

// TakeEvents drains and returns the events produced since the last call.
func (g *Game) TakeEvents() []Event {
	ev := g.pending
	g.pending = nil
	return ev
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Tray returns the currently offered pieces in order.
func (g *Game) Tray() []Block {
	return g.tray.Blocks()
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// GameOver returns true once no tray piece can be placed anywhere.
func (g *Game) GameOver() bool {
	return g.gameOver
}
