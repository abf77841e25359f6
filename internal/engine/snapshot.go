package engine

import "fmt"

// Snapshot is the persistable game state. A game can be reconstructed from
// exactly this tuple: the generator stream is re-derivable from the level
// number, so no RNG state is stored. Per-level counters and the undo slot
// are intentionally not part of the persisted shape.
type Snapshot struct {
	Score int         `json:"score"`
	Level int         `json:"level"`
	N     int         `json:"n"`
	Board []SavedCell `json:"board"` // Row-major, length N*N
	Tray  []SavedTray `json:"tray"`
}

// SavedCell is one persisted board cell.
type SavedCell struct {
	Filled bool  `json:"filled"`
	Color  Color `json:"color,omitempty"`
}

// SavedTray is one persisted tray piece.
type SavedTray struct {
	Shape string `json:"shape"`
	Color Color  `json:"color"`
}

// Snapshot captures the persistable state of the game.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Score: g.score,
		Level: g.level,
		N:     g.board.N,
		Board: make([]SavedCell, len(g.board.Cells)),
		Tray:  make([]SavedTray, 0, g.tray.Len()),
	}
	for i, cell := range g.board.Cells {
		snap.Board[i] = SavedCell{Filled: cell.Filled, Color: cell.Color}
	}
	for _, block := range g.tray.Blocks() {
		snap.Tray = append(snap.Tray, SavedTray{Shape: block.Shape.Name, Color: block.Color})
	}
	return snap
}

// RestoreGame reconstructs a game from a snapshot. Block identity tokens are
// reassigned and the generator is reseeded from the level. The terminal
// state is re-derived from the restored board and tray.
func RestoreGame(snap Snapshot) (*Game, error) {
	if snap.N <= 0 {
		return nil, fmt.Errorf("engine: invalid board size %d", snap.N)
	}
	if len(snap.Board) != snap.N*snap.N {
		return nil, fmt.Errorf("engine: board has %d cells, want %d", len(snap.Board), snap.N*snap.N)
	}
	if snap.Level < 1 {
		return nil, fmt.Errorf("engine: invalid level %d", snap.Level)
	}
	if len(snap.Tray) > TrayCapacity {
		return nil, fmt.Errorf("engine: tray has %d pieces, capacity is %d", len(snap.Tray), TrayCapacity)
	}

	g := &Game{
		board:      NewBoard(snap.N),
		tray:       NewTray(),
		gen:        NewGenerator(snap.Level),
		score:      snap.Score,
		level:      snap.Level,
		perfect:    true,
		usedColors: make(map[Color]bool),
		usedShapes: make(map[string]bool),
	}

	for i, cell := range snap.Board {
		if cell.Filled && !cell.Color.Valid() {
			return nil, fmt.Errorf("engine: cell %d has invalid color %d", i, cell.Color)
		}
		g.board.Cells[i] = Cell{Filled: cell.Filled, Color: cell.Color}
	}

	blocks := make([]Block, 0, len(snap.Tray))
	for i, piece := range snap.Tray {
		shape, ok := ShapeByName(piece.Shape)
		if !ok {
			return nil, fmt.Errorf("engine: tray slot %d references unknown shape %q", i, piece.Shape)
		}
		if !piece.Color.Valid() {
			return nil, fmt.Errorf("engine: tray slot %d has invalid color %d", i, piece.Color)
		}
		blocks = append(blocks, Block{ID: uint64(i) + 1, Shape: shape, Color: piece.Color})
	}
	g.tray.setBlocks(blocks)
	g.tray.Refill(g.gen)

	if !g.anyPlacementPossible() {
		g.gameOver = true
	}
	return g, nil
}
