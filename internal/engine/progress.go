package engine

// Progress is a read-only bundle of raw counters for external achievement
// and leaderboard collaborators. The engine only reports values; unlock
// thresholds are decided elsewhere.
type Progress struct {
	Score              int
	Level              int
	BlocksPlaced       int
	LinesCleared       int
	ChainLength        int
	GroupsFormed       int
	GridFillPercent    float64
	PerfectLevelStreak int
	UndoCount          int
	UsedColorCount     int
	UsedShapeCount     int
}

// Progress returns a snapshot of the current counters.
func (g *Game) Progress() Progress {
	return Progress{
		Score:              g.score,
		Level:              g.level,
		BlocksPlaced:       g.blocksPlaced,
		LinesCleared:       g.linesCleared,
		ChainLength:        g.chain,
		GroupsFormed:       g.groupsFormed,
		GridFillPercent:    g.board.FillPercent(),
		PerfectLevelStreak: g.perfectStreak,
		UndoCount:          g.undoCount,
		UsedColorCount:     len(g.usedColors),
		UsedShapeCount:     len(g.usedShapes),
	}
}
