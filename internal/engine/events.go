package engine

// Event is a notification produced by an engine transition for external
// collaborators (rendering, persistence, achievements). The engine never
// holds a reference to its consumers; callers drain pending events after
// each call with TakeEvents.
type Event interface {
	engineEvent()
}

// BoardChangedEvent signals that board contents changed and should be redrawn.
type BoardChangedEvent struct{}

func (BoardChangedEvent) engineEvent() {}

// LinesClearedEvent reports the cells cleared by a resolve pass, for the
// external redraw/animation collaborator.
type LinesClearedEvent struct {
	Cells []Coord
	Rows  []int
	Cols  []int
}

func (LinesClearedEvent) engineEvent() {}

// ScoreChangedEvent reports a score delta and a board position hint for
// floating score popups.
type ScoreChangedEvent struct {
	Delta int
	At    Coord
}

func (ScoreChangedEvent) engineEvent() {}

// LevelChangedEvent is emitted when the game advances to a new level.
type LevelChangedEvent struct {
	Level int
}

func (LevelChangedEvent) engineEvent() {}

// GameOverEvent is emitted once when no tray piece fits anywhere.
type GameOverEvent struct {
	Score int
	Level int
}

func (GameOverEvent) engineEvent() {}
