// Package tui provides the Bubble Tea front end for blocksmash, including
// SSH serving via Wish. All game rules live in the engine package; this
// layer only translates key presses into engine calls and renders the
// resulting state.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrov/blocksmash/internal/config"
	"github.com/mpetrov/blocksmash/internal/engine"
	"github.com/mpetrov/blocksmash/internal/storage"
)

// Model is the Bubble Tea model for an interactive game session.
type Model struct {
	game  *engine.Game
	store *storage.Store // May be nil; persistence is best-effort
	cfg   config.Config
	theme Theme
	keys  KeyMap
	help  help.Model

	cursor engine.Coord
	slot   int // Selected tray slot

	status     string
	flash      map[engine.Coord]bool // Cells cleared by the last placement
	scoreSaved bool
	quitting   bool

	width  int
	height int
}

// NewModel creates a model for the given game. The store may be nil, in
// which case scores and autosaves are skipped.
func NewModel(game *engine.Game, store *storage.Store, cfg config.Config) Model {
	h := help.New()
	h.ShowAll = false
	theme := DefaultTheme()
	if cfg.UI.Style == "mono" {
		theme = MonochromeTheme()
	}
	return Model{
		game:  game,
		store: store,
		cfg:   cfg,
		theme: theme,
		keys:  DefaultKeyMap(),
		help:  h,
		flash: make(map[engine.Coord]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey translates a key press into an engine call.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.onQuit()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.game.NewGameInPlace()
		m.game.TakeEvents()
		m.cursor = engine.C(0, 0)
		m.slot = 0
		m.status = ""
		m.flash = make(map[engine.Coord]bool)
		m.scoreSaved = false
		return m, nil
	}

	if m.game.GameOver() {
		// Undo is the one rescue allowed from the terminal screen.
		if key.Matches(msg, m.keys.Undo) {
			m.tryUndo()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.NextPiece):
		m.selectSlot(msg.String())
	case key.Matches(msg, m.keys.Place):
		m.tryPlace()
	case key.Matches(msg, m.keys.Undo):
		m.tryUndo()
	}

	return m, nil
}

// moveCursor shifts the cursor, keeping the selected piece inside the board.
func (m *Model) moveCursor(dx, dy int) {
	n := m.game.Board().N
	maxX, maxY := n-1, n-1
	if block, ok := m.selectedBlock(); ok {
		maxX = n - block.Shape.W
		maxY = n - block.Shape.H
	}

	m.cursor.X = clamp(m.cursor.X+dx, 0, maxX)
	m.cursor.Y = clamp(m.cursor.Y+dy, 0, maxY)
}

// selectSlot handles tab cycling and direct 1-3 selection.
func (m *Model) selectSlot(keyStr string) {
	count := len(m.game.Tray())
	if count == 0 {
		return
	}
	switch keyStr {
	case "1", "2", "3":
		want := int(keyStr[0] - '1')
		if want < count {
			m.slot = want
		}
	default:
		m.slot = (m.slot + 1) % count
	}
	// Re-clamp the cursor for the newly selected shape.
	m.moveCursor(0, 0)
}

// selectedBlock returns the block in the active tray slot.
func (m *Model) selectedBlock() (engine.Block, bool) {
	tray := m.game.Tray()
	if m.slot >= len(tray) {
		m.slot = 0
	}
	if len(tray) == 0 {
		return engine.Block{}, false
	}
	return tray[m.slot], true
}

// tryPlace commits the selected piece at the cursor.
func (m *Model) tryPlace() {
	out := m.game.ResolvePlacement(m.slot, m.cursor)
	if !out.Committed {
		m.status = "Doesn't fit there"
		return
	}

	m.flash = make(map[engine.Coord]bool)
	for _, c := range out.ClearedCells {
		m.flash[c] = true
	}
	m.consumeEvents()
	if m.slot >= len(m.game.Tray()) {
		m.slot = 0
	}
	m.moveCursor(0, 0)
}

// tryUndo rolls back the last placement if the budget allows.
func (m *Model) tryUndo() {
	if !m.game.Undo() {
		m.status = "Nothing to undo"
		return
	}
	m.game.TakeEvents()
	m.status = "Undone"
	m.flash = make(map[engine.Coord]bool)
	m.scoreSaved = false
	m.moveCursor(0, 0)
}

// consumeEvents drains engine events into the status line and persistence.
func (m *Model) consumeEvents() {
	for _, e := range m.game.TakeEvents() {
		switch ev := e.(type) {
		case engine.ScoreChangedEvent:
			m.status = fmt.Sprintf("+%d", ev.Delta)
		case engine.LevelChangedEvent:
			m.status = fmt.Sprintf("Level %d!", ev.Level)
		case engine.GameOverEvent:
			m.status = "Game over"
			m.saveFinalScore(ev)
		}
	}
}

// saveFinalScore records the finished game and clears the autosave.
func (m *Model) saveFinalScore(ev engine.GameOverEvent) {
	if m.store == nil || m.scoreSaved {
		return
	}
	p := m.game.Progress()
	//nolint:errcheck // Best-effort save
	m.store.SaveScore(ev.Score, ev.Level, p.LinesCleared)
	if slot := m.cfg.Storage.AutosaveSlot; slot != "" {
		//nolint:errcheck
		m.store.DeleteGame(slot)
	}
	m.scoreSaved = true
}

// onQuit autosaves a game in progress.
func (m *Model) onQuit() {
	if m.store == nil || m.game.GameOver() {
		return
	}
	if slot := m.cfg.Storage.AutosaveSlot; slot != "" {
		//nolint:errcheck
		m.store.SaveGame(slot, m.game.Snapshot())
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

func clamp(val, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
