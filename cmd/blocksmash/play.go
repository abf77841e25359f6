package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpetrov/blocksmash/internal/config"
	"github.com/mpetrov/blocksmash/internal/engine"
	"github.com/mpetrov/blocksmash/internal/platform/tui"
	"github.com/mpetrov/blocksmash/internal/storage"
)

var (
	flagResume     bool
	flagResumeSlot string
	flagFresh      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game in the current terminal.

Controls:
  Arrows/wasd  - Move the cursor
  Tab/1-3      - Select tray piece
  Enter/Space  - Place the piece
  U            - Undo the last placement
  N            - New game
  Q/Ctrl+C     - Quit (autosaves a game in progress)

Quitting mid-game writes an autosave; 'play --resume' picks it back up.

Examples:
  blocksmash play
  blocksmash play --resume
  blocksmash play --resume --slot evening
  blocksmash play --fresh`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume a saved game")
	playCmd.Flags().StringVar(&flagResumeSlot, "slot", "", "Save slot to resume (default: autosave slot)")
	playCmd.Flags().BoolVar(&flagFresh, "fresh", false, "Ignore any autosave and start a new game")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	game, err := startingGame(store, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(game, store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// startingGame picks between a fresh game and a restored save.
func startingGame(store *storage.Store, cfg config.Config) (*engine.Game, error) {
	if flagFresh || store == nil {
		return engine.NewGame(), nil
	}

	slot := flagResumeSlot
	if slot == "" {
		slot = cfg.Storage.AutosaveSlot
	}

	if !flagResume || slot == "" {
		return engine.NewGame(), nil
	}

	snap, err := store.LoadGame(slot)
	if err != nil {
		return nil, fmt.Errorf("cannot load slot %q: %w", slot, err)
	}
	if snap == nil {
		if flagResumeSlot != "" {
			return nil, fmt.Errorf("no saved game in slot %q", slot)
		}
		// Nothing autosaved; just start fresh.
		return engine.NewGame(), nil
	}

	game, err := engine.RestoreGame(*snap)
	if err != nil {
		return nil, fmt.Errorf("corrupt save in slot %q: %w", slot, err)
	}
	return game, nil
}
