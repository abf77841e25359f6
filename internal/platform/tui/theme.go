package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mpetrov/blocksmash/internal/engine"
)

// Theme contains all configurable visual styles for the board and HUD.
type Theme struct {
	// Piece colors, indexed by engine color
	Pieces map[engine.Color]lipgloss.Style

	// Board furniture
	EmptyCell   lipgloss.Style
	Border      lipgloss.Style
	CursorOK    lipgloss.Style // Ghost cells where the piece fits
	CursorBad   lipgloss.Style // Ghost cells where it does not
	ClearedCell lipgloss.Style // Flash style for just-cleared cells

	// Tray styles
	TrayLabel    lipgloss.Style
	TraySelected lipgloss.Style

	// HUD styles
	HUDTitle  lipgloss.Style
	HUDValue  lipgloss.Style
	HUDLabel  lipgloss.Style
	Status    lipgloss.Style
	GameOver  lipgloss.Style
	HelpStyle lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Pieces: map[engine.Color]lipgloss.Style{
			engine.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			engine.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			engine.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			engine.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			engine.ColorCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			engine.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			engine.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
			engine.ColorPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		},

		EmptyCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CursorOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		CursorBad:   lipgloss.NewStyle().Foreground(lipgloss.Color("88")).Bold(true),
		ClearedCell: lipgloss.NewStyle().Foreground(lipgloss.Color("230")),

		TrayLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TraySelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		HUDTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		GameOver:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		HelpStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	shades := []string{"255", "252", "249", "246", "243", "240", "250", "237"}
	for c := engine.Color(0); c < engine.NumColors; c++ {
		theme.Pieces[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(shades[c]))
	}
	return theme
}
