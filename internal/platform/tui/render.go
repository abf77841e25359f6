package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mpetrov/blocksmash/internal/engine"
)

// Cell glyphs, two terminal columns per board cell.
const (
	glyphFilled   = "██"
	glyphEmpty    = "··"
	glyphGhost    = "▓▓"
	glyphBlocked  = "××"
	glyphFilledA  = "[]"
	glyphEmptyA   = " ."
	glyphGhostA   = "##"
	glyphBlockedA = "XX"
)

func (m Model) glyphs() (filled, empty, ghost, blocked string) {
	if m.cfg.UI.Style == "ascii" {
		return glyphFilledA, glyphEmptyA, glyphGhostA, glyphBlockedA
	}
	return glyphFilled, glyphEmpty, glyphGhost, glyphBlocked
}

// render assembles the complete play screen.
func (m Model) render() string {
	var sb strings.Builder

	sb.WriteString(m.theme.HUDTitle.Render("BLOCKSMASH"))
	sb.WriteString("\n\n")

	board := m.renderBoard()
	hud := m.renderHUD()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "   ", hud))
	sb.WriteString("\n")

	sb.WriteString(m.renderTray())
	sb.WriteString("\n")

	if m.game.GameOver() {
		sb.WriteString(m.theme.GameOver.Render(
			fmt.Sprintf("GAME OVER — score %d, level %d", m.game.Score(), m.game.Level())))
		sb.WriteString(m.theme.HUDLabel.Render("  (u to undo, n for new game)"))
		sb.WriteString("\n")
	} else if m.status != "" {
		sb.WriteString(m.theme.Status.Render(m.status))
		sb.WriteString("\n")
	}

	if m.cfg.UI.ShowHelp {
		sb.WriteString(m.theme.HelpStyle.Render(m.help.View(m.keys)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderBoard draws the grid with the ghost piece overlay at the cursor.
func (m Model) renderBoard() string {
	b := m.game.Board()
	filled, empty, ghost, blocked := m.glyphs()

	ghostCells := make(map[engine.Coord]bool)
	fits := false
	if block, ok := m.selectedBlock(); ok && m.cfg.UI.ShowGhost && !m.game.GameOver() {
		fits = b.CanPlace(block.Shape, m.cursor)
		for _, off := range block.Shape.Offsets {
			ghostCells[m.cursor.AddCoord(off)] = true
		}
	}

	var sb strings.Builder
	border := m.theme.Border
	sb.WriteString(border.Render("┌" + strings.Repeat("─", b.N*2) + "┐"))
	sb.WriteString("\n")

	for y := 0; y < b.N; y++ {
		sb.WriteString(border.Render("│"))
		for x := 0; x < b.N; x++ {
			c := engine.C(x, y)
			switch {
			case ghostCells[c]:
				if fits {
					sb.WriteString(m.theme.CursorOK.Render(ghost))
				} else {
					sb.WriteString(m.theme.CursorBad.Render(blocked))
				}
			case b.At(c).Filled:
				sb.WriteString(m.pieceStyle(b.At(c).Color).Render(filled))
			case m.flash[c]:
				sb.WriteString(m.theme.ClearedCell.Render(empty))
			default:
				sb.WriteString(m.theme.EmptyCell.Render(empty))
			}
		}
		sb.WriteString(border.Render("│"))
		sb.WriteString("\n")
	}

	sb.WriteString(border.Render("└" + strings.Repeat("─", b.N*2) + "┘"))
	return sb.String()
}

// renderTray draws the offered pieces with the active slot highlighted.
func (m Model) renderTray() string {
	filled, _, _, _ := m.glyphs()
	tray := m.game.Tray()

	panels := make([]string, 0, len(tray))
	for i, block := range tray {
		label := fmt.Sprintf("%d", i+1)
		style := m.theme.TrayLabel
		if i == m.slot {
			style = m.theme.TraySelected
			label = ">" + label
		} else {
			label = " " + label
		}

		var p strings.Builder
		p.WriteString(style.Render(label))
		p.WriteString("\n")
		p.WriteString(m.renderShape(block, filled))
		panels = append(panels, p.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGaps(panels)...)
}

// renderShape draws a block footprint in its color.
func (m Model) renderShape(block engine.Block, filledGlyph string) string {
	style := m.pieceStyle(block.Color)
	grid := make([][]bool, block.Shape.H)
	for i := range grid {
		grid[i] = make([]bool, block.Shape.W)
	}
	for _, off := range block.Shape.Offsets {
		grid[off.Y][off.X] = true
	}

	var sb strings.Builder
	for y, row := range grid {
		if y > 0 {
			sb.WriteString("\n")
		}
		for _, on := range row {
			if on {
				sb.WriteString(style.Render(filledGlyph))
			} else {
				sb.WriteString("  ")
			}
		}
	}
	return sb.String()
}

// renderHUD draws score, level and progress counters.
func (m Model) renderHUD() string {
	p := m.game.Progress()
	required := engine.RequiredScore(p.Level)

	line := func(label string, value string) string {
		return m.theme.HUDLabel.Render(label) + " " + m.theme.HUDValue.Render(value)
	}

	rows := []string{
		line("Score ", fmt.Sprintf("%d", p.Score)),
		line("Level ", fmt.Sprintf("%d (need %d)", p.Level, required)),
		line("Lines ", fmt.Sprintf("%d", p.LinesCleared)),
		line("Chain ", fmt.Sprintf("%d", p.ChainLength)),
		line("Groups", fmt.Sprintf("%d", p.GroupsFormed)),
		line("Streak", fmt.Sprintf("%d", p.PerfectLevelStreak)),
		line("Fill  ", fmt.Sprintf("%.0f%%", p.GridFillPercent)),
	}
	if m.game.UndoAvailable() {
		rows = append(rows, line("Undo  ", "ready"))
	} else {
		rows = append(rows, line("Undo  ", "-"))
	}

	return strings.Join(rows, "\n")
}

func (m Model) pieceStyle(c engine.Color) lipgloss.Style {
	if style, ok := m.theme.Pieces[c]; ok {
		return style
	}
	return m.theme.EmptyCell
}

// joinWithGaps interleaves panels with fixed-width spacers.
func joinWithGaps(panels []string) []string {
	out := make([]string, 0, len(panels)*2)
	for i, p := range panels {
		if i > 0 {
			out = append(out, "   ")
		}
		out = append(out, p)
	}
	return out
}
