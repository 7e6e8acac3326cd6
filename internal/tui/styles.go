package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/kluro/internal/game"
)

// ------- styling helpers (Lip Gloss) -------
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	tile = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	outcomeStyles = map[game.Outcome]lipgloss.Style{
		game.Unused:  tile.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")),
		game.Absent:  tile.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")),
		game.Present: tile.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("178")),
		game.Correct: tile.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")),
	}
	emptyTile = tile.Foreground(lipgloss.Color("240"))
)

// keyboardRows is the Swedish keyboard layout.
var keyboardRows = []string{"QWERTYUIOPÅ", "ASDFGHJKLÖÄ", "ZXCVBNM"}

func renderRow(row game.Row) string {
	cells := make([]string, 0, len(row))
	for _, c := range row {
		cells = append(cells, outcomeStyles[c.Status].Render(c.Letter))
	}
	return strings.Join(cells, " ")
}

// renderGrid draws the played rows followed by the still-open ones.
func renderGrid(st game.State, wordLength int, pending string) string {
	lines := make([]string, 0, game.MaxAttempts)
	for _, row := range st.Grid {
		lines = append(lines, renderRow(row))
	}
	for i := len(st.Grid); i < game.MaxAttempts; i++ {
		typed := []rune(pending)
		if i != len(st.Grid) || st.IsComplete {
			typed = nil
		}
		cells := make([]string, wordLength)
		for j := range cells {
			if j < len(typed) {
				cells[j] = outcomeStyles[game.Unused].Render(game.Normalize(string(typed[j])))
			} else {
				cells[j] = emptyTile.Render("·")
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderKeyboard(kb game.Keyboard) string {
	lines := make([]string, 0, len(keyboardRows))
	for i, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for _, r := range row {
			l := string(r)
			keys = append(keys, outcomeStyles[kb[l]].Render(l))
		}
		lines = append(lines, strings.Repeat(" ", i*2)+strings.Join(keys, ""))
	}
	return strings.Join(lines, "\n")
}

// panelString frames inner in a rounded border.
func panelString(inner string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(inner)
}
