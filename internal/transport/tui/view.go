package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kiryu-dev/tetris/internal/domain"
)

const (
	block = "██"
	empty = " ·"
)

var (
	cellColors = map[domain.Cell]lipgloss.Color{
		domain.LightBlue: lipgloss.Color("#5050C8"),
		domain.Blue:      lipgloss.Color("#2828C8"),
		domain.Orange:    lipgloss.Color("#642828"),
		domain.Yellow:    lipgloss.Color("#461E1E"),
		domain.Green:     lipgloss.Color("#1EC81E"),
		domain.Purple:    lipgloss.Color("#B428B4"),
		domain.Red:       lipgloss.Color("#C81E1E"),
	}
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boardStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	overStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C81E1E"))
)

// RenderFrame draws the board with the active piece on top.
func RenderFrame(board domain.Board, piece *domain.Piece, phase domain.Phase) string {
	composed := domain.Compose(board, piece)
	var sb strings.Builder
	for y, row := range composed {
		for _, cell := range row {
			sb.WriteString(renderCell(cell))
		}
		if y < len(composed)-1 {
			sb.WriteByte('\n')
		}
	}
	out := boardStyle.Render(sb.String())
	if phase == domain.Over {
		out += "\n" + overStyle.Render("GAME OVER")
	}
	return out
}

func renderCell(cell domain.Cell) string {
	color, ok := cellColors[cell]
	if !ok {
		return emptyStyle.Render(empty)
	}
	return lipgloss.NewStyle().Foreground(color).Render(block)
}

func renderStatus(snapshot domain.Snapshot) string {
	lines := []string{
		fmt.Sprintf("pieces: %d  rows: %d", snapshot.Spawned, snapshot.LinesCleared),
	}
	if snapshot.Phase == domain.Over {
		lines = append(lines, "n: new game  q: quit")
	} else {
		lines = append(lines, "←/→ move  ↓ drop  r/R rotate  q: quit")
	}
	return statusStyle.Render(strings.Join(lines, "\n"))
}
