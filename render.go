package main

import (
	"fmt"
	"strings"

	"github.com/can2049/tetris-tui/internal/tetris"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors []lipgloss.Color
}

// PieceColors follow tetris.AllKinds order: I O T S Z J L.
var themes = []Theme{
	{
		Name:        "Classic",
		BorderColor: lipgloss.Color("15"),
		TextColor:   lipgloss.Color("250"),
		AccentColor: lipgloss.Color("226"),
		PieceColors: []lipgloss.Color{"51", "226", "201", "46", "196", "21", "229"},
	},
	{
		Name:        "Amber Terminal",
		BorderColor: lipgloss.Color("214"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("208"),
		PieceColors: []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:        "Ocean Neon",
		BorderColor: lipgloss.Color("33"),
		TextColor:   lipgloss.Color("159"),
		AccentColor: lipgloss.Color("39"),
		PieceColors: []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:        "Forest CRT",
		BorderColor: lipgloss.Color("22"),
		TextColor:   lipgloss.Color("120"),
		AccentColor: lipgloss.Color("34"),
		PieceColors: []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:        "Mono Matrix",
		BorderColor: lipgloss.Color("250"),
		TextColor:   lipgloss.Color("245"),
		AccentColor: lipgloss.Color("82"),
		PieceColors: []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
	{
		Name:        "Sunset Arcade",
		BorderColor: lipgloss.Color("209"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("214"),
		PieceColors: []lipgloss.Color{"202", "208", "214", "172", "203", "166", "130"},
	},
	{
		Name:        "Volcanic",
		BorderColor: lipgloss.Color("203"),
		TextColor:   lipgloss.Color("223"),
		AccentColor: lipgloss.Color("214"),
		PieceColors: []lipgloss.Color{"52", "88", "124", "160", "196", "202", "208"},
	},
}

const (
	sidebarWidth = 26
	previewSize  = 4
	cellGlyph    = "█"
	ghostGlyph   = "·"
)

const (
	gameOverMessage    = "Game Over!\nPress r to restart or q to quit the game."
	confirmExitMessage = "Quit the game?\nPress y to confirm, n to cancel."
	pausedMessage      = "Paused\nPress p to resume."
)

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	scale := clampScale(m.config.Scale)
	minWidth, minHeight := minGameSize(scale)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	board := renderBoard(m.game, theme, scale, m.config.Shadow, modalMessage(m.game, m.confirmExit))
	info := renderInfo(m.game, theme, scale, m.keys, m.config)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	if m.width > 0 && m.width < minWidth+sidebarWidth {
		content = lipgloss.JoinVertical(lipgloss.Left, board, info)
	}
	return center(m.width, m.height, content)
}

// modalMessage picks the overlay for the board. The quit prompt belongs to
// the driver, so it is passed in rather than read from the game.
func modalMessage(g *tetris.State, confirmExit bool) string {
	switch {
	case g.GameOver():
		return gameOverMessage
	case confirmExit:
		return confirmExitMessage
	case g.Paused():
		return pausedMessage
	default:
		return ""
	}
}

func renderBoard(g *tetris.State, theme Theme, scale int, showShadow bool, modal string) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	innerWidth := tetris.BoardWidth * cellWidth(scale)
	innerHeight := tetris.BoardHeight * scale

	var rows []string
	if modal != "" {
		popup := renderModal(modal, theme, innerWidth)
		rows = strings.Split(lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, popup), "\n")
	} else {
		rows = renderCells(g, theme, scale, showShadow)
	}

	edge := border.Render("+" + strings.Repeat("-", innerWidth) + "+")
	var b strings.Builder
	b.WriteString(edge)
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(border.Render("|"))
		b.WriteString(row)
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(edge)
	return b.String()
}

func renderCells(g *tetris.State, theme Theme, scale int, showShadow bool) []string {
	merged := g.Merged()
	ghost := map[tetris.Offset]struct{}{}
	if showShadow {
		shadow := g.Ghost()
		if shadow.Y != g.Current().Y {
			for _, block := range shadow.Blocks() {
				ghost[block] = struct{}{}
			}
		}
	}
	width := cellWidth(scale)
	blank := strings.Repeat(" ", width)
	rows := make([]string, 0, tetris.BoardHeight*scale)
	for y := 0; y < tetris.BoardHeight; y++ {
		var line strings.Builder
		for x := 0; x < tetris.BoardWidth; x++ {
			if kind, ok := merged[y][x].Kind(); ok {
				line.WriteString(pieceStyle(theme, kind).Render(strings.Repeat(cellGlyph, width)))
				continue
			}
			if _, ok := ghost[tetris.Offset{X: x, Y: y}]; ok {
				color := pieceColor(theme, g.Current().Kind)
				line.WriteString(lipgloss.NewStyle().Foreground(color).Faint(true).Render(strings.Repeat(ghostGlyph, width)))
				continue
			}
			line.WriteString(blank)
		}
		for repeat := 0; repeat < scale; repeat++ {
			rows = append(rows, line.String())
		}
	}
	return rows
}

func renderModal(message string, theme Theme, boardWidth int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.AccentColor).
		Foreground(theme.TextColor).
		Align(lipgloss.Center).
		Width(boardWidth - 4)
	lines := strings.SplitN(message, "\n", 2)
	body := titleStyle(theme).Render(lines[0])
	if len(lines) > 1 {
		body += "\n" + lines[1]
	}
	return style.Render(body)
}

func renderInfo(g *tetris.State, theme Theme, scale int, keys KeyMap, config Config) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(titleStyle(theme).Render("Next Piece")))
	b.WriteString("\n")
	b.WriteString(pad.Render(renderPreview(g.Next(), theme, scale)))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(titleStyle(theme).Render("Stats")))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", g.Score())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", g.Lines())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Status: %s", g.Phase())))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(helpStyle(theme).Render(fmt.Sprintf("Theme: %s", theme.Name))))
	b.WriteString("\n")
	b.WriteString(pad.Render(helpStyle(theme).Render(fmt.Sprintf("Sound: %s  Ghost: %s", onOff(config.Sound), onOff(config.Shadow)))))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(titleStyle(theme).Render("Controls")))
	b.WriteString("\n")
	for _, binding := range keys.helpBindings() {
		b.WriteString(pad.Render(helpStyle(theme).Render(helpLine(binding))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func helpLine(binding key.Binding) string {
	help := binding.Help()
	return fmt.Sprintf("%-7s %s", help.Key, help.Desc)
}

// renderPreview draws the piece offsets that fall inside a 4x4 window.
func renderPreview(p tetris.Piece, theme Theme, scale int) string {
	var grid [previewSize][previewSize]bool
	for _, o := range p.Offsets() {
		if o.X >= 0 && o.X < previewSize && o.Y >= 0 && o.Y < previewSize {
			grid[o.Y][o.X] = true
		}
	}
	width := cellWidth(scale)
	filled := pieceStyle(theme, p.Kind).Render(strings.Repeat(cellGlyph, width))
	blank := strings.Repeat(" ", width)
	var b strings.Builder
	for y := 0; y < previewSize; y++ {
		for repeat := 0; repeat < scale; repeat++ {
			for x := 0; x < previewSize; x++ {
				if grid[y][x] {
					b.WriteString(filled)
				} else {
					b.WriteString(blank)
				}
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func pieceColor(theme Theme, kind tetris.Kind) lipgloss.Color {
	return theme.PieceColors[int(kind)%len(theme.PieceColors)]
}

func pieceStyle(theme Theme, kind tetris.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(pieceColor(theme, kind))
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

func minGameSize(scale int) (int, int) {
	width := tetris.BoardWidth*cellWidth(scale) + 2
	height := tetris.BoardHeight*scale + 2
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func clampScale(value int) int {
	if value < 1 {
		return 1
	}
	if value > 3 {
		return 3
	}
	return value
}

func clampVolumePercent(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func cellWidth(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return 2 * scale
}
