package main

import (
	"strings"
	"testing"

	"github.com/can2049/tetris-tui/internal/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedGame(t *testing.T) *tetris.State {
	t.Helper()
	g := tetris.New(constRand(tetris.O))
	for i := 0; i < 50 && !g.GameOver(); i++ {
		g.HardDrop()
	}
	require.True(t, g.GameOver())
	return g
}

func TestModalPriority(t *testing.T) {
	playing := tetris.New(constRand(tetris.T))
	assert.Empty(t, modalMessage(playing, false))
	assert.Equal(t, confirmExitMessage, modalMessage(playing, true))

	paused := tetris.New(constRand(tetris.T))
	paused.TogglePause()
	assert.Equal(t, pausedMessage, modalMessage(paused, false))
	assert.Equal(t, confirmExitMessage, modalMessage(paused, true))

	over := finishedGame(t)
	assert.Equal(t, gameOverMessage, modalMessage(over, false))
	assert.Equal(t, gameOverMessage, modalMessage(over, true))
}

func TestBoardFrameSize(t *testing.T) {
	g := tetris.New(constRand(tetris.I))
	for scale := 1; scale <= 3; scale++ {
		for _, modal := range []string{"", pausedMessage} {
			lines := strings.Split(renderBoard(g, themes[0], scale, true, modal), "\n")
			assert.Len(t, lines, tetris.BoardHeight*scale+2)
			assert.Equal(t, "+"+strings.Repeat("-", tetris.BoardWidth*cellWidth(scale))+"+", lines[0])
		}
	}
}

func TestRenderCellsShowsPieceAndGhost(t *testing.T) {
	g := tetris.New(constRand(tetris.O))
	rows := renderCells(g, themes[0], 1, true)
	require.Len(t, rows, tetris.BoardHeight)
	all := strings.Join(rows, "\n")
	assert.Equal(t, 4*cellWidth(1), strings.Count(all, cellGlyph))
	assert.Equal(t, 4*cellWidth(1), strings.Count(all, ghostGlyph))

	rows = renderCells(g, themes[0], 1, false)
	assert.Zero(t, strings.Count(strings.Join(rows, "\n"), ghostGlyph))
}

func TestRenderPreview(t *testing.T) {
	for _, kind := range tetris.AllKinds {
		preview := renderPreview(tetris.NewPiece(kind), themes[0], 1)
		assert.Equal(t, 4*cellWidth(1), strings.Count(preview, cellGlyph), kind.String())
		assert.Len(t, strings.Split(preview, "\n"), previewSize)
	}
	scaled := renderPreview(tetris.NewPiece(tetris.T), themes[0], 2)
	assert.Equal(t, 4*cellWidth(2)*2, strings.Count(scaled, cellGlyph))
}

func TestViewShowsSidebar(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"Next Piece", "Score: 0", "Lines: 0", "Status: Playing", "Theme: Classic", "Controls", "hard drop"} {
		assert.Contains(t, view, want)
	}
	// Four cells of the falling piece and four in the preview.
	assert.Equal(t, 8*cellWidth(1), strings.Count(view, cellGlyph))
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel(t)
	m.width, m.height = 10, 10
	assert.Contains(t, m.View(), "Terminal too small")
}

func TestThemeLookup(t *testing.T) {
	assert.Equal(t, 0, themeIndexByName("Classic"))
	assert.Equal(t, len(themes)-1, themeIndexByName(themes[len(themes)-1].Name))
	assert.Equal(t, -1, themeIndexByName("missing"))
	for _, theme := range themes {
		assert.Len(t, theme.PieceColors, len(tetris.AllKinds), theme.Name)
	}
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 1, clampScale(0))
	assert.Equal(t, 2, clampScale(2))
	assert.Equal(t, 3, clampScale(7))
	assert.Equal(t, 0, clampVolumePercent(-4))
	assert.Equal(t, 55, clampVolumePercent(55))
	assert.Equal(t, 100, clampVolumePercent(130))
}
