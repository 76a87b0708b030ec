package main

import (
	"testing"

	"github.com/can2049/tetris-tui/internal/tetris"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constRand always deals the same kind.
type constRand tetris.Kind

func (c constRand) Intn(n int) int { return int(c) % n }

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv(envConfigDir, t.TempDir())
	return NewModel(defaultConfig(), constRand(tetris.O), nil)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func topOut(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 50 && !m.game.GameOver(); i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	}
	require.True(t, m.game.GameOver())
	return m
}

func TestInitSchedulesTick(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestTickAppliesGravity(t *testing.T) {
	m := newTestModel(t)
	y := m.game.Current().Y
	m, cmd := send(t, m, tickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, y+1, m.game.Current().Y)
}

func TestQuitPromptCancel(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, runeKey("q"))
	assert.Nil(t, cmd)
	assert.True(t, m.confirmExit)
	assert.Contains(t, m.View(), "Quit the game?")

	m, cmd = send(t, m, runeKey("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmExit)
	assert.False(t, m.quitting)
	assert.NotContains(t, m.View(), "Quit the game?")
}

func TestQuitPromptConfirm(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("q"))
	m, cmd := send(t, m, runeKey("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestQuitPromptFreezesGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("q"))
	before := m.game.Current()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, cmd := send(t, m, tickMsg{})

	assert.NotNil(t, cmd, "the timer keeps running")
	assert.Equal(t, before, m.game.Current())
	assert.Equal(t, uint32(0), m.game.Score())
	assert.True(t, m.confirmExit)
}

func TestForceQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestMovesAndDrops(t *testing.T) {
	m := newTestModel(t)
	x := m.game.Current().X
	m, _ = send(t, m, runeKey("h"))
	assert.Equal(t, x-1, m.game.Current().X)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, x, m.game.Current().X)

	y := m.game.Current().Y
	m, _ = send(t, m, runeKey("j"))
	assert.Equal(t, y+1, m.game.Current().Y)
	assert.Equal(t, uint32(0), m.game.Score())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Greater(t, m.game.Score(), uint32(0))
	assert.Equal(t, tetris.SpawnY, m.game.Current().Y)
}

func TestPauseBlocksGameplay(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("p"))
	require.True(t, m.game.Paused())
	assert.Contains(t, m.View(), "Paused")

	before := m.game.Current()
	m, _ = send(t, m, runeKey("h"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = send(t, m, tickMsg{})
	assert.Equal(t, before, m.game.Current())

	m, _ = send(t, m, runeKey("p"))
	assert.Equal(t, tetris.Playing, m.game.Phase())
}

func TestResetOnlyAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	score := m.game.Score()
	m, _ = send(t, m, runeKey("r"))
	assert.Equal(t, score, m.game.Score())

	m = topOut(t, m)
	assert.Contains(t, m.View(), "Game Over!")
	m, _ = send(t, m, runeKey("p"))
	assert.True(t, m.game.GameOver(), "pause is ignored after game over")

	m, _ = send(t, m, runeKey("r"))
	assert.Equal(t, tetris.Playing, m.game.Phase())
	assert.Equal(t, uint32(0), m.game.Score())
	assert.Equal(t, uint32(0), m.game.Lines())
}

func TestQuitAfterGameOverSkipsPrompt(t *testing.T) {
	m := topOut(t, newTestModel(t))
	m, cmd := send(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.confirmExit)
}

func TestSettingsArePersisted(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey("t"))
	m, _ = send(t, m, runeKey("m"))
	m, _ = send(t, m, runeKey("g"))
	assert.Equal(t, 1, m.themeIndex)

	saved, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, themes[1].Name, saved.Theme)
	assert.False(t, saved.Sound)
	assert.False(t, saved.Shadow)
}

func TestAdjustScaleClamps(t *testing.T) {
	m := newTestModel(t)
	m.adjustScale(-1)
	assert.Equal(t, 1, m.config.Scale)
	m.adjustScale(1)
	m.adjustScale(1)
	m.adjustScale(1)
	assert.Equal(t, 3, m.config.Scale)

	saved, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 3, saved.Scale)
}
