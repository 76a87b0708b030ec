package main

import (
	"time"

	"github.com/can2049/tetris-tui/internal/tetris"
	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 500 * time.Millisecond

type tickMsg struct{}
type soundMsg struct{}

type Model struct {
	width       int
	height      int
	themeIndex  int
	config      Config
	keys        KeyMap
	game        *tetris.State
	sound       *SoundEngine
	confirmExit bool
	quitting    bool
}

func NewModel(config Config, rng tetris.Randomizer, sound *SoundEngine) Model {
	config = config.normalized()
	if sound != nil {
		sound.SetEnabled(config.Sound)
		sound.SetVolume(volumeFromPercent(config.Volume))
	}
	return Model{
		config:     config,
		themeIndex: themeIndexByName(config.Theme),
		keys:       Keys,
		game:       tetris.New(rng),
		sound:      sound,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		cmd := m.onTick()
		return m, tea.Batch(tickCmd(), cmd)
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return viewGame(m)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) playSound(event SoundEvent) tea.Cmd {
	if !m.config.Sound || !m.sound.Enabled() {
		return nil
	}
	engine := m.sound
	return func() tea.Msg {
		engine.Play(event)
		return soundMsg{}
	}
}

// onTick applies gravity. The quit prompt freezes the game without stopping
// the timer.
func (m *Model) onTick() tea.Cmd {
	if m.confirmExit {
		return nil
	}
	result := m.game.Tick()
	TraceLogf("tick phase=%s y=%d", m.game.Phase(), m.game.Current().Y)
	return m.afterLock(result)
}

func (m *Model) afterLock(result tetris.LockResult) tea.Cmd {
	if !result.Locked {
		return nil
	}
	DebugLogf("lock cleared=%d distance=%d delta=%d score=%d lines=%d",
		result.Cleared, result.Distance, result.ScoreDelta, m.game.Score(), m.game.Lines())
	if m.game.GameOver() {
		InfoLogf("game over score=%d lines=%d", m.game.Score(), m.game.Lines())
		return m.playSound(SoundGameOver)
	}
	if event, ok := soundEventForLock(result); ok {
		return m.playSound(event)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	act := m.keys.decode(msg, m.confirmExit)
	if act.gameplay() && (m.game.GameOver() || m.game.Paused()) {
		return nil
	}
	switch act {
	case actionForceQuit, actionQuitConfirm:
		return m.quit()
	case actionQuitCancel:
		m.confirmExit = false
	case actionQuitRequest:
		if m.game.GameOver() {
			return m.quit()
		}
		m.confirmExit = true
	case actionPause:
		if m.game.GameOver() {
			return nil
		}
		m.game.TogglePause()
		DebugLogf("pause toggled phase=%s", m.game.Phase())
		return m.playSound(SoundPause)
	case actionReset:
		if !m.game.GameOver() {
			return nil
		}
		m.game.Reset()
		InfoLogf("game reset")
	case actionMoveLeft:
		if m.game.MoveHorizontal(-1) {
			return m.playSound(SoundMove)
		}
	case actionMoveRight:
		if m.game.MoveHorizontal(1) {
			return m.playSound(SoundMove)
		}
	case actionSoftDrop:
		m.game.SoftDrop()
	case actionRotate:
		if m.game.Rotate() {
			return m.playSound(SoundRotate)
		}
	case actionHardDrop:
		return m.afterLock(m.game.HardDrop())
	case actionCycleTheme:
		m.themeIndex = (m.themeIndex + 1) % len(themes)
		m.config.Theme = themes[m.themeIndex].Name
		m.persistConfig()
	case actionToggleSound:
		m.config.Sound = !m.config.Sound
		m.sound.SetEnabled(m.config.Sound)
		m.persistConfig()
	case actionToggleShadow:
		m.config.Shadow = !m.config.Shadow
		m.persistConfig()
	case actionScaleUp:
		m.adjustScale(1)
	case actionScaleDown:
		m.adjustScale(-1)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	InfoLogf("quit score=%d lines=%d", m.game.Score(), m.game.Lines())
	return tea.Quit
}

func (m *Model) adjustScale(delta int) {
	newScale := clampScale(m.config.Scale + delta)
	if newScale != m.config.Scale {
		m.config.Scale = newScale
		m.persistConfig()
	}
}

func (m *Model) persistConfig() {
	if err := saveConfig(m.config); err != nil {
		ErrorLogf("save config: %v", err)
	}
}
