package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type action int

const (
	actionNone action = iota
	actionMoveLeft
	actionMoveRight
	actionSoftDrop
	actionRotate
	actionHardDrop
	actionPause
	actionReset
	actionQuitRequest
	actionQuitConfirm
	actionQuitCancel
	actionForceQuit
	actionCycleTheme
	actionToggleSound
	actionToggleShadow
	actionScaleUp
	actionScaleDown
)

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	SoftDrop  key.Binding
	Rotate    key.Binding
	HardDrop  key.Binding
	Pause     key.Binding
	Reset     key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	ForceQuit key.Binding
	Theme     key.Binding
	Sound     key.Binding
	Shadow    key.Binding
	ScaleUp   key.Binding
	ScaleDown key.Binding
}

var Keys = KeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "move left")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "move right")),
	SoftDrop:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "soft drop")),
	Rotate:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "rotate")),
	HardDrop:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "hard drop")),
	Pause:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Confirm:   key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
	Cancel:    key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Sound:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
	Shadow:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "ghost")),
	ScaleUp:   key.NewBinding(key.WithKeys("ctrl+=", "ctrl++"), key.WithHelp("ctrl+=", "bigger")),
	ScaleDown: key.NewBinding(key.WithKeys("ctrl+-", "ctrl+_"), key.WithHelp("ctrl+-", "smaller")),
}

// helpBindings lists the bindings shown in the controls panel.
func (k KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Left, k.Right, k.SoftDrop, k.Rotate, k.HardDrop,
		k.Pause, k.Quit, k.Theme, k.Sound, k.Shadow,
	}
}

// decode turns a key press into an action. While the quit prompt is open
// only confirm, cancel and ctrl+c are recognised.
func (k KeyMap) decode(msg tea.KeyMsg, confirming bool) action {
	if key.Matches(msg, k.ForceQuit) {
		return actionForceQuit
	}
	if confirming {
		switch {
		case key.Matches(msg, k.Confirm):
			return actionQuitConfirm
		case key.Matches(msg, k.Cancel):
			return actionQuitCancel
		}
		return actionNone
	}
	switch {
	case key.Matches(msg, k.Quit):
		return actionQuitRequest
	case key.Matches(msg, k.Pause):
		return actionPause
	case key.Matches(msg, k.Reset):
		return actionReset
	case key.Matches(msg, k.Left):
		return actionMoveLeft
	case key.Matches(msg, k.Right):
		return actionMoveRight
	case key.Matches(msg, k.SoftDrop):
		return actionSoftDrop
	case key.Matches(msg, k.Rotate):
		return actionRotate
	case key.Matches(msg, k.HardDrop):
		return actionHardDrop
	case key.Matches(msg, k.Theme):
		return actionCycleTheme
	case key.Matches(msg, k.Sound):
		return actionToggleSound
	case key.Matches(msg, k.Shadow):
		return actionToggleShadow
	case key.Matches(msg, k.ScaleUp):
		return actionScaleUp
	case key.Matches(msg, k.ScaleDown):
		return actionScaleDown
	}
	return actionNone
}

func (a action) gameplay() bool {
	switch a {
	case actionMoveLeft, actionMoveRight, actionSoftDrop, actionRotate, actionHardDrop:
		return true
	}
	return false
}
