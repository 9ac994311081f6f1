package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/sysview/internal/snapshot"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyRefresh    = "r"
	KeyFocusNext  = "tab"
	KeyFocusPrev  = "shift+tab"
	KeyMenuUp     = "up"
	KeyMenuUpK    = "k"
	KeyMenuDown   = "down"
	KeyMenuDownJ  = "j"
	KeySelect     = "enter"
	KeyGrow       = "]"
	KeyShrink     = "["
	KeyClose      = "esc"
	KeyToggleHelp = "?"
)

// categoryKeys maps number keys to categories in menu order.
var categoryKeys = map[string]snapshot.Category{
	"1": snapshot.Processor,
	"2": snapshot.Graphics,
	"3": snapshot.Storage,
	"4": snapshot.Memory,
	"5": snapshot.OSIdentity,
	"6": snapshot.Network,
	"7": snapshot.Sensors,
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	if m.showHelp {
		if key == KeyClose {
			m.showHelp = false
		}
		if key == KeyQuit || key == KeyQuitAlt {
			m.quitting = true
			return true, tea.Quit
		}
		return true, nil
	}

	if c, ok := categoryKeys[key]; ok {
		m.request(c)
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		m.dispatch(Refresh{Pane: m.focus})
		return true, nil

	case KeyFocusNext:
		m.moveFocus(1)
		return true, nil

	case KeyFocusPrev:
		m.moveFocus(-1)
		return true, nil

	case KeySelect:
		if !m.focusedBound() {
			m.request(snapshot.Categories[m.cursor])
		}
		return true, nil

	case KeyGrow:
		m.resizeFocused(m.resizeStep)
		return true, nil

	case KeyShrink:
		m.resizeFocused(-m.resizeStep)
		return true, nil

	case KeyClose:
		m.status = ""
		return true, nil
	}

	if !m.focusedBound() {
		switch key {
		case KeyMenuUp, KeyMenuUpK:
			if m.cursor > 0 {
				m.cursor--
			}
			return true, nil
		case KeyMenuDown, KeyMenuDownJ:
			if m.cursor < len(snapshot.Categories)-1 {
				m.cursor++
			}
			return true, nil
		}
		return false, nil
	}

	// Remaining keys scroll the focused pane.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return true, cmd
}
