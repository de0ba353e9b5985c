package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// handleFormTabActions handles key actions for the field form. While a field
// is being edited every key that is not a navigation action or a
// non-typing global goes to its text area.
func (m *model) handleFormTabActions(actions []Action, msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.editing {
		for _, act := range actions {
			switch act {
			case ActCancel:
				m.stopEditing()
				return true, nil
			case ActTabForward:
				return true, m.moveFocus(1)
			case ActTabBackward:
				return true, m.moveFocus(-1)
			case ActClearField:
				m.clearFocusedField()
				return true, nil
			}
		}

		// Copy and interrupt stay reachable while typing.
		if m.keys.GlobalPassthrough(msg) {
			return false, nil
		}
		return true, m.updateFocusedInput(msg)
	}

	if len(actions) == 0 {
		return false, nil
	}

	var cmds []tea.Cmd
	handled := false

	for _, act := range actions {
		switch act {
		case ActConfirm:
			cmds = append(cmds, m.startEditing())
			handled = true
		case ActTabForward, ActNavigateDown:
			cmds = append(cmds, m.moveFocus(1))
			handled = true
		case ActTabBackward, ActNavigateUp:
			cmds = append(cmds, m.moveFocus(-1))
			handled = true
		case ActClearField:
			m.clearFocusedField()
			handled = true
		case ActCancel:
			if m.showHelp {
				m.showHelp = false
				handled = true
			}
		}
	}

	if handled {
		return true, batchCmd(cmds)
	}
	return false, nil
}
