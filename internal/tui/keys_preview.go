package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const previewPageLines = 10

// handlePreviewTabActions handles key actions for the preview tab.
func (m *model) handlePreviewTabActions(actions []Action, msg tea.KeyMsg) (bool, tea.Cmd) {
	if len(actions) == 0 {
		return false, nil
	}

	var cmds []tea.Cmd
	handled := false

	for _, act := range actions {
		switch act {
		case ActNavigateUp, ActNavigateDown:
			var cmd tea.Cmd
			m.previewVP, cmd = m.previewVP.Update(msg)
			cmds = append(cmds, cmd)
			handled = true
		case ActPageUp:
			m.previewVP.LineUp(previewPageLines)
			handled = true
		case ActPageDown:
			m.previewVP.LineDown(previewPageLines)
			handled = true
		case ActScrollTop:
			m.previewVP.GotoTop()
			handled = true
		case ActScrollBottom:
			m.previewVP.GotoBottom()
			handled = true
		case ActToggleMarkdown:
			cmds = append(cmds, m.toggleMarkdown())
			handled = true
		case ActCopyPrompt:
			cmds = append(cmds, m.beginCopy())
			handled = true
		}
	}

	if handled {
		return true, batchCmd(cmds)
	}
	return false, nil
}
