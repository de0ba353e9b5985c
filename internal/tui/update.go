package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// splitWidth is the terminal width from which form and preview share the screen.
const splitWidth = 120

// formSplitRatio is the share of a split screen given to the form.
const formSplitRatio = 0.55

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(typed), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(typed)

	case tea.MouseMsg:
		return m, nil

	case copyResultMsg:
		cmd := m.handleCopyResult(typed)
		if m.manual {
			cmd = batchCmd([]tea.Cmd{cmd, m.openManualView()})
		}
		return m, cmd

	case toastExpiredMsg:
		m.handleToastExpired(typed)
		return m, nil

	case configSavedMsg:
		return m, m.handleConfigSaved(typed)
	}

	// Cursor blink and other internal messages belong to the field being edited.
	if m.editing {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) wide() bool {
	return m.width >= splitWidth
}

func (m model) handleResize(msg tea.WindowSizeMsg) model {
	m.width, m.height = msg.Width, msg.Height

	bodyHeight := m.height - chromeHeight
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	if m.wide() {
		left, right := splitWidths(m.width, formSplitRatio)
		m.resizeInputs(left - 4)
		m.previewVP.Width, m.previewVP.Height = right-2, bodyHeight
	} else {
		m.resizeInputs(m.width - 4)
		m.previewVP.Width, m.previewVP.Height = m.width-2, bodyHeight
	}
	m.ensureFocusVisible()
	m.syncPreview()
	return m
}

func (m model) handleKeyMsg(msg tea.KeyMsg) (model, tea.Cmd) {
	mPtr := &m

	if mPtr.manual {
		return *mPtr, mPtr.handleManualKeys(msg)
	}

	tabID := mPtr.currentTabID()
	perTabActions := mPtr.keys.TabActions(tabID, msg)

	if handled, cmd := mPtr.handleTabActions(tabID, perTabActions, msg); handled {
		mPtr.refreshTypingState()
		mPtr.ensureFocusVisible()
		return *mPtr, cmd
	}

	mPtr.refreshTypingState()

	globalActions := mPtr.keys.GlobalActions(msg)
	for _, act := range globalActions {
		if mPtr.IsTyping() && mPtr.keys.IsTypingSensitive(act) {
			continue
		}
		if handled, cmd := mPtr.handleGlobalAction(act); handled {
			mPtr.refreshTypingState()
			return *mPtr, cmd
		}
	}

	return *mPtr, nil
}

func (m *model) handleTabActions(tabID string, actions []Action, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch tabID {
	case tabIDForm:
		return m.handleFormTabActions(actions, msg)
	case tabIDPreview:
		return m.handlePreviewTabActions(actions, msg)
	default:
		return false, nil
	}
}

func (m *model) handleGlobalAction(act Action) (bool, tea.Cmd) {
	switch act {
	case ActInterrupt, ActQuit:
		m.logger.Info("quit requested", "action", string(act))
		return true, tea.Quit
	case ActHelp:
		m.showHelp = !m.showHelp
		if m.showHelp {
			m.blurAllInputs()
		}
		return true, nil
	case ActCopyPrompt:
		return true, m.beginCopy()
	case ActResetDefaults:
		return true, m.resetToDefaults()
	case ActGotoTab1, ActGotoTab2, ActGotoTab3:
		if idx, ok := tabIndexFromAction(act); ok && m.setActiveTabIndex(idx) {
			m.blurAllInputs()
			return true, nil
		}
	}
	return false, nil
}

// openManualView leaves the alternate screen and prints the prompt into the
// terminal's normal buffer. The terminal soft-wraps it, so a selection
// yields the prompt byte for byte and it stays in scrollback after exit.
func (m *model) openManualView() tea.Cmd {
	return tea.Sequence(tea.ExitAltScreen, tea.Println(m.manualText()))
}

func (m model) manualText() string {
	return m.session.Prompt()
}

func (m *model) handleManualKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.manual = false
		m.status = ""
		return tea.EnterAltScreen
	case tea.KeyCtrlC:
		return tea.Quit
	}
	return nil
}

func batchCmd(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}
