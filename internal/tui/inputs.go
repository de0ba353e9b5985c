package tui

import (
	"unicode/utf8"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/SimoKiihamaki/marketprompt/internal/utils"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Row thresholds, in characters, for sizing a field's text area.
const (
	tallFieldChars   = 120
	mediumFieldChars = 60
)

// rowsFor returns the visible height of a field holding value.
func rowsFor(value string) int {
	n := utf8.RuneCountInString(value)
	switch {
	case n > tallFieldChars:
		return 4
	case n > mediumFieldChars:
		return 3
	default:
		return 2
	}
}

func newFieldInputs(values prompt.Values, width int) []textarea.Model {
	fields := prompt.Fields()
	inputs := make([]textarea.Model, len(fields))
	for i, f := range fields {
		inputs[i] = newFieldInput(f, values.Get(f.Key), width)
	}
	return inputs
}

func newFieldInput(f prompt.Field, value string, width int) textarea.Model {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Placeholder = f.HelperText
	ta.Prompt = "┃ "
	ta.FocusedStyle.CursorLine = fieldCursorLine
	ta.SetWidth(width)
	ta.SetValue(value)
	ta.SetHeight(rowsFor(value))
	ta.Blur()
	return ta
}

func (m *model) blurAllInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.editing = false
}

// focusField moves the form cursor to idx. With edit set the text area takes
// keyboard focus as well.
func (m *model) focusField(idx int, edit bool) tea.Cmd {
	if idx < 0 || idx >= len(m.inputs) {
		return nil
	}
	m.blurAllInputs()
	m.focus = idx
	if !edit {
		return nil
	}
	m.editing = true
	return m.inputs[idx].Focus()
}

func (m *model) moveFocus(delta int) tea.Cmd {
	next, ok := utils.WrapIndex(m.focus, delta, len(m.inputs))
	if !ok {
		return nil
	}
	return m.focusField(next, m.editing)
}

func (m *model) startEditing() tea.Cmd {
	return m.focusField(m.focus, true)
}

func (m *model) stopEditing() {
	m.blurAllInputs()
}

// updateFocusedInput forwards msg to the text area being edited and pushes
// any change into the session.
func (m *model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if !m.editing || m.focus < 0 || m.focus >= len(m.inputs) {
		return nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.commitField(m.focus)
	return cmd
}

// commitField copies the text area at idx into the session.
func (m *model) commitField(idx int) {
	input := &m.inputs[idx]
	value := input.Value()
	if rows := rowsFor(value); rows != input.Height() {
		input.SetHeight(rows)
	}
	if m.session.Set(prompt.Keys()[idx], value) {
		m.copied = false
		m.syncPreview()
	}
}

func (m *model) clearFocusedField() {
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return
	}
	m.inputs[m.focus].Reset()
	m.commitField(m.focus)
}

// resetToDefaults restores every field to its registry default.
func (m *model) resetToDefaults() tea.Cmd {
	m.session.Reset(prompt.DefaultValues())
	m.loadSessionIntoInputs()
	m.copied = false
	m.syncPreview()
	m.logger.Info("fields reset to defaults")
	return m.flash("Valori predefiniti ripristinati", m.toastTTL())
}

func (m *model) loadSessionIntoInputs() {
	values := m.session.Values()
	for i, k := range prompt.Keys() {
		m.inputs[i].SetValue(values.Get(k))
		m.inputs[i].SetHeight(rowsFor(values.Get(k)))
	}
}

func (m *model) resizeInputs(width int) {
	if width < 20 {
		width = 20
	}
	for i := range m.inputs {
		m.inputs[i].SetWidth(width)
	}
}
