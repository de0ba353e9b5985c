package tui

import (
	"testing"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNavigationWrapping(t *testing.T) {
	last := prompt.KeyCount - 1

	tcs := []struct {
		name      string
		start     int
		keys      []tea.KeyMsg
		wantFocus int
	}{
		{name: "down advances", start: 0, keys: []tea.KeyMsg{downKey()}, wantFocus: 1},
		{name: "down wraps to first", start: last, keys: []tea.KeyMsg{downKey()}, wantFocus: 0},
		{name: "up wraps to last", start: 0, keys: []tea.KeyMsg{upKey()}, wantFocus: last},
		{name: "tab advances", start: 2, keys: []tea.KeyMsg{{Type: tea.KeyTab}}, wantFocus: 3},
		{name: "shift tab goes back", start: 2, keys: []tea.KeyMsg{{Type: tea.KeyShiftTab}}, wantFocus: 1},
		{name: "shift tab wraps", start: 0, keys: []tea.KeyMsg{{Type: tea.KeyShiftTab}}, wantFocus: last},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, nil)
			m.focusField(tc.start, false)
			m, _ = press(t, m, tc.keys...)
			if m.focus != tc.wantFocus {
				t.Fatalf("focus = %d, want %d", m.focus, tc.wantFocus)
			}
		})
	}
}

func TestTabKeepsEditingOnNextField(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(t, m, enterKey(), tea.KeyMsg{Type: tea.KeyTab})

	if m.focus != 1 {
		t.Fatalf("focus = %d, want 1", m.focus)
	}
	if !m.editing || !m.inputs[1].Focused() {
		t.Fatalf("expected the next field to be in edit mode")
	}
	if m.inputs[0].Focused() {
		t.Fatalf("previous field should be blurred")
	}
}

func TestArrowKeysMoveCursorInsideEditedField(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = press(t, m, enterKey(), downKey())
	if m.focus != 0 {
		t.Fatalf("down while editing should stay in the field, focus = %d", m.focus)
	}
}

func TestEnsureFocusVisibleScrollsForm(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	last := prompt.KeyCount - 1
	m, _ = press(t, m, upKey())
	if m.focus != last {
		t.Fatalf("precondition: focus = %d", m.focus)
	}
	if m.formOffset == 0 {
		t.Fatalf("expected the form to scroll to show field %d", last)
	}
	if used := m.blockHeights(m.formOffset, m.focus+1); used > m.formBudget() {
		t.Fatalf("focused field outside the visible window: %d rows > %d", used, m.formBudget())
	}

	m, _ = press(t, m, downKey())
	if m.focus != 0 || m.formOffset != 0 {
		t.Fatalf("wrapping to the first field should scroll back, offset=%d", m.formOffset)
	}
}
