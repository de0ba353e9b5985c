package tui

import (
	"fmt"
	"strings"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
)

// fieldBlockHeight is the number of rows field idx occupies in the form.
func (m model) fieldBlockHeight(idx int) int {
	h := 1 + m.inputs[idx].Height() + 1
	if prompt.Lookup(prompt.Keys()[idx]).HasHelperText() {
		h++
	}
	return h
}

// formBudget is the number of rows available to fields, or 0 when the
// terminal size is not known yet.
func (m model) formBudget() int {
	if m.height <= 0 {
		return 0
	}
	budget := m.height - chromeHeight - 1
	if budget < 1 {
		budget = 1
	}
	return budget
}

func (m model) blockHeights(from, to int) int {
	total := 0
	for i := from; i < to; i++ {
		total += m.fieldBlockHeight(i)
	}
	return total
}

// ensureFocusVisible scrolls the form so the focused field is on screen.
func (m *model) ensureFocusVisible() {
	if m.focus < m.formOffset {
		m.formOffset = m.focus
	}
	budget := m.formBudget()
	if budget == 0 {
		return
	}
	for m.formOffset < m.focus && m.blockHeights(m.formOffset, m.focus+1) > budget {
		m.formOffset++
	}
}

func renderFormView(b *strings.Builder, m model) {
	budget := m.formBudget()
	fields := prompt.Fields()
	used := 0

	for i := m.formOffset; i < len(fields); i++ {
		h := m.fieldBlockHeight(i)
		if budget > 0 && i > m.formOffset && used+h > budget {
			break
		}
		used += h
		renderField(b, m, i, fields[i])
	}

	hint := fmt.Sprintf("Campo %d/%d", m.focus+1, len(fields))
	if m.editing {
		hint += " · in modifica (Esc per terminare, Tab per il campo successivo)"
	} else {
		hint += " · Enter per modificare, ↑/↓ per spostarsi"
	}
	b.WriteString(helpStyle.Render(hint) + "\n")
}

func renderField(b *strings.Builder, m model, idx int, f prompt.Field) {
	label := f.Label
	if idx == m.focus {
		b.WriteString(fieldLabelFocused.Render("▸ "+label) + "\n")
	} else {
		b.WriteString(fieldLabelStyle.Render("  "+label) + "\n")
	}
	if f.HasHelperText() {
		b.WriteString(fieldHelperStyle.Render("  "+f.HelperText) + "\n")
	}
	b.WriteString(m.inputs[idx].View() + "\n\n")
}
