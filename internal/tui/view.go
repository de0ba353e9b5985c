package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "marketprompt · Prompt per analisi di mercato B2B"

// chromeHeight is the number of rows taken by the title, tab bar, hint line
// and status bar around a tab body.
const chromeHeight = 8

func tabShortcutLabel(keys KeyMap, idx int) string {
	if act, ok := gotoTabAction(idx); ok {
		if combos := keys.Global[act]; len(combos) > 0 {
			labels := make([]string, 0, len(combos))
			for _, combo := range combos {
				labels = append(labels, combo.Display())
			}
			return strings.Join(labels, "/")
		}
	}
	return fmt.Sprintf("%d", idx+1)
}

func actionKeyLabel(keys KeyMap, tabID string, act Action) string {
	var combos []KeyCombo
	if keys.PerTab != nil {
		if perTab := keys.PerTab[tabID]; perTab != nil {
			combos = perTab[act]
		}
	}
	if len(combos) == 0 {
		combos = keys.Global[act]
	}
	if len(combos) == 0 {
		return ""
	}
	labels := make([]string, 0, len(combos))
	for _, combo := range combos {
		labels = append(labels, combo.Display())
	}
	return strings.Join(labels, "/")
}

func (m model) View() string {
	if m.manual {
		return renderManualView(m)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle) + "\n")
	for i, tabID := range m.tabs {
		shortcuts := tabShortcutLabel(m.keys, i)
		label := fmt.Sprintf("[%s] %s  ", shortcuts, tabTitle(tabID))
		if i == m.tabIndex {
			b.WriteString(tabActive.Render(label))
			continue
		}
		b.WriteString(tabInactive.Render(label))
	}
	b.WriteString("\n\n")

	switch m.currentTabID() {
	case tabIDForm:
		if m.wide() {
			renderSplitView(&b, m)
		} else {
			renderFormView(&b, m)
		}
	case tabIDPreview:
		renderPreviewView(&b, m)
	case tabIDHelp:
		renderHelpView(&b, m)
	}

	renderHelpOverlay(&b, m)
	renderStatusBar(&b, m)

	return b.String()
}

func renderSplitView(b *strings.Builder, m model) {
	var left, right strings.Builder
	renderFormView(&left, m)
	renderPreviewView(&right, m)
	b.WriteString(NewSplitPane(left.String(), right.String(), formSplitRatio).Render(m.width))
	b.WriteString("\n")
}

// renderManualView stays out of the way of the prompt printed above it.
func renderManualView(m model) string {
	var b strings.Builder
	b.WriteString(statusWarnStyle.Render("Appunti non disponibili: il prompt è stampato qui sopra, selezionalo e copialo manualmente.") + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d righe · Esc torna al modulo · Ctrl+C esce", strings.Count(m.manualText(), "\n")+1)) + "\n")
	return b.String()
}

func renderStatusBar(b *strings.Builder, m model) {
	message, style := statusBarMessage(m)
	if message == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(style.Render(message))
	b.WriteString("\n")
}

func statusBarMessage(m model) (string, lipgloss.Style) {
	if m.toast != nil {
		return m.toast.message, classifyStatusStyle(m.toast.message)
	}
	if note := strings.TrimSpace(m.status); note != "" {
		return note, classifyStatusStyle(note)
	}
	return "", lipgloss.NewStyle()
}

func classifyStatusStyle(text string) lipgloss.Style {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "errore"),
		strings.Contains(lower, "non disponibil"):
		return statusErrorStyle
	case strings.Contains(lower, "manualmente"):
		return statusWarnStyle
	case strings.Contains(lower, "copiato"),
		strings.Contains(lower, "ripristinat"):
		return statusSuccessStyle
	default:
		return statusInfoStyle
	}
}
