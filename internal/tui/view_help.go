package tui

import (
	"fmt"
	"strings"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/charmbracelet/lipgloss"
)

const helpFooterNote = "Il testo copiato è sempre il prompt in formato semplice, anche con l'anteprima markdown attiva."

// renderHelpView renders the Help tab: key bindings per scope, then the
// field list with the names accepted by --set, brief files and the API.
func renderHelpView(b *strings.Builder, m model) {
	b.WriteString(sectionTitle.Render("Aiuto") + "\n")

	writeBindings(b, "Globali", m.keys.GlobalHelpEntries())
	for _, tabID := range tabIDOrder {
		if !m.hasTabID(tabID) {
			continue
		}
		writeBindings(b, tabTitle(tabID), m.keys.HelpEntriesForTab(tabID))
	}

	writeFieldIndex(b, m)

	b.WriteString("\n" + helpFooterNote + "\n")
	if m.log != nil && m.log.Path != "" {
		b.WriteString(helpStyle.Render("Log di sessione: "+abbreviatePath(m.log.Path)) + "\n")
	}
}

func writeBindings(b *strings.Builder, title string, entries []HelpEntry) {
	if len(entries) == 0 {
		return
	}
	b.WriteString("\n" + helpBoxTitle.Render(title) + "\n")

	keys := make([]string, len(entries))
	width := 0
	for i, entry := range entries {
		keys[i] = comboList(entry.Combos, ", ")
		width = max(width, lipgloss.Width(keys[i]))
	}
	keyCol := helpKeyStyle.Width(width + 2)
	for i, entry := range entries {
		b.WriteString("  " + keyCol.Render(keys[i]) + helpLabelStyle.Render(entry.Label) + "\n")
	}
}

// writeFieldIndex lists every field with its position and wire name. The
// focused field is marked; empty fields are flagged since they compose to
// the "not provided" placeholder.
func writeFieldIndex(b *strings.Builder, m model) {
	b.WriteString("\n" + helpBoxTitle.Render("Campi") + "\n")

	var values prompt.Values
	if m.session != nil {
		values = m.session.Values()
	}
	for i, f := range prompt.Fields() {
		marker := "  "
		if m.session != nil && i == m.focus {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%2d. %s %s", marker, i+1, f.Label, helpStyle.Render("("+f.Name+")"))
		if m.session != nil && strings.TrimSpace(values.Get(f.Key)) == "" {
			line += " " + statusWarnStyle.Render("vuoto")
		}
		b.WriteString(line + "\n")
	}
}

// renderHelpOverlay appends the help panel for the current tab when active.
func renderHelpOverlay(b *strings.Builder, m model) {
	if !m.showHelp {
		return
	}
	panel := buildHelpOverlayContent(m)
	if panel == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(panel)
}

func buildHelpOverlayContent(m model) string {
	var sections []string
	for _, s := range []struct {
		title   string
		entries []HelpEntry
	}{
		{"Globali", m.keys.GlobalHelpEntries()},
		{tabTitle(m.currentTabID()), m.keys.HelpEntriesForTab(m.currentTabID())},
	} {
		if len(s.entries) == 0 {
			continue
		}
		lines := []string{helpBoxTitle.Render(s.title)}
		for _, entry := range s.entries {
			lines = append(lines, helpKeyStyle.Render(comboList(entry.Combos, " / "))+" "+helpLabelStyle.Render(entry.Label))
		}
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	if len(sections) == 0 {
		return ""
	}
	return helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func comboList(combos []KeyCombo, sep string) string {
	labels := make([]string, 0, len(combos))
	for _, combo := range combos {
		labels = append(labels, combo.Display())
	}
	return strings.Join(labels, sep)
}
