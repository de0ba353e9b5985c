package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func copyButton(m model) string {
	if m.copied {
		return copiedButtonStyle.Render(copiedLabel)
	}
	return copyButtonStyle.Render(copyButtonLabel)
}

// renderPreviewView renders the composed prompt and the copy control.
func renderPreviewView(b *strings.Builder, m model) {
	mode := "testo"
	if m.markdown {
		mode = "markdown"
	}
	b.WriteString(sectionTitle.Render(fmt.Sprintf("Anteprima (%s)", mode)) + "\n")
	b.WriteString(m.previewVP.View() + "\n")

	copyKeys := actionKeyLabel(m.keys, tabIDPreview, ActCopyPrompt)
	if global := actionKeyLabel(m.keys, "", ActCopyPrompt); global != "" && global != copyKeys {
		copyKeys += "/" + global
	}
	hints := []string{
		fmt.Sprintf("%3.f%%", m.previewVP.ScrollPercent()*100),
		copyKeys + " copia",
		actionKeyLabel(m.keys, tabIDPreview, ActToggleMarkdown) + " markdown",
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		copyButton(m),
		" ",
		helpStyle.Render(strings.Join(hints, " · ")),
	) + "\n")
}
