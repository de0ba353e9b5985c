package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// syncPreview recomposes the prompt if the session changed and redraws the
// preview viewport.
func (m *model) syncPreview() {
	if m.preview.dirty {
		m.preview.text = m.session.Prompt()
		m.preview.dirty = false
	}
	m.previewVP.SetContent(m.renderPreview(m.preview.text))
}

func (m *model) renderPreview(text string) string {
	width := m.previewVP.Width
	if width <= 0 {
		width = 80
	}
	if !m.markdown {
		return wrapPlain(text, width)
	}
	out, err := m.renderMarkdown(text, width)
	if err != nil {
		m.logger.Warn("markdown preview failed, showing plain text", "err", err)
		m.status = "Anteprima markdown non disponibile: " + err.Error()
		return wrapPlain(text, width)
	}
	return strings.TrimRight(out, "\n")
}

func (m *model) renderMarkdown(text string, width int) (string, error) {
	wrap := m.cfg.PreviewWordWrap()
	if wrap <= 0 || wrap > width {
		wrap = width
	}
	if m.preview.renderer == nil || m.preview.rendererWrap != wrap {
		style := m.cfg.Preview.Style
		if style == "" {
			style = "dark"
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(wrap),
		)
		if err != nil {
			return "", err
		}
		m.preview.renderer = r
		m.preview.rendererWrap = wrap
	}
	return m.preview.renderer.Render(text)
}

func (m *model) toggleMarkdown() tea.Cmd {
	m.markdown = !m.markdown
	m.syncPreview()
	if m.markdown {
		m.status = "Anteprima markdown attiva"
	} else {
		m.status = "Anteprima testo semplice"
	}
	return m.persistPreview()
}

// wrapPlain soft-wraps text at width without padding lines.
func wrapPlain(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}
