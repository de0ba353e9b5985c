package tui

import (
	"context"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/clipboard"
	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/SimoKiihamaki/marketprompt/internal/utils"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedLabel is the acknowledgment shown after a copy.
const copiedLabel = "Copiato!"

const copyButtonLabel = "Copia prompt"

type copyResultMsg struct {
	result clipboard.Result
}

type toastExpiredMsg struct {
	id int
}

type configSavedMsg struct {
	cfg config.Config
	err error
}

// copyCmd copies text off the update loop. The timeout covers slow external
// clipboard commands.
func (m model) copyCmd(text string) tea.Cmd {
	copier := m.copier
	timeout := m.cfg.ClipboardTimeout() + time.Second
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return copyResultMsg{result: copier.Copy(ctx, text)}
	}
}

// flash shows message in the status bar until ttl elapses.
func (m *model) flash(message string, ttl time.Duration) tea.Cmd {
	if message == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = m.toastTTL()
	}
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, message: message}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *model) beginCopy() tea.Cmd {
	if m.copying {
		return nil
	}
	m.copying = true
	return m.copyCmd(m.session.Prompt())
}

func (m *model) handleCopyResult(msg copyResultMsg) tea.Cmd {
	m.copying = false
	res := msg.result
	m.logger.Info("prompt copied", "method", res.Method, "manual", res.Manual, "failures", len(res.Failures))

	m.copied = true
	if res.Manual {
		m.manual = true
		m.blurAllInputs()
		m.refreshTypingState()
		m.status = "Appunti non disponibili: copia manuale"
	} else if res.Fallback() {
		m.status = "Copiato tramite " + res.Method
	} else {
		m.status = ""
	}
	return m.flash(copiedLabel, m.toastTTL())
}

func (m *model) handleToastExpired(msg toastExpiredMsg) {
	if m.toast == nil || m.toast.id != msg.id {
		return
	}
	m.toast = nil
	m.copied = false
}

// persistPreview records the preview mode in the config and saves it when it
// differs from what is on disk.
func (m *model) persistPreview() tea.Cmd {
	m.cfg.Preview.Markdown = utils.BoolPtr(m.markdown)
	if m.saveConfig == nil || m.cfg.Equal(m.savedCfg) {
		return nil
	}
	next := m.cfg.Clone()
	save := m.saveConfig
	return func() tea.Msg {
		return configSavedMsg{cfg: next, err: save(next)}
	}
}

// handleConfigSaved saves again when the preview was toggled while a save
// was in flight.
func (m *model) handleConfigSaved(msg configSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("preview preference not saved", "err", msg.err)
		m.status = "Errore nel salvataggio delle preferenze: " + msg.err.Error()
		return nil
	}
	m.savedCfg = msg.cfg
	m.logger.Debug("preview preference saved", "markdown", msg.cfg.MarkdownPreview())
	return m.persistPreview()
}
