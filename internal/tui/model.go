// Package tui implements the interactive prompt designer: a form with one
// text area per field, a live preview of the composed prompt and a copy
// action with clipboard fallbacks.
package tui

import (
	"context"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/clipboard"
	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/SimoKiihamaki/marketprompt/internal/logging"
	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

// Options configures a TUI session.
type Options struct {
	Config  config.Config
	Initial *prompt.Values // nil starts from the registry defaults
	Copier  *clipboard.Copier
	Logger  *log.Logger
	LogFile *logging.SessionFile

	// SaveConfig persists UI preferences such as the preview mode. Nil
	// keeps them for this session only.
	SaveConfig func(config.Config) error
}

type toast struct {
	id      int
	message string
}

type model struct {
	cfg        config.Config
	savedCfg   config.Config
	saveConfig func(config.Config) error
	keys   KeyMap
	tabs   []string
	logger *log.Logger
	log    *logging.SessionFile

	tabIndex int
	width    int
	height   int

	session *prompt.Session
	preview *previewState
	unsub   func()

	// Form
	inputs     []textarea.Model
	focus      int
	formOffset int
	editing    bool
	typing     bool

	// Preview
	previewVP viewport.Model
	markdown  bool

	// Copy
	copier   clipboard.Copier
	copying  bool
	copied   bool
	manual   bool

	showHelp bool
	status   string
	toast    *toast
	toastSeq int
}

// previewState is shared between model copies so the session subscription
// can flag a stale preview without holding a pointer to a single model value.
type previewState struct {
	text  string
	dirty bool

	renderer     *glamour.TermRenderer
	rendererWrap int
}

func New(opts Options) model {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	initial := prompt.DefaultValues()
	if opts.Initial != nil {
		initial = *opts.Initial
	}

	m := model{
		cfg:        cfg,
		savedCfg:   cfg.Clone(),
		saveConfig: opts.SaveConfig,
		keys:      DefaultKeyMap(),
		tabs:      defaultTabIDs(),
		logger:    logger,
		log:       opts.LogFile,
		session:   prompt.NewSession(initial),
		preview:   &previewState{dirty: true},
		previewVP: viewport.New(80, 20),
		markdown:  cfg.MarkdownPreview(),
	}
	if opts.Copier != nil {
		m.copier = *opts.Copier
	} else {
		m.copier = clipboard.Copier{Primary: clipboard.System{}, Logger: logger}
	}

	state := m.preview
	m.unsub = m.session.Subscribe(func(text string) {
		state.text = text
		state.dirty = true
	})

	m.inputs = newFieldInputs(m.session.Values(), 80)
	m.focusField(0, false)
	m.syncPreview()
	return m
}

func (m model) Init() tea.Cmd {
	m.logger.Info("session started", "fields", prompt.KeyCount, "markdown", m.markdown)
	return textarea.Blink
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	reason := "quit"
	if err != nil {
		reason = "error"
	}
	if fm, ok := final.(model); ok && fm.unsub != nil {
		fm.unsub()
	}
	if opts.LogFile != nil {
		_ = opts.LogFile.Close(reason)
	}
	return err
}

func (m model) toastTTL() time.Duration {
	return m.cfg.ToastTTL()
}

// IsTyping reports whether a field is being edited.
func (m model) IsTyping() bool {
	return m.typing
}

func (m *model) refreshTypingState() {
	m.typing = m.editing && m.currentTabID() == tabIDForm
}
