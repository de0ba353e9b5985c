// Package cmd holds the marketprompt command tree.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/clipboard"
	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/SimoKiihamaki/marketprompt/internal/logging"
	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/SimoKiihamaki/marketprompt/internal/tui"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOptions carries flag values and the state prepared in PersistentPreRunE.
type rootOptions struct {
	logLevel   string
	configDir  string
	valuesFile string
	empty      bool
	sets       []string

	cfg    config.Config
	logger *log.Logger
	stderr io.Writer

	// fileCfg is the config as read from disk, before flag overrides.
	fileCfg      config.Config
	fileFallback bool
}

// NewRootCmd builds the command tree writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{stderr: stderr}

	root := &cobra.Command{
		Use:   "marketprompt",
		Short: "Compose structured B2B market-analysis prompts",
		Long: `marketprompt collects the parameters of a B2B market analysis and composes
them into a single structured prompt, ready to paste into an assistant.

Usage:
  marketprompt                         # interactive form with live preview
  marketprompt compose --set tone=...  # print the prompt
  marketprompt fields                  # list the form fields
  marketprompt serve                   # stateless HTTP API`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: o.prepare,
		RunE:              o.runTUI,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&o.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR); overrides the config file")
	root.PersistentFlags().StringVar(&o.configDir, "config-dir", "", "directory holding config.yaml and logs (default ~/.config/marketprompt)")
	addValuesFlags(root, o)

	root.AddCommand(
		newComposeCmd(o),
		newFieldsCmd(o),
		newServeCmd(o),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func addValuesFlags(cmd *cobra.Command, o *rootOptions) {
	cmd.Flags().StringVarP(&o.valuesFile, "values", "f", "", "brief file with field values (.yaml, .yml, .toml or .json)")
	cmd.Flags().BoolVar(&o.empty, "empty", false, "start from empty fields instead of the defaults")
	cmd.Flags().StringArrayVar(&o.sets, "set", nil, "set a field, as key=value (repeatable)")
}

func (o *rootOptions) prepare(_ *cobra.Command, _ []string) error {
	if o.configDir != "" {
		config.SetDir(o.configDir)
	}

	loaded := config.LoadWithWarnings()
	o.fileCfg = loaded.Config.Clone()
	o.fileFallback = loaded.Fallback
	o.cfg = loaded.Config
	if o.logLevel != "" {
		o.cfg.LogLevel = strings.ToUpper(strings.TrimSpace(o.logLevel))
	}
	o.logger = logging.New(o.stderr, o.cfg.LogLevel)

	for _, w := range loaded.Warnings {
		o.logger.Warn(w)
	}

	result := o.cfg.ValidateInterField()
	for _, issue := range result.Warnings() {
		o.logger.Warn(issue.Message, "field", issue.Field)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Errors()))
		for _, issue := range result.Errors() {
			msgs = append(msgs, issue.Field+": "+issue.Message)
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// resolveValues layers the starting values, the brief file and --set pairs.
func (o *rootOptions) resolveValues() (prompt.Values, error) {
	base := prompt.DefaultValues()
	if o.empty {
		base = prompt.EmptyValues()
	}

	values := base
	if o.valuesFile != "" {
		loaded, err := prompt.LoadValuesFile(o.valuesFile, base)
		if err != nil {
			return base, err
		}
		values = loaded
	}

	overrides, err := parseSets(o.sets)
	if err != nil {
		return base, err
	}
	return prompt.ApplyMap(values, overrides)
}

func parseSets(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: want key=value", pair)
		}
		out[key] = value
	}
	return out, nil
}

func (o *rootOptions) runTUI(cmd *cobra.Command, _ []string) error {
	values, err := o.resolveValues()
	if err != nil {
		return err
	}

	tuiLogger := logging.Discard()
	var session *logging.SessionFile
	if dir, err := config.EnsureDir(); err != nil {
		o.logger.Warn("session log unavailable", "err", err)
	} else if session, err = logging.OpenSession(dir, o.cfg.LogLevel, time.Now()); err != nil {
		o.logger.Warn("session log unavailable", "err", err)
	} else {
		tuiLogger = session.Logger
	}

	// The TUI renders on stdout, so OSC 52 goes to stderr which is the same terminal.
	copier := clipboard.FromConfig(o.cfg, os.Stderr, tuiLogger)
	return tui.Run(cmd.Context(), tui.Options{
		Config:     o.cfg,
		Initial:    &values,
		Copier:     &copier,
		Logger:     tuiLogger,
		LogFile:    session,
		SaveConfig: o.preferenceSaver(),
	})
}

// preferenceSaver writes TUI preferences on top of the file config, so flag
// overrides such as --log-level never reach disk. A config file that failed
// to load is left alone.
func (o *rootOptions) preferenceSaver() func(config.Config) error {
	if o.fileFallback {
		o.logger.Warn("config.yaml could not be loaded; preview preference will not be saved")
		return nil
	}
	return func(c config.Config) error {
		out := o.fileCfg.Clone()
		out.Preview.Markdown = c.Clone().Preview.Markdown
		return config.Save(out)
	}
}

// copyText runs the configured copy chain outside the TUI.
func (o *rootOptions) copyText(ctx context.Context, text string) (clipboard.Result, error) {
	copier := clipboard.FromConfig(o.cfg, o.stderr, o.logger)
	ctx, cancel := context.WithTimeout(ctx, o.cfg.ClipboardTimeout()+time.Second)
	defer cancel()

	res := copier.Copy(ctx, text)
	if res.Manual {
		return res, errors.New("no clipboard available; copy the prompt from stdout")
	}
	return res, nil
}
