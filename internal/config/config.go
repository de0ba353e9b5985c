package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/utils"
	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the directory holding config.yaml and logs.
const EnvConfigDir = "MARKETPROMPT_CONFIG_DIR"

// Default configuration values
const (
	DefaultToastTTLMs         = 2000 // 2 seconds
	DefaultClipboardTimeoutMs = 3000
	DefaultWordWrap           = 100
	DefaultPreviewStyle       = "dark"
	DefaultAPIAddr            = ":8080"
	DefaultRatePerMinute      = 60
	DefaultBurst              = 10
	ConfigVersion             = "1.0.0" // Increment when schema changes require migration
)

// Clipboard configures the copy action. Command is an optional external
// helper (e.g. "wl-copy" or "xclip -selection clipboard") tried when the
// system clipboard is unavailable.
type Clipboard struct {
	Command   string `yaml:"command"`
	OSC52     *bool  `yaml:"osc52"`
	TimeoutMs *int   `yaml:"timeout_ms"`
}

// Preview configures how the composed prompt is displayed in the TUI.
type Preview struct {
	Markdown *bool  `yaml:"markdown"`
	Style    string `yaml:"style"`
	WordWrap *int   `yaml:"word_wrap"`
}

// UI configures TUI display settings.
type UI struct {
	ToastTTLMs *int `yaml:"toast_ttl_ms"` // Toast notification duration in milliseconds
}

// API configures the HTTP surface.
type API struct {
	Addr          string `yaml:"addr"`
	RatePerMinute *int   `yaml:"rate_per_minute"`
	Burst         *int   `yaml:"burst"`
}

type Config struct {
	Version   string    `yaml:"version,omitempty"` // Config schema version for migrations
	LogLevel  string    `yaml:"log_level"`
	Clipboard Clipboard `yaml:"clipboard"`
	Preview   Preview   `yaml:"preview"`
	UI        UI        `yaml:"ui"`
	API       API       `yaml:"api"`
}

// Defaults returns a sensible default config.
func Defaults() Config {
	return Config{
		Version:  ConfigVersion,
		LogLevel: "INFO",
		Clipboard: Clipboard{
			Command:   "",
			OSC52:     utils.BoolPtr(true),
			TimeoutMs: utils.IntPtr(DefaultClipboardTimeoutMs),
		},
		Preview: Preview{
			Markdown: utils.BoolPtr(false),
			Style:    DefaultPreviewStyle,
			WordWrap: utils.IntPtr(DefaultWordWrap),
		},
		UI: UI{
			ToastTTLMs: utils.IntPtr(DefaultToastTTLMs),
		},
		API: API{
			Addr:          DefaultAPIAddr,
			RatePerMinute: utils.IntPtr(DefaultRatePerMinute),
			Burst:         utils.IntPtr(DefaultBurst),
		},
	}
}

var dirOverride string

// SetDir pins the config directory for the rest of the process. An empty
// value restores the default lookup.
func SetDir(dir string) {
	dirOverride = strings.TrimSpace(dir)
}

// Dir returns the directory holding config.yaml.
func Dir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	if env := strings.TrimSpace(os.Getenv(EnvConfigDir)); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "marketprompt"), nil
}

func path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// migrateConfig applies any necessary migrations to bring the config up to the current version.
// Returns the migrated config and a list of warnings about migrations applied.
func migrateConfig(c Config) (Config, []string) {
	var warnings []string

	if c.Version == "" {
		c.Version = ConfigVersion
		warnings = append(warnings, "config upgraded to version "+ConfigVersion)
	} else if compareVersions(c.Version, ConfigVersion) < 0 {
		warnings = append(warnings, fmt.Sprintf("config upgraded from %s to %s", c.Version, ConfigVersion))
		c.Version = ConfigVersion
	}

	return c, warnings
}

// compareVersions compares two semantic version strings.
// Returns -1 if v1 < v2, 0 if v1 == v2, 1 if v1 > v2.
// Missing or malformed parts count as zero.
func compareVersions(v1, v2 string) int {
	parse := func(v string) [3]int {
		var out [3]int
		parts := strings.Split(v, ".")
		for i := 0; i < len(parts) && i < 3; i++ {
			_, _ = fmt.Sscanf(parts[i], "%d", &out[i])
		}
		return out
	}

	a, b := parse(v1), parse(v2)
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// LoadResult holds the result of loading configuration, including any warnings
// that occurred during loading (e.g., partial parse failures).
type LoadResult struct {
	Config   Config
	Warnings []string
	// Fallback is set when an existing file could not be used and Config
	// holds defaults. Saving would overwrite the user's file.
	Fallback bool
}

// Load reads the configuration from disk, falling back to defaults on error.
// Warnings are dropped; use LoadWithWarnings to surface them.
func Load() Config {
	return LoadWithWarnings().Config
}

// LoadWithWarnings reads the configuration from disk and returns any warnings
// encountered during loading. It never fails: unreadable or corrupt files
// yield defaults plus a warning.
func LoadWithWarnings() LoadResult {
	p, err := path()
	if err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not determine config path: " + err.Error()},
			Fallback: true,
		}
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return LoadResult{Config: Defaults()}
	}
	if err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{"could not read config file: " + err.Error()},
			Fallback: true,
		}
	}

	// Start with empty config instead of defaults to preserve explicit zero values
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return LoadResult{
			Config:   Defaults(),
			Warnings: []string{fmt.Sprintf("config file corrupt (using defaults): %v", err)},
			Fallback: true,
		}
	}

	c, warnings := migrateConfig(c)
	c.applyDefaults(Defaults())
	c.LogLevel = normalizeLogLevel(c.LogLevel)

	if *c.UI.ToastTTLMs <= 0 {
		warnings = append(warnings, fmt.Sprintf("toast_ttl_ms must be > 0, got %d; using default value %d", *c.UI.ToastTTLMs, DefaultToastTTLMs))
		c.UI.ToastTTLMs = utils.IntPtr(DefaultToastTTLMs)
	}
	if *c.Clipboard.TimeoutMs <= 0 {
		warnings = append(warnings, fmt.Sprintf("clipboard.timeout_ms must be > 0, got %d; using default value %d", *c.Clipboard.TimeoutMs, DefaultClipboardTimeoutMs))
		c.Clipboard.TimeoutMs = utils.IntPtr(DefaultClipboardTimeoutMs)
	}

	return LoadResult{Config: c, Warnings: warnings}
}

// applyDefaults fills fields that were not set in the file. Pointer fields
// are only defaulted when nil so explicit zeros survive.
func (c *Config) applyDefaults(d Config) {
	setIfBlank := func(field *string, value string) {
		if strings.TrimSpace(*field) == "" {
			*field = value
		}
	}
	setIfBlank(&c.LogLevel, d.LogLevel)
	setIfBlank(&c.Preview.Style, d.Preview.Style)
	setIfBlank(&c.API.Addr, d.API.Addr)

	if c.Clipboard.OSC52 == nil {
		c.Clipboard.OSC52 = utils.BoolPtr(*d.Clipboard.OSC52)
	}
	if c.Clipboard.TimeoutMs == nil {
		c.Clipboard.TimeoutMs = utils.IntPtr(*d.Clipboard.TimeoutMs)
	}
	if c.Preview.Markdown == nil {
		c.Preview.Markdown = utils.BoolPtr(*d.Preview.Markdown)
	}
	if c.Preview.WordWrap == nil {
		c.Preview.WordWrap = utils.IntPtr(*d.Preview.WordWrap)
	}
	if c.UI.ToastTTLMs == nil {
		c.UI.ToastTTLMs = utils.IntPtr(*d.UI.ToastTTLMs)
	}
	if c.API.RatePerMinute == nil {
		c.API.RatePerMinute = utils.IntPtr(*d.API.RatePerMinute)
	}
	if c.API.Burst == nil {
		c.API.Burst = utils.IntPtr(*d.API.Burst)
	}
}

func normalizeLogLevel(level string) string {
	upper := strings.ToUpper(strings.TrimSpace(level))
	switch upper {
	case "":
		return "INFO"
	case "WARNING":
		return "WARN"
	default:
		return upper
	}
}

// DefaultSaveTimeout is the maximum time allowed for a config save operation.
const DefaultSaveTimeout = 5 * time.Second

// Save writes the configuration to disk.
func Save(c Config) error {
	return SaveWithTimeout(c, DefaultSaveTimeout)
}

// SaveWithTimeout writes the configuration to disk with a specified timeout.
// If the save takes longer than the timeout, it returns a timeout error.
func SaveWithTimeout(c Config, timeout time.Duration) error {
	if _, err := EnsureDir(); err != nil {
		return err
	}
	p, err := path()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- os.WriteFile(p, b, 0o600)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return errors.New("config save timed out after " + timeout.String())
	}
}

// Clone returns a deep copy of the configuration so callers can mutate the
// returned value without affecting the receiver's pointer fields.
func (c Config) Clone() Config {
	out := c
	out.Clipboard.OSC52 = cloneBool(c.Clipboard.OSC52)
	out.Clipboard.TimeoutMs = cloneInt(c.Clipboard.TimeoutMs)
	out.Preview.Markdown = cloneBool(c.Preview.Markdown)
	out.Preview.WordWrap = cloneInt(c.Preview.WordWrap)
	out.UI.ToastTTLMs = cloneInt(c.UI.ToastTTLMs)
	out.API.RatePerMinute = cloneInt(c.API.RatePerMinute)
	out.API.Burst = cloneInt(c.API.Burst)
	return out
}

// Equal reports whether two configurations contain the same values.
// Version is excluded: it is managed during load/save.
func (c Config) Equal(other Config) bool {
	if c.LogLevel != other.LogLevel ||
		c.Clipboard.Command != other.Clipboard.Command ||
		c.Preview.Style != other.Preview.Style ||
		c.API.Addr != other.API.Addr {
		return false
	}
	return equalBoolPointers(c.Clipboard.OSC52, other.Clipboard.OSC52) &&
		equalIntPointers(c.Clipboard.TimeoutMs, other.Clipboard.TimeoutMs) &&
		equalBoolPointers(c.Preview.Markdown, other.Preview.Markdown) &&
		equalIntPointers(c.Preview.WordWrap, other.Preview.WordWrap) &&
		equalIntPointers(c.UI.ToastTTLMs, other.UI.ToastTTLMs) &&
		equalIntPointers(c.API.RatePerMinute, other.API.RatePerMinute) &&
		equalIntPointers(c.API.Burst, other.API.Burst)
}

// ToastTTL returns the toast duration, falling back to the default when unset.
func (c Config) ToastTTL() time.Duration {
	return millis(c.UI.ToastTTLMs, DefaultToastTTLMs)
}

// ClipboardTimeout bounds how long an external clipboard command may run.
func (c Config) ClipboardTimeout() time.Duration {
	return millis(c.Clipboard.TimeoutMs, DefaultClipboardTimeoutMs)
}

// UseOSC52 reports whether the OSC 52 terminal fallback is enabled.
func (c Config) UseOSC52() bool {
	return c.Clipboard.OSC52 == nil || *c.Clipboard.OSC52
}

// MarkdownPreview reports whether the preview starts in rendered mode.
func (c Config) MarkdownPreview() bool {
	return c.Preview.Markdown != nil && *c.Preview.Markdown
}

// PreviewWordWrap returns the glamour word wrap width.
func (c Config) PreviewWordWrap() int {
	if c.Preview.WordWrap == nil {
		return DefaultWordWrap
	}
	return *c.Preview.WordWrap
}

// RateLimit returns requests per minute and burst for the API limiter.
func (c Config) RateLimit() (int, int) {
	rate, burst := DefaultRatePerMinute, DefaultBurst
	if c.API.RatePerMinute != nil {
		rate = *c.API.RatePerMinute
	}
	if c.API.Burst != nil {
		burst = *c.API.Burst
	}
	return rate, burst
}

func millis(v *int, fallback int) time.Duration {
	if v == nil || *v <= 0 {
		return time.Duration(fallback) * time.Millisecond
	}
	return time.Duration(*v) * time.Millisecond
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	return utils.IntPtr(*p)
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	return utils.BoolPtr(*p)
}

// equalIntPointers safely compares two int pointers.
// Two nil pointers are equal; nil differs from any non-nil pointer.
func equalIntPointers(a, b *int) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func equalBoolPointers(a, b *bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
