package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/utils"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "marketprompt")
	t.Setenv(EnvConfigDir, dir)
	return dir
}

func TestConfigCloneIndependence(t *testing.T) {
	t.Parallel()

	base := Defaults()
	clone := base.Clone()
	if !base.Equal(clone) {
		t.Fatalf("expected clone to be equal to original")
	}

	*clone.UI.ToastTTLMs = 9999
	*clone.Clipboard.OSC52 = false
	*clone.API.Burst = 1

	if *base.UI.ToastTTLMs != DefaultToastTTLMs {
		t.Fatalf("original toast ttl mutated by clone change")
	}
	if !*base.Clipboard.OSC52 {
		t.Fatalf("original osc52 flag mutated by clone change")
	}
	if *base.API.Burst != DefaultBurst {
		t.Fatalf("original burst mutated by clone change")
	}
}

func TestConfigEqual(t *testing.T) {
	t.Parallel()

	base := Defaults()
	if !base.Equal(base.Clone()) {
		t.Fatalf("expected equal configs to report true")
	}

	modified := base.Clone()
	modified.Clipboard.Command = "wl-copy"
	if base.Equal(modified) {
		t.Fatalf("expected differing clipboard command to report inequality")
	}

	modified = base.Clone()
	modified.Preview.Markdown = utils.BoolPtr(!*base.Preview.Markdown)
	if base.Equal(modified) {
		t.Fatalf("expected differing markdown flag to report inequality")
	}

	modified = base.Clone()
	modified.UI.ToastTTLMs = nil
	if base.Equal(modified) {
		t.Fatalf("expected nil vs set pointer to report inequality")
	}

	modified = base.Clone()
	modified.Version = "0.9.0"
	if !base.Equal(modified) {
		t.Fatalf("version must not affect equality")
	}
}

func TestCompareVersions(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"0.9.9", "1.0.0", -1},
		{"1.2.0", "1.1.9", 1},
		{"1", "1.0.0", 0},
		{"garbage", "0.0.0", 0},
		{"1.0.10", "1.0.9", 1},
	}
	for _, tc := range tcs {
		if got := compareVersions(tc.a, tc.b); got != tc.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMigrateConfig(t *testing.T) {
	t.Parallel()

	c, warnings := migrateConfig(Config{})
	if c.Version != ConfigVersion || len(warnings) != 1 {
		t.Fatalf("expected unversioned config to migrate with one warning, got %q %v", c.Version, warnings)
	}

	c, warnings = migrateConfig(Config{Version: ConfigVersion})
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings for current version, got %v", warnings)
	}
	if c.Version != ConfigVersion {
		t.Fatalf("unexpected version %q", c.Version)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigDir(t)

	result := LoadWithWarnings()
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
	if !result.Config.Equal(Defaults()) {
		t.Fatalf("expected defaults when config file is missing")
	}
	if result.Fallback {
		t.Fatalf("a missing file is not a fallback; saving may create it")
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("clipboard: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	result := LoadWithWarnings()
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "corrupt") {
		t.Fatalf("expected corrupt warning, got %v", result.Warnings)
	}
	if !result.Config.Equal(Defaults()) {
		t.Fatalf("expected defaults for corrupt config")
	}
	if !result.Fallback {
		t.Fatalf("corrupt config should be reported as a fallback")
	}
}

func TestLoadPreservesExplicitValues(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	body := strings.Join([]string{
		"version: 1.0.0",
		"log_level: warning",
		"clipboard:",
		"  command: xclip -selection clipboard",
		"  osc52: false",
		"preview:",
		"  markdown: true",
		"ui:",
		"  toast_ttl_ms: 0",
		"",
	}, "\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	result := LoadWithWarnings()
	cfg := result.Config

	if cfg.LogLevel != "WARN" {
		t.Fatalf("expected WARNING normalized to WARN, got %q", cfg.LogLevel)
	}
	if cfg.Clipboard.Command != "xclip -selection clipboard" {
		t.Fatalf("unexpected clipboard command %q", cfg.Clipboard.Command)
	}
	if cfg.UseOSC52() {
		t.Fatalf("explicit osc52: false must be preserved")
	}
	if !cfg.MarkdownPreview() {
		t.Fatalf("explicit markdown: true must be preserved")
	}
	if cfg.Preview.Style != DefaultPreviewStyle {
		t.Fatalf("expected default preview style, got %q", cfg.Preview.Style)
	}
	if cfg.ToastTTL() != DefaultToastTTLMs*time.Millisecond {
		t.Fatalf("expected invalid toast ttl to fall back to default, got %v", cfg.ToastTTL())
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "toast_ttl_ms") {
		t.Fatalf("expected toast ttl warning, got %v", result.Warnings)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := Defaults()
	cfg.Clipboard.Command = "wl-copy"
	cfg.Preview.Style = "light"
	if err := Save(cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}

	loaded := LoadWithWarnings()
	if len(loaded.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", loaded.Warnings)
	}
	if !loaded.Config.Equal(cfg) {
		t.Fatalf("loaded config differs from saved config: %+v", loaded.Config)
	}
}

func TestSetDirOverridesEnvironment(t *testing.T) {
	useTempConfigDir(t)
	pinned := t.TempDir()
	SetDir(pinned)
	t.Cleanup(func() { SetDir("") })

	dir, err := Dir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != pinned {
		t.Fatalf("expected pinned dir %q, got %q", pinned, dir)
	}
}
