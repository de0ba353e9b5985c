package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/SimoKiihamaki/marketprompt/internal/config"
	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
	"github.com/SimoKiihamaki/marketprompt/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree against a throwaway config directory. The
// config directory is process-global, so these tests do not run in parallel.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { config.SetDir("") })

	var stdout, stderr bytes.Buffer
	root := NewRootCmd(&stdout, &stderr)
	root.SetArgs(append([]string{"--config-dir", t.TempDir()}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestComposeDefaults(t *testing.T) {
	out, _, err := run(t, "compose")
	require.NoError(t, err)
	assert.Equal(t, prompt.Compose(prompt.DefaultValues())+"\n", out)
}

func TestComposeEmptyWithSet(t *testing.T) {
	out, _, err := run(t, "compose", "--empty", "--set", "tone=Diretto e sintetico")
	require.NoError(t, err)

	want := prompt.EmptyValues().With(prompt.Tone, "Diretto e sintetico")
	assert.Equal(t, prompt.Compose(want)+"\n", out)
	assert.Contains(t, out, "Tono richiesto: Diretto e sintetico.")
	assert.Contains(t, out, "- Settore: \n")
	assert.Contains(t, out, prompt.NotProvided)
}

func TestComposeSetValueMayContainEquals(t *testing.T) {
	out, _, err := run(t, "compose", "--set", "constraints=budget=basso")
	require.NoError(t, err)
	assert.Contains(t, out, "- budget=basso")
}

func TestComposeRejectsBadSet(t *testing.T) {
	tcs := map[string]struct {
		set     string
		wantErr string
	}{
		"unknown key": {set: "colour=blu", wantErr: "unknown field"},
		"no equals":   {set: "tone", wantErr: "want key=value"},
		"empty key":   {set: "=valore", wantErr: "want key=value"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, "compose", "--set", tc.set)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestComposeValuesFile(t *testing.T) {
	brief := filepath.Join(t.TempDir(), "brief.yaml")
	require.NoError(t, os.WriteFile(brief, []byte("industry: Logistica del freddo\ntone: \"\"\n"), 0o600))

	out, _, err := run(t, "compose", "-f", brief, "--set", "geography=Spagna")
	require.NoError(t, err)

	want := prompt.DefaultValues().
		With(prompt.Industry, "Logistica del freddo").
		With(prompt.Tone, "").
		With(prompt.Geography, "Spagna")
	assert.Equal(t, prompt.Compose(want)+"\n", out)
}

func TestComposeValuesFileUnknownKey(t *testing.T) {
	brief := filepath.Join(t.TempDir(), "brief.json")
	require.NoError(t, os.WriteFile(brief, []byte(`{"budget":"alto"}`), 0o600))

	_, _, err := run(t, "compose", "--values", brief)
	require.Error(t, err)
	assert.ErrorIs(t, err, prompt.ErrUnknownField)
}

func TestComposeJSON(t *testing.T) {
	out, _, err := run(t, "compose", "--format", "json", "--set", "industry=Fintech")
	require.NoError(t, err)

	var got struct {
		Prompt   string            `json:"prompt"`
		Sections []string          `json:"sections"`
		Values   map[string]string `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	want := prompt.DefaultValues().With(prompt.Industry, "Fintech")
	assert.Equal(t, prompt.Compose(want), got.Prompt)
	assert.Len(t, got.Sections, prompt.SectionCount)
	assert.Equal(t, "Fintech", got.Values["industry"])
	assert.Len(t, got.Values, prompt.KeyCount)
}

func TestComposeUnknownFormat(t *testing.T) {
	_, _, err := run(t, "compose", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestFieldsTable(t *testing.T) {
	out, _, err := run(t, "fields")
	require.NoError(t, err)

	assert.Contains(t, out, "KEY")
	for _, f := range prompt.Fields() {
		assert.Contains(t, out, f.Name)
		assert.Contains(t, out, f.Label)
	}
}

func TestFieldsJSON(t *testing.T) {
	out, _, err := run(t, "fields", "--format", "json")
	require.NoError(t, err)

	var got []fieldOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, prompt.KeyCount)
	assert.Equal(t, "industry", got[0].Name)
	assert.Equal(t, prompt.DefaultValue(prompt.Deliverables), got[prompt.KeyCount-1].DefaultValue)
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, _, err := run(t, "--log-level", "verbose", "fields")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestCorruptConfigWarnsAndContinues(t *testing.T) {
	t.Cleanup(func() { config.SetDir("") })
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: [\n"), 0o600))

	var stdout, stderr bytes.Buffer
	root := NewRootCmd(&stdout, &stderr)
	root.SetArgs([]string{"--config-dir", dir, "compose"})
	require.NoError(t, root.Execute())

	assert.Contains(t, stderr.String(), "config file corrupt")
	assert.Equal(t, prompt.Compose(prompt.DefaultValues())+"\n", stdout.String())
}

func TestParseSets(t *testing.T) {
	got, err := parseSets([]string{"tone=A", " metrics =B=C", "trends="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"tone": "A", "metrics": "B=C", "trends": ""}, got)
}

func TestPreferenceSaverKeepsFlagOverridesOffDisk(t *testing.T) {
	t.Cleanup(func() { config.SetDir("") })
	o := &rootOptions{stderr: io.Discard, configDir: t.TempDir(), logLevel: "debug"}
	require.NoError(t, o.prepare(nil, nil))
	assert.Equal(t, "DEBUG", o.cfg.LogLevel)

	save := o.preferenceSaver()
	require.NotNil(t, save)

	next := o.cfg.Clone()
	next.Preview.Markdown = utils.BoolPtr(true)
	require.NoError(t, save(next))

	loaded := config.LoadWithWarnings()
	assert.Empty(t, loaded.Warnings)
	assert.True(t, loaded.Config.MarkdownPreview())
	assert.Equal(t, "INFO", loaded.Config.LogLevel)
}

func TestPreferenceSaverLeavesBrokenConfigAlone(t *testing.T) {
	t.Cleanup(func() { config.SetDir("") })
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	broken := []byte("preview: [\n")
	require.NoError(t, os.WriteFile(path, broken, 0o600))

	o := &rootOptions{stderr: io.Discard, configDir: dir}
	require.NoError(t, o.prepare(nil, nil))
	assert.Nil(t, o.preferenceSaver())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, broken, data)
}
