package prompt

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestValuesSetAndWith(t *testing.T) {
	t.Parallel()

	v := DefaultValues()
	w := v.With(Tone, "Diretto")
	assert.Equal(t, DefaultValue(Tone), v.Get(Tone))
	assert.Equal(t, "Diretto", w.Get(Tone))

	v.Set(Metrics, "")
	assert.Equal(t, "", v.Get(Metrics))

	v.Set(Key(42), "ignored")
	assert.Equal(t, "", v.Get(Key(42)))
}

func TestApplyMap(t *testing.T) {
	t.Parallel()

	out, err := ApplyMap(DefaultValues(), map[string]string{
		"tone":    "",
		"metrics": "ARPU",
	})
	require.NoError(t, err)
	assert.Equal(t, "", out.Get(Tone))
	assert.Equal(t, "ARPU", out.Get(Metrics))
	assert.Equal(t, DefaultValue(Industry), out.Get(Industry))

	base := EmptyValues()
	got, err := ApplyMap(base, map[string]string{"budget": "10k"})
	assert.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, base, got)
}

func TestValuesJSON(t *testing.T) {
	t.Parallel()

	v := EmptyValues().With(Industry, "Fintech").With(Tone, "Formale")
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"industry":"Fintech","targetAudience":""`))

	decoded := DefaultValues()
	require.NoError(t, json.Unmarshal([]byte(`{"industry":"Fintech"}`), &decoded))
	assert.Equal(t, "Fintech", decoded.Get(Industry))
	assert.Equal(t, DefaultValue(Trends), decoded.Get(Trends))

	err = json.Unmarshal([]byte(`{"nope":"x"}`), &decoded)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValuesYAMLRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	v := DefaultValues().With(Constraints, "Budget ridotto\nScadenza: 2 settimane")
	data, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "industry: "))

	var back Values
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, v, back)
}

func TestLoadValuesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	yamlPath := write("brief.yaml", "industry: Logistica\nbusinessGoals: |\n  Crescere\n  Espandersi\n")
	v, err := LoadValuesFile(yamlPath, DefaultValues())
	require.NoError(t, err)
	assert.Equal(t, "Logistica", v.Get(Industry))
	assert.Equal(t, "Crescere\nEspandersi\n", v.Get(BusinessGoals))
	assert.Equal(t, DefaultValue(Tone), v.Get(Tone))

	tomlPath := write("brief.toml", "tone = \"Tecnico\"\nmetrics = \"\"\n")
	v, err = LoadValuesFile(tomlPath, DefaultValues())
	require.NoError(t, err)
	assert.Equal(t, "Tecnico", v.Get(Tone))
	assert.Equal(t, "", v.Get(Metrics))

	jsonPath := write("brief.json", `{"geography":"Spagna"}`)
	v, err = LoadValuesFile(jsonPath, EmptyValues())
	require.NoError(t, err)
	assert.Equal(t, EmptyValues().With(Geography, "Spagna"), v)

	_, err = LoadValuesFile(write("brief.txt", "x"), EmptyValues())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadValuesFile(write("bad.yaml", "budget: alto\n"), EmptyValues())
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = LoadValuesFile(filepath.Join(dir, "missing.yaml"), EmptyValues())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
