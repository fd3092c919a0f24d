package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtodo/pkg/persona"
)

func TestLoad_WritesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moodtodo", "config.json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, DefaultStyles(), cfg.Styles)
	assert.Equal(t, "a", cfg.KeyMap["addtask"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "error_color")
	assert.Empty(t, cfg.Personas)
	assert.Empty(t, cfg.InitialPersona)

	// reading the written file back gives the same configuration
	again, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, cfg.Styles, again.Styles)
}

func TestLoad_FirstRunDoesNotSaveFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	logPath := filepath.Join(t.TempDir(), "debug.log")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("persona", "", "")
	flags.String("log-file", "", "")
	require.NoError(t, flags.Parse([]string{"--persona", "zen-otter", "--log-file", logPath}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "zen-otter", cfg.InitialPersona)
	assert.Equal(t, logPath, cfg.LogFile)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "zen-otter")
	assert.NotContains(t, string(data), logPath)

	again, err := Load(path, nil)
	require.NoError(t, err)
	assert.Empty(t, again.InitialPersona)
	assert.Empty(t, again.LogFile)
}

func TestLoad_FileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  "initial_persona": "zen-otter",
  "styles": {"accent_color": "99"},
  "keymap": {"AddTask": "n"},
  "personas": [
    {"id": "night-owl", "name": "Night Owl", "mood": "Up late", "image_url": "https://example.com/owl.png",
     "starter_todos": ["Dim the screen", "Make tea"]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "zen-otter", cfg.InitialPersona)
	assert.Equal(t, "99", cfg.Styles.AccentColor)
	assert.Equal(t, DefaultStyles().BorderColor, cfg.Styles.BorderColor)
	assert.Equal(t, "n", cfg.KeyMap["addtask"])

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	require.Equal(t, 1, catalog.Len())
	owl, ok := catalog.Get("night-owl")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/owl.png", owl.ImageURL)
	assert.Equal(t, []string{"Dim the screen", "Make tea"}, owl.StarterTodos)
}

func TestLoad_FlagOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"initial_persona": "zen-otter"}`), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("persona", "", "")
	require.NoError(t, flags.Parse([]string{"--persona", "coffee-goblin"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "coffee-goblin", cfg.InitialPersona)
}

func TestLoad_UnsetFlagKeepsFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"initial_persona": "zen-otter"}`), 0644))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("persona", "", "")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "zen-otter", cfg.InitialPersona)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestCatalog_DefaultsAndValidation(t *testing.T) {
	catalog, err := Default().Catalog()
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	cfg := Default()
	cfg.Personas = []persona.Persona{{ID: "a", Name: "A"}, {ID: "a", Name: "B"}}
	_, err = cfg.Catalog()
	assert.ErrorContains(t, err, "invalid personas")
}
