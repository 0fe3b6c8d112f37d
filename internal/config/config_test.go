package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	first := writeConfig(t, "first.cue", `prompt: "lox> "`)
	second := writeConfig(t, "second.cue", `
prompt: "ignored> "
natives: ["clock"]
`)

	loader := NewLoader([]string{first, second}, Schema)

	var prompt string
	require.NoError(t, loader.AssignFirst("prompt", &prompt))
	assert.Equal(t, "lox> ", prompt)

	var natives []string
	require.NoError(t, loader.AssignFirst("natives", &natives))
	assert.Equal(t, []string{"clock"}, natives)

	var missing string
	assert.ErrorIs(t, loader.AssignFirst("history", &missing), ErrValueNotFound)
}

func TestFirst(t *testing.T) {
	path := writeConfig(t, "config.cue", `log_file: "/tmp/treelox.log"`)
	loader := NewLoader([]string{path}, Schema)

	file, err := First(loader, "log_file", "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/treelox.log", file)

	prompt, err := First(loader, "prompt", "> ")
	require.NoError(t, err)
	assert.Equal(t, "> ", prompt)
}

func TestLoad(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := writeConfig(t, "config.cue", `
prompt:       "lox> "
continuation: "...> "
log_level:    "debug"
natives:      []
`)

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.Prompt)
	assert.Equal(t, "...> ", cfg.Continuation)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.Natives)
	assert.Equal(t, Default().History, cfg.History)
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"unknown key", `colour: "red"`},
		{"wrong type", `prompt: 3`},
		{"bad level", `log_level: "trace"`},
		{"syntax", `prompt: "`},
	}

	for _, c := range cases {
		path := writeConfig(t, "config.cue", c.content)

		_, err := Load(path)
		assert.Error(t, err, c.name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "absent.cue"))
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	paths, err := Discover("explicit.cue")
	require.NoError(t, err)
	assert.Equal(t, []string{"explicit.cue"}, paths)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	paths, err = Discover("")
	require.NoError(t, err)
	assert.Empty(t, paths)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "treelox"), 0o755))
	path := filepath.Join(dir, "treelox", "config.cue")
	require.NoError(t, os.WriteFile(path, []byte(`prompt: "> "`), 0o644))

	paths, err = Discover("")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}
