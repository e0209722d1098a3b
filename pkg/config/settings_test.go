package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a scratch dir and clears LINEEDIT_ variables so the
// developer's own config cannot leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	for _, key := range []string{KeyPrompt, KeyHistorySize, KeyBackend, KeyConfigFile} {
		name := EnvPrefix + strings.ToUpper(key)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	isolate(t)

	s, err := NewLoader(NewConfigManager()).Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "> ", s.Prompt)
	assert.Equal(t, 50, s.HistorySize)
	assert.Equal(t, BackendANSI, s.Backend)
}

func TestLoader_File(t *testing.T) {
	t.Run("reads the default path under home", func(t *testing.T) {
		home := isolate(t)
		writeFile(t, filepath.Join(home, ".config", "lineedit", "config.yaml"), `
prompt: "$ "
history_size: 10
backend: TCELL
bindings:
  ctrl+j: submit
  tab: none
`)

		s, err := NewLoader(NewConfigManager()).Load("")
		require.NoError(t, err)
		assert.Equal(t, "$ ", s.Prompt)
		assert.Equal(t, 10, s.HistorySize)
		assert.Equal(t, BackendTcell, s.Backend)
		assert.Equal(t, map[string]string{"ctrl+j": "submit", "tab": "none"}, s.Bindings)
	})

	t.Run("keeps defaults for absent keys", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "prompt: \">> \"\n")

		s, err := NewLoader(NewConfigManager()).Load(path)
		require.NoError(t, err)
		assert.Equal(t, ">> ", s.Prompt)
		assert.Equal(t, DefaultHistorySize, s.HistorySize)
		assert.Equal(t, DefaultBackend, s.Backend)
	})

	t.Run("expands home in the path", func(t *testing.T) {
		home := isolate(t)
		writeFile(t, filepath.Join(home, "edit.yaml"), "history_size: 3\n")

		s, err := NewLoader(NewConfigManager()).Load("~/edit.yaml")
		require.NoError(t, err)
		assert.Equal(t, 3, s.HistorySize)
	})

	t.Run("requires an explicit file to exist", func(t *testing.T) {
		isolate(t)
		_, err := NewLoader(NewConfigManager()).Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "bad.yaml"), "prompt: [unterminated\n")

		_, err := NewLoader(NewConfigManager()).Load(path)
		assert.Error(t, err)
	})

	t.Run("uses LINEEDIT_CONFIG when no path is given", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "env.yaml"), "history_size: 8\n")
		t.Setenv("LINEEDIT_CONFIG", path)

		s, err := NewLoader(NewConfigManager()).Load("")
		require.NoError(t, err)
		assert.Equal(t, 8, s.HistorySize)
	})
}

func TestLoader_Environment(t *testing.T) {
	t.Run("variables override the file", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "prompt: \"file \"\nhistory_size: 10\n")
		t.Setenv("LINEEDIT_PROMPT", "env ")
		t.Setenv("LINEEDIT_HISTORY_SIZE", "20")
		t.Setenv("LINEEDIT_BACKEND", "tcell")

		s, err := NewLoader(NewConfigManager()).Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env ", s.Prompt)
		assert.Equal(t, 20, s.HistorySize)
		assert.Equal(t, BackendTcell, s.Backend)
	})

	t.Run("an unset history size keeps the file value", func(t *testing.T) {
		isolate(t)
		path := writeFile(t, filepath.Join(t.TempDir(), "c.yaml"), "history_size: 7\n")
		t.Setenv("LINEEDIT_PROMPT", "env ")

		s, err := NewLoader(NewConfigManager()).Load(path)
		require.NoError(t, err)
		assert.Equal(t, 7, s.HistorySize)
	})

	t.Run("rejects a non-numeric history size", func(t *testing.T) {
		isolate(t)
		t.Setenv("LINEEDIT_HISTORY_SIZE", "lots")

		_, err := NewLoader(NewConfigManager()).Load("")
		assert.Error(t, err)
	})

	t.Run("reads .env files without overriding the environment", func(t *testing.T) {
		isolate(t)
		envFile := writeFile(t, filepath.Join(t.TempDir(), ".env"), "LINEEDIT_HISTORY_SIZE=12\nLINEEDIT_BACKEND=tcell\n")
		t.Setenv("LINEEDIT_BACKEND", "ansi")
		t.Cleanup(func() { os.Unsetenv("LINEEDIT_HISTORY_SIZE") })

		s, err := NewLoader(NewConfigManager(), envFile, filepath.Join(t.TempDir(), "absent.env")).Load("")
		require.NoError(t, err)
		assert.Equal(t, 12, s.HistorySize)
		assert.Equal(t, BackendANSI, s.Backend)
	})
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr bool
	}{
		{name: "defaults", mutate: func(s *Settings) {}},
		{name: "tcell backend", mutate: func(s *Settings) { s.Backend = BackendTcell }},
		{name: "unknown backend", mutate: func(s *Settings) { s.Backend = "curses" }, wantErr: true},
		{name: "zero history", mutate: func(s *Settings) { s.HistorySize = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
