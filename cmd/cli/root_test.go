package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kcaldas/lineedit/pkg/editor"
	"github.com/kcaldas/lineedit/pkg/history"
	"github.com/kcaldas/lineedit/pkg/keymap"
	"github.com/kcaldas/lineedit/pkg/logging"
	"github.com/kcaldas/lineedit/pkg/terminal"
	"github.com/kcaldas/lineedit/pkg/terminal/terminaltest"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's config and log file out of the test
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("LINEEDIT_DEBUG_FILE", filepath.Join(dir, "debug.log"))
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	global := logging.GetGlobalLogger()
	t.Cleanup(func() { logging.SetGlobalLogger(global) })
	for _, name := range []string{"LINEEDIT_PROMPT", "LINEEDIT_BACKEND", "LINEEDIT_HISTORY_SIZE", "LINEEDIT_CONFIG"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("echoes piped input", func(t *testing.T) {
		isolate(t)

		out, err := execute(t, "hello\n\nworld\n")
		require.NoError(t, err)
		assert.Equal(t, "----> [hello]\n----> []\n----> [world]\n", out)
	})

	t.Run("logs to the debug file in verbose mode", func(t *testing.T) {
		dir := isolate(t)

		_, err := execute(t, "one\ntwo\n", "-v")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "component=stdin")
		assert.Contains(t, string(data), "lines=2")
	})

	t.Run("rejects an unknown backend flag", func(t *testing.T) {
		isolate(t)

		_, err := execute(t, "", "--backend", "curses")
		assert.Error(t, err)
	})

	t.Run("rejects a missing config file", func(t *testing.T) {
		dir := isolate(t)

		_, err := execute(t, "", "--config", filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		isolate(t)

		_, err := execute(t, "", "extra")
		assert.Error(t, err)
	})

	t.Run("prints the version", func(t *testing.T) {
		isolate(t)

		out, err := execute(t, "", "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "lineedit version")
	})
}

func TestKeysCommand(t *testing.T) {
	t.Run("lists stock bindings", func(t *testing.T) {
		isolate(t)

		out, err := execute(t, "", "keys")
		require.NoError(t, err)
		assert.Contains(t, out, "submit")
		assert.Contains(t, out, "enter")
		assert.Contains(t, out, "history-prev")
	})

	t.Run("applies config overrides", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bindings:\n  tab: kill-to-end\n  ctrl+k: none\n"), 0o644))

		out, err := execute(t, "", "keys", "--config", path)
		require.NoError(t, err)
		assert.Regexp(t, `kill-to-end\s+tab`, out)
		assert.NotContains(t, out, "ctrl+k")
	})

	t.Run("fails on an invalid binding", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("bindings:\n  tab: explode\n"), 0o644))

		_, err := execute(t, "", "keys", "--config", path)
		assert.Error(t, err)
	})
}

func TestEchoLines(t *testing.T) {
	screen := terminaltest.New(30, 6)
	enter := terminal.Special(terminal.KeyEnter)
	screen.Type("hi").Press(enter).Type("there").Press(enter)

	engine := editor.New(screen, keymap.Default(), history.New(history.DefaultMaxSize))
	require.NoError(t, echoLines(engine, screen, "> "))

	assert.Equal(t, []string{
		"> hi",
		"----> [hi]",
		"> there",
		"----> [there]",
		">",
	}, screen.Lines(), "the last prompt is left when input ends")
}
