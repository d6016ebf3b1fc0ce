package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, undecoded, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Empty(t, undecoded)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"
enabled_tags = ["history"]

[history]
capacity = 25

[ordering]
initial_index = 1024.0

[editor]
system_clipboard = false
mystery = 1
`)
	cfg, undecoded, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history"}, cfg.Logger.EnabledTags)
	assert.Equal(t, 25, cfg.History.Capacity)
	assert.Equal(t, 1024.0, cfg.Ordering.InitialIndex)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, []string{"editor.mystery"}, undecoded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[history]\ncapacity = 5\n")
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.History.Capacity)
	assert.Equal(t, DefaultInitialIndex, cfg.Ordering.InitialIndex)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.True(t, cfg.Editor.SystemClipboard)
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := writeConfig(t, "[history]\ncapacity = -3\n[ordering]\ninitial_index = -1.0\n[logger]\nlevel = \"\"\n")
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultHistoryCapacity, cfg.History.Capacity)
	assert.Equal(t, DefaultInitialIndex, cfg.Ordering.InitialIndex)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[history\ncapacity = ")
	_, _, err := Load(path, nil)
	assert.Error(t, err)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[history]\ncapacity = 5\n[logger]\nlevel = \"warn\"\n")

	flags := NewFlags("test")
	rest, err := flags.Parse([]string{
		"-history", "9",
		"-loglevel", "debug",
		"-log-tags", "history, session,,",
		"-system-clipboard=false",
		"doc.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"doc.txt"}, rest)

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.History.Capacity)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
	assert.Equal(t, []string{"history", "session"}, cfg.Logger.EnabledTags)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, DefaultInitialIndex, cfg.Ordering.InitialIndex, "unset flags must not override")
}

func TestUnknownFlag(t *testing.T) {
	flags := NewFlags("test")
	flags.fs.SetOutput(io.Discard)
	_, err := flags.Parse([]string{"-nope"})
	assert.Error(t, err)
}
