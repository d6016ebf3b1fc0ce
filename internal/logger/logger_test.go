package logger

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "warn 3")
	assert.Contains(t, out, "error 4")
	assert.Contains(t, out, "logger_test.go", "source should be the caller's file")
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"History"}})

	Debugf("untagged")
	DebugTagf("history", "kept")
	InfoTagf("ordering", "dropped")

	out := buf.String()
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "tag=history")
	assert.NotContains(t, out, "dropped")
}

func TestDisabledTagWins(t *testing.T) {
	buf := initBuffer(t, Config{
		LogLevel:     "debug",
		EnabledTags:  []string{"history"},
		DisabledTags: []string{"history"},
	})

	WarnTagf("history", "never")
	assert.Empty(t, buf.String())
}

func TestPackageFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledPackages: []string{"logger"}})
	Infof("from logger package")
	assert.Empty(t, buf.String())

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledPackages: []string{"session"}})
	Infof("not enabled")
	assert.Empty(t, buf.String())

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledPackages: []string{"logger"}})
	Infof("enabled")
	assert.Contains(t, buf.String(), "enabled")
}

func TestGetWithTagAttr(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "info", DisabledTags: []string{"noisy"}})

	Get().With(slog.String("tag", "noisy")).Info("suppressed")
	Get().With(slog.String("tag", "quiet")).Info("visible")

	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("-")
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "blockdoc.log")
	w, closeFn, err = OpenOutput(path)
	require.NoError(t, err)
	Init(Config{LogLevel: "info"}, w)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	Infof("written")
	assert.NoError(t, closeFn())
	assert.FileExists(t, path)

	_, _, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
