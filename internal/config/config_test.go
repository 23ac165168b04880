package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fffcards/fff/internal/deck"
)

// isolate runs the test in an empty directory with no config or .env around.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg-config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "xdg-state"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Source.URL)
	assert.Equal(t, DefaultSheetID, cfg.Source.SheetID)
	assert.Equal(t, "0", cfg.Source.GID)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.True(t, cfg.Deck.Shuffle)
	assert.Equal(t, "Impuls", cfg.Deck.Interleave)
	assert.Equal(t, "Abschluss", cfg.Deck.Closing)
	assert.Empty(t, cfg.Deck.Categories)
	assert.True(t, cfg.UI.Intro)
	assert.True(t, cfg.UI.Mouse)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "xdg-state", "fff", "fff.log"), cfg.Log.Path)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
source:
  sheet_id: abc123
  gid: "42"
  timeout: 3s
deck:
  shuffle: false
  categories: [Fuck, Family]
ui:
  intro: false
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Source.SheetID)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.False(t, cfg.Deck.Shuffle)
	assert.Equal(t, []string{"Fuck", "Family"}, cfg.Deck.Categories)
	assert.False(t, cfg.UI.Intro)
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/abc123/export?format=csv&gid=42",
		cfg.PrimaryURL())
}

func TestLoadConfigFromWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("deck:\n  interleave: Pause\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "Pause", cfg.Deck.Interleave)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FFF_SOURCE_URL", "https://example.com/q.csv")
	t.Setenv("FFF_DECK_SHUFFLE", "false")
	t.Setenv("FFF_LOG_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/q.csv", cfg.PrimaryURL())
	assert.False(t, cfg.Deck.Shuffle)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FFF_SOURCE_GID=7\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FFF_SOURCE_GID") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "7", cfg.Source.GID)
}

func TestFlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("FFF_LOG_LEVEL", "debug")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.String("sheet-id", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "warn"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, DefaultSheetID, cfg.Source.SheetID, "unchanged flag keeps the default")
}

func TestURLWinsOverSheetID(t *testing.T) {
	cfg := &Config{Source: Source{URL: "https://a", SheetID: "b"}}
	assert.Equal(t, "https://a", cfg.PrimaryURL())
	assert.NotNil(t, cfg.Primary())
}

func TestNoPrimary(t *testing.T) {
	cfg := &Config{}
	assert.Empty(t, cfg.PrimaryURL())
	assert.Nil(t, cfg.Primary())
	assert.Equal(t, "embedded", cfg.Fallback().Name())

	cfg.Source.Fallback = "deck.csv"
	assert.Equal(t, "deck.csv", cfg.Fallback().Name())
}

func TestPolicy(t *testing.T) {
	cfg := &Config{Deck: Deck{Shuffle: true, Interleave: "Impuls", Closing: "Abschluss"}}
	assert.Equal(t, deck.Policy{Shuffle: true, Interleave: "Impuls", Closing: "Abschluss"}, cfg.Policy())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Source: Source{Timeout: time.Second}, Log: Log{Level: "info", Path: "x.log"}}, false},
		{"zero timeout", Config{Log: Log{Level: "off"}}, true},
		{"log without path", Config{Source: Source{Timeout: time.Second}, Log: Log{Level: "info"}}, true},
		{"off without path", Config{Source: Source{Timeout: time.Second}, Log: Log{Level: "off"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
