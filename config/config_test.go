package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rskv-p/guess/config"
	"github.com/rskv-p/guess/pkg/x_db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guess.config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "guess.tree", cfg.SaveFile)
	assert.Equal(t, "Nobody", cfg.Placeholder)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, x_db.DbSqlite, cfg.History.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("HISTORY_PATH", "/tmp/games.db")
	path := writeFile(t, `{
		"save_file": "animals.tree",
		"dot_file": "animals.dot",
		"rounds": 3,
		"speech_cmd": "festival --tts",
		"history": {"enabled": true, "dsn": "${HISTORY_PATH}"},
		"log": {"level": "debug", "to_file": true}
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "animals.tree", cfg.SaveFile)
	assert.Equal(t, "animals.dot", cfg.DotFile)
	assert.Equal(t, 3, cfg.Rounds)
	assert.Equal(t, "festival --tts", cfg.SpeechCmd)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, x_db.DbSqlite, cfg.History.Driver)
	assert.Equal(t, "/tmp/games.db", cfg.History.DSN)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.ToFile)
	assert.Equal(t, "console", cfg.Log.Format, "untouched nested keys keep defaults")
	assert.Equal(t, "Nobody", cfg.Placeholder)
}

func TestLoad_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.json")

	_, err := config.Load(missing)
	assert.Error(t, err, "explicit path must exist")

	t.Setenv(config.EnvPath, missing)
	_, err = config.Load("")
	assert.Error(t, err, "GUESS_CONFIG path must exist")

	t.Setenv(config.EnvPath, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"save_file": `},
		{"unknown key", `{"save_flie": "x"}`},
		{"wrong type", `{"rounds": "three"}`},
		{"negative rounds", `{"rounds": -1}`},
		{"brace placeholder", `{"placeholder": "{"}`},
		{"bad level", `{"log": {"level": "chatty"}}`},
		{"bad driver", `{"history": {"enabled": true, "driver": "mongo"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, tt.body))
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.SaveFile = " "
	cfg.SpeechTimeoutSec = -2

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "save_file")
	assert.Contains(t, err.Error(), "speech_timeout_sec(-2)")

	cfg = config.Default()
	cfg.History.Driver = "mongo"
	assert.NoError(t, cfg.Validate(), "history settings matter only when enabled")
}

func TestConfig_Dump(t *testing.T) {
	cfg := config.Default()

	var buf bytes.Buffer
	require.NoError(t, cfg.Dump(&buf))
	assert.Contains(t, buf.String(), `"save_file": "guess.tree"`)
	assert.Contains(t, buf.String(), `"driver": "sqlite"`)
	assert.Contains(t, buf.String(), `"level": "warn"`)
}

func TestSpeechTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.SpeechTimeoutSec = 3
	assert.Equal(t, "3s", cfg.SpeechTimeout().String())
}
