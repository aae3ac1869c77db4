// file: guess/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rskv-p/guess/pkg/x_db"
	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/rskv-p/guess/pkg/x_log"
)

const (
	EnvPrefix   = "GUESS_"
	EnvPath     = EnvPrefix + "CONFIG"
	DefaultPath = "./guess.config.json"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the game and its side channels.
type Config struct {
	SaveFile         string        `json:"save_file" mapstructure:"save_file"`
	DotFile          string        `json:"dot_file" mapstructure:"dot_file"`
	Placeholder      string        `json:"placeholder" mapstructure:"placeholder"`
	Rounds           int           `json:"rounds" mapstructure:"rounds"`
	SpeechCmd        string        `json:"speech_cmd" mapstructure:"speech_cmd"`
	SpeechTimeoutSec int           `json:"speech_timeout_sec" mapstructure:"speech_timeout_sec"`
	History          HistoryConfig `json:"history" mapstructure:"history"`
	Log              x_log.Config  `json:"log" mapstructure:"log"`
}

// HistoryConfig switches game history recording on and selects its database.
type HistoryConfig struct {
	Enabled     bool `json:"enabled" mapstructure:"enabled"`
	x_db.Config `mapstructure:",squash"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		SaveFile:         "guess.tree",
		DotFile:          "",
		Placeholder:      x_guess.DefaultPlaceholder,
		Rounds:           0,
		SpeechCmd:        "",
		SpeechTimeoutSec: 10,
		History: HistoryConfig{
			Enabled: false,
			Config:  x_db.DefaultConfig(),
		},
		Log: x_log.DefaultConfig(),
	}
}

// Load builds the config from defaults, the JSON file at path, GUESS_*
// environment variables and then extra, in that order. An empty path falls
// back to GUESS_CONFIG and then ./guess.config.json; only a fallback path may
// be missing.
func Load(path string, extra ...Option) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = GetEnvStr(EnvPath, "")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}
	opts := append([]Option{FromJSON(path, explicit), FromEnv(EnvPrefix)}, extra...)
	return New(opts...)
}

// New applies opts on top of the defaults and validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SpeechTimeout is the per-utterance limit.
func (cfg *Config) SpeechTimeout() time.Duration {
	return time.Duration(cfg.SpeechTimeoutSec) * time.Second
}

// Validate checks config for usable values.
func (cfg *Config) Validate() error {
	var bad []string
	if strings.TrimSpace(cfg.SaveFile) == "" {
		bad = append(bad, "save_file")
	}
	if _, err := x_guess.CheckValue(cfg.Placeholder); err != nil {
		bad = append(bad, fmt.Sprintf("placeholder(%q)", cfg.Placeholder))
	}
	if cfg.Rounds < 0 {
		bad = append(bad, fmt.Sprintf("rounds(%d)", cfg.Rounds))
	}
	if cfg.SpeechTimeoutSec < 0 {
		bad = append(bad, fmt.Sprintf("speech_timeout_sec(%d)", cfg.SpeechTimeoutSec))
	}
	if cfg.History.Enabled {
		if err := cfg.History.Config.Validate(); err != nil {
			bad = append(bad, fmt.Sprintf("history(%v)", err))
		}
	}
	if _, err := x_log.ParseLevel(cfg.Log.Level); err != nil {
		bad = append(bad, fmt.Sprintf("log.level(%q)", cfg.Log.Level))
	}
	if _, err := x_log.ParseFormat(cfg.Log.Format); err != nil {
		bad = append(bad, fmt.Sprintf("log.format(%q)", cfg.Log.Format))
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(bad, ", "))
	}
	return nil
}

// Dump writes the effective config as indented JSON.
func (cfg *Config) Dump(w io.Writer) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
