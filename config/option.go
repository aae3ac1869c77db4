// file: guess/config/option.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Option is a functional config initializer.
type Option func(*Config) error

// FromJSON merges the JSON file at path. A missing file is an error only
// when required is set.
func FromJSON(path string, required bool) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			if !required && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read config file: %w", err)
		}
		data = ReplaceEnvVars(data)

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config json %s: %w", path, err)
		}
		if err := decode(raw, c, false); err != nil {
			return fmt.Errorf("decode config %s: %w", path, err)
		}
		return nil
	}
}

// FromEnv merges the known prefixed environment variables.
func FromEnv(prefix string) Option {
	return func(c *Config) error {
		raw := envMap(prefix)
		if len(raw) == 0 {
			return nil
		}
		if err := decode(raw, c, true); err != nil {
			return fmt.Errorf("decode %s* env: %w", prefix, err)
		}
		return nil
	}
}

// WithValues merges raw key/value pairs, nested with dots ("log.level").
func WithValues(values map[string]any) Option {
	return func(c *Config) error {
		raw := map[string]any{}
		for k, v := range values {
			setPath(raw, strings.Split(strings.ToLower(k), "."), v)
		}
		return decode(raw, c, true)
	}
}

// decode writes raw onto c; keys absent from raw keep their current value.
// Unknown keys are rejected.
func decode(raw map[string]any, c *Config, weak bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: weak,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// ReplaceEnvVars replaces ${ENV_VAR} in raw JSON string.
func ReplaceEnvVars(data []byte) []byte {
	return []byte(os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	}))
}
