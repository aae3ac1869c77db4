// file: guess/config/env.go
package config

import (
	"os"
	"strings"
)

// envKeys maps GUESS_* variable suffixes to config keys.
var envKeys = map[string]string{
	"SAVE_FILE":          "save_file",
	"DOT_FILE":           "dot_file",
	"PLACEHOLDER":        "placeholder",
	"ROUNDS":             "rounds",
	"SPEECH_CMD":         "speech_cmd",
	"SPEECH_TIMEOUT_SEC": "speech_timeout_sec",
	"HISTORY_ENABLED":    "history.enabled",
	"HISTORY_DRIVER":     "history.driver",
	"HISTORY_DSN":        "history.dsn",
	"LOG_LEVEL":          "log.level",
	"LOG_FORMAT":         "log.format",
	"LOG_FILE":           "log.log_file",
	"LOG_TO_FILE":        "log.to_file",
	"LOG_STYLE":          "log.style",
}

// GetEnvStr returns string env var or fallback.
func GetEnvStr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envMap collects the set GUESS_* variables as a nested raw config.
func envMap(prefix string) map[string]any {
	raw := map[string]any{}
	for suffix, key := range envKeys {
		v, ok := os.LookupEnv(prefix + suffix)
		if !ok {
			continue
		}
		setPath(raw, strings.Split(key, "."), strings.TrimSpace(v))
	}
	return raw
}

func setPath(m map[string]any, path []string, v any) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}
