package x_log

// Config controls where and how log records are written. Format is "console"
// or "json", Style is "dark" or "light"; MaxSize is in megabytes and MaxAge
// in days.
type Config struct {
	Level      string `json:"level" mapstructure:"level"`
	Format     string `json:"format" mapstructure:"format"`
	LogFile    string `json:"log_file" mapstructure:"log_file"`
	ToConsole  bool   `json:"to_console" mapstructure:"to_console"`
	ToFile     bool   `json:"to_file" mapstructure:"to_file"`
	Style      string `json:"style" mapstructure:"style"`
	MaxSize    int    `json:"max_size" mapstructure:"max_size"`
	MaxBackups int    `json:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `json:"max_age" mapstructure:"max_age"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

//
// ---------- Defaults ----------

var defaultConfig = Config{
	Level:      "warn",
	Format:     "console",
	LogFile:    "logs/guess.log",
	ToConsole:  true,
	ToFile:     false,
	Style:      "dark",
	MaxSize:    10,
	MaxBackups: 5,
	MaxAge:     7,
	Compress:   true,
}

// DefaultConfig returns a copy of the built-in configuration.
func DefaultConfig() Config {
	return defaultConfig
}

//
// ---------- Defaults Fill ----------

// ApplyDefaults fills missing values from the built-in configuration.
func ApplyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.Format == "" {
		cfg.Format = defaultConfig.Format
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
