// Package x_log wires zerolog with styled console output and rotated log files.
package x_log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	ErrInvalidLevelValue  = errors.New("invalid_level_value")
	ErrInvalidFormatValue = errors.New("invalid_format_value")

	mu       sync.Mutex
	rotating *lumberjack.Logger
	console  io.Writer = os.Stderr
)

// Logger is the logger type handed around by the rest of the module.
type Logger = zerolog.Logger

//---------------------
// Initialization
//---------------------

// InitWithConfig sets up the global logger. Invalid values fall back to the
// defaults and are reported in the returned error.
func InitWithConfig(cfg *Config, module string) error {
	mu.Lock()
	defer mu.Unlock()

	c := *cfg
	ApplyDefaults(&c)

	var errs []error
	level, err := ParseLevel(c.Level)
	if err != nil {
		errs = append(errs, fmt.Errorf("level %q: %w", c.Level, err))
		level, _ = ParseLevel(defaultConfig.Level)
	}
	if _, err := ParseFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format %q: %w", c.Format, err))
		c.Format = defaultConfig.Format
	}

	if rotating != nil {
		_ = rotating.Close()
		rotating = nil
	}

	var writers []io.Writer
	if c.ToConsole {
		writers = append(writers, consoleWriter(&c))
	}
	if c.ToFile {
		rotating = &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		writers = append(writers, rotating)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(out).With().Timestamp().Str("module", module).Logger()
	return errors.Join(errs...)
}

// SetConsole redirects console output for subsequent Init calls.
func SetConsole(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
}

// Close flushes and closes the rotated log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotating == nil {
		return nil
	}
	err := rotating.Close()
	rotating = nil
	return err
}

func consoleWriter(c *Config) io.Writer {
	if strings.EqualFold(c.Format, string(OutputJSON)) {
		return console
	}
	if !IsTerminal(console) {
		return zerolog.ConsoleWriter{Out: console, NoColor: true, TimeFormat: "15:04:05"}
	}
	styles := DefaultStylesByName(c.Style)
	styles.Out = console
	return ConsoleWriterWithStyles(styles)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//---------------------
// Levels and formats
//---------------------

type OutputFormat string

const (
	OutputConsole OutputFormat = "console"
	OutputJSON    OutputFormat = "json"
)

func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, ErrInvalidLevelValue
	}
}

func ParseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "console":
		return OutputConsole, nil
	case "json":
		return OutputJSON, nil
	default:
		return OutputConsole, ErrInvalidFormatValue
	}
}

//---------------------
// Scoped loggers
//---------------------

// New returns a child of the global logger tagged with module.
func New(module string) Logger {
	return log.Logger.With().Str("module", module).Logger()
}


//---------------------
// Shortcuts
//---------------------

func Debug() *zerolog.Event { return log.Debug() }
func Info() *zerolog.Event  { return log.Info() }
func Warn() *zerolog.Event  { return log.Warn() }
func Error() *zerolog.Event { return log.Error() }
