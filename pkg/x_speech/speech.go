// Package x_speech reads game text aloud through an external command.
package x_speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/shlex"
)

// DefaultTimeout bounds a single utterance when none is configured.
const DefaultTimeout = 10 * time.Second

var ErrEmptyCommand = errors.New("speech: empty command")

// Speaker voices a line of text.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Nop is the silent speaker.
type Nop struct{}

func (Nop) Speak(context.Context, string) error { return nil }

// Command pipes each line into a freshly started process, e.g. "festival --tts".
type Command struct {
	name    string
	args    []string
	timeout time.Duration
	stdout  io.Writer
}

// Option configures a Command.
type Option func(*Command)

// WithStdout sends the command's output to w instead of discarding it.
func WithStdout(w io.Writer) Option {
	return func(c *Command) { c.stdout = w }
}

// New returns Nop for an empty command line, otherwise a Command.
func New(cmdline string, timeout time.Duration, opts ...Option) (Speaker, error) {
	if strings.TrimSpace(cmdline) == "" {
		return Nop{}, nil
	}
	return NewCommand(cmdline, timeout, opts...)
}

// NewCommand splits cmdline with shell quoting rules.
func NewCommand(cmdline string, timeout time.Duration, opts ...Option) (*Command, error) {
	parts, err := shlex.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("speech: parse %q: %w", cmdline, err)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Command{
		name:    parts[0],
		args:    parts[1:],
		timeout: timeout,
		stdout:  io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// String returns the program name and arguments.
func (c *Command) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Speak runs the command once with text on stdin and waits for it to exit.
func (c *Command) Speak(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdin = strings.NewReader(text + "\n")
	cmd.Stdout = c.stdout
	cmd.Stderr = &stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("speech: %s: %w", c.name, ctx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("speech: %s: %w: %s", c.name, err, msg)
		}
		return fmt.Errorf("speech: %s: %w", c.name, err)
	}
	return nil
}
