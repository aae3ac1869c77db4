// Package x_term runs the game protocol over a line-oriented terminal.
package x_term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/rskv-p/guess/pkg/x_log"
	"github.com/rskv-p/guess/pkg/x_speech"
)

const (
	AnswerYes   = "y"
	AnswerNo    = "n"
	AnswerWords = "Please answer y or n"
)

// Console is a Prompter reading answers from in and writing prompts to out.
type Console struct {
	ctx     context.Context
	in      *bufio.Reader
	out     io.Writer
	speaker x_speech.Speaker
	styled  bool

	promptStyle lipgloss.Style
	textStyle   lipgloss.Style
	hintStyle   lipgloss.Style
}

type Option func(*Console)

// WithSpeaker voices every prompt and message through s.
func WithSpeaker(s x_speech.Speaker) Option {
	return func(c *Console) {
		if s != nil {
			c.speaker = s
		}
	}
}

// WithStyle forces styled output on or off.
func WithStyle(on bool) Option {
	return func(c *Console) { c.styled = on }
}

// WithContext bounds speech calls by ctx.
func WithContext(ctx context.Context) Option {
	return func(c *Console) { c.ctx = ctx }
}

// New returns a Console. Output is styled only when out is a terminal.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		ctx:     context.Background(),
		in:      bufio.NewReader(in),
		out:     out,
		speaker: x_speech.Nop{},
		styled:  x_log.IsTerminal(out),

		promptStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(x_log.ColorBlue40)),
		textStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGreen50)),
		hintStyle:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(x_log.ColorOrange40)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

//---------------------
// Prompter
//---------------------

func (c *Console) Say(text string) error {
	return c.show(c.textStyle, text)
}

// AskYesNo accepts exactly "y" or "n". Blank lines are skipped and anything
// else is answered with a hint before asking again.
func (c *Console) AskYesNo(prompt string) (bool, error) {
	if err := c.show(c.promptStyle, prompt); err != nil {
		return false, err
	}
	for {
		line, err := c.readLine()
		if err != nil {
			return false, err
		}
		switch line {
		case "":
			continue
		case AnswerYes:
			return true, nil
		case AnswerNo:
			return false, nil
		}
		if err := c.show(c.hintStyle, AnswerWords); err != nil {
			return false, err
		}
	}
}

// AskLine returns the first non-blank line, trimmed.
func (c *Console) AskLine(prompt string) (string, error) {
	if err := c.show(c.promptStyle, prompt); err != nil {
		return "", err
	}
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

//---------------------
// Helpers
//---------------------

func (c *Console) show(style lipgloss.Style, text string) error {
	c.speak(text)
	if c.styled {
		text = style.Render(text)
	}
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}
	return nil
}

func (c *Console) speak(text string) {
	if err := c.speaker.Speak(c.ctx, text); err != nil {
		log.Warn().Err(err).Msg("speech failed")
	}
}

// readLine returns io.ErrUnexpectedEOF once input is exhausted.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimSpace(line), nil
}
