package x_term

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	said []string
	err  error
}

func (r *recorder) Speak(_ context.Context, text string) error {
	r.said = append(r.said, text)
	return r.err
}

func newConsole(input string, opts ...Option) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, opts...), &out
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
		out   string
	}{
		{"yes", "y\n", true, "Q?\n"},
		{"no", "n\n", false, "Q?\n"},
		{"blank lines skipped", "\n  \nn\n", false, "Q?\n"},
		{"padding trimmed", "  y \r\n", true, "Q?\n"},
		{"no trailing newline", "y", true, "Q?\n"},
		{"reprompt", "maybe\nY\ny\n", true, "Q?\n" + AnswerWords + "\n" + AnswerWords + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out := newConsole(tt.input)
			got, err := c.AskYesNo("Q?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.out, out.String())
		})
	}
}

func TestAskYesNo_EOF(t *testing.T) {
	for _, input := range []string{"", "\n\n", "what\n"} {
		c, _ := newConsole(input)
		_, err := c.AskYesNo("Q?")
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "input %q", input)
	}
}

func TestAskLine(t *testing.T) {
	c, out := newConsole("\n  Dog  \nDoes it bark?\n")

	v, err := c.AskLine("Who it was?")
	require.NoError(t, err)
	assert.Equal(t, "Dog", v)

	v, err = c.AskLine("Question?")
	require.NoError(t, err)
	assert.Equal(t, "Does it bark?", v)

	_, err = c.AskLine("More?")
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	assert.Equal(t, "Who it was?\nQuestion?\nMore?\n", out.String())
}

func TestSay(t *testing.T) {
	c, out := newConsole("")
	require.NoError(t, c.Say("I won again!"))
	assert.Equal(t, "I won again!\n", out.String())
}

func TestSpeakerHearsEverything(t *testing.T) {
	rec := &recorder{}
	c, _ := newConsole("x\nn\n", WithSpeaker(rec))

	require.NoError(t, c.Say("hello"))
	_, err := c.AskYesNo("Is this Cat?")
	require.NoError(t, err)

	assert.Equal(t, []string{"hello", "Is this Cat?", AnswerWords}, rec.said)
}

func TestSpeakerFailureIgnored(t *testing.T) {
	rec := &recorder{err: errors.New("no audio")}
	c, out := newConsole("y\n", WithSpeaker(rec))

	ok, err := c.AskYesNo("Q?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Q?\n", out.String())
}

func TestStyledOutputKeepsText(t *testing.T) {
	c, out := newConsole("", WithStyle(true))
	require.NoError(t, c.Say("I won again!"))
	assert.Contains(t, out.String(), "I won again!")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriteError(t *testing.T) {
	c := New(strings.NewReader("y\n"), failWriter{})
	_, err := c.AskYesNo("Q?")
	assert.Error(t, err)
}
