package x_term

import (
	"strings"
	"testing"

	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsolePlaysSession(t *testing.T) {
	tree := x_guess.New("Cat")
	c, out := newConsole("n\n\nDog\nDoes it bark?\n")

	res, err := x_guess.NewSession(tree, c).Play()
	require.NoError(t, err)
	assert.Equal(t, x_guess.OutcomeLearned, res.Outcome)

	want := strings.Join([]string{
		"Is this Cat?",
		"Oh, that's your day...",
		"Who it was?",
		"Please, ask a question, that is NO for Cat and YES for Dog",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())

	c, out = newConsole("yes\ny\ny\n")
	res, err = x_guess.NewSession(tree, c).Play()
	require.NoError(t, err)
	assert.Equal(t, x_guess.OutcomeWon, res.Outcome)
	assert.Equal(t, "Dog", res.Guess)
	assert.Equal(t, "Does it bark?\nPlease answer y or n\nIs this Dog?\nI won again!\n", out.String())
}
