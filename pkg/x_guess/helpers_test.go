package x_guess_test

import (
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/stretchr/testify/require"
)

// script is a Prompter fed from a fixed list of replies. Everything shown to
// the player is recorded in out.
type script struct {
	replies []string
	out     []string
}

func newScript(replies ...string) *script { return &script{replies: replies} }

func (s *script) next() (string, error) {
	if len(s.replies) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r, nil
}

func (s *script) Say(text string) error {
	s.out = append(s.out, text)
	return nil
}

func (s *script) AskYesNo(prompt string) (bool, error) {
	s.out = append(s.out, prompt)
	r, err := s.next()
	if err != nil {
		return false, err
	}
	switch r {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, fmt.Errorf("scripted reply %q is not y/n", r)
}

func (s *script) AskLine(prompt string) (string, error) {
	s.out = append(s.out, prompt)
	return s.next()
}

// animals builds:
//
//	Does it meow?
//	  no:  Does it bark?
//	         no:  Fish
//	         yes: Dog
//	  yes: Cat
func animals(t *testing.T) *x_guess.Tree {
	t.Helper()
	tr := x_guess.New("Fish")
	require.NoError(t, tr.Split(x_guess.Root, "Cat", "Does it meow?"))
	require.NoError(t, tr.Split(1, "Dog", "Does it bark?"))
	return tr
}

// randomTree grows a tree through n splits at random leaves.
func randomTree(t *testing.T, seed int64, n int) *x_guess.Tree {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	tr := x_guess.New("a0")
	for k := 1; k <= n; k++ {
		var leaves []x_guess.Index
		tr.Walk(func(i x_guess.Index, node x_guess.Node) bool {
			if node.IsLeaf() {
				leaves = append(leaves, i)
			}
			return true
		})
		leaf := leaves[rng.Intn(len(leaves))]
		require.NoError(t, tr.Split(leaf, fmt.Sprintf("a%d", k), fmt.Sprintf("q%d ?", k)))
	}
	return tr
}
