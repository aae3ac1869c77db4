package x_guess_test

import (
	"testing"

	"github.com/rskv-p/guess/pkg/x_guess"
	"github.com/rskv-p/guess/pkg/x_tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsPlaceholder(t *testing.T) {
	tr := x_guess.New("")
	require.Equal(t, 1, tr.Len())

	root, err := tr.Node(x_guess.Root)
	require.NoError(t, err)
	assert.Equal(t, x_guess.DefaultPlaceholder, root.Value)
	assert.True(t, root.IsLeaf())
}

func TestNew_InvalidPlaceholderFallsBack(t *testing.T) {
	for _, p := range []string{"   ", "{", "}"} {
		root, err := x_guess.New(p).Node(x_guess.Root)
		require.NoError(t, err)
		assert.Equal(t, x_guess.DefaultPlaceholder, root.Value, "placeholder %q", p)
	}

	root, _ := x_guess.New("  Somebody ").Node(x_guess.Root)
	assert.Equal(t, "Somebody", root.Value)
}

func TestSplit_LearnsNewAnswer(t *testing.T) {
	tr := x_guess.New("Dog")

	require.NoError(t, tr.Split(x_guess.Root, "Cat", "Does it bark?"))

	root, _ := tr.Node(x_guess.Root)
	left, _ := tr.Node(root.Left)
	right, _ := tr.Node(root.Right)

	assert.Equal(t, "Does it bark?", root.Value)
	assert.Equal(t, "Dog", left.Value)
	assert.Equal(t, "Cat", right.Value)
	assert.True(t, left.IsLeaf())
	assert.True(t, right.IsLeaf())
}

func TestSplit_Rejects(t *testing.T) {
	tr := animals(t)

	err := tr.Split(x_guess.Root, "Cow", "Does it moo?")
	assert.ErrorIs(t, err, x_guess.ErrNotLeaf)
	var se *x_tree.StructureError
	assert.ErrorAs(t, err, &se)

	assert.ErrorIs(t, tr.Split(2, "   ", "Is it wet?"), x_guess.ErrInvalidValue)
	assert.ErrorIs(t, tr.Split(2, "Eel", "}"), x_guess.ErrInvalidValue)
	assert.ErrorIs(t, tr.Split(2, "Eel", "two\nlines"), x_guess.ErrInvalidValue)
	assert.ErrorIs(t, tr.Split(42, "Eel", "Is it long?"), x_tree.ErrOutOfRange)

	assert.Equal(t, 5, tr.Len())
}

func TestSplit_TrimsValues(t *testing.T) {
	tr := x_guess.New("Dog")
	require.NoError(t, tr.Split(x_guess.Root, "  Cat ", " Does it meow?\t"))

	assert.Equal(t, []string{"Dog", "Cat"}, tr.Leaves())
	root, _ := tr.Node(x_guess.Root)
	assert.Equal(t, "Does it meow?", root.Value)
}

func TestSplit_NeverLeavesSingleChild(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tr := randomTree(t, seed, 30)
		require.NoError(t, tr.Validate())

		tr.Walk(func(i x_guess.Index, n x_guess.Node) bool {
			one := (n.Left == x_guess.None) != (n.Right == x_guess.None)
			assert.False(t, one, "seed %d node %d has one child", seed, i)
			return true
		})
	}
}

func TestEqualAndClone(t *testing.T) {
	a := animals(t)
	b := a.Clone()
	assert.True(t, x_guess.Equal(a, b))

	require.NoError(t, b.Split(2, "Cow", "Does it moo?"))
	assert.False(t, x_guess.Equal(a, b))
	assert.Equal(t, 5, a.Len())

	c := animals(t)
	root, _ := c.Node(x_guess.Root)
	require.NoError(t, c.Split(root.Right, "Lion", "Is it big?"))
	assert.False(t, x_guess.Equal(a, c))
}
