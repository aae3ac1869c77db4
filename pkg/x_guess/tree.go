// file:guess/pkg/x_guess/tree.go
// Package x_guess implements the self-extending guess tree. Questions sit at
// internal nodes and answers at leaves; a wrong guess is learned by splitting
// its leaf.
package x_guess

import (
	"fmt"
	"strings"

	"github.com/rskv-p/guess/pkg/x_tree"
)

type (
	Index = x_tree.Index
	Node  = x_tree.Node[string]
)

const (
	Root = x_tree.Root
	None = x_tree.None
)

// Tree is a decision tree of yes/no questions. The left child of a question
// is its "No" branch and the right child its "Yes" branch.
type Tree struct {
	nodes *x_tree.Tree[string]
}

// New returns a single-leaf tree holding placeholder. A placeholder that
// CheckValue rejects is replaced by DefaultPlaceholder; callers wanting an
// error validate it first.
func New(placeholder string) *Tree {
	v, err := CheckValue(placeholder)
	if err != nil {
		v = DefaultPlaceholder
	}
	nodes := x_tree.New[string]()
	_, _ = nodes.Seed(v)
	return &Tree{nodes: nodes}
}

func (t *Tree) Node(i Index) (Node, error)     { return t.nodes.Node(i) }
func (t *Tree) IsLeaf(i Index) (bool, error)   { return t.nodes.IsLeaf(i) }
func (t *Tree) Len() int                       { return t.nodes.Len() }
func (t *Tree) Walk(fn x_tree.Visitor[string]) { t.nodes.Walk(fn) }
func (t *Tree) Validate() error                { return t.nodes.Validate() }

// Clone returns an independent copy of the tree.
func (t *Tree) Clone() *Tree { return &Tree{nodes: t.nodes.Clone()} }

// Leaves returns the answers in left-to-right order.
func (t *Tree) Leaves() []string {
	var out []string
	t.nodes.Walk(func(_ Index, n Node) bool {
		if n.IsLeaf() {
			out = append(out, n.Value)
		}
		return true
	})
	return out
}

// Split turns the leaf at i into question, keeping its old answer as the
// "No" child and adding answer as the "Yes" child.
func (t *Tree) Split(i Index, answer, question string) error {
	leaf, err := t.nodes.IsLeaf(i)
	if err != nil {
		return err
	}
	if !leaf {
		return &x_tree.StructureError{Op: "split", Index: i, Err: ErrNotLeaf}
	}
	if answer, err = CheckValue(answer); err != nil {
		return err
	}
	if question, err = CheckValue(question); err != nil {
		return err
	}

	old, _ := t.nodes.Node(i)
	if _, err := t.nodes.Attach(i, old.Value); err != nil {
		return err
	}
	if _, err := t.nodes.Attach(i, answer); err != nil {
		return err
	}
	return t.nodes.Update(i, question)
}

// CheckValue normalizes a question or answer and rejects text the save
// format cannot carry.
func CheckValue(v string) (string, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return "", fmt.Errorf("%w: empty", ErrInvalidValue)
	case v == openBrace || v == closeBrace:
		return "", fmt.Errorf("%w: %q is reserved", ErrInvalidValue, v)
	case strings.ContainsAny(v, "\r\n"):
		return "", fmt.Errorf("%w: line break in %q", ErrInvalidValue, v)
	}
	return v, nil
}

// Equal reports whether a and b have the same shape and the same values.
func Equal(a, b *Tree) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	return equalAt(a, Root, b, Root)
}

func equalAt(a *Tree, i Index, b *Tree, j Index) bool {
	na, errA := a.Node(i)
	nb, errB := b.Node(j)
	if errA != nil || errB != nil {
		return false
	}
	if na.Value != nb.Value || na.IsLeaf() != nb.IsLeaf() {
		return false
	}
	if na.IsLeaf() {
		return true
	}
	return equalAt(a, na.Left, b, nb.Left) && equalAt(a, na.Right, b, nb.Right)
}
