package x_guess

import (
	"fmt"
	"io"
)

// Step is one edge of a root-to-leaf path: the question asked and whether the
// path follows its "Yes" branch.
type Step struct {
	Question string
	Yes      bool
}

// Path leads from the root to the leaf holding Target.
type Path struct {
	Target string
	Leaf   Index
	Steps  []Step
}

// Affirmations returns the questions answered "Yes" on the way to the leaf,
// nearest to the leaf first.
func (p Path) Affirmations() []string {
	var out []string
	for i := len(p.Steps) - 1; i >= 0; i-- {
		if p.Steps[i].Yes {
			out = append(out, p.Steps[i].Question)
		}
	}
	return out
}

// WriteAffirmations prints each affirmation as "<question> - YES!".
func (p Path) WriteAffirmations(w io.Writer) error {
	for _, q := range p.Affirmations() {
		if _, err := fmt.Fprintln(w, q+YesMark); err != nil {
			return err
		}
	}
	return nil
}

// WhoIs finds the first leaf, left subtree before right, whose value equals
// target and returns the path to it.
func (t *Tree) WhoIs(target string) (Path, bool) {
	if t.Len() == 0 {
		return Path{}, false
	}
	leaf, ok := t.findLeaf(Root, target)
	if !ok {
		return Path{}, false
	}
	steps, err := t.stepsTo(leaf)
	if err != nil {
		return Path{}, false
	}
	return Path{Target: target, Leaf: leaf, Steps: steps}, true
}

func (t *Tree) findLeaf(i Index, target string) (Index, bool) {
	n, err := t.Node(i)
	if err != nil {
		return None, false
	}
	if n.IsLeaf() {
		return i, n.Value == target
	}
	if found, ok := t.findLeaf(n.Left, target); ok {
		return found, true
	}
	return t.findLeaf(n.Right, target)
}

func (t *Tree) stepsTo(leaf Index) ([]Step, error) {
	up, err := t.nodes.PathToRoot(leaf)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, 0, len(up)-1)
	for k := len(up) - 1; k > 0; k-- {
		parent, err := t.Node(up[k])
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Question: parent.Value, Yes: parent.Right == up[k-1]})
	}
	return steps, nil
}

//---------------------
// Compare
//---------------------

// Comparison lines up the paths of two answers.
type Comparison struct {
	A, B   Path
	Common []Step
	// Split is the question that tells A from B; Split.Yes is A's answer.
	// It is nil when A and B are the same leaf.
	Split *Step
	RestA []Step
	RestB []Step
}

// Compare reports what two answers share and where they part.
func (t *Tree) Compare(a, b string) (Comparison, error) {
	pa, ok := t.WhoIs(a)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", ErrNotFound, a)
	}
	pb, ok := t.WhoIs(b)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", ErrNotFound, b)
	}

	c := Comparison{A: pa, B: pb}
	k := 0
	for k < len(pa.Steps) && k < len(pb.Steps) && pa.Steps[k] == pb.Steps[k] {
		k++
	}
	c.Common = pa.Steps[:k]
	if pa.Leaf == pb.Leaf {
		return c, nil
	}

	split := pa.Steps[k]
	c.Split = &split
	c.RestA = pa.Steps[k+1:]
	c.RestB = pb.Steps[k+1:]
	return c, nil
}
