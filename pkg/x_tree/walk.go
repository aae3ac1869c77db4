package x_tree

// Visitor is called for each node of a walk. Returning false stops the walk.
type Visitor[T any] func(i Index, n Node[T]) bool

// Walk visits nodes depth-first from the root, parent before children and left
// subtree before right subtree. It reports whether the walk ran to completion.
func (t *Tree[T]) Walk(fn Visitor[T]) bool {
	if t.Empty() {
		return true
	}
	return t.walk(Root, fn)
}

func (t *Tree[T]) walk(i Index, fn Visitor[T]) bool {
	n, err := t.Node(i)
	if err != nil {
		return false
	}
	if !fn(i, n) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	return t.walk(n.Left, fn) && t.walk(n.Right, fn)
}

// PathToRoot returns the indices from i up to and including the root.
func (t *Tree[T]) PathToRoot(i Index) ([]Index, error) {
	var path []Index
	for i != None {
		n, err := t.Node(i)
		if err != nil {
			return nil, err
		}
		path = append(path, i)
		i = n.Parent
	}
	return path, nil
}

// Validate checks that no node has a single child and that parent and child
// links agree. A parent always has a lower index than its children.
func (t *Tree[T]) Validate() error {
	nodes := t.Nodes()
	for idx, n := range nodes {
		i := Index(idx)
		if i == Root {
			if n.Parent != None {
				return structErr("validate", i, ErrBrokenLink)
			}
		} else if n.Parent == None || n.Parent >= i {
			return structErr("validate", i, ErrBrokenLink)
		}

		if (n.Left == None) != (n.Right == None) {
			return structErr("validate", i, ErrSingleChild)
		}
		for _, c := range []Index{n.Left, n.Right} {
			if c == None {
				continue
			}
			if c <= i || int(c) >= len(nodes) {
				return structErr("validate", i, ErrBrokenLink)
			}
			child := nodes[c]
			if child.Parent != i || child.Depth != n.Depth+1 {
				return structErr("validate", c, ErrBrokenLink)
			}
		}
	}
	return nil
}
