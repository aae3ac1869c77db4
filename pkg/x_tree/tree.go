// file:guess/pkg/x_tree/tree.go
// Package x_tree implements a binary tree whose nodes live in a growable array
// and refer to each other by position.
package x_tree

import (
	"github.com/rskv-p/guess/pkg/x_buf"
)

// Index is the permanent identity of a node: its position in the store.
type Index int

const (
	// None marks an absent child and the parent of the root.
	None Index = -1
	// Root is the index of the first node ever added.
	Root Index = 0
)

// Node is one entry of the tree.
type Node[T any] struct {
	Value  T
	Parent Index
	Left   Index
	Right  Index
	Depth  int
}

// IsLeaf reports whether the node has no children.
func (n Node[T]) IsLeaf() bool { return n.Left == None && n.Right == None }

// IsFull reports whether both child slots are taken.
func (n Node[T]) IsFull() bool { return n.Left != None && n.Right != None }

//---------------------
// Tree
//---------------------

// Tree owns its nodes exclusively; copies are made with Clone.
type Tree[T any] struct {
	nodes *x_buf.Buffer[Node[T]]
}

// New returns an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{nodes: x_buf.New[Node[T]](1)}
}

// Seed creates the root node.
func (t *Tree[T]) Seed(value T) (Index, error) {
	if t.nodes.Len() > 0 {
		return None, structErr("seed", Root, ErrRootExists)
	}
	t.nodes.Add(Node[T]{Value: value, Parent: None, Left: None, Right: None})
	return Root, nil
}

// Attach appends a node under parent, filling Left first and Right second.
func (t *Tree[T]) Attach(parent Index, value T) (Index, error) {
	p, err := t.ref("attach", parent)
	if err != nil {
		return None, err
	}
	if p.IsFull() {
		return None, structErr("attach", parent, ErrParentFull)
	}

	idx := Index(t.nodes.Len())
	if p.Left == None {
		p.Left = idx
	} else {
		p.Right = idx
	}
	depth := p.Depth + 1

	// p is invalid after Add
	t.nodes.Add(Node[T]{Value: value, Parent: parent, Left: None, Right: None, Depth: depth})
	return idx, nil
}

// Update overwrites the value of a node without touching its links.
func (t *Tree[T]) Update(i Index, value T) error {
	n, err := t.ref("update", i)
	if err != nil {
		return err
	}
	n.Value = value
	return nil
}

// Node returns a copy of the node at i.
func (t *Tree[T]) Node(i Index) (Node[T], error) {
	n, err := t.ref("node", i)
	if err != nil {
		return Node[T]{}, err
	}
	return *n, nil
}

func (t *Tree[T]) IsLeaf(i Index) (bool, error) {
	n, err := t.ref("is_leaf", i)
	if err != nil {
		return false, err
	}
	return n.IsLeaf(), nil
}

// HasFreeSlot reports whether another child can be attached to i.
func (t *Tree[T]) HasFreeSlot(i Index) (bool, error) {
	n, err := t.ref("has_free_slot", i)
	if err != nil {
		return false, err
	}
	return !n.IsFull(), nil
}

// Left returns the "No" child of an internal node.
func (t *Tree[T]) Left(i Index) (Index, error) {
	n, err := t.internal("left", i)
	if err != nil {
		return None, err
	}
	return n.Left, nil
}

// Right returns the "Yes" child of an internal node.
func (t *Tree[T]) Right(i Index) (Index, error) {
	n, err := t.internal("right", i)
	if err != nil {
		return None, err
	}
	return n.Right, nil
}

func (t *Tree[T]) Len() int    { return t.nodes.Len() }
func (t *Tree[T]) Empty() bool { return t.nodes.Len() == 0 }

// Clone returns a tree that shares no storage with t.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{nodes: t.nodes.Clone()}
}

// Nodes exports all nodes in index order.
func (t *Tree[T]) Nodes() []Node[T] {
	return t.nodes.ToSlice()
}

//---------------------
// Internals
//---------------------

func (t *Tree[T]) ref(op string, i Index) (*Node[T], error) {
	n, err := t.nodes.Ref(int(i))
	if err != nil {
		return nil, structErr(op, i, err)
	}
	return n, nil
}

func (t *Tree[T]) internal(op string, i Index) (*Node[T], error) {
	n, err := t.ref(op, i)
	if err != nil {
		return nil, err
	}
	if n.IsLeaf() {
		return nil, structErr(op, i, ErrLeafHasNoChildren)
	}
	return n, nil
}
