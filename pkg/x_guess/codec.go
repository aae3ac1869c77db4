package x_guess

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rskv-p/guess/pkg/x_tree"
)

//---------------------
// Encode
//---------------------

// Encode writes the tree in the nested-brace format:
//
//	{
//	<root value>
//	{
//	  <left subtree>
//	}
//	  <right subtree>
//	}
//
// Every node writes its value and an opening brace at 2*depth spaces; an
// internal node then writes its left subtree, a closing brace and its right
// subtree.
func (t *Tree) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(openBrace + "\n")
	if t.Len() > 0 {
		if err := t.encodeNode(bw, Root); err != nil {
			return err
		}
	}
	bw.WriteString(closeBrace + "\n")
	return bw.Flush()
}

func (t *Tree) encodeNode(w *bufio.Writer, i Index) error {
	n, err := t.Node(i)
	if err != nil {
		return err
	}
	pad := strings.Repeat(indentUnit, n.Depth)

	w.WriteString(pad + n.Value + "\n")
	w.WriteString(pad + openBrace + "\n")
	if n.IsLeaf() {
		return nil
	}
	if err := t.encodeNode(w, n.Left); err != nil {
		return err
	}
	w.WriteString(pad + closeBrace + "\n")
	return t.encodeNode(w, n.Right)
}

// String returns the encoded tree.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Encode(&sb)
	return sb.String()
}

//---------------------
// Decode
//---------------------

// Decode reads a tree written by Encode. name is used in error messages.
//
// The parent of every value is recovered from brace nesting alone: "{" makes
// the last value the attachment point, "}" moves the attachment point up one
// level, and a value goes to the nearest ancestor of the attachment point
// that still has a free child slot.
func Decode(r io.Reader, name string) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}

	d := &decoder{
		name:  name,
		nodes: x_tree.New[string](),
		cur:   None,
		last:  None,
	}
	for n, line := range strings.Split(string(data), "\n") {
		tok := strings.TrimSpace(line)
		if tok == "" {
			continue
		}
		if err := d.token(n+1, tok); err != nil {
			return nil, err
		}
	}
	if err := d.finish(); err != nil {
		return nil, err
	}
	return &Tree{nodes: d.nodes}, nil
}

// decoder holds the cursor state of Decode.
type decoder struct {
	name  string
	nodes *x_tree.Tree[string]

	opened     bool
	expectOpen bool
	cur        Index
	last       Index
	line       int
}

func (d *decoder) token(line int, tok string) error {
	d.line = line

	if !d.opened {
		if tok != openBrace {
			return d.fail(tok, ErrExpectedOpen)
		}
		d.opened = true
		return nil
	}
	if d.expectOpen && tok != openBrace {
		return d.fail(tok, ErrExpectedOpen)
	}

	switch tok {
	case openBrace:
		if !d.expectOpen {
			return d.fail(tok, ErrUnexpectedOpen)
		}
		d.cur = d.last
		d.expectOpen = false

	case closeBrace:
		if d.cur == None {
			return d.fail(tok, ErrUnexpectedClose)
		}
		n, err := d.nodes.Node(d.cur)
		if err != nil {
			return d.fail(tok, err)
		}
		d.cur = n.Parent

	default:
		idx, err := d.attach(tok)
		if err != nil {
			return d.fail(tok, err)
		}
		d.last = idx
		d.expectOpen = true
	}
	return nil
}

func (d *decoder) attach(value string) (Index, error) {
	if d.cur == None {
		if !d.nodes.Empty() {
			return None, ErrNoFreeSlot
		}
		return d.nodes.Seed(value)
	}
	for {
		free, err := d.nodes.HasFreeSlot(d.cur)
		if err != nil {
			return None, err
		}
		if free {
			return d.nodes.Attach(d.cur, value)
		}
		n, _ := d.nodes.Node(d.cur)
		if n.Parent == None {
			return None, ErrNoFreeSlot
		}
		d.cur = n.Parent
	}
}

func (d *decoder) finish() error {
	switch {
	case !d.opened:
		return &ParseError{File: d.name, Err: ErrEmptySave}
	case d.nodes.Empty():
		return &ParseError{File: d.name, Line: d.line, Err: fmt.Errorf("%w: no root value", ErrIncomplete)}
	case d.expectOpen:
		return &ParseError{File: d.name, Line: d.line, Err: fmt.Errorf("%w: value without opening brace", ErrIncomplete)}
	}
	if err := d.nodes.Validate(); err != nil {
		return &ParseError{File: d.name, Line: d.line, Err: errors.Join(ErrIncomplete, err)}
	}
	return nil
}

func (d *decoder) fail(tok string, err error) error {
	return &ParseError{File: d.name, Line: d.line, Token: tok, Err: err}
}
