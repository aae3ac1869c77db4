// Package x_dot renders a guess tree as a Graphviz graph.
package x_dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rskv-p/guess/pkg/x_guess"
)

// DefaultFile is where the graph is written when no path is configured.
const DefaultFile = "game_result.dot"

const (
	noColor  = "#ff7e40"
	yesColor = "#228b22"
)

var labelEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// Write emits tree as a DOT digraph. Questions are drawn as diamonds; each
// question has a "No" edge to its left child and a "Yes" edge to its right.
func Write(w io.Writer, tree *x_guess.Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	if tree.Len() > 0 {
		if err := writeNode(bw, tree, x_guess.Root); err != nil {
			return err
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func writeNode(w io.Writer, tree *x_guess.Tree, i x_guess.Index) error {
	n, err := tree.Node(i)
	if err != nil {
		return err
	}
	label := labelEscaper.Replace(n.Value)
	if n.IsLeaf() {
		_, err = fmt.Fprintf(w, "    N%d [label=\"%s\"]\n", i, label)
		return err
	}

	fmt.Fprintf(w, "    N%d [shape=diamond, label=\"%s\"]\n", i, label)
	if err := writeNode(w, tree, n.Left); err != nil {
		return err
	}
	if err := writeNode(w, tree, n.Right); err != nil {
		return err
	}
	writeEdge(w, i, n.Left, noColor, "No")
	_, err = writeEdge(w, i, n.Right, yesColor, "Yes")
	return err
}

func writeEdge(w io.Writer, from, to x_guess.Index, color, label string) (int, error) {
	return fmt.Fprintf(w, "    N%d -> N%d [color=\"%s\", fontcolor=\"%s\", label=\"%s\"]\n",
		from, to, color, color, label)
}

// WriteFile writes the graph of tree to path, replacing any previous file.
func WriteFile(path string, tree *x_guess.Tree) (err error) {
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Create(path)
	if err != nil {
		return &x_guess.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &x_guess.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := Write(f, tree); err != nil {
		return &x_guess.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
