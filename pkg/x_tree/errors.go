package x_tree

import (
	"errors"
	"fmt"

	"github.com/rskv-p/guess/pkg/x_buf"
)

var (
	ErrOutOfRange        = x_buf.ErrOutOfRange
	ErrRootExists        = errors.New("x_tree: root already exists")
	ErrParentFull        = errors.New("x_tree: parent already has two children")
	ErrLeafHasNoChildren = errors.New("x_tree: leaf has no children")
	ErrSingleChild       = errors.New("x_tree: node has exactly one child")
	ErrBrokenLink        = errors.New("x_tree: parent and child links disagree")
)

// StructureError reports a violated tree invariant.
type StructureError struct {
	Op    string
	Index Index
	Err   error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s node %d: %v", e.Op, e.Index, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

func structErr(op string, i Index, err error) error {
	return &StructureError{Op: op, Index: i, Err: err}
}
