package x_guess

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidValue = errors.New("x_guess: invalid node value")
	ErrNotLeaf      = errors.New("x_guess: node is not a leaf")
	ErrNotFound     = errors.New("x_guess: no such answer")

	ErrEmptySave       = errors.New("empty save file")
	ErrExpectedOpen    = errors.New("expected opening brace")
	ErrUnexpectedOpen  = errors.New("opening brace without a value")
	ErrUnexpectedClose = errors.New("closing brace above top level")
	ErrNoFreeSlot      = errors.New("no free child slot for value")
	ErrIncomplete      = errors.New("incomplete tree")
)

// ParseError reports a malformed save file.
type ParseError struct {
	File  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s: %v", file, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v (token %q)", file, e.Line, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failed read or write of a save file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
