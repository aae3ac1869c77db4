// file:guess/pkg/x_buf/buffer.go
// Package x_buf provides a growable, append-only array with deep-copy semantics.
package x_buf

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("x_buf: index out of range")

// RangeError reports an access outside the populated part of a buffer.
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("x_buf: index %d out of range [0,%d)", e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

//---------------------
// Buffer
//---------------------

// Buffer holds elements of one type in a contiguous block that doubles
// whenever an append would exceed the allocated capacity.
type Buffer[T any] struct {
	data []T
	size int
}

// New returns a buffer with the given starting capacity (at least 1).
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// Add appends v, growing the storage when it is full.
func (b *Buffer[T]) Add(v T) {
	if b.data == nil {
		b.data = make([]T, 1)
	}
	if b.size == len(b.data) {
		b.grow()
	}
	b.data[b.size] = v
	b.size++
}

// Get returns a copy of the element at i.
func (b *Buffer[T]) Get(i int) (T, error) {
	if err := b.check(i); err != nil {
		var zero T
		return zero, err
	}
	return b.data[i], nil
}

// Set overwrites the element at i.
func (b *Buffer[T]) Set(i int, v T) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.data[i] = v
	return nil
}

// Ref returns a pointer into the storage for in-place edits. The pointer is
// invalidated by the next Add.
func (b *Buffer[T]) Ref(i int) (*T, error) {
	if err := b.check(i); err != nil {
		return nil, err
	}
	return &b.data[i], nil
}

// Len returns the number of populated elements.
func (b *Buffer[T]) Len() int { return b.size }

// Cap returns the allocated capacity.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// ToSlice exports exactly Len elements into a freshly allocated slice.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, b.size)
	copy(out, b.data[:b.size])
	return out
}

// Clone returns an independent copy of the populated elements. The clone keeps
// the same capacity but never shares storage with b.
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := &Buffer[T]{data: make([]T, max(len(b.data), 1)), size: b.size}
	copy(c.data, b.data[:b.size])
	return c
}

//---------------------
// Internals
//---------------------

func (b *Buffer[T]) grow() {
	next := make([]T, len(b.data)*2)
	copy(next, b.data[:b.size])
	b.data = next
}

func (b *Buffer[T]) check(i int) error {
	if i < 0 || i >= b.size {
		return &RangeError{Index: i, Len: b.size}
	}
	return nil
}
