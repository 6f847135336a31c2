package slist

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty      = errors.New("slist: list is empty")
	ErrOutOfRange = errors.New("slist: position out of range")
)

// Returned when a position is outside of the operation's valid range.
// errors.Is(err, ErrOutOfRange) is true for every RangeError.
type RangeError struct {
	Op   string
	Pos  int
	Size int
	// Insert accepts Pos == Size, the other operations don't
	Inclusive bool
}

func (e *RangeError) Error() string {
	closing := ")"
	if e.Inclusive {
		closing = "]"
	}
	return fmt.Sprintf("slist: %s: position %d out of range [0, %d%s", e.Op, e.Pos, e.Size, closing)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Returned when the configured clone function fails. Err is the clone
// function's error, unchanged.
type ElementError struct {
	Op  string
	Pos int
	Err error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("slist: %s: copying element at position %d: %v", e.Op, e.Pos, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
