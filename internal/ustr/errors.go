package ustr

import (
	"errors"
	"fmt"
)

// Errors returned by string operations.
var (
	// ErrOutOfRange indicates a codepoint or byte position outside the string.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyNeedle indicates an operation that requires a non-empty needle.
	ErrEmptyNeedle = errors.New("empty needle")

	// ErrForeignIterator indicates an iterator created from a different string.
	ErrForeignIterator = errors.New("iterator belongs to a different string")

	// ErrSyntax indicates numeric text that does not match the accepted grammar.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates numeric text whose value does not fit the target type.
	ErrRange = errors.New("value out of range")

	// ErrBadFormat indicates a format specification that does not fit its value.
	ErrBadFormat = errors.New("bad format specification")
)

// RangeError describes a rejected position or span.
type RangeError struct {
	Op    string
	Index int
	Count int
	Len   int
}

func (e *RangeError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("ustr.%s: [%d:+%d] with length %d: %v", e.Op, e.Index, e.Count, e.Len, ErrOutOfRange)
	}
	return fmt.Sprintf("ustr.%s: index %d with length %d: %v", e.Op, e.Index, e.Len, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ParseError records a failed numeric conversion.
type ParseError struct {
	Func  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ustr.%s: parsing %q: %v", e.Func, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
