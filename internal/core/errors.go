package core

import (
	"errors"
	"fmt"
)

// ErrEmptyFile is wrapped by a ParseError when the input has no header row.
var ErrEmptyFile = errors.New("empty file")

// FileError reports a path that could not be opened, read, or written.
type FileError struct {
	Op   string // "open", "read" or "write"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError reports input that is not valid comma-delimited text.
type ParseError struct {
	Path string // empty when reading from a stream
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid csv, line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("invalid csv %s, line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ColumnError reports a transform that needs a column the dataset lacks.
type ColumnError struct {
	Op     string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.Op, e.Column)
}

// TypeError reports a cell that should have been numeric by the time a
// transform saw it, i.e. ConvertDataTypes did not run first.
type TypeError struct {
	Op     string
	Column string
	Row    int
	Kind   Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: invalid number in column %q row %d: got %s, want numeric", e.Op, e.Column, e.Row, e.Kind)
}
