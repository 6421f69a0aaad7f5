// Package flerr defines the error taxonomy shared by the flist packages.
//
// Every error is a structural contract violation between a declared shape and
// the data it is applied to. None of them are retried or recovered locally.
package flerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeInvalidPattern   ErrorType = "InvalidPatternError"
	TypeShapeMismatch    ErrorType = "ShapeMismatchError"
	TypeArgumentMismatch ErrorType = "ArgumentMismatchError"
	TypeShape            ErrorType = "ShapeError"
	TypeRow              ErrorType = "RowError"
	TypeSchema           ErrorType = "SchemaError"
)

// FlistError is the interface for all flist errors.
type FlistError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for flist errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// InvalidPatternError reports a pattern node that is not a Name, Nested or Skip.
type InvalidPatternError struct {
	BaseError
	Path []int
	Node any
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("[%s] at %s: %s", e.ErrType, FormatPath(e.Path), e.Msg)
}

// ShapeMismatchError reports an address that does not fit the value it is
// resolved against. Depth is the position within Address that failed and
// Arity the number of children found there (-1 when the value was a leaf).
type ShapeMismatchError struct {
	BaseError
	Name    string
	Address []int
	Depth   int
	Arity   int
}

func (e *ShapeMismatchError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("[%s] %q at %s: %s", e.ErrType, e.Name, FormatPath(e.Address), e.Msg)
	}
	return fmt.Sprintf("[%s] at %s: %s", e.ErrType, FormatPath(e.Address), e.Msg)
}

// ArgumentMismatchError reports resolved names a bind target does not accept.
type ArgumentMismatchError struct {
	BaseError
	Names []string
}

// ShapeError reports a row that cannot be split into a key and a value.
type ShapeError struct {
	BaseError
	Index int
	Arity int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("[%s] row %d: %s", e.ErrType, e.Index, e.Msg)
}

// RowError reports a text row the reader could not turn into a tuple.
// Column is 0-based, or -1 when the row as a whole is wrong.
type RowError struct {
	BaseError
	Line   int
	Column int
	Err    error
}

func (e *RowError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("[%s] line %d column %d: %s", e.ErrType, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("[%s] line %d: %s", e.ErrType, e.Line, e.Msg)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// SchemaError reports an invalid schema file.
type SchemaError struct {
	BaseError
	FilePath string
}

func (e *SchemaError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.FilePath, e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// MultiError collects multiple flist errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if fe, ok := m.Errors[0].(FlistError); ok {
			return fe.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// FormatPath renders an index path as "[0 2 1]"; the empty path is "[]".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprint(p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// NewInvalidPatternError creates a new InvalidPatternError.
func NewInvalidPatternError(path []int, node any) *InvalidPatternError {
	return &InvalidPatternError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("expected a name, a nested pattern or a skip, got %T (%v)", node, node),
			ErrType: TypeInvalidPattern,
		},
		Path: append([]int(nil), path...),
		Node: node,
	}
}

// NewShapeMismatchError creates a new ShapeMismatchError.
func NewShapeMismatchError(address []int, depth, arity int) *ShapeMismatchError {
	var msg string
	if arity < 0 {
		msg = fmt.Sprintf("cannot index leaf value at depth %d", depth)
	} else {
		msg = fmt.Sprintf("index %d out of range at depth %d (arity %d)", address[depth], depth, arity)
	}
	return &ShapeMismatchError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeShapeMismatch,
		},
		Address: append([]int(nil), address...),
		Depth:   depth,
		Arity:   arity,
	}
}

// NewArgumentMismatchError creates a new ArgumentMismatchError for names the
// target does not accept.
func NewArgumentMismatchError(names ...string) *ArgumentMismatchError {
	return &ArgumentMismatchError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("target does not accept %s", strings.Join(names, ", ")),
			ErrType: TypeArgumentMismatch,
		},
		Names: names,
	}
}

// NewArgumentMismatchErrorf creates an ArgumentMismatchError with a custom message.
func NewArgumentMismatchErrorf(name string, format string, args ...any) *ArgumentMismatchError {
	return &ArgumentMismatchError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf(format, args...),
			ErrType: TypeArgumentMismatch,
		},
		Names: []string{name},
	}
}

// NewShapeError creates a new ShapeError for the row at index.
func NewShapeError(index, arity int, msg string) *ShapeError {
	return &ShapeError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeShape,
		},
		Index: index,
		Arity: arity,
	}
}

// NewRowError creates a RowError for a whole line.
func NewRowError(line int, msg string) *RowError {
	return &RowError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeRow,
		},
		Line:   line,
		Column: -1,
	}
}

// NewColumnError creates a RowError wrapping a column parser failure.
func NewColumnError(line, column int, err error) *RowError {
	return &RowError{
		BaseError: BaseError{
			Msg:     err.Error(),
			ErrType: TypeRow,
		},
		Line:   line,
		Column: column,
		Err:    err,
	}
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(filePath string, msg string) *SchemaError {
	return &SchemaError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeSchema,
		},
		FilePath: filePath,
	}
}
