// Package perr defines the programmer-error kinds raised by the parsing
// core. These are never part of ordinary control flow: a Parser reports
// ordinary parse failure by returning its result's ok flag as false, never
// by raising a perr.Error.
package perr

import (
	"fmt"
)

// Kind classifies a programmer-error condition raised by the core.
type Kind int

const (
	// InvalidPosition is raised by TextModel.Assert when a (line, col) pair
	// does not address a line or line-end.
	InvalidPosition Kind = iota

	// InvalidLayout is raised by join when a child's span falls before the
	// running cursor, or the last child ends after the computed end.
	InvalidLayout

	// InvalidArguments is raised by join when no children are given and no
	// start/end override is supplied.
	InvalidArguments

	// AmbiguousSelection is raised by selectUnique/collectUnique when the
	// match count is not exactly one.
	AmbiguousSelection

	// InternalError is raised when the LR driver reaches a state its own
	// invariants say is unreachable (e.g. Accept with a non-singleton
	// buffer).
	InternalError
)

// String renders a Kind as the identifier used in Error.Error().
func (k Kind) String() string {
	switch k {
	case InvalidPosition:
		return "InvalidPosition"
	case InvalidLayout:
		return "InvalidLayout"
	case InvalidArguments:
		return "InvalidArguments"
	case AmbiguousSelection:
		return "AmbiguousSelection"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownError"
	}
}

// Pos is the position attached to an Error, when one is known. It is kept
// as plain fields rather than importing pkg/itext so that pkg/itext may, in
// turn, depend on perr for Assert without an import cycle.
type Pos struct {
	Line   int
	Col    int
	HasPos bool
}

// Error is a structured, fail-fast programmer error. Every field beyond
// Kind is optional; Error() joins only the parts that are set, the way the
// teacher's configuration ValidationError does.
type Error struct {
	Kind    Kind
	Message string
	Pos     Pos
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.HasPos {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Col, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New constructs an Error with no position.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// At constructs an Error carrying the given position.
func At(kind Kind, line, col int, message string) *Error {
	return &Error{Kind: kind, Message: message, Pos: Pos{Line: line, Col: col, HasPos: true}}
}

// Panic raises kind as a panic, following the core's fail-fast policy for
// every Kind other than ordinary ParseFailure (which is never a perr.Error
// at all — see the package doc).
func Panic(kind Kind, message string) {
	panic(New(kind, message))
}

// PanicAt raises kind as a panic with a position attached.
func PanicAt(kind Kind, line, col int, message string) {
	panic(At(kind, line, col, message))
}
