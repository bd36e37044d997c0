// internal/errors/errors.go
package errors

import "fmt"

// Kind classifies an error raised by the pipeline.
type Kind string

const (
	SyntaxError    Kind = "SyntaxError"
	CompileError   Kind = "CompileError"
	RuntimeError   Kind = "RuntimeError"
	ReferenceError Kind = "ReferenceError"
)

// Error carries an error kind plus the source line it was raised at.
// Line 0 means the location is unknown (e.g. errors raised while
// executing a loaded bytecode image).
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s\n  at line %d", e.Kind, e.Message, e.Line)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an error without location information.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewAt creates an error pinned to a source line.
func NewAt(kind Kind, message string, line int) *Error {
	return &Error{Kind: kind, Message: message, Line: line}
}

// Newf creates an error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
