package layout

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput reports a NaN, negative or disallowed infinite value
	// passed into Measure or Arrange. It is a caller defect.
	ErrInvalidInput = errors.New("invalid layout input")

	// ErrInvalidOutput reports a NaN, negative or infinite size produced by a
	// node's content function. It is a defect in that node's implementation.
	ErrInvalidOutput = errors.New("invalid layout output")

	// ErrFormat reports a malformed size rule.
	ErrFormat = errors.New("invalid size format")
)

// Error describes a failed Measure or Arrange on a specific node.
type Error struct {
	Op    string // "measure" or "arrange"
	Node  string // node description, e.g. "grid sidebar"
	Value string // offending input or output, formatted
	Err   error  // ErrInvalidInput or ErrInvalidOutput
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.Node != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Node)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if e.Value != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Value)
	}
	return sb.String()
}

// Unwrap returns the sentinel kind so errors.Is works.
func (e *Error) Unwrap() error {
	return e.Err
}
