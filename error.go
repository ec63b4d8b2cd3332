package digraph

import (
	"errors"
	"fmt"
)

// Error constants
const (
	ErrDuplicateNode = 1101
	ErrMissingNode   = 1102

	ErrDuplicateEdge = 1201
	ErrMissingEdge   = 1202
)

// Error is the type for graph errors.
type Error struct {
	ErrorNum     int
	ErrorMessage string
}

// NewError returns a new graph error.
func NewError(num int, format string, args ...any) Error {
	return Error{
		ErrorNum:     num,
		ErrorMessage: fmt.Sprintf(format, args...),
	}
}

// Implements the error interface.
func (e Error) Error() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	return fmt.Sprintf("Error: ErrorNum %d", e.ErrorNum)
}

// Is provides for correct comparison of graph errors using the errors.Is()
// method (see: https://pkg.go.dev/errors).
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return e.ErrorNum == t.ErrorNum
}

// IsErrorWithErrorNum returns true, if the given error is a graph error
// with an error number equal to the given one.
func IsErrorWithErrorNum(err error, num int) bool {
	return errors.Is(err, NewError(num, ""))
}

// NewDuplicateNodeError creates a new graph error with an error number equal
// to ErrDuplicateNode and an appropriate error message.
func NewDuplicateNodeError(node any) Error {
	return NewError(ErrDuplicateNode, "node '%v' is already present", node)
}

// IsDuplicateNodeError returns true, if the given error is a graph error
// with an error number equal to ErrDuplicateNode.
func IsDuplicateNodeError(err error) bool {
	return IsErrorWithErrorNum(err, ErrDuplicateNode)
}

// NewMissingNodeError creates a new graph error with an error number equal
// to ErrMissingNode and an appropriate error message.
func NewMissingNodeError(node any) Error {
	return NewError(ErrMissingNode, "node '%v' is not in the graph", node)
}

// IsMissingNodeError returns true, if the given error is a graph error
// with an error number equal to ErrMissingNode.
func IsMissingNodeError(err error) bool {
	return IsErrorWithErrorNum(err, ErrMissingNode)
}

// NewDuplicateEdgeError creates a new graph error with an error number equal
// to ErrDuplicateEdge and an appropriate error message.
func NewDuplicateEdgeError(from, to any) Error {
	return NewError(ErrDuplicateEdge, "edge ('%v', '%v') is already present", from, to)
}

// IsDuplicateEdgeError returns true, if the given error is a graph error
// with an error number equal to ErrDuplicateEdge.
func IsDuplicateEdgeError(err error) bool {
	return IsErrorWithErrorNum(err, ErrDuplicateEdge)
}

// NewMissingEdgeError creates a new graph error with an error number equal
// to ErrMissingEdge and an appropriate error message.
func NewMissingEdgeError(from, to any) Error {
	return NewError(ErrMissingEdge, "edge ('%v', '%v') is not in the graph", from, to)
}

// IsMissingEdgeError returns true, if the given error is a graph error
// with an error number equal to ErrMissingEdge.
func IsMissingEdgeError(err error) bool {
	return IsErrorWithErrorNum(err, ErrMissingEdge)
}
