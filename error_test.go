package digraph_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hveem/digraph"
)

func TestError(t *testing.T) {
	t.Parallel()

	// error messages
	tests := []struct {
		err  error
		want string
	}{
		{digraph.NewDuplicateNodeError("foo"), "node 'foo' is already present"},
		{digraph.NewMissingNodeError(42), "node '42' is not in the graph"},
		{digraph.NewDuplicateEdgeError("a", "b"), "edge ('a', 'b') is already present"},
		{digraph.NewMissingEdgeError("a", "b"), "edge ('a', 'b') is not in the graph"},
		{digraph.NewError(digraph.ErrMissingNode, ""), "Error: ErrorNum 1102"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got '%s', want '%s'", got, tt.want)
		}
	}

	// errors with the same error number match
	errMissing := digraph.NewMissingEdgeError("a", "b")
	if !errors.Is(errMissing, digraph.NewError(digraph.ErrMissingEdge, "")) {
		t.Errorf("got %t, want %t", false, true)
	}
	if errors.Is(errMissing, digraph.NewError(digraph.ErrDuplicateEdge, "")) {
		t.Errorf("got %t, want %t", true, false)
	}

	// graph errors don't match foreign errors
	if digraph.IsMissingNodeError(fmt.Errorf("node '8' is not in the graph")) {
		t.Errorf("got %t, want %t", true, false)
	}
	if digraph.IsErrorWithErrorNum(nil, digraph.ErrMissingNode) {
		t.Errorf("got %t, want %t", true, false)
	}
}

func TestIsError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"duplicate node", digraph.NewDuplicateNodeError("x"), digraph.IsDuplicateNodeError},
		{"missing node", digraph.NewMissingNodeError("x"), digraph.IsMissingNodeError},
		{"duplicate edge", digraph.NewDuplicateEdgeError("x", "y"), digraph.IsDuplicateEdgeError},
		{"missing edge", digraph.NewMissingEdgeError("x", "y"), digraph.IsMissingEdgeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.is(tt.err) {
				t.Errorf("got %t, want %t", false, true)
			}
			for _, other := range tests {
				if other.name == tt.name {
					continue
				}
				if other.is(tt.err) {
					t.Errorf("got %t, want %t for %s", true, false, other.name)
				}
			}
		})
	}
}
