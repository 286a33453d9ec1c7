package nfa

import (
	"testing"

	"github.com/coregx/grr/errcode"
)

func TestBuildErrorMessageWithState(t *testing.T) {
	err := &BuildError{Message: "out-of-bounds destination 5", State: 2}
	want := "nfa: build error at state 2: out-of-bounds destination 5"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Code() != errcode.BadData {
		t.Fatalf("Code() = %v, want %v", err.Code(), errcode.BadData)
	}
}

func TestBuildErrorMessageWithoutState(t *testing.T) {
	err := &BuildError{Message: "empty automaton (length must be >= 1)", State: -1}
	want := "nfa: build error: empty automaton (length must be >= 1)"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidateReturnsBuildError(t *testing.T) {
	n := &NFA{Nodes: nil}
	err := n.Validate()
	var buildErr *BuildError
	if !asBuildError(err, &buildErr) {
		t.Fatalf("expected *BuildError, got %T", err)
	}
}

func asBuildError(err error, target **BuildError) bool {
	be, ok := err.(*BuildError)
	if !ok {
		return false
	}
	*target = be
	return true
}
