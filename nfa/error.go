package nfa

import (
	"fmt"

	"github.com/coregx/grr/errcode"
)

// BuildError represents a structural problem detected while assembling an
// NFA from fragments — the Go-native sibling of the teacher engine's
// nfa.BuildError. It carries a message and the offending state (-1 when no
// single state is at fault), and its Code method reports an errcode.Code so
// callers further up the stack can branch on it uniformly.
type BuildError struct {
	Message string
	State   int
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.State >= 0 {
		return fmt.Sprintf("nfa: build error at state %d: %s", e.State, e.Message)
	}
	return fmt.Sprintf("nfa: build error: %s", e.Message)
}

// Code reports the errcode.Code for a BuildError, which is always BadData.
func (e *BuildError) Code() errcode.Code {
	return errcode.BadData
}
