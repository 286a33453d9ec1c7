// Package grr is a Thompson-construction regular-expression engine over a
// restricted ASCII-plus-tab dialect: no Unicode, no backreferences or
// lookaround, and a single [start, end) match span rather than capture
// groups. It compiles a pattern once into a flat-array NFA and simulates it
// either as a whole-string Match or a longest-substring Search.
package grr

import (
	"github.com/coregx/grr/compiler"
	"github.com/coregx/grr/errcode"
	"github.com/coregx/grr/nfa"
	"github.com/coregx/grr/runtime"
)

// Span is a half-open [Start, End) byte range into the text a Search call
// was given.
type Span = runtime.Span

// SearchOptions controls Search's handling of embedded non-printable
// bytes; see runtime.Options.
type SearchOptions = runtime.Options

// Regex is a compiled pattern. It is immutable after Compile and safe for
// concurrent use by multiple goroutines: Match and Search keep all working
// state on the stack (or in caller-supplied scratch), never inside Regex
// itself (spec.md §5).
type Regex struct {
	nfa *nfa.NFA
}

// Compile parses and compiles pattern, returning a *Regex ready for Match
// and Search, or an error (always an *errcode.Error wrapping
// errcode.BadData) describing the first syntax problem encountered.
func Compile(pattern string) (*Regex, error) {
	n, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{nfa: n}, nil
}

// CompileWithConfig compiles pattern using a caller-supplied compiler.Config,
// e.g. to route diagnostics to compiler.StderrSink instead of discarding
// them.
func CompileWithConfig(pattern string, cfg compiler.Config) (*Regex, error) {
	n, err := compiler.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Regex{nfa: n}, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// package-level pattern variables initialized from constants.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the original pattern text the Regex was compiled from,
// satisfying spec.md's description/round-trip requirement.
func (re *Regex) String() string {
	return re.nfa.Description()
}

// Match reports whether text, taken as a whole, is accepted by re. A
// non-printable, non-tab byte anywhere in text is reported as an error
// wrapping errcode.BadData.
func (re *Regex) Match(text []byte) (bool, error) {
	return runtime.Match(re.nfa, text)
}

// Search returns the longest matching substring of text at the earliest
// position achieving that length, along with the cursor offset where
// scanning stopped. If no match exists, Search returns a zero Span and an
// error matching errcode.ErrNotFound via errors.Is; callers that only care
// about presence should check that rather than comparing spans.
func (re *Regex) Search(text []byte, opts SearchOptions) (Span, int, error) {
	result, err := runtime.Search(re.nfa, text, opts)
	if err != nil {
		return Span{}, result.Cursor, err
	}
	if !result.Found {
		return Span{}, result.Cursor, errcode.ErrNotFound
	}
	return result.Span, result.Cursor, nil
}

// Free is a documented no-op: Go's garbage collector reclaims a Regex's
// node array and retained pattern string once it is no longer reachable.
// It is kept for API symmetry with the engine's C heritage and for callers
// porting code that calls grrFreeNfa explicitly.
func (re *Regex) Free() {}
