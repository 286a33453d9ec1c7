package compiler

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Diagnostic describes a single compile-time error: the pattern text that
// was being compiled, the byte offset that triggered the failure, and a
// human-readable message.
type Diagnostic struct {
	Pattern string
	Index   int
	Message string
}

// Sink receives compiler diagnostics. spec.md §4.2 calls the reference
// compiler's caret-under-the-offending-index stderr dump a collaborator
// concern that "implementers may factor... behind an injected diagnostic
// sink" — Sink is that seam. Compile/CompileWithConfig never write to
// stderr directly; they always go through a Config's Sink.
type Sink func(Diagnostic)

// NewWriterSink returns a Sink that renders each Diagnostic as the pattern
// echoed verbatim, a caret line under the offending index, and the message,
// written to w. The caret line is colorized red via fatih/color when w
// supports color (grounded in theakshaypant/regret's
// internal/cli/output.Formatter, the one example in the retrieval pack that
// builds exactly this kind of colorized diagnostic rendering for a regex
// tool); color.NoColor (or a non-colorable writer) falls back to plain
// text automatically.
func NewWriterSink(w io.Writer) Sink {
	caret := color.New(color.FgRed, color.Bold)
	return func(d Diagnostic) {
		fmt.Fprintf(w, "\t%s\n", d.Pattern)
		pad := make([]byte, d.Index)
		for i := range pad {
			pad[i] = ' '
		}
		caret.Fprintf(w, "\t%s^\n", pad)
		fmt.Fprintf(w, "%s\n", d.Message)
	}
}

// StderrSink is an opt-in diagnostic sink (DefaultConfig uses DiscardSink):
// it writes to os.Stderr through a colorable wrapper, matching fatih/color's
// usual Windows/ANSI handling.
func StderrSink() Sink {
	return NewWriterSink(color.Error)
}

// DiscardSink silently drops every diagnostic; useful for tests and for
// callers who only care about the returned error value.
func DiscardSink() Sink {
	return func(Diagnostic) {}
}
