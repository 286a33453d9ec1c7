// Package nfa implements the compiled automaton at the heart of grr: a flat
// array of nodes, each carrying up to two transitions whose destination is
// expressed as a signed offset relative to the owning node's own index.
//
// The layout is a direct descendant of the original C engine's
// nfaInternals.h (a flat nodes array plus per-transition relative motion)
// rather than the absolute-StateID graph used by larger engines: spec.md
// mandates the relative-offset encoding because it makes concatenation and
// alternation O(n) memmoves with zero pointer/index rewriting, keeps the
// graph a plain value type, and sidesteps cyclic ownership entirely (see
// spec.md §9).
package nfa

import (
	"fmt"
	"strings"

	"github.com/coregx/grr/symbol"
)

// Transition is one edge out of a Node: the set of symbols that permit it,
// and the relative offset (added to the owning node's index) of its
// destination.
type Transition struct {
	Symbols symbol.Set
	Motion  int32
}

// Node is a single NFA state. It always has at least one live transition;
// Wide indicates the second slot is also live. Thompson construction only
// ever introduces fan-out of one or two, so this bounded inline array keeps
// every Node the same constant size (spec.md §3).
type Node struct {
	T    [2]Transition
	Wide bool
}

// NumTransitions returns 1 or 2.
func (n Node) NumTransitions() int {
	if n.Wide {
		return 2
	}
	return 1
}

// NFA is a compiled automaton: a flat node sequence with an implicit accept
// state numbered len(Nodes), plus the original pattern text it was compiled
// from (so Description can hand it back to callers verbatim).
type NFA struct {
	Nodes   []Node
	Pattern string
}

// Accept returns the implicit accepting state: one past the last real node.
// A state s with s == Accept() is terminal and has no outgoing transitions.
func (n *NFA) Accept() int {
	return len(n.Nodes)
}

// Len returns the number of real (non-accept) nodes.
func (n *NFA) Len() int {
	return len(n.Nodes)
}

// Description returns the pattern text that produced this automaton,
// satisfying spec.md's description/round-trip requirement for callers that
// persist and rehydrate patterns (e.g. a history file).
func (n *NFA) Description() string {
	return n.Pattern
}

// Destination returns the absolute state reached by transition k (0 or 1)
// of the node at state s.
func (n *NFA) Destination(s, k int) int {
	return s + int(n.Nodes[s].T[k].Motion)
}

// String renders the automaton for debugging.
func (n *NFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFA{pattern:%q, nodes:%d}\n", n.Pattern, len(n.Nodes))
	for i, node := range n.Nodes {
		for k := 0; k < node.NumTransitions(); k++ {
			fmt.Fprintf(&b, "  %d --%s--> %d\n", i, node.T[k].Symbols, i+int(node.T[k].Motion))
		}
	}
	fmt.Fprintf(&b, "  %d (accept)\n", len(n.Nodes))
	return b.String()
}

// Validate checks the structural invariants spec.md §3 requires of every
// successfully compiled automaton: every motion stays in bounds, and every
// transition bitmap has at least one bit set. It does not check for
// epsilon-only cycles, and Star does build one (the widened entry's skip
// reaches the Plus tail, whose loop-back returns to the entry); the runtime
// closures stop at states they have already reached, and panic if a
// closure exceeds its length-based bound.
func (n *NFA) Validate() error {
	length := len(n.Nodes)
	if length == 0 {
		return &BuildError{Message: "empty automaton (length must be >= 1)", State: -1}
	}
	for i, node := range n.Nodes {
		for k := 0; k < node.NumTransitions(); k++ {
			dest := i + int(node.T[k].Motion)
			if dest < 0 || dest > length {
				return &BuildError{Message: fmt.Sprintf("transition %d has out-of-bounds destination %d", k, dest), State: i}
			}
			if node.T[k].Symbols == (symbol.Set{}) {
				return &BuildError{Message: fmt.Sprintf("transition %d has an empty symbol set", k), State: i}
			}
		}
	}
	return nil
}
