package nfa

import (
	"github.com/coregx/grr/internal/conv"
	"github.com/coregx/grr/symbol"
)

// Fragment is a subautomaton produced during compilation: by convention its
// entry state is always local index 0 and its accept state is always
// len(Nodes) (one past its own last node). Fragments are concatenated and
// combined purely by slice surgery on Nodes — never by rewriting absolute
// state references — because every Motion is relative to its own node.
//
// This is the Go-native shape of the original engine's grrNfa-as-fragment
// convention used throughout nfaCompiler.c, where the same grrNfaStruct
// type served as both "a complete compiled pattern" and "an in-progress
// piece of one".
type Fragment struct {
	Nodes []Node
}

// Empty returns a zero-length fragment: entry and accept coincide, i.e. it
// matches the empty string by pure pass-through. Used for empty groups
// "()" and empty alternation branches ("a||b").
func Empty() Fragment {
	return Fragment{}
}

// Char returns a one-node fragment with a single transition carrying the
// given symbol set and motion +1 (spec.md §4.2 "character fragment").
func Char(symbols symbol.Set) Fragment {
	return Fragment{Nodes: []Node{{
		T: [2]Transition{{Symbols: symbols, Motion: 1}},
	}}}
}

// Anchor returns a one-node fragment expressing a position anchor: an
// epsilon transition gated by FIRST_CHAR or LAST_CHAR, per spec.md §4.1.
func Anchor(pseudo int) Fragment {
	var s symbol.Set
	s.Set(symbol.Empty)
	s.Set(pseudo)
	return Char(s)
}

// Concat appends b's nodes after a's. Because state numbering is purely
// positional and every motion is relative, a's dangling edges targeting
// a's own accept state automatically become edges into b's entry — no
// transition rewriting is required (spec.md §4.2 "Concatenation").
func Concat(a, b Fragment) Fragment {
	if len(a.Nodes) == 0 {
		return b
	}
	if len(b.Nodes) == 0 {
		return a
	}
	out := make([]Node, 0, len(a.Nodes)+len(b.Nodes))
	out = append(out, a.Nodes...)
	out = append(out, b.Nodes...)
	return Fragment{Nodes: out}
}

// Alternate combines a and b into "a|b": a new entry node is prepended with
// two epsilon transitions, one into a (motion +1) and one into b (motion
// +len(a)+1). Every transition inside a whose destination was a's own
// accept state is then redirected past b, so both branches converge on one
// shared accept state at the very end (spec.md §4.2 "Alternation"). This is
// the direct translation of nfaCompiler.c's addDisjunctionToNfa, including
// the edge-redirection loop that makes repeated (n-ary) folding compose
// correctly even when a branch is itself an alternation or the empty
// fragment.
func Alternate(a, b Fragment) Fragment {
	lenA := len(a.Nodes)
	lenB := len(b.Nodes)

	out := make([]Node, 0, 1+lenA+lenB)

	var entry Node
	entry.Wide = true
	entry.T[0].Symbols.Set(symbol.Empty)
	entry.T[0].Motion = 1
	entry.T[1].Symbols.Set(symbol.Empty)
	entry.T[1].Motion = conv.IntToInt32(lenA + 1)
	if lenA == 0 {
		// An empty a has no exit edges to redirect, so its branch goes
		// straight to the shared accept state past b.
		entry.T[0].Motion = conv.IntToInt32(1 + lenB)
	}
	out = append(out, entry)

	for localIdx, node := range a.Nodes {
		out = append(out, redirectToAccept(node, localIdx, lenA, conv.IntToInt32(lenB)))
	}

	out = append(out, b.Nodes...)

	return Fragment{Nodes: out}
}

// redirectToAccept returns node (whose own local index within its fragment
// is localIdx) with any transition whose local destination equals
// oldAccept — i.e. it reached this fragment's own accept state — bumped by
// delta, so it instead reaches the accept state of whatever larger
// fragment this one has just been folded into.
func redirectToAccept(node Node, localIdx, oldAccept int, delta int32) Node {
	out := node
	for k := 0; k < node.NumTransitions(); k++ {
		dest := localIdx + int(out.T[k].Motion)
		if dest == oldAccept {
			out.T[k].Motion += delta
		}
	}
	return out
}

// AlternateN folds a chain of alternative fragments left-to-right via
// repeated Alternate calls, matching spec.md's "equivalent N-ary
// alternation is an iterated binary fold".
func AlternateN(alts []Fragment) Fragment {
	if len(alts) == 0 {
		return Empty()
	}
	acc := alts[0]
	for _, alt := range alts[1:] {
		acc = Alternate(acc, alt)
	}
	return acc
}
