package nfa

import "github.com/coregx/grr/symbol"

// epsilon returns a Set with just the EMPTY bit, the building block for
// every quantifier-introduced transition.
func epsilon() symbol.Set {
	var s symbol.Set
	s.Set(symbol.Empty)
	return s
}

// Quest applies '?' (zero or one) to f and returns the result as a new
// fragment; f itself is left unchanged.
//
// If f's entry node is already two-way (Wide), a fresh entry node is
// prepended that skips the entire fragment; otherwise f's single entry
// transition is extended into a two-way node whose second branch skips
// past the fragment. This mirrors nfaCompiler.c's checkForQuantifier
// exactly, including which of the two cases applies.
func Quest(f Fragment) Fragment {
	if len(f.Nodes) == 0 {
		return f
	}
	length := len(f.Nodes)

	if f.Nodes[0].Wide {
		var entry Node
		entry.Wide = true
		entry.T[0].Symbols = epsilon()
		entry.T[0].Motion = 1
		entry.T[1].Symbols = epsilon()
		entry.T[1].Motion = int32(length + 1)

		out := make([]Node, 0, length+1)
		out = append(out, entry)
		out = append(out, f.Nodes...)
		return Fragment{Nodes: out}
	}

	out := make([]Node, length)
	copy(out, f.Nodes)
	out[0].Wide = true
	out[0].T[1].Symbols = epsilon()
	out[0].T[1].Motion = int32(length)
	return Fragment{Nodes: out}
}

// Plus applies '+' (one or more) to f: a trailing node is appended with two
// epsilon transitions, one looping back to f's entry (motion = -length)
// and one advancing past the fragment (motion = +1), per spec.md §4.2.
func Plus(f Fragment) Fragment {
	if len(f.Nodes) == 0 {
		return f
	}
	length := len(f.Nodes)

	var tail Node
	tail.Wide = true
	tail.T[0].Symbols = epsilon()
	tail.T[0].Motion = -int32(length)
	tail.T[1].Symbols = epsilon()
	tail.T[1].Motion = 1

	out := make([]Node, 0, length+1)
	out = append(out, f.Nodes...)
	out = append(out, tail)
	return Fragment{Nodes: out}
}

// Star applies '*' (zero or more): Quest followed by Plus, matching
// spec.md's "'*' = apply '?' then '+'".
func Star(f Fragment) Fragment {
	return Plus(Quest(f))
}

// Kind identifies a postfix quantifier.
type Kind byte

// Quantifier kinds.
const (
	KindQuest Kind = '?'
	KindPlus  Kind = '+'
	KindStar  Kind = '*'
)

// Apply applies the quantifier named by k to f.
func Apply(k Kind, f Fragment) Fragment {
	switch k {
	case KindQuest:
		return Quest(f)
	case KindPlus:
		return Plus(f)
	case KindStar:
		return Star(f)
	default:
		return f
	}
}
