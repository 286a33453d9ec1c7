package runtime

import (
	"github.com/coregx/grr/errcode"
	"github.com/coregx/grr/nfa"
	"github.com/coregx/grr/symbol"
)

// maxClosureDepth bounds epsilon-closure recursion. closureMatch never
// recurses into a state already in dst, so even through the epsilon loops
// nfa.Star builds, closure over n.Len() nodes terminates within n.Len()+1
// steps; exceeding it means the automaton itself is malformed, a
// construction bug rather than a caller error.
func maxClosureDepth(n *nfa.NFA) int {
	return n.Len() + 1
}

// MatchScratch holds the two bitsets Match double-buffers across a call.
// Reusing one across repeated Match calls on the same (or same-sized) NFA
// avoids a per-call allocation in hot loops, per spec.md §9's explicit
// recommendation that callers be able to supply reusable scratch.
type MatchScratch struct {
	cur, next *bitset
	size      int
}

// NewMatchScratch allocates a MatchScratch sized for n. The same scratch
// may be reused across any later call whose NFA has an Accept() no larger
// than the one it was sized for.
func NewMatchScratch(n *nfa.NFA) *MatchScratch {
	size := n.Accept() + 1
	return &MatchScratch{cur: newBitset(size), next: newBitset(size), size: size}
}

// Match reports whether text, taken as a whole, is accepted by n. Every
// byte of text must be printable ASCII or tab; any other byte is reported
// as errcode.ErrBadData, matching spec.md §4.3.1.
func Match(n *nfa.NFA, text []byte) (bool, error) {
	return MatchWithScratch(n, text, NewMatchScratch(n))
}

// MatchWithScratch is Match using a caller-supplied, reusable scratch
// buffer instead of allocating one per call.
func MatchWithScratch(n *nfa.NFA, text []byte, scratch *MatchScratch) (bool, error) {
	size := n.Accept() + 1
	if scratch.size < size {
		scratch = NewMatchScratch(n)
	}
	cur, next := scratch.cur, scratch.next
	cur.clear()
	next.clear()

	closureMatch(n, cur, 0, true, len(text) == 0, 0)

	for i, b := range text {
		if !symbol.IsPrintableOrTab(b) {
			return false, errcode.Newf(errcode.BadData, "match: non-printable byte 0x%02x at offset %d", b, i)
		}
		idx, _ := symbol.Index(b)
		atEnd := i == len(text)-1

		next.clear()
		for s := 0; s < size; s++ {
			if !cur.has(s) || s == n.Accept() {
				continue
			}
			node := n.Nodes[s]
			for k := 0; k < node.NumTransitions(); k++ {
				t := node.T[k]
				if t.Symbols.Has(symbol.Empty) {
					continue
				}
				if t.Symbols.Has(idx) {
					closureMatch(n, next, s+int(t.Motion), false, atEnd, 0)
				}
			}
		}
		if !next.any() {
			return false, nil
		}
		cur, next = next, cur
	}

	return cur.has(n.Accept()), nil
}

// closureMatch adds state (and every state epsilon-reachable from it, given
// the current position flags) into dst.
func closureMatch(n *nfa.NFA, dst *bitset, state int, atStart, atEnd bool, depth int) {
	if depth > maxClosureDepth(n) {
		panic("grr/runtime: epsilon cycle detected (malformed NFA)")
	}
	if dst.has(state) {
		return
	}
	dst.set(state)
	if state == n.Accept() {
		return
	}
	node := n.Nodes[state]
	for k := 0; k < node.NumTransitions(); k++ {
		t := node.T[k]
		if !t.Symbols.Has(symbol.Empty) {
			continue
		}
		if t.Symbols.Has(symbol.FirstChar) && !atStart {
			continue
		}
		if t.Symbols.Has(symbol.LastChar) && !atEnd {
			continue
		}
		closureMatch(n, dst, state+int(t.Motion), atStart, atEnd, depth+1)
	}
}
