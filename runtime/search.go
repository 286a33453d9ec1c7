package runtime

import (
	"github.com/coregx/grr/errcode"
	"github.com/coregx/grr/nfa"
	"github.com/coregx/grr/symbol"
)

// Options controls Search's handling of embedded non-printable bytes.
type Options struct {
	// Tolerate, when true, treats a non-printable, non-tab byte as a hard
	// break rather than an error: matching state is reset, and FIRST_CHAR /
	// LAST_CHAR are imparted at the surrounding edges (spec.md §4.3.2).
	Tolerate bool
}

// Result is the outcome of a Search call.
type Result struct {
	Span  Span
	Found bool
	// Cursor is the offset where scanning stopped: len(text), the
	// offending byte's offset in intolerant mode, or the newline's offset.
	Cursor int
}

// SearchScratch holds the two record arrays Search double-buffers across a
// call, so a caller driving many Search calls against the same compiled
// pattern (e.g. a directory-walking grep) can avoid a per-call allocation,
// per spec.md §9.
type SearchScratch struct {
	cur, next []record
	size      int
}

// NewSearchScratch allocates a SearchScratch sized for n.
func NewSearchScratch(n *nfa.NFA) *SearchScratch {
	size := n.Accept() + 1
	return &SearchScratch{cur: newRecords(size), next: newRecords(size), size: size}
}

// Search returns the longest substring of text, at the earliest position
// achieving that length, accepted by n, per spec.md §4.3.2. Scanning
// terminates at '\r' or '\n', which are never matched. A non-printable,
// non-tab byte aborts the call with errcode.ErrBadData unless opts.Tolerate
// is set, in which case it is skipped as a hard break.
func Search(n *nfa.NFA, text []byte, opts Options) (Result, error) {
	return SearchWithScratch(n, text, opts, NewSearchScratch(n))
}

// SearchWithScratch is Search using a caller-supplied, reusable scratch
// buffer instead of allocating one per call.
func SearchWithScratch(n *nfa.NFA, text []byte, opts Options, scratch *SearchScratch) (Result, error) {
	size := n.Accept() + 1
	if scratch.size < size {
		scratch = NewSearchScratch(n)
	}
	cur, next := scratch.cur, scratch.next
	resetRecords(cur)
	resetRecords(next)

	var best record
	best.Score = unreached

	textLen := len(text)
	prevWasBreak := false
	i := 0

	for i < textLen {
		b := text[i]

		if b == '\r' || b == '\n' {
			break
		}

		if !symbol.IsPrintableOrTab(b) {
			if !opts.Tolerate {
				return Result{Cursor: i}, errcode.Newf(errcode.BadData, "search: non-printable byte 0x%02x at offset %d", b, i)
			}
			resetRecords(cur)
			prevWasBreak = true
			i++
			continue
		}

		idx, _ := symbol.Index(b)
		firstChar := i == 0 || prevWasBreak
		lastChar := i == textLen-1
		if !lastChar {
			nb := text[i+1]
			if nb == '\r' || nb == '\n' || !symbol.IsPrintableOrTab(nb) {
				lastChar = true
			}
		}
		prevWasBreak = false

		place(cur, 0, record{Start: i, End: i, Score: 0})
		closeEpsilons(n, cur, firstChar, false)
		placeBest(&best, cur[n.Accept()])

		resetRecords(next)
		advanceLiterals(n, cur, next, idx, i)
		if lastChar {
			// Offset i+1 ends the input or the run before a break, so
			// LAST_CHAR holds there: close next and record what it accepts.
			place(next, 0, record{Start: i + 1, End: i + 1, Score: 0})
			closeEpsilons(n, next, false, true)
			placeBest(&best, next[n.Accept()])
		}

		cur, next = next, cur
		i++
	}

	finalPos := i
	firstFinal := finalPos == 0
	place(cur, 0, record{Start: finalPos, End: finalPos, Score: 0})
	closeEpsilons(n, cur, firstFinal, true)
	placeBest(&best, cur[n.Accept()])

	if best.Score < 0 {
		return Result{Cursor: finalPos}, nil
	}
	return Result{Span: Span{Start: best.Start, End: best.End}, Found: true, Cursor: finalPos}, nil
}

// placeBest overwrites *best with cand when cand is strictly longer,
// matching spec.md §4.3's greediness rule (ties do not overwrite, so the
// earliest arrival at a given length is kept).
func placeBest(best *record, cand record) {
	if cand.Score > best.Score {
		*best = cand
	}
}

// closeEpsilons relaxes recs to a fixed point over every epsilon transition
// gated open by firstChar/lastChar, per spec.md §4.3.2 step 3's "the record
// is advanced in place" clause. Unlike Match's closure (a single recursive
// walk from one freshly-reached state), Search may need to re-propagate
// through states on both sides of a loop-back transition, so this relaxes
// the whole record array to a fixed point, bounded by the same length+1
// step count the construction invariant guarantees epsilon-closure
// terminates within.
func closeEpsilons(n *nfa.NFA, recs []record, firstChar, lastChar bool) {
	limit := maxClosureDepth(n)
	for iter := 0; iter <= limit; iter++ {
		changed := false
		for s := 0; s < n.Len(); s++ {
			if recs[s].Score < 0 {
				continue
			}
			node := n.Nodes[s]
			for k := 0; k < node.NumTransitions(); k++ {
				t := node.T[k]
				if !t.Symbols.Has(symbol.Empty) {
					continue
				}
				if t.Symbols.Has(symbol.FirstChar) && !firstChar {
					continue
				}
				if t.Symbols.Has(symbol.LastChar) && !lastChar {
					continue
				}
				dest := s + int(t.Motion)
				if place(recs, dest, recs[s]) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
	panic("grr/runtime: epsilon cycle detected (malformed NFA)")
}

// advanceLiterals consumes the byte at symbol index idx (text offset i):
// for every reached state s with a transition matching idx, it
// maybe-places the advanced record into next.
func advanceLiterals(n *nfa.NFA, cur, next []record, idx, i int) {
	for s := 0; s < n.Len(); s++ {
		if cur[s].Score < 0 {
			continue
		}
		node := n.Nodes[s]
		for k := 0; k < node.NumTransitions(); k++ {
			t := node.T[k]
			if t.Symbols.Has(symbol.Empty) {
				continue
			}
			if !t.Symbols.Has(idx) {
				continue
			}
			dest := s + int(t.Motion)
			cand := record{Start: cur[s].Start, End: i + 1, Score: cur[s].Score + 1}
			place(next, dest, cand)
		}
	}
}
