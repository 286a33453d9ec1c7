package grr

import (
	"errors"
	"testing"

	"github.com/coregx/grr/errcode"
)

func TestCompileAndMatch(t *testing.T) {
	re, err := Compile(`ab+c`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ok, err := re.Match([]byte("abbbbbbbbc"))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}
}

func TestCompileRejectsBadPattern(t *testing.T) {
	if _, err := Compile("(unclosed"); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustCompile("a**")
}

func TestDescriptionRoundTrip(t *testing.T) {
	const pattern = `a(bc)+d`
	re := MustCompile(pattern)
	if re.String() != pattern {
		t.Fatalf("String() = %q, want %q", re.String(), pattern)
	}
}

func TestSearchReturnsSpanAndCursor(t *testing.T) {
	re := MustCompile(`a(bc)+d`)
	span, cursor, err := re.Search([]byte("xxabcbcdxx"), SearchOptions{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if span != (Span{2, 8}) {
		t.Fatalf("span = %+v, want (2,8)", span)
	}
	if cursor != 10 {
		t.Fatalf("cursor = %d, want 10", cursor)
	}
}

func TestSearchNotFoundIsErrNotFound(t *testing.T) {
	re := MustCompile(`xyz`)
	_, _, err := re.Search([]byte("abc"), SearchOptions{})
	if !errors.Is(err, errcode.ErrNotFound) {
		t.Fatalf("expected errors.Is(err, errcode.ErrNotFound), got %v", err)
	}
}

func TestMatchSearchConsistency(t *testing.T) {
	const pattern = `a(b|c)+d`
	const text = "abccbd"

	matcher := MustCompile(pattern)
	matched, err := matcher.Match([]byte(text))
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	anchored := MustCompile("^(" + pattern + ")$")
	span, _, err := anchored.Search([]byte(text), SearchOptions{})
	found := err == nil

	if matched != found {
		t.Fatalf("Match()=%v but anchored Search found=%v", matched, found)
	}
	if matched && span != (Span{0, len(text)}) {
		t.Fatalf("expected full-string span, got %+v", span)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	a := MustCompile(`a(b|c)+d`)
	b := MustCompile(`a(b|c)+d`)
	if a.String() != b.String() {
		t.Fatal("expected identical descriptions")
	}
	text := []byte("abccbd")
	am, _ := a.Match(text)
	bm, _ := b.Match(text)
	if am != bm {
		t.Fatal("expected two compilations of the same pattern to behave identically")
	}
}

func TestFreeIsSafeNoOp(t *testing.T) {
	re := MustCompile(`abc`)
	re.Free()
	if _, err := re.Match([]byte("abc")); err != nil {
		t.Fatalf("expected Regex to remain usable after Free: %v", err)
	}
}
