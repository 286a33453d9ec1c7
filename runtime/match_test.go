package runtime

import (
	"testing"

	"github.com/coregx/grr/compiler"
	"github.com/coregx/grr/nfa"
)

func mustCompile(t *testing.T, pattern string) *nfa.NFA {
	t.Helper()
	n, err := compiler.Compile(pattern)
	if err != nil {
		t.Fatalf("compile(%q): %v", pattern, err)
	}
	return n
}

func TestMatchWholeString(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    bool
	}{
		{`ab+c`, `abbbbbbbbc`, true},
		{`ab+c`, `abc`, true},
		{`ab+c`, `ac`, false},
		{`^\d+$`, `42`, true},
		{`^\d+$`, `4x2`, false},
		{`a(bc)+d`, `abcbcd`, true},
		{`a(bc)+d`, `abcd`, true},
		{`[a-zA-Z0-9]+`, `Go123`, true},
		{`.*`, ``, true},
		{`a?`, ``, true},
		{`a?`, `a`, true},
		{`a?`, `aa`, false},
	}
	for _, c := range cases {
		n := mustCompile(t, c.pattern)
		got, err := Match(n, []byte(c.text))
		if err != nil {
			t.Fatalf("Match(%q, %q): unexpected error: %v", c.pattern, c.text, err)
		}
		if got != c.want {
			t.Errorf("Match(%q, %q) = %v, want %v", c.pattern, c.text, got, c.want)
		}
	}
}

func TestMatchRejectsNonPrintable(t *testing.T) {
	n := mustCompile(t, `a+`)
	_, err := Match(n, []byte("a\x00a"))
	if err == nil {
		t.Fatal("expected error for embedded non-printable byte")
	}
}

func TestMatchIsPureFunction(t *testing.T) {
	n := mustCompile(t, `a(b|c)+d`)
	for i := 0; i < 5; i++ {
		got, err := Match(n, []byte("abccbd"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Fatalf("iteration %d: expected match", i)
		}
	}
}
