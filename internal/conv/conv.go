// Package conv provides safe integer conversion helpers for the regex engine.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., regex pattern too large for internal limits).
package conv

import "math"

// IntToInt32 safely narrows an int to int32, used by nfa.Alternate to turn
// a fragment's node-slice length (an int, unbounded on 64-bit platforms)
// into a Transition's Motion field, so a motion outside int32 range there
// panics rather than silently wrapping. nfa.Quest and nfa.Plus narrow with
// a plain int32 conversion and do not go through this check.
// Panics if n is outside [math.MinInt32, math.MaxInt32].
//
//go:inline
func IntToInt32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		panic("integer overflow: int value out of int32 range")
	}
	return int32(n)
}
