// Package ordering computes and compares fractional position keys so blocks
// can be reordered by changing a single key instead of renumbering siblings.
//
// Keys are decimal numbers carried as strings. Repeated midpoint insertion
// between the same neighbors halves the gap each time and keys are never
// renormalized; once the gap underflows float64 precision the collision nudge
// keeps ordering valid but no longer places the key exactly between its
// neighbors. GapExhausted reports that condition.
package ordering

import (
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultFallback is the key given to the first block of an empty document.
	DefaultFallback = 1.0
	// CollisionNudge is added to a key when both neighbors compare equal.
	CollisionNudge = 0.001
)

// ParseIndex parses a key into a finite number.
// It reports false for empty, non-numeric, NaN or infinite input.
func ParseIndex(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatIndex renders a key in the shortest form that parses back to f.
func FormatIndex(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ComputeIndex returns a key for a slot between before and after using DefaultFallback.
func ComputeIndex(before, after string) string {
	return ComputeIndexWithFallback(before, after, DefaultFallback)
}

// ComputeIndexWithFallback returns a key for the slot between before and after.
// An empty or unparseable neighbor counts as absent.
func ComputeIndexWithFallback(before, after string, fallback float64) string {
	return FormatIndex(compute(before, after, fallback))
}

func compute(before, after string, fallback float64) float64 {
	b, hasBefore := ParseIndex(before)
	a, hasAfter := ParseIndex(after)

	switch {
	case !hasBefore && !hasAfter:
		return fallback
	case !hasBefore:
		return a / 2
	case !hasAfter:
		return b + 1
	case a == b:
		return b + CollisionNudge
	default:
		return (b + a) / 2
	}
}

// GapExhausted reports whether before and after are both valid keys whose
// midpoint no longer falls strictly between them.
func GapExhausted(before, after string) bool {
	b, ok1 := ParseIndex(before)
	a, ok2 := ParseIndex(after)
	if !ok1 || !ok2 {
		return false
	}
	lo, hi := math.Min(a, b), math.Max(a, b)
	mid := (lo + hi) / 2
	return !(lo < mid && mid < hi)
}
