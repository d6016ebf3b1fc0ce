package ordering

import "sort"

// Keyed is anything carrying a fractional index.
type Keyed interface {
	OrderKey() string
}

// SortByIndex returns a new slice ordered ascending by parsed key.
// Items with invalid keys sort before every valid key and keep their input order;
// items are never dropped. The input slice is left untouched.
func SortByIndex[T Keyed](items []T) []T {
	if items == nil {
		return nil
	}

	type entry struct {
		key   float64
		valid bool
	}
	keys := make([]entry, len(items))
	order := make([]int, len(items))
	for i, it := range items {
		k, ok := ParseIndex(it.OrderKey())
		keys[i] = entry{key: k, valid: ok}
		order[i] = i
	}

	sort.SliceStable(order, func(x, y int) bool {
		kx, ky := keys[order[x]], keys[order[y]]
		if !kx.valid || !ky.valid {
			return !kx.valid && ky.valid
		}
		return kx.key < ky.key
	})

	out := make([]T, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}

// Between returns the keys of the items immediately before and after
// insertion position pos in an already sorted slice. A missing neighbor is "".
func Between[T Keyed](items []T, pos int) (before, after string) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(items) {
		pos = len(items)
	}
	if pos > 0 {
		before = items[pos-1].OrderKey()
	}
	if pos < len(items) {
		after = items[pos].OrderKey()
	}
	return before, after
}

// IsSorted reports whether items are already in SortByIndex order.
func IsSorted[T Keyed](items []T) bool {
	seenValid := false
	prev := 0.0
	for _, it := range items {
		k, ok := ParseIndex(it.OrderKey())
		if !ok {
			if seenValid {
				return false
			}
			continue
		}
		if seenValid && k < prev {
			return false
		}
		seenValid, prev = true, k
	}
	return true
}
