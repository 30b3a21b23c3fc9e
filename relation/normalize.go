package relation

// Normalize reduces a raw edge multiset to its canonical form.
//
// For every unordered pair of distinct entities exactly one directed edge is
// retained: the first occurrence, in its input orientation. Self-loops are
// dropped. The second return value counts, per entity, the canonical edges
// incident to it in either direction.
//
// The input slice is never mutated; the canonical slice preserves input
// order, which later tie-breaking depends on.
// Complexity: O(E) time, O(E) memory.
func Normalize(raw []Edge) ([]Edge, map[string]int) {
	canonical := make([]Edge, 0, len(raw))
	counts := make(map[string]int, len(raw))
	seen := make(map[pairKey]struct{}, len(raw))

	for _, e := range raw {
		// 1. Self-loops carry no layering information.
		if e.From == e.To {
			continue
		}
		// 2. Keep only the first representative of each unordered pair.
		k := keyOf(e.From, e.To)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		// 3. Retain in input orientation and account both endpoints.
		canonical = append(canonical, e)
		counts[e.From]++
		counts[e.To]++
	}

	return canonical, counts
}
