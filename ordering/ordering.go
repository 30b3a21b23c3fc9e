// Package ordering implements the source-aware vertical pass of the layout
// pipeline: grouping each layer's entities by shared next-layer successors.
package ordering

import (
	"sort"

	"github.com/katalvlaran/stratify/relation"
)

// BySource reorders the contents of every layer so entities sharing a
// next-layer successor form contiguous runs. The layer partition is
// preserved; only positions within layers change.
//
// order must be the processing order of the same canonical edges; entities
// missing from it sort last, stably. The input slice is not mutated.
// Complexity: O(L · (V log V + E)) over L layers.
func BySource(layers [][]string, canonical []relation.Edge, order []string) [][]string {
	if len(layers) == 0 {
		return nil
	}

	// Position of every entity in the processing order: the shared
	// tie-breaker for all vertical decisions.
	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	// Entities missing from the order share a position past its end, so the
	// stable sorts below keep them last in their input order.
	for _, layer := range layers {
		for _, name := range layer {
			if _, ok := pos[name]; !ok {
				pos[name] = len(order)
			}
		}
	}
	// Direct successors per entity, in canonical edge order.
	succs := make(map[string][]string, len(canonical))
	for _, e := range canonical {
		succs[e.From] = append(succs[e.From], e.To)
	}

	out := make([][]string, len(layers))
	last := len(layers) - 1

	// 1. The rightmost layer has no successors to honor: processing order.
	out[last] = append([]string(nil), layers[last]...)
	sort.SliceStable(out[last], func(i, j int) bool { return pos[out[last][i]] < pos[out[last][j]] })

	// 2. Every other layer, right to left, groups by key successor.
	for k := last - 1; k >= 0; k-- {
		out[k] = regroup(layers[k], out[k+1], succs, pos)
	}

	return out
}

// regroup orders one layer against the already-fixed next layer.
func regroup(layer, next []string, succs map[string][]string, pos map[string]int) []string {
	nextIndex := make(map[string]int, len(next))
	for i, name := range next {
		nextIndex[name] = i
	}

	// 1. Assign each entity to its key successor: the next-layer successor
	//    with the smallest processing-order index. Entities without one
	//    are pivots and fall to the tail.
	groups := make(map[string][]string, len(next))
	pivots := make([]string, 0)
	keys := make([]string, 0, len(next))
	for _, name := range layer {
		key, ok := keySuccessor(succs[name], nextIndex, pos)
		if !ok {
			pivots = append(pivots, name)

			continue
		}
		if len(groups[key]) == 0 {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], name)
	}

	// 2. Emit groups in next-layer appearance order of their keys,
	//    processing order inside each group, pivots last.
	sort.SliceStable(keys, func(i, j int) bool { return nextIndex[keys[i]] < nextIndex[keys[j]] })
	ordered := make([]string, 0, len(layer))
	for _, key := range keys {
		group := groups[key]
		sort.SliceStable(group, func(i, j int) bool { return pos[group[i]] < pos[group[j]] })
		ordered = append(ordered, group...)
	}
	sort.SliceStable(pivots, func(i, j int) bool { return pos[pivots[i]] < pos[pivots[j]] })

	return append(ordered, pivots...)
}

// keySuccessor returns, among the given successors restricted to the next
// layer, the one with the smallest processing-order index. ok is false when
// none of them sits in the next layer.
func keySuccessor(successors []string, nextIndex, pos map[string]int) (string, bool) {
	key := ""
	found := false
	for _, s := range successors {
		if _, inNext := nextIndex[s]; !inNext {
			continue
		}
		if !found || pos[s] < pos[key] {
			key, found = s, true
		}
	}

	return key, found
}
