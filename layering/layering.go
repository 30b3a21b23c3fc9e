package layering

import (
	"sort"

	"github.com/katalvlaran/stratify/longpath"
	"github.com/katalvlaran/stratify/relation"
)

// Reference picks the entity anchored at layer 0.
//
// Selection cascade, first non-tie wins:
//  1. highest connection count;
//  2. highest neighbor mass (sum of adjacent entities' connection counts);
//  3. first appearance in the canonical edge sequence.
//
// The boolean is false when the canonical edge set is empty.
func Reference(canonical []relation.Edge, counts map[string]int) (string, bool) {
	if len(canonical) == 0 {
		return "", false
	}

	first := relation.FirstAppearance(canonical)
	candidates := make([]string, 0, len(first))
	for name := range first {
		candidates = append(candidates, name)
	}
	// Scan in first-appearance order so the final criterion is implicit:
	// an equally scored later entity never displaces an earlier one.
	sort.Slice(candidates, func(i, j int) bool { return first[candidates[i]] < first[candidates[j]] })

	best := candidates[0]
	bestMass := neighborMass(best, canonical, counts)
	for _, name := range candidates[1:] {
		switch {
		case counts[name] > counts[best]:
			best, bestMass = name, neighborMass(name, canonical, counts)
		case counts[name] == counts[best]:
			if mass := neighborMass(name, canonical, counts); mass > bestMass {
				best, bestMass = name, mass
			}
		}
	}

	return best, true
}

// Assign computes the integer layer of every entity in the processing order.
//
// The returned slice groups entities by ascending layer index (each group
// lexicographically sorted, as the deterministic seed for vertical
// ordering); the map carries the same assignment in lookup form.
// Complexity: O(V²·R) worst case over R distance records.
func Assign(d *longpath.Distances, canonical []relation.Edge, counts map[string]int, order []string) ([][]string, map[string]int) {
	layer := make(map[string]int, len(order))
	if len(order) == 0 {
		return nil, layer
	}

	// 1. Anchor the reference entity.
	ref, _ := Reference(canonical, counts)
	layer[ref] = 0

	// 2. Heuristic record order: settle the best-connected pairs first.
	//    The sort is stable, so equally scored records keep the engine's
	//    deterministic emission order.
	records := d.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return counts[records[i].From]+counts[records[i].To] >
			counts[records[j].From]+counts[records[j].To]
	})

	// 3. Relax until a full pass is silent and everything is placed.
	//    The |V|² cap bounds pathological cycle inputs.
	maxPasses := len(order) * len(order)
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, rec := range records {
			from, okFrom := layer[rec.From]
			to, okTo := layer[rec.To]
			switch {
			case okFrom && !okTo:
				layer[rec.To] = from + rec.Dist
				changed = true
			case okTo && !okFrom:
				layer[rec.From] = to - rec.Dist
				changed = true
			case okFrom && okTo && to < from+rec.Dist:
				// Consistency enforcement: shift the right endpoint out.
				layer[rec.To] = from + rec.Dist
				changed = true
			}
		}
		if changed {
			continue
		}
		// 4. Stalled pass: force-place the first unplaced entity at 0 and
		//    keep relaxing so its component propagates. Happens only for
		//    disconnected components and conflicting cycle distances.
		forced := false
		for _, name := range order {
			if _, ok := layer[name]; !ok {
				layer[name] = 0
				forced = true

				break
			}
		}
		if !forced {
			break // silent pass, everything placed: converged
		}
	}

	// 4b. The cap can exhaust mid-churn on cycle-heavy inputs before a
	//     silent pass ever triggers the fallback; completeness still holds.
	for _, name := range order {
		if _, ok := layer[name]; !ok {
			layer[name] = 0
		}
	}

	// 5. Normalize the axis so the leftmost layer is 0.
	minLayer := layer[order[0]]
	for _, v := range layer {
		if v < minLayer {
			minLayer = v
		}
	}
	if minLayer != 0 {
		for name := range layer {
			layer[name] -= minLayer
		}
	}

	// 6. Group into layers, ascending, lexicographic inside each group.
	//    Indices are compacted to slice positions so the lookup map and the
	//    grouped form always agree, even if relaxation left empty columns.
	byValue := make(map[int][]string, len(layer))
	values := make([]int, 0, len(layer))
	for name, v := range layer {
		if len(byValue[v]) == 0 {
			values = append(values, v)
		}
		byValue[v] = append(byValue[v], name)
	}
	sort.Ints(values)
	layers := make([][]string, 0, len(values))
	for i, v := range values {
		group := byValue[v]
		sort.Strings(group)
		layers = append(layers, group)
		for _, name := range group {
			layer[name] = i
		}
	}

	return layers, layer
}
