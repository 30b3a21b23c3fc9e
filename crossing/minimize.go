// Package crossing - iterated two-direction barycenter sweep.
package crossing

import (
	"math"
	"sort"

	"github.com/katalvlaran/stratify/relation"
)

// Minimize reduces edge crossings with up to MaxSweeps forward+backward
// barycenter iterations, tracking the best arrangement seen.
//
// The returned sequence is a fresh copy: neither the input nor the result
// alias each other. The layer partition is untouched; only positions inside
// layers change, so crossings can only stay equal or drop.
// Returns ErrOptionViolation for invalid options; never fails otherwise.
func Minimize(layers [][]string, canonical []relation.Edge, opts ...Option) ([][]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Working and best copies; best tracks its own crossing count.
	current := deepCopy(layers)
	best := deepCopy(layers)
	bestCount := Total(best, canonical)

	// Adjacency split by direction, in canonical edge order.
	preds := make(map[string][]string, len(canonical))
	succs := make(map[string][]string, len(canonical))
	for _, e := range canonical {
		preds[e.To] = append(preds[e.To], e.From)
		succs[e.From] = append(succs[e.From], e.To)
	}

	last := len(current) - 1
	for sweep := 0; sweep < o.MaxSweeps; sweep++ {
		// 1. Forward pass: each layer follows its predecessors.
		for k := 1; k <= last; k++ {
			sortByBarycenter(current[k], current[k-1], preds)
		}
		// 2. Backward pass: each layer follows its successors.
		for k := last - 1; k >= 0; k-- {
			sortByBarycenter(current[k], current[k+1], succs)
		}
		// 3. Keep the arrangement only if it strictly improves.
		count := Total(current, canonical)
		if count < bestCount {
			best = deepCopy(current)
			bestCount = count
		}
		if bestCount == 0 {
			break // nothing left to untangle
		}
	}

	return best, nil
}

// sortByBarycenter stable-sorts layer in place by the mean position, in the
// adjacent layer, of each entity's neighbors there. Entities with no such
// neighbor get +Inf and sink to the bottom, preserving relative order.
func sortByBarycenter(layer, adjacent []string, neighbors map[string][]string) {
	adjIndex := indexOf(adjacent)
	weight := make(map[string]float64, len(layer))
	for _, name := range layer {
		weight[name] = barycenter(neighbors[name], adjIndex)
	}
	sort.SliceStable(layer, func(i, j int) bool { return weight[layer[i]] < weight[layer[j]] })
}

// barycenter is the mean index of the given neighbors restricted to the
// adjacent layer, +Inf when none of them is present there.
func barycenter(neighbors []string, adjIndex map[string]int) float64 {
	sum, n := 0, 0
	for _, nbr := range neighbors {
		if idx, ok := adjIndex[nbr]; ok {
			sum += idx
			n++
		}
	}
	if n == 0 {
		return math.Inf(1)
	}

	return float64(sum) / float64(n)
}

// deepCopy clones a layer sequence, contents included.
func deepCopy(layers [][]string) [][]string {
	out := make([][]string, len(layers))
	for i, layer := range layers {
		out[i] = append([]string(nil), layer...)
	}

	return out
}
