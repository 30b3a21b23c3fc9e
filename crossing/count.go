package crossing

import "github.com/katalvlaran/stratify/relation"

// span is one edge drawn between an adjacent layer pair, reduced to its
// vertical positions: upper index on the left layer, lower on the right.
type span struct {
	upper, lower int
}

// Count returns the number of edge crossings between one adjacent layer
// pair. An edge spans the pair when its From sits in upper and its To in
// lower; two spans cross when their endpoints compare in opposite order.
// Edges sharing an endpoint cannot cross and are not counted.
//
// The test is the straightforward O(S²) pairwise comparison over S
// spanning edges; layer widths in target workloads are small.
func Count(upper, lower []string, canonical []relation.Edge) int {
	upperIndex := indexOf(upper)
	lowerIndex := indexOf(lower)

	spans := make([]span, 0, len(canonical))
	for _, e := range canonical {
		u, okU := upperIndex[e.From]
		l, okL := lowerIndex[e.To]
		if okU && okL {
			spans = append(spans, span{upper: u, lower: l})
		}
	}

	total := 0
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			if a.upper == b.upper || a.lower == b.lower {
				continue // shared endpoint: a fan, not a crossing
			}
			if (a.upper < b.upper) != (a.lower < b.lower) {
				total++
			}
		}
	}

	return total
}

// Total sums Count over every adjacent layer pair of the sequence.
func Total(layers [][]string, canonical []relation.Edge) int {
	total := 0
	for k := 0; k+1 < len(layers); k++ {
		total += Count(layers[k], layers[k+1], canonical)
	}

	return total
}

// indexOf maps each entity of a layer to its vertical position.
func indexOf(layer []string) map[string]int {
	index := make(map[string]int, len(layer))
	for i, name := range layer {
		index[name] = i
	}

	return index
}
