package relation_test

import (
	"testing"

	"github.com/katalvlaran/stratify/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalize_KeepsFirstOrientation verifies that of two orientations of
// the same pair only the first survives, in its input orientation.
func TestNormalize_KeepsFirstOrientation(t *testing.T) {
	raw := []relation.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "A"},
		{From: "A", To: "B"},
		{From: "B", To: "C"},
	}

	canonical, counts := relation.Normalize(raw)

	require.Len(t, canonical, 2, "one representative per unordered pair")
	assert.Equal(t, relation.Edge{From: "A", To: "B"}, canonical[0], "first occurrence orientation kept")
	assert.Equal(t, relation.Edge{From: "B", To: "C"}, canonical[1], "insertion order preserved")
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 1}, counts, "both endpoints counted per retained edge")
}

// TestNormalize_DropsSelfLoops ensures self-loops neither survive nor count.
func TestNormalize_DropsSelfLoops(t *testing.T) {
	raw := []relation.Edge{
		{From: "A", To: "A"},
		{From: "A", To: "B"},
	}

	canonical, counts := relation.Normalize(raw)

	require.Len(t, canonical, 1)
	assert.Equal(t, relation.Edge{From: "A", To: "B"}, canonical[0])
	assert.Equal(t, 1, counts["A"], "self-loop must not inflate the count")
}

// TestNormalize_Empty confirms empty input yields empty output.
func TestNormalize_Empty(t *testing.T) {
	canonical, counts := relation.Normalize(nil)

	assert.Empty(t, canonical)
	assert.Empty(t, counts)
}

// TestProcessingOrder_SeedsAtHighestConnection checks that the traversal
// starts at the best-connected entity and expands neighbors by rank.
func TestProcessingOrder_SeedsAtHighestConnection(t *testing.T) {
	canonical, counts := relation.Normalize([]relation.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "B", To: "D"},
	})

	order := relation.ProcessingOrder(canonical, counts)

	// B has three connections; its neighbors tie at one connection each and
	// fall back to first appearance: A before C before D.
	assert.Equal(t, []string{"B", "A", "C", "D"}, order)
}

// TestProcessingOrder_NeighborRankByCount verifies that among a vertex's
// neighbors the better-connected one is enumerated first.
func TestProcessingOrder_NeighborRankByCount(t *testing.T) {
	canonical, counts := relation.Normalize([]relation.Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "C", To: "D"},
	})

	order := relation.ProcessingOrder(canonical, counts)

	// B and C tie at two connections; B appears first and seeds. Its
	// neighbors are C (count 2) then A (count 1).
	assert.Equal(t, []string{"B", "C", "A", "D"}, order)
}

// TestProcessingOrder_MultipleComponents confirms each further component is
// seeded by the highest-ranked unvisited entity.
func TestProcessingOrder_MultipleComponents(t *testing.T) {
	canonical, counts := relation.Normalize([]relation.Edge{
		{From: "A", To: "B"},
		{From: "C", To: "D"},
		{From: "C", To: "E"},
	})

	order := relation.ProcessingOrder(canonical, counts)

	// C out-ranks everything (two connections) and seeds the first sweep;
	// the leftover component starts at A by first appearance.
	assert.Equal(t, []string{"C", "D", "E", "A", "B"}, order)
}

// TestProcessingOrder_Empty returns nil for an empty canonical set.
func TestProcessingOrder_Empty(t *testing.T) {
	assert.Nil(t, relation.ProcessingOrder(nil, map[string]int{}))
}

// TestFirstAppearance_ScansFromBeforeTo pins the appearance convention both
// reference selection and ordering rely on.
func TestFirstAppearance_ScansFromBeforeTo(t *testing.T) {
	first := relation.FirstAppearance([]relation.Edge{
		{From: "X", To: "Y"},
		{From: "Z", To: "X"},
	})

	assert.Equal(t, map[string]int{"X": 0, "Y": 1, "Z": 2}, first)
}
