package longpath_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/stratify/longpath"
	"github.com/katalvlaran/stratify/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longestByRelaxation is the Floyd–Warshall-style equivalence oracle: a
// dense all-pairs maximization relaxed to a fixpoint. It is only valid on
// acyclic inputs (a cycle would make the true longest walk unbounded), which
// is exactly where the progressive engine must agree with it.
func longestByRelaxation(canonical []relation.Edge) map[[2]string]int {
	names := make([]string, 0)
	index := make(map[string]int)
	intern := func(name string) int {
		if i, ok := index[name]; ok {
			return i
		}
		index[name] = len(names)
		names = append(names, name)

		return len(names) - 1
	}
	for _, e := range canonical {
		intern(e.From)
		intern(e.To)
	}

	n := len(names)
	d := make([]int, n*n)
	for _, e := range canonical {
		d[index[e.From]*n+index[e.To]] = 1
	}

	// Relax through every intermediate until nothing grows.
	for changed := true; changed; {
		changed = false
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				if d[i*n+k] == 0 {
					continue
				}
				for j := 0; j < n; j++ {
					if d[k*n+j] == 0 {
						continue
					}
					if via := d[i*n+k] + d[k*n+j]; via > d[i*n+j] {
						d[i*n+j] = via
						changed = true
					}
				}
			}
		}
	}

	out := make(map[[2]string]int)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := d[i*n+j]; v > 0 {
				out[[2]string{names[i], names[j]}] = v
			}
		}
	}

	return out
}

// asMap flattens engine records for comparison with the oracle.
func asMap(records []longpath.Record) map[[2]string]int {
	out := make(map[[2]string]int, len(records))
	for _, r := range records {
		out[[2]string{r.From, r.To}] = r.Dist
	}

	return out
}

// TestCompute_MatchesOracle cross-checks the progressive engine against the
// dense relaxation oracle on a spread of acyclic shapes.
func TestCompute_MatchesOracle(t *testing.T) {
	cases := map[string][]relation.Edge{
		"chain": edges(
			[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}),
		"diamond": edges(
			[2]string{"A", "B"}, [2]string{"A", "C"},
			[2]string{"B", "D"}, [2]string{"C", "D"}),
		"direct_plus_long": edges(
			[2]string{"A", "D"}, [2]string{"A", "B"},
			[2]string{"B", "C"}, [2]string{"C", "D"}),
		"three_way_max": edges(
			[2]string{"X", "Y"}, [2]string{"X", "A"}, [2]string{"A", "Y"},
			[2]string{"X", "B"}, [2]string{"B", "C"}, [2]string{"C", "Y"}),
		"double_diamond": edges(
			[2]string{"A", "B"}, [2]string{"A", "C"},
			[2]string{"B", "D"}, [2]string{"C", "D"},
			[2]string{"D", "E"}, [2]string{"D", "F"},
			[2]string{"E", "G"}, [2]string{"F", "G"}),
		"two_components": edges(
			[2]string{"A", "B"}, [2]string{"B", "C"},
			[2]string{"X", "Y"}),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			canonical, counts := relation.Normalize(raw)
			order := relation.ProcessingOrder(canonical, counts)

			got := asMap(longpath.Compute(canonical, order).Records())
			want := longestByRelaxation(canonical)

			assert.Equal(t, want, got)
		})
	}
}

// TestCompute_MatchesOracle_LayeredLattice drives both variants over a
// denser generated DAG: 4 ranks of 3 entities, every entity feeding two
// entities of the next rank.
func TestCompute_MatchesOracle_LayeredLattice(t *testing.T) {
	raw := make([]relation.Edge, 0, 24)
	name := func(rank, i int) string { return fmt.Sprintf("n%d_%d", rank, i) }
	for rank := 0; rank < 3; rank++ {
		for i := 0; i < 3; i++ {
			raw = append(raw,
				relation.Edge{From: name(rank, i), To: name(rank+1, i)},
				relation.Edge{From: name(rank, i), To: name(rank+1, (i+1)%3)},
			)
		}
	}
	// A long shortcut the engine must stretch to the lattice depth.
	raw = append(raw, relation.Edge{From: name(0, 0), To: name(3, 0)})

	canonical, counts := relation.Normalize(raw)
	order := relation.ProcessingOrder(canonical, counts)

	got := asMap(longpath.Compute(canonical, order).Records())
	want := longestByRelaxation(canonical)

	require.Equal(t, want, got)
	assert.Equal(t, 3, got[[2]string{name(0, 0), name(3, 0)}], "shortcut stretched to full depth")
}
