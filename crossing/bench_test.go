package crossing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/stratify/crossing"
	"github.com/katalvlaran/stratify/relation"
)

// tangled builds L layers of W entities with a seeded pseudo-random edge
// pattern, producing a reproducible pile of crossings to sweep away.
func tangled(layerCount, width int) ([][]string, []relation.Edge) {
	rng := rand.New(rand.NewSource(42))
	layers := make([][]string, layerCount)
	for k := range layers {
		layers[k] = make([]string, width)
		for i := range layers[k] {
			layers[k][i] = fmt.Sprintf("e%d_%d", k, i)
		}
	}
	edges := make([]relation.Edge, 0, layerCount*width*2)
	for k := 0; k+1 < layerCount; k++ {
		for i := 0; i < width; i++ {
			edges = append(edges,
				relation.Edge{From: layers[k][i], To: layers[k+1][rng.Intn(width)]},
				relation.Edge{From: layers[k][i], To: layers[k+1][rng.Intn(width)]},
			)
		}
	}
	canonical, _ := relation.Normalize(edges)

	return layers, canonical
}

// BenchmarkTotal measures the pairwise crossing count on its own.
func BenchmarkTotal(b *testing.B) {
	layers, edges := tangled(10, 12)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = crossing.Total(layers, edges)
	}
}

// BenchmarkMinimize measures the default four-sweep barycenter run.
func BenchmarkMinimize(b *testing.B) {
	layers, edges := tangled(10, 12)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = crossing.Minimize(layers, edges)
	}
}
