// Package longpath defines the distance-record types produced by the
// progressive longest-path engine.
//
// This file declares Record and the interned Distances store; the engine
// itself lives in engine.go.
package longpath

// Record asserts that the longest directed path from From to To in the
// canonical graph has exactly Dist atomic edges. Dist is always ≥ 1; pairs
// with no directed path between them produce no record at all.
type Record struct {
	From string
	To   string
	Dist int
}

// Distances is the read-only result of Compute: every known longest-path
// distance, keyed by (source, reference) over interned entity IDs.
//
// Entities are interned in processing order, so every iteration over the
// store is deterministic. The zero value is empty and usable.
type Distances struct {
	index map[string]int // entity name → dense ID (processing-order position)
	names []string       // dense ID → entity name
	n     int            // number of interned entities
	dist  []int          // n×n row-major; 0 means "no path known"
}

// Between reports the longest-path distance from one entity to another.
// The second return is false when no directed path is known.
// Complexity: O(1).
func (d *Distances) Between(from, to string) (int, bool) {
	i, ok := d.index[from]
	if !ok {
		return 0, false
	}
	j, ok := d.index[to]
	if !ok {
		return 0, false
	}
	v := d.dist[i*d.n+j]

	return v, v > 0
}

// Len returns the number of stored (source, reference) distance records.
// Complexity: O(V²).
func (d *Distances) Len() int {
	total := 0
	for _, v := range d.dist {
		if v > 0 {
			total++
		}
	}

	return total
}

// Records flattens the store into the ordered (source, reference, distance)
// form consumed by the horizontal layer assigner. Rows and columns are
// walked in interning order, so the sequence is deterministic.
// Complexity: O(V²) time, O(records) memory.
func (d *Distances) Records() []Record {
	records := make([]Record, 0, d.n)
	for i := 0; i < d.n; i++ {
		row := d.dist[i*d.n : (i+1)*d.n]
		for j, v := range row {
			if v > 0 {
				records = append(records, Record{From: d.names[i], To: d.names[j], Dist: v})
			}
		}
	}

	return records
}
