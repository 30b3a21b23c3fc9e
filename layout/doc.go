// Package layout is the public entry point of stratify: Classify maps named
// entities and directed relations to a layered arrangement.
//
// Overview:
//
//   - Classify runs the five-phase pipeline in order: relation
//     canonicalization, longest-path distances, horizontal layering,
//     source-aware vertical ordering, and barycenter crossing reduction.
//   - Entities that appear in no relation are appended afterwards, in input
//     order, as a single trailing layer one past the rightmost connected
//     layer.
//   - Both output forms of the same assignment are returned: the ordered
//     layer sequence and the per-entity index lookup.
//
// Guarantees, for every finite input:
//
//   - Totality      — Classify never fails on data; cycles, duplicate and
//     reversed edges, self-loops, and islands are all absorbed.
//   - Coverage      — every input entity appears in exactly one layer.
//   - Normalization — the leftmost layer has index 0.
//   - Determinism   — inputs with the same canonical edge set produce
//     byte-identical results.
//
// Errors (sentinel):
//
//   - ErrOptionViolation if an Option carries an invalid value
//     (e.g. WithMaxSweeps(-1)).
//
// Example usage:
//
//	res, err := layout.Classify(
//	    []layout.Entity{{Name: "users"}, {Name: "orders"}, {Name: "items"}},
//	    []layout.Relation{{From: "users", To: "orders"}, {From: "orders", To: "items"}},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(res)
//	// 0: users
//	// 1: orders
//	// 2: items
package layout
