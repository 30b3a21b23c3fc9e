// Package layering places entities on the horizontal axis: every connected
// entity receives an integer layer index such that for each known
// longest-path distance d(A,B), layer(B) − layer(A) ≥ d.
//
// Overview:
//
//   - Reference selects the layer-0 anchor by a centrality cascade:
//     highest connection count, then highest neighbor mass, then first
//     appearance in the canonical edges.
//   - Assign seeds the reference at layer 0 and repeatedly relaxes the
//     distance records: an unplaced endpoint is placed relative to a placed
//     one, and an already-placed right endpoint is shifted further right
//     whenever a record demands more separation. Records are visited in
//     descending combined connection count — an efficiency heuristic that
//     settles the dense core of the graph first.
//   - The loop is capped at |V|² passes. A pass that changes nothing while
//     reachable entities remain unplaced force-places the first such entity
//     (in processing order) at layer 0 and resumes; conflicting cycle
//     distances therefore stall only briefly and every entity lands.
//   - Afterwards the axis is normalized so the smallest layer is 0, and
//     entities are grouped into layers in ascending index order,
//     lexicographically sorted within each layer as the deterministic seed
//     for vertical ordering.
//
// The assigner is total: any finite input produces a complete layer map.
// On cyclic inputs the consistency invariant is satisfied best-effort; the
// |V|² cap guarantees termination.
//
// Complexity: O(V² · R) worst case over R distance records; real inputs
// settle in a handful of passes.
package layering
