// Package longpath computes, for every ordered entity pair, the number of
// edges on the longest directed path between them — the "maximal-path"
// variant of all-pairs reachability that horizontal layering is built on.
//
// Overview:
//
//   - Compute walks the processing order and treats each entity in turn as a
//     newly introduced reference R. Every direct predecessor L of R first
//     receives the atomic distance 1, then inherits every distance already
//     stored under R, lengthened by one hop.
//   - Inherited values are applied as maximizing updates: a stored distance
//     may only ever grow. Each growth cascades to the dependents of the
//     updated entity — every entity already known to reach it — so longer
//     paths discovered late retroactively stretch earlier records.
//   - A per-cascade visited set bounds the propagation: within one cascade
//     each (entity, reference) cell is touched at most once, so cycles in
//     the input cannot make the wave chase its own tail. Self-referential
//     cells (entity == reference) are never stored.
//
// Why maximality matters: when two paths of different length join the same
// pair, the layout distance must be the longer one, otherwise the shorter
// path's edge would be drawn backwards after layering. The invariant
// dist(A,C) ≥ dist(A,B) + dist(B,C) holds for every known pair of records.
//
// When to use:
//
//   - Through layout.Classify, which feeds the records into layer assignment.
//   - Directly, when only reachability-with-longest-length is needed; the
//     Records form is a ready-made edge list of the transitive closure.
//
// Complexity:
//
//   - Time:  O(V·E) typical; each reference introduction touches its direct
//     predecessors and the cascade revisits a cell at most once per wave.
//   - Space: O(V²) for the dense interned distance matrix, plus one
//     dependents-index entry per stored record (at most O(V²)).
//
// The engine is total: disconnected pairs simply yield no record, cycles
// terminate via the visited stamps, and no input makes it fail.
package longpath
