// Package relation canonicalizes raw directed edges and derives the
// connectivity-ranked processing order that the whole layout pipeline
// shares for deterministic tie-breaking.
//
// Overview:
//
//   - Normalize walks the raw edge sequence once, drops self-loops, and
//     keeps exactly one representative per unordered entity pair — the
//     orientation of its first occurrence. Insertion order is preserved
//     because later phases break ties by first appearance.
//   - Connection counts of both endpoints grow with every retained edge;
//     the counts feed reference selection and record-sorting downstream.
//   - ProcessingOrder enumerates every connected entity once, by a
//     breadth-first traversal seeded at the best-connected entity and
//     expanding neighbors in decreasing connection count. Disconnected
//     components are visited in ranking order of their best seed.
//
// The processing order is total and deterministic; it is consumed by the
// longest-path engine (reference introduction order) and by the vertical
// orderer (position tie-breaking).
//
// Complexity:
//
//   - Normalize:        O(E) time, O(E) memory.
//   - ProcessingOrder:  O(V log V + E log V) time (neighbor ranking sorts),
//     O(V + E) memory.
//
// Both operations are pure: they never fail and never mutate their inputs.
package relation
