// Package crossing counts edge crossings between adjacent layers and
// reduces them with the iterated two-direction barycenter sweep.
//
// Overview:
//
//   - Count scores one adjacent layer pair: two spanning edges cross when
//     their endpoints appear in opposite vertical order on the two layers.
//     Total sums Count over every adjacent pair.
//   - Minimize keeps two copies of the layer sequence: the working copy and
//     the best one seen. Each iteration sorts every layer by the mean
//     position of its predecessors in the previous layer (forward pass),
//     then by the mean position of its successors in the next layer
//     (backward pass). Entities with no neighbor in the adjacent layer sink
//     to the bottom (+Inf barycenter); all sorts are stable, so tied
//     entities keep their prior position and the result is deterministic.
//   - After each iteration the total is re-counted; a strictly better
//     arrangement replaces best, and zero crossings stops early.
//
// Minimize is a heuristic: it guarantees the returned arrangement never has
// more crossings than the input, not that the minimum is reached — layered
// crossing minimization is NP-hard and target workloads have narrow layers.
//
// Complexity: O(sweeps · (V log V + E²)); the crossing count is the
// straightforward pairwise test.
package crossing
