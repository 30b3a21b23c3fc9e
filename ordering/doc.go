// Package ordering arranges the entities inside each layer so that entities
// feeding the same next-layer successor sit next to each other — the
// "source chains" that make provenance readable in the final drawing.
//
// Overview:
//
//   - Layers are processed right to left; the rightmost layer is simply
//     sorted by processing-order position.
//   - In every other layer an entity joins the group of its key successor:
//     the direct successor in the next layer with the smallest
//     processing-order index. Groups are emitted in the order their key
//     successors appear in the already-fixed next layer, and entities
//     inside a group are sorted by processing order.
//   - Entities with no successor in the next layer (pivots, or ends of
//     disconnected chains) come last, again in processing order.
//
// The partition itself is never touched: only positions inside each layer
// change. All ordering keys are total, so the result is deterministic.
//
// Complexity: O(V log V + E) per layer.
package ordering
