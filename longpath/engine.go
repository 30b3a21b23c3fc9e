// Package longpath implements progressive cluster expansion: longest-path
// distances grow outward from each reference entity as the processing order
// introduces it, and every lengthening cascades along the dependents index.
package longpath

import (
	"github.com/katalvlaran/stratify/relation"
)

// update is one pending maximizing update in a propagation cascade:
// "the longest path from entity to ref is at least dist edges".
type update struct {
	entity, ref int
	dist        int
}

// engine holds the interned working state of one Compute call.
//
// All per-entity structures are indexed by dense IDs assigned from the
// processing order, so iteration order — and therefore the result — is
// fully deterministic. The visited stamps are generation-counted: bumping
// wave invalidates the whole array in O(1) instead of clearing it.
type engine struct {
	n     int
	dist  []int   // n×n row-major distance matrix; 0 = no path known
	refs  [][]int // per entity: references stored under it, insertion order
	deps  [][]int // per entity: dependents (entities that reach it), insertion order
	preds [][]int // per entity: direct predecessors, canonical edge order
	stamp []uint32
	wave  uint32
	work  []update
}

// Compute runs the progressive longest-path engine over the canonical edges.
//
// order must be the processing order for the same edges (every entity that
// appears in an edge, exactly once); it fixes both the interning and the
// sequence in which references are introduced. The engine never fails:
// cycles terminate, disconnected pairs yield no record.
func Compute(canonical []relation.Edge, order []string) *Distances {
	n := len(order)
	e := &engine{
		n:     n,
		dist:  make([]int, n*n),
		refs:  make([][]int, n),
		deps:  make([][]int, n),
		preds: make([][]int, n),
		stamp: make([]uint32, n*n),
	}

	// 1. Intern entities by processing-order position.
	index := make(map[string]int, n)
	for i, name := range order {
		index[name] = i
	}

	// 2. One-shot pass over the edges: the direct-predecessor cluster of
	//    every entity, in canonical edge order.
	for _, edge := range canonical {
		from, okF := index[edge.From]
		to, okT := index[edge.To]
		if !okF || !okT {
			continue // edge endpoints outside the order carry no information
		}
		e.preds[to] = append(e.preds[to], from)
	}

	// 3. Walk the processing order; each entity becomes the next reference.
	for ref := 0; ref < n; ref++ {
		for _, pred := range e.preds[ref] {
			// 3a. The atomic distance: pred reaches ref in one edge.
			e.apply(pred, ref, 1)
			// 3b. pred inherits every distance already stored under ref,
			//     one hop longer. Snapshot the list: the cascade below may
			//     extend it mid-iteration.
			inherited := append([]int(nil), e.refs[ref]...)
			for _, prior := range inherited {
				e.apply(pred, prior, 1+e.dist[ref*n+prior])
			}
		}
	}

	return &Distances{
		index: index,
		names: append([]string(nil), order...),
		n:     n,
		dist:  e.dist,
	}
}

// apply performs one maximizing update and drains its propagation cascade.
//
// A cell is overwritten only by a strictly larger value; every overwrite
// re-offers the grown distance to all dependents of the updated entity.
// Within one cascade each (entity, reference) cell is visited at most once
// — the generation stamps guarantee termination on cyclic inputs, where the
// wave would otherwise lap the cycle with ever-growing values.
func (e *engine) apply(entity, ref, dist int) {
	e.wave++
	e.work = append(e.work[:0], update{entity: entity, ref: ref, dist: dist})

	for len(e.work) > 0 {
		u := e.work[0]
		e.work = e.work[1:]

		// Self-distances are meaningless for layering; storing them would
		// only let a cycle feed its own growth.
		if u.entity == u.ref {
			continue
		}
		cell := u.entity*e.n + u.ref
		if e.stamp[cell] == e.wave {
			continue // already settled in this cascade
		}
		e.stamp[cell] = e.wave

		current := e.dist[cell]
		if current >= u.dist {
			continue // maximizing update: never shrink, never churn equals
		}
		if current == 0 {
			// First sighting of this (entity, reference) pair: index it.
			e.refs[u.entity] = append(e.refs[u.entity], u.ref)
			e.deps[u.ref] = append(e.deps[u.ref], u.entity)
		}
		e.dist[cell] = u.dist

		// Everything that reaches u.entity now reaches u.ref through it.
		for _, dep := range e.deps[u.entity] {
			e.work = append(e.work, update{
				entity: dep,
				ref:    u.ref,
				dist:   e.dist[dep*e.n+u.entity] + u.dist,
			})
		}
	}
}
