// Package layout implements the classification orchestrator gluing the
// five pipeline phases together.
package layout

import (
	"github.com/katalvlaran/stratify/crossing"
	"github.com/katalvlaran/stratify/layering"
	"github.com/katalvlaran/stratify/longpath"
	"github.com/katalvlaran/stratify/ordering"
	"github.com/katalvlaran/stratify/relation"
)

// Classify assigns every entity a (layer, position) pair.
//
// Relations are read as "From depends on To": To lands on a larger layer
// index unless a longer path or a cycle forces a shift. Entities named only
// in relations still participate; entities in no relation are appended as a
// single trailing layer, preserving their input order. Empty input yields
// an empty Result.
//
// Classify never fails on data — the only possible error is
// ErrOptionViolation for an invalid Option.
func Classify(entities []Entity, relations []Relation, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 1. Extract the directed edge list from the relation records.
	o.OnPhase(PhaseNormalize)
	raw := make([]relation.Edge, 0, len(relations))
	for _, r := range relations {
		raw = append(raw, relation.Edge{From: r.From, To: r.To})
	}
	canonical, counts := relation.Normalize(raw)
	order := relation.ProcessingOrder(canonical, counts)

	// 2. Longest-path distances between every reachable pair.
	o.OnPhase(PhaseDistances)
	distances := longpath.Compute(canonical, order)

	// 3. Horizontal layer assignment.
	o.OnPhase(PhaseLayering)
	layers, layerOf := layering.Assign(distances, canonical, counts, order)

	// 4. Source-aware vertical ordering.
	o.OnPhase(PhaseOrdering)
	layers = ordering.BySource(layers, canonical, order)

	// 5. Barycenter crossing reduction; MaxSweeps 0 skips the phase.
	o.OnPhase(PhaseCrossing)
	if o.MaxSweeps > 0 && len(layers) > 1 {
		// The sweep budget was validated with the other options above.
		layers, _ = crossing.Minimize(layers, canonical, crossing.WithMaxSweeps(o.MaxSweeps))
	}

	// 6. Append entities untouched by any edge as one trailing layer.
	o.OnPhase(PhaseIsolated)
	isolated := make([]string, 0)
	for _, ent := range entities {
		if _, placed := layerOf[ent.Name]; placed {
			continue
		}
		layerOf[ent.Name] = len(layers)
		isolated = append(isolated, ent.Name)
	}
	if len(isolated) > 0 {
		layers = append(layers, isolated)
	}

	return &Result{Layers: layers, LayerOf: layerOf}, nil
}
