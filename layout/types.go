// Package layout defines the public records, result forms, options, and
// error definitions of the classification orchestrator.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification. The pipeline itself is total: only
// API misuse (an invalid Option) can surface an error.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Entity is one named node of the diagram.
//
// Name uniquely identifies the entity within one Classify call. Metadata
// stores arbitrary user data; it is opaque to the pipeline and passes
// through untouched.
type Entity struct {
	// Name is the unique identifier for this Entity.
	Name string

	// Metadata stores arbitrary user data. The pipeline never reads it.
	Metadata map[string]interface{}
}

// Relation is a directed dependency between two entities, by name.
// From is drawn to the left of To in the final layout.
type Relation struct {
	// From is the depending entity; it lands on a smaller layer index.
	From string

	// To is the depended-upon entity, placed to the right of From.
	To string
}

// Phase identifies one stage of the classification pipeline, for the
// OnPhase observer hook.
type Phase string

// Pipeline phases, in execution order.
const (
	PhaseNormalize Phase = "normalize"
	PhaseDistances Phase = "distances"
	PhaseLayering  Phase = "layering"
	PhaseOrdering  Phase = "ordering"
	PhaseCrossing  Phase = "crossing"
	PhaseIsolated  Phase = "isolated"
)

// Option configures Classify via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Classify
// is invoked.
type Option func(*Options)

// Options holds the parameters and callbacks of one Classify call.
type Options struct {
	// MaxSweeps bounds the crossing-minimization iterations; 0 skips the
	// crossing phase entirely.
	MaxSweeps int

	// OnPhase is called as each pipeline phase begins.
	OnPhase func(p Phase)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - four crossing sweeps
//   - no-op OnPhase hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxSweeps: 4,
		OnPhase:   func(Phase) {},
		err:       nil,
	}
}

// WithMaxSweeps overrides the crossing-sweep budget.
//
//	n > 0: run at most n sweeps
//	n == 0: skip crossing minimization
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSweeps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSweeps cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxSweeps = n
	}
}

// WithOnPhase registers a callback invoked as each phase begins.
func WithOnPhase(fn func(p Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// Result is the classified layout:
//   - Layers: ordered left-to-right; each layer ordered top-to-bottom.
//   - LayerOf: layer index per entity, covering every input entity once.
type Result struct {
	Layers  [][]string
	LayerOf map[string]int
}

// String renders the layers one per line, "index: members", top-to-bottom
// order preserved. Intended for examples and debugging output.
func (r *Result) String() string {
	var b strings.Builder
	for i, layer := range r.Layers {
		fmt.Fprintf(&b, "%d: %s\n", i, strings.Join(layer, " "))
	}

	return b.String()
}
