// Package layering assigns every connected entity an integer layer index
// consistent with the longest-path distances.
//
// This file declares the small helpers shared by reference selection and
// the placement loop.
package layering

import "github.com/katalvlaran/stratify/relation"

// neighborMass sums the connection counts of every entity directly adjacent
// to name in the canonical edge set, in either direction. It is the second
// criterion of the reference-selection cascade: among equally connected
// entities, the one whose neighborhood is itself best connected wins.
func neighborMass(name string, canonical []relation.Edge, counts map[string]int) int {
	mass := 0
	for _, e := range canonical {
		switch name {
		case e.From:
			mass += counts[e.To]
		case e.To:
			mass += counts[e.From]
		}
	}

	return mass
}
