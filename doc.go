// Package stratify turns a set of named entities and directed relations
// between them into a layered diagram layout: every entity receives a
// (layer, position) pair such that dependencies point left-to-right,
// provenance groups stay together vertically, and edge crossings are kept low.
//
// 🚀 What is stratify?
//
//	A deterministic, pure-computation layout core that brings together:
//
//	  • Relation canonicalization and connectivity-ranked processing order
//	  • Progressive longest-path distances between every reachable pair
//	  • Centrality-seeded horizontal layer assignment
//	  • Source-aware vertical ordering and barycenter crossing reduction
//
// ✨ Why choose stratify?
//
//   - Total                — no input (cycles, duplicates, islands) makes it fail
//   - Deterministic        — identical canonical input, byte-identical output
//   - Side-effect free     — no I/O, no globals, no state across calls
//   - Pure Go              — no cgo, no hidden dependencies
//
// Everything is organized as one package per pipeline phase:
//
//	relation/  — edge canonicalization, connection counts, processing order
//	longpath/  — longest-path distance engine (progressive cluster expansion)
//	layering/  — reference selection and horizontal layer assignment
//	ordering/  — source-aware vertical ordering within layers
//	crossing/  — crossing counting and iterated barycenter minimization
//	layout/    — the Classify orchestrator tying the phases together
//
// Quick ASCII example:
//
//	    A──▶B──▶D
//	    │        ▲
//	    └───▶C───┘
//
//	classifies as layers [A] [B C] [D]: the diamond closes two columns right.
//
// Start with layout.Classify; reach for the phase packages directly when you
// need a single stage (for instance crossing.Count to score a hand-made layout).
package stratify
