// Package bimatch is a small, focused library for maximum-cardinality
// bipartite matching and for elementwise correspondence checks built
// on top of it.
//
// 🚀 What is bimatch?
//
//	A thread-safe, pure-Go answer to "can these two collections be
//	paired one-to-one?":
//		• bigraph/    — the bipartite Graph store: two disjoint vertex
//		  domains and an insertion-ordered left→right adjacency relation
//		• matching/   — the Hopcroft–Karp engine: maximum-cardinality
//		  matching in O(E·√V), returned as a consistent bijection
//		• correspond/ — the elementwise checker: feed it two slices and
//		  a predicate, get back matched pairs plus the missing and
//		  unexpected leftovers
//
// ✨ Why choose bimatch?
//
//   - Correct by construction – the matching is a single bijective map,
//     never two drifting pointer tables
//   - Rock-solid guarantees – maximum size always, verified against
//     brute force; R/W locks on the graph store
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – insertion order in, reproducible pairing out
//
// Quick ASCII example:
//
//	    actual      expected
//	    a ──────── x
//	    a ──────── y        maximum matching: {a↔y, b↔x}
//	    b ──────── x
//
// Start with correspond.Check for collection comparison, or build a
// bigraph.Graph yourself and call matching.MaximumMatching directly.
package bimatch
