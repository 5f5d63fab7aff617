// Package matching implements maximum-cardinality bipartite matching
// over a bigraph.Graph via the Hopcroft–Karp algorithm.
//
// What
//
//   - MaximumMatching(g) pairs left vertices with distinct right
//     vertices so that the number of pairs is the largest possible for
//     the given adjacency relation.
//   - Returns a Matching: a partial bijection with forward (left→right)
//     and inverse (right→left) lookups, Len, and a deterministic Pairs
//     listing.
//   - The input graph is read once and never mutated; the engine holds
//     no state between calls.
//
// Why
//
//   - Deciding whether every element of one collection can be paired
//     one-to-one with a distinct element of another under some
//     equivalence is exactly maximum bipartite matching. The correspond
//     package builds such graphs from element slices and a predicate;
//     this package answers them.
//   - A matching smaller than either side is a normal result, not an
//     error — the caller interprets the gap (see correspond.Report).
//
// Algorithm
//
//	Hopcroft–Karp runs in rounds. Each round first layers the graph by
//	breadth-first search from all free left vertices (unmatched edges
//	directed left→right, matched edges right→left), stopping at the
//	shortest layer that touches a free right vertex. It then collects a
//	maximal set of vertex-disjoint shortest augmenting paths by
//	layer-bounded depth-first search and flips their edges into and out
//	of the matching. When layering finds no free right vertex the
//	matching is maximum and the engine stops.
//
// Determinism
//
//	The matching size is uniquely determined by the graph; repeated runs
//	always agree on it. Which maximum matching is returned follows the
//	insertion order of the graph's left vertices and edges — assert on
//	size and validity, not on a specific pairing, unless the maximum
//	matching is unique.
//
// Concurrency
//
//	MaximumMatching is synchronous and pure: it runs to completion with
//	no suspension points and no shared state, so independent calls may
//	run concurrently without synchronization. The polynomial bound makes
//	cancellation hooks unnecessary; none are offered.
//
// Complexity (V = |left| + |right|, E = |edges|)
//
//   - Time:   O(E·√V) — at most O(√V) rounds of O(V + E) each.
//   - Memory: O(V + E) for the adjacency snapshot, layer map, and
//     matching tables.
//
// Usage
//
//	g := bigraph.NewGraph()
//	g.AddEdge("a", "x")
//	g.AddEdge("a", "y")
//	g.AddEdge("b", "x")
//
//	m, err := matching.MaximumMatching(g)
//	if err != nil {
//	    // handle ErrGraphNil
//	}
//	fmt.Println(m.Len()) // 2
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil. Everything else —
//     including an empty graph, isolated vertices, or an incomplete
//     matching — is a normal result.
package matching
