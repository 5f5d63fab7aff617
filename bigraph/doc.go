// Package bigraph defines the bipartite Graph type: a thread-safe,
// multi-valued adjacency relation from a left vertex set to a right
// vertex set, with edges only crossing between the two sides.
//
// What
//
//   - Two disjoint vertex domains, left and right, keyed by string ID.
//   - AddLeft / AddRight register vertices; AddEdge(l, r) records a
//     left→right association and registers both endpoints on demand.
//   - Duplicate vertex registrations and duplicate edges are no-ops.
//   - Read API returns defensive copies: Lefts, Rights, AdjacentRights.
//
// Why
//
//   - Input model for maximum-cardinality bipartite matching
//     (see the matching package): left vertices are candidate items,
//     right vertices are the targets they may be paired with.
//   - The matching engine never mutates the graph; callers build it once
//     and hand it over.
//
// Determinism
//
//	Lefts(), Rights(), and AdjacentRights() all preserve insertion order.
//	Algorithms that iterate the left side therefore inherit exactly the
//	order in which the caller registered vertices and edges.
//
// Concurrency
//
//	All methods are safe for concurrent use; mutations are serialized by
//	an internal sync.RWMutex and reads take a shared lock.
//
// Complexity (L = |left|, R = |right|, E = |edges|)
//
//   - AddLeft / AddRight / AddEdge / Has*: O(1) amortized.
//   - Lefts / Rights: O(L) / O(R) per call (copy).
//   - AdjacentRights: O(d) per call, d = out-degree of the left vertex.
//   - Memory: O(L + R + E).
//
// Errors
//
//   - ErrEmptyVertexID  if any vertex ID is the empty string.
//   - ErrVertexNotFound if AdjacentRights is asked about an unknown left vertex.
package bigraph
