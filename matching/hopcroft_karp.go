package matching

import (
	"github.com/katalvlaran/bimatch/bigraph"
)

// MaximumMatching computes a maximum-cardinality matching of the
// bipartite graph `g` using the Hopcroft–Karp algorithm
// (breadth-first layering + layer-bounded depth-first augmentation).
//
// It returns:
//   - matching : a partial bijection left↔right of maximum size; when
//     several maximum matchings exist, which one is returned depends on
//     the insertion order of the graph's left vertices and edges.
//   - err      : ErrGraphNil for a nil graph.
//
// Steps:
//  1. Snapshot the graph's left order and adjacency once (O(L + E)).
//  2. Repeat until no augmenting path exists:
//     a. Layering pass: BFS from all free left vertices at layer 1,
//     following unmatched edges left→right and matched edges
//     right→left; record the shortest layer at which a free right
//     vertex appears and stop expanding past it (O(L + E)).
//     b. If no free right vertex was reached, the matching is maximum.
//     c. Augmentation pass: for each free left vertex, in insertion
//     order, run a depth-first walk constrained to consecutive BFS
//     layers; on success, toggle every traversed edge on the way
//     back up the recursion, growing the matching by one (O(E) total
//     per round, since each left vertex is visited at most once).
//  3. Return an independent copy of the accumulated matching.
//
// The input graph is never mutated, and the engine keeps no state
// between calls: independent invocations may run concurrently.
//
// Complexity:
//
//	Time:   O(E·√V) — at most O(√V) rounds, each O(L + E).
//	Memory: O(L + E) for the adjacency snapshot and per-round layer map.
func MaximumMatching(g *bigraph.Graph) (*Matching, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Snapshot left order and adjacency; the graph is not touched again.
	lefts := g.Lefts()
	adj := make(map[string][]string, len(lefts))
	for _, l := range lefts {
		rights, err := g.AdjacentRights(l)
		if err != nil {
			return nil, err
		}
		adj[l] = rights
	}

	s := &searcher{
		lefts: lefts,
		adj:   adj,
		match: newMatching(len(lefts)),
	}

	// 3) Rounds: layer, then augment along shortest vertex-disjoint paths.
	for s.layerRound() {
		for _, l := range s.lefts {
			if !s.match.HasLeft(l) {
				s.tryAugment(l)
			}
		}
	}

	// 4) Hand back a copy so later runs can never alias the result.
	return s.match.clone(), nil
}

// searcher holds the per-run state of one Hopcroft–Karp execution.
type searcher struct {
	lefts []string            // left vertices in caller insertion order
	adj   map[string][]string // left → right adjacency snapshot
	match *Matching           // accumulating partial bijection

	// layer assigns each left vertex its alternating-path distance for
	// the current round; absent means unreached, 0 means consumed.
	layer map[string]int

	// target is the shortest layer at which a free right vertex was
	// seen this round; 0 until one is found.
	target int
}

// layerRound recomputes the layer map by breadth-first search from all
// free left vertices and reports whether an augmenting path exists.
//
// Unmatched edges are traversed left→right; a matched right vertex is
// crossed back to its partner, which joins the next layer. Expansion
// stops once the frontier reaches the shortest layer adjacent to a free
// right vertex, so only shortest augmenting paths survive into the
// augmentation pass.
func (s *searcher) layerRound() bool {
	s.layer = make(map[string]int, len(s.lefts))
	s.target = 0

	// Seed the frontier with every free left vertex at layer 1.
	queue := make([]string, 0, len(s.lefts))
	for _, l := range s.lefts {
		if !s.match.HasLeft(l) {
			s.layer[l] = 1
			queue = append(queue, l)
		}
	}

	for i := 0; i < len(queue); i++ {
		l := queue[i]
		k := s.layer[l]
		// Layers at or past the target only yield longer paths.
		if s.target != 0 && k >= s.target {
			continue
		}
		for _, r := range s.adj[l] {
			partner, matched := s.match.LeftOf(r)
			if !matched {
				// Free right vertex: the round's shortest path length
				// is fixed the first time this happens.
				if s.target == 0 {
					s.target = k
				}
				continue
			}
			// Matched right vertex: cross its unique matched edge back.
			if _, seen := s.layer[partner]; !seen {
				s.layer[partner] = k + 1
				queue = append(queue, partner)
			}
		}
	}

	return s.target != 0
}

// tryAugment attempts a depth-first augmenting walk from the free left
// vertex l, moving only to right vertices and, through matched edges,
// to left vertices at exactly the next BFS layer.
//
// On success every edge along the path is toggled on the way back up
// the recursion, so each left vertex ends up paired with the most
// specific right vertex found. Whether it succeeds or dead-ends, l's
// layer is zeroed so no other path reuses it this round.
func (s *searcher) tryAugment(l string) bool {
	k := s.layer[l]
	for _, r := range s.adj[l] {
		partner, matched := s.match.LeftOf(r)
		if !matched {
			// Free right vertex ends the path; claim it.
			s.layer[l] = 0
			s.match.pair(l, r)

			return true
		}
		// Only descend along the shortest-path layering.
		if s.layer[partner] == k+1 && s.tryAugment(partner) {
			// The recursion re-paired partner deeper in; r is ours now.
			s.layer[l] = 0
			s.match.pair(l, r)

			return true
		}
	}
	// Dead end: exclude l from the rest of the round.
	s.layer[l] = 0

	return false
}
