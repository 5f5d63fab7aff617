// Package matching provides error definitions and the Matching result
// type for maximum-cardinality bipartite matching over a bigraph.Graph.
package matching

import (
	"errors"
	"sort"
)

// ErrGraphNil is returned if a nil graph pointer is passed to the engine.
var ErrGraphNil = errors.New("matching: graph is nil")

// Pair couples a left vertex with the right vertex it is matched to.
type Pair struct {
	Left  string
	Right string
}

// Matching is a partial bijection between left and right vertex IDs.
//
// It keeps paired forward (left→right) and inverse (right→left) lookup
// tables that are mutated only through the single pair entry point, so
// the two views can never drift apart: no left vertex ever maps to two
// rights and no right vertex is ever the image of two lefts.
//
// Values returned by the engine carry no exported mutators; treat them
// as immutable snapshots.
type Matching struct {
	forward map[string]string
	inverse map[string]string
}

// newMatching returns an empty matching with capacity hint n.
func newMatching(n int) *Matching {
	return &Matching{
		forward: make(map[string]string, n),
		inverse: make(map[string]string, n),
	}
}

// pair records left↔right, displacing any prior pairing of either
// endpoint. This is the only mutation entry point; both lookup tables
// are updated together.
func (m *Matching) pair(left, right string) {
	if old, ok := m.forward[left]; ok {
		delete(m.inverse, old)
	}
	if old, ok := m.inverse[right]; ok {
		delete(m.forward, old)
	}
	m.forward[left] = right
	m.inverse[right] = left
}

// clone returns an independent copy of m.
func (m *Matching) clone() *Matching {
	c := newMatching(len(m.forward))
	for l, r := range m.forward {
		c.forward[l] = r
		c.inverse[r] = l
	}

	return c
}

// Len returns the number of matched pairs.
func (m *Matching) Len() int { return len(m.forward) }

// RightOf returns the right vertex matched to left, if any.
func (m *Matching) RightOf(left string) (string, bool) {
	r, ok := m.forward[left]

	return r, ok
}

// LeftOf returns the left vertex matched to right, if any.
func (m *Matching) LeftOf(right string) (string, bool) {
	l, ok := m.inverse[right]

	return l, ok
}

// HasLeft reports whether left is covered by the matching.
func (m *Matching) HasLeft(left string) bool {
	_, ok := m.forward[left]

	return ok
}

// HasRight reports whether right is covered by the matching.
func (m *Matching) HasRight(right string) bool {
	_, ok := m.inverse[right]

	return ok
}

// Pairs returns all matched pairs sorted by left vertex ID ascending.
func (m *Matching) Pairs() []Pair {
	pairs := make([]Pair, 0, len(m.forward))
	for l, r := range m.forward {
		pairs = append(pairs, Pair{Left: l, Right: r})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Left < pairs[j].Left })

	return pairs
}
