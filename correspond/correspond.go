package correspond

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/bimatch/bigraph"
	"github.com/katalvlaran/bimatch/matching"
)

// ErrNilPredicate is returned when Check is given a nil correspondence
// predicate.
var ErrNilPredicate = errors.New("correspond: nil predicate")

// File-local ID prefixes for synthesized bipartite vertices.
const (
	actualPrefix   = "a"
	expectedPrefix = "e"
)

// Func is a binary correspondence predicate: it reports whether an
// actual element corresponds to an expected element. It must be
// side-effect free; panics inside the predicate propagate to the caller
// of Check untouched.
type Func[A, E any] func(actual A, expected E) bool

// Pair couples an actual element with the expected element it was
// matched to.
type Pair[A, E any] struct {
	Actual   A
	Expected E
}

// Report describes a maximum one-to-one pairing of actual against
// expected elements under a correspondence predicate.
type Report[A, E any] struct {
	actual   []A
	expected []E
	pairs    []Pair[A, E]
	matchedA []bool
	matchedE []bool
}

// Check evaluates fn for every actual/expected combination, builds the
// induced bipartite relation (edge iff the predicate holds), and pairs
// the elements one-to-one so that the number of pairs is maximal.
//
// Elements are matched by position: duplicate values count as distinct
// items, each needing its own partner. The predicate is called exactly
// len(actual)·len(expected) times, in actual-major order.
//
// Returns ErrNilPredicate for a nil fn. A pairing that does not cover
// one or both sides is a normal result; inspect the Report to decide
// pass/fail.
func Check[A, E any](actual []A, expected []E, fn Func[A, E]) (*Report[A, E], error) {
	if fn == nil {
		return nil, ErrNilPredicate
	}

	// 1) Synthesize positional vertex IDs for both sides.
	actualIDs := make([]string, len(actual))
	for i := range actual {
		actualIDs[i] = actualPrefix + strconv.Itoa(i)
	}
	expectedIDs := make([]string, len(expected))
	expectedIdx := make(map[string]int, len(expected))
	for j := range expected {
		id := expectedPrefix + strconv.Itoa(j)
		expectedIDs[j] = id
		expectedIdx[id] = j
	}

	// 2) Build the bipartite relation: left = actual, right = expected.
	g := bigraph.NewGraph()
	for _, id := range actualIDs {
		if err := g.AddLeft(id); err != nil {
			return nil, fmt.Errorf("correspond: AddLeft(%s): %w", id, err)
		}
	}
	for _, id := range expectedIDs {
		if err := g.AddRight(id); err != nil {
			return nil, fmt.Errorf("correspond: AddRight(%s): %w", id, err)
		}
	}
	for i, a := range actual {
		for j, e := range expected {
			if fn(a, e) {
				if err := g.AddEdge(actualIDs[i], expectedIDs[j]); err != nil {
					return nil, fmt.Errorf("correspond: AddEdge(%s→%s): %w", actualIDs[i], expectedIDs[j], err)
				}
			}
		}
	}

	// 3) Run the engine.
	m, err := matching.MaximumMatching(g)
	if err != nil {
		return nil, err
	}

	// 4) Translate vertex pairs back into element pairs.
	rep := &Report[A, E]{
		actual:   actual,
		expected: expected,
		pairs:    make([]Pair[A, E], 0, m.Len()),
		matchedA: make([]bool, len(actual)),
		matchedE: make([]bool, len(expected)),
	}
	for i := range actual {
		rightID, ok := m.RightOf(actualIDs[i])
		if !ok {
			continue
		}
		j := expectedIdx[rightID]
		rep.pairs = append(rep.pairs, Pair[A, E]{Actual: actual[i], Expected: expected[j]})
		rep.matchedA[i] = true
		rep.matchedE[j] = true
	}

	return rep, nil
}

// MatchCount returns the number of matched actual/expected pairs.
func (r *Report[A, E]) MatchCount() int { return len(r.pairs) }

// Pairs returns the matched pairs in actual-slice order.
func (r *Report[A, E]) Pairs() []Pair[A, E] {
	return append([]Pair[A, E](nil), r.pairs...)
}

// UnmatchedActual returns the actual elements left without a distinct
// expected partner, in slice order.
func (r *Report[A, E]) UnmatchedActual() []A {
	var out []A
	for i, matched := range r.matchedA {
		if !matched {
			out = append(out, r.actual[i])
		}
	}

	return out
}

// UnmatchedExpected returns the expected elements no actual element was
// paired with, in slice order.
func (r *Report[A, E]) UnmatchedExpected() []E {
	var out []E
	for j, matched := range r.matchedE {
		if !matched {
			out = append(out, r.expected[j])
		}
	}

	return out
}

// ActualFullyMatched reports whether every actual element found a
// distinct expected partner.
func (r *Report[A, E]) ActualFullyMatched() bool {
	return len(r.pairs) == len(r.actual)
}

// ExpectedFullyMatched reports whether every expected element was
// paired with a distinct actual element.
func (r *Report[A, E]) ExpectedFullyMatched() bool {
	return len(r.pairs) == len(r.expected)
}

// Complete reports whether the pairing covers both sides entirely,
// i.e. actual and expected correspond element for element.
func (r *Report[A, E]) Complete() bool {
	return r.ActualFullyMatched() && r.ExpectedFullyMatched()
}
