// Package correspond answers "does every element of one collection
// correspond, one to one, with a distinct element of another?" for an
// arbitrary binary predicate, by reducing the question to maximum
// bipartite matching.
//
// What
//
//   - Check(actual, expected, fn) evaluates fn for every combination,
//     builds the bipartite relation (edge iff fn holds), and computes a
//     maximum one-to-one pairing via matching.MaximumMatching.
//   - The resulting Report exposes the matched Pairs, the elements left
//     over on either side (UnmatchedActual / UnmatchedExpected), and
//     the pass/fail predicates ActualFullyMatched, ExpectedFullyMatched,
//     and Complete.
//
// Why
//
//   - Comparing collections under a loose equivalence — "numerically
//     within tolerance", "same key fields" — cannot be done by sorting
//     or set difference: an actual element may correspond to several
//     expected elements and vice versa, and each partner may be claimed
//     only once. Greedy pairing under-counts; matching does not.
//   - The unmatched listings are exactly what a diagnostic needs: which
//     actual elements were unexpected, which expected ones are missing.
//
// Semantics
//
//   - Elements are matched by position, so duplicates count as distinct
//     items, each needing its own partner.
//   - The predicate runs exactly len(actual)·len(expected) times; it is
//     never recovered around, so a panic inside it reaches the caller
//     of Check unchanged.
//   - An incomplete pairing is a normal result, not an error.
//
// Complexity (n = len(actual), m = len(expected))
//
//   - Time:   O(n·m) predicate calls + O(E·√(n+m)) matching.
//   - Memory: O(n·m) worst case for the induced relation.
//
// Usage
//
//	within := func(a, e float64) bool { return math.Abs(a-e) <= 0.05 }
//	rep, err := correspond.Check(actual, expected, within)
//	if err != nil {
//	    // handle ErrNilPredicate
//	}
//	if !rep.Complete() {
//	    fmt.Println("unexpected:", rep.UnmatchedActual())
//	    fmt.Println("missing:  ", rep.UnmatchedExpected())
//	}
//
// Errors
//
//   - ErrNilPredicate if fn is nil.
package correspond
