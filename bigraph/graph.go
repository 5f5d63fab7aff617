// Package bigraph provides the bipartite graph store consumed by the
// matching engine.
//
// This file declares the Graph type, its sentinel errors, and the
// NewGraph constructor, together with all mutating and querying methods.
package bigraph

import (
	"errors"
	"sync"
)

// Sentinel errors for bipartite graph operations.
var (
	// ErrEmptyVertexID indicates that a provided vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("bigraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("bigraph: vertex not found")
)

// Graph is a bipartite adjacency relation left → {right...}.
//
// Left and right IDs live in disjoint namespaces: the same string may be
// used as both a left and a right vertex without the two colliding.
// Insertion order of vertices and edges is preserved and exposed through
// every read accessor.
type Graph struct {
	mu sync.RWMutex

	// leftOrder lists left vertex IDs in registration order.
	leftOrder []string
	// rightOrder lists right vertex IDs in registration order.
	rightOrder []string

	// lefts and rights are membership sets for O(1) lookups.
	lefts  map[string]struct{}
	rights map[string]struct{}

	// adj maps each left ID to its right neighbors in insertion order;
	// adjSet mirrors adj for O(1) duplicate-edge detection.
	adj    map[string][]string
	adjSet map[string]map[string]struct{}

	// edgeCount tracks the number of distinct left→right associations.
	edgeCount int
}

// NewGraph returns an empty bipartite graph.
func NewGraph() *Graph {
	return &Graph{
		lefts:  make(map[string]struct{}),
		rights: make(map[string]struct{}),
		adj:    make(map[string][]string),
		adjSet: make(map[string]map[string]struct{}),
	}
}

// AddLeft registers id on the left side. Re-adding an existing left
// vertex is a no-op. Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddLeft(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addLeftLocked(id)

	return nil
}

// AddRight registers id on the right side. Re-adding an existing right
// vertex is a no-op. Returns ErrEmptyVertexID if id is empty.
func (g *Graph) AddRight(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addRightLocked(id)

	return nil
}

// AddEdge records the association left → right, registering either
// endpoint if it is not yet known. Duplicate edges are no-ops.
// Returns ErrEmptyVertexID if either ID is empty; in that case the graph
// is left untouched.
func (g *Graph) AddEdge(left, right string) error {
	if left == "" || right == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addLeftLocked(left)
	g.addRightLocked(right)

	if _, dup := g.adjSet[left][right]; dup {
		return nil
	}
	g.adjSet[left][right] = struct{}{}
	g.adj[left] = append(g.adj[left], right)
	g.edgeCount++

	return nil
}

// addLeftLocked inserts a left vertex; caller holds the write lock.
func (g *Graph) addLeftLocked(id string) {
	if _, ok := g.lefts[id]; ok {
		return
	}
	g.lefts[id] = struct{}{}
	g.leftOrder = append(g.leftOrder, id)
	g.adjSet[id] = make(map[string]struct{})
}

// addRightLocked inserts a right vertex; caller holds the write lock.
func (g *Graph) addRightLocked(id string) {
	if _, ok := g.rights[id]; ok {
		return
	}
	g.rights[id] = struct{}{}
	g.rightOrder = append(g.rightOrder, id)
}

// HasLeft reports whether id is registered on the left side.
func (g *Graph) HasLeft(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.lefts[id]

	return ok
}

// HasRight reports whether id is registered on the right side.
func (g *Graph) HasRight(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.rights[id]

	return ok
}

// HasEdge reports whether the association left → right exists.
func (g *Graph) HasEdge(left, right string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjSet[left][right]

	return ok
}

// Lefts returns a copy of the left vertex IDs in insertion order.
func (g *Graph) Lefts() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.leftOrder...)
}

// Rights returns a copy of the right vertex IDs in insertion order.
func (g *Graph) Rights() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.rightOrder...)
}

// AdjacentRights returns a copy of the right neighbors of the given left
// vertex, in edge-insertion order. A left vertex with no edges yields an
// empty slice. Returns ErrEmptyVertexID for an empty ID and
// ErrVertexNotFound if the left vertex is unknown.
func (g *Graph) AdjacentRights(left string) ([]string, error) {
	if left == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.lefts[left]; !ok {
		return nil, ErrVertexNotFound
	}

	return append([]string(nil), g.adj[left]...), nil
}

// LeftCount returns the number of left vertices.
func (g *Graph) LeftCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.leftOrder)
}

// RightCount returns the number of right vertices.
func (g *Graph) RightCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.rightOrder)
}

// EdgeCount returns the number of distinct left→right associations.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
