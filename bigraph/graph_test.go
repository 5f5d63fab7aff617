package bigraph_test

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/katalvlaran/bimatch/bigraph"
)

// TestEmptyIDs verifies that every mutator rejects the empty vertex ID
// and leaves the graph untouched.
func TestEmptyIDs(t *testing.T) {
	g := bigraph.NewGraph()
	if err := g.AddLeft(""); !errors.Is(err, bigraph.ErrEmptyVertexID) {
		t.Errorf("AddLeft(\"\"): want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddRight(""); !errors.Is(err, bigraph.ErrEmptyVertexID) {
		t.Errorf("AddRight(\"\"): want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddEdge("", "x"); !errors.Is(err, bigraph.ErrEmptyVertexID) {
		t.Errorf("AddEdge(\"\", x): want ErrEmptyVertexID, got %v", err)
	}
	if err := g.AddEdge("a", ""); !errors.Is(err, bigraph.ErrEmptyVertexID) {
		t.Errorf("AddEdge(a, \"\"): want ErrEmptyVertexID, got %v", err)
	}
	if _, err := g.AdjacentRights(""); !errors.Is(err, bigraph.ErrEmptyVertexID) {
		t.Errorf("AdjacentRights(\"\"): want ErrEmptyVertexID, got %v", err)
	}
	if n := g.LeftCount() + g.RightCount() + g.EdgeCount(); n != 0 {
		t.Errorf("graph mutated by rejected calls: %d entries", n)
	}
}

// TestAddEdgeRegistersEndpoints verifies that AddEdge creates unknown
// endpoints on demand.
func TestAddEdgeRegistersEndpoints(t *testing.T) {
	g := bigraph.NewGraph()
	if err := g.AddEdge("a", "x"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasLeft("a") || !g.HasRight("x") || !g.HasEdge("a", "x") {
		t.Errorf("endpoints not registered: HasLeft=%v HasRight=%v HasEdge=%v",
			g.HasLeft("a"), g.HasRight("x"), g.HasEdge("a", "x"))
	}
}

// TestDuplicatesAreNoOps verifies that repeated vertex and edge
// registrations neither fail nor inflate any count.
func TestDuplicatesAreNoOps(t *testing.T) {
	g := bigraph.NewGraph()
	for i := 0; i < 3; i++ {
		if err := g.AddLeft("a"); err != nil {
			t.Fatalf("AddLeft: %v", err)
		}
		if err := g.AddRight("x"); err != nil {
			t.Fatalf("AddRight: %v", err)
		}
		if err := g.AddEdge("a", "x"); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	if g.LeftCount() != 1 || g.RightCount() != 1 || g.EdgeCount() != 1 {
		t.Errorf("counts = %d/%d/%d; want 1/1/1",
			g.LeftCount(), g.RightCount(), g.EdgeCount())
	}
	rights, err := g.AdjacentRights("a")
	if err != nil {
		t.Fatalf("AdjacentRights: %v", err)
	}
	if want := []string{"x"}; !reflect.DeepEqual(rights, want) {
		t.Errorf("AdjacentRights = %v; want %v", rights, want)
	}
}

// TestInsertionOrderPreserved verifies that Lefts, Rights, and
// AdjacentRights all report registration order, not lexical order.
func TestInsertionOrderPreserved(t *testing.T) {
	g := bigraph.NewGraph()
	_ = g.AddEdge("c", "z")
	_ = g.AddEdge("a", "y")
	_ = g.AddEdge("a", "x")
	_ = g.AddLeft("b")

	if want := []string{"c", "a", "b"}; !reflect.DeepEqual(g.Lefts(), want) {
		t.Errorf("Lefts = %v; want %v", g.Lefts(), want)
	}
	if want := []string{"z", "y", "x"}; !reflect.DeepEqual(g.Rights(), want) {
		t.Errorf("Rights = %v; want %v", g.Rights(), want)
	}
	rights, _ := g.AdjacentRights("a")
	if want := []string{"y", "x"}; !reflect.DeepEqual(rights, want) {
		t.Errorf("AdjacentRights(a) = %v; want %v", rights, want)
	}
}

// TestAdjacentRightsUnknownVertex verifies the not-found error and that
// a right-side ID is not accepted as a left vertex.
func TestAdjacentRightsUnknownVertex(t *testing.T) {
	g := bigraph.NewGraph()
	_ = g.AddEdge("a", "x")
	if _, err := g.AdjacentRights("missing"); !errors.Is(err, bigraph.ErrVertexNotFound) {
		t.Errorf("unknown vertex: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.AdjacentRights("x"); !errors.Is(err, bigraph.ErrVertexNotFound) {
		t.Errorf("right-side ID on left lookup: want ErrVertexNotFound, got %v", err)
	}
}

// TestDisjointNamespaces verifies the same ID may live on both sides
// without colliding.
func TestDisjointNamespaces(t *testing.T) {
	g := bigraph.NewGraph()
	_ = g.AddEdge("v", "v")
	if !g.HasLeft("v") || !g.HasRight("v") {
		t.Fatalf("ID %q should exist on both sides", "v")
	}
	if g.LeftCount() != 1 || g.RightCount() != 1 || g.EdgeCount() != 1 {
		t.Errorf("counts = %d/%d/%d; want 1/1/1",
			g.LeftCount(), g.RightCount(), g.EdgeCount())
	}
}

// TestReadAccessorsReturnCopies verifies callers cannot corrupt the
// graph through returned slices.
func TestReadAccessorsReturnCopies(t *testing.T) {
	g := bigraph.NewGraph()
	_ = g.AddEdge("a", "x")
	_ = g.AddEdge("a", "y")

	lefts := g.Lefts()
	lefts[0] = "mutated"
	rights, _ := g.AdjacentRights("a")
	rights[0] = "mutated"

	if got := g.Lefts(); got[0] != "a" {
		t.Errorf("Lefts leaked internal slice: %v", got)
	}
	if got, _ := g.AdjacentRights("a"); got[0] != "x" {
		t.Errorf("AdjacentRights leaked internal slice: %v", got)
	}
}

// TestConcurrentMutation hammers the graph from several goroutines;
// run with -race to verify lock coverage.
func TestConcurrentMutation(t *testing.T) {
	const workers = 8
	const perWorker = 200

	g := bigraph.NewGraph()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", (i+w)%perWorker))
				_ = g.HasEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", i))
				_, _ = g.AdjacentRights(fmt.Sprintf("L%d", i))
				_ = g.Lefts()
			}
		}(w)
	}
	wg.Wait()

	if g.LeftCount() != perWorker {
		t.Errorf("LeftCount = %d; want %d", g.LeftCount(), perWorker)
	}
}
