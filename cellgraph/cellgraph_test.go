package cellgraph

import (
	"errors"
	"reflect"
	"testing"

	"github.com/latticekit/lsqec/grid"
)

func cell(col, row int) grid.Cell { return grid.Cell{Col: col, Row: row} }

// line builds a graph of undirected edges along row 0 between columns
// [0, n).
func line(t *testing.T, n int) *Graph {
	t.Helper()
	g := New()
	for col := 0; col < n; col++ {
		g.AddVertex(cell(col, 0))
	}
	for col := 0; col+1 < n; col++ {
		if err := g.AddUndirectedEdge(cell(col, 0), cell(col+1, 0)); err != nil {
			t.Fatalf("AddUndirectedEdge: %v", err)
		}
	}
	return g
}

// TestAddEdge_MissingEndpoint rejects edges to absent vertices.
func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := New()
	g.AddVertex(cell(0, 0))
	if err := g.AddDirectedEdge(cell(0, 0), cell(1, 0)); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("missing 'to': want ErrVertexNotFound, got %v", err)
	}
	if err := g.AddUndirectedEdge(cell(5, 5), cell(0, 0)); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("missing 'from': want ErrVertexNotFound, got %v", err)
	}
}

// TestAddVertex_Idempotent re-adding a vertex keeps its edges.
func TestAddVertex_Idempotent(t *testing.T) {
	g := line(t, 2)
	g.AddVertex(cell(0, 0))
	paths, err := g.ShortestPaths(cell(0, 0), []grid.Cell{cell(1, 0)})
	if err != nil {
		t.Fatalf("ShortestPaths: %v", err)
	}
	if len(paths[cell(1, 0)]) != 2 {
		t.Errorf("edges lost after re-adding vertex: %v", paths)
	}
}

// TestShortestPaths_Line finds the hop-count path along a line.
func TestShortestPaths_Line(t *testing.T) {
	g := line(t, 5)
	paths, err := g.ShortestPaths(cell(0, 0), []grid.Cell{cell(4, 0), cell(2, 0)})
	if err != nil {
		t.Fatalf("ShortestPaths: %v", err)
	}
	want4 := []grid.Cell{cell(0, 0), cell(1, 0), cell(2, 0), cell(3, 0), cell(4, 0)}
	if !reflect.DeepEqual(paths[cell(4, 0)], want4) {
		t.Errorf("path to (4,0) = %v; want %v", paths[cell(4, 0)], want4)
	}
	if got := len(paths[cell(2, 0)]); got != 3 {
		t.Errorf("path to (2,0) has %d cells; want 3", got)
	}
}

// TestShortestPaths_Directionality verifies a directed edge is not
// traversable backwards.
func TestShortestPaths_Directionality(t *testing.T) {
	g := New()
	a, b := cell(0, 0), cell(1, 0)
	g.AddVertex(a)
	g.AddVertex(b)
	if err := g.AddDirectedEdge(a, b); err != nil {
		t.Fatalf("AddDirectedEdge: %v", err)
	}
	if _, err := g.ShortestPaths(a, []grid.Cell{b}); err != nil {
		t.Errorf("forward search failed: %v", err)
	}
	if _, err := g.ShortestPaths(b, []grid.Cell{a}); !errors.Is(err, ErrUnreachable) {
		t.Errorf("backward search: want ErrUnreachable, got %v", err)
	}
}

// TestShortestPaths_Unreachable reports every unreached target.
func TestShortestPaths_Unreachable(t *testing.T) {
	g := line(t, 2)
	island := cell(9, 9)
	g.AddVertex(island)
	_, err := g.ShortestPaths(cell(0, 0), []grid.Cell{cell(1, 0), island})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("want ErrUnreachable, got %v", err)
	}
}

// TestShortestPaths_MissingVertices rejects absent source or target
// before searching.
func TestShortestPaths_MissingVertices(t *testing.T) {
	g := line(t, 2)
	if _, err := g.ShortestPaths(cell(9, 9), nil); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("missing source: want ErrVertexNotFound, got %v", err)
	}
	if _, err := g.ShortestPaths(cell(0, 0), []grid.Cell{cell(9, 9)}); !errors.Is(err, ErrVertexNotFound) {
		t.Errorf("missing target: want ErrVertexNotFound, got %v", err)
	}
}

// TestShortestPaths_DeterministicTieBreak pins the (Col, Row) neighbor
// order: with two equal-length routes around a square, the lower-column
// cells win.
func TestShortestPaths_DeterministicTieBreak(t *testing.T) {
	// 2×2 block: (0,0)-(1,0)
	//            (0,1)-(1,1)
	g := New()
	for _, c := range []grid.Cell{cell(0, 0), cell(1, 0), cell(0, 1), cell(1, 1)} {
		g.AddVertex(c)
	}
	for _, e := range [][2]grid.Cell{
		{cell(0, 0), cell(1, 0)},
		{cell(0, 0), cell(0, 1)},
		{cell(1, 0), cell(1, 1)},
		{cell(0, 1), cell(1, 1)},
	} {
		if err := g.AddUndirectedEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddUndirectedEdge: %v", err)
		}
	}
	for i := 0; i < 10; i++ {
		paths, err := g.ShortestPaths(cell(0, 0), []grid.Cell{cell(1, 1)})
		if err != nil {
			t.Fatalf("ShortestPaths: %v", err)
		}
		want := []grid.Cell{cell(0, 0), cell(0, 1), cell(1, 1)}
		if !reflect.DeepEqual(paths[cell(1, 1)], want) {
			t.Fatalf("run %d: path = %v; want %v", i, paths[cell(1, 1)], want)
		}
	}
}

// TestShortestPaths_SourceIsOnlyVertex covers the trivial graph.
func TestShortestPaths_SourceIsOnlyVertex(t *testing.T) {
	g := New()
	g.AddVertex(cell(0, 0))
	paths, err := g.ShortestPaths(cell(0, 0), nil)
	if err != nil {
		t.Fatalf("ShortestPaths: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v; want empty", paths)
	}
}
