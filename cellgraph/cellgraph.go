// Package cellgraph provides the minimal graph the ancilla routing
// engine searches over: vertices keyed by grid cells, directed and
// undirected edges, and a single-source multi-target shortest-path
// search by hop count.
//
// The routing engine's logic depends only on this surface, keeping it
// independent of any particular graph representation. All edges are
// unweighted, so an adjacency map plus breadth-first search suffices.
package cellgraph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eapache/queue"

	"github.com/latticekit/lsqec/grid"
)

// Sentinel errors for cellgraph operations.
var (
	// ErrVertexNotFound indicates an edge endpoint or search vertex is
	// not in the graph.
	ErrVertexNotFound = errors.New("cellgraph: vertex not found")
	// ErrUnreachable indicates one or more search targets cannot be
	// reached from the source.
	ErrUnreachable = errors.New("cellgraph: target unreachable")
)

// Graph is a directed adjacency-map graph over grid cells. Undirected
// edges are stored as a mirrored pair, the same convention the routing
// engine relies on for free-cell connectivity.
type Graph struct {
	vertices map[grid.Cell]struct{}
	adj      map[grid.Cell]map[grid.Cell]struct{} // from → reachable neighbors
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[grid.Cell]struct{}),
		adj:      make(map[grid.Cell]map[grid.Cell]struct{}),
	}
}

// AddVertex inserts c if missing (idempotent).
func (g *Graph) AddVertex(c grid.Cell) {
	if _, ok := g.vertices[c]; ok {
		return
	}
	g.vertices[c] = struct{}{}
	g.adj[c] = make(map[grid.Cell]struct{})
}

// HasVertex reports whether c is in the graph.
func (g *Graph) HasVertex(c grid.Cell) bool {
	_, ok := g.vertices[c]
	return ok
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// AddDirectedEdge adds a one-way edge from → to.
// Returns ErrVertexNotFound if either endpoint is missing.
func (g *Graph) AddDirectedEdge(from, to grid.Cell) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, to)
	}
	g.adj[from][to] = struct{}{}
	return nil
}

// AddUndirectedEdge adds a bidirectional edge between a and b.
// Returns ErrVertexNotFound if either endpoint is missing.
func (g *Graph) AddUndirectedEdge(a, b grid.Cell) error {
	if err := g.AddDirectedEdge(a, b); err != nil {
		return err
	}
	return g.AddDirectedEdge(b, a)
}

// neighbors returns the cells reachable from c in (Col, Row) sorted
// order, so traversal tie-breaking is deterministic.
func (g *Graph) neighbors(c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, len(g.adj[c]))
	for n := range g.adj[c] {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ShortestPaths runs one breadth-first search from source and returns
// a shortest path (by hop count) to every target, honoring edge
// direction. Each path starts at source and ends at its target.
//
// Returns ErrVertexNotFound if source or any target is missing, and
// ErrUnreachable naming every unreached target if the search exhausts
// the graph first.
// Complexity: O(V + E) for the search, O(path) per reconstruction.
func (g *Graph) ShortestPaths(source grid.Cell, targets []grid.Cell) (map[grid.Cell][]grid.Cell, error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}
	for _, t := range targets {
		if !g.HasVertex(t) {
			return nil, fmt.Errorf("%w: target %v", ErrVertexNotFound, t)
		}
	}

	// BFS with parent links; frontier is a FIFO ring buffer.
	parent := make(map[grid.Cell]grid.Cell, len(g.vertices))
	visited := map[grid.Cell]bool{source: true}
	frontier := queue.New()
	frontier.Add(source)
	for frontier.Length() > 0 {
		cur := frontier.Remove().(grid.Cell)
		for _, nbr := range g.neighbors(cur) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			parent[nbr] = cur
			frontier.Add(nbr)
		}
	}

	paths := make(map[grid.Cell][]grid.Cell, len(targets))
	var missing []grid.Cell
	for _, t := range targets {
		if !visited[t] {
			missing = append(missing, t)
			continue
		}
		paths[t] = g.pathTo(source, t, parent)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no path from %v to %v", ErrUnreachable, source, missing)
	}
	return paths, nil
}

// pathTo rebuilds source → dest from the BFS parent links.
func (g *Graph) pathTo(source, dest grid.Cell, parent map[grid.Cell]grid.Cell) []grid.Cell {
	var rev []grid.Cell
	for cur := dest; ; {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		cur = parent[cur]
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
