package routing

import (
	"fmt"
	"sort"

	"github.com/latticekit/lsqec/cellgraph"
	"github.com/latticekit/lsqec/grid"
	"github.com/latticekit/lsqec/lattice"
)

// MeasureMultiPatch routes a simultaneous multi-patch Pauli measurement
// on lat. The first request entry is the routing source, the remaining
// entries are targets; every entry must be keyed by its patch's
// representative cell and request an X or Z operator.
//
// On success the borders of the measured patches that the routes attach
// to are stitched and one new Ancilla patch covering the routed free
// cells is appended. A request whose patches are directly adjacent can
// legitimately route zero cells; no ancilla patch is created then and a
// diagnostic is logged.
//
// On any error (ErrEmptyRequest, ErrNonRepresentativeKey,
// grid.ErrUnsupportedOperator, ErrRouteNotFound) the lattice is left
// completely unmodified.
func MeasureMultiPatch(lat *lattice.Lattice, req Request, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger.Sugar()

	if err := validate(lat, req); err != nil {
		return err
	}

	g := freeCellGraph(lat)
	source, targets, err := activate(g, lat, req)
	if err != nil {
		return err
	}

	paths, err := g.ShortestPaths(source, targets)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRouteNotFound, err)
	}
	log.Debugw("routed measurement",
		"source", source, "targets", len(targets), "graph_order", g.Order())

	// Every route exists; mutation is safe from here on.
	ancilla := materialize(lat, req, paths, targets)
	if len(ancilla) == 0 {
		log.Warnw("no ancilla cells routed for measurement; patches joined directly",
			"source", source, "targets", len(targets))
		return nil
	}
	lat.AddPatch(&lattice.Patch{
		Kind:  lattice.Ancilla,
		State: lattice.NoState,
		Cells: ancilla,
	})
	return nil
}

// validate fails fast on malformed requests, before any graph work:
// empty requests, keys on free cells, keys that are not patch
// representatives, and operators outside {X, Z}.
func validate(lat *lattice.Lattice, req Request) error {
	if req.Len() == 0 {
		return ErrEmptyRequest
	}
	for _, c := range req.Cells() {
		p := lat.PatchAt(c)
		if p == nil {
			return fmt.Errorf("%w: %v", ErrNoPatch, c)
		}
		if rep := p.Representative(); rep != c {
			return fmt.Errorf("%w: %v (representative is %v)", ErrNonRepresentativeKey, c, rep)
		}
		op, _ := req.Get(c)
		if _, err := grid.RequiredBorderType(op); err != nil {
			return fmt.Errorf("%w: operator %s requested on %v", err, op, c)
		}
	}
	return nil
}

// freeCellGraph builds the undirected graph of all free cells in the
// rectangle [0,Rows)×[0,Cols), with edges between 4-adjacent free
// cells. These are the cells available to host ancilla.
// Complexity: O(Rows×Cols×patches) due to the linear ownership scan.
func freeCellGraph(lat *lattice.Lattice) *cellgraph.Graph {
	rows, cols := lat.Rows(), lat.Cols()
	g := cellgraph.New()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := grid.Cell{Col: col, Row: row}
			if lat.IsFree(c) {
				g.AddVertex(c)
			}
		}
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := grid.Cell{Col: col, Row: row}
			if !g.HasVertex(c) {
				continue
			}
			// Right and bottom neighbors cover each pair once.
			for _, n := range []grid.Cell{c.Neighbor(grid.Right), c.Neighbor(grid.Bottom)} {
				if g.HasVertex(n) {
					_ = g.AddUndirectedEdge(c, n)
				}
			}
		}
	}
	return g
}

// activate injects one vertex per requested patch and connects each to
// the free-cell graph with directed edges along the borders matching
// the requested operator: outward from the source patch, inward to the
// targets. The direction convention forces paths to flow from the
// single source through free territory into a target, never through a
// target's interior toward another.
func activate(g *cellgraph.Graph, lat *lattice.Lattice, req Request) (source grid.Cell, targets []grid.Cell, err error) {
	active := req.Cells()
	source = active[0]
	targets = active[1:]
	for _, c := range active {
		g.AddVertex(c)
	}

	for _, p := range lat.Patches {
		rep := p.Representative()
		op, ok := req.Get(rep)
		if !ok {
			continue // inactive patch
		}
		required, rerr := grid.RequiredBorderType(op)
		if rerr != nil {
			// validate() already rejected unsupported operators.
			return source, nil, rerr
		}
		for _, b := range p.Borders {
			if b.Type != required {
				continue
			}
			n := b.Neighbor()
			if !g.HasVertex(n) {
				continue
			}
			if rep == source {
				err = g.AddDirectedEdge(rep, n)
			} else {
				err = g.AddDirectedEdge(n, rep)
			}
			if err != nil {
				return source, nil, err
			}
		}
	}
	return source, targets, nil
}

// materialize stitches, for every routed path, the source border facing
// the path's second cell and the target border facing its second-to-last
// cell, and returns the deduplicated union of all interior path cells in
// deterministic (Col, Row) order. Only borders of the operator-required
// type are stitched, so a stitched border always had the requested type
// before the call.
func materialize(lat *lattice.Lattice, req Request, paths map[grid.Cell][]grid.Cell, targets []grid.Cell) []grid.Cell {
	interior := make(map[grid.Cell]struct{})
	for _, target := range targets {
		path := paths[target]
		stitchFacing(lat, req, path[0], path[1])
		stitchFacing(lat, req, path[len(path)-1], path[len(path)-2])
		for _, c := range path[1 : len(path)-1] {
			interior[c] = struct{}{}
		}
	}

	cells := make([]grid.Cell, 0, len(interior))
	for c := range interior {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Less(cells[j]) })
	return cells
}

// stitchFacing stitches the borders of rep's patch that face the cell
// to and carry the border type required by rep's requested operator.
func stitchFacing(lat *lattice.Lattice, req Request, rep, to grid.Cell) {
	op, _ := req.Get(rep)
	required, _ := grid.RequiredBorderType(op)
	p := lat.PatchAt(rep)
	for _, b := range p.BordersFacing(to) {
		if b.Type == required {
			b.Type = b.Type.Stitched()
		}
	}
}
