// Package lsqec compiles simultaneous multi-qubit Pauli measurement
// requests, expressed over a 2-D grid of error-corrected logical
// patches, into a concrete lattice-surgery layout: it routes temporary
// ancilla regions between the measured patches, stitches the affected
// borders, and records the lattice's evolution as an ordered sequence
// of isolated, replayable snapshots.
//
// The module is organized leaf-first:
//
//	pauli/     — Pauli operator vocabulary {I,X,Y,Z}, commutation & products
//	grid/      — cells, border orientations, border-type stitch algebra,
//	             operator → required-border-type mapping
//	lattice/   — patches, borders, the per-slice lattice, deep Clone,
//	             fixed layout initializers (linear array + distillery)
//	cellgraph/ — minimal cell-keyed graph with directed/undirected edges
//	             and multi-target BFS by hop count
//	routing/   — the ancilla routing engine: free-cell graph, directed
//	             activation edges, shortest-path routing, stitching
//	compose/   — the time-slice composer owning the snapshot history
//
// A typical compilation step:
//
//	lay := lattice.SimpleLayout(4)
//	c := compose.New(lay)
//	c.NewTimeSlice()
//
//	var req routing.Request
//	req.Add(grid.Cell{Col: 0, Row: 0}, pauli.X)
//	req.Add(grid.Cell{Col: 4, Row: 0}, pauli.Z)
//	if err := c.MeasureMultiPatch(req); err != nil {
//		// no partial stitching: the snapshot is untouched on error
//	}
//	c.NewTimeSlice()
//	c.ClearAncilla()
//
//	for _, slice := range c.Slices() { /* hand to a renderer */ }
//
// The core does not simulate quantum state and does not optimize
// routing: it computes one valid shortest-path routing per request and
// applies it deterministically.
package lsqec
