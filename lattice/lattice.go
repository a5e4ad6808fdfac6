package lattice

import "github.com/latticekit/lsqec/grid"

// Lattice holds every patch of one time slice together with the
// declared minimum grid dimensions. The grid is unbounded upward:
// Rows and Cols derive from the occupied cells, floored at the minima.
//
// Invariant: no cell belongs to two patches simultaneously. The layout
// initializers and the routing engine (which only claims free cells)
// preserve it.
type Lattice struct {
	Patches []*Patch
	MinRows int
	MinCols int

	// nextPatchID backs NewPatchID issuance; carried by Clone so
	// handles stay unique across the slice history.
	nextPatchID PatchID
}

// New returns an empty lattice with the given minimum dimensions.
func New(patches []*Patch, minRows, minCols int) *Lattice {
	return &Lattice{Patches: patches, MinRows: minRows, MinCols: minCols}
}

// NewPatchID issues a fresh opaque patch handle, never NoID.
func (l *Lattice) NewPatchID() PatchID {
	l.nextPatchID++
	return l.nextPatchID
}

// PatchAt returns the patch owning cell c, or nil if c is free.
// Complexity: O(patches × cells), linear scan.
func (l *Lattice) PatchAt(c grid.Cell) *Patch {
	for _, p := range l.Patches {
		if p.Contains(c) {
			return p
		}
	}
	return nil
}

// IsFree reports whether no patch owns cell c.
func (l *Lattice) IsFree(c grid.Cell) bool { return l.PatchAt(c) == nil }

// RepresentativeOf normalizes a cell to its owning patch's
// representative; a free cell is its own representative.
func (l *Lattice) RepresentativeOf(c grid.Cell) grid.Cell {
	if p := l.PatchAt(c); p != nil {
		return p.Representative()
	}
	return c
}

// KindAt returns the kind of the patch owning c and true, or false if
// c is free.
func (l *Lattice) KindAt(c grid.Cell) (PatchKind, bool) {
	if p := l.PatchAt(c); p != nil {
		return p.Kind, true
	}
	return 0, false
}

// PatchByID returns the patch carrying the given handle, or nil.
// Patches without identity (NoID) are never matched.
func (l *Lattice) PatchByID(id PatchID) *Patch {
	if id == NoID {
		return nil
	}
	for _, p := range l.Patches {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Rows returns 1 + the maximum occupied row, floored at MinRows.
// Recomputed on every call: patches mutate between calls and a cached
// value would go stale.
func (l *Lattice) Rows() int {
	max := l.MinRows
	for _, p := range l.Patches {
		for _, c := range p.Cells {
			if c.Row+1 > max {
				max = c.Row + 1
			}
		}
	}
	return max
}

// Cols returns 1 + the maximum occupied column, floored at MinCols.
func (l *Lattice) Cols() int {
	max := l.MinCols
	for _, p := range l.Patches {
		for _, c := range p.Cells {
			if c.Col+1 > max {
				max = c.Col + 1
			}
		}
	}
	return max
}

// AddPatch appends p to the lattice.
func (l *Lattice) AddPatch(p *Patch) {
	l.Patches = append(l.Patches, p)
}

// Clear empties the patch set. Minimum dimensions are preserved.
func (l *Lattice) Clear() {
	l.Patches = nil
}

// Clone returns a structural deep copy: mutating the clone (or the
// original) can never be observed through the other. This is the sole
// isolation guarantee of the time-slice history.
// Complexity: O(patches × (cells + borders)).
func (l *Lattice) Clone() *Lattice {
	cp := &Lattice{
		Patches:     make([]*Patch, len(l.Patches)),
		MinRows:     l.MinRows,
		MinCols:     l.MinCols,
		nextPatchID: l.nextPatchID,
	}
	for i, p := range l.Patches {
		cp.Patches[i] = p.clone()
	}
	return cp
}
