// Package lattice aggregates grid cells and borders into named regions
// (patches) and holds the whole grid's patch set. It answers the
// spatial queries of the routing engine (which patch owns a cell, is a
// cell free, patch by identity) and provides the deep-copy snapshot
// operation the time-slice composer relies on for isolation.
package lattice

import (
	"fmt"

	"github.com/latticekit/lsqec/grid"
)

// PatchKind classifies a patch.
type PatchKind uint8

const (
	// Qubit is a logical data qubit patch.
	Qubit PatchKind = iota
	// DistillationQubit is a patch inside a magic-state distillation region.
	DistillationQubit
	// Ancilla is a temporary routing region created by a multi-patch
	// measurement and removed by ClearAncilla.
	Ancilla
)

// String returns the patch kind name.
func (k PatchKind) String() string {
	switch k {
	case Qubit:
		return "Qubit"
	case DistillationQubit:
		return "DistillationQubit"
	case Ancilla:
		return "Ancilla"
	default:
		return fmt.Sprintf("PatchKind(%d)", uint8(k))
	}
}

// QubitState is the optional logical state a patch was initialized to.
type QubitState uint8

const (
	// NoState marks patches without a tracked logical state (ancilla).
	NoState QubitState = iota
	// Zero is the |0⟩ state.
	Zero
	// Plus is the |+⟩ state.
	Plus
	// Magic is the |m⟩ magic state consumed by distillation.
	Magic
)

// String returns the state name.
func (s QubitState) String() string {
	switch s {
	case NoState:
		return "NoState"
	case Zero:
		return "Zero"
	case Plus:
		return "Plus"
	case Magic:
		return "Magic"
	default:
		return fmt.Sprintf("QubitState(%d)", uint8(s))
	}
}

// PatchID is an opaque handle issued by a Lattice on request, used only
// for external addressing of patches. The zero value means "no
// identity"; IDs are never used for structural equality.
type PatchID uint64

// NoID is the zero PatchID, carried by patches without an identity.
const NoID PatchID = 0

// Border is one side of one patch cell, typed by the border algebra in
// package grid. A border belongs to exactly one patch via its owning
// cell.
type Border struct {
	// Cell is the patch cell owning this border.
	Cell grid.Cell
	// Orientation is the side of Cell the border sits on.
	Orientation grid.Orientation
	// Type is the current border type; mutated in place by stitching.
	Type grid.BorderType
}

// Neighbor returns the cell on the far side of the border.
func (b Border) Neighbor() grid.Cell { return b.Cell.Neighbor(b.Orientation) }

// Patch is a connected region of cells representing one logical qubit,
// distillation resource or routed ancilla region.
//
// Cells[0] is the patch's representative: the canonical address used
// whenever external callers refer to the patch, e.g. as a key in a
// measurement request. Connectivity of Cells is implied by the layout
// initializers and the routing engine, not separately enforced.
type Patch struct {
	Kind    PatchKind
	State   QubitState
	Cells   []grid.Cell
	Borders []Border
	ID      PatchID
}

// Representative returns the canonical cell addressing this patch.
func (p *Patch) Representative() grid.Cell { return p.Cells[0] }

// Contains reports whether c is one of the patch's cells.
// Complexity: O(len(Cells)).
func (p *Patch) Contains(c grid.Cell) bool {
	for _, pc := range p.Cells {
		if pc == c {
			return true
		}
	}
	return false
}

// BordersFacing collects every border of the patch whose far side is
// the cell to. Used when stitching the patch to a physically adjacent
// cell of another patch or of a routed path.
// Complexity: O(len(Borders)).
func (p *Patch) BordersFacing(to grid.Cell) []*Border {
	var facing []*Border
	for i := range p.Borders {
		if p.Borders[i].Neighbor() == to {
			facing = append(facing, &p.Borders[i])
		}
	}
	return facing
}

// clone returns a deep copy of the patch.
func (p *Patch) clone() *Patch {
	cp := &Patch{
		Kind:    p.Kind,
		State:   p.State,
		Cells:   make([]grid.Cell, len(p.Cells)),
		Borders: make([]Border, len(p.Borders)),
		ID:      p.ID,
	}
	copy(cp.Cells, p.Cells)
	copy(cp.Borders, p.Borders)
	return cp
}
