package lattice

import "github.com/latticekit/lsqec/grid"

// SingleSquarePatch builds a one-cell patch with the conventional
// boundary assignment: Solid (Z) borders on top and bottom, Dashed (X)
// borders on left and right.
func SingleSquarePatch(c grid.Cell, kind PatchKind, state QubitState) *Patch {
	return &Patch{
		Kind:  kind,
		State: state,
		Cells: []grid.Cell{c},
		Borders: []Border{
			{Cell: c, Orientation: grid.Top, Type: grid.Solid},
			{Cell: c, Orientation: grid.Bottom, Type: grid.Solid},
			{Cell: c, Orientation: grid.Left, Type: grid.Dashed},
			{Cell: c, Orientation: grid.Right, Type: grid.Dashed},
		},
	}
}

// SimpleRightFacingDistillery builds the fixed seven-patch distillation
// template with its top-left corner at topLeft. The template occupies a
// 5×3 footprint: two 2-cell distillation qubits on the left column pair
// and five single-cell magic/plus patches around them.
func SimpleRightFacingDistillery(topLeft grid.Cell) []*Patch {
	x, y := topLeft.Col, topLeft.Row
	return []*Patch{
		SingleSquarePatch(grid.Cell{Col: x + 2, Row: y}, DistillationQubit, Magic),
		SingleSquarePatch(grid.Cell{Col: x + 3, Row: y}, DistillationQubit, Magic),
		SingleSquarePatch(grid.Cell{Col: x + 4, Row: y + 1}, DistillationQubit, Plus),
		SingleSquarePatch(grid.Cell{Col: x + 3, Row: y + 2}, DistillationQubit, Magic),
		SingleSquarePatch(grid.Cell{Col: x + 2, Row: y + 2}, DistillationQubit, Magic),
		{
			Kind:  DistillationQubit,
			State: Zero,
			Cells: []grid.Cell{{Col: x, Row: y}, {Col: x, Row: y + 1}},
			Borders: []Border{
				{Cell: grid.Cell{Col: x, Row: y}, Orientation: grid.Top, Type: grid.Solid},
				{Cell: grid.Cell{Col: x, Row: y}, Orientation: grid.Left, Type: grid.Solid},
				{Cell: grid.Cell{Col: x, Row: y}, Orientation: grid.Right, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x, Row: y + 1}, Orientation: grid.Left, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x, Row: y + 1}, Orientation: grid.Bottom, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x, Row: y + 1}, Orientation: grid.Right, Type: grid.Solid},
			},
		},
		{
			Kind:  DistillationQubit,
			State: Magic,
			Cells: []grid.Cell{{Col: x + 1, Row: y}, {Col: x + 1, Row: y + 1}},
			Borders: []Border{
				{Cell: grid.Cell{Col: x + 1, Row: y}, Orientation: grid.Top, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x + 1, Row: y}, Orientation: grid.Left, Type: grid.Solid},
				{Cell: grid.Cell{Col: x + 1, Row: y}, Orientation: grid.Right, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x + 1, Row: y + 1}, Orientation: grid.Left, Type: grid.Solid},
				{Cell: grid.Cell{Col: x + 1, Row: y + 1}, Orientation: grid.Bottom, Type: grid.Dashed},
				{Cell: grid.Cell{Col: x + 1, Row: y + 1}, Orientation: grid.Right, Type: grid.Solid},
			},
		},
	}
}

// SimpleLayout builds a linear array of numQubits one-spaced square
// qubit patches at (2j, 0), each issued a PatchID, followed by a
// right-facing distillery starting at column 2·numQubits. Minimum grid
// height is two rows so one free row always exists for routing.
func SimpleLayout(numQubits int) *Lattice {
	l := New(nil, 2, 0)
	for j := 0; j < numQubits; j++ {
		p := SingleSquarePatch(grid.Cell{Col: 2 * j, Row: 0}, Qubit, Zero)
		p.ID = l.NewPatchID()
		l.AddPatch(p)
	}
	for _, p := range SimpleRightFacingDistillery(grid.Cell{Col: 2 * numQubits, Row: 0}) {
		l.AddPatch(p)
	}
	return l
}
