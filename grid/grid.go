package grid

import "github.com/latticekit/lsqec/pauli"

// orientationOffset maps each side to the (col, row) delta of the cell
// it faces.
var orientationOffset = map[Orientation][2]int{
	Top:    {0, -1},
	Bottom: {0, +1},
	Left:   {-1, 0},
	Right:  {+1, 0},
}

// Neighbor returns the unique cell adjacent to c across side o.
// Complexity: O(1).
func (c Cell) Neighbor(o Orientation) Cell {
	d := orientationOffset[o]
	return Cell{Col: c.Col + d[0], Row: c.Row + d[1]}
}

// BorderOrientation returns the side of from that faces to.
// Returns ErrNotAdjacent if the two cells are not 4-neighbors.
// Complexity: O(1).
func BorderOrientation(from, to Cell) (Orientation, error) {
	switch [2]int{to.Col - from.Col, to.Row - from.Row} {
	case [2]int{0, -1}:
		return Top, nil
	case [2]int{0, +1}:
		return Bottom, nil
	case [2]int{-1, 0}:
		return Left, nil
	case [2]int{+1, 0}:
		return Right, nil
	default:
		return 0, ErrNotAdjacent
	}
}

// Stitched returns the stitched counterpart of b. Types without a
// stitched pair are fixed points.
func (b BorderType) Stitched() BorderType {
	switch b {
	case Solid:
		return SolidStitched
	case Dashed:
		return DashedStitched
	default:
		return b
	}
}

// Unstitched returns the unstitched counterpart of b. Types without an
// unstitched pair are fixed points, so Unstitched is idempotent.
func (b BorderType) Unstitched() BorderType {
	switch b {
	case SolidStitched:
		return Solid
	case DashedStitched:
		return Dashed
	default:
		return b
	}
}

// IsStitched reports whether b is one of the stitched border types.
func (b BorderType) IsStitched() bool {
	return b == SolidStitched || b == DashedStitched
}

// RequiredBorderType maps a requested measurement operator to the
// border type the routed connection must attach to: X joins across a
// Dashed border, Z across a Solid one.
// Returns ErrUnsupportedOperator for anything outside {X, Z}; Y is not
// decomposed by the routing core.
func RequiredBorderType(op pauli.Operator) (BorderType, error) {
	switch op {
	case pauli.X:
		return Dashed, nil
	case pauli.Z:
		return Solid, nil
	default:
		return 0, ErrUnsupportedOperator
	}
}
