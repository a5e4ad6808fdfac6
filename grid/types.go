// Package grid defines the typed primitives of the surface-code grid:
// cell coordinates, border orientation, border types and their stitch
// algebra, and the Pauli-operator → required-border-type mapping.
//
// Everything in this package is pure data plus total lookup functions;
// spatial aggregates live in package lattice.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrNotAdjacent indicates two cells are not 4-neighbors.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
	// ErrUnsupportedOperator indicates an operator outside {X, Z} was
	// mapped to a border type. Y decomposition is not implemented.
	ErrUnsupportedOperator = errors.New("grid: operator has no border type")
)

// Cell addresses one grid cell by column and row. The grid is unbounded
// upward; lattices only declare minimum dimensions.
type Cell struct {
	Col, Row int
}

// String renders the cell as "(col,row)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Less orders cells by column, then row. Used wherever a deterministic
// cell enumeration is required.
func (c Cell) Less(o Cell) bool {
	if c.Col != o.Col {
		return c.Col < o.Col
	}
	return c.Row < o.Row
}

// Orientation identifies one of the four sides of a cell.
type Orientation uint8

const (
	// Top is the side facing row-1.
	Top Orientation = iota
	// Bottom is the side facing row+1.
	Bottom
	// Left is the side facing col-1.
	Left
	// Right is the side facing col+1.
	Right
)

// String returns the side name.
func (o Orientation) String() string {
	switch o {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// BorderType classifies a patch border. Solid and Dashed borders carry
// the Z and X boundary respectively; their Stitched counterparts mark a
// logically joined border during a multi-patch measurement. AncillaJoin
// marks the border of a routed ancilla region.
type BorderType uint8

const (
	// Solid is an unstitched Z-type border.
	Solid BorderType = iota
	// SolidStitched is a stitched Z-type border.
	SolidStitched
	// Dashed is an unstitched X-type border.
	Dashed
	// DashedStitched is a stitched X-type border.
	DashedStitched
	// AncillaJoin marks a border joining an ancilla region.
	AncillaJoin
)

// String returns the border type name.
func (b BorderType) String() string {
	switch b {
	case Solid:
		return "Solid"
	case SolidStitched:
		return "SolidStitched"
	case Dashed:
		return "Dashed"
	case DashedStitched:
		return "DashedStitched"
	case AncillaJoin:
		return "AncillaJoin"
	default:
		return fmt.Sprintf("BorderType(%d)", uint8(b))
	}
}
