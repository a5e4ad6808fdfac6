package compose_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/latticekit/lsqec/compose"
	"github.com/latticekit/lsqec/grid"
	"github.com/latticekit/lsqec/lattice"
	"github.com/latticekit/lsqec/pauli"
	"github.com/latticekit/lsqec/routing"
)

var allowUnexported = cmp.AllowUnexported(lattice.Lattice{})

func cell(col, row int) grid.Cell { return grid.Cell{Col: col, Row: row} }

// linearLayout places one square qubit patch per column in cols on
// row 0 with a two-row minimum.
func linearLayout(cols ...int) *lattice.Lattice {
	l := lattice.New(nil, 2, 0)
	for _, col := range cols {
		p := lattice.SingleSquarePatch(cell(col, 0), lattice.Qubit, lattice.Zero)
		p.ID = l.NewPatchID()
		l.AddPatch(p)
	}
	return l
}

// measureRequest builds the standard 3-patch request used across the
// suite.
func measureRequest() routing.Request {
	var req routing.Request
	req.Add(cell(0, 0), pauli.X)
	req.Add(cell(4, 0), pauli.Z)
	req.Add(cell(6, 0), pauli.X)
	return req
}

// ComposerSuite exercises the time-slice state machine end to end.
type ComposerSuite struct {
	suite.Suite
}

func TestComposerSuite(t *testing.T) {
	suite.Run(t, new(ComposerSuite))
}

// TestInitialState verifies the constructor seeds exactly one slice.
func (s *ComposerSuite) TestInitialState() {
	c := compose.New(linearLayout(0, 4, 6))
	require.Len(s.T(), c.Slices(), 1)
}

// TestSnapshotIsolation mutates slice n and requires slice n-1 to stay
// bit-for-bit identical.
func (s *ComposerSuite) TestSnapshotIsolation() {
	c := compose.New(linearLayout(0, 4, 6))
	before := c.Slices()[0].Clone()

	c.NewTimeSlice()
	require.NoError(s.T(), c.MeasureMultiPatch(measureRequest()))

	require.Len(s.T(), c.Slices(), 2)
	require.Empty(s.T(), cmp.Diff(before, c.Slices()[0], allowUnexported),
		"slice 0 changed after mutating slice 1")
	require.NotEmpty(s.T(), cmp.Diff(c.Slices()[0], c.Slices()[1], allowUnexported),
		"measurement left slice 1 identical to slice 0")
}

// TestMeasureDoesNotAppendSlice verifies MeasureMultiPatch acts in
// place on the latest slice.
func (s *ComposerSuite) TestMeasureDoesNotAppendSlice() {
	c := compose.New(linearLayout(0, 4, 6))
	require.NoError(s.T(), c.MeasureMultiPatch(measureRequest()))
	require.Len(s.T(), c.Slices(), 1)
}

// TestClearAncilla_CompleteAndIdempotent requires that after one clear
// no ancilla patch and no stitched border remains, and that a second
// clear changes nothing.
func (s *ComposerSuite) TestClearAncilla_CompleteAndIdempotent() {
	c := compose.New(linearLayout(0, 4, 6))
	require.NoError(s.T(), c.MeasureMultiPatch(measureRequest()))

	c.ClearAncilla()
	cleared := c.Slices()[0].Clone()
	for _, p := range c.Slices()[0].Patches {
		require.NotEqual(s.T(), lattice.Ancilla, p.Kind, "ancilla patch survived clear")
		for _, b := range p.Borders {
			require.False(s.T(), b.Type.IsStitched(),
				"stitched border %v/%s survived clear", b.Cell, b.Orientation)
		}
	}

	c.ClearAncilla()
	require.Empty(s.T(), cmp.Diff(cleared, c.Slices()[0], allowUnexported),
		"second ClearAncilla was not a no-op")
}

// TestClearAncilla_NoAncillaIsNoOp runs the clear on a lattice that
// never had an ancilla patch.
func (s *ComposerSuite) TestClearAncilla_NoAncillaIsNoOp() {
	c := compose.New(linearLayout(0, 4, 6))
	before := c.Slices()[0].Clone()
	c.ClearAncilla()
	require.Empty(s.T(), cmp.Diff(before, c.Slices()[0], allowUnexported))
}

// TestClearLattice empties only the latest slice.
func (s *ComposerSuite) TestClearLattice() {
	c := compose.New(linearLayout(0, 4, 6))
	c.NewTimeSlice()
	c.ClearLattice()
	require.Empty(s.T(), c.Slices()[1].Patches)
	require.NotEmpty(s.T(), c.Slices()[0].Patches)
}

// TestMeasureClearCycle runs the canonical measure → clear → measure
// sequence across slices and checks the history stays consistent.
func (s *ComposerSuite) TestMeasureClearCycle() {
	c := compose.New(lattice.SimpleLayout(4)) // qubits at columns 0,2,4,6
	var first routing.Request
	first.Add(cell(0, 0), pauli.X)
	first.Add(cell(4, 0), pauli.Z)

	c.NewTimeSlice()
	require.NoError(s.T(), c.MeasureMultiPatch(first))
	c.NewTimeSlice()
	c.ClearAncilla()

	var second routing.Request
	second.Add(cell(2, 0), pauli.Z)
	second.Add(cell(6, 0), pauli.Z)
	c.NewTimeSlice()
	require.NoError(s.T(), c.MeasureMultiPatch(second))

	slices := c.Slices()
	require.Len(s.T(), slices, 4)

	// Slice 1 holds the first measurement's ancilla, slice 2 is clean,
	// slice 3 holds the second measurement's.
	countAncilla := func(l *lattice.Lattice) int {
		n := 0
		for _, p := range l.Patches {
			if p.Kind == lattice.Ancilla {
				n++
			}
		}
		return n
	}
	require.Equal(s.T(), 0, countAncilla(slices[0]))
	require.Equal(s.T(), 1, countAncilla(slices[1]))
	require.Equal(s.T(), 0, countAncilla(slices[2]))
	require.Equal(s.T(), 1, countAncilla(slices[3]))
}

// TestFailedMeasureLeavesSliceUntouched propagates routing errors and
// keeps the latest snapshot unchanged.
func (s *ComposerSuite) TestFailedMeasureLeavesSliceUntouched() {
	c := compose.New(linearLayout(0, 4, 6))
	c.NewTimeSlice()
	before := c.Slices()[1].Clone()

	var bad routing.Request
	bad.Add(cell(0, 0), pauli.X)
	bad.Add(cell(4, 0), pauli.Y)
	require.ErrorIs(s.T(), c.MeasureMultiPatch(bad), grid.ErrUnsupportedOperator)
	require.Empty(s.T(), cmp.Diff(before, c.Slices()[1], allowUnexported))
}
