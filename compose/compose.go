// Package compose owns the ordered sequence of lattice snapshots that
// records a compilation run. The composer advances time by deep-copying
// the latest snapshot and dispatches every high-level operation
// (measure, clear ancilla, clear lattice) onto that snapshot only, so
// earlier slices are never retroactively altered.
//
// The composer is single-threaded by contract: every operation runs to
// completion before the next is invoked.
package compose

import (
	"go.uber.org/zap"

	"github.com/latticekit/lsqec/lattice"
	"github.com/latticekit/lsqec/routing"
)

// Composer is the time-slice state machine. Its history always holds
// at least one snapshot; index 0 is the initial layout.
type Composer struct {
	slices []*lattice.Lattice
	logger *zap.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger routes composer and routing diagnostics to the given
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a composer seeded with the initial layout as slice 0.
// The composer takes ownership of initial; callers must not mutate it
// afterwards.
func New(initial *lattice.Lattice, opts ...Option) *Composer {
	c := &Composer{
		slices: []*lattice.Lattice{initial},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// latest returns the snapshot all operations act on.
func (c *Composer) latest() *lattice.Lattice {
	return c.slices[len(c.slices)-1]
}

// NewTimeSlice appends a deep, fully independent copy of the latest
// snapshot. Subsequent mutation of the new slice can never be observed
// through earlier slices.
func (c *Composer) NewTimeSlice() {
	c.slices = append(c.slices, c.latest().Clone())
	c.logger.Sugar().Debugw("new time slice", "slices", len(c.slices))
}

// MeasureMultiPatch routes the requested simultaneous measurement on
// the latest snapshot in place. It does not create a new slice; callers
// that want the before/after states distinguished call NewTimeSlice
// first. Errors from the routing engine propagate unchanged and leave
// the snapshot unmodified.
func (c *Composer) MeasureMultiPatch(req routing.Request) error {
	return routing.MeasureMultiPatch(c.latest(), req, routing.WithLogger(c.logger))
}

// ClearAncilla unstitches every border of every patch on the latest
// snapshot, then removes every Ancilla-kind patch. Unstitching an
// already-unstitched border is a no-op, so the operation is idempotent.
func (c *Composer) ClearAncilla() {
	cur := c.latest()
	for _, p := range cur.Patches {
		for i := range p.Borders {
			p.Borders[i].Type = p.Borders[i].Type.Unstitched()
		}
	}
	kept := cur.Patches[:0]
	for _, p := range cur.Patches {
		if p.Kind != lattice.Ancilla {
			kept = append(kept, p)
		}
	}
	cur.Patches = kept
}

// ClearLattice empties the patch set of the latest snapshot. Used for
// scene resets.
func (c *Composer) ClearLattice() {
	c.latest().Clear()
}

// Slices returns the full ordered snapshot history for external
// rendering. Callers must treat the returned snapshots as read-only;
// mutating one retroactively would break the isolation the composer
// guarantees.
func (c *Composer) Slices() []*lattice.Lattice {
	return c.slices
}
