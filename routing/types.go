// Package routing implements the ancilla routing engine: given a
// lattice snapshot and a request mapping patch representatives to Pauli
// operators, it routes temporary ancilla regions between the measured
// patches and stitches the affected borders.
//
// The engine mutates the lattice it is handed, but only after every
// requested route has been found: a failed request leaves the lattice
// untouched.
package routing

import (
	"errors"

	"go.uber.org/zap"

	"github.com/latticekit/lsqec/grid"
	"github.com/latticekit/lsqec/pauli"
)

// Sentinel errors for routing operations.
var (
	// ErrEmptyRequest indicates a measurement request with no entries.
	ErrEmptyRequest = errors.New("routing: empty measurement request")

	// ErrNonRepresentativeKey indicates a request keyed by a cell that
	// is not its patch's representative. Raised before any graph work,
	// so a malformed request can never partially stitch.
	ErrNonRepresentativeKey = errors.New("routing: non-representative cell used as operator key")

	// ErrNoPatch indicates a request keyed by a free cell.
	ErrNoPatch = errors.New("routing: no patch at requested cell")

	// ErrRouteNotFound indicates no free-cell path exists from the
	// source patch to at least one target patch.
	ErrRouteNotFound = errors.New("routing: no route between requested patches")
)

// Request is an insertion-ordered mapping from patch representative
// cells to the Pauli operator requested on that patch. Order matters:
// the first entry is the routing source, the rest are targets.
type Request struct {
	cells []grid.Cell
	ops   map[grid.Cell]pauli.Operator
}

// Add records op for cell c. Re-adding a cell overwrites its operator
// but keeps its original position.
func (r *Request) Add(c grid.Cell, op pauli.Operator) {
	if r.ops == nil {
		r.ops = make(map[grid.Cell]pauli.Operator)
	}
	if _, ok := r.ops[c]; !ok {
		r.cells = append(r.cells, c)
	}
	r.ops[c] = op
}

// Get returns the operator requested for c.
func (r *Request) Get(c grid.Cell) (pauli.Operator, bool) {
	op, ok := r.ops[c]
	return op, ok
}

// Cells returns the requested cells in insertion order. The returned
// slice is the request's own backing array; callers must not mutate it.
func (r *Request) Cells() []grid.Cell { return r.cells }

// Len returns the number of requested patches.
func (r *Request) Len() int { return len(r.cells) }

// Options holds tunable parameters for the routing engine. The engine
// is a pure in-memory computation, so there is no cancellation knob.
type Options struct {
	// Logger receives routing diagnostics; defaults to a no-op logger.
	Logger *zap.Logger
}

// Option configures routing behavior via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes engine diagnostics to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
