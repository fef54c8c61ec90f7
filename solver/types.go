// Package solver defines types, options, and sentinel errors for the
// solver subpackage of github.com/katalvlaran/queens.
package solver

import (
	"errors"
)

var (
	// ErrNilBoard is returned when a nil *board.Board is passed to Solve.
	ErrNilBoard = errors.New("solver: board is nil")

	// ErrBoardTooLarge indicates rows, cols, or distinct colors exceed the
	// 64-bit mask width used for used-set tracking.
	ErrBoardTooLarge = errors.New("solver: rows, cols, and colors must each be at most 64")

	// ErrNoSolution indicates the search space was exhausted without finding
	// a valid placement. It is a normal outcome, not a fault.
	ErrNoSolution = errors.New("solver: no valid placement exists")
)

// Option configures optional behavior of the search.
// Use with Solve(b, opts...).
type Option func(*SolveOptions)

// SolveOptions holds configurable parameters for the search.
// All pruning layers are enabled by default; switching one off never
// changes whether a solution is found, only search speed.
type SolveOptions struct {
	// ForwardCheck abandons a branch as soon as some unused row, column,
	// or region has zero eligible candidate cells remaining.
	ForwardCheck bool

	// OrderCandidates sorts candidates ascending by constrainedness
	// (the minimum of their row, column, and region spot counts) so the
	// tightest cell is tried first.
	OrderCandidates bool

	// NoGoods records exhausted partial placements in a trie and rejects
	// any extension containing a recorded set as a subset.
	NoGoods bool
}

// DefaultOptions returns a SolveOptions struct with every pruning layer
// enabled: forward checking, candidate ordering, and the no-goods cache.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		ForwardCheck:    true,
		OrderCandidates: true,
		NoGoods:         true,
	}
}

// WithoutForwardCheck returns an Option that disables forward checking.
// Intended for benchmarks and pruning-soundness tests.
func WithoutForwardCheck() Option {
	return func(o *SolveOptions) {
		o.ForwardCheck = false
	}
}

// WithoutOrdering returns an Option that disables candidate ordering,
// leaving candidates in row-major sweep order.
func WithoutOrdering() Option {
	return func(o *SolveOptions) {
		o.OrderCandidates = false
	}
}

// WithoutNoGoods returns an Option that disables the no-goods cache.
func WithoutNoGoods() Option {
	return func(o *SolveOptions) {
		o.NoGoods = false
	}
}

// Result captures the outcome of a solve call.
type Result struct {
	// Cells records the chosen cell indices in placement order.
	// Exactly board.Rows() entries on success; nil when Solve returns
	// ErrNoSolution.
	Cells []int

	// Expanded counts search nodes entered (recursive calls made).
	Expanded int

	// Pruned counts branches abandoned by the forward check.
	Pruned int

	// NoGoodHits counts candidate extensions rejected by the no-goods cache.
	NoGoodHits int
}
