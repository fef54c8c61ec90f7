// Package solver implements the Queens backtracking search: depth-first
// placement of one marker per row, column, and color region with no two
// markers diagonally adjacent.
//
// What:
//
//   - Solve(b, opts...) returns a *Result holding exactly b.Rows() cell
//     indices in placement order, or ErrNoSolution when the search space
//     is exhausted.
//   - Four layered optimizations, each individually toggleable:
//     forward checking, most-constrained-first candidate ordering,
//     incremental adjacency-pressure counters, and a no-goods trie of
//     failed partial placements.
//   - Result carries search diagnostics: nodes expanded, branches pruned
//     by forward checking, and no-goods cache hits.
//
// Why:
//
//   - Forward checking converts the common dead ends (an unused row,
//     column, or region with zero eligible cells left) into an immediate
//     local rejection instead of an exponential descent.
//   - Trying the most-constrained candidate first makes failures surface
//     early, sharply reducing the effective branching factor.
//   - Pressure counters replace per-node adjacency recomputation with two
//     O(1) updates on place and unplace.
//
// Contracts:
//
//   - The Board is read-only throughout; distinct solve calls may share it
//     concurrently without locks. All search state is local to one call.
//   - Disabling any pruning layer never changes whether a solution is
//     found, only how fast.
//   - The search is synchronous and runs to completion; target board sizes
//     (≤10×10) keep worst-case times sub-second, so no cancellation hook
//     is offered — impose time budgets outside the call if needed.
//
// Complexity:
//
//   - Worst case exponential in rows (exhaustive search). Practical speed
//     comes from pruning; per node the candidate sweep is O(rows×cols)
//     plus an O(k log k) sort of k candidates.
//   - Memory: O(rows×cols) for the neighbor table and counters, plus the
//     no-goods trie (bounded by failed branches actually recorded).
//
// Errors:
//
//   - ErrNilBoard: Solve received a nil board.
//   - ErrBoardTooLarge: rows, cols, or distinct colors exceed 64 (the
//     bitmask word width used for used-row/col/color tracking).
//   - ErrNoSolution: normal exhaustion outcome, not a fault.
package solver
