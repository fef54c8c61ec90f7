// Package queens solves the "Queens" region-coloring puzzle: place exactly
// one marker per row, per column, and per color region of an N×M board so
// that no two markers touch diagonally.
//
// 🚀 What is queens?
//
//	A small, focused constraint-satisfaction library built around a
//	depth-first backtracking search with layered pruning:
//		• Forward checking — abandon a branch the moment some unused row,
//		  column, or region has no eligible cell left
//		• Most-constrained-first ordering — try the tightest cell first so
//		  failures surface early
//		• Adjacency pressure counters — incremental diagonal bookkeeping
//		  instead of recomputation
//		• No-goods cache — a trie of failed partial placements that rejects
//		  futile branches before recursing
//
// ✨ Why choose queens?
//
//   - Minimal API – build a Board, call Solve, read back cell indices
//   - Deterministic outcomes – a board either solves or it provably doesn't
//   - Pure Go core – the solver has no I/O, no locks, no globals
//   - Tunable – every pruning layer can be switched off for benchmarking
//
// Everything is organized under two library packages plus a transport shim:
//
//	board/  — immutable puzzle instance: dimensions + per-cell color regions
//	solver/ — the backtracking engine with pruning and search diagnostics
//	server/ — thin JSON-over-HTTP wrapper around board + solver
//
// Quick ASCII example (4×4, regions A–D, markers *):
//
//	 A  A *A  A
//	*B  B  C  A
//	 B  D  C *C
//	 B *D  D  D
//
// Dive into the per-package docs for contracts, complexity, and errors.
//
//	go get github.com/katalvlaran/queens
package queens
