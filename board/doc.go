// Package board models an immutable Queens puzzle instance: a rectangular
// grid whose cells are partitioned into labeled color regions.
//
// What:
//
//   - Board wraps `rows × cols` cells with one Color token per cell,
//     addressed row-major (index = row*cols + col).
//   - Construction validates shape and totality of the color mapping;
//     the input slice/grid is deep-copied so a Board never mutates.
//   - Point queries: ColorOf, InBounds, Index, Coordinate, ColorSlot.
//
// Why:
//
//   - The solver needs a read-only puzzle description it can share across
//     concurrent solve calls without copying or locking.
//   - Color tokens stay opaque: any distinct integers name regions; the
//     Board derives the distinct set and a dense slot numbering for the
//     solver's bookkeeping.
//
// Complexity:
//
//   - New / FromGrid: O(rows×cols) time and memory.
//   - All point queries: O(1).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols is not positive.
//   - ErrCellCount: the cell slice does not cover rows×cols cells.
//   - ErrNonRectangular: grid rows have differing lengths.
//   - ErrCellIndex: a queried cell index is out of range.
package board
