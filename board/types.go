// Package board defines core types and sentinel errors
// for the board subpackage of github.com/katalvlaran/queens.
package board

import (
	"errors"
)

// Sentinel errors for board construction and queries.
var (
	// ErrBadDimensions indicates rows or cols is not positive.
	ErrBadDimensions = errors.New("board: rows and cols must be positive")
	// ErrCellCount indicates the cell-color slice does not cover rows*cols cells.
	ErrCellCount = errors.New("board: cell colors must cover exactly rows*cols cells")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("board: all grid rows must have the same length")
	// ErrCellIndex indicates a requested cell index is out of range.
	ErrCellIndex = errors.New("board: cell index out of range")
)

// Color identifies a color region. Tokens are opaque: any set of distinct
// integers is acceptable; they need not be contiguous or start at zero.
type Color int

// Board is an immutable puzzle instance. Rows and cols define dimensions;
// cellColors[idx] holds the region token of the cell at row-major index idx.
// colors is the distinct token set in ascending order, and slots maps each
// cell to the position of its token within colors (a dense numbering the
// solver relies on for bitmask bookkeeping).
type Board struct {
	rows, cols int
	cellColors []Color
	colors     []Color
	slots      []int
}
