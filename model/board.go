package model

import (
	"crypto/md5"
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/cellgrid/go-life/rules"
)

// ErrInvalidDimensions reports a construction attempt without at least one
// row and one column of cells.
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// Cell identifies a single grid position.
type Cell struct {
	X, Y int
}

// neighborOffsets lists the Moore neighborhood in a fixed (dx, dy) scan
// order: the column to the left top to bottom, the cells straight above and
// below, then the column to the right top to bottom.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is one generation of the game: a fixed-size grid of cell states that
// never changes after construction. Every generation transition allocates a
// fresh Board, so callers may keep old generations around as history.
type Board struct {
	width  int
	height int
	wrap   bool
	cells  [][]bool // row-major: cells[y][x]
}

// NewBoard builds a Board owning a deep copy of the given cells, so later
// writes to the caller's grid never leak into it. The wrap flag selects
// toroidal addressing; lookups beyond the edges of a non-wrapping board read
// as dead. Fails with ErrInvalidDimensions unless the grid is rectangular
// with at least one row and one column.
func NewBoard(cells [][]bool, wrap bool) (*Board, error) {
	height := len(cells)
	if height == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewBoard] no rows")
	}
	width := len(cells[0])
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[NewBoard] no columns")
	}

	owned := make([][]bool, height)
	for y, row := range cells {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "[NewBoard] row %d has %d cells, want %d", y, len(row), width)
		}
		owned[y] = make([]bool, width)
		copy(owned[y], row)
	}

	return &Board{width: width, height: height, wrap: wrap, cells: owned}, nil
}

// newBlank allocates an all-dead board with the receiver's shape and wrap
// flag, used as the destination buffer of a generation transition.
func (b *Board) newBlank() *Board {
	cells := make([][]bool, b.height)
	for i := range cells {
		cells[i] = make([]bool, b.width)
	}
	return &Board{width: b.width, height: b.height, wrap: b.wrap, cells: cells}
}

// GetWidth returns the number of columns.
func (b *Board) GetWidth() int {
	return b.width
}

// GetHeight returns the number of rows.
func (b *Board) GetHeight() int {
	return b.height
}

// GetWrap reports whether the board uses toroidal addressing.
func (b *Board) GetWrap() bool {
	return b.wrap
}

// Get returns the state of a cell. Coordinates may be any integers: they are
// folded into range with a floored modulo, so the storage index is never
// negative. A wrapping board returns the folded cell; a bounded board treats
// any coordinate that needed folding as dead.
func (b *Board) Get(x, y int) bool {
	xm := ((x % b.width) + b.width) % b.width
	ym := ((y % b.height) + b.height) % b.height
	if !b.wrap && (xm != x || ym != y) {
		return false
	}
	return b.cells[ym][xm]
}

// Neighbors returns the states of the 8 surrounding cells in the fixed
// neighborOffsets order, resolved through Get so wrap semantics apply.
func (b *Board) Neighbors(x, y int) [8]bool {
	var states [8]bool
	for i, d := range neighborOffsets {
		states[i] = b.Get(x+d[0], y+d[1])
	}
	return states
}

// CountNeighbors returns how many of the 8 surrounding cells are alive.
func (b *Board) CountNeighbors(x, y int) int {
	count := 0
	for _, alive := range b.Neighbors(x, y) {
		if alive {
			count++
		}
	}
	return count
}

// NextCell returns the state the cell takes in the following generation.
func (b *Board) NextCell(x, y int) bool {
	return rules.NextState(b.CountNeighbors(x, y), b.Get(x, y))
}

// Next computes the following generation with a plain per-cell scan. Every
// lookup reads the receiver and every write goes to a fresh board, so the
// scan order cannot corrupt neighbor reads. Width, height, and the wrap flag
// carry over unchanged.
func (b *Board) Next() *Board {
	next := b.newBlank()
	for y := range b.height {
		for x := range b.width {
			if b.NextCell(x, y) {
				next.cells[y][x] = true
			}
		}
	}
	return next
}

// NextParallel computes the same generation as Next with the scan split into
// row bands, one goroutine each. Workers only read the receiver and write
// disjoint rows of the destination, so no locking is needed.
func (b *Board) NextParallel() *Board {
	next := b.newBlank()

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (b.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, b.height)
		)
		if startRow >= b.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < b.width; x++ {
					if b.NextCell(x, y) {
						next.cells[y][x] = true
					}
				}
			}
			return nil
		})
	}

	// Workers are pure scans that never fail; Wait only joins them.
	_ = eg.Wait()

	return next
}

// Population returns the total number of living cells.
func (b *Board) Population() (count int) {
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] {
				count++
			}
		}
	}
	return
}

// AliveCells lists the coordinates of every living cell in row-major order.
func (b *Board) AliveCells() []Cell {
	var alive []Cell
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] {
				alive = append(alive, Cell{X: x, Y: y})
			}
		}
	}
	return alive
}

// GetHash returns an MD5 fingerprint of the cell states, compact enough to
// keep per-generation history for cycle detection.
func (b *Board) GetHash() string {
	h := md5.New()
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same shape, wrap flag, and cell
// states.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height || b.wrap != other.wrap {
		return false
	}
	for y := range b.height {
		for x := range b.width {
			if b.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// Snapshot returns a deep copy of the grid. Mutating the copy never touches
// the board, so it is a safe base for staging a modified successor.
func (b *Board) Snapshot() [][]bool {
	cells := make([][]bool, b.height)
	for y := range b.height {
		cells[y] = make([]bool, b.width)
		copy(cells[y], b.cells[y])
	}
	return cells
}
