// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/pathviz.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/pathviz/vertex"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown character in a textual grid.
	ErrBadCell = errors.New("gridgraph: unknown cell character")
	// ErrDuplicateMarker indicates more than one start or end marker.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or end marker")
)

// Cell characters of the textual grid format.
const (
	CellOpen    = '.'
	CellBlocked = '#'
	CellStart   = 'S'
	CellEnd     = 'E'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is an immutable occupancy grid. cells[y][x] is true for active cells.
// start and end are optional markers set by Parse or WithMarkers.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           [][]bool
	start, end      *vertex.Position
	neighborOffsets [][2]int
}
