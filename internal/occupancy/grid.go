// Package occupancy implements a static obstacle map that can serve as the
// validity checker of a search. A pose is valid when it lies inside the map
// and its cell is not blocked.
package occupancy

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdrpinto/hybridastar"
)

// Grid is a rectangular map of unit cells scaled by Resolution. Cell (i, j)
// covers x in [i*Resolution, (i+1)*Resolution) and likewise for y. A Grid is
// read-only once built and safe for concurrent use.
type Grid struct {
	Width      int
	Height     int
	Resolution float64
	blocked    []bool
}

// MaxCells caps width*height of a grid.
const MaxCells = 1 << 28

// New returns an empty width x height grid.
func New(width, height int, resolution float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("grid %dx%d exceeds %d cells", width, height, MaxCells)
	}
	if !(resolution > 0) {
		return nil, fmt.Errorf("grid resolution must be positive, got %v", resolution)
	}
	return &Grid{
		Width:      width,
		Height:     height,
		Resolution: resolution,
		blocked:    make([]bool, width*height),
	}, nil
}

// Parse builds a grid from text rows, top row first, so that the last row
// is y = 0. '#' marks a blocked cell; any other rune is free. All rows must
// have the same length.
func Parse(rows []string, resolution float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid has no rows")
	}
	width := len([]rune(rows[0]))
	grid, err := New(width, len(rows), resolution)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(runes), width)
		}
		y := len(rows) - 1 - r
		for x, c := range runes {
			if c == '#' {
				grid.Block(x, y)
			}
		}
	}
	return grid, nil
}

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// InBounds reports whether cell (x, y) exists.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Block marks cell (x, y) as an obstacle. Out of range cells are ignored.
// Only call it while building the grid.
func (g *Grid) Block(x, y int) {
	if g.InBounds(x, y) {
		g.blocked[g.index(x, y)] = true
	}
}

// BlockRange blocks the size x size square whose lower-left cell is (x, y).
func (g *Grid) BlockRange(x, y, size int) {
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			g.Block(x+i, y+j)
		}
	}
}

// IsBlocked reports whether cell (x, y) is an obstacle or outside the map.
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.blocked[g.index(x, y)]
}

// CellOf returns the cell containing the world point (x, y).
func (g *Grid) CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / g.Resolution)), int(math.Floor(y / g.Resolution))
}

// IsValid implements hybridastar.ValidityChecker.
func (g *Grid) IsValid(pose hybridastar.Pose) bool {
	if math.IsNaN(pose.X) || math.IsNaN(pose.Y) {
		return false
	}
	cx, cy := g.CellOf(pose.X, pose.Y)
	return !g.IsBlocked(cx, cy)
}

// Dump renders the grid the way Parse reads it, with an optional path
// overlaid as '*'.
func (g *Grid) Dump(path []hybridastar.Pose) string {
	onPath := make(map[int]bool, len(path))
	for _, pose := range path {
		cx, cy := g.CellOf(pose.X, pose.Y)
		if g.InBounds(cx, cy) {
			onPath[g.index(cx, cy)] = true
		}
	}
	var b strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			switch {
			case onPath[g.index(x, y)]:
				b.WriteByte('*')
			case g.blocked[g.index(x, y)]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
