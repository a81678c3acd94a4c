// Package tilemap builds the dense boundary grid a scene collides against.
//
// A grid is a 2-D flag map laid over the canvas. Every cell flagged with 1
// becomes a Tile: a static box the bounds resolver treats like a window
// edge. Tiles are materialized lazily on first use and cached; the cache is
// capped at the flagged-cell count seen when the grid was built, so editing
// cells afterwards never grows it. Build replaces the cache.
package tilemap

import (
	"math"

	"github.com/vovakirdan/scenekit/internal/core"
)

// Flag is the cell value that marks a boundary.
const Flag = 1

// Tile is a static collidable cell.
type Tile struct {
	Row, Col int
	X, Y     float64 // Center in canvas coordinates
	W, H     float64
}

// Box returns the tile's bounding box.
func (t Tile) Box() core.RectF {
	return core.RectFromCenter(t.X, t.Y, t.W, t.H)
}

// Grid maps (row, col) to a boundary flag over a canvas.
type Grid struct {
	cells    [][]int
	rows     int
	cols     int
	tileW    int
	tileH    int
	capacity int

	tiles        []Tile
	materialized bool
	visible      bool
}

// New builds a grid for a canvas of canvasW x canvasH pixels.
func New(cells [][]int, canvasW, canvasH int) *Grid {
	g := &Grid{}
	g.Build(cells, canvasW, canvasH)
	return g
}

// Build (re)initializes the grid from cells and drops any materialized tiles.
// Rows are the number of cell rows; columns are the longest row's length,
// shorter rows are treated as unflagged past their end.
func (g *Grid) Build(cells [][]int, canvasW, canvasH int) {
	g.cells = make([][]int, len(cells))
	g.cols = 0
	for i, row := range cells {
		g.cells[i] = append([]int(nil), row...)
		g.cols = core.Max(g.cols, len(row))
	}
	g.rows = len(cells)

	g.tileW, g.tileH = 0, 0
	if g.cols > 0 {
		g.tileW = int(math.Round(float64(canvasW) / float64(g.cols)))
	}
	if g.rows > 0 {
		g.tileH = int(math.Round(float64(canvasH) / float64(g.rows)))
	}

	g.capacity = g.countFlags()
	g.tiles = nil
	g.materialized = false
}

func (g *Grid) countFlags() int {
	n := 0
	for _, row := range g.cells {
		for _, v := range row {
			if v == Flag {
				n++
			}
		}
	}
	return n
}

// Dims returns the row and column counts.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// TileSize returns the width and height of one tile in pixels.
func (g *Grid) TileSize() (w, h int) {
	return g.tileW, g.tileH
}

// Capacity returns the maximum number of tiles the cache will hold.
func (g *Grid) Capacity() int {
	return g.capacity
}

// Flag returns the value at (row, col), or 0 when out of range.
func (g *Grid) Flag(row, col int) int {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return 0
	}
	return g.cells[row][col]
}

// SetCell changes a cell value. Rows are extended as needed, but the grid
// dimensions, tile size and tile cache stay as they were at Build.
func (g *Grid) SetCell(row, col, value int) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return
	}
	for len(g.cells[row]) <= col {
		g.cells[row] = append(g.cells[row], 0)
	}
	g.cells[row][col] = value
}

// Tiles returns the materialized tiles in row-major order, materializing
// them on the first call.
func (g *Grid) Tiles() []Tile {
	if !g.materialized {
		g.materialize()
	}
	return g.tiles
}

// Materialized reports whether the tile cache has been populated.
func (g *Grid) Materialized() bool {
	return g.materialized
}

func (g *Grid) materialize() {
	g.materialized = true
	if g.capacity == 0 {
		return
	}

	tiles := make([]Tile, 0, g.capacity)
	w, h := float64(g.tileW), float64(g.tileH)
	for r, row := range g.cells {
		for c, v := range row {
			if v != Flag {
				continue
			}
			if len(tiles) == g.capacity {
				g.tiles = tiles
				return
			}
			tiles = append(tiles, Tile{
				Row: r,
				Col: c,
				X:   float64(c)*w + w/2,
				Y:   float64(r)*h + h/2,
				W:   w,
				H:   h,
			})
		}
	}
	g.tiles = tiles
}

// Show makes the scene draw the tiles.
func (g *Grid) Show() {
	g.visible = true
}

// Hide stops drawing the tiles. Collision tiles are unaffected.
func (g *Grid) Hide() {
	g.visible = false
}

// Visible reports whether the tiles are drawn.
func (g *Grid) Visible() bool {
	return g.visible
}
