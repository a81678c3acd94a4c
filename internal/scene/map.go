package scene

import (
	"image"

	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/gfx"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

// Map is a scene's backdrop: a background image and an optional boundary
// grid whose tiles actors collide with.
type Map struct {
	image    image.Image
	pos      image.Point
	grid     *tilemap.Grid
	showGrid bool
}

// NewMap creates a map with a solid background of w x h pixels.
func NewMap(w, h int) *Map {
	return &Map{image: gfx.Solid(w, h, core.ColorBackground)}
}

// SetImage loads the background from path.
func (m *Map) SetImage(path string) error {
	img, err := gfx.Load(path)
	if err != nil {
		return err
	}
	m.image = img
	return nil
}

// SetBackground replaces the background image. Nil draws no background.
func (m *Map) SetBackground(img image.Image) {
	m.image = img
}

// Image returns the background image.
func (m *Map) Image() image.Image {
	return m.image
}

// SetPosition moves the background's top-left corner.
func (m *Map) SetPosition(x, y int) {
	m.pos = image.Pt(x, y)
}

// Position returns the background's top-left corner.
func (m *Map) Position() image.Point {
	return m.pos
}

// CreateBoundsMap builds the boundary grid for a canvas of w x h pixels,
// replacing any previous grid and its tiles.
func (m *Map) CreateBoundsMap(cells [][]int, w, h int) *tilemap.Grid {
	m.grid = tilemap.New(cells, w, h)
	if m.showGrid {
		m.grid.Show()
	}
	return m.grid
}

// Grid returns the boundary grid, or nil.
func (m *Map) Grid() *tilemap.Grid {
	return m.grid
}

// Tiles materializes and returns the boundary tiles.
func (m *Map) Tiles() []tilemap.Tile {
	if m.grid == nil {
		return nil
	}
	return m.grid.Tiles()
}

// ShowTiles draws the boundary tiles over the background.
func (m *Map) ShowTiles() {
	m.showGrid = true
	if m.grid != nil {
		m.grid.Show()
	}
}

// HideTiles stops drawing the boundary tiles. They still collide.
func (m *Map) HideTiles() {
	m.showGrid = false
	if m.grid != nil {
		m.grid.Hide()
	}
}

// TilesVisible reports whether tiles are drawn.
func (m *Map) TilesVisible() bool {
	return m.grid != nil && m.grid.Visible()
}
