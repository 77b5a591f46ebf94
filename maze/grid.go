// Package maze holds the static wall model and the dynamic collectible
// state of the map, plus every conversion between continuous normalized
// positions and discrete (row, column) tiles.
//
// Coordinate convention: row 0 is the top line of the layout, while
// normalized Y grows upward from the bottom-left origin. Every tile<->
// position conversion below applies the inversion exactly once; any new
// conversion must go through TileOf/TileCenter rather than reimplement it.
package maze

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/muncher/parameter"
	"github.com/lixenwraith/muncher/vmath"
)

// Rect is an axis-aligned wall rectangle in normalized space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Grid is the maze model. Walls are immutable after construction; the
// pellet grids are the only mutable state.
type Grid struct {
	rows, cols   int
	tileW, tileH float64

	layout []string
	walls  []Rect

	// Mutually exclusive per tile: a cell is never set in both
	pellets      [][]bool
	superPellets [][]bool
}

// New validates the layout and builds the wall set. A malformed layout is
// a construction-time fatal error; there is no playable recovery from a
// corrupt maze.
func New(layout []string) (*Grid, error) {
	if len(layout) == 0 {
		return nil, errors.New("maze: empty layout")
	}
	cols := len(layout[0])
	if cols == 0 {
		return nil, errors.New("maze: empty layout row")
	}
	for i, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("maze: row %d has length %d, want %d", i, len(row), cols)
		}
	}

	g := &Grid{
		rows:   len(layout),
		cols:   cols,
		tileW:  1.0 / float64(cols),
		tileH:  1.0 / float64(len(layout)),
		layout: layout,
	}

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walkableSymbol(layout[r][c]) {
				continue
			}
			g.walls = append(g.walls, g.tileRect(r, c))
		}
	}

	g.pellets = newBoolGrid(g.rows, g.cols)
	g.superPellets = newBoolGrid(g.rows, g.cols)
	g.InitCollectibles()

	return g, nil
}

func newBoolGrid(rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	return grid
}

func (g *Grid) walkableSymbol(ch byte) bool {
	switch ch {
	case parameter.SymbolOpen, parameter.SymbolPellet, parameter.SymbolSuperPellet:
		return true
	}
	return false
}

func (g *Grid) tileRect(row, col int) Rect {
	return Rect{
		MinX: float64(col) * g.tileW,
		MaxX: float64(col+1) * g.tileW,
		MinY: 1.0 - float64(row+1)*g.tileH,
		MaxY: 1.0 - float64(row)*g.tileH,
	}
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.cols }

// TileSize returns the normalized extent of one tile.
func (g *Grid) TileSize() (w, h float64) { return g.tileW, g.tileH }

// Symbol returns the layout character at a tile, or the wall symbol for
// out-of-range tiles. Used by the renderer; gameplay goes through
// IsWalkable.
func (g *Grid) Symbol(row, col int) byte {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return parameter.SymbolWall
	}
	return g.layout[row][col]
}

// IsWalkable reports whether a tile is an open-path cell. Out-of-range
// tiles resolve to not walkable rather than erroring: continuous
// positions transiently map outside the grid near edges and during
// tunnel wrap.
func (g *Grid) IsWalkable(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.walkableSymbol(g.layout[row][col])
}

// TileOf converts a position to its tile by truncation. No clamping:
// callers treat out-of-range results as not walkable.
func (g *Grid) TileOf(pos vmath.Vec) (row, col int) {
	col = int(pos.X / g.tileW)
	row = int((1.0 - pos.Y) / g.tileH)
	return row, col
}

// TileCenter returns the normalized center of a tile, inverse of TileOf
// for in-range tiles.
func (g *Grid) TileCenter(row, col int) vmath.Vec {
	return vmath.Vec{
		X: (float64(col) + 0.5) * g.tileW,
		Y: 1.0 - (float64(row)+0.5)*g.tileH,
	}
}

// HasCollision reports whether a circle at pos intersects any wall.
// Two tests run, and either one triggering counts as a collision: the
// closest-point rectangle test catches partial overlap near corners, and
// the center-tile walkability test catches a center that has already
// crossed into a wall cell between ticks.
func (g *Grid) HasCollision(pos vmath.Vec, radius float64) bool {
	rSq := radius * radius
	for _, w := range g.walls {
		cx := vmath.Clamp(pos.X, w.MinX, w.MaxX)
		cy := vmath.Clamp(pos.Y, w.MinY, w.MaxY)
		dx := pos.X - cx
		dy := pos.Y - cy
		if dx*dx+dy*dy < rSq {
			return true
		}
	}
	row, col := g.TileOf(pos)
	return !g.IsWalkable(row, col)
}

// Wrap teleports a position that left the horizontal margin band to the
// opposite edge. Vertical wrap is never applied. A position exactly on
// the margin is left alone, so the operation is idempotent.
func (g *Grid) Wrap(pos vmath.Vec, margin float64) vmath.Vec {
	if pos.X < margin {
		pos.X = 1.0 - margin
	} else if pos.X > 1.0-margin {
		pos.X = margin
	}
	return pos
}

// --- Collectibles ---

// InitCollectibles repopulates both pellet grids from the layout. Called
// at construction and again when a level is cleared.
func (g *Grid) InitCollectibles() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			g.pellets[r][c] = g.layout[r][c] == parameter.SymbolPellet
			g.superPellets[r][c] = g.layout[r][c] == parameter.SymbolSuperPellet
		}
	}
}

func (g *Grid) inRange(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// PelletAt reports whether an unconsumed pellet sits at the tile.
func (g *Grid) PelletAt(row, col int) bool {
	return g.inRange(row, col) && g.pellets[row][col]
}

// SuperPelletAt reports whether an unconsumed super pellet sits at the tile.
func (g *Grid) SuperPelletAt(row, col int) bool {
	return g.inRange(row, col) && g.superPellets[row][col]
}

// ConsumePellet clears and reports the pellet at a tile. A second call on
// the same tile returns false: consumption is permanent for the session.
func (g *Grid) ConsumePellet(row, col int) bool {
	if !g.PelletAt(row, col) {
		return false
	}
	g.pellets[row][col] = false
	return true
}

// ConsumeSuperPellet clears and reports the super pellet at a tile.
func (g *Grid) ConsumeSuperPellet(row, col int) bool {
	if !g.SuperPelletAt(row, col) {
		return false
	}
	g.superPellets[row][col] = false
	return true
}

// RemainingCollectibles counts unconsumed cells across both grids.
func (g *Grid) RemainingCollectibles() int {
	count := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.pellets[r][c] || g.superPellets[r][c] {
				count++
			}
		}
	}
	return count
}
