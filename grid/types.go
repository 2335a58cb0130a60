package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("grid: width and height must be positive")
	// ErrNonRectangular indicates ASCII rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an ASCII rune that maps to no tile.
	ErrBadCell = errors.New("grid: unknown cell rune")
)

// Point is a grid coordinate. The zero value is the top-left corner.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// TileData is the immutable payload of a tile.
// PathCost is the multiplicative cost of entering the tile (1 = empty, >1 = weighted).
// Solid tiles are impassable regardless of PathCost.
type TileData struct {
	PathCost float64
	IsSolid  bool
}

// Canonical tile payloads used by MutateDefault and the terrain generators.
var (
	EmptyTileData = TileData{PathCost: 1, IsSolid: false}
	SolidTileData = TileData{PathCost: 1, IsSolid: true}
)

// Tile is a snapshot of one grid cell.
type Tile struct {
	Point Point
	Data  TileData
}
