// Package grid is the tile data model shared by every other gridpath package.
//
// What:
//
//   - Point is an immutable (X, Y) coordinate; equality is structural.
//   - TileData carries the traversal cost of entering a tile and whether it is solid.
//   - Tile pairs a Point with its TileData; tiles handed out by Grid are copies.
//   - Grid owns a Width×Height matrix of tiles stored row-major.
//
// Lifecycle:
//
//   - New builds a grid of empty tiles (cost 1, not solid).
//   - Clone / CloneNewSize produce deep copies (CloneNewSize pads with empty
//     tiles or truncates).
//   - Terrain generators and drawing code mutate a grid between searches;
//     search algorithms only read it.
//
// Bounds:
//
//	Only InBounds checks coordinates. Every other accessor assumes an in-bounds
//	point and panics otherwise, so callers guard with InBounds first.
//
// ASCII form:
//
//	Parse and (*Grid).String use one rune per tile: '.' empty, '#' solid,
//	'2'..'9' a walkable tile with that path cost.
//
// Errors:
//
//   - ErrBadSize:        width or height is not positive.
//   - ErrNonRectangular: Parse rows of differing lengths.
//   - ErrBadCell:        Parse met an unknown rune.
package grid
