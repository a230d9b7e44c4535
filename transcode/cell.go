// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
)

// noLine marks a cell-side linedef back-reference as unset.
const noLine = geom.NoSide

// Cell is the per-tile working record mutated across the three
// transcoder passes (§3). Door and Area are never both non-nil; Wall
// and Area may both be set, since a midtex wall also consults the area
// table for its sector's flats/brightness/tag (Invariant C2). Sector is
// geom.NoSector iff the cell is a solid non-midtex, non-pushwall wall
// (Invariant C3).
type Cell struct {
	Tile uint16

	Wall *catalog.WallInfo
	Door *catalog.DoorInfo
	Area *catalog.AreaInfo

	Secret bool
	Sector uint16

	// Free faces: true iff this solid cell's neighbour on that side is
	// passable and a wall face must be drawn there.
	FRight, FTop, FLeft, FBottom bool

	// Sector boundaries: true iff this cell has a floor and the
	// neighbour has a floor in a different sector with no wall face
	// between them. Invariant C4: a side's F and S flags are never
	// both true.
	SRight, STop, SLeft, SBottom bool

	// Linedef back-references: index of the most recently emitted edge
	// on that side, used to extend collinear runs (§4.5).
	Right, Top, Left, Bottom uint16
}

// Grid is the width·height array of Cell records that the transcoder
// mutates across its three passes. Grid is owned by the Transcoder and
// discarded after WAD emission.
type Grid struct {
	Width, Height int
	cells         []Cell
}

// NewGrid allocates a Grid of the given dimensions with every linedef
// back-reference initialized to "unset".
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, cells: make([]Cell, width*height)}
	for i := range g.cells {
		g.cells[i].Right = noLine
		g.cells[i].Top = noLine
		g.cells[i].Left = noLine
		g.cells[i].Bottom = noLine
	}
	return g
}

// InBounds reports whether (x, y) is a valid grid position.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns a pointer to the cell at (x, y). Callers must check
// InBounds first; At does not bounds-check.
func (g *Grid) At(x, y int) *Cell {
	return &g.cells[y*g.Width+x]
}
