// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
)

// classifyFreeFaces is pass 2 (§4.4): for every cell, decide which of its
// four sides need a wall face (a "free face") or a sector-boundary
// linedef (a "floor free" edge). Invariant C4 holds because a side is
// only ever tested for one of the two.
func (t *Transcoder) classifyFreeFaces() {
	width, height := t.Cells.Width, t.Cells.Height

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cell := t.Cells.At(x, y)

			if cell.Wall != nil {
				cell.FRight = t.placeFree(cell, x+1, y)
				cell.FTop = t.placeFree(cell, x, y-1)
				cell.FLeft = t.placeFree(cell, x-1, y)
				cell.FBottom = t.placeFree(cell, x, y+1)
			}

			if cell.Sector != geom.NoSector {
				cell.SRight = !cell.FRight && t.floorFree(cell, x+1, y)
				cell.STop = !cell.FTop && t.floorFree(cell, x, y-1)
				cell.SLeft = !cell.FLeft && t.floorFree(cell, x-1, y)
				cell.SBottom = !cell.FBottom && t.floorFree(cell, x, y+1)
			}
		}
	}
}

// placeFree reports whether a wall face must be drawn between a wall
// cell (from) and its neighbour at (x, y): false when the neighbour is
// off-grid or a door; a wall neighbour blocks the face when it is solid,
// or when both it and from are midtex; otherwise true (a pushwall never
// blocks this face, since it will eventually slide open).
func (t *Transcoder) placeFree(from *Cell, x, y int) bool {
	if !t.Cells.InBounds(x, y) {
		return false
	}
	cell := t.Cells.At(x, y)
	if cell.Door != nil {
		return false
	}
	if cell.Wall != nil {
		notMidtexFacing := cell.Wall.Class != catalog.WallMidtex || (from.Wall != nil && from.Wall.Class == catalog.WallMidtex)
		if notMidtexFacing && !cell.Secret {
			return false
		}
	}
	return true
}

// floorFree reports whether a sector-boundary linedef must be drawn
// between a floor cell (from) and its neighbour at (x, y): an off-grid
// neighbour always needs one; otherwise the two must have distinct, valid
// sectors, and the neighbour must present an open midtex face back toward
// from (if from is midtex) or no wall/door at all (§4.4).
func (t *Transcoder) floorFree(from *Cell, x, y int) bool {
	if !t.Cells.InBounds(x, y) {
		return true
	}
	cell := t.Cells.At(x, y)
	if cell.Sector == from.Sector || cell.Sector == geom.NoSector {
		return false
	}
	if from.Wall != nil && from.Wall.Class == catalog.WallMidtex {
		return cell.Wall != nil && cell.Wall.Class == catalog.WallMidtex
	}
	return cell.Wall == nil && cell.Door == nil
}
