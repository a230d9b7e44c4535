// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

// Package transcode implements the grid-to-geometry transcoder: the
// multi-pass algorithm that turns a decompressed Wolfenstein-family tile
// grid into Doom-format geometry (§4.3–§4.6 of the specification).
//
// The Cell Grid and pass structure are grounded on the teacher engine's
// grid package (grid/grid.go, grid/dungeon.go): a width·height array of
// per-cell records walked with explicit neighbour lookups, generalized
// here from boolean wall/floor cells to the richer Cell record of §3.
package transcode

import (
	"fmt"

	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
	"github.com/tilegeist/wolf2wad/wolfmap"
)

// Transcoder threads the catalog, input grid, working cell grid and
// output arena through the three passes, replacing the original tool's
// process-global DoomMap/WolfMap singletons (§9 design note) with an
// explicit value any number of transcoders could use concurrently.
type Transcoder struct {
	Catalog *catalog.Catalog
	Grid    *wolfmap.Grid
	Cells   *Grid
	Arena   *geom.Arena
}

// New creates a Transcoder ready to run against grid using cat's lookup
// tables. The Cell Grid and Geometry Arena are allocated empty.
func New(cat *catalog.Catalog, grid *wolfmap.Grid) *Transcoder {
	return &Transcoder{
		Catalog: cat,
		Grid:    grid,
		Cells:   NewGrid(grid.Width, grid.Height),
		Arena:   geom.New(),
	}
}

// Run executes the full pipeline: thing placement, sector assignment,
// free-face classification, and linedef emission (including door
// synthesis). It returns the populated Geometry Arena.
func (t *Transcoder) Run() (*geom.Arena, error) {
	t.placeThings()

	if t.Grid.Planes[wolfmap.PlaneWalls] == nil {
		return t.Arena, nil
	}

	t.assignSectors()
	t.classifyFreeFaces()
	if err := t.emitLinedefs(); err != nil {
		return nil, err
	}

	return t.Arena, nil
}

// emitLinedefs is pass 3 (§4.5–§4.6): walk every cell once more, emitting
// door track geometry for door cells and free-face/sector-boundary
// linedefs for everything else.
func (t *Transcoder) emitLinedefs() error {
	if err := t.checkAnonymousSectorBudget(); err != nil {
		return err
	}

	width, height := t.Cells.Width, t.Cells.Height
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			cell := t.Cells.At(x, y)
			if cell.Door != nil {
				t.emitDoor(cell, x, y)
				continue
			}
			t.emitNormalCell(cell, x, y)
		}
	}

	return nil
}

// tileAt returns the raw walls-plane tile ID at (x, y). Callers must
// bounds-check first; used only where the adjacent algorithm already
// guarantees (x, y) is in range.
func (t *Transcoder) tileAt(x, y int) uint16 {
	return t.Grid.At(wolfmap.PlaneWalls, x, y)
}

// sectorAt returns the resolved sector index of the cell at (x, y), or
// geom.NoSector if (x, y) is out of bounds.
func (t *Transcoder) sectorAt(x, y int) uint16 {
	if !t.Cells.InBounds(x, y) {
		return geom.NoSector
	}
	return t.Cells.At(x, y).Sector
}

// checkAnonymousSectorBudget guards Design Note §9.3: last_asector
// starts at 0xFFFE and must never wrap into NoSector (0xFFFF).
func (t *Transcoder) checkAnonymousSectorBudget() error {
	if t.Arena.LastAnonymousSector == geom.NoSector {
		return fmt.Errorf("transcode: exhausted anonymous sector IDs (level too large)")
	}
	return nil
}
