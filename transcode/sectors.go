// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
	"github.com/tilegeist/wolf2wad/wolfmap"
)

// assignSectors is pass 1 (§4.3): classify every cell's wall/door/area and
// resolve the sector it belongs to, if any.
//
// The outer loop runs x before y — for a fixed x, every y is visited
// before x advances — so a cell's north (x, y-1) and west (x-1, y)
// neighbours are always already resolved, while south and east are not.
// Ambush promotion depends on that asymmetry. The nesting also fixes the
// order in which sectors and anonymous sector keys are allocated.
func (t *Transcoder) assignSectors() {
	width, height := t.Cells.Width, t.Cells.Height

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			t.assignCell(x, y)
		}
	}
}

func (t *Transcoder) assignCell(x, y int) {
	cell := t.Cells.At(x, y)
	cell.Tile = t.tileAt(x, y)
	cell.Wall = t.Catalog.WallInfo(int(cell.Tile))

	if cell.Wall == nil {
		cell.Door = t.Catalog.DoorInfo(int(cell.Tile))
	}
	if (cell.Wall == nil || cell.Wall.Class == catalog.WallMidtex) && cell.Door == nil {
		cell.Area = t.Catalog.AreaInfo(int(cell.Tile))
	}

	objID := t.Grid.At(wolfmap.PlaneObjects, x, y)
	cell.Secret = t.Catalog.IsPushwall(int(objID))

	if cell.Area != nil && cell.Area.Type == catalog.AreaAmbush {
		if host := t.promoteAmbush(cell, x, y); host != nil {
			cell.Sector = host.Sector
			return
		}
	}

	sectorKey, special := t.resolveSector(cell, x, y)
	if sectorKey == geom.NoSector {
		cell.Sector = geom.NoSector
		return
	}

	cell.Sector = t.buildSector(cell, sectorKey, special)
}

// resolveSector picks the synthetic sector key and special a cell
// resolves to, or geom.NoSector if the cell is solid with no floor.
// Ambush promotion onto an already-resolved neighbour is handled earlier
// in assignCell; an ambush cell that reaches this point had no north/west
// host and is resolved by resolveOrphanAmbush.
func (t *Transcoder) resolveSector(cell *Cell, x, y int) (uint16, uint16) {
	switch {
	case cell.Door != nil || cell.Secret:
		special := geom.SpecialNormal
		if cell.Secret {
			special = geom.SpecialSecret
		}
		return t.Arena.NextAnonymousSector(), special

	case cell.Wall != nil:
		if cell.Wall.Class == catalog.WallMidtex {
			return cell.Tile, geom.SpecialNormal
		}
		return geom.NoSector, geom.SpecialNormal

	case cell.Area != nil:
		switch cell.Area.Type {
		case catalog.AreaSlime5:
			return cell.Tile, geom.SpecialSlime5
		case catalog.AreaSlime10:
			return cell.Tile, geom.SpecialSlime10
		case catalog.AreaSlime20:
			return cell.Tile, geom.SpecialSlime20
		case catalog.AreaAmbush:
			return t.resolveOrphanAmbush(cell, x, y)
		default:
			return cell.Tile, geom.SpecialNormal
		}

	default:
		return cell.Tile, geom.SpecialNormal
	}
}

// promoteAmbush folds an ambush cell into an already-resolved north, then
// west, neighbour that has a floor of its own, returning that neighbour's
// cell, or nil if neither qualifies (§4.3). A promoted ambush cell takes
// on its host's tile, area and sector verbatim rather than minting one.
func (t *Transcoder) promoteAmbush(cell *Cell, x, y int) *Cell {
	if y > 0 {
		if n := t.Cells.At(x, y-1); n.Wall == nil && n.Door == nil {
			cell.Tile = n.Tile
			cell.Area = n.Area
			return n
		}
	}
	if x > 0 {
		if n := t.Cells.At(x-1, y); n.Wall == nil && n.Door == nil {
			cell.Tile = n.Tile
			cell.Area = n.Area
			return n
		}
	}
	return nil
}

// resolveOrphanAmbush handles an ambush cell with no resolved north/west
// host: it peeks at the not-yet-resolved south, then east, raw tile for a
// floor cell to fold into by key; failing that, it mints its own
// anonymous sector.
func (t *Transcoder) resolveOrphanAmbush(cell *Cell, x, y int) (uint16, uint16) {
	if y < t.Cells.Height-1 {
		id := t.tileAt(x, y+1)
		if t.Catalog.WallInfo(int(id)) == nil && t.Catalog.DoorInfo(int(id)) == nil && !t.Catalog.IsAmbush(int(id)) {
			cell.Tile = id
			cell.Area = t.Catalog.AreaInfo(int(id))
			return id, geom.SpecialNormal
		}
	}
	if x < t.Cells.Width-1 {
		id := t.tileAt(x+1, y)
		if t.Catalog.WallInfo(int(id)) == nil && t.Catalog.DoorInfo(int(id)) == nil && !t.Catalog.IsAmbush(int(id)) {
			cell.Tile = id
			cell.Area = t.Catalog.AreaInfo(int(id))
			return id, geom.SpecialNormal
		}
	}

	return t.Arena.NextAnonymousSector(), geom.SpecialNormal
}

// buildSector resolves floor/ceiling heights, flats, brightness and tag
// for a cell and inserts (or reuses) its sector in the arena.
func (t *Transcoder) buildSector(cell *Cell, key uint16, special uint16) uint16 {
	ceilingZ := int16(0)
	if cell.Door == nil && !cell.Secret {
		ceilingZ = 64
	}

	var floorFlat, ceilingFlat string
	var tag uint16
	switch {
	case cell.Door != nil:
		floorFlat, ceilingFlat, tag = cell.Door.FloorFlat, cell.Door.CeilingFlat, cell.Door.Tag
	case cell.Area != nil:
		floorFlat, ceilingFlat, tag = cell.Area.FloorFlat, cell.Area.CeilingFlat, cell.Area.Tag
	default:
		floorFlat, ceilingFlat = t.Catalog.DefaultFloorFlat, t.Catalog.DefaultCeilingFlat
	}

	brightness := uint16(t.Catalog.DefaultBrightness)
	if cell.Area != nil {
		brightness = uint16(cell.Area.Brightness)
	}

	return t.Arena.AddSector(geom.SectorParams{
		Key:         key,
		FloorZ:      0,
		CeilingZ:    ceilingZ,
		FloorFlat:   floorFlat,
		CeilingFlat: ceilingFlat,
		Brightness:  brightness,
		Special:     special,
		Tag:         tag,
	})
}
