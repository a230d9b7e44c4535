// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
)

// doorNearInset and doorFarInset are the offsets, in map units, from the
// tile's west (Y-axis door) or north (X-axis door) edge to the door
// leaf's two faces. The 6-unit strip between them is the door sector;
// the space on either side of it is a track pocket.
const (
	doorNearInset = 29
	doorFarInset  = 35
)

// doorActions maps a catalog door type to its linedef special.
var doorActions = map[catalog.DoorType]uint16{
	catalog.DoorNormal:       geom.ActionDoor,
	catalog.DoorFast:         geom.ActionDoorFast,
	catalog.DoorRed:          geom.ActionDoorRed,
	catalog.DoorYellow:       geom.ActionDoorYellow,
	catalog.DoorBlue:         geom.ActionDoorBlue,
	catalog.DoorRedCard:      geom.ActionDoorRedCard,
	catalog.DoorYellowCard:   geom.ActionDoorYellowCard,
	catalog.DoorBlueCard:     geom.ActionDoorBlueCard,
	catalog.DoorRedSkull:     geom.ActionDoorRedSkull,
	catalog.DoorYellowSkull:  geom.ActionDoorYellowSkull,
	catalog.DoorBlueSkull:    geom.ActionDoorBlueSkull,
}

// vertexPx maps a raw map-unit coordinate pair to a vertex index,
// bypassing the tile-grid scaling vertex() applies — door geometry is
// built out of sub-tile offsets (the track inset) that don't land on
// tile corners.
func (t *Transcoder) vertexPx(px, py int) uint16 {
	return t.Arena.AddVertex(int16(px), int16(py))
}

// neighborSector returns the sector of the cell at (x, y), or NoSector
// if that position is off-grid. A well-formed door never sits flush
// against the map edge along its own axis, but this guard keeps a
// malformed one from panicking instead of simply emitting NoSector.
func (t *Transcoder) neighborSector(x, y int) uint16 {
	if !t.Cells.InBounds(x, y) {
		return geom.NoSector
	}
	return t.Cells.At(x, y).Sector
}

// emitDoor synthesizes a door's track pockets, frame and leaf (§4.6): two
// anonymous one-tile-deep sectors straddling the door's axis-perpendicular
// edges, the entrance lines opening them to the map proper, the four
// blocking track-side lines, and the two-sided door leaf itself.
func (t *Transcoder) emitDoor(cell *Cell, x, y int) {
	door := cell.Door
	leftSector := t.buildDoorTrackSector()
	rightSector := t.buildDoorTrackSector()
	action := doorActions[door.Type]

	px, py := x*tileUnit, -(y * tileUnit)
	pxNext, pyNext := (x+1)*tileUnit, -((y + 1) * tileUnit)

	if door.Axis == catalog.AxisY {
		t.emitDoorY(cell, door, px, py, pxNext, pyNext, x, y, leftSector, rightSector, action)
		return
	}
	t.emitDoorX(cell, door, px, py, pxNext, pyNext, x, y, leftSector, rightSector, action)
}

func (t *Transcoder) buildDoorTrackSector() uint16 {
	return t.Arena.AddSector(geom.SectorParams{
		Key:         t.Arena.NextAnonymousSector(),
		FloorZ:      0,
		CeilingZ:    64,
		FloorFlat:   t.Catalog.DefaultFloorFlat,
		CeilingFlat: t.Catalog.DefaultCeilingFlat,
		Brightness:  uint16(t.Catalog.DefaultBrightness),
		Special:     geom.SpecialNormal,
	})
}

// emitDoorY builds a door whose track runs along the Y (north-south)
// tile edges, opening east-west.
func (t *Transcoder) emitDoorY(cell *Cell, door *catalog.DoorInfo, px, py, pxNext, pyNext, x, y int, leftSector, rightSector uint16, action uint16) {
	// Entrance: opens the track pockets to the west and east neighbours.
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, py), End: t.vertexPx(px, pyNext),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: t.neighborSector(x-1, y), BackSector: leftSector,
		Flags: geom.FlagTwoSided,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, pyNext), End: t.vertexPx(pxNext, py),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: t.neighborSector(x+1, y), BackSector: rightSector,
		Flags: geom.FlagTwoSided,
	})

	// Side: the two track-pocket walls flanking the door leaf.
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, py), End: t.vertexPx(px+doorNearInset, py),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorFarInset, py), End: t.vertexPx(pxNext, py),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorFarInset,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, pyNext), End: t.vertexPx(px+doorFarInset, pyNext),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorNearInset, pyNext), End: t.vertexPx(px, pyNext),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorFarInset,
	})

	// Door: the leaf itself, plus the two short frame fillers closing the
	// gap between the leaf and the track pockets at rest.
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorNearInset, py), End: t.vertexPx(px+doorNearInset, pyNext),
		FrontUpper: door.SideLeft, FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided, Special: action,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorFarInset, pyNext), End: t.vertexPx(px+doorFarInset, py),
		FrontUpper: door.SideRight, FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided, Special: action,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorNearInset, py), End: t.vertexPx(px+doorFarInset, py),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: cell.Sector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorNearInset,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px+doorFarInset, pyNext), End: t.vertexPx(px+doorNearInset, pyNext),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: cell.Sector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorNearInset,
	})
}

// emitDoorX builds a door whose track runs along the X (east-west) tile
// edges, opening north-south. Mirrors emitDoorY with axes swapped: "left"
// is north, "right" is south.
func (t *Transcoder) emitDoorX(cell *Cell, door *catalog.DoorInfo, px, py, pxNext, pyNext, x, y int, leftSector, rightSector uint16, action uint16) {
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, py), End: t.vertexPx(px, py),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: t.neighborSector(x, y-1), BackSector: leftSector,
		Flags: geom.FlagTwoSided,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, pyNext), End: t.vertexPx(pxNext, pyNext),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: t.neighborSector(x, y+1), BackSector: rightSector,
		Flags: geom.FlagTwoSided,
	})

	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, pyNext), End: t.vertexPx(px, py-doorFarInset),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, py-doorNearInset), End: t.vertexPx(px, py),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorFarInset,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, py-doorFarInset), End: t.vertexPx(pxNext, pyNext),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorFarInset,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, py), End: t.vertexPx(pxNext, py-doorNearInset),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow,
	})

	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, py-doorNearInset), End: t.vertexPx(px, py-doorNearInset),
		FrontUpper: door.SideRight, FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: leftSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided, Special: action,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, py-doorFarInset), End: t.vertexPx(pxNext, py-doorFarInset),
		FrontUpper: door.SideLeft, FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: rightSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided, Special: action,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(px, py-doorFarInset), End: t.vertexPx(px, py-doorNearInset),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: cell.Sector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorNearInset,
	})
	t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertexPx(pxNext, py-doorNearInset), End: t.vertexPx(pxNext, py-doorFarInset),
		FrontUpper: "-", FrontMiddle: door.Track, FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: cell.Sector, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking | geom.FlagUnpegLow, XOffset: doorNearInset,
	})
}
