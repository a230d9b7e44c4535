// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/geom"
)

// vertex maps a tile-grid corner to a map-unit vertex index. Wolfenstein
// grids grow south as y increases; Doom's Y axis grows north, hence the
// sign flip.
func (t *Transcoder) vertex(tx, ty int) uint16 {
	return t.Arena.AddVertex(int16(tx*tileUnit), int16(-ty*tileUnit))
}

// emitNormalCell emits the free-face and sector-boundary linedefs for a
// non-door cell (§4.5). Order follows the original tool: sector
// boundaries (right, top, left, bottom) before wall faces in the same
// order, since a cell can need both on different sides but never on the
// same one (Invariant C4).
func (t *Transcoder) emitNormalCell(cell *Cell, x, y int) {
	if cell.SRight {
		t.emitBoundaryRight(cell, x, y)
	}
	if cell.STop {
		t.emitBoundaryTop(cell, x, y)
	}
	if cell.SLeft {
		t.emitBoundaryLeft(cell, x, y)
	}
	if cell.SBottom {
		t.emitBoundaryBottom(cell, x, y)
	}

	if cell.FRight {
		t.emitFaceRight(cell, x, y)
	}
	if cell.FTop {
		t.emitFaceTop(cell, x, y)
	}
	if cell.FLeft {
		t.emitFaceLeft(cell, x, y)
	}
	if cell.FBottom {
		t.emitFaceBottom(cell, x, y)
	}
}

// teleportSpecial resolves the teleport special/tag an open sector
// boundary carries when its area is a teleport pad, or LT_NORMAL/0
// otherwise.
func teleportSpecial(area *catalog.AreaInfo) (uint16, uint16) {
	if area != nil && area.Type == catalog.AreaTeleport {
		return geom.ActionTeleport, area.Tag
	}
	return geom.ActionNormal, 0
}

func (t *Transcoder) emitBoundaryRight(cell *Cell, x, y int) {
	width := t.Cells.Width
	var neighbor *Cell
	if y > 0 {
		neighbor = t.Cells.At(x, y-1)
	}
	if neighbor != nil && neighbor.SRight && neighbor.Sector == cell.Sector &&
		(x >= width-1 || t.Cells.At(x+1, y).Tile == t.Cells.At(x+1, y-1).Tile) {
		cell.Right = neighbor.Right
		t.Arena.SetLineStart(cell.Right, t.vertex(x+1, y+1))
		return
	}

	frontSector := geom.NoSector
	if x+1 < width {
		frontSector = t.Cells.At(x+1, y).Sector
	}
	special, tag := teleportSpecial(cell.Area)
	cell.Right = t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertex(x+1, y+1), End: t.vertex(x+1, y),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: frontSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided | geom.FlagBlockSound,
		Special: special, Tag: tag,
	})
}

func (t *Transcoder) emitBoundaryTop(cell *Cell, x, y int) {
	var neighbor *Cell
	if x > 0 {
		neighbor = t.Cells.At(x-1, y)
	}
	if neighbor != nil && neighbor.STop && neighbor.Sector == cell.Sector &&
		(y <= 0 || t.Cells.At(x, y-1).Tile == t.Cells.At(x-1, y-1).Tile) {
		cell.Top = neighbor.Top
		t.Arena.SetLineStart(cell.Top, t.vertex(x+1, y))
		return
	}

	frontSector := geom.NoSector
	if y-1 >= 0 {
		frontSector = t.Cells.At(x, y-1).Sector
	}
	special, tag := teleportSpecial(cell.Area)
	cell.Top = t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertex(x+1, y), End: t.vertex(x, y),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: frontSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided | geom.FlagBlockSound,
		Special: special, Tag: tag,
	})
}

func (t *Transcoder) emitBoundaryLeft(cell *Cell, x, y int) {
	var neighbor *Cell
	if y > 0 {
		neighbor = t.Cells.At(x, y-1)
	}
	if neighbor != nil && neighbor.SLeft && neighbor.Sector == cell.Sector &&
		(x <= 0 || t.Cells.At(x-1, y).Tile == t.Cells.At(x-1, y-1).Tile) {
		cell.Left = neighbor.Left
		t.Arena.SetLineEnd(cell.Left, t.vertex(x, y+1))
		return
	}

	frontSector := geom.NoSector
	if x-1 >= 0 {
		frontSector = t.Cells.At(x-1, y).Sector
	}
	special, tag := teleportSpecial(cell.Area)
	cell.Left = t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertex(x, y), End: t.vertex(x, y+1),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: frontSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided | geom.FlagBlockSound,
		Special: special, Tag: tag,
	})
}

func (t *Transcoder) emitBoundaryBottom(cell *Cell, x, y int) {
	height := t.Cells.Height
	var neighbor *Cell
	if x > 0 {
		neighbor = t.Cells.At(x-1, y)
	}
	if neighbor != nil && neighbor.SBottom && neighbor.Sector == cell.Sector &&
		(y >= height-1 || t.Cells.At(x, y+1).Tile == t.Cells.At(x-1, y+1).Tile) {
		cell.Bottom = neighbor.Bottom
		t.Arena.SetLineEnd(cell.Bottom, t.vertex(x+1, y+1))
		return
	}

	frontSector := geom.NoSector
	if y+1 < height {
		frontSector = t.Cells.At(x, y+1).Sector
	}
	special, tag := teleportSpecial(cell.Area)
	cell.Bottom = t.Arena.AddLine(geom.AddLineParams{
		Start: t.vertex(x, y+1), End: t.vertex(x+1, y+1),
		FrontUpper: "-", FrontMiddle: "-", FrontLower: "-",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: frontSector, BackSector: cell.Sector,
		Flags: geom.FlagTwoSided | geom.FlagBlockSound,
		Special: special, Tag: tag,
	})
}

// wallFaceTextures resolves the six texture names a wall face's front and
// back sidedefs carry. A pushwall's texture rides the upper slot (so a
// two-sided secret wall still reads as solid); everything else rides the
// middle slot. Only a pushwall's back sidedef carries the wall's back
// texture; every other wall's back sidedef is blank. useY selects the
// wall's Y-facing texture pair (right/left faces); otherwise its X-facing
// pair (top/bottom faces) is used.
func wallFaceTextures(wall *catalog.WallInfo, secret bool, useY bool) (upper, middle, lower, backUpper, backMiddle, backLower string) {
	tex, backTex := wall.TextureX, wall.BackTextureX
	if useY {
		tex, backTex = wall.TextureY, wall.BackTextureY
	}
	if !secret {
		backTex = "-"
	}
	lower, backLower = "-", "-"
	if secret && wall.Class != catalog.WallMidtex {
		upper, backUpper = tex, backTex
		middle, backMiddle = "-", "-"
	} else {
		upper, backUpper = "-", "-"
		middle, backMiddle = tex, backTex
	}
	return
}

// wallFaceFlags resolves a wall face's linedef flags (§4.5): a plain
// solid wall blocks; a midtex face is two-sided and blocks unless it is
// also a pushwall; a pushwall's non-midtex face is two-sided and marked
// secret (hidden from the automap).
func wallFaceFlags(wall *catalog.WallInfo, secret bool, sector uint16) uint16 {
	if wall.Class == catalog.WallMidtex {
		if secret {
			return geom.FlagTwoSided | geom.FlagUnpegLow
		}
		return geom.FlagTwoSided | geom.FlagUnpegLow | geom.FlagBlocking | geom.FlagBlockSound
	}
	if sector == geom.NoSector {
		return geom.FlagBlocking | geom.FlagUnpegLow
	}
	return geom.FlagTwoSided | geom.FlagSecret
}

// wallFaceSpecial resolves a wall face's linedef special: an exit switch
// on a solid wall becomes LT_EXIT, or LT_SECRET_EXIT if the cell it faces
// is a secret-exit area; a pushwall's non-midtex face becomes LT_SECRET;
// anything else is LT_NORMAL.
func wallFaceSpecial(wall *catalog.WallInfo, secret bool, sector uint16, action catalog.WallAction, neighborArea *catalog.AreaInfo) uint16 {
	if sector == geom.NoSector {
		if action == catalog.ActionExit {
			if neighborArea != nil && neighborArea.Type == catalog.AreaSecretExit {
				return geom.ActionSecretExit
			}
			return geom.ActionExit
		}
		return geom.ActionNormal
	}
	if secret && wall.Class != catalog.WallMidtex {
		return geom.ActionSecret
	}
	return geom.ActionNormal
}

// wallFaceLine assembles the AddLineParams for a newly emitted wall face
// between cell and the open neighbour it faces.
func (t *Transcoder) wallFaceLine(cell, neighbor *Cell, useY bool, action catalog.WallAction, start, end uint16) geom.AddLineParams {
	upper, middle, lower, backUpper, backMiddle, backLower := wallFaceTextures(cell.Wall, cell.Secret, useY)
	return geom.AddLineParams{
		Start: start, End: end,
		FrontUpper: upper, FrontMiddle: middle, FrontLower: lower,
		BackUpper: backUpper, BackMiddle: backMiddle, BackLower: backLower,
		FrontSector: neighbor.Sector, BackSector: cell.Sector,
		Flags:   wallFaceFlags(cell.Wall, cell.Secret, cell.Sector),
		Special: wallFaceSpecial(cell.Wall, cell.Secret, cell.Sector, action, neighbor.Area),
		Tag:     cell.Wall.Tag,
	}
}

func (t *Transcoder) emitFaceRight(cell *Cell, x, y int) {
	var merge *Cell
	if y > 0 {
		merge = t.Cells.At(x, y-1)
	}
	if merge != nil && merge.Wall == cell.Wall && merge.FRight && merge.Sector == cell.Sector &&
		t.Cells.At(x+1, y).Tile == t.Cells.At(x+1, y-1).Tile {
		cell.Right = merge.Right
		t.Arena.SetLineStart(cell.Right, t.vertex(x+1, y+1))
		return
	}

	east := t.Cells.At(x+1, y)
	cell.Right = t.Arena.AddLine(t.wallFaceLine(cell, east, true, cell.Wall.ActionY, t.vertex(x+1, y+1), t.vertex(x+1, y)))
}

func (t *Transcoder) emitFaceTop(cell *Cell, x, y int) {
	var merge *Cell
	if x > 0 {
		merge = t.Cells.At(x-1, y)
	}
	if merge != nil && merge.Wall == cell.Wall && merge.FTop && merge.Sector == cell.Sector &&
		t.Cells.At(x, y-1).Tile == t.Cells.At(x-1, y-1).Tile {
		cell.Top = merge.Top
		t.Arena.SetLineStart(cell.Top, t.vertex(x+1, y))
		return
	}

	north := t.Cells.At(x, y-1)
	cell.Top = t.Arena.AddLine(t.wallFaceLine(cell, north, false, cell.Wall.ActionX, t.vertex(x+1, y), t.vertex(x, y)))
}

func (t *Transcoder) emitFaceLeft(cell *Cell, x, y int) {
	var merge *Cell
	if y > 0 {
		merge = t.Cells.At(x, y-1)
	}
	if merge != nil && merge.Wall == cell.Wall && merge.FLeft && merge.Sector == cell.Sector &&
		t.Cells.At(x-1, y).Tile == t.Cells.At(x-1, y-1).Tile {
		cell.Left = merge.Left
		t.Arena.SetLineEnd(cell.Left, t.vertex(x, y+1))
		return
	}

	west := t.Cells.At(x-1, y)
	cell.Left = t.Arena.AddLine(t.wallFaceLine(cell, west, true, cell.Wall.ActionY, t.vertex(x, y), t.vertex(x, y+1)))
}

func (t *Transcoder) emitFaceBottom(cell *Cell, x, y int) {
	var merge *Cell
	if x > 0 {
		merge = t.Cells.At(x-1, y)
	}
	if merge != nil && merge.Wall == cell.Wall && merge.FBottom && merge.Sector == cell.Sector &&
		t.Cells.At(x, y+1).Tile == t.Cells.At(x-1, y+1).Tile {
		cell.Bottom = merge.Bottom
		t.Arena.SetLineEnd(cell.Bottom, t.vertex(x+1, y+1))
		return
	}

	south := t.Cells.At(x, y+1)
	cell.Bottom = t.Arena.AddLine(t.wallFaceLine(cell, south, false, cell.Wall.ActionX, t.vertex(x, y+1), t.vertex(x+1, y+1)))
}
