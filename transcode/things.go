// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package transcode

import (
	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/wolfmap"
)

// tileUnit is the map-unit width of one grid cell.
const tileUnit = 64

// placeThings walks the objects plane once, emitting a Doom THINGS entry
// for every tile whose catalog entry is an ObjThing marker (§4.4).
// Pushwall and plain markers are skipped here: pushwalls are consumed by
// sector assignment via Cell.Secret, and non-thing markers carry no
// placeable actor.
func (t *Transcoder) placeThings() {
	if t.Grid.Planes[wolfmap.PlaneObjects] == nil {
		return
	}

	for y := 0; y < t.Grid.Height; y++ {
		for x := 0; x < t.Grid.Width; x++ {
			id := t.Grid.At(wolfmap.PlaneObjects, x, y)
			obj := t.Catalog.ObjectInfo(int(id))
			if obj == nil || obj.Type != catalog.ObjThing {
				continue
			}

			cx := int16(x*tileUnit + tileUnit/2)
			cy := int16(-(y*tileUnit + tileUnit/2))
			t.Arena.AddThing(cx, cy, obj.Angle, obj.DoomEdNum, uint16(obj.Flags))
		}
	}
}
