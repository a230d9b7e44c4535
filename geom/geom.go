// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

// Package geom is the Geometry Arena: append-only stores for vertices,
// sidedefs, linedefs, sectors, and things, each with a deduplicating
// insertion operation that returns a stable index (§4.2 of the spec).
//
// Arena growth may reallocate backing slices, so callers hold indices
// returned from the Add* methods, never pointers into the arena — the
// same discipline the teacher engine uses for GPU-bound mesh buffers
// in mesh.go, generalized here from vertex buffers to WAD lumps.
package geom

const (
	// NoSector marks a cell that has no floor (a solid wall) or a
	// linedef side that has no back sector.
	NoSector uint16 = 0xFFFF
	NoSide   uint16 = 0xFFFF
)

// Linedef flag bits, matching the Doom LINEDEFS wire format.
const (
	FlagBlocking   uint16 = 0x0001
	FlagTwoSided   uint16 = 0x0004
	FlagUnpegLow   uint16 = 0x0010
	FlagSecret     uint16 = 0x0020
	FlagBlockSound uint16 = 0x0040
)

// Sector special behaviors.
const (
	SpecialNormal uint16 = 0
	SpecialSlime5  uint16 = 7
	SpecialSlime10 uint16 = 5
	SpecialSlime20 uint16 = 16
	SpecialSecret  uint16 = 9
)

// Linedef special actions.
const (
	ActionNormal          uint16 = 0
	ActionDoor            uint16 = 1
	ActionDoorRedCard     uint16 = 14407
	ActionDoorYellowCard  uint16 = 14535
	ActionDoorBlueCard    uint16 = 14471
	ActionDoorRedSkull    uint16 = 14599
	ActionDoorYellowSkull uint16 = 14727
	ActionDoorBlueSkull   uint16 = 14663
	ActionSwitch          uint16 = 103
	ActionTeleport        uint16 = 97
	ActionSecret          uint16 = 118
	ActionExit            uint16 = 11
	ActionSecretExit      uint16 = 51
	ActionDoorBlue        uint16 = 26
	ActionDoorYellow      uint16 = 27
	ActionDoorRed         uint16 = 28
	ActionDoorFast        uint16 = 117
)

// Vertex is a map-unit coordinate pair, deduplicated by exact equality.
type Vertex struct {
	X, Y int16
}

// Sidedef textures one face of a linedef; never deduplicated, since two
// linedefs with identical texturing can still need distinct sidedefs
// (different offsets, different orientation).
type Sidedef struct {
	XOffset, YOffset int16
	Upper, Middle, Lower string
	Sector uint16
}

// Linedef is a directed segment between two vertices carrying one or
// two sidedefs and an optional special action.
type Linedef struct {
	Start, End         uint16
	Flags              uint16
	Special, Tag       uint16
	Front, Back        uint16 // sidedef indices, NoSide if absent
}

// Sector is a closed polygon region sharing floor/ceiling height, flats,
// brightness and a behavioural special.
type Sector struct {
	FloorZ, CeilingZ       int16
	FloorFlat, CeilingFlat string
	Brightness             uint16
	Special, Tag           uint16
}

// Thing is a placed map object: position, facing angle, type, and
// difficulty/coop option flags.
type Thing struct {
	X, Y   int16
	Angle  uint16
	EdNum  uint16
	Flags  uint16
}

// Arena owns every geometry store produced by the transcoder. Create one
// with New; the zero value has no dedup indexes and is not ready to use.
type Arena struct {
	Vertices []Vertex
	Sides    []Sidedef
	Lines    []Linedef
	Sectors  []Sector
	Things   []Thing

	// sectorKeys maps a synthetic sector key (§4.2) to the arena index
	// of the sector it produced, so repeated add_sector calls with the
	// same key return the same index.
	sectorKeys map[uint16]uint16

	// lineIndex accelerates AddLine's dedup scan, keyed by the
	// (start, end) vertex pair.
	lineIndex map[[2]uint16]uint16

	// vertexIndex accelerates AddVertex's dedup scan.
	vertexIndex map[[2]int16]uint16

	// LastAnonymousSector is the descending counter used to mint
	// per-cell unique sector keys (doors, secrets, orphaned ambushes,
	// door track pockets). It starts at 0xFFFE and only ever decreases.
	LastAnonymousSector uint16
}

// New returns an Arena ready for a fresh level.
func New() *Arena {
	return &Arena{
		sectorKeys:  make(map[uint16]uint16),
		lineIndex:   make(map[[2]uint16]uint16),
		vertexIndex: make(map[[2]int16]uint16),
		LastAnonymousSector: 0xFFFE,
	}
}

// NextAnonymousSector returns the next free synthetic sector key and
// then decrements the counter, so the first call returns 0xFFFE. Per Invariant from §9 Design Note 3, this counter must
// never wrap into NoSector (0xFFFF); callers are expected to fail the
// level rather than silently corrupt sector identity.
func (a *Arena) NextAnonymousSector() uint16 {
	key := a.LastAnonymousSector
	a.LastAnonymousSector--
	return key
}

// AddVertex returns the index of an existing vertex with identical
// coordinates, appending a new one only if none exists.
func (a *Arena) AddVertex(x, y int16) uint16 {
	key := [2]int16{x, y}
	if idx, ok := a.vertexIndex[key]; ok {
		return idx
	}
	idx := uint16(len(a.Vertices))
	a.Vertices = append(a.Vertices, Vertex{X: x, Y: y})
	a.vertexIndex[key] = idx
	return idx
}

// AddSide always appends a new sidedef; sidedefs are never deduplicated.
func (a *Arena) AddSide(upper, middle, lower string, sector uint16, xoff, yoff int16) uint16 {
	idx := uint16(len(a.Sides))
	a.Sides = append(a.Sides, Sidedef{
		XOffset: xoff, YOffset: yoff,
		Upper: upper, Middle: middle, Lower: lower,
		Sector: sector,
	})
	return idx
}

// AddLineParams bundles the many positional parameters a linedef needs,
// mirroring the shape of the original tool's add_line while keeping call
// sites in transcode readable.
type AddLineParams struct {
	Start, End uint16

	// Front/back texture triples: (upper, middle, lower).
	FrontUpper, FrontMiddle, FrontLower string
	BackUpper, BackMiddle, BackLower    string

	FrontSector, BackSector uint16
	Flags                   uint16
	Special, Tag            uint16
	XOffset, YOffset        int16
}

// AddLine deduplicates against any existing linedef whose (start, end)
// matches exactly, or whose (end, start) matches AND the existing
// linedef's flags equal exactly FlagTwoSided (§4.2, §9 Open Question 2 —
// this is a literal equality against the single bit, not a "bit is set"
// test, and that quirk is preserved intentionally). On a dedup hit no
// new sidedefs are created and the existing index is returned.
func (a *Arena) AddLine(p AddLineParams) uint16 {
	if idx, ok := a.lineIndex[[2]uint16{p.Start, p.End}]; ok {
		return idx
	}
	if idx, ok := a.lineIndex[[2]uint16{p.End, p.Start}]; ok {
		if a.Lines[idx].Flags == FlagTwoSided {
			return idx
		}
	}

	// The original tool always allocates both sidedefs, even for
	// one-sided lines (the back sidedef then points at NoSector with
	// blank textures). Preserved here rather than "fixed" to NoSide,
	// matching §9's guidance to keep literal source behavior.
	front := a.AddSide(p.FrontUpper, p.FrontMiddle, p.FrontLower, p.FrontSector, p.XOffset, p.YOffset)
	back := a.AddSide(p.BackUpper, p.BackMiddle, p.BackLower, p.BackSector, p.XOffset, p.YOffset)

	idx := uint16(len(a.Lines))
	a.Lines = append(a.Lines, Linedef{
		Start: p.Start, End: p.End,
		Flags: p.Flags, Special: p.Special, Tag: p.Tag,
		Front: front, Back: back,
	})
	a.lineIndex[[2]uint16{p.Start, p.End}] = idx
	return idx
}

// SetLineStart overwrites a linedef's start vertex in place, used when
// extending a collinear run so a previously emitted edge grows to span
// the newly merged cell (§4.5 step 3).
func (a *Arena) SetLineStart(line uint16, vertex uint16) {
	a.setLineEnds(line, vertex, a.Lines[line].End)
}

// SetLineEnd overwrites a linedef's end vertex in place.
func (a *Arena) SetLineEnd(line uint16, vertex uint16) {
	a.setLineEnds(line, a.Lines[line].Start, vertex)
}

// setLineEnds moves a linedef's endpoints and re-keys lineIndex so
// AddLine's dedup sees the line's current (start, end).
func (a *Arena) setLineEnds(line, start, end uint16) {
	l := &a.Lines[line]
	if idx, ok := a.lineIndex[[2]uint16{l.Start, l.End}]; ok && idx == line {
		delete(a.lineIndex, [2]uint16{l.Start, l.End})
	}
	l.Start, l.End = start, end
	if _, ok := a.lineIndex[[2]uint16{start, end}]; !ok {
		a.lineIndex[[2]uint16{start, end}] = line
	}
}

// SectorParams bundles a sector's attributes for AddSector.
type SectorParams struct {
	Key                    uint16
	FloorZ, CeilingZ       int16
	FloorFlat, CeilingFlat string
	Brightness             uint16
	Special, Tag           uint16
}

// AddSector deduplicates on key: repeated requests with the same key
// always yield the same sector index regardless of other parameters
// (first writer wins), per §4.2.
func (a *Arena) AddSector(p SectorParams) uint16 {
	if idx, ok := a.sectorKeys[p.Key]; ok {
		return idx
	}

	idx := uint16(len(a.Sectors))
	a.Sectors = append(a.Sectors, Sector{
		FloorZ: p.FloorZ, CeilingZ: p.CeilingZ,
		FloorFlat: p.FloorFlat, CeilingFlat: p.CeilingFlat,
		Brightness: p.Brightness, Special: p.Special, Tag: p.Tag,
	})
	a.sectorKeys[p.Key] = idx
	return idx
}

// AddThing always appends a new thing.
func (a *Arena) AddThing(x, y int16, angle, ednum, flags uint16) uint16 {
	idx := uint16(len(a.Things))
	a.Things = append(a.Things, Thing{X: x, Y: y, Angle: angle, EdNum: ednum, Flags: flags})
	return idx
}
