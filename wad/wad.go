// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

// Package wad serializes a Geometry Arena into a single-level Doom PWAD
// (§4.7 of the specification): a 4-byte identification, a lump count and
// directory offset, an 11-entry directory, and the five populated lumps
// back to back.
//
// The little-endian struct writer style follows wolfmap's binary reader,
// generalized here to the write direction the teacher engine's load
// package never needed.
package wad

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/tilegeist/wolf2wad/geom"
)

// lumpNameMax is the fixed width of both directory lump names and
// texture/flat names embedded in SIDEDEFS and SECTORS.
const lumpNameMax = 8

const numLumps = 11

// headerSize is the byte offset the first populated lump starts at:
// 12 bytes of PWAD header plus 11 16-byte directory entries.
const headerSize = 12 + numLumps*16

// Write serializes arena as level id's single-level PWAD to name.
// Level IDs are zero-based; the MAPxx lump name uses id+1, matching
// wolfmap.Grid.ID numbering (§6.1).
func Write(name string, id int, arena *geom.Arena) error {
	var buf bytes.Buffer
	if err := encode(&buf, id, arena); err != nil {
		return fmt.Errorf("wad: encode: %w", err)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("wad: create %q: %w", name, err)
	}
	defer f.Close()

	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("wad: write %q: %w", name, err)
	}
	return nil
}

func encode(w *bytes.Buffer, id int, arena *geom.Arena) error {
	things := make([]byte, 0, len(arena.Things)*10)
	for _, t := range arena.Things {
		things = appendThing(things, t)
	}

	lines := make([]byte, 0, len(arena.Lines)*14)
	for _, l := range arena.Lines {
		lines = appendLine(lines, l)
	}

	sides := make([]byte, 0, len(arena.Sides)*30)
	for _, s := range arena.Sides {
		sides = appendSide(sides, s)
	}

	vertices := make([]byte, 0, len(arena.Vertices)*4)
	for _, v := range arena.Vertices {
		vertices = appendVertex(vertices, v)
	}

	sectors := make([]byte, 0, len(arena.Sectors)*26)
	for _, s := range arena.Sectors {
		sectors = appendSector(sectors, s)
	}

	if err := writeString(w, "PWAD", 4); err != nil {
		return err
	}
	if err := writeU32(w, numLumps); err != nil {
		return err
	}
	if err := writeU32(w, 12); err != nil {
		return err
	}

	thingsOfs := headerSize
	linesOfs := thingsOfs + len(things)
	sidesOfs := linesOfs + len(lines)
	vertsOfs := sidesOfs + len(sides)
	sectorsOfs := vertsOfs + len(vertices)

	mapName := fmt.Sprintf("MAP%02d", id+1)

	entries := []struct {
		ofs, size int
		name      string
	}{
		{0, 0, mapName},
		{thingsOfs, len(things), "THINGS"},
		{linesOfs, len(lines), "LINEDEFS"},
		{sidesOfs, len(sides), "SIDEDEFS"},
		{vertsOfs, len(vertices), "VERTEXES"},
		{0, 0, "SEGS"},
		{0, 0, "SSECTORS"},
		{0, 0, "NODES"},
		{sectorsOfs, len(sectors), "SECTORS"},
		{0, 0, "REJECT"},
		{0, 0, "BLOCKMAP"},
	}
	for _, e := range entries {
		if err := writeU32(w, uint32(e.ofs)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(e.size)); err != nil {
			return err
		}
		if err := writeString(w, e.name, lumpNameMax); err != nil {
			return err
		}
	}

	for _, b := range [][]byte{things, lines, sides, vertices, sectors} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func appendThing(b []byte, t geom.Thing) []byte {
	b = appendI16(b, t.X)
	b = appendI16(b, t.Y)
	b = appendU16(b, t.Angle)
	b = appendU16(b, t.EdNum)
	b = appendU16(b, t.Flags)
	return b
}

func appendLine(b []byte, l geom.Linedef) []byte {
	b = appendU16(b, l.Start)
	b = appendU16(b, l.End)
	b = appendU16(b, l.Flags)
	b = appendU16(b, l.Special)
	b = appendU16(b, l.Tag)
	b = appendU16(b, l.Front)
	b = appendU16(b, l.Back)
	return b
}

// appendSide writes a sidedef in Doom's actual on-disk texture order —
// upper, lower, middle — which differs from geom.Sidedef's field order
// (chosen there to read naturally alongside wallFaceTextures).
func appendSide(b []byte, s geom.Sidedef) []byte {
	b = appendI16(b, s.XOffset)
	b = appendI16(b, s.YOffset)
	b = appendName(b, s.Upper)
	b = appendName(b, s.Lower)
	b = appendName(b, s.Middle)
	b = appendU16(b, s.Sector)
	return b
}

func appendVertex(b []byte, v geom.Vertex) []byte {
	b = appendI16(b, v.X)
	b = appendI16(b, v.Y)
	return b
}

func appendSector(b []byte, s geom.Sector) []byte {
	b = appendI16(b, s.FloorZ)
	b = appendI16(b, s.CeilingZ)
	b = appendName(b, s.FloorFlat)
	b = appendName(b, s.CeilingFlat)
	b = appendU16(b, s.Brightness)
	b = appendU16(b, s.Special)
	b = appendU16(b, s.Tag)
	return b
}

func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func appendI16(b []byte, v int16) []byte {
	return appendU16(b, uint16(v))
}

// appendName appends s as a fixed lumpNameMax-byte, NUL-padded field,
// truncating if s is longer (a malformed catalog entry, not a level
// quirk — callers are expected to validate texture names at load time).
func appendName(b []byte, s string) []byte {
	var field [lumpNameMax]byte
	copy(field[:], s)
	return append(b, field[:]...)
}

func writeString(w io.Writer, s string, width int) error {
	field := make([]byte, width)
	copy(field, s)
	_, err := w.Write(field)
	return err
}

func writeU32(w io.Writer, v uint32) error {
	return binary.Write(w, binary.LittleEndian, v)
}
