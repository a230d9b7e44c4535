// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package wad

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/tilegeist/wolf2wad/geom"
)

func buildArena() *geom.Arena {
	a := geom.New()
	v0 := a.AddVertex(0, 0)
	v1 := a.AddVertex(64, 0)
	a.AddLine(geom.AddLineParams{
		Start: v0, End: v1,
		FrontUpper: "-", FrontMiddle: "MIDTEX", FrontLower: "LOWTEX",
		BackUpper: "-", BackMiddle: "-", BackLower: "-",
		FrontSector: 0, BackSector: geom.NoSector,
		Flags: geom.FlagBlocking,
	})
	a.AddSector(geom.SectorParams{
		Key: 1, FloorZ: 0, CeilingZ: 64,
		FloorFlat: "FLOOR1", CeilingFlat: "CEIL1",
		Brightness: 160,
	})
	a.AddThing(32, -32, 0, 2015, 7)
	return a
}

func TestWriteHeaderAndDirectory(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "out.wad")
	arena := buildArena()

	if err := Write(name, 0, arena); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if string(data[:4]) != "PWAD" {
		t.Fatalf("identification = %q, want PWAD", data[:4])
	}
	numlumps := binary.LittleEndian.Uint32(data[4:8])
	if numlumps != numLumps {
		t.Errorf("numlumps = %d, want %d", numlumps, numLumps)
	}
	dirOfs := binary.LittleEndian.Uint32(data[8:12])
	if dirOfs != 12 {
		t.Errorf("dir offset = %d, want 12", dirOfs)
	}

	// First directory entry is the MAPxx marker lump: zero size, level+1.
	mapName := string(data[20:28])
	if mapName[:5] != "MAP01" {
		t.Errorf("map lump name = %q, want MAP01...", mapName)
	}

	if len(data) <= headerSize {
		t.Fatalf("len(data) = %d, want more than header-only %d", len(data), headerSize)
	}
}

func TestSidedefTextureOrderIsUpperLowerMiddle(t *testing.T) {
	s := geom.Sidedef{
		XOffset: 1, YOffset: 2,
		Upper: "UP", Lower: "LOW", Middle: "MID",
		Sector: 5,
	}
	b := appendSide(nil, s)
	if len(b) != 30 {
		t.Fatalf("len(appendSide) = %d, want 30", len(b))
	}

	gotUpper := string(b[4:12])
	gotLower := string(b[12:20])
	gotMiddle := string(b[20:28])

	if trimNUL(gotUpper) != "UP" {
		t.Errorf("on-disk upper field = %q, want UP", gotUpper)
	}
	if trimNUL(gotLower) != "LOW" {
		t.Errorf("on-disk lower field = %q, want LOW (second on-disk slot)", gotLower)
	}
	if trimNUL(gotMiddle) != "MID" {
		t.Errorf("on-disk middle field = %q, want MID (third on-disk slot)", gotMiddle)
	}

	sector := binary.LittleEndian.Uint16(b[28:30])
	if sector != 5 {
		t.Errorf("sector = %d, want 5", sector)
	}
}

func trimNUL(s string) string {
	for i, c := range s {
		if c == 0 {
			return s[:i]
		}
	}
	return s
}

func TestAppendNameTruncatesAndPads(t *testing.T) {
	b := appendName(nil, "TOOLONGNAME")
	if len(b) != lumpNameMax {
		t.Fatalf("len = %d, want %d", len(b), lumpNameMax)
	}
	if string(b) != "TOOLONGN" {
		t.Errorf("truncated name = %q, want TOOLONGN", b)
	}

	b2 := appendName(nil, "AB")
	if len(b2) != lumpNameMax || b2[2] != 0 {
		t.Errorf("short name not zero-padded: %v", b2)
	}
}

func TestAppendThingLayout(t *testing.T) {
	th := geom.Thing{X: 10, Y: -20, Angle: 90, EdNum: 2015, Flags: 7}
	b := appendThing(nil, th)
	if len(b) != 10 {
		t.Fatalf("len = %d, want 10", len(b))
	}
	if int16(binary.LittleEndian.Uint16(b[0:2])) != 10 {
		t.Errorf("X mismatch")
	}
	if int16(binary.LittleEndian.Uint16(b[2:4])) != -20 {
		t.Errorf("Y mismatch")
	}
	if binary.LittleEndian.Uint16(b[4:6]) != 90 {
		t.Errorf("Angle mismatch")
	}
	if binary.LittleEndian.Uint16(b[6:8]) != 2015 {
		t.Errorf("EdNum mismatch")
	}
	if binary.LittleEndian.Uint16(b[8:10]) != 7 {
		t.Errorf("Flags mismatch")
	}
}
