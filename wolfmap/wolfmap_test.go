// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package wolfmap

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDecodeCarmackLiteral(t *testing.T) {
	in := []byte{0x04, 0x00, 0x11, 0x22, 0x33, 0x44}
	out, err := decodeCarmack(in, 4)
	if err != nil {
		t.Fatalf("decodeCarmack: %v", err)
	}
	want := []byte{0x11, 0x22, 0x33, 0x44}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("decodeCarmack = %v, want %v", out, want)
	}
}

func TestDecodeCarmackEscape(t *testing.T) {
	in := []byte{0x02, 0x00, 0x00, carmackNear, 0x99}
	out, err := decodeCarmack(in, 2)
	if err != nil {
		t.Fatalf("decodeCarmack: %v", err)
	}
	want := []byte{0x99, carmackNear}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("decodeCarmack = %v, want %v", out, want)
	}
}

func TestDecodeCarmackNearBackref(t *testing.T) {
	// Literal 0x01,0x02, then a near copy of the last word (length=1 word,
	// back-reference offset=1 word).
	in := []byte{0x04, 0x00, 0x01, 0x02, 0x01, carmackNear, 0x01}
	out, err := decodeCarmack(in, 4)
	if err != nil {
		t.Fatalf("decodeCarmack: %v", err)
	}
	want := []byte{0x01, 0x02, 0x01, 0x02}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("decodeCarmack = %v, want %v", out, want)
	}
}

func TestDecodeRLEW(t *testing.T) {
	magic := uint16(0xABCD)
	in := []byte{
		0x08, 0x00, // outBytes = 4 tiles * 2
		0x01, 0x00, // literal tile 1
		0xCD, 0xAB, // magic marker
		0x03, 0x00, // run count 3
		0x02, 0x00, // run value 2
	}
	out, err := decodeRLEW(in, magic, 4)
	if err != nil {
		t.Fatalf("decodeRLEW: %v", err)
	}
	want := []uint16{1, 2, 2, 2}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("decodeRLEW = %v, want %v", out, want)
	}
}

func TestGridAtAndInBounds(t *testing.T) {
	g := &Grid{Width: 2, Height: 2}
	g.Planes[PlaneWalls] = []uint16{1, 2, 3, 4}

	if got := g.At(PlaneWalls, 1, 1); got != 4 {
		t.Errorf("At(1,1) = %d, want 4", got)
	}
	if got := g.At(PlaneObjects, 0, 0); got != 0 {
		t.Errorf("At on nil plane = %d, want 0", got)
	}
	if !g.InBounds(0, 0) || g.InBounds(2, 0) || g.InBounds(-1, 0) {
		t.Errorf("InBounds gave unexpected result for 2x2 grid")
	}
}

// buildFixture writes a minimal MAPHEAD/GAMEMAPS pair holding one level
// with a single uncompressed-content walls plane, matching the on-disk
// shapes Load expects.
func buildFixture(t *testing.T, dir string) (maphead, gamemaps string) {
	t.Helper()

	magic := uint16(0xABCD)
	width, height := 2, 2
	numTiles := width * height

	// RLEW-encode all four tiles (value 1) as a single run, so the
	// decompressed-size header stays within bufsize*2 once wrapped in a
	// Carmack literal run below.
	rlew := []byte{
		byte(numTiles * 2), byte((numTiles * 2) >> 8), // decompressed byte count
		byte(magic), byte(magic >> 8), // run marker
		0x04, 0x00, // run count
		0x01, 0x00, // run value
	}

	// Carmack-encode as a single literal run covering the whole RLEW
	// payload (length/tag pairs with tags that never match the escape
	// markers).
	var carmack []byte
	carmack = append(carmack, byte(len(rlew)), byte(len(rlew)>>8))
	for i := 0; i < len(rlew); i += 2 {
		carmack = append(carmack, rlew[i], rlew[i+1])
	}

	nameField := make([]byte, nameMax)
	copy(nameField, "E1M1")

	const recordOffset = 8
	planeOffset := int32(recordOffset + 3*4 + 3*2 + 2*2 + nameMax)

	gamemapsPath := filepath.Join(dir, "GAMEMAPS.wl6")
	gf, err := os.Create(gamemapsPath)
	if err != nil {
		t.Fatalf("create gamemaps: %v", err)
	}
	defer gf.Close()

	gf.WriteString("TED5v1.0")
	binary.Write(gf, binary.LittleEndian, [3]int32{planeOffset, 0, 0})
	binary.Write(gf, binary.LittleEndian, [3]uint16{uint16(len(carmack)), 0, 0})
	binary.Write(gf, binary.LittleEndian, uint16(width))
	binary.Write(gf, binary.LittleEndian, uint16(height))
	gf.Write(nameField)
	gf.Write(carmack)

	mapheadPath := filepath.Join(dir, "MAPHEAD.wl6")
	mf, err := os.Create(mapheadPath)
	if err != nil {
		t.Fatalf("create maphead: %v", err)
	}
	defer mf.Close()

	binary.Write(mf, binary.LittleEndian, magic)
	binary.Write(mf, binary.LittleEndian, int32(recordOffset))
	for i := 1; i < maxLevels; i++ {
		binary.Write(mf, binary.LittleEndian, int32(0))
	}

	return mapheadPath, gamemapsPath
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	maphead, gamemaps := buildFixture(t, dir)

	g, err := Load(maphead, gamemaps, 0)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Width != 2 || g.Height != 2 {
		t.Errorf("dims = %dx%d, want 2x2", g.Width, g.Height)
	}
	if g.Name != "E1M1" {
		t.Errorf("Name = %q, want E1M1", g.Name)
	}
	want := []uint16{1, 1, 1, 1}
	if !reflect.DeepEqual(g.Planes[PlaneWalls], want) {
		t.Errorf("Planes[PlaneWalls] = %v, want %v", g.Planes[PlaneWalls], want)
	}
	if g.Planes[PlaneObjects] != nil {
		t.Errorf("Planes[PlaneObjects] = %v, want nil (size 0)", g.Planes[PlaneObjects])
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	maphead, gamemaps := buildFixture(t, dir)

	if _, err := Load(maphead, gamemaps, -1); err == nil {
		t.Errorf("Load(level=-1) = nil error, want error")
	}
	if _, err := Load(maphead, gamemaps, 5); err == nil {
		t.Errorf("Load(level=5, no data) = nil error, want error")
	}
}
