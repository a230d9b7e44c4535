// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package catalog

import "testing"

func TestParseDefaults(t *testing.T) {
	cat, err := Parse([]byte(`name: Test Set`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cat.Name != "Test Set" {
		t.Errorf("Name = %q, want %q", cat.Name, "Test Set")
	}
	if cat.Format != MBF21 {
		t.Errorf("Format = %v, want MBF21", cat.Format)
	}
	if cat.DefaultFloorFlat != "FLAT5_4" {
		t.Errorf("DefaultFloorFlat = %q, want FLAT5_4", cat.DefaultFloorFlat)
	}
	if cat.DefaultCeilingFlat != "CEIL5_1" {
		t.Errorf("DefaultCeilingFlat = %q, want CEIL5_1", cat.DefaultCeilingFlat)
	}
	if cat.DefaultBrightness != 160 {
		t.Errorf("DefaultBrightness = %d, want 160", cat.DefaultBrightness)
	}
}

func TestParseWalls(t *testing.T) {
	doc := []byte(`
walls:
  1:
    name: Grey Stone
    xtex: GSTONE1
    class: midtex
    xact: exit
  2:
    name: Door Frame
    xtex: DOORFR
    ytex: DOORFR2
    back_xtex: DOORFR_B
`)
	cat, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	w1 := cat.WallInfo(1)
	if w1 == nil {
		t.Fatalf("WallInfo(1) = nil")
	}
	if w1.TextureX != "GSTONE1" || w1.TextureY != "GSTONE1" {
		t.Errorf("wall 1 textures = %q/%q, want ytex to default to xtex", w1.TextureX, w1.TextureY)
	}
	if w1.Class != WallMidtex {
		t.Errorf("wall 1 class = %v, want WallMidtex", w1.Class)
	}
	if w1.ActionX != ActionExit {
		t.Errorf("wall 1 ActionX = %v, want ActionExit", w1.ActionX)
	}
	if w1.ActionY != ActionNone {
		t.Errorf("wall 1 ActionY = %v, want ActionNone", w1.ActionY)
	}

	w2 := cat.WallInfo(2)
	if w2 == nil {
		t.Fatalf("WallInfo(2) = nil")
	}
	if w2.BackTextureX != "DOORFR_B" {
		t.Errorf("wall 2 BackTextureX = %q, want DOORFR_B", w2.BackTextureX)
	}
	if w2.BackTextureY != "DOORFR2" {
		t.Errorf("wall 2 BackTextureY = %q, want to default to ytex", w2.BackTextureY)
	}

	if cat.WallInfo(0) != nil {
		t.Errorf("WallInfo(0) = non-nil, want nil for id<=0")
	}
	if cat.WallInfo(99) != nil {
		t.Errorf("WallInfo(99) = non-nil, want nil for unknown id")
	}
}

func TestParseDoors(t *testing.T) {
	doc := []byte(`
doors:
  90:
    name: Gold Door
    type: yellow_card
    axis: y
    ltex: DOOR
    track: DOORTRK
`)
	cat, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	d := cat.DoorInfo(90)
	if d == nil {
		t.Fatalf("DoorInfo(90) = nil")
	}
	if d.Type != DoorYellowCard {
		t.Errorf("Type = %v, want DoorYellowCard", d.Type)
	}
	if d.Axis != AxisY {
		t.Errorf("Axis = %v, want AxisY", d.Axis)
	}
	if d.SideRight != "DOOR" {
		t.Errorf("SideRight = %q, want to default to ltex", d.SideRight)
	}
	if d.FloorFlat != cat.DefaultFloorFlat {
		t.Errorf("FloorFlat = %q, want default %q", d.FloorFlat, cat.DefaultFloorFlat)
	}
}

func TestParseObjectsRequireEdNum(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  43:
    type: thing
`))
	if err == nil {
		t.Fatalf("Parse: want error for thing with ednum 0, got nil")
	}
}

func TestParseObjectFlagsDefaults(t *testing.T) {
	doc := []byte(`
objects:
  43:
    type: thing
    ednum: 2015
`)
	cat, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := cat.ObjectInfo(43)
	want := ThingEasy | ThingNormal | ThingHard
	if obj.Flags != want {
		t.Errorf("Flags = %v, want %v (skill flags default true)", obj.Flags, want)
	}
}

func TestIsPushwallAndAmbush(t *testing.T) {
	doc := []byte(`
objects:
  98:
    type: pushwall
areas:
  10:
    type: ambush
  11:
    type: secret_exit
`)
	cat, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cat.IsPushwall(98) {
		t.Errorf("IsPushwall(98) = false, want true")
	}
	if cat.IsPushwall(10) {
		t.Errorf("IsPushwall(10) = true, want false")
	}
	if !cat.IsAmbush(10) {
		t.Errorf("IsAmbush(10) = false, want true")
	}
	if !cat.IsSecretExit(11) {
		t.Errorf("IsSecretExit(11) = false, want true")
	}
}

func TestParseIDRejectsZeroAndNonNumeric(t *testing.T) {
	cases := []string{"0", "abc", "", "-0"}
	for _, c := range cases {
		if _, err := parseID(c); err == nil {
			t.Errorf("parseID(%q) = nil error, want error", c)
		}
	}
	id, err := parseID("42")
	if err != nil || id != 42 {
		t.Errorf("parseID(42) = (%d, %v), want (42, nil)", id, err)
	}
}
