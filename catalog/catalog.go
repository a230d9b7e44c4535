// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

// Package catalog loads the static tile tables that describe how a
// Wolfenstein-family grid map should be interpreted: wall, door, area and
// object definitions keyed by tile ID, plus project-wide defaults.
//
// The catalog is read once at startup and is never mutated afterwards, so
// lookups can be done freely from the transcoder without synchronization.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format names the target port of the output level. It does not change
// the structure the transcoder emits; it is informational only.
type Format uint8

const (
	Doom Format = iota
	Boom
	MBF
	MBF21
)

// WallAction names the behavior a wall's side performs when touched by
// a switch-use or border-crossing action.
type WallAction uint8

const (
	ActionNone WallAction = iota
	ActionSwitch
	ActionExit
)

// WallClass distinguishes a solid, impassable wall from a midtex wall
// whose texture floats across an otherwise-open sector boundary.
type WallClass uint8

const (
	WallSolid WallClass = iota
	WallMidtex
)

// DoorType selects the door's special action and, for keyed variants,
// which key unlocks it.
type DoorType uint8

const (
	DoorNormal DoorType = iota
	DoorFast
	DoorRed
	DoorYellow
	DoorBlue
	DoorRedCard
	DoorYellowCard
	DoorBlueCard
	DoorRedSkull
	DoorYellowSkull
	DoorBlueSkull
	DoorSwitch
)

// DoorAxis selects which pair of tile edges the door track runs along.
type DoorAxis uint8

const (
	AxisX DoorAxis = iota
	AxisY
)

// ObjectType classifies an entry in the objects plane.
type ObjectType uint8

const (
	ObjMarker ObjectType = iota
	ObjThing
	ObjPushwall
)

// ThingFlags are the Doom thing option bits written to THINGS lump entries.
type ThingFlags uint16

const (
	ThingEasy ThingFlags = 1 << iota
	ThingNormal
	ThingHard
	ThingAmbush
	ThingMultiplayer
	ThingNoDeathmatch
	ThingNoCoop
	ThingFriendly
)

// AreaType selects a floor's behavioural special.
type AreaType uint8

const (
	AreaNormal AreaType = iota
	AreaAmbush
	AreaSecretExit
	AreaSlime5
	AreaSlime10
	AreaSlime20
	AreaTeleport
)

// WallInfo describes one wall tile ID: its textures, class, per-side
// switch/exit action, and linedef tag.
type WallInfo struct {
	ID   int
	Name string

	// TextureX and TextureY face the tile's X-facing (top/bottom) and
	// Y-facing (left/right) sides respectively. BackX/BackY texture the
	// opposite face, used only when the wall is a pushwall secret.
	TextureX, TextureY     string
	BackTextureX, BackTextureY string

	Class   WallClass
	ActionX WallAction
	ActionY WallAction
	Tag     uint16
}

// DoorInfo describes one door tile ID.
type DoorInfo struct {
	ID   int
	Name string

	Type DoorType
	Axis DoorAxis

	FloorFlat, CeilingFlat string
	SideLeft, SideRight    string
	Track                  string

	Tag uint16
}

// ObjectInfo describes one objects-plane tile ID.
type ObjectInfo struct {
	ID   int
	Name string
	Type ObjectType

	DoomEdNum uint16
	Angle     uint16
	Flags     ThingFlags
}

// AreaInfo describes one floor-area tile ID.
type AreaInfo struct {
	ID   int
	Name string
	Type AreaType

	FloorFlat, CeilingFlat string
	Brightness             uint8
	Tag                    uint16
}

// Catalog is the read-only set of lookup tables plus project defaults
// used to resolve every tile on the map.
type Catalog struct {
	Name   string
	Format Format

	DefaultFloorFlat   string
	DefaultCeilingFlat string
	DefaultBrightness  uint8

	walls   map[int]*WallInfo
	doors   map[int]*DoorInfo
	objects map[int]*ObjectInfo
	areas   map[int]*AreaInfo
}

// Load reads and validates a configuration document from name. The
// document is YAML, so plain JSON parses as well (see catalogDoc),
// matching how load.Shd parses shader descriptions in the teacher engine.
func Load(name string) (*Catalog, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", name, err)
	}
	return Parse(data)
}

// Parse decodes a configuration document already read into memory.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	cat := &Catalog{
		Name:               orDefault(doc.Name, "Untitled"),
		Format:             parseFormat(doc.Format),
		DefaultFloorFlat:   orDefault(doc.Floor, "FLAT5_4"),
		DefaultCeilingFlat: orDefault(doc.Ceiling, "CEIL5_1"),
		DefaultBrightness:  orDefaultU8(doc.Brightness, 160),
	}

	walls, err := parseWalls(doc.Walls)
	if err != nil {
		return nil, err
	}
	cat.walls = walls

	doors, err := parseDoors(doc.Doors, cat)
	if err != nil {
		return nil, err
	}
	cat.doors = doors

	objects, err := parseObjects(doc.Objects)
	if err != nil {
		return nil, err
	}
	cat.objects = objects

	areas, err := parseAreas(doc.Areas, cat)
	if err != nil {
		return nil, err
	}
	cat.areas = areas

	return cat, nil
}

// catalogDoc is the on-disk shape of the configuration document.
// Unknown keys are ignored by yaml.Unmarshal; missing keys keep their
// Go zero value, resolved to documented defaults below.
type catalogDoc struct {
	Name       string `yaml:"name"`
	Format     string `yaml:"format"`
	Floor      string `yaml:"floor"`
	Ceiling    string `yaml:"ceiling"`
	Brightness *uint8 `yaml:"brightness"`

	Walls   map[string]wallDoc   `yaml:"walls"`
	Doors   map[string]doorDoc   `yaml:"doors"`
	Objects map[string]objectDoc `yaml:"objects"`
	Areas   map[string]areaDoc   `yaml:"areas"`
}

type wallDoc struct {
	Name     string `yaml:"name"`
	XTex     string `yaml:"xtex"`
	YTex     string `yaml:"ytex"`
	BackX    string `yaml:"back_xtex"`
	BackY    string `yaml:"back_ytex"`
	Class    string `yaml:"class"`
	XAct     string `yaml:"xact"`
	YAct     string `yaml:"yact"`
	Tag      uint16 `yaml:"tag"`
}

type doorDoc struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Axis    string `yaml:"axis"`
	Floor   string `yaml:"floor"`
	Ceiling string `yaml:"ceiling"`
	LTex    string `yaml:"ltex"`
	RTex    string `yaml:"rtex"`
	Track   string `yaml:"track"`
	Tag     uint16 `yaml:"tag"`
}

type objectDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	EdNum uint16 `yaml:"ednum"`
	Angle uint16 `yaml:"angle"`
	Flags *objectFlagsDoc `yaml:"flags"`
}

type objectFlagsDoc struct {
	Easy         *bool `yaml:"easy"`
	Normal       *bool `yaml:"normal"`
	Hard         *bool `yaml:"hard"`
	Ambush       bool  `yaml:"ambush"`
	Multiplayer  bool  `yaml:"multiplayer"`
	NoDeathmatch bool  `yaml:"no_deathmatch"`
	NoCoop       bool  `yaml:"no_coop"`
	Friendly     bool  `yaml:"friendly"`
}

type areaDoc struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Floor      string `yaml:"floor"`
	Ceiling    string `yaml:"ceiling"`
	Brightness *uint8 `yaml:"brightness"`
	Tag        uint16 `yaml:"tag"`
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orDefaultU8(v *uint8, def uint8) uint8 {
	if v == nil {
		return def
	}
	return *v
}

func parseFormat(s string) Format {
	switch s {
	case "doom":
		return Doom
	case "boom":
		return Boom
	case "mbf":
		return MBF
	default:
		return MBF21
	}
}

func parseWallAction(s string) WallAction {
	switch s {
	case "switch":
		return ActionSwitch
	case "exit":
		return ActionExit
	default:
		return ActionNone
	}
}

func parseWallClass(s string) WallClass {
	if s == "midtex" {
		return WallMidtex
	}
	return WallSolid
}

func parseWalls(docs map[string]wallDoc) (map[int]*WallInfo, error) {
	out := make(map[int]*WallInfo, len(docs))
	for key, d := range docs {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: wall %q: %w", key, err)
		}
		xtex := d.XTex
		ytex := orDefault(d.YTex, xtex)
		out[id] = &WallInfo{
			ID:           id,
			Name:         orDefault(d.Name, "Untitled"),
			TextureX:     xtex,
			TextureY:     ytex,
			BackTextureX: orDefault(d.BackX, xtex),
			BackTextureY: orDefault(d.BackY, ytex),
			Class:        parseWallClass(d.Class),
			ActionX:      parseWallAction(d.XAct),
			ActionY:      parseWallAction(d.YAct),
			Tag:          d.Tag,
		}
	}
	return out, nil
}

func parseDoorType(s string) DoorType {
	switch s {
	case "fast":
		return DoorFast
	case "switch":
		return DoorSwitch
	case "red":
		return DoorRed
	case "yellow":
		return DoorYellow
	case "blue":
		return DoorBlue
	case "red_card":
		return DoorRedCard
	case "yellow_card":
		return DoorYellowCard
	case "blue_card":
		return DoorBlueCard
	case "red_skull":
		return DoorRedSkull
	case "yellow_skull":
		return DoorYellowSkull
	case "blue_skull":
		return DoorBlueSkull
	default:
		return DoorNormal
	}
}

func parseDoorAxis(s string) DoorAxis {
	if s == "y" {
		return AxisY
	}
	return AxisX
}

func parseDoors(docs map[string]doorDoc, cat *Catalog) (map[int]*DoorInfo, error) {
	out := make(map[int]*DoorInfo, len(docs))
	for key, d := range docs {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: door %q: %w", key, err)
		}
		ltex := d.LTex
		out[id] = &DoorInfo{
			ID:           id,
			Name:         orDefault(d.Name, "Untitled"),
			Type:         parseDoorType(d.Type),
			Axis:         parseDoorAxis(d.Axis),
			FloorFlat:    orDefault(d.Floor, cat.DefaultFloorFlat),
			CeilingFlat:  orDefault(d.Ceiling, cat.DefaultCeilingFlat),
			SideLeft:     ltex,
			SideRight:    orDefault(d.RTex, ltex),
			Track:        d.Track,
			Tag:          d.Tag,
		}
	}
	return out, nil
}

func parseObjectType(s string) ObjectType {
	switch s {
	case "thing":
		return ObjThing
	case "pushwall":
		return ObjPushwall
	default:
		return ObjMarker
	}
}

func parseObjects(docs map[string]objectDoc) (map[int]*ObjectInfo, error) {
	out := make(map[int]*ObjectInfo, len(docs))
	for key, d := range docs {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: object %q: %w", key, err)
		}
		obj := &ObjectInfo{
			ID:   id,
			Name: orDefault(d.Name, "Untitled"),
			Type: parseObjectType(d.Type),
		}
		if obj.Type == ObjThing {
			if d.EdNum == 0 {
				return nil, fmt.Errorf("catalog: object %q: thing requires non-zero ednum", key)
			}
			obj.DoomEdNum = d.EdNum
			obj.Angle = d.Angle
			obj.Flags = parseObjectFlags(d.Flags)
		}
		out[id] = obj
	}
	return out, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func parseObjectFlags(d *objectFlagsDoc) ThingFlags {
	flags := ThingFlags(0)
	if d == nil {
		return ThingEasy | ThingNormal | ThingHard
	}
	if boolOr(d.Easy, true) {
		flags |= ThingEasy
	}
	if boolOr(d.Normal, true) {
		flags |= ThingNormal
	}
	if boolOr(d.Hard, true) {
		flags |= ThingHard
	}
	if d.Ambush {
		flags |= ThingAmbush
	}
	if d.Multiplayer {
		flags |= ThingMultiplayer
	}
	if d.NoDeathmatch {
		flags |= ThingNoDeathmatch
	}
	if d.NoCoop {
		flags |= ThingNoCoop
	}
	if d.Friendly {
		flags |= ThingFriendly
	}
	return flags
}

func parseAreaType(s string) AreaType {
	switch s {
	case "ambush":
		return AreaAmbush
	case "secret_exit":
		return AreaSecretExit
	case "slime5":
		return AreaSlime5
	case "slime10":
		return AreaSlime10
	case "slime20":
		return AreaSlime20
	case "teleport":
		return AreaTeleport
	default:
		return AreaNormal
	}
}

func parseAreas(docs map[string]areaDoc, cat *Catalog) (map[int]*AreaInfo, error) {
	out := make(map[int]*AreaInfo, len(docs))
	for key, d := range docs {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("catalog: area %q: %w", key, err)
		}
		out[id] = &AreaInfo{
			ID:          id,
			Name:        orDefault(d.Name, "Untitled"),
			Type:        parseAreaType(d.Type),
			FloorFlat:   orDefault(d.Floor, cat.DefaultFloorFlat),
			CeilingFlat: orDefault(d.Ceiling, cat.DefaultCeilingFlat),
			Brightness:  orDefaultU8(d.Brightness, cat.DefaultBrightness),
			Tag:         d.Tag,
		}
	}
	return out, nil
}

// parseID mirrors the original tool's atoi-based key parsing (§ Invariant
// C1): catalog keys are decimal tile IDs and must be non-zero.
func parseID(key string) (int, error) {
	id := 0
	neg := false
	i := 0
	if len(key) > 0 && key[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(key) {
		return 0, fmt.Errorf("expected integer ID")
	}
	for ; i < len(key); i++ {
		c := key[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("expected integer ID, got %q", key)
		}
		id = id*10 + int(c-'0')
	}
	if neg {
		id = -id
	}
	if id == 0 {
		return 0, fmt.Errorf("expected non-zero ID")
	}
	return id, nil
}

// WallInfo looks up a wall by tile ID. IDs <= 0 always miss, matching
// get_wall_info in the original tool.
func (c *Catalog) WallInfo(id int) *WallInfo {
	if id <= 0 {
		return nil
	}
	return c.walls[id]
}

// DoorInfo looks up a door by tile ID.
func (c *Catalog) DoorInfo(id int) *DoorInfo {
	if id <= 0 {
		return nil
	}
	return c.doors[id]
}

// ObjectInfo looks up an object by tile ID.
func (c *Catalog) ObjectInfo(id int) *ObjectInfo {
	if id <= 0 {
		return nil
	}
	return c.objects[id]
}

// AreaInfo looks up an area by tile ID.
func (c *Catalog) AreaInfo(id int) *AreaInfo {
	if id <= 0 {
		return nil
	}
	return c.areas[id]
}

// IsPushwall reports whether id names an objects-plane pushwall marker.
func (c *Catalog) IsPushwall(id int) bool {
	obj := c.ObjectInfo(id)
	return obj != nil && obj.Type == ObjPushwall
}

// IsSecretExit reports whether id names a secret-exit area.
func (c *Catalog) IsSecretExit(id int) bool {
	area := c.AreaInfo(id)
	return area != nil && area.Type == AreaSecretExit
}

// IsAmbush reports whether id names an ambush area.
func (c *Catalog) IsAmbush(id int) bool {
	area := c.AreaInfo(id)
	return area != nil && area.Type == AreaAmbush
}
