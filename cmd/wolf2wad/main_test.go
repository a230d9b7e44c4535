// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

package main

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	opt, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opt.catalogName != "config.json" {
		t.Errorf("catalogName = %q, want config.json", opt.catalogName)
	}
	if opt.mapheadName != "MAPHEAD.wl6" || opt.gamemapsName != "GAMEMAPS.wl6" {
		t.Errorf("map file defaults = %q, %q, want MAPHEAD.wl6, GAMEMAPS.wl6", opt.mapheadName, opt.gamemapsName)
	}
	if opt.level != 0 {
		t.Errorf("level = %d, want 0", opt.level)
	}
	if opt.outputName != "output.wad" {
		t.Errorf("outputName = %q, want output.wad", opt.outputName)
	}
}

func TestParseArgsOverrides(t *testing.T) {
	opt, err := parseArgs([]string{
		"-c", "mycat.json",
		"-i", "MAPHEAD.wl1", "GAMEMAPS.wl1",
		"-l", "3",
		"-o", "e1m4.wad",
	})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if opt.catalogName != "mycat.json" {
		t.Errorf("catalogName = %q, want mycat.json", opt.catalogName)
	}
	if opt.mapheadName != "MAPHEAD.wl1" || opt.gamemapsName != "GAMEMAPS.wl1" {
		t.Errorf("map files = %q, %q", opt.mapheadName, opt.gamemapsName)
	}
	if opt.level != 3 {
		t.Errorf("level = %d, want 3", opt.level)
	}
	if opt.outputName != "e1m4.wad" {
		t.Errorf("outputName = %q, want e1m4.wad", opt.outputName)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := [][]string{
		{"-c"},
		{"-i", "onlyone"},
		{"-l"},
		{"-l", "notanumber"},
		{"-o"},
		{"--bogus"},
	}
	for _, args := range cases {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%v) = nil error, want error", args)
		}
	}
}

func TestParseLevel(t *testing.T) {
	n, err := parseLevel("42")
	if err != nil || n != 42 {
		t.Errorf("parseLevel(42) = (%d, %v), want (42, nil)", n, err)
	}
	if _, err := parseLevel("-1"); err == nil {
		t.Errorf("parseLevel(-1) = nil error, want error")
	}
	if _, err := parseLevel("abc"); err == nil {
		t.Errorf("parseLevel(abc) = nil error, want error")
	}
}
