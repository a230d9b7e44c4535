// SPDX-FileCopyrightText: © 2024 wolf2wad authors
// SPDX-License-Identifier: BSD-2-Clause

// Command wolf2wad converts a single level out of a Wolfenstein-family
// MAPHEAD/GAMEMAPS pair into a Doom-engine PWAD (§6.4 of the
// specification).
//
//	wolf2wad [-c <catalog>] [-i <maphead> <gamemaps>] [-l <level>] [-o <file>]
//
// All flags are optional; each falls back to the original tool's
// defaults (config.json, MAPHEAD.wl6/GAMEMAPS.wl6, level 0,
// output.wad).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tilegeist/wolf2wad/catalog"
	"github.com/tilegeist/wolf2wad/transcode"
	"github.com/tilegeist/wolf2wad/wad"
	"github.com/tilegeist/wolf2wad/wolfmap"
)

const usage = "Usage: wolf2wad [-c <catalog>] [-i <maphead> <gamemaps>] [-l <level>] [-o <file>]"

// options holds the resolved CLI configuration. -i takes two positional
// values, a shape the standard flag package has no way to express, so
// arguments are walked by hand here rather than through flag.Parse —
// the same loop the original tool uses, just written as a Go switch
// instead of a chain of strcmp calls.
type options struct {
	catalogName           string
	mapheadName, gamemapsName string
	level                 int
	outputName            string
}

func parseArgs(args []string) (options, error) {
	opt := options{
		catalogName:  "config.json",
		mapheadName:  "MAPHEAD.wl6",
		gamemapsName: "GAMEMAPS.wl6",
		level:        0,
		outputName:   "output.wad",
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c":
			if i+1 >= len(args) {
				return opt, fmt.Errorf("-c requires a file argument")
			}
			i++
			opt.catalogName = args[i]

		case "-i":
			if i+2 >= len(args) {
				return opt, fmt.Errorf("-i requires <maphead> <gamemaps> arguments")
			}
			opt.mapheadName = args[i+1]
			opt.gamemapsName = args[i+2]
			i += 2

		case "-l":
			if i+1 >= len(args) {
				return opt, fmt.Errorf("-l requires a level number argument")
			}
			i++
			level, err := parseLevel(args[i])
			if err != nil {
				return opt, fmt.Errorf("-l: %w", err)
			}
			opt.level = level

		case "-o":
			if i+1 >= len(args) {
				return opt, fmt.Errorf("-o requires a file argument")
			}
			i++
			opt.outputName = args[i]

		default:
			return opt, fmt.Errorf("unrecognized argument %q", args[i])
		}
	}

	return opt, nil
}

func parseLevel(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wolf2wad: ")

	opt, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		log.Fatalf("args: %v", err)
	}

	cat, err := catalog.Load(opt.catalogName)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	grid, err := wolfmap.Load(opt.mapheadName, opt.gamemapsName, opt.level)
	if err != nil {
		log.Fatalf("wolfmap: %v", err)
	}

	arena, err := transcode.New(cat, grid).Run()
	if err != nil {
		log.Fatalf("transcode: %v", err)
	}

	if err := wad.Write(opt.outputName, opt.level, arena); err != nil {
		log.Fatalf("wad: %v", err)
	}

	log.Printf(
		"placed %d line(s), %d sector(s); saved as MAP%02d in %q",
		len(arena.Lines), len(arena.Sectors), opt.level+1, opt.outputName,
	)
}
