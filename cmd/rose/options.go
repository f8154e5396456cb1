package main

import (
	"fmt"
	"strings"

	"github.com/jbeda/geom"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	penrose "penrose-rhombs"
	"penrose-rhombs/seeds"
)

const Usage = `rose [OPTIONS]... OUTPUT

Generate a Penrose rhombus tiling as SVG, or PNG if OUTPUT ends in .png.

	-n GENERATIONS		decomposition steps (default 6); above 10 gets slow
	-seed NAME		rose, large-rhombus, small-rhombus or pizza
	-scale SIZE		side of a seed rhombus in view box units
				(default half the width)
	-width W, -height H	view box size (default 1000)
	-stroke-width W		stroke width (default 1)
	-scheme NAME		red, green, blue, purple, grey or yellow
	-colors C1,C2		override the fill colors
	-stroke-color C		override the stroke color
	-arc-colors C1,C2	override the matching arc colors
	-workers N		decompose with N goroutines (default 1)
	-t			draw triangles instead of rhombi
	-a			draw matching arcs
	-e			draw deduplicated outline edges only
	-cull			drop triangles not fully inside the view box
	-fast			merge with the hashing merge
	-v			log progress to stderr
`

// Options is the parsed command line.
type Options struct {
	Generations int
	Seed        seeds.Seed
	SeedName    string
	Scale       float64
	Width       float64
	Height      float64
	StrokeWidth float64
	Scheme      ColorScheme
	Workers     int

	Triangles bool
	Arcs      bool
	Edges     bool
	Cull      bool
	Fast      bool
	Verbose   bool

	Output string
}

func parseNumber(byName map[string]string, name string, v interface{}) error {
	s := byName[name]
	if len(s) == 0 {
		return nil
	}
	if _, err := fmt.Sscan(s, v); err != nil {
		return fmt.Errorf("%s: %s: %v", name, s, err)
	}
	return nil
}

func parseColorPair(s string) ([2]string, error) {
	cs := strings.Split(s, ",")
	if len(cs) != 2 || len(cs[0]) == 0 || len(cs[1]) == 0 {
		return [2]string{}, fmt.Errorf("%s: want two colors separated by a comma", s)
	}
	return [2]string{cs[0], cs[1]}, nil
}

func ParseOptions(args []string) (*Options, error) {
	flag, args := flags.New(args, "-t", "-a", "-e", "-cull", "-fast", "-v")
	parm, args := parms.New(args, "-n", "-seed", "-scale", "-width", "-height",
		"-stroke-width", "-scheme", "-colors", "-stroke-color", "-arc-colors",
		"-workers")

	switch len(args) {
	case 0:
		return nil, fmt.Errorf("OUTPUT: missing")
	case 1:
	default:
		return nil, fmt.Errorf("%v: unexpected", args[1:])
	}

	opt := &Options{
		Generations: 6,
		SeedName:    seeds.Names()[0],
		Width:       1000,
		Height:      1000,
		StrokeWidth: 1,
		Workers:     1,
		Triangles:   flag.ByName["-t"],
		Arcs:        flag.ByName["-a"],
		Edges:       flag.ByName["-e"],
		Cull:        flag.ByName["-cull"],
		Fast:        flag.ByName["-fast"],
		Verbose:     flag.ByName["-v"],
		Output:      args[0],
	}
	for name, v := range map[string]interface{}{
		"-n":            &opt.Generations,
		"-scale":        &opt.Scale,
		"-width":        &opt.Width,
		"-height":       &opt.Height,
		"-stroke-width": &opt.StrokeWidth,
		"-workers":      &opt.Workers,
	} {
		if err := parseNumber(parm.ByName, name, v); err != nil {
			return nil, err
		}
	}
	if opt.Generations < 0 {
		return nil, fmt.Errorf("-n: %d: must not be negative", opt.Generations)
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("-width, -height: must be positive")
	}
	if opt.Scale == 0 {
		opt.Scale = opt.Width / 2
	}

	if s := parm.ByName["-seed"]; len(s) > 0 {
		opt.SeedName = s
	}
	seed, err := seeds.ByName(opt.SeedName)
	if err != nil {
		return nil, err
	}
	opt.Seed = seed

	schemeName := DEFAULT_SCHEME
	if s := parm.ByName["-scheme"]; len(s) > 0 {
		schemeName = s
	}
	if opt.Scheme, err = schemeByName(schemeName); err != nil {
		return nil, err
	}
	if s := parm.ByName["-colors"]; len(s) > 0 {
		if opt.Scheme.FillColors, err = parseColorPair(s); err != nil {
			return nil, err
		}
	}
	if s := parm.ByName["-stroke-color"]; len(s) > 0 {
		opt.Scheme.StrokeColor = s
	}
	if s := parm.ByName["-arc-colors"]; len(s) > 0 {
		if !opt.Arcs {
			return nil, fmt.Errorf("-arc-colors: requires -a")
		}
		if opt.Scheme.ArcColors, err = parseColorPair(s); err != nil {
			return nil, err
		}
	}
	return opt, nil
}

// ViewBox is the drawing area.  The seed is centered in it.
func (opt *Options) ViewBox() geom.Rect {
	return geom.Rect{Max: geom.Coord{X: opt.Width, Y: opt.Height}}
}

func (opt *Options) Center() geom.Coord {
	return geom.Coord{X: opt.Width / 2, Y: opt.Height / 2}
}

func (opt *Options) fill(k penrose.Kind) string {
	return opt.Scheme.FillColors[k]
}
