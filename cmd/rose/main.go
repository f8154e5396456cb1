// Rose generates Penrose rhombus tilings.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	penrose "penrose-rhombs"
	"penrose-rhombs/svg"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "-help") {
		fmt.Print(Usage)
		return
	}
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "rose:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opt, err := ParseOptions(args)
	if err != nil {
		return err
	}
	if opt.Verbose {
		penrose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	triangles := Generate(opt)
	log := penrose.Logger()

	f, err := os.Create(opt.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(opt.Output), ".png") {
		err = writePNG(f, opt, triangles)
	} else {
		err = writeSVG(f, opt, triangles)
	}
	if err != nil {
		return err
	}
	log.Info("wrote tiling", "file", opt.Output, "triangles", len(triangles))
	return f.Close()
}

// Generate builds the tiling the options describe.
func Generate(opt *Options) []penrose.Triangle {
	seed := opt.Seed.Transform(opt.Center(), opt.Scale)
	var triangles []penrose.Triangle
	if opt.Workers > 1 {
		triangles = penrose.GenerateTilingConcurrent(seed, opt.Generations, opt.Workers)
	} else {
		triangles = penrose.GenerateTiling(seed, opt.Generations)
	}
	if opt.Cull {
		triangles = penrose.Cull(triangles, opt.ViewBox())
	}
	return triangles
}

func merge(opt *Options, triangles []penrose.Triangle) []penrose.Quadrilateral {
	if opt.Fast {
		return penrose.MergePairsFast(triangles)
	}
	return penrose.MergePairs(triangles)
}

func svgConfig(opt *Options) svg.Config {
	cfg := svg.Config{
		ViewBox:     opt.ViewBox(),
		StrokeWidth: opt.StrokeWidth,
		StrokeColor: opt.Scheme.StrokeColor,
		FillColors:  opt.Scheme.FillColors,
	}
	if opt.Arcs {
		arcColors := opt.Scheme.ArcColors
		cfg.ArcColors = &arcColors
	}
	return cfg
}

func writeSVG(w io.Writer, opt *Options, triangles []penrose.Triangle) error {
	cfg := svgConfig(opt)
	switch {
	case opt.Edges:
		return svg.WriteOutline(w, cfg, penrose.JoinEdges(penrose.UniqueEdges(triangles)))
	case opt.Triangles:
		return svg.Write(w, cfg, svg.Triangles(triangles))
	default:
		return svg.Write(w, cfg, svg.Quadrilaterals(merge(opt, triangles)))
	}
}
