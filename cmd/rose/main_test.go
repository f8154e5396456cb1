package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	penrose "penrose-rhombs"
)

func TestParseOptionsDefaults(t *testing.T) {
	opt, err := ParseOptions([]string{"out.svg"})
	if err != nil {
		t.Fatal(err)
	}
	if opt.Generations != 6 || opt.SeedName != "rose" || opt.Width != 1000 ||
		opt.Height != 1000 || opt.Scale != 500 || opt.Workers != 1 {
		t.Errorf("unexpected defaults: %+v", opt)
	}
	if opt.Scheme != schemes[DEFAULT_SCHEME] {
		t.Errorf("scheme = %+v, want %s", opt.Scheme, DEFAULT_SCHEME)
	}
	if opt.Output != "out.svg" {
		t.Errorf("output = %q", opt.Output)
	}
}

func TestParseOptions(t *testing.T) {
	opt, err := ParseOptions([]string{
		"-n", "3", "-seed", "pizza", "-width", "800", "-height", "600",
		"-scheme", "blue", "-colors", "#000000,#111111", "-stroke-color", "#222222",
		"-a", "-arc-colors", "#333333,#444444", "-t", "-fast", "-workers", "4",
		"tiling.png",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opt.Generations != 3 || opt.SeedName != "pizza" || opt.Seed.Len() != 10 {
		t.Errorf("generations %d, seed %s", opt.Generations, opt.SeedName)
	}
	if opt.Width != 800 || opt.Height != 600 || opt.Scale != 400 {
		t.Errorf("size %fx%f, scale %f", opt.Width, opt.Height, opt.Scale)
	}
	want := ColorScheme{
		FillColors:  [2]string{"#000000", "#111111"},
		StrokeColor: "#222222",
		ArcColors:   [2]string{"#333333", "#444444"},
	}
	if opt.Scheme != want {
		t.Errorf("scheme = %+v, want %+v", opt.Scheme, want)
	}
	if !opt.Arcs || !opt.Triangles || !opt.Fast || opt.Edges || opt.Cull || opt.Verbose {
		t.Errorf("flags: %+v", opt)
	}
	if opt.Workers != 4 || opt.Output != "tiling.png" {
		t.Errorf("workers %d, output %q", opt.Workers, opt.Output)
	}
	if c := opt.Center(); c.X != 400 || c.Y != 300 {
		t.Errorf("center = %v", c)
	}
}

func TestParseOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no output", []string{"-n", "3"}, "OUTPUT: missing"},
		{"two outputs", []string{"a.svg", "b.svg"}, "unexpected"},
		{"bad number", []string{"-n", "many", "a.svg"}, "-n: many"},
		{"negative generations", []string{"-n", "-2", "a.svg"}, "must not be negative"},
		{"bad seed", []string{"-seed", "kite", "a.svg"}, "unknown seed"},
		{"bad scheme", []string{"-scheme", "pink", "a.svg"}, "unknown color scheme"},
		{"one color", []string{"-colors", "#000000", "a.svg"}, "two colors"},
		{"arc colors without arcs", []string{"-arc-colors", "#000,#111", "a.svg"}, "requires -a"},
		{"zero width", []string{"-width", "0", "a.svg"}, "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseOptions(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseOptions(%q) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	opt, err := ParseOptions([]string{"-n", "3", "-seed", "small-rhombus", "out.svg"})
	if err != nil {
		t.Fatal(err)
	}
	want := penrose.GenerateTiling(opt.Seed.Transform(opt.Center(), opt.Scale), 3)
	got := Generate(opt)
	if len(got) != len(want) {
		t.Fatalf("%d triangles, want %d", len(got), len(want))
	}

	opt.Workers = 3
	if got := Generate(opt); len(got) != len(want) {
		t.Errorf("concurrent: %d triangles, want %d", len(got), len(want))
	}

	opt.Cull = true
	opt.Scale = 2000
	if got := Generate(opt); len(got) >= len(want) {
		t.Errorf("culled %d of %d triangles", len(want)-len(got), len(want))
	}
}

func TestWriteSVG(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "2", "out.svg"},
		{"-n", "2", "-t", "-a", "out.svg"},
		{"-n", "2", "-e", "out.svg"},
		{"-n", "2", "-fast", "out.svg"},
	} {
		opt, err := ParseOptions(args)
		if err != nil {
			t.Fatal(err)
		}
		var b bytes.Buffer
		if err := writeSVG(&b, opt, Generate(opt)); err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		if !strings.Contains(b.String(), "</svg>") {
			t.Errorf("%q: incomplete document", args)
		}
	}
}

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rose.png")
	if err := run([]string{"-n", "2", "-width", "200", "-height", "100", "-a", out}); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("image is %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestRunSVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rose.svg")
	if err := run([]string{"-n", "1", "-seed", "large-rhombus", out}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "<polygon ") {
		t.Error("no polygons written")
	}
}
