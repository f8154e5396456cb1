package svg

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"

	penrose "penrose-rhombs"
)

// Polygon is what the writer needs from a triangle or a rhombus.
type Polygon interface {
	Kind() penrose.Kind
	Vertices() []geom.Coord
	Arcs() (penrose.Arc, penrose.Arc)
}

// Config describes the document.  Fill colors are indexed by kind; arcs are
// only drawn if ArcColors is set.
type Config struct {
	ViewBox     geom.Rect
	StrokeWidth float64
	StrokeColor string
	FillColors  [2]string
	ArcColors   *[2]string
}

func (cfg *Config) start(s *SVG) {
	s.Start(cfg.ViewBox)
	s.StartGroup(
		fmt.Sprintf("stroke='%s'", cfg.StrokeColor),
		fmt.Sprintf("stroke-width='%d'", scaleFloat(cfg.StrokeWidth)),
		"stroke-linecap='round'",
		"stroke-linejoin='round'",
	)
}

func (cfg *Config) end(s *SVG) {
	s.EndGroup()
	s.End()
}

// Triangles adapts a triangle slice to Polygons.
func Triangles(ts []penrose.Triangle) []Polygon {
	r := make([]Polygon, len(ts))
	for i, t := range ts {
		r[i] = t
	}
	return r
}

// Quadrilaterals adapts a rhombus slice to Polygons.
func Quadrilaterals(qs []penrose.Quadrilateral) []Polygon {
	r := make([]Polygon, len(qs))
	for i, q := range qs {
		r[i] = q
	}
	return r
}

// Write renders polys grouped by kind, followed by the two arc groups.
func Write(w io.Writer, cfg Config, polys []Polygon) error {
	s := NewSVG(w)
	cfg.start(s)
	for _, k := range penrose.Kinds {
		s.StartGroup(fmt.Sprintf("fill='%s'", cfg.FillColors[k]))
		for _, p := range polys {
			if p.Kind() == k {
				s.Polygon(p.Vertices())
			}
		}
		s.EndGroup()
	}

	if cfg.ArcColors != nil {
		first := make([]penrose.Arc, len(polys))
		second := make([]penrose.Arc, len(polys))
		for i, p := range polys {
			first[i], second[i] = p.Arcs()
		}
		for i, arcs := range [][]penrose.Arc{first, second} {
			s.StartGroup("fill='none'", fmt.Sprintf("stroke='%s'", cfg.ArcColors[i]))
			for _, a := range arcs {
				s.Arc(a)
			}
			s.EndGroup()
		}
	}
	cfg.end(s)
	return s.Err()
}

// WriteOutline renders joined edge paths with no fill.
func WriteOutline(w io.Writer, cfg Config, paths [][]geom.Coord) error {
	s := NewSVG(w)
	cfg.start(s)
	s.StartGroup("fill='none'")
	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		if len(p) == 2 {
			s.Line(p[0], p[1])
			continue
		}
		s.Polyline(p)
	}
	s.EndGroup()
	cfg.end(s)
	return s.Err()
}
