package main

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/jbeda/geom"

	penrose "penrose-rhombs"
	"penrose-rhombs/svg"
)

// drawArc traces a along its short side, which is the side every matching
// arc uses.
func drawArc(dc *gg.Context, a penrose.Arc) {
	start := a.Start.Minus(a.Center)
	end := a.End.Minus(a.Center)
	a1 := math.Atan2(start.Y, start.X)
	a2 := math.Atan2(end.Y, end.X)
	if !a.Sweep() {
		a1, a2 = a2, a1
	}
	if a2 < a1 {
		a2 += 2 * math.Pi
	}
	dc.NewSubPath()
	dc.DrawArc(a.Center.X, a.Center.Y, a.Radius(), a1, a2)
}

func drawPolygons(dc *gg.Context, opt *Options, polys []svg.Polygon) {
	dc.SetLineWidth(opt.StrokeWidth)
	for _, p := range polys {
		vs := p.Vertices()
		dc.MoveTo(vs[0].X, vs[0].Y)
		for _, v := range vs[1:] {
			dc.LineTo(v.X, v.Y)
		}
		dc.ClosePath()
		dc.SetHexColor(opt.fill(p.Kind()))
		dc.FillPreserve()
		dc.SetHexColor(opt.Scheme.StrokeColor)
		dc.Stroke()
	}
	if !opt.Arcs {
		return
	}
	for i, color := range opt.Scheme.ArcColors {
		for _, p := range polys {
			first, second := p.Arcs()
			if i == 0 {
				drawArc(dc, first)
			} else {
				drawArc(dc, second)
			}
		}
		dc.SetHexColor(color)
		dc.Stroke()
	}
}

func drawOutline(dc *gg.Context, opt *Options, paths [][]geom.Coord) {
	for _, p := range paths {
		dc.MoveTo(p[0].X, p[0].Y)
		for _, v := range p[1:] {
			dc.LineTo(v.X, v.Y)
		}
	}
	dc.SetLineWidth(opt.StrokeWidth)
	dc.SetHexColor(opt.Scheme.StrokeColor)
	dc.Stroke()
}

// writePNG rasterises the tiling at one pixel per view box unit.
func writePNG(w io.Writer, opt *Options, triangles []penrose.Triangle) error {
	dc := gg.NewContext(int(math.Ceil(opt.Width)), int(math.Ceil(opt.Height)))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	switch {
	case opt.Edges:
		dc.SetHexColor(opt.fill(penrose.Small))
		dc.Clear()
		drawOutline(dc, opt, penrose.JoinEdges(penrose.UniqueEdges(triangles)))
	case opt.Triangles:
		drawPolygons(dc, opt, svg.Triangles(triangles))
	default:
		drawPolygons(dc, opt, svg.Quadrilaterals(merge(opt, triangles)))
	}
	return dc.EncodePNG(w)
}
