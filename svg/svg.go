// Package svg writes tilings as SVG documents.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"

	penrose "penrose-rhombs"
)

// Coordinates are written as integers after scaling by SCALING_FACTOR.
const SCALING_FACTOR = 1000

func scaleFloat(x float64) int64 {
	return int64(x * SCALING_FACTOR)
}

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// printf keeps the first write error; later writes are skipped.
func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

// Err returns the first error hit while writing.
func (svg *SVG) Err() error {
	return svg.err
}

// BUGBUG: not quoting aware
func extraparams(s []string) string {
	ep := ""
	for i := 0; i < len(s); i++ {
		if strings.Index(s[i], "=") > 0 {
			ep += s[i] + " "
		} else if len(s[i]) > 0 {
			ep += fmt.Sprintf("style='%s' ", s[i])
		}
	}
	return ep
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0" encoding="utf-8"?>
<svg width="100%%" height="100%%" viewBox="%d %d %d %d" preserveAspectRatio="xMidYMid slice" xmlns="http://www.w3.org/2000/svg" %s>
`, scaleFloat(viewBox.Min.X), scaleFloat(viewBox.Min.Y),
		scaleFloat(viewBox.Width()), scaleFloat(viewBox.Height()), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

func (svg *SVG) StartGroup(s ...string) {
	svg.printf("<g %s>\n", extraparams(s))
}

func (svg *SVG) EndGroup() {
	svg.printf("</g>\n")
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%d' y1='%d' x2='%d' y2='%d' %s/>\n",
		scaleFloat(p1.X), scaleFloat(p1.Y), scaleFloat(p2.X), scaleFloat(p2.Y), extraparams(s))
}

func (svg *SVG) Polygon(points []geom.Coord, s ...string) {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d,%d", scaleFloat(p.X), scaleFloat(p.Y))
	}
	svg.printf("<polygon points='%s' %s/>\n", b.String(), extraparams(s))
}

func (svg *SVG) CircularArc(p1, p2 geom.Coord, r float64, largeArc, sweep bool, s ...string) {
	svg.printf("<path d='M%d,%d A%d,%d 0 %s,%s %d,%d' %s/>\n",
		scaleFloat(p1.X), scaleFloat(p1.Y), scaleFloat(r), scaleFloat(r),
		onezero(largeArc), onezero(sweep), scaleFloat(p2.X), scaleFloat(p2.Y), extraparams(s))
}

func (svg *SVG) Polyline(points []geom.Coord, s ...string) {
	svg.printf("<path %sd='M%d,%d", extraparams(s), scaleFloat(points[0].X), scaleFloat(points[0].Y))
	for _, p := range points[1:] {
		svg.printf(" L%d,%d", scaleFloat(p.X), scaleFloat(p.Y))
	}
	svg.printf("'/>\n")
}

// Arc draws a matching arc.  They never pass half a turn.
func (svg *SVG) Arc(a penrose.Arc, s ...string) {
	svg.CircularArc(a.Start, a.End, a.Radius(), false, a.Sweep(), s...)
}
