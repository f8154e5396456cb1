package penrose

import (
	"math"

	"github.com/jbeda/geom"
)

// Mathematical constants for generating Penrose decompositions.
const (
	PHI         = math.Phi
	PHI_INVERSE = math.Phi - 1.0
	DEG_TO_RAD  = math.Pi / 180.0
)

////////////////////////////////////////////////////////////////////////////
// Math/Geometry Helpers

// Comparing floating point is never exact.  Everything here is built by
// repeated multiplication with phi, so the error stays many orders of
// magnitude below this threshold for any sane number of generations.
const FLOAT_EQUAL_THRESH = 0.00001

func FloatAlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < FLOAT_EQUAL_THRESH
}

// AlmostEqualsCoord reports whether both coordinates are within
// FLOAT_EQUAL_THRESH.  The relation is not transitive, so it must not be used
// as an equality for maps or dedup sets.
func AlmostEqualsCoord(a, b geom.Coord) bool {
	return FloatAlmostEqual(a.X, b.X) && FloatAlmostEqual(a.Y, b.Y)
}

// CompareCoord orders by X and then by Y, treating almost equal coordinates
// as equal.  It is only consistent when points form tight, well separated
// clusters, which holds for tiling vertices and medians.  Don't use it as a
// general purpose comparator.
func CompareCoord(a, b geom.Coord) int {
	switch {
	case !FloatAlmostEqual(a.X, b.X):
		if a.X > b.X {
			return 1
		}
		return -1
	case !FloatAlmostEqual(a.Y, b.Y):
		if a.Y > b.Y {
			return 1
		}
		return -1
	}
	return 0
}

func Neg(p geom.Coord) geom.Coord {
	return geom.Coord{X: -p.X, Y: -p.Y}
}

// Div divides by a non zero scalar.
func Div(p geom.Coord, s float64) geom.Coord {
	return p.Times(1.0 / s)
}

func Dot(p, q geom.Coord) float64 {
	return p.X*q.X + p.Y*q.Y
}

func Cross(p, q geom.Coord) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Rotate turns p around the origin by angle degrees.  Positive angles are
// clockwise in SVG coordinates (+Y down), so Rotate({1, 0}, 90) is {0, 1}.
func Rotate(p geom.Coord, angle float64) geom.Coord {
	sin, cos := math.Sincos(angle * DEG_TO_RAD)
	return geom.Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// MirrorX negates X, reflecting across the vertical axis.
func MirrorX(p geom.Coord) geom.Coord {
	return geom.Coord{X: -p.X, Y: p.Y}
}

// MirrorY negates Y, reflecting across the horizontal axis.
func MirrorY(p geom.Coord) geom.Coord {
	return geom.Coord{X: p.X, Y: -p.Y}
}

func midpoint(a, b geom.Coord) geom.Coord {
	return Div(a.Plus(b), 2)
}

func coordBounds(ps ...geom.Coord) geom.Rect {
	r := geom.Rect{Min: ps[0], Max: ps[0]}
	for _, p := range ps[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// +++ Line
type Line struct {
	A, B geom.Coord
}

func (l Line) Length() float64 {
	return l.A.DistanceFrom(l.B)
}

func (l Line) Median() geom.Coord {
	return midpoint(l.A, l.B)
}
