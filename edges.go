package penrose

import (
	"sort"

	"github.com/jbeda/geom"
	"github.com/jbeda/geom/qtree"
)

// +++ Edge
// Edge is an undirected side of a triangle.  It implements qtree.Item so
// duplicates can be found spatially.
type Edge struct {
	A, B geom.Coord
}

func AlmostEqualsEdges(a, b Edge) bool {
	return almostEqualPairs(a.A, a.B, b.A, b.B)
}

func (e Edge) Equals(oi interface{}) bool {
	oe, ok := oi.(Edge)
	return ok && AlmostEqualsEdges(e, oe)
}

// Bounds is padded by FLOAT_EQUAL_THRESH so that two copies of one edge
// that differ by rounding always overlap in the tree.
func (e Edge) Bounds() geom.Rect {
	return pad(coordBounds(e.A, e.B), FLOAT_EQUAL_THRESH)
}

func (e Edge) Median() geom.Coord {
	return midpoint(e.A, e.B)
}

// Bounds is the bounding box of all triangles.  ts must not be empty.
func Bounds(ts []Triangle) geom.Rect {
	bounds := ts[0].Bounds()
	for _, t := range ts[1:] {
		bounds.ExpandToContainRect(t.Bounds())
	}
	return bounds
}

// Cull keeps the triangles lying entirely inside bounds.
func Cull(ts []Triangle, bounds geom.Rect) []Triangle {
	r := make([]Triangle, 0, len(ts))
	for _, t := range ts {
		if bounds.ContainsRect(t.Bounds()) {
			r = append(r, t)
		}
	}
	Logger().Debug("culled", "before", len(ts), "after", len(r))
	return r
}

func pad(r geom.Rect, d float64) geom.Rect {
	return geom.Rect{
		Min: r.Min.Minus(geom.Coord{X: d, Y: d}),
		Max: r.Max.Plus(geom.Coord{X: d, Y: d}),
	}
}

// UniqueEdges returns every side of every triangle once, ordered by median.
// Each edge is looked up before it is inserted; enumerating the tree
// instead can return near-identical copies filed under different quadrants.
func UniqueEdges(ts []Triangle) []Edge {
	if len(ts) == 0 {
		return []Edge{}
	}
	bounds := pad(Bounds(ts), 1)
	qt := qtree.New(qtree.ConfigDefault(), bounds)
	r := make([]Edge, 0, 3*len(ts)/2)
	for _, t := range ts {
		for _, e := range []Edge{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}} {
			if _, ok := qt.Find(e); ok {
				continue
			}
			qt.Insert(e)
			r = append(r, e)
		}
	}

	sort.SliceStable(r, func(i, j int) bool {
		if c := CompareCoord(r[i].Median(), r[j].Median()); c != 0 {
			return c < 0
		}
		return CompareCoord(r[i].A, r[j].A) < 0
	})
	Logger().Debug("deduplicated edges", "edges", 3*len(ts), "unique", len(r))
	return r
}

// JoinEdges chains edges sharing endpoints into polylines, so an outline can
// be drawn with far fewer strokes.  It keeps re-adding paths until the count
// stops dropping.
func JoinEdges(edges []Edge) [][]geom.Coord {
	var paths [][]geom.Coord
	for _, e := range edges {
		paths = addPath(paths, []geom.Coord{e.A, e.B})
	}
	for {
		prev := len(paths)
		old := paths
		paths = nil
		for _, p := range old {
			paths = addPath(paths, p)
		}
		if len(paths) == prev {
			break
		}
	}
	return paths
}

func reversed(p []geom.Coord) []geom.Coord {
	r := make([]geom.Coord, len(p))
	for i, c := range p {
		r[len(p)-1-i] = c
	}
	return r
}

func addPath(paths [][]geom.Coord, np []geom.Coord) [][]geom.Coord {
	first, last := np[0], np[len(np)-1]
	for i, p := range paths {
		pFirst, pLast := p[0], p[len(p)-1]
		switch {
		case AlmostEqualsCoord(last, pFirst):
			paths[i] = append(append([]geom.Coord{}, np...), p[1:]...)
		case AlmostEqualsCoord(first, pLast):
			paths[i] = append(p, np[1:]...)
		case AlmostEqualsCoord(first, pFirst):
			paths[i] = append(reversed(np), p[1:]...)
		case AlmostEqualsCoord(last, pLast):
			paths[i] = append(p, reversed(np)[1:]...)
		default:
			continue
		}
		return paths
	}
	return append(paths, np)
}
