package penrose

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Arc is a circular arc around Center from Start to End.  Matching arcs are
// never wider than half a turn.
type Arc struct {
	Start, Center, End geom.Coord
}

func (a Arc) Radius() float64 {
	return a.Start.DistanceFrom(a.Center)
}

// Sweep reports whether the arc turns clockwise in SVG coordinates.
func (a Arc) Sweep() bool {
	return Cross(a.Start.Minus(a.Center), a.End.Minus(a.Center)) > 0
}

// Quadrilateral is a rhombus fused from two triangles on base AC, with the
// apexes at B and D.
type Quadrilateral struct {
	A, B, C, D geom.Coord
}

// Kind compares the diagonals: large rhombi are built on their long one.
func (q Quadrilateral) Kind() Kind {
	if q.A.DistanceFrom(q.C) > q.B.DistanceFrom(q.D) {
		return Large
	}
	return Small
}

func (q Quadrilateral) Center() geom.Coord {
	return midpoint(q.A, q.C)
}

func (q Quadrilateral) Vertices() []geom.Coord {
	return []geom.Coord{q.A, q.B, q.C, q.D}
}

func (q Quadrilateral) Bounds() geom.Rect {
	return coordBounds(q.A, q.B, q.C, q.D)
}

func (q Quadrilateral) Arcs() (Arc, Arc) {
	first := Arc{Start: midpoint(q.A, q.B), Center: q.A, End: midpoint(q.A, q.D)}
	second := Arc{Start: midpoint(q.C, q.B), Center: q.C, End: midpoint(q.C, q.D)}
	return first, second
}

func almostEqualPairs(p1, p2, q1, q2 geom.Coord) bool {
	return (AlmostEqualsCoord(p1, q1) && AlmostEqualsCoord(p2, q2)) ||
		(AlmostEqualsCoord(p1, q2) && AlmostEqualsCoord(p2, q1))
}

// AlmostEquals compares the base and the apexes as unordered pairs, so the
// same rhombus fused from either triangle first compares equal.
func (q Quadrilateral) AlmostEquals(o Quadrilateral) bool {
	return almostEqualPairs(q.A, q.C, o.A, o.C) && almostEqualPairs(q.B, q.D, o.B, o.D)
}

func (q Quadrilateral) String() string {
	return fmt.Sprintf("%v{(%f,%f) (%f,%f) (%f,%f) (%f,%f)}",
		q.Kind(), q.A.X, q.A.Y, q.B.X, q.B.Y, q.C.X, q.C.Y, q.D.X, q.D.Y)
}
