package penrose_test

import (
	"testing"

	"github.com/jbeda/geom"

	penrose "penrose-rhombs"
	"penrose-rhombs/seeds"
)

func TestUniqueEdges(t *testing.T) {
	tests := []struct {
		name string
		seed seeds.Seed
		want int
	}{
		// Four sides and the shared base.
		{"large rhombus", seeds.Rhombus(penrose.Large), 5},
		{"small rhombus", seeds.Rhombus(penrose.Small), 5},
		// Ten spokes and ten rim segments.
		{"pizza", seeds.Pizza(), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges := penrose.UniqueEdges(tt.seed.Transform(center, 100))
			if len(edges) != tt.want {
				t.Errorf("got %d edges, want %d", len(edges), tt.want)
			}
			for i := range edges {
				for j := i + 1; j < len(edges); j++ {
					if penrose.AlmostEqualsEdges(edges[i], edges[j]) {
						t.Errorf("edges %d and %d are the same: %v", i, j, edges[i])
					}
				}
			}
		})
	}
}

func TestUniqueEdgesEmpty(t *testing.T) {
	if got := penrose.UniqueEdges(nil); len(got) != 0 {
		t.Errorf("UniqueEdges(nil) = %v", got)
	}
}

func TestUniqueEdgesTiling(t *testing.T) {
	triangles := penrose.GenerateTiling(seedTriangles(t, "large-rhombus"), 4)
	edges := penrose.UniqueEdges(triangles)
	if len(edges) >= 3*len(triangles) {
		t.Errorf("%d unique edges for %d triangles", len(edges), len(triangles))
	}
	for _, tri := range triangles {
		a, b, c := tri.A(), tri.B(), tri.C()
		for _, side := range []penrose.Edge{{A: a, B: b}, {A: b, B: c}, {A: c, B: a}} {
			found := false
			for _, e := range edges {
				if e.Equals(side) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("side %v of %v is missing", side, tri)
			}
		}
	}
}

func TestEdgeEquals(t *testing.T) {
	a, b := geom.Coord{X: 1, Y: 2}, geom.Coord{X: 3, Y: 4}
	e := penrose.Edge{A: a, B: b}
	if !e.Equals(penrose.Edge{A: b, B: a}) {
		t.Error("reversed edge should be equal")
	}
	if e.Equals(penrose.Edge{A: a, B: geom.Coord{X: 3, Y: 5}}) {
		t.Error("different edge should not be equal")
	}
	if e.Equals(a) {
		t.Error("a coordinate is not an edge")
	}
	r := e.Bounds()
	d := penrose.FLOAT_EQUAL_THRESH
	if !penrose.AlmostEqualsCoord(r.Min, geom.Coord{X: 1 - d, Y: 2 - d}) ||
		!penrose.AlmostEqualsCoord(r.Max, geom.Coord{X: 3 + d, Y: 4 + d}) {
		t.Errorf("Bounds() = %v", r)
	}
}

// Spokes through the center of the rose and the pizza lie on the tree's
// partition lines, where rounding used to file copies of one edge apart.
func TestUniqueEdgesNoDuplicates(t *testing.T) {
	maxGenerations := 4
	if testing.Short() {
		maxGenerations = 2
	}
	for _, name := range seeds.Names() {
		t.Run(name, func(t *testing.T) {
			triangles := seedTriangles(t, name)
			for n := 0; n <= maxGenerations; n++ {
				if n > 0 {
					triangles = penrose.GenerateTiling(triangles, 1)
				}
				edges := penrose.UniqueEdges(triangles)
				for i := range edges {
					for j := i + 1; j < len(edges); j++ {
						if penrose.AlmostEqualsEdges(edges[i], edges[j]) {
							t.Fatalf("%d generations: edges %d and %d are the same: %v",
								n, i, j, edges[i])
						}
					}
				}
			}
		})
	}
}

func TestJoinEdges(t *testing.T) {
	square := []penrose.Edge{
		{A: geom.Coord{X: 0, Y: 0}, B: geom.Coord{X: 1, Y: 0}},
		{A: geom.Coord{X: 0, Y: 1}, B: geom.Coord{X: 1, Y: 1}},
		{A: geom.Coord{X: 1, Y: 1}, B: geom.Coord{X: 1, Y: 0}},
		{A: geom.Coord{X: 0, Y: 0}, B: geom.Coord{X: 0, Y: 1}},
	}
	paths := penrose.JoinEdges(square)
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(paths), paths)
	}
	p := paths[0]
	if len(p) != 5 {
		t.Fatalf("got %d points, want 5: %v", len(p), p)
	}
	if !penrose.AlmostEqualsCoord(p[0], p[len(p)-1]) {
		t.Errorf("square path is not closed: %v", p)
	}
}

func TestJoinEdgesKeepsSegments(t *testing.T) {
	edges := penrose.UniqueEdges(penrose.GenerateTiling(seedTriangles(t, "pizza"), 3))
	paths := penrose.JoinEdges(edges)
	segments := 0
	for _, p := range paths {
		segments += len(p) - 1
	}
	if segments != len(edges) {
		t.Errorf("%d segments in %d paths, want %d", segments, len(paths), len(edges))
	}
	if len(paths) >= len(edges) {
		t.Errorf("%d paths from %d edges, nothing joined", len(paths), len(edges))
	}
}

func TestCull(t *testing.T) {
	triangles := penrose.GenerateTiling(seedTriangles(t, "rose"), 3)
	all := penrose.Bounds(triangles)
	padded := geom.Rect{
		Min: all.Min.Minus(geom.Coord{X: 1, Y: 1}),
		Max: all.Max.Plus(geom.Coord{X: 1, Y: 1}),
	}
	if got := penrose.Cull(triangles, padded); len(got) != len(triangles) {
		t.Errorf("culling to own bounds kept %d of %d", len(got), len(triangles))
	}

	// Keep the right half of the rose.
	half := geom.Rect{Min: geom.Coord{X: center.X, Y: all.Min.Y}, Max: all.Max}
	got := penrose.Cull(triangles, half)
	if len(got) == 0 || len(got) >= len(triangles) {
		t.Fatalf("culling to the right half kept %d of %d", len(got), len(triangles))
	}
	for _, tri := range got {
		for _, v := range tri.Vertices() {
			if v.X < center.X-penrose.FLOAT_EQUAL_THRESH {
				t.Fatalf("%v is left of %v", tri, center)
			}
		}
	}

	far := geom.Rect{Min: geom.Coord{X: -10, Y: -10}, Max: geom.Coord{X: -5, Y: -5}}
	if got := penrose.Cull(triangles, far); len(got) != 0 {
		t.Errorf("culling to a far rect kept %d", len(got))
	}
}
