package penrose

import (
	"fmt"
	"math"
	"sort"
)

// GridResolution is how many hash cells span one triangle leg in
// MergePairsFast.  Coarser grids collide more, finer ones miss more pairs
// across cell borders; both are fixed up by the sorted fallback pass.
const GridResolution = 100.0

// fuse checks that two triangles with close base medians really share a base
// and returns the rhombus they form.
func fuse(cur, next Triangle) Quadrilateral {
	if !almostEqualPairs(cur.a, cur.c, next.a, next.c) {
		panic(fmt.Errorf("%w: %v and %v", ErrBaseMismatch, cur, next))
	}
	return Quadrilateral{A: cur.a, B: cur.b, C: cur.c, D: next.b}
}

// MergePairs fuses every pair of triangles sharing a base into a rhombus.
// Triangles without a partner, along the edge of the tiling, are dropped.
//
// Comparing every triangle with every other is O(n^2).  Instead the
// triangles are sorted by base median, which puts partners next to each
// other, and one pass picks them up.  The input slice is not modified.
func MergePairs(ts []Triangle) []Quadrilateral {
	sorted := append([]Triangle{}, ts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareCoord(sorted[i].BaseMedian(), sorted[j].BaseMedian()) < 0
	})

	r := make([]Quadrilateral, 0, len(sorted)/2)
	for i := 0; i+1 < len(sorted); i++ {
		cur, next := sorted[i], sorted[i+1]
		if AlmostEqualsCoord(cur.BaseMedian(), next.BaseMedian()) {
			r = append(r, fuse(cur, next))
			i++
		}
	}
	return r
}

type cell struct {
	x, y int64
}

func cellOf(t Triangle, scale float64) cell {
	m := t.BaseMedian()
	return cell{int64(math.Floor(m.X * scale)), int64(math.Floor(m.Y * scale))}
}

// MergePairsFast gives the same rhombi as MergePairs in expected linear time.
//
// Base medians are bucketed on a grid sized from the first triangle's leg.
// A triangle landing in an occupied cell is fused with the occupant when
// their medians are close.  Two things can go wrong: unrelated medians can
// share a cell (a collision), and partners can straddle a cell border (a
// miss).  Colliding newcomers and everything left in the grid afterwards go
// through MergePairs, so no pair is lost either way.
func MergePairsFast(ts []Triangle) []Quadrilateral {
	if len(ts) == 0 {
		return []Quadrilateral{}
	}
	leg := ts[0].LegLength()
	if !(leg > 0) {
		// A degenerate first triangle gives no grid size.
		return MergePairs(ts)
	}
	scale := GridResolution / leg

	r := make([]Quadrilateral, 0, len(ts)/2)
	grid := make(map[cell]int, len(ts)/2)
	var leftover []int
	for i, t := range ts {
		k := cellOf(t, scale)
		j, found := grid[k]
		switch {
		case !found:
			grid[k] = i
		case AlmostEqualsCoord(ts[j].BaseMedian(), t.BaseMedian()):
			delete(grid, k)
			r = append(r, fuse(ts[j], t))
		default:
			leftover = append(leftover, i)
		}
	}
	hashed := len(r)

	for _, j := range grid {
		leftover = append(leftover, j)
	}
	sort.Ints(leftover)
	rest := make([]Triangle, len(leftover))
	for n, j := range leftover {
		rest[n] = ts[j]
	}
	r = append(r, MergePairs(rest)...)

	Logger().Debug("merged pairs",
		"triangles", len(ts),
		"hashed", hashed,
		"fallback_triangles", len(rest),
		"fallback_pairs", len(r)-hashed)
	return r
}
