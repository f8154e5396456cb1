// Package seeds holds the starting patterns a tiling is grown from.  Every
// seed is built at unit scale: each triangle has legs of length 1.
package seeds

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"

	penrose "penrose-rhombs"
)

var (
	ErrUnknownSeed     = errors.New("unknown seed")
	ErrUnsupportedKind = errors.New("unsupported rhombus kind")
)

// Seed is a unit-scale set of triangles.  It is only useful once placed with
// Transform; after that the triangles are a plain tiling.
type Seed struct {
	triangles []penrose.Triangle
}

// Transform scales every triangle and moves the origin to center.
func (s Seed) Transform(center geom.Coord, scale float64) []penrose.Triangle {
	r := make([]penrose.Triangle, len(s.triangles))
	for i, t := range s.triangles {
		r[i] = t.Scale(scale, center)
	}
	return r
}

func (s Seed) Len() int {
	return len(s.triangles)
}

func rotated(ts []penrose.Triangle, angle float64) []penrose.Triangle {
	r := make([]penrose.Triangle, len(ts))
	for i, t := range ts {
		r[i] = t.Rotate(angle)
	}
	return r
}

// Rose is a ten-fold flower: five sectors of inner and outer petals with two
// leaves each, every sector mirrored across the X axis.
func Rose() Seed {
	origin := geom.Coord{}
	p1 := geom.Coord{X: 1, Y: 0}
	p2 := geom.Coord{X: penrose.PHI, Y: 0}
	p3 := p2.Plus(penrose.Rotate(p1, 36))
	p4 := penrose.Rotate(p2, 36)
	p5 := penrose.Rotate(p2.Plus(p1), 36)

	top := []penrose.Triangle{
		penrose.MustTriangle(p4, p1, origin), // inner petal
		penrose.MustTriangle(p1, p4, p2),     // outer petal
		penrose.MustTriangle(p5, p4, p2),     // leaf
		penrose.MustTriangle(p5, p3, p2),     // leaf
	}
	sector := append([]penrose.Triangle{}, top...)
	for _, t := range top {
		sector = append(sector, t.MirrorY())
	}

	ts := append([]penrose.Triangle{}, sector...)
	for i := 1; i < 5; i++ {
		ts = append(ts, rotated(sector, float64(72*i))...)
	}
	return Seed{ts}
}

// Rhombus is a single rhombus of the given kind, centered on the origin with
// its base along the X axis.
func Rhombus(kind penrose.Kind) Seed {
	var base float64
	switch kind {
	case penrose.Small:
		base = penrose.PHI_INVERSE
	case penrose.Large:
		base = penrose.PHI
	default:
		panic(fmt.Errorf("%w: %v", ErrUnsupportedKind, kind))
	}
	right := geom.Coord{X: base / 2, Y: 0}
	left := penrose.Neg(right)
	return Seed{[]penrose.Triangle{
		penrose.FromBase(left, right, kind, true),
		penrose.FromBase(left, right, kind, false),
	}}
}

// Pizza is a decagon of ten triangles meeting at the origin.
func Pizza() Seed {
	origin := geom.Coord{}
	p1 := geom.Coord{X: 1, Y: 0}
	p2 := penrose.Rotate(p1, 36)
	p3 := penrose.Rotate(p1, 72)

	first := []penrose.Triangle{
		penrose.MustTriangle(p1, origin, p2),
		penrose.MustTriangle(p3, origin, p2),
	}
	ts := append([]penrose.Triangle{}, first...)
	for i := 1; i < 5; i++ {
		ts = append(ts, rotated(first, float64(72*i))...)
	}
	return Seed{ts}
}

var byName = map[string]func() Seed{
	"rose":          Rose,
	"large-rhombus": func() Seed { return Rhombus(penrose.Large) },
	"small-rhombus": func() Seed { return Rhombus(penrose.Small) },
	"pizza":         Pizza,
}

// Names lists the seed names ByName accepts, default first.
func Names() []string {
	return []string{"rose", "large-rhombus", "small-rhombus", "pizza"}
}

func ByName(name string) (Seed, error) {
	f, found := byName[name]
	if !found {
		return Seed{}, fmt.Errorf("%w: %q", ErrUnknownSeed, name)
	}
	return f(), nil
}
