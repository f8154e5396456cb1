package penrose

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

var (
	ErrNotIsosceles = errors.New("triangle is not isosceles")
	ErrUnknownKind  = errors.New("triangle sides are of invalid ratio")
	ErrBaseMismatch = errors.New("triangles share a base median but not a base")
)

// Kind is the shape of a Robinson triangle, and of the rhombus two of them
// form.
type Kind int

const (
	Small Kind = iota
	Large
)

var Kinds = []Kind{Small, Large}

func (k Kind) String() string {
	switch k {
	case Small:
		return "small"
	case Large:
		return "large"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// BaseToLegRatio is |ac| / |ab|.
func (k Kind) BaseToLegRatio() float64 {
	if k == Small {
		return PHI_INVERSE
	}
	return PHI
}

// BaseAngle is the angle at a (and c), in degrees.
func (k Kind) BaseAngle() float64 {
	if k == Small {
		return 72.0
	}
	return 36.0
}

// Triangle is a Robinson triangle with apex B and base AC.  The kind is
// inferred when the triangle is built and can't drift from the vertices,
// which are only reachable through accessors.
//
// The zero Triangle did not go through a constructor: it reports Small but
// all three vertices are the origin and its legs have length zero.
type Triangle struct {
	a, b, c geom.Coord
	kind    Kind
}

// InferKind classifies the triangle a, b, c by its base to leg ratio.
func InferKind(a, b, c geom.Coord) (Kind, error) {
	ab := a.DistanceFrom(b)
	bc := b.DistanceFrom(c)
	ca := c.DistanceFrom(a)
	if !FloatAlmostEqual(ab, bc) {
		return 0, fmt.Errorf("%w: |ab| = %f, |bc| = %f", ErrNotIsosceles, ab, bc)
	}
	ratio := ca / ab
	for _, k := range Kinds {
		if FloatAlmostEqual(ratio, k.BaseToLegRatio()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: base/leg = %f", ErrUnknownKind, ratio)
}

func NewTriangle(a, b, c geom.Coord) (Triangle, error) {
	k, err := InferKind(a, b, c)
	if err != nil {
		return Triangle{}, err
	}
	return Triangle{a, b, c, k}, nil
}

// MustTriangle is NewTriangle for geometry that is correct by construction.
// A failure here means a bug upstream, so it panics.
func MustTriangle(a, b, c geom.Coord) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// FromBase builds the triangle of the given kind on base a, c.  If
// rightHanded, the path a -> b -> c makes a right turn in SVG coordinates,
// meaning a->b is a->c turned anti-clockwise.
func FromBase(a, c geom.Coord, kind Kind, rightHanded bool) Triangle {
	rotation := kind.BaseAngle()
	if rightHanded {
		rotation = -rotation
	}
	towardB := Rotate(c.Minus(a), rotation).Unit()
	legLength := a.DistanceFrom(c) / kind.BaseToLegRatio()
	b := a.Plus(towardB.Times(legLength))

	t := MustTriangle(a, b, c)
	if t.kind != kind {
		panic(fmt.Errorf("%w: built %v from base, inferred %v", ErrUnknownKind, kind, t.kind))
	}
	return t
}

func (t Triangle) A() geom.Coord { return t.a }
func (t Triangle) B() geom.Coord { return t.b }
func (t Triangle) C() geom.Coord { return t.c }
func (t Triangle) Kind() Kind    { return t.kind }

func (t Triangle) Vertices() []geom.Coord {
	return []geom.Coord{t.a, t.b, t.c}
}

// BaseMedian is the midpoint of AC.  Two triangles sharing a base share it,
// which is what MergePairs keys on.
func (t Triangle) BaseMedian() geom.Coord {
	return midpoint(t.a, t.c)
}

// LegLength is |ab|, the same for every triangle of one generation.
func (t Triangle) LegLength() float64 {
	return t.a.DistanceFrom(t.b)
}

func (t Triangle) Bounds() geom.Rect {
	return coordBounds(t.a, t.b, t.c)
}

func (t Triangle) AlmostEquals(o Triangle) bool {
	return AlmostEqualsCoord(t.a, o.a) && AlmostEqualsCoord(t.b, o.b) && AlmostEqualsCoord(t.c, o.c)
}

func (t Triangle) Rotate(angle float64) Triangle {
	return MustTriangle(Rotate(t.a, angle), Rotate(t.b, angle), Rotate(t.c, angle))
}

func (t Triangle) MirrorX() Triangle {
	return MustTriangle(MirrorX(t.a), MirrorX(t.b), MirrorX(t.c))
}

func (t Triangle) MirrorY() Triangle {
	return MustTriangle(MirrorY(t.a), MirrorY(t.b), MirrorY(t.c))
}

// Scale maps every vertex p to p*scale + offset.
func (t Triangle) Scale(scale float64, offset geom.Coord) Triangle {
	return MustTriangle(
		t.a.Times(scale).Plus(offset),
		t.b.Times(scale).Plus(offset),
		t.c.Times(scale).Plus(offset),
	)
}

func (t Triangle) String() string {
	return fmt.Sprintf("%v{(%f,%f) (%f,%f) (%f,%f)}", t.kind, t.a.X, t.a.Y, t.b.X, t.b.Y, t.c.X, t.c.Y)
}

// Arcs returns the two matching arcs, centered on a and c.  Each spans from
// the middle of the adjacent leg to the point on the base at half a leg's
// length from the center.
func (t Triangle) Arcs() (Arc, Arc) {
	ratio := PHI
	if t.kind == Large {
		ratio = PHI_INVERSE
	}
	first := Arc{
		Start:  midpoint(t.a, t.b),
		Center: t.a,
		End:    t.a.Plus(t.c.Minus(t.a).Times(0.5 * ratio)),
	}
	second := Arc{
		Start:  midpoint(t.c, t.b),
		Center: t.c,
		End:    t.c.Plus(t.a.Minus(t.c).Times(0.5 * ratio)),
	}
	return first, second
}
