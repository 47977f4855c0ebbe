package boopy

import (
	"math/big"
	"testing"

	"github.com/tdewolff/test"
)

// sq returns the counter-clockwise square with corners (x0,y0) and (x1,y1).
func sq(x0, y0, x1, y1 int64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestRingSignedArea(t *testing.T) {
	test.T(t, sq(0, 0, 4, 4).SignedArea2(), big.NewInt(32))
	test.T(t, sq(0, 0, 4, 4).Reversed().SignedArea2(), big.NewInt(-32))
	test.That(t, sq(0, 0, 4, 4).CCW())
	test.That(t, !sq(0, 0, 4, 4).Reversed().CCW())

	// long thin ring near the coordinate bound
	r := Ring{{-MaxCoord, 0}, {MaxCoord, 0}, {MaxCoord, 1}, {-MaxCoord, 1}}
	test.T(t, r.SignedArea2(), big.NewInt(2*(2*MaxCoord)))
}

func TestPolygonSetArea(t *testing.T) {
	p := PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed()}
	test.T(t, p.SignedArea2(), big.NewInt(2*(100-36)))
	test.T(t, p.Area(2), 16.0) // 64 engine-square-units at 2 sub-units per unit
}

func TestPolygonSetBounds(t *testing.T) {
	p := PolygonSet{sq(2, 3, 5, 7), sq(-1, 4, 0, 5)}
	min, max := p.Bounds()
	test.T(t, min, Point{-1, 3})
	test.T(t, max, Point{5, 7})

	min, max = PolygonSet{}.Bounds()
	test.T(t, min, Point{})
	test.T(t, max, Point{})
}

func TestPolygonSetValidate(t *testing.T) {
	test.Error(t, nil, PolygonSet{sq(0, 0, 4, 4)}.validate(0))

	err := PolygonSet{Ring{{0, 0}, {1, 1}}}.validate(0)
	test.That(t, err != nil)
	_, ok := err.(*DegenerateGeometryError)
	test.That(t, ok)

	err = PolygonSet{Ring{{0, 0}, {0, 0}, {1, 1}, {2, 0}}}.validate(0)
	test.That(t, err != nil)

	err = PolygonSet{Ring{{0, 0}, {MaxCoord + 1, 0}, {1, 1}}}.validate(0)
	test.That(t, err != nil)
}

func TestValidateNesting(t *testing.T) {
	test.Error(t, nil, PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed()}.Validate())

	// hole outside its outer boundary
	err := PolygonSet{sq(0, 0, 4, 4), sq(10, 10, 12, 12).Reversed()}.Validate()
	test.That(t, err != nil)

	// repeated vertex
	err = PolygonSet{Ring{{0, 0}, {4, 0}, {4, 4}, {2, 2}, {0, 4}, {2, 2}}}.Validate()
	test.That(t, err != nil)
}
