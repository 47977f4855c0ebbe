package boopy

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestMulDivRound(t *testing.T) {
	var tts = []struct {
		a, b, den int64
		r         int64
	}{
		{1, 1, 2, 1},   // 0.5 rounds away from zero
		{-1, 1, 2, -1}, // -0.5 rounds away from zero
		{1, 1, -2, -1},
		{1, 1, 3, 0},
		{2, 1, 3, 1},
		{7, 3, 2, 11}, // 10.5
		{-7, 3, 2, -11},
		{6, 2, 3, 4},
		{0, 5, 7, 0},
		{1 << 40, 1 << 22, 1 << 31, 1 << 31}, // needs the big.Int intermediate
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, mulDivRound(tt.a, tt.b, tt.den), tt.r)
		})
	}
}

func TestPointCompare(t *testing.T) {
	test.T(t, Point{0, 0}.Compare(Point{1, 0}), -1)
	test.T(t, Point{1, 0}.Compare(Point{0, 5}), 1)
	test.T(t, Point{2, 1}.Compare(Point{2, 3}), -1)
	test.T(t, Point{2, 3}.Compare(Point{2, 3}), 0)
	test.That(t, Point{MaxCoord, MaxCoord}.InRange())
	test.That(t, !Point{MaxCoord + 1, 0}.InRange())
}

func TestIntersectSegments(t *testing.T) {
	var tts = []struct {
		aL, aR, bL, bR Point
		aPts, bPts     []Point
	}{
		// proper crossing
		{Point{0, 0}, Point{4, 4}, Point{0, 4}, Point{4, 0}, []Point{{2, 2}}, []Point{{2, 2}}},
		// T-junction splits only the segment whose interior is touched
		{Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{2, 2}, []Point{{2, 0}}, nil},
		{Point{2, 0}, Point{2, 2}, Point{0, 0}, Point{4, 0}, nil, []Point{{2, 0}}},
		// touching endpoints
		{Point{0, 0}, Point{2, 2}, Point{2, 2}, Point{4, 0}, nil, nil},
		// collinear partial overlap
		{Point{0, 0}, Point{4, 0}, Point{2, 0}, Point{6, 0}, []Point{{2, 0}}, []Point{{4, 0}}},
		// collinear containment
		{Point{0, 0}, Point{6, 0}, Point{2, 0}, Point{4, 0}, []Point{{2, 0}, {4, 0}}, nil},
		// collinear disjoint and collinear touching
		{Point{0, 0}, Point{2, 0}, Point{4, 0}, Point{6, 0}, nil, nil},
		{Point{0, 0}, Point{2, 0}, Point{2, 0}, Point{4, 0}, nil, nil},
		// vertical overlap
		{Point{0, 0}, Point{0, 4}, Point{0, 2}, Point{0, 6}, []Point{{0, 2}}, []Point{{0, 4}}},
		// no intersection
		{Point{0, 0}, Point{4, 0}, Point{0, 1}, Point{4, 2}, nil, nil},
		// crossing point snaps to the grid, collapsing onto an endpoint of b
		{Point{0, 0}, Point{2, 1}, Point{0, 1}, Point{1, 0}, []Point{{1, 0}}, nil},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			aPts, bPts := intersectSegments(tt.aL, tt.aR, tt.bL, tt.bR)
			test.T(t, aPts, tt.aPts)
			test.T(t, bPts, tt.bPts)
		})
	}
}

func TestIntersectionPointExact(t *testing.T) {
	z := intersectionPoint(Point{0, 0}, Point{4, 4}, Point{0, 4}, Point{4, 0})
	test.T(t, z, Point{2, 2})

	// midpoint crossing of long segments stays exact near the range bound
	z = intersectionPoint(Point{-MaxCoord, -MaxCoord}, Point{MaxCoord, MaxCoord}, Point{-MaxCoord, MaxCoord}, Point{MaxCoord, -MaxCoord})
	test.T(t, z, Point{0, 0})
}
