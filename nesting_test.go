package boopy

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestRingWinding(t *testing.T) {
	r := sq(0, 0, 4, 4)
	w, on := ringWinding(r, Point{2, 2})
	test.T(t, w, 1)
	test.That(t, !on)

	w, on = ringWinding(r, Point{5, 5})
	test.T(t, w, 0)
	test.That(t, !on)

	_, on = ringWinding(r, Point{4, 2})
	test.That(t, on)
	_, on = ringWinding(r, Point{0, 0})
	test.That(t, on)

	w, on = ringWinding(r.Reversed(), Point{2, 2})
	test.T(t, w, -1)
	test.That(t, !on)
}

func TestContains(t *testing.T) {
	p := PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed()}
	test.That(t, p.Contains(Point{1, 1}))
	test.That(t, !p.Contains(Point{5, 5})) // inside the hole
	test.That(t, p.Contains(Point{2, 5}))  // hole boundary counts as inside
	test.That(t, !p.Contains(Point{11, 5}))
}

func TestIndexContains(t *testing.T) {
	p := PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed()}
	ix := NewIndex(p)
	pts := []Point{{1, 1}, {5, 5}, {2, 5}, {11, 5}, {0, 0}, {10, 10}, {-1, -1}}
	for _, pt := range pts {
		test.T(t, ix.Contains(pt), p.Contains(pt))
	}
}

func TestIndexContainsMany(t *testing.T) {
	// a grid of disjoint squares, the index visits only the hit candidates
	p := PolygonSet{}
	for i := int64(0); i < 16; i++ {
		for j := int64(0); j < 16; j++ {
			p = append(p, sq(4*i, 4*j, 4*i+2, 4*j+2))
		}
	}
	ix := NewIndex(p)
	test.That(t, ix.Contains(Point{21, 21}))
	test.That(t, !ix.Contains(Point{23, 23}))
	test.That(t, !ix.Contains(Point{100, 100}))
}
