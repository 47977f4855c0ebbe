package boopy

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestFromOrb(t *testing.T) {
	// interior ring given counter-clockwise still becomes a clockwise hole
	poly := orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{1, 1}, {3, 1}, {3, 3}, {1, 3}, {1, 1}},
	}
	p, err := FromOrb(poly, 1)
	test.Error(t, err)
	test.T(t, canon(p), canon(PolygonSet{sq(0, 0, 4, 4), sq(1, 1, 3, 3).Reversed()}))

	// a clockwise exterior ring is flipped to the outer convention
	ring := orb.Ring{{0, 0}, {0, 2}, {2, 2}, {2, 0}, {0, 0}}
	p, err = FromOrb(ring, 1)
	test.Error(t, err)
	test.T(t, canon(p), PolygonSet{sq(0, 0, 2, 2)})

	_, err = FromOrb(orb.LineString{{0, 0}, {1, 1}}, 1)
	test.That(t, err != nil)
}

func TestToOrb(t *testing.T) {
	p := PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed(), sq(20, 20, 22, 22)}
	mp := p.ToOrb(1)
	test.T(t, len(mp), 2)

	// outers come out smallest first, the hole attaches to its container
	test.T(t, len(mp[0]), 1)
	test.T(t, len(mp[1]), 2)
	test.T(t, len(mp[1][1]), 5)
	test.T(t, mp[1][1][0], mp[1][1][4]) // orb rings are closed

	test.T(t, mp[0][0][0], orb.Point{20, 20})
}

func TestOrbRoundTrip(t *testing.T) {
	p := PolygonSet{sq(0, 0, 10, 10), sq(2, 2, 8, 8).Reversed()}
	q, err := FromOrb(p.ToOrb(2), 2)
	test.Error(t, err)
	test.T(t, canon(q), canon(p))
}
