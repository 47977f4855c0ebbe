package boopy

import (
	"sort"
	"testing"

	"github.com/tdewolff/test"
)

func TestSimplifyRing(t *testing.T) {
	test.T(t, simplifyRing(Ring{{0, 0}, {2, 0}, {4, 0}, {4, 4}, {0, 4}}), sq(0, 0, 4, 4))
	test.T(t, simplifyRing(Ring{{0, 0}, {4, 0}, {4, 0}, {4, 4}, {0, 4}}), sq(0, 0, 4, 4))
	test.T(t, len(simplifyRing(Ring{{0, 0}, {2, 0}, {4, 0}})), 0) // fully collinear
}

func TestBuildRingsSquare(t *testing.T) {
	queue := SweepEvents{}
	queue.AddRing(sq(0, 0, 2, 2), 0, 0)
	belowFills := []bool{false, false, true, true} // bottom, right, top, left; verticals hold their right side
	for i, e := range queue {
		e.inResult = true
		e.belowFills = belowFills[i/2]
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i].LessH(queue[j]) })

	r, err := buildRings(queue)
	test.Error(t, err)
	test.T(t, canon(r), PolygonSet{sq(0, 0, 2, 2)})
}

func TestBuildRingsHole(t *testing.T) {
	queue := SweepEvents{}
	queue.AddRing(sq(0, 0, 2, 2), 0, 0)
	belowFills := []bool{true, true, false, false} // result material surrounds the ring: it bounds a hole
	for i, e := range queue {
		e.inResult = true
		e.belowFills = belowFills[i/2]
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i].LessH(queue[j]) })

	r, err := buildRings(queue)
	test.Error(t, err)
	test.T(t, len(r), 1)
	test.That(t, !r[0].CCW())
}

func TestBuildRingsOddDegree(t *testing.T) {
	e := seg(0, 0, 1, 0)
	e.inResult, e.other.inResult = true, true

	_, err := buildRings([]*SweepPoint{e, e.other})
	test.That(t, err != nil)
	terr, ok := err.(*TopologyError)
	test.That(t, ok)
	test.T(t, terr.Point, Point{0, 0})
}
