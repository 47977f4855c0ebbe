package boopy

import "sort"

// buildRings assembles the kept fragments of a finished sweep into closed,
// correctly oriented rings. Fragment endpoints are grouped by position and
// paired by angle around their vertex: the sectors between angularly
// adjacent fragment ends alternate between inside and outside the result,
// and a ring passing through the vertex connects the two ends that flank an
// inside sector. A valid planar result has an even number of fragment ends
// at every vertex with alternating coverage; violations surface as
// TopologyError, never as silently corrupted output.
//
// Hole against outer-boundary orientation comes from the winding counts
// carried through the sweep: a ring whose bottom-left fragment has result
// material below it bounds a hole and is emitted clockwise, otherwise it is
// an outer boundary and is emitted counter-clockwise. No point-in-polygon
// tests are involved.
func buildRings(order []*SweepPoint) (PolygonSet, error) {
	// group kept endpoints by position; order is sorted by the sweep
	var groups [][]*SweepPoint
	for _, e := range order {
		if !e.inResult {
			continue
		}
		if len(groups) == 0 || !e.Point.Equals(groups[len(groups)-1][0].Point) {
			groups = append(groups, []*SweepPoint{e})
		} else {
			groups[len(groups)-1] = append(groups[len(groups)-1], e)
		}
	}

	for _, g := range groups {
		if err := pairVertex(g); err != nil {
			return nil, err
		}
	}

	result := PolygonSet{}
	for _, g := range groups {
		for _, start := range g {
			if start.processed {
				continue
			}
			ring, err := walkRing(start)
			if err != nil {
				return nil, err
			}
			ring = simplifyRing(ring)
			if len(ring) < 3 || ring.SignedArea2().Sign() == 0 {
				continue // collapsed by rounding
			}
			outer := !start.belowFills
			if outer != ring.CCW() {
				ring = ring.Reversed()
			}
			result = append(result, ring)
		}
	}
	return result, nil
}

// outgoing returns the direction from this fragment end toward the other end
// of its fragment.
func (s *SweepPoint) outgoing() Point {
	return s.other.Point.Sub(s.Point)
}

// ccwFills reports whether the result fills the sector immediately
// counter-clockwise of the fragment end's outgoing direction. The region
// below a fragment lies clockwise of a left end and counter-clockwise of a
// right end.
func (s *SweepPoint) ccwFills() bool {
	if s.left {
		return !s.belowFills
	}
	return s.belowFills
}

// upward reports whether d points into the upper half plane, the positive
// x-axis included.
func upward(d Point) bool {
	return 0 < d.Y || d.Y == 0 && 0 < d.X
}

// pairVertex sorts the fragment ends at one vertex counter-clockwise by
// outgoing direction and pairs the two ends flanking each filled sector.
// Walks crossing the vertex then leave along the boundary of the same region
// they arrived on, which keeps rings that merely touch at the vertex apart
// instead of fusing them into one self-intersecting outline.
func pairVertex(g []*SweepPoint) error {
	if len(g)%2 != 0 {
		return &TopologyError{g[0].Point, "odd fragment degree at vertex"}
	}
	sort.Slice(g, func(i, j int) bool {
		u, v := g[i].outgoing(), g[j].outgoing()
		if a, b := upward(u), upward(v); a != b {
			return a
		}
		if s := cross(u, v); s != 0 {
			return 0 < s
		}
		return g[i].compareOverlaps(g[j]) < 0
	})
	for i, e := range g {
		next := g[(i+1)%len(g)]
		if e.ccwFills() == next.ccwFills() {
			return &TopologyError{e.Point, "inconsistent coverage around vertex"}
		}
		if e.ccwFills() {
			e.partner, next.partner = next, e
		}
	}
	return nil
}

// walkRing follows paired fragment ends from start until the walk returns to
// its starting vertex, marking both ends of every visited fragment.
func walkRing(start *SweepPoint) (Ring, error) {
	ring := Ring{start.Point}
	cur := start
	cur.processed, cur.other.processed = true, true
	for {
		next := cur.other.partner
		if next == nil {
			return nil, &TopologyError{cur.other.Point, "fragment endpoint missing from result"}
		}
		if next == start {
			return ring, nil
		}
		if next.processed {
			return nil, &TopologyError{next.Point, "unclosed ring"}
		}
		cur = next
		ring = append(ring, cur.Point)
		cur.processed, cur.other.processed = true, true
	}
}

// simplifyRing removes repeated and collinear vertices, such as the split
// points left over from crossings with fragments that did not survive the
// filter.
func simplifyRing(r Ring) Ring {
	if len(r) < 3 {
		return r
	}
	dedup := make(Ring, 0, len(r))
	for i, p := range r {
		if !p.Equals(r[(i+1)%len(r)]) {
			dedup = append(dedup, p)
		}
	}
	if len(dedup) < 3 {
		return dedup[:0]
	}
	out := make(Ring, 0, len(dedup))
	for i, p := range dedup {
		prev := dedup[(i+len(dedup)-1)%len(dedup)]
		next := dedup[(i+1)%len(dedup)]
		if area2(prev, p, next) != 0 {
			out = append(out, p)
		}
	}
	return out
}
