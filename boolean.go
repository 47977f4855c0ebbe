package boopy

import "context"

// Op selects the Boolean operator of a combine operation.
type Op int

const (
	// Union keeps every point covered by at least one operand.
	Union Op = iota
	// Intersection keeps every point covered by all operands.
	Intersection
	// Difference keeps every point covered by the first operand and by no
	// other.
	Difference
	// Xor keeps every point covered by an odd number of operands.
	Xor
)

func (op Op) String() string {
	switch op {
	case Union:
		return "union"
	case Intersection:
		return "intersection"
	case Difference:
		return "difference"
	case Xor:
		return "xor"
	}
	return "unknown"
}

// fills reports whether a region with the given per-operand winding counts
// lies inside the result of op. Coverage per operand follows the nonzero
// rule.
func (op Op) fills(c []int32) bool {
	switch op {
	case Union:
		for _, w := range c {
			if w != 0 {
				return true
			}
		}
		return false
	case Intersection:
		for _, w := range c {
			if w == 0 {
				return false
			}
		}
		return 0 < len(c)
	case Difference:
		if len(c) == 0 || c[0] == 0 {
			return false
		}
		for _, w := range c[1:] {
			if w != 0 {
				return false
			}
		}
		return true
	case Xor:
		n := 0
		for _, w := range c {
			if w != 0 {
				n++
			}
		}
		return n%2 == 1
	}
	return false
}

// cancelInterval is the number of events between cancellation polls.
const cancelInterval = 1024

// SweepPointPair keys a pair of segments that has been tested for
// intersections.
type SweepPointPair struct {
	a, b *SweepPoint
}

// combine runs the sweep over all operand edges, labels the resulting
// fragments with per-operand winding counts, filters them with op's
// predicate and reassembles the kept fragments into rings.
//
// The sweep is a Bentley-Ottmann plane sweep in O((n + k) log n) for n
// segments and k intersections, after M. de Berg et al., "Computational
// Geometry", Chapter 2, and F. Martínez et al., "A simple algorithm for
// Boolean operations on polygons", Advances in Engineering Software 64,
// 2013. Intersection detection is exact; crossing points are rounded to the
// grid like the split points of Vatti-style integer clippers.
func combine(ctx context.Context, op Op, operands []PolygonSet) (PolygonSet, error) {
	for i, p := range operands {
		if err := p.validate(i); err != nil {
			return nil, err
		}
	}

	queue := &SweepEvents{}
	seg := 0
	for i, p := range operands {
		for _, r := range p {
			seg = queue.AddRing(r, i, seg)
		}
	}
	queue.Init() // order from left to right

	numOps := len(operands)
	status := NewSweepStatus()
	handled := map[SweepPointPair]bool{} // avoid testing a pair more than once
	var order []*SweepPoint
	count := 0
	for 0 < queue.Len() {
		if count%cancelInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, &OperationCancelledError{ctx.Err()}
			default:
			}
		}
		count++

		event := queue.Pop()
		if event.left {
			n := status.Insert(event)
			if prev := n.Prev(); prev != nil {
				addIntersections(queue, handled, prev.SweepPoint, n.SweepPoint)
			}
			if next := n.Next(); next != nil {
				addIntersections(queue, handled, n.SweepPoint, next.SweepPoint)
			}

			// compute labels after splitting, partial overlaps have become
			// equal segments by now
			computeSweepFields(op, numOps, n)
		} else {
			n := event.other.node
			if n == nil {
				return nil, &TopologyError{event.Point, "segment missing from sweep status"}
			}
			prev, next := n.Prev(), n.Next()
			if prev != nil && next != nil {
				addIntersections(queue, handled, prev.SweepPoint, next.SweepPoint)
			}
			status.Remove(n)
		}
		order = append(order, event)
	}
	return buildRings(order)
}

// addIntersections tests the segments of two left events for intersections
// and overlaps, splits both where needed and queues the new endpoint events.
func addIntersections(queue *SweepEvents, handled map[SweepPointPair]bool, a, b *SweepPoint) {
	if handled[SweepPointPair{a, b}] || handled[SweepPointPair{b, a}] {
		return
	}
	aPts, bPts := intersectSegments(a.Left(), a.Right(), b.Left(), b.Right())
	aLefts := splitSegment(queue, a, aPts)
	bLefts := splitSegment(queue, b, bPts)
	for _, l := range aLefts {
		for _, r := range bLefts {
			handled[SweepPointPair{l, r}] = true
		}
	}
}

// splitSegment splits the segment of left event e at the given interior
// points, ordered from left to right. e keeps its node in the sweep status
// and becomes the leftmost piece; the new endpoint events are pushed onto
// the queue. Each piece starts as a copy of the endpoint it replaces, so the
// right end of the leading piece keeps the segment's labels while the new
// left events recompute theirs once they are inserted into the status. Split
// points that collapse onto an endpoint by rounding are skipped.
func splitSegment(queue *SweepEvents, e *SweepPoint, pts []Point) []*SweepPoint {
	lefts := []*SweepPoint{e}
	if len(pts) == 0 {
		return lefts
	}

	prevLeft, last := e, e.other
	for _, z := range pts {
		if z.Equals(prevLeft.Point) || z.Equals(last.Point) {
			continue
		}
		right, left := *last, *prevLeft
		right.Point, left.Point = z, z
		left.node = nil
		prevLeft.other, right.other = &right, prevLeft
		left.other, last.other = last, &left
		queue.Push(&right)
		queue.Push(&left)
		prevLeft = &left
		lefts = append(lefts, &left)
	}
	return lefts
}

// computeSweepFields labels the just inserted left event: the winding counts
// below its fragment propagate from the status predecessor, and the
// operator's predicate on the counts below and above decides whether the
// fragment separates inside from outside and thus survives into the result.
// Overlapping equal segments are merged into a single fragment carrying the
// summed winding deltas of all its members.
func computeSweepFields(op Op, numOps int, n *SweepNode) {
	cur := n.SweepPoint
	// may be a piece copied during a split, reset the labels
	cur.head = cur
	cur.inResult = false

	prev, next := n.Prev(), n.Next()
	cur.below = make([]int32, numOps)
	if prev != nil {
		copy(cur.below, prev.below)
		// a vertical predecessor sits on the sweep line itself and ends at
		// the current event point; just right of the line the region below
		// cur is the vertical's right side, not its left
		if !prev.vertical {
			for i, d := range prev.contrib {
				cur.below[i] += d
			}
		}
	}
	cur.contrib = make([]int32, numOps)
	cur.contrib[cur.operand] = cur.delta()

	var head *SweepPoint
	if prev != nil && sameSegment(cur, prev.SweepPoint) {
		head = prev.head
	} else if next != nil && sameSegment(cur, next.SweepPoint) {
		head = next.head
		// cur became the bottom of the overlap group; its predecessor is the
		// true neighbor below the group, refresh the group's counts in place
		copy(head.below, cur.below)
	}
	if head != nil {
		head.contrib[cur.operand] += cur.delta()
		setInResult(op, head)
		cur.below, cur.contrib = head.below, head.contrib
		cur.head = head
		cur.inResult, cur.other.inResult = false, false
		cur.belowFills, cur.other.belowFills = head.belowFills, head.belowFills
		return
	}
	setInResult(op, cur)
}

func setInResult(op Op, s *SweepPoint) {
	above := make([]int32, len(s.below))
	copy(above, s.below)
	for i, d := range s.contrib {
		above[i] += d
	}
	s.belowFills = op.fills(s.below)
	s.inResult = s.belowFills != op.fills(above)
	s.other.inResult = s.inResult
	s.other.belowFills = s.belowFills
}

// sameSegment returns true if both events describe the same directed extent.
func sameSegment(a, b *SweepPoint) bool {
	return a.Point.Equals(b.Point) && a.other.Point.Equals(b.other.Point)
}
