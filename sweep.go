package boopy

import (
	"fmt"
	"sync"
)

// SweepPoint is one endpoint event of a segment during the sweep. Segments
// are represented by their two linked endpoint events; the left event is the
// one inserted into the sweep status. All sweep-time state is owned by a
// single operation and discarded afterwards.
type SweepPoint struct {
	Point
	other      *SweepPoint // the other endpoint of the segment
	operand    int         // index of the operand this segment came from
	segment    int         // segment identity for deterministic tie-breaking
	left       bool        // event is the left end of the segment
	increasing bool        // segment runs left to right (up for verticals)
	vertical   bool

	node *SweepNode // status node while the segment is active, O(1) removal

	// combine labels, set when the left event is inserted into the status
	below      []int32     // per-operand winding counts just below the fragment
	contrib    []int32     // winding deltas carried by the fragment; shared within an overlap group
	head       *SweepPoint // representative of a group of merged overlapping fragments
	inResult   bool
	belowFills bool // region below the fragment is inside the result

	// ring reconstruction
	partner   *SweepPoint // paired fragment end at the same vertex
	processed bool
}

// Left returns the lexicographically smaller endpoint, the bottom one for
// vertical segments.
func (s *SweepPoint) Left() Point {
	if s.left {
		return s.Point
	}
	return s.other.Point
}

// Right returns the lexicographically larger endpoint.
func (s *SweepPoint) Right() Point {
	if s.left {
		return s.other.Point
	}
	return s.Point
}

// dir returns the left-to-right direction vector of the segment.
func (s *SweepPoint) dir() Point {
	return s.Right().Sub(s.Left())
}

// delta is the winding contribution of the segment to its operand when
// crossing it from below to above (from right to left for verticals).
func (s *SweepPoint) delta() int32 {
	if s.increasing {
		return 1
	}
	return -1
}

func (s *SweepPoint) String() string {
	return fmt.Sprintf("op%d(%v−%v)", s.operand, s.Point, s.other.Point)
}

// compareOverlaps orders segments that lie on top of each other, by operand
// and then by segment identity so that the order is total and deterministic.
func (a *SweepPoint) compareOverlaps(b *SweepPoint) int {
	if a.operand != b.operand {
		if a.operand < b.operand {
			return -1
		}
		return 1
	}
	if a.segment != b.segment {
		if a.segment < b.segment {
			return -1
		}
		return 1
	}
	return 0
}

// compareTangents orders two segments that coincide at a point by their
// direction, lower slopes first. Verticals sort above everything else,
// which falls out of the cross product sign.
func (a *SweepPoint) compareTangents(b *SweepPoint) int {
	if s := cross(a.dir(), b.dir()); s != 0 {
		if s > 0 {
			return -1 // b heads above a
		}
		return 1
	}
	return a.compareOverlaps(b)
}

// CompareV orders segment a against segment b in the sweep status, where a
// is the segment being inserted or located at the current event position and
// b entered the status at or before that position. The side test is exact.
func (a *SweepPoint) CompareV(b *SweepPoint) int {
	if a.X == b.X {
		if a.Y != b.Y {
			if a.Y < b.Y {
				return -1
			}
			return 1
		}
		return a.compareTangents(b)
	}
	// a starts to the right of b's left endpoint
	if s := area2(b.Left(), b.Right(), a.Point); s != 0 {
		if s < 0 {
			return -1 // a is below b
		}
		return 1
	}
	return a.compareTangents(b)
}

// LessH orders events in the sweep queue: left to right, bottom to top,
// right-endpoints before left-endpoints, then by tangent so that fragments
// come out in counter-clockwise order, and finally by operand and segment
// identity so that equal segments pop in status order.
func (a *SweepPoint) LessH(b *SweepPoint) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.left != b.left {
		return !a.left // process right-endpoints first
	}
	c := a.compareTangents(b)
	if !a.left {
		return 0 < c
	}
	return c < 0
}

// SweepEvents is a binary heap priority queue of sweep events.
type SweepEvents []*SweepPoint

func (q SweepEvents) Len() int {
	return len(q)
}

func (q SweepEvents) Less(i, j int) bool {
	return q[i].LessH(q[j])
}

func (q SweepEvents) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

// AddRing appends the two endpoint events of every edge of r to the queue,
// tagging them with the operand index. It returns the next free segment
// identity.
func (q *SweepEvents) AddRing(r Ring, operand, seg int) int {
	for i, start := range r {
		end := r[(i+1)%len(r)]
		vertical := start.X == end.X
		increasing := start.X < end.X
		if vertical {
			increasing = start.Y < end.Y
		}
		a := &SweepPoint{
			Point:      start,
			operand:    operand,
			segment:    seg,
			left:       increasing,
			increasing: increasing,
			vertical:   vertical,
		}
		b := &SweepPoint{
			Point:      end,
			operand:    operand,
			segment:    seg,
			left:       !increasing,
			increasing: increasing,
			vertical:   vertical,
		}
		a.other, b.other = b, a
		*q = append(*q, a, b)
		seg++
	}
	return seg
}

func (q SweepEvents) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *SweepEvents) Push(item *SweepPoint) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

func (q *SweepEvents) Pop() *SweepPoint {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q SweepEvents) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q SweepEvents) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

// SweepNode is a node of the AVL tree holding the active segments, ordered
// by their vertical position at the sweep line.
type SweepNode struct {
	parent, left, right *SweepNode
	height              int

	*SweepPoint
}

func (n *SweepNode) Prev() *SweepNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

func (n *SweepNode) Next() *SweepNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *SweepNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *SweepNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *SweepNode) swapChild(a, b *SweepNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (a *SweepNode) rotateLeft() *SweepNode {
	b := a.right
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.right = b.left; a.right != nil {
		a.right.parent = a
	}
	b.left = a
	return b
}

func (a *SweepNode) rotateRight() *SweepNode {
	b := a.left
	if a.parent != nil {
		a.parent.swapChild(a, b)
	} else {
		b.parent = nil
	}
	a.parent = b
	if a.left = b.right; a.left != nil {
		a.left.parent = a
	}
	b.right = a
	return b
}

// SweepStatus is the ordered structure of active segments, exclusively owned
// by one running operation.
type SweepStatus struct {
	root *SweepNode
	pool *sync.Pool
}

func NewSweepStatus() *SweepStatus {
	return &SweepStatus{
		pool: &sync.Pool{New: func() any { return &SweepNode{} }},
	}
}

func (s *SweepStatus) newNode(item *SweepPoint) *SweepNode {
	n := s.pool.Get().(*SweepNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.SweepPoint = item
	n.SweepPoint.node = n
	return n
}

func (s *SweepStatus) returnNode(n *SweepNode) {
	n.SweepPoint.node = nil
	n.SweepPoint = nil // help the GC
	s.pool.Put(n)
}

func (s *SweepStatus) find(item *SweepPoint) (*SweepNode, int) {
	n := s.root
	for n != nil {
		cmp := item.CompareV(n.SweepPoint)
		if cmp < 0 {
			if n.left == nil {
				return n, -1
			}
			n = n.left
		} else if 0 < cmp {
			if n.right == nil {
				return n, 1
			}
			n = n.right
		} else {
			break
		}
	}
	return n, 0
}

func (s *SweepStatus) rebalance(n *SweepNode) {
	for {
		oheight := n.height
		if balance := n.balance(); balance == 2 {
			// Tree is excessively right-heavy, rotate it to the left.
			if n.right != nil && n.right.balance() < 0 {
				// Right tree is left-heavy, which would cause the next rotation to result in
				// overall left-heaviness. Rotate the right tree to the right to counteract this.
				n.right = n.right.rotateRight()
				n.right.right.updateHeight()
			}
			n = n.rotateLeft()
			n.left.updateHeight()
		} else if balance == -2 {
			// Tree is excessively left-heavy, rotate it to the right
			if n.left != nil && n.left.balance() > 0 {
				// The left tree is right-heavy, which would cause the next rotation to result in
				// overall right-heaviness. Rotate the left tree to the left to compensate.
				n.left = n.left.rotateLeft()
				n.left.left.updateHeight()
			}
			n = n.rotateRight()
			n.right.updateHeight()
		} else if balance < -2 || 2 < balance {
			panic("sweep status tree out of shape")
		}

		n.updateHeight()
		if n.parent == nil {
			s.root = n
			return
		}
		if oheight == n.height {
			return
		}
		n = n.parent
	}
}

func (s *SweepStatus) First() *SweepNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	return n
}

func (s *SweepStatus) Last() *SweepNode {
	if s.root == nil {
		return nil
	}
	n := s.root
	for n.right != nil {
		n = n.right
	}
	return n
}

// Find returns the node equal to item. May return nil.
func (s *SweepStatus) Find(item *SweepPoint) *SweepNode {
	n, cmp := s.find(item)
	if cmp == 0 {
		return n
	}
	return nil
}

func (s *SweepStatus) Insert(item *SweepPoint) *SweepNode {
	if s.root == nil {
		s.root = s.newNode(item)
		return s.root
	}

	rebalance := false
	n, cmp := s.find(item)
	if cmp < 0 {
		// lower
		n.left = s.newNode(item)
		n.left.parent = n
		rebalance = n.right == nil
		n = n.left
	} else if 0 < cmp {
		// higher
		n.right = s.newNode(item)
		n.right.parent = n
		rebalance = n.left == nil
		n = n.right
	} else {
		// equal, replace
		n.SweepPoint.node = nil
		n.SweepPoint = item
		n.SweepPoint.node = n
		return n
	}

	if rebalance {
		n.height++
		if n.parent != nil {
			s.rebalance(n.parent)
		}
	}
	return n
}

func (s *SweepStatus) Remove(n *SweepNode) {
	var o *SweepNode
	for {
		if n.height == 1 {
			o = n.parent
			if o != nil {
				o.swapChild(n, nil)
				s.rebalance(o)
			} else {
				s.root = nil
			}
			s.returnNode(n)
			return
		} else if n.right != nil {
			o = n.right
			for o.left != nil {
				o = o.left
			}
		} else if n.left != nil {
			o = n.left
			for o.right != nil {
				o = o.right
			}
		} else {
			panic("leaf node with height > 1")
		}
		n.SweepPoint, o.SweepPoint = o.SweepPoint, n.SweepPoint
		n.SweepPoint.node, o.SweepPoint.node = n, o
		n = o
	}
}
