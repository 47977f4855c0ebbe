package boopy

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ringWinding returns the winding number of r around p and whether p lies on
// the boundary of r. Exact integer crossing counting.
func ringWinding(r Ring, p Point) (w int, on bool) {
	for i, a := range r {
		b := r[(i+1)%len(r)]
		side := area2(a, b, p)
		if side == 0 {
			lo, hi := a, b
			if hi.Less(lo) {
				lo, hi = hi, lo
			}
			if !p.Less(lo) && !hi.Less(p) {
				return 0, true
			}
		}
		if a.Y <= p.Y && p.Y < b.Y && 0 < side {
			w++
		} else if b.Y <= p.Y && p.Y < a.Y && side < 0 {
			w--
		}
	}
	return w, false
}

// Contains reports whether p lies inside the set under the nonzero winding
// rule; boundary points count as inside. For repeated queries over a large
// set build an Index instead.
func (ps PolygonSet) Contains(p Point) bool {
	w := 0
	for _, r := range ps {
		rw, on := ringWinding(r, p)
		if on {
			return true
		}
		w += rw
	}
	return w != 0
}

type ringEntry struct {
	rect rtreego.Rect
	ring int
}

func (e *ringEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is an r-tree over a set's ring bounding boxes, pruning the rings a
// point or nesting query has to visit. The set must not be mutated while
// the index is in use.
type Index struct {
	set  PolygonSet
	tree *rtreego.Rtree
}

// NewIndex builds an index over the rings of p.
func NewIndex(p PolygonSet) *Index {
	tree := rtreego.NewTree(2, 25, 50)
	for i, r := range p {
		tree.Insert(&ringEntry{ringRect(r), i})
	}
	return &Index{p, tree}
}

func ringRect(r Ring) rtreego.Rect {
	min, max := PolygonSet{r}.Bounds()
	rect, _ := rtreego.NewRect(
		rtreego.Point{float64(min.X) - 0.5, float64(min.Y) - 0.5},
		[]float64{float64(max.X-min.X) + 1.0, float64(max.Y-min.Y) + 1.0})
	return rect
}

// Contains reports whether p lies inside the indexed set, boundary points
// counting as inside.
func (ix *Index) Contains(p Point) bool {
	w := 0
	stab := rtreego.Point{float64(p.X), float64(p.Y)}.ToRect(0.5)
	for _, s := range ix.tree.SearchIntersect(stab) {
		rw, on := ringWinding(ix.set[s.(*ringEntry).ring], p)
		if on {
			return true
		}
		w += rw
	}
	return w != 0
}

// Validate checks that the set is well formed: every ring has at least three
// distinct vertices, no zero-length edges, no repeated vertices, coordinates
// in range, and every clockwise ring (hole) lies inside some
// counter-clockwise ring. Ring self-intersection is not checked here;
// Normalize resolves intersecting geometry.
func (ps PolygonSet) Validate() error {
	if err := ps.validate(-1); err != nil {
		return err
	}
	for i, r := range ps {
		vs := make([]Point, len(r))
		copy(vs, r)
		sort.Slice(vs, func(a, b int) bool { return vs[a].Less(vs[b]) })
		for j := 1; j < len(vs); j++ {
			if vs[j].Equals(vs[j-1]) {
				return &DegenerateGeometryError{-1, i, "repeated vertex " + vs[j].String()}
			}
		}
	}

	outers := PolygonSet{}
	for _, r := range ps {
		if r.CCW() {
			outers = append(outers, r)
		}
	}
	var ix *Index
	for i, r := range ps {
		if r.CCW() {
			continue
		}
		if ix == nil {
			ix = NewIndex(outers)
		}
		if !ix.Contains(r[0]) {
			return &DegenerateGeometryError{-1, i, "hole outside every outer boundary"}
		}
	}
	return nil
}
