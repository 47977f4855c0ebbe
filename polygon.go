package boopy

import "math/big"

// Ring is a closed polygonal boundary given as a cyclic sequence of at least
// three distinct vertices; the edge from the last vertex back to the first
// is implied. Counter-clockwise rings are outer boundaries and clockwise
// rings are holes.
type Ring []Point

// SignedArea2 returns twice the signed area of the ring in engine units,
// positive for counter-clockwise rings. Individual terms fit int64 under
// the MaxCoord bound but their sum does not, so it accumulates in a big.Int.
func (r Ring) SignedArea2() *big.Int {
	sum := new(big.Int)
	t := new(big.Int)
	for i, p := range r {
		q := r[(i+1)%len(r)]
		sum.Add(sum, t.SetInt64(p.X*q.Y-q.X*p.Y))
	}
	return sum
}

// CCW returns true if the ring winds counter-clockwise.
func (r Ring) CCW() bool {
	return r.SignedArea2().Sign() > 0
}

// Reversed returns the ring with opposite orientation.
func (r Ring) Reversed() Ring {
	s := make(Ring, len(r))
	for i, p := range r {
		s[len(r)-1-i] = p
	}
	return s
}

// Clone returns a deep copy of the ring.
func (r Ring) Clone() Ring {
	s := make(Ring, len(r))
	copy(s, r)
	return s
}

// PolygonSet is an unordered collection of rings forming a planar region.
// Coverage is counted with the nonzero winding rule: a point is inside the
// set when the winding numbers of all rings around it sum to a nonzero
// value, so clockwise rings carve holes out of counter-clockwise boundaries.
type PolygonSet []Ring

// Empty returns true if the set contains no rings.
func (p PolygonSet) Empty() bool {
	return len(p) == 0
}

// Clone returns a deep copy of the set.
func (p PolygonSet) Clone() PolygonSet {
	q := make(PolygonSet, len(p))
	for i, r := range p {
		q[i] = r.Clone()
	}
	return q
}

// SignedArea2 returns twice the signed area of the set in engine units,
// holes counting negative.
func (p PolygonSet) SignedArea2() *big.Int {
	sum := new(big.Int)
	for _, r := range p {
		sum.Add(sum, r.SignedArea2())
	}
	return sum
}

// Area returns the area of the set in caller units for the given scale of
// engine sub-units per caller unit.
func (p PolygonSet) Area(scale int64) float64 {
	a := new(big.Float).SetInt(p.SignedArea2())
	s := new(big.Float).SetInt64(scale)
	a.Quo(a, new(big.Float).Mul(s, s))
	a.Quo(a, big.NewFloat(2.0))
	f, _ := a.Float64()
	return f
}

// Bounds returns the lower-left and upper-right corners of the set's
// bounding rectangle. Both are zero when the set is empty.
func (p PolygonSet) Bounds() (min, max Point) {
	first := true
	for _, r := range p {
		for _, v := range r {
			if first {
				min, max = v, v
				first = false
				continue
			}
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if max.X < v.X {
				max.X = v.X
			}
			if max.Y < v.Y {
				max.Y = v.Y
			}
		}
	}
	return min, max
}

// validate performs the cheap degeneracy checks required before a sweep:
// coordinate range, minimum vertex count, and zero-length edges. Rings may
// still self-intersect; Normalize resolves those.
func (p PolygonSet) validate(operand int) error {
	for i, r := range p {
		if len(r) < 3 {
			return &DegenerateGeometryError{operand, i, "fewer than 3 vertices"}
		}
		for j, v := range r {
			if !v.InRange() {
				return &DegenerateGeometryError{operand, i, "coordinate " + v.String() + " out of range"}
			}
			if v.Equals(r[(j+1)%len(r)]) {
				return &DegenerateGeometryError{operand, i, "zero-length edge at " + v.String()}
			}
		}
	}
	return nil
}
