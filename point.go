package boopy

import (
	"fmt"
	"math/big"
)

// MaxCoord is the largest magnitude an engine coordinate may have. With
// coordinates bounded by 2^29, the difference of two coordinates fits in 31
// bits and the cross product of two difference vectors stays below 2^61,
// within int64. All orientation predicates are therefore exact; only
// intersection points, whose numerators exceed 64 bits, go through big.Int.
const MaxCoord = 1 << 29

// Point is a position on the engine's integer grid. Equality is exact and
// ordering is lexicographic on (X, Y); there are no epsilon comparisons in
// the engine.
type Point struct {
	X, Y int64
}

// Equals returns true if p and q are the same grid position.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Compare orders points left to right, ties broken bottom to top.
func (p Point) Compare(q Point) int {
	if p.X != q.X {
		if p.X < q.X {
			return -1
		}
		return 1
	}
	if p.Y != q.Y {
		if p.Y < q.Y {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns true if p orders strictly before q.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// InRange returns true if both coordinates are within ±MaxCoord.
func (p Point) InRange() bool {
	return -MaxCoord <= p.X && p.X <= MaxCoord && -MaxCoord <= p.Y && p.Y <= MaxCoord
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// cross returns the perp dot product u×v, positive when v lies
// counter-clockwise from u. Exact for in-range coordinate differences.
func cross(u, v Point) int64 {
	return u.X*v.Y - u.Y*v.X
}

// area2 returns twice the signed area of triangle abc, positive when c lies
// to the left of the directed line ab.
func area2(a, b, c Point) int64 {
	return cross(b.Sub(a), c.Sub(a))
}

// mulDivRound returns a*b/den rounded to the nearest integer, half away from
// zero. The product a*b may exceed int64 so it is carried in a big.Int.
func mulDivRound(a, b, den int64) int64 {
	n := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	d := big.NewInt(den)
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	r.Abs(r).Lsh(r, 1)
	if r.CmpAbs(d) >= 0 {
		if (n.Sign() < 0) != (den < 0) {
			q.Sub(q, oneInt)
		} else {
			q.Add(q, oneInt)
		}
	}
	return q.Int64()
}

var oneInt = big.NewInt(1)

// intersectionPoint returns the crossing of non-parallel segments aL-aR and
// bL-bR, rounded to the nearest grid position.
func intersectionPoint(aL, aR, bL, bR Point) Point {
	da, db := aR.Sub(aL), bR.Sub(bL)
	den := cross(da, db)
	tn := cross(bL.Sub(aL), db)
	return Point{
		aL.X + mulDivRound(tn, da.X, den),
		aL.Y + mulDivRound(tn, da.Y, den),
	}
}

// between returns true if p lies strictly between a and b in lexicographic
// order. For points known to lie on the line through a and b this is the
// strict interior test of segment ab.
func between(p, a, b Point) bool {
	return a.Less(p) && p.Less(b)
}

// intersectSegments returns the interior points at which segments aL-aR and
// bL-bR must be split so that they no longer cross or overlap, each list
// ordered from left to right. Endpoints touching endpoints produce no
// splits; an endpoint on the interior of the other segment splits only the
// other segment; collinear overlapping segments are split at each other's
// endpoints so that the shared portion becomes a pair of equal fragments.
func intersectSegments(aL, aR, bL, bR Point) (aPts, bPts []Point) {
	d1 := area2(bL, bR, aL)
	d2 := area2(bL, bR, aR)
	if d1 == 0 && d2 == 0 {
		// collinear; lexicographic order equals the order along the line
		if aR.Compare(bL) <= 0 || bR.Compare(aL) <= 0 {
			return nil, nil // disjoint or touching at an endpoint
		}
		if between(bL, aL, aR) {
			aPts = append(aPts, bL)
		}
		if between(bR, aL, aR) {
			aPts = append(aPts, bR)
		}
		if between(aL, bL, bR) {
			bPts = append(bPts, aL)
		}
		if between(aR, bL, bR) {
			bPts = append(bPts, aR)
		}
		return aPts, bPts
	}

	d3 := area2(aL, aR, bL)
	d4 := area2(aL, aR, bR)
	if d1 == 0 && between(aL, bL, bR) {
		bPts = append(bPts, aL)
	}
	if d2 == 0 && between(aR, bL, bR) {
		bPts = append(bPts, aR)
	}
	if d3 == 0 && between(bL, aL, aR) {
		aPts = append(aPts, bL)
	}
	if d4 == 0 && between(bR, aL, aR) {
		aPts = append(aPts, bR)
	}
	if d1 != 0 && d2 != 0 && d3 != 0 && d4 != 0 &&
		(d1 > 0) != (d2 > 0) && (d3 > 0) != (d4 > 0) {
		z := intersectionPoint(aL, aR, bL, bR)
		if between(z, aL, aR) {
			aPts = append(aPts, z)
		}
		if between(z, bL, bR) {
			bPts = append(bPts, z)
		}
	}
	return aPts, bPts
}
