package boopy

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/paulmach/orb"
)

// FromOrb quantizes an orb geometry onto the engine grid. Polygon and
// MultiPolygon follow the orb convention of a closed exterior ring followed
// by closed interior rings; interior rings become clockwise holes regardless
// of their orientation in the input. A bare Ring converts to a single outer
// boundary.
func FromOrb(g orb.Geometry, scale int64) (PolygonSet, error) {
	switch t := g.(type) {
	case orb.Ring:
		return FromOrb(orb.Polygon{t}, scale)
	case orb.Polygon:
		return FromOrb(orb.MultiPolygon{t}, scale)
	case orb.MultiPolygon:
		result := PolygonSet{}
		for _, poly := range t {
			for j, ring := range poly {
				coords := make([][2]float64, len(ring))
				for k, pt := range ring {
					coords[k] = [2]float64{pt[0], pt[1]}
				}
				p, err := Quantize([][][2]float64{coords}, scale)
				if err != nil {
					return nil, err
				}
				r := p[0]
				if hole := 0 < j; hole == r.CCW() {
					r = r.Reversed()
				}
				result = append(result, r)
			}
		}
		return result, nil
	default:
		return nil, &DegenerateGeometryError{-1, -1, fmt.Sprintf("unsupported geometry %T", g)}
	}
}

// ToOrb converts the set to an orb.MultiPolygon in caller coordinates at the
// given scale. Each clockwise hole attaches to the smallest
// counter-clockwise ring that contains it, matching the coverage counts the
// set was built with.
func (ps PolygonSet) ToOrb(scale int64) orb.MultiPolygon {
	type outerRing struct {
		ring Ring
		area *big.Int // absolute area, for smallest-container selection
	}
	var outers []outerRing
	var holes []Ring
	for _, r := range ps {
		if r.CCW() {
			outers = append(outers, outerRing{r, new(big.Int).Abs(r.SignedArea2())})
		} else {
			holes = append(holes, r)
		}
	}
	sort.Slice(outers, func(i, j int) bool { return outers[i].area.Cmp(outers[j].area) < 0 })

	polys := make([]orb.Polygon, len(outers))
	for i, o := range outers {
		polys[i] = orb.Polygon{toOrbRing(o.ring, scale)}
	}
	for _, h := range holes {
		for i, o := range outers {
			if w, on := ringWinding(o.ring, h[0]); w != 0 || on {
				polys[i] = append(polys[i], toOrbRing(h, scale))
				break
			}
		}
	}
	return orb.MultiPolygon(polys)
}

func toOrbRing(r Ring, scale int64) orb.Ring {
	ring := make(orb.Ring, 0, len(r)+1)
	for _, v := range r {
		ring = append(ring, orb.Point{float64(v.X) / float64(scale), float64(v.Y) / float64(scale)})
	}
	ring = append(ring, ring[0]) // orb rings are closed
	return ring
}
