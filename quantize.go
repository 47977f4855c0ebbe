package boopy

import (
	"fmt"
	"math"
)

// Quantize converts caller coordinates to the engine grid. scale is the
// number of engine sub-units per caller coordinate unit and trades precision
// against the supported coordinate range: quantization rounds each
// coordinate to the nearest sub-unit, half away from zero, so positions move
// by at most 1/(2*scale) caller units. Vertices that collapse onto their
// predecessor at this scale are dropped, as is a closing vertex equal to the
// first. Coordinates beyond ±MaxCoord sub-units and rings left with fewer
// than three vertices are rejected with DegenerateGeometryError.
func Quantize(rings [][][2]float64, scale int64) (PolygonSet, error) {
	if scale <= 0 {
		return nil, &DegenerateGeometryError{-1, -1, fmt.Sprintf("scale %d is not positive", scale)}
	}
	p := make(PolygonSet, 0, len(rings))
	for i, ring := range rings {
		r := make(Ring, 0, len(ring))
		for _, v := range ring {
			pt := Point{quantizeCoord(v[0], scale), quantizeCoord(v[1], scale)}
			if !pt.InRange() {
				return nil, &DegenerateGeometryError{-1, i, fmt.Sprintf("coordinate (%g,%g) out of range at scale %d", v[0], v[1], scale)}
			}
			if 0 < len(r) && pt.Equals(r[len(r)-1]) {
				continue
			}
			r = append(r, pt)
		}
		if 1 < len(r) && r[0].Equals(r[len(r)-1]) {
			r = r[:len(r)-1]
		}
		if len(r) < 3 {
			return nil, &DegenerateGeometryError{-1, i, "fewer than 3 distinct vertices"}
		}
		p = append(p, r)
	}
	return p, nil
}

func quantizeCoord(f float64, scale int64) int64 {
	return int64(math.Round(f * float64(scale)))
}

// Unquantize converts a polygon set back to caller coordinates at the given
// scale.
func Unquantize(p PolygonSet, scale int64) [][][2]float64 {
	rings := make([][][2]float64, len(p))
	for i, r := range p {
		ring := make([][2]float64, len(r))
		for j, v := range r {
			ring[j] = [2]float64{float64(v.X) / float64(scale), float64(v.Y) / float64(scale)}
		}
		rings[i] = ring
	}
	return rings
}
