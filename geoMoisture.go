package genworldgrid

import (
	"math"

	"github.com/Flokey82/genworldgrid/noise"
)

const (
	// moistureSearchRadius bounds the search for the nearest water tile.
	moistureSearchRadius = 10
	// moistureNoiseWeight / moistureWaterWeight blend the low frequency
	// noise component against the water proximity component.
	moistureNoiseWeight = 0.6
	moistureWaterWeight = 0.4
)

// assignTileMoisture derives the moisture field from low frequency noise
// blended with proximity to open water.
//
// NOTE: The water proximity search is O(radius²) per tile, which is fine
// for the default radius but a scaling risk on very large grids. A distance
// transform would produce the same values cheaper if that ever bites.
func (m *Geo) assignTileMoisture() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.tileIndex(x, y)
			// The noise component uses a distinct seed stream and quarter
			// resolution coordinates (integer division), giving coarse
			// 4x4 patches of equal value.
			n := noise.Uniform(m.Seed+seedOffsetMoisture, int32(x/4), int32(y/4))
			m.Moisture[idx] = moistureNoiseWeight*n + moistureWaterWeight*m.waterProximity(x, y)
		}
	}
}

// waterProximity returns 1.0 if the tile itself is open water, otherwise a
// value falling off with the distance to the nearest water tile within the
// search radius, floored at 0.1.
func (m *Geo) waterProximity(x, y int) float64 {
	if m.Elevation[m.tileIndex(x, y)] < oceanThreshold {
		return 1.0
	}
	nearest := math.Inf(1)
	for dy := -moistureSearchRadius; dy <= moistureSearchRadius; dy++ {
		for dx := -moistureSearchRadius; dx <= moistureSearchRadius; dx++ {
			nx, ny := x+dx, y+dy
			if !m.inBounds(nx, ny) {
				continue
			}
			if m.Elevation[m.tileIndex(nx, ny)] >= oceanThreshold {
				continue
			}
			if d := math.Sqrt(float64(dx*dx + dy*dy)); d < nearest {
				nearest = d
			}
		}
	}
	if math.IsInf(nearest, 1) {
		return 0.1
	}
	return math.Max(0.1, 1-nearest/moistureSearchRadius)
}
