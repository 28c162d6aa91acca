package genworldgrid

import (
	"math"

	"github.com/Flokey82/genworldgrid/noise"
	"github.com/Flokey82/genworldgrid/various"
)

const (
	// elevationBaseWeight blends the plate base elevation against the
	// layered noise contribution.
	elevationBaseWeight  = 0.7
	elevationNoiseWeight = 0.3

	// maxCollisionUplift caps the extra elevation a convergent plate
	// boundary can contribute.
	maxCollisionUplift = 0.3
)

// assignTileElevation combines the plate base elevation, three octaves of
// noise and boundary collision uplift into a height field clamped to [0,1].
//
// The layered noise alone produces plausible micro-terrain but no macro
// structure; the plate base plus boundary uplift injects continent-scale
// structure (oceans vs. landmasses, mountain belts at convergent
// boundaries) without a full plate-dynamics simulation.
func (m *Geo) assignTileElevation() {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.tileIndex(x, y)
			plate := m.Plates[m.PlateID[idx]]
			base := plate.Type.BaseElevation()
			n := noise.Octaves(m.Seed, int32(x), int32(y))
			elev := elevationBaseWeight*base + elevationNoiseWeight*n

			uplift, compression := m.collisionUplift(x, y, plate)
			m.Compression[idx] = compression
			m.Elevation[idx] = various.Clamp(elev+uplift, 0, 1)
		}
	}
}

// collisionUplift returns the collision uplift for the tile at (x, y) and
// the raw collision intensity at that boundary.
//
// For every 4-connected neighbor on a different plate we check whether our
// plate drifts toward the neighbor plate's center. If so, the boundary is
// convergent and contributes min(maxCollisionUplift, intensity*0.3), where
// intensity is the squared drift difference over 4. We take the MAXIMUM
// contribution across the colliding directions rather than the sum, so a
// corner tile bordering several colliding plates is not uplifted past the
// single-boundary maximum.
func (m *Geo) collisionUplift(x, y int, plate *Plate) (float64, float64) {
	var uplift, compression float64
	for _, d := range dirs4 {
		nx, ny := x+d[0], y+d[1]
		if !m.inBounds(nx, ny) {
			continue
		}
		otherID := m.PlateID[m.tileIndex(nx, ny)]
		if otherID == plate.ID {
			continue
		}
		other := m.Plates[otherID]

		// Direction from our plate center toward the other plate center.
		toOther := various.Sub2(
			[2]float64{float64(other.CenterX), float64(other.CenterY)},
			[2]float64{float64(plate.CenterX), float64(plate.CenterY)},
		)
		if various.Dot2([2]float64{plate.Drift.X, plate.Drift.Y}, toOther) <= 0 {
			continue // Divergent or shearing boundary, no uplift.
		}

		dx := plate.Drift.X - other.Drift.X
		dy := plate.Drift.Y - other.Drift.Y
		intensity := (dx*dx + dy*dy) / 4
		if u := math.Min(maxCollisionUplift, intensity*0.3); u > uplift {
			uplift = u
		}
		if intensity > compression {
			compression = intensity
		}
	}
	return uplift, compression
}
