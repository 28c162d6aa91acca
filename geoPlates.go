package genworldgrid

import (
	"math/rand"

	"github.com/Flokey82/go_gens/utils"
	"github.com/Flokey82/go_gens/vectors"
)

// PlateType classifies a tectonic plate.
type PlateType int

const (
	PlateTypeOceanic PlateType = iota
	PlateTypeContinental
)

// String implements the stringer interface.
func (t PlateType) String() string {
	switch t {
	case PlateTypeOceanic:
		return "oceanic"
	case PlateTypeContinental:
		return "continental"
	}
	return "unknown"
}

// BaseElevation returns the base elevation contributed by a plate of this type.
func (t PlateType) BaseElevation() float64 {
	if t == PlateTypeContinental {
		return 0.5
	}
	return 0.15
}

// Plate represents a tectonic plate. Tile membership is not stored on the
// plate; it is derived from the PlateID grid, which is the authoritative
// mapping.
type Plate struct {
	ID      int          // Dense plate index
	CenterX int          // Plate center (tile coordinates)
	CenterY int
	Drift   vectors.Vec2 // Drift direction and speed, components in [-0.5,0.5]
	Type    PlateType
}

// numPlatesFor returns the number of plates for a grid of the given size.
func numPlatesFor(width, height int) int {
	return utils.Max(4, width*height/10000)
}

// generatePlates creates the tectonic plates and assigns every tile to its
// nearest plate center (Voronoi-style, squared euclidean distance, ties
// broken by the lowest plate index).
func (m *Geo) generatePlates() {
	numPlates := numPlatesFor(m.Width, m.Height)

	// All plate parameters are drawn from a single RNG stream seeded with
	// the world seed, in fixed order.
	rng := rand.New(rand.NewSource(m.Seed))
	m.Plates = make([]*Plate, numPlates)
	for i := range m.Plates {
		p := &Plate{
			ID:      i,
			CenterX: rng.Intn(m.Width),
			CenterY: rng.Intn(m.Height),
			Drift: vectors.Vec2{
				X: rng.Float64() - 0.5,
				Y: rng.Float64() - 0.5,
			},
		}
		// 70% continental, 30% oceanic.
		if rng.Float64() < 0.7 {
			p.Type = PlateTypeContinental
		} else {
			p.Type = PlateTypeOceanic
		}
		m.Plates[i] = p
	}

	// Voronoi assignment.
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			best := 0
			bestDist := distSquared(x, y, m.Plates[0].CenterX, m.Plates[0].CenterY)
			for i := 1; i < numPlates; i++ {
				if d := distSquared(x, y, m.Plates[i].CenterX, m.Plates[i].CenterY); d < bestDist {
					best = i
					bestDist = d
				}
			}
			m.PlateID[m.tileIndex(x, y)] = best
		}
	}
}

// distSquared returns the squared euclidean distance between two tiles.
func distSquared(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
