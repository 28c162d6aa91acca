package genworldgrid

import "github.com/Flokey82/genworldgrid/various"

// GeoDisasterChance is the chance of a disaster striking a tile based on
// the geographical properties of the tile.
type GeoDisasterChance struct {
	Earthquake float64 // 0.0-1.0
	Flood      float64 // 0.0-1.0
	Volcano    float64 // 0.0-1.0
	RockSlide  float64 // 0.0-1.0
}

// getGeoDisasterFunc returns a function that returns the disaster chances
// for a tile. The underlying fields are computed once up front.
func (m *Geo) getGeoDisasterFunc() func(int) GeoDisasterChance {
	earthquakeChance := m.getEarthquakeChance()
	floodChance := m.getFloodChance()
	volcanoEruptionChance := m.getVolcanoEruptionChance()
	rockSlideChance := m.getRockSlideAvalancheChance()
	return func(idx int) GeoDisasterChance {
		return GeoDisasterChance{
			Earthquake: earthquakeChance[idx],
			Flood:      floodChance[idx],
			Volcano:    volcanoEruptionChance[idx],
			RockSlide:  rockSlideChance[idx],
		}
	}
}

// getEarthquakeChance derives the earthquake chance from the plate
// collision intensity recorded at convergent boundaries.
func (m *Geo) getEarthquakeChance() []float64 {
	chance := make([]float64, len(m.Compression))
	_, maxCompression := minMax(m.Compression)
	if maxCompression == 0 {
		return chance
	}
	for idx, c := range m.Compression {
		chance[idx] = c / maxCompression
	}
	return chance
}

// getFloodChance combines river proximity with flatness: flat tiles next
// to a river flood, steep tiles drain.
func (m *Geo) getFloodChance() []float64 {
	numTiles := m.Width * m.Height
	chance := make([]float64, numTiles)

	var riverTiles []int
	for idx := range chance {
		if m.RiverID[idx] >= 0 {
			riverTiles = append(riverTiles, idx)
		}
	}
	if len(riverTiles) == 0 {
		return chance
	}

	steepness := m.GetSteepness()
	distRiver := m.assignDistanceField(riverTiles, make(map[int]bool))
	for idx := range chance {
		chance[idx] = (1 - steepness[idx]) * various.Clamp(1-distRiver[idx]/3, 0, 1)
	}
	return chance
}

// getVolcanoEruptionChance marks the tiles downhill of volcano features as
// endangered, with the danger fading as the terrain flattens.
func (m *Geo) getVolcanoEruptionChance() []float64 {
	var origins []int
	for _, f := range m.Features {
		if f.Type == FeatureTypeVolcano {
			origins = append(origins, m.tileIndex(f.X, f.Y))
		}
	}
	return m.getDownhillDisaster(origins, 0.05)
}

// getRockSlideAvalancheChance marks the tiles downhill of mountains as
// endangered by rock slides.
func (m *Geo) getRockSlideAvalancheChance() []float64 {
	var origins []int
	for idx, b := range m.Biomes {
		if b == BiomeMountain {
			origins = append(origins, idx)
		}
	}
	return m.getDownhillDisaster(origins, 0.1)
}

// getDownhillDisaster starts at the origin tiles and walks downhill until
// the terrain is too flat or we reach open water, accumulating danger that
// decays with the local steepness.
func (m *Geo) getDownhillDisaster(origins []int, steepnessLimit float64) []float64 {
	steepness := m.GetSteepness()
	downhill := m.GetDownhill()

	chance := make([]float64, m.Width*m.Height)
	for _, origin := range origins {
		idx := origin
		danger := 1.0
		for idx != -1 && steepness[idx] > steepnessLimit && m.Elevation[idx] >= oceanThreshold {
			chance[idx] += danger
			danger *= steepness[idx]
			idx = downhill[idx]
		}
		// The origin itself is always endangered, even on flat ground.
		if chance[origin] == 0 {
			chance[origin] = 1.0
		}
	}
	return chance
}
