package genworldgrid

import (
	"container/list"
	"math"
)

// GetSteepness returns the per-tile steepness as the maximum elevation
// delta to any 4-connected neighbor, so a value in [0, 1].
func (m *Geo) GetSteepness() []float64 {
	steepness := make([]float64, m.Width*m.Height)
	outTiles := make([]int, 0, 4)
	for idx := range steepness {
		var maxDelta float64
		for _, n := range m.getTileNeighbors(outTiles, idx) {
			if d := math.Abs(m.Elevation[idx] - m.Elevation[n]); d > maxDelta {
				maxDelta = d
			}
		}
		steepness[idx] = maxDelta
	}
	return steepness
}

// GetDownhill returns for each tile the index of the lowest 4-connected
// neighbor with a strictly lower elevation, or -1 if the tile is a sink.
func (m *Geo) GetDownhill() []int {
	downhill := initIntSlice(m.Width * m.Height)
	outTiles := make([]int, 0, 4)
	for idx := range downhill {
		lowest := m.Elevation[idx]
		for _, n := range m.getTileNeighbors(outTiles, idx) {
			if m.Elevation[n] < lowest {
				lowest = m.Elevation[n]
				downhill[idx] = n
			}
		}
	}
	return downhill
}

// assignDistanceField computes the distance to the tiles in seeds using a
// breadth-first search. The distance is in graph steps. Tiles in stop are
// not traversed, which can be used to limit the search to land or water.
// Unreachable tiles are set to +Inf.
func (m *Geo) assignDistanceField(seeds []int, stop map[int]bool) []float64 {
	numTiles := m.Width * m.Height
	dist := make([]float64, numTiles)
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	queue := list.New()
	for _, s := range seeds {
		dist[s] = 0
		queue.PushBack(s)
	}

	outTiles := make([]int, 0, 4)
	for queue.Len() > 0 {
		e := queue.Front()
		queue.Remove(e)
		idx := e.Value.(int)
		for _, n := range m.getTileNeighbors(outTiles, idx) {
			if !math.IsInf(dist[n], 1) || stop[n] {
				continue
			}
			dist[n] = dist[idx] + 1
			queue.PushBack(n)
		}
	}
	return dist
}

// assignLandmasses identifies connected land areas (tiles whose biome is
// not water) and notes their sizes.
func (m *Geo) assignLandmasses() {
	m.Landmasses = m.floodFillConnected(func(idx int) bool {
		return !m.Biomes[idx].IsWater()
	})
	sizes := make(map[int]int)
	for _, lm := range m.Landmasses {
		if lm >= 0 {
			sizes[lm]++
		}
	}
	m.LandmassSize = sizes
}

// assignWaterbodies identifies connected water areas (ocean and lake
// biomes) and notes their sizes.
func (m *Geo) assignWaterbodies() {
	m.Waterbodies = m.floodFillConnected(func(idx int) bool {
		return m.Biomes[idx].IsWater()
	})
	sizes := make(map[int]int)
	for _, wb := range m.Waterbodies {
		if wb >= 0 {
			sizes[wb]++
		}
	}
	m.WaterbodySize = sizes
}

// floodFillConnected assigns a representative ID (the lowest member tile
// index in scan order) to every tile for which include returns true, and
// -1 to all other tiles.
func (m *Geo) floodFillConnected(include func(int) bool) []int {
	numTiles := m.Width * m.Height
	ids := initIntSlice(numTiles)

	outTiles := make([]int, 0, 4)
	for start := 0; start < numTiles; start++ {
		if ids[start] != -1 || !include(start) {
			continue
		}
		queue := list.New()
		queue.PushBack(start)
		ids[start] = start
		for queue.Len() > 0 {
			e := queue.Front()
			queue.Remove(e)
			idx := e.Value.(int)
			for _, n := range m.getTileNeighbors(outTiles, idx) {
				if ids[n] == -1 && include(n) {
					ids[n] = start
					queue.PushBack(n)
				}
			}
		}
	}
	return ids
}

// TileProperty aggregates everything downstream consumers (settlement
// placement, spawning, story generation) want to know about a tile.
type TileProperty struct {
	X, Y               int
	Elevation          float64 // 0.0-1.0
	Steepness          float64 // 0.0-1.0
	Biome              Biome
	Temperature        float64 // in °C
	Moisture           float64
	DistanceToCoast    float64 // graph distance to the nearest water tile
	DistanceToMountain float64 // graph distance to the nearest mountain tile
	DistanceToRiver    float64 // graph distance to the nearest river tile
	DistanceToVolcano  float64 // graph distance to the nearest volcano feature
	Danger             GeoDisasterChance
	OnRiver            bool
	OnIsland           bool
}

// getTilePropertyFunc returns a function that returns the properties of a
// tile. The distance fields are computed once up front, so hold on to the
// returned function when querying many tiles.
func (m *Geo) getTilePropertyFunc() func(int) TileProperty {
	steepness := m.GetSteepness()
	disasterFunc := m.getGeoDisasterFunc()

	var waterTiles, mountainTiles, riverTiles, volcanoTiles []int
	for idx := range m.Biomes {
		if m.Biomes[idx].IsWater() {
			waterTiles = append(waterTiles, idx)
		}
		if m.Biomes[idx] == BiomeMountain || m.Biomes[idx] == BiomeVolcanic {
			mountainTiles = append(mountainTiles, idx)
		}
		if m.RiverID[idx] >= 0 {
			riverTiles = append(riverTiles, idx)
		}
	}
	for _, f := range m.Features {
		if f.Type == FeatureTypeVolcano {
			volcanoTiles = append(volcanoTiles, m.tileIndex(f.X, f.Y))
		}
	}

	noStop := make(map[int]bool)
	distCoast := m.assignDistanceField(waterTiles, noStop)
	distMountain := m.assignDistanceField(mountainTiles, noStop)
	distRiver := m.assignDistanceField(riverTiles, noStop)
	distVolcano := m.assignDistanceField(volcanoTiles, noStop)

	return func(idx int) TileProperty {
		x, y := m.tileCoords(idx)
		lm := m.Landmasses[idx]
		return TileProperty{
			X:                  x,
			Y:                  y,
			Elevation:          m.Elevation[idx],
			Steepness:          steepness[idx],
			Biome:              m.Biomes[idx],
			Temperature:        m.Temperature[idx],
			Moisture:           m.Moisture[idx],
			DistanceToCoast:    distCoast[idx],
			DistanceToMountain: distMountain[idx],
			DistanceToRiver:    distRiver[idx],
			DistanceToVolcano:  distVolcano[idx],
			Danger:             disasterFunc(idx),
			OnRiver:            m.RiverID[idx] >= 0,
			OnIsland:           lm >= 0 && m.LandmassSize[lm] < 15,
		}
	}
}
