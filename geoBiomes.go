package genworldgrid

import "container/list"

// Biome is a classification tag summarizing a tile's climate and terrain.
type Biome int

const (
	BiomeOcean Biome = iota
	BiomeLake
	BiomeMountain
	BiomeVolcanic
	BiomeHills
	BiomeTundra
	BiomeTaiga
	BiomeDesert
	BiomeJungle
	BiomeSavanna
	BiomeSwamp
	BiomeForest
	BiomeGrassland
)

// String implements the stringer interface.
func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "ocean"
	case BiomeLake:
		return "lake"
	case BiomeMountain:
		return "mountain"
	case BiomeVolcanic:
		return "volcanic"
	case BiomeHills:
		return "hills"
	case BiomeTundra:
		return "tundra"
	case BiomeTaiga:
		return "taiga"
	case BiomeDesert:
		return "desert"
	case BiomeJungle:
		return "jungle"
	case BiomeSavanna:
		return "savanna"
	case BiomeSwamp:
		return "swamp"
	case BiomeForest:
		return "forest"
	case BiomeGrassland:
		return "grassland"
	}
	return "unknown"
}

// IsWater returns true for ocean and lake biomes.
func (b Biome) IsWater() bool {
	return b == BiomeOcean || b == BiomeLake
}

// classifyBiome maps an (elevation, temperature, moisture) triple to a
// biome. The rule ORDER is a contract: several rules can match the same
// triple and only the first match is authoritative, so do not reorder.
func classifyBiome(elevation, temperature, moisture float64) Biome {
	switch {
	case elevation < 0.15:
		return BiomeOcean
	case elevation < 0.2:
		return BiomeLake
	case elevation > 0.8:
		if temperature > 25 && moisture > 0.6 {
			return BiomeVolcanic
		}
		return BiomeMountain
	case elevation > 0.6:
		if temperature > 25 && moisture > 0.6 {
			return BiomeVolcanic
		}
		return BiomeHills
	case temperature < 0:
		return BiomeTundra
	case temperature < 10:
		return BiomeTaiga
	case temperature > 25 && moisture < 0.3:
		return BiomeDesert
	case temperature > 22:
		if moisture > 0.7 {
			return BiomeJungle
		}
		return BiomeSavanna
	case moisture > 0.8:
		return BiomeSwamp
	case moisture > 0.6:
		return BiomeForest
	}
	return BiomeGrassland
}

// assignBiomes classifies every tile from the three scalar fields.
func (m *Geo) assignBiomes() {
	for i := range m.Biomes {
		m.Biomes[i] = classifyBiome(m.Elevation[i], m.Temperature[i], m.Moisture[i])
	}
}

// assignBiomeRegions identifies connected regions with the same biome.
// This is useful to determine place names, impact on pathfinding
// (navigating around difficult terrain), etc.
func (m *Geo) assignBiomeRegions() {
	m.BiomeRegions = m.identifyBiomeRegions()

	regSize := make(map[int]int)
	for _, lm := range m.BiomeRegions {
		if lm >= 0 {
			regSize[lm]++
		}
	}
	m.BiomeRegionSize = regSize
}

// identifyBiomeRegions flood fills connected tiles with the same biome.
// The first tile of each region (in scan order) serves as its representative ID.
func (m *Geo) identifyBiomeRegions() []int {
	biomeToTiles := initIntSlice(m.Width * m.Height)

	outTiles := make([]int, 0, 4)
	floodFill := func(id int) {
		queue := list.New()
		biome := m.Biomes[id]
		queue.PushBack(id)
		biomeToTiles[id] = id

		for queue.Len() > 0 {
			e := queue.Front()
			if e == nil {
				break
			}
			queue.Remove(e)
			nbID := e.Value.(int)

			for _, n := range m.getTileNeighbors(outTiles, nbID) {
				if biomeToTiles[n] == -1 && m.Biomes[n] == biome {
					queue.PushBack(n)
					biomeToTiles[n] = id
				}
			}
		}
	}

	for id := 0; id < m.Width*m.Height; id++ {
		if biomeToTiles[id] == -1 {
			floodFill(id)
		}
	}
	return biomeToTiles
}
