package genworldgrid

import (
	"fmt"
	"log"
	"time"

	"github.com/Flokey82/genworldgrid/noise"
)

// Seed offsets for the individual RNG streams. Each stochastic concern
// draws from its own stream so that changing one phase never shifts the
// random decisions of another.
const (
	seedOffsetMoisture    = 1
	seedOffsetRiverOrder  = 2
	seedOffsetRiverJitter = 3
	seedOffsetFeatures    = 4
	seedOffsetNaming      = 5
	seedOffsetWind        = 6
)

// oceanThreshold is the elevation below which a tile counts as open water
// for moisture proximity and river termination.
const oceanThreshold = 0.2

// dirs4 lists the 4-connected neighbor offsets in fixed iteration order.
// The order is part of the determinism contract.
var dirs4 = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Geo holds the generated world grid and all derived overlays.
//
// The five tile fields (Elevation, Temperature, Moisture, PlateID, Biomes)
// are flat slices indexed by y*Width+x and always share the same length.
// Rivers and Features reference tile coordinates but never mutate the
// tile fields.
type Geo struct {
	Seed   int64
	Width  int
	Height int

	Elevation   []float64 // Tile elevation in [0,1]
	Temperature []float64 // Tile temperature in °C (may be negative)
	Moisture    []float64 // Tile moisture, effectively [0,1]
	PlateID     []int     // Tile to plate mapping
	Biomes      []Biome   // Tile biome classification
	Compression []float64 // Plate collision intensity at boundary tiles

	Plates   []*Plate           // Generated tectonic plates
	Rivers   []*River           // Carved river network
	Features []*RegionalFeature // Placed regional features

	RiverID []int        // Tile to river mapping (-1 if no river claimed the tile)
	WindVec [][2]float64 // Tile prevailing wind vector

	Landmasses    []int       // Tile to landmass mapping (-1 for water)
	LandmassSize  map[int]int // Landmass ID to number of tiles
	Waterbodies   []int       // Tile to waterbody mapping (-1 for land)
	WaterbodySize map[int]int // Waterbody ID to number of tiles

	BiomeRegions    []int       // Tile to connected-biome-region mapping
	BiomeRegionSize map[int]int // Biome region ID to number of tiles

	NumRivers            int     // Number of rivers we attempt to carve
	FeatureDensity       float64 // Multiplier for the regional feature target count
	MinFeatureSeparation float64 // Minimum distance between regional features

	noise *noise.Noise // Coherent noise (wind perturbation)
}

func newGeo(seed int64, cfg *GeoConfig) (*Geo, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid world dimensions %dx%d", cfg.Width, cfg.Height)
	}
	numTiles := cfg.Width * cfg.Height
	return &Geo{
		Seed:                 seed,
		Width:                cfg.Width,
		Height:               cfg.Height,
		Elevation:            make([]float64, numTiles),
		Temperature:          make([]float64, numTiles),
		Moisture:             make([]float64, numTiles),
		PlateID:              make([]int, numTiles),
		Biomes:               make([]Biome, numTiles),
		Compression:          make([]float64, numTiles),
		RiverID:              initIntSlice(numTiles),
		NumRivers:            cfg.NumRivers,
		FeatureDensity:       cfg.FeatureDensity,
		MinFeatureSeparation: cfg.MinFeatureSeparation,
		noise:                noise.NewNoise(6, 2.0/3.0, seed),
	}, nil
}

// generateGeology runs the generation pipeline. The phases are strictly
// sequential: each phase only reads the outputs of earlier phases and
// never mutates them.
func (m *Geo) generateGeology() {
	// Generate tectonic plates.
	start := time.Now()
	m.generatePlates()
	log.Println("Done plates in ", time.Since(start).String())

	// Calculate elevation.
	start = time.Now()
	m.assignTileElevation()
	log.Println("Done elevation in ", time.Since(start).String())

	// Assign temperature.
	start = time.Now()
	m.assignTileTemperature()
	log.Println("Done temperature in ", time.Since(start).String())

	// Assign moisture.
	start = time.Now()
	m.assignTileMoisture()
	log.Println("Done moisture in ", time.Since(start).String())

	// Classify biomes.
	start = time.Now()
	m.assignBiomes()
	log.Println("Done biomes in ", time.Since(start).String())

	// Carve rivers.
	start = time.Now()
	m.generateRivers()
	log.Println("Done rivers in ", time.Since(start).String())

	// Place regional features.
	start = time.Now()
	m.placeFeatures()
	log.Println("Done features in ", time.Since(start).String())

	// Calculate wind vectors.
	start = time.Now()
	m.assignWindVectors()
	log.Println("Done wind vectors in ", time.Since(start).String())

	// Identify landmasses and waterbodies.
	start = time.Now()
	m.assignLandmasses()
	m.assignWaterbodies()
	log.Println("Done landmasses / waterbodies in ", time.Since(start).String())

	// Identify connected biome regions.
	start = time.Now()
	m.assignBiomeRegions()
	log.Println("Done biome regions in ", time.Since(start).String())
}

// tileIndex returns the flat slice index of the tile at (x, y).
func (m *Geo) tileIndex(x, y int) int {
	return y*m.Width + x
}

// tileCoords returns the (x, y) coordinate of the given flat tile index.
func (m *Geo) tileCoords(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// inBounds returns true if (x, y) addresses a tile on the grid.
func (m *Geo) inBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// latitude normalizes row y to [-1, 1] with 0 at the vertical midpoint.
func (m *Geo) latitude(y int) float64 {
	if m.Height <= 1 {
		return 0
	}
	return 2*float64(y)/float64(m.Height-1) - 1
}

// ElevationAt returns the elevation of the tile at (x, y).
func (m *Geo) ElevationAt(x, y int) float64 {
	return m.Elevation[m.tileIndex(x, y)]
}

// TemperatureAt returns the temperature of the tile at (x, y) in °C.
func (m *Geo) TemperatureAt(x, y int) float64 {
	return m.Temperature[m.tileIndex(x, y)]
}

// MoistureAt returns the moisture of the tile at (x, y).
func (m *Geo) MoistureAt(x, y int) float64 {
	return m.Moisture[m.tileIndex(x, y)]
}

// BiomeAt returns the biome of the tile at (x, y).
func (m *Geo) BiomeAt(x, y int) Biome {
	return m.Biomes[m.tileIndex(x, y)]
}

// PlateAt returns the plate owning the tile at (x, y).
func (m *Geo) PlateAt(x, y int) *Plate {
	return m.Plates[m.PlateID[m.tileIndex(x, y)]]
}

// getTileNeighbors appends the in-bounds 4-connected neighbors of the given
// tile to out and returns it. The neighbor order is fixed.
func (m *Geo) getTileNeighbors(out []int, idx int) []int {
	out = out[:0]
	x, y := m.tileCoords(idx)
	for _, d := range dirs4 {
		nx, ny := x+d[0], y+d[1]
		if m.inBounds(nx, ny) {
			out = append(out, m.tileIndex(nx, ny))
		}
	}
	return out
}
