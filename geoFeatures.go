package genworldgrid

import (
	"math"
	"math/rand"

	"github.com/Flokey82/genworldgrid/various"
	"github.com/Flokey82/go_gens/genlanguage"
	"github.com/Flokey82/go_gens/utils"
)

// FeatureType identifies a kind of regional feature. Each type carries its
// rarity weight and elevation band as associated data.
type FeatureType int

const (
	FeatureTypeVolcano FeatureType = iota
	FeatureTypeMagicZone
	FeatureTypeSubmergedCity
	FeatureTypeAncientRuins
	FeatureTypeCrystalCave
)

// featureTypes lists all feature types in fixed order. The order matters:
// the rarity bag is built from it, so reordering would change placement.
var featureTypes = []FeatureType{
	FeatureTypeVolcano,
	FeatureTypeMagicZone,
	FeatureTypeSubmergedCity,
	FeatureTypeAncientRuins,
	FeatureTypeCrystalCave,
}

// String implements the stringer interface.
func (t FeatureType) String() string {
	switch t {
	case FeatureTypeVolcano:
		return "volcano"
	case FeatureTypeMagicZone:
		return "magic zone"
	case FeatureTypeSubmergedCity:
		return "submerged city"
	case FeatureTypeAncientRuins:
		return "ancient ruins"
	case FeatureTypeCrystalCave:
		return "crystal cave"
	}
	return "unknown"
}

// Rarity returns the rarity weight of the feature type. The weighted bag
// holds round(rarity*100) copies of each type.
func (t FeatureType) Rarity() float64 {
	switch t {
	case FeatureTypeVolcano:
		return 0.3
	case FeatureTypeMagicZone:
		return 0.25
	case FeatureTypeSubmergedCity:
		return 0.1
	case FeatureTypeAncientRuins:
		return 0.25
	case FeatureTypeCrystalCave:
		return 0.1
	}
	return 0
}

// ElevationBand returns the inclusive elevation range the feature type can
// be placed in.
func (t FeatureType) ElevationBand() (min, max float64) {
	switch t {
	case FeatureTypeVolcano:
		return 0.5, 1.0
	case FeatureTypeMagicZone:
		return 0.2, 1.0
	case FeatureTypeSubmergedCity:
		return 0.0, 0.15
	case FeatureTypeAncientRuins:
		return 0.2, 0.8
	case FeatureTypeCrystalCave:
		return 0.3, 1.0
	}
	return 0, 1
}

// Compatible returns true if the feature type can be placed on a tile with
// the given elevation and biome.
func (t FeatureType) Compatible(elevation float64, biome Biome) bool {
	min, max := t.ElevationBand()
	if elevation < min || elevation > max {
		return false
	}
	switch t {
	case FeatureTypeVolcano:
		return !biome.IsWater() && elevation > 0.5
	case FeatureTypeMagicZone:
		return !biome.IsWater()
	case FeatureTypeSubmergedCity:
		return biome == BiomeOcean
	case FeatureTypeAncientRuins:
		return !biome.IsWater()
	case FeatureTypeCrystalCave:
		return biome == BiomeMountain || biome == BiomeHills || elevation > 0.6
	}
	return false
}

// RegionalFeature is a rare, spatially isolated point of interest layered
// atop the terrain grid.
type RegionalFeature struct {
	ID        int
	Type      FeatureType
	X, Y      int
	Intensity float64 // Magnitude / strength in [0.3, 1.0]
	Name      string
}

// placeFeatures scatters regional features using rarity weighted sampling
// with a minimum separation constraint and per-type compatibility rules.
//
// The attempt budget bounds the work: if it runs out before the target
// count is reached, the world simply gets fewer features. Under-filling is
// soft degradation, not an error.
func (m *Geo) placeFeatures() {
	numTiles := m.Width * m.Height
	target := int(math.Round(float64(utils.Max(3, numTiles/5000)) * m.FeatureDensity))
	if target <= 0 {
		return
	}

	// Build the rarity weighted bag.
	var bag []FeatureType
	for _, t := range featureTypes {
		copies := int(math.Round(t.Rarity() * 100))
		for i := 0; i < copies; i++ {
			bag = append(bag, t)
		}
	}

	rng := rand.New(rand.NewSource(m.Seed + seedOffsetFeatures))
	lang := genlanguage.GenLanguage(m.Seed + seedOffsetNaming)

	maxAttempts := 10 * target
	for attempt := 0; attempt < maxAttempts && len(m.Features) < target; attempt++ {
		x := rng.Intn(m.Width)
		y := rng.Intn(m.Height)

		// Enforce the minimum separation against all placed features.
		if m.tooCloseToFeature(x, y) {
			continue
		}

		t := bag[rng.Intn(len(bag))]
		idx := m.tileIndex(x, y)
		if !t.Compatible(m.Elevation[idx], m.Biomes[idx]) {
			continue
		}

		m.Features = append(m.Features, &RegionalFeature{
			ID:        len(m.Features),
			Type:      t,
			X:         x,
			Y:         y,
			Intensity: 0.3 + rng.Float64()*0.7,
			Name:      lang.MakeName(),
		})
	}
}

// tooCloseToFeature returns true if (x, y) is within the minimum
// separation of an already placed feature.
func (m *Geo) tooCloseToFeature(x, y int) bool {
	pos := [2]float64{float64(x), float64(y)}
	for _, f := range m.Features {
		if various.Dist2(pos, [2]float64{float64(f.X), float64(f.Y)}) < m.MinFeatureSeparation {
			return true
		}
	}
	return false
}
