package genworldgrid

import (
	"math"
	"testing"

	"github.com/Flokey82/genworldgrid/various"
)

func TestFeatureTypeTables(t *testing.T) {
	var totalRarity float64
	for _, ft := range featureTypes {
		totalRarity += ft.Rarity()
		min, max := ft.ElevationBand()
		if min < 0 || max > 1 || min > max {
			t.Errorf("%v: invalid elevation band [%v, %v]", ft, min, max)
		}
		if ft.String() == "unknown" {
			t.Errorf("feature type %d has no name", ft)
		}
	}
	if math.Abs(totalRarity-1) > 1e-9 {
		t.Errorf("rarity weights sum to %v, expected 1", totalRarity)
	}
}

func TestFeatureCompatible(t *testing.T) {
	for _, tc := range []struct {
		ft        FeatureType
		elevation float64
		biome     Biome
		want      bool
	}{
		{FeatureTypeVolcano, 0.7, BiomeMountain, true},
		{FeatureTypeVolcano, 0.4, BiomeHills, false},   // below the band
		{FeatureTypeVolcano, 0.7, BiomeLake, false},    // water
		{FeatureTypeSubmergedCity, 0.1, BiomeOcean, true},
		{FeatureTypeSubmergedCity, 0.1, BiomeLake, false},  // ocean only
		{FeatureTypeSubmergedCity, 0.3, BiomeOcean, false}, // above the band
		{FeatureTypeAncientRuins, 0.5, BiomeGrassland, true},
		{FeatureTypeAncientRuins, 0.9, BiomeMountain, false}, // above the band
		{FeatureTypeCrystalCave, 0.4, BiomeHills, true},
		{FeatureTypeCrystalCave, 0.4, BiomeGrassland, false},
		{FeatureTypeCrystalCave, 0.7, BiomeGrassland, true}, // high enough on its own
		{FeatureTypeMagicZone, 0.5, BiomeForest, true},
		{FeatureTypeMagicZone, 0.5, BiomeOcean, false},
	} {
		if got := tc.ft.Compatible(tc.elevation, tc.biome); got != tc.want {
			t.Errorf("%v.Compatible(%v, %v) = %v, expected %v",
				tc.ft, tc.elevation, tc.biome, got, tc.want)
		}
	}
}

func TestPlaceFeatures(t *testing.T) {
	m := testMap(t)
	for i, f := range m.Features {
		if f.ID != i {
			t.Errorf("feature %d has ID %d", i, f.ID)
		}
		if !m.inBounds(f.X, f.Y) {
			t.Fatalf("feature %d at (%d, %d) out of bounds", i, f.X, f.Y)
		}
		if f.Intensity < 0.3 || f.Intensity > 1.0 {
			t.Errorf("feature %d: intensity %v out of [0.3, 1.0]", i, f.Intensity)
		}
		if f.Name == "" {
			t.Errorf("feature %d has no name", i)
		}
		idx := m.tileIndex(f.X, f.Y)
		if !f.Type.Compatible(m.Elevation[idx], m.Biomes[idx]) {
			t.Errorf("feature %d (%v) incompatible with its tile (elevation %v, biome %v)",
				i, f.Type, m.Elevation[idx], m.Biomes[idx])
		}

		// Pairwise minimum separation.
		for j, other := range m.Features[:i] {
			d := various.Dist2(
				[2]float64{float64(f.X), float64(f.Y)},
				[2]float64{float64(other.X), float64(other.Y)},
			)
			if d < m.MinFeatureSeparation {
				t.Errorf("features %d and %d are %v apart, minimum is %v", j, i, d, m.MinFeatureSeparation)
			}
		}
	}
}

func TestPlaceFeaturesZeroDensity(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.FeatureDensity = 0
	m, err := NewMapFromConfig(7, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Features) != 0 {
		t.Fatalf("expected no features at zero density, got %d", len(m.Features))
	}
}
