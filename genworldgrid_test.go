package genworldgrid

import (
	"reflect"
	"testing"
)

// testWorld is the shared fixture most tests inspect. Generating it once
// keeps the test run fast; all tests treat it as read-only.
var testWorld *Map

func testMap(t *testing.T) *Map {
	t.Helper()
	if testWorld == nil {
		m, err := NewMap(42, 64, 64)
		if err != nil {
			t.Fatalf("NewMap: %v", err)
		}
		testWorld = m
	}
	return testWorld
}

func TestNewMapInvalidConfig(t *testing.T) {
	for _, dim := range [][2]int{{0, 64}, {64, 0}, {-1, 64}, {64, -1}} {
		if _, err := NewMap(1, dim[0], dim[1]); err == nil {
			t.Errorf("NewMap(1, %d, %d): expected error", dim[0], dim[1])
		}
	}
}

func TestFieldLengths(t *testing.T) {
	m := testMap(t)
	numTiles := m.Width * m.Height
	for name, l := range map[string]int{
		"Elevation":   len(m.Elevation),
		"Temperature": len(m.Temperature),
		"Moisture":    len(m.Moisture),
		"PlateID":     len(m.PlateID),
		"Biomes":      len(m.Biomes),
		"Compression": len(m.Compression),
		"RiverID":     len(m.RiverID),
		"WindVec":     len(m.WindVec),
		"Landmasses":  len(m.Landmasses),
		"Waterbodies": len(m.Waterbodies),
	} {
		if l != numTiles {
			t.Errorf("%s: expected %d entries, got %d", name, numTiles, l)
		}
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a, err := NewMap(1337, 48, 48)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewMap(1337, 48, 48)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(a.Elevation, b.Elevation) {
		t.Error("elevation fields differ between identical runs")
	}
	if !reflect.DeepEqual(a.Temperature, b.Temperature) {
		t.Error("temperature fields differ between identical runs")
	}
	if !reflect.DeepEqual(a.Moisture, b.Moisture) {
		t.Error("moisture fields differ between identical runs")
	}
	if !reflect.DeepEqual(a.PlateID, b.PlateID) {
		t.Error("plate assignments differ between identical runs")
	}
	if !reflect.DeepEqual(a.Biomes, b.Biomes) {
		t.Error("biome fields differ between identical runs")
	}
	if !reflect.DeepEqual(a.Plates, b.Plates) {
		t.Error("plate lists differ between identical runs")
	}
	if !reflect.DeepEqual(a.Rivers, b.Rivers) {
		t.Error("river lists differ between identical runs")
	}
	if !reflect.DeepEqual(a.Features, b.Features) {
		t.Error("feature lists differ between identical runs")
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a, err := NewMap(1, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewMap(2, 64, 64)
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(a.Elevation, b.Elevation) {
		t.Error("different seeds produced identical elevation fields")
	}
}

func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NewMap(int64(i), 128, 128); err != nil {
			b.Fatal(err)
		}
	}
}
