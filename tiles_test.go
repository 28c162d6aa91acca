package genworldgrid

import (
	"encoding/json"
	"testing"
)

func TestGetImage(t *testing.T) {
	m := testMap(t)
	for _, mode := range []int{
		DisplayModeBiomes,
		DisplayModeElevation,
		DisplayModeTemperature,
		DisplayModeMoisture,
		DisplayModePlates,
	} {
		img := m.GetImage(mode, true, true)
		bounds := img.Bounds()
		if bounds.Dx() != m.Width*tilePixels || bounds.Dy() != m.Height*tilePixels {
			t.Errorf("mode %d: image is %dx%d, expected %dx%d",
				mode, bounds.Dx(), bounds.Dy(), m.Width*tilePixels, m.Height*tilePixels)
		}
	}
}

func TestGetGeoJSONRivers(t *testing.T) {
	m := testMap(t)
	data, err := m.GetGeoJSONRivers()
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type        string      `json:"type"`
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatal(err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("expected a FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) != len(m.Rivers) {
		t.Fatalf("expected %d river features, got %d", len(m.Rivers), len(fc.Features))
	}
	for i, f := range fc.Features {
		if f.Geometry.Type != "LineString" {
			t.Errorf("river %d: geometry type %q", i, f.Geometry.Type)
		}
		if len(f.Geometry.Coordinates) != len(m.Rivers[i].Path) {
			t.Errorf("river %d: %d coordinates, expected %d",
				i, len(f.Geometry.Coordinates), len(m.Rivers[i].Path))
		}
	}
}

func TestGetGeoJSONFeatures(t *testing.T) {
	m := testMap(t)
	data, err := m.GetGeoJSONFeatures()
	if err != nil {
		t.Fatal(err)
	}
	var fc struct {
		Features []struct {
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]interface{} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != len(m.Features) {
		t.Fatalf("expected %d point features, got %d", len(m.Features), len(fc.Features))
	}
	for i, f := range fc.Features {
		if f.Geometry.Type != "Point" {
			t.Errorf("feature %d: geometry type %q", i, f.Geometry.Type)
		}
		if f.Properties["name"] != m.Features[i].Name {
			t.Errorf("feature %d: name %v, expected %q", i, f.Properties["name"], m.Features[i].Name)
		}
		if f.Properties["type"] != m.Features[i].Type.String() {
			t.Errorf("feature %d: type %v, expected %q", i, f.Properties["type"], m.Features[i].Type)
		}
	}
}
