package genworldgrid

import (
	"math"
	"testing"
)

func TestGetTileTemperature(t *testing.T) {
	for _, tc := range []struct {
		lat, elevation, want float64
	}{
		{0, 0, 25},
		{1, 0, -10},
		{-1, 0, -10},
		{0, 1, -35},
		{0.5, 0.5, -22.5},
	} {
		if got := getTileTemperature(tc.lat, tc.elevation); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("getTileTemperature(%v, %v) = %v, expected %v", tc.lat, tc.elevation, got, tc.want)
		}
	}
}

func TestTemperatureField(t *testing.T) {
	m := testMap(t)
	for idx, temp := range m.Temperature {
		x, y := m.tileCoords(idx)
		want := getTileTemperature(m.latitude(y), m.Elevation[idx])
		if temp != want {
			t.Fatalf("tile (%d, %d): temperature %v does not match formula (expected %v)", x, y, temp, want)
		}
	}

	// Latitude is symmetric around the vertical midpoint.
	if l := m.latitude(0); l != -1 {
		t.Errorf("latitude(0) = %v, expected -1", l)
	}
	if l := m.latitude(m.Height - 1); l != 1 {
		t.Errorf("latitude(%d) = %v, expected 1", m.Height-1, l)
	}
}

func TestElevationField(t *testing.T) {
	m := testMap(t)
	for idx, elev := range m.Elevation {
		if elev < 0 || elev > 1 {
			x, y := m.tileCoords(idx)
			t.Fatalf("tile (%d, %d): elevation %v out of [0, 1]", x, y, elev)
		}
	}
	for idx, c := range m.Compression {
		if c < 0 {
			t.Fatalf("tile %d: negative compression %v", idx, c)
		}
	}
}

func TestMoistureField(t *testing.T) {
	m := testMap(t)
	for idx, moist := range m.Moisture {
		x, y := m.tileCoords(idx)
		if moist < 0 || moist > 1 {
			t.Fatalf("tile (%d, %d): moisture %v out of [0, 1]", x, y, moist)
		}
		// The water proximity component alone contributes at least
		// 0.4 * 0.1.
		if moist < moistureWaterWeight*0.1 {
			t.Fatalf("tile (%d, %d): moisture %v below the proximity floor", x, y, moist)
		}
	}
}

func TestWaterProximity(t *testing.T) {
	m := testMap(t)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := m.waterProximity(x, y)
			if m.Elevation[m.tileIndex(x, y)] < oceanThreshold {
				if p != 1.0 {
					t.Fatalf("water tile (%d, %d): proximity %v, expected 1.0", x, y, p)
				}
				continue
			}
			if p < 0.1 || p > 1 {
				t.Fatalf("land tile (%d, %d): proximity %v out of [0.1, 1]", x, y, p)
			}
		}
	}
}

func TestWindVectors(t *testing.T) {
	m := testMap(t)
	for idx, v := range m.WindVec {
		if l := math.Hypot(v[0], v[1]); math.Abs(l-1) > 1e-9 {
			x, y := m.tileCoords(idx)
			t.Fatalf("tile (%d, %d): wind vector %v not normalized (length %v)", x, y, v, l)
		}
	}
}
