package genworldgrid

import "testing"

func TestNumPlatesFor(t *testing.T) {
	for _, tc := range []struct {
		width, height, want int
	}{
		{64, 64, 4},
		{256, 128, 4},
		{400, 200, 8},
		{1000, 1000, 100},
	} {
		if got := numPlatesFor(tc.width, tc.height); got != tc.want {
			t.Errorf("numPlatesFor(%d, %d) = %d, expected %d", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestGeneratePlates(t *testing.T) {
	m := testMap(t)
	if len(m.Plates) != numPlatesFor(m.Width, m.Height) {
		t.Fatalf("expected %d plates, got %d", numPlatesFor(m.Width, m.Height), len(m.Plates))
	}

	for i, p := range m.Plates {
		if p.ID != i {
			t.Errorf("plate %d has ID %d", i, p.ID)
		}
		if !m.inBounds(p.CenterX, p.CenterY) {
			t.Errorf("plate %d center (%d, %d) out of bounds", i, p.CenterX, p.CenterY)
		}
		if p.Drift.X < -0.5 || p.Drift.X >= 0.5 || p.Drift.Y < -0.5 || p.Drift.Y >= 0.5 {
			t.Errorf("plate %d drift %v out of range", i, p.Drift)
		}
		if p.Type != PlateTypeOceanic && p.Type != PlateTypeContinental {
			t.Errorf("plate %d has unknown type %d", i, p.Type)
		}
	}

	// Every tile belongs to its nearest plate center.
	for idx, id := range m.PlateID {
		if id < 0 || id >= len(m.Plates) {
			t.Fatalf("tile %d assigned to unknown plate %d", idx, id)
		}
		x, y := m.tileCoords(idx)
		own := distSquared(x, y, m.Plates[id].CenterX, m.Plates[id].CenterY)
		for _, p := range m.Plates {
			if d := distSquared(x, y, p.CenterX, p.CenterY); d < own {
				t.Fatalf("tile (%d, %d) assigned to plate %d but plate %d is closer", x, y, id, p.ID)
			}
		}
	}
}
