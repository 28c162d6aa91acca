// Package genworldgrid deterministically synthesizes a planet-scale grid of
// terrain data from a single integer seed: tectonic plates, elevation,
// climate, biomes, rivers and rare regional features. Two runs with the same
// seed and dimensions produce bit-identical worlds.
package genworldgrid

type Map struct {
	*Geo // Geography / geology / climate
}

// NewMapFromConfig generates a new world map for the given seed and config.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	// Initialize the world grid.
	geo, err := newGeo(seed, cfg.GeoConfig)
	if err != nil {
		return nil, err
	}

	m := &Map{
		Geo: geo,
	}
	m.generateMap()
	return m, nil
}

// NewMap generates a new world map with default settings and the
// given dimensions.
func NewMap(seed int64, width, height int) (*Map, error) {
	cfg := NewConfig()
	cfg.Width = width
	cfg.Height = height

	return NewMapFromConfig(seed, cfg)
}

func (m *Map) generateMap() {
	// Build geography / geology / climate.
	m.generateGeology()
}
