package genworldgrid

// Config is a struct that holds all configuration options for the map generation.
type Config struct {
	*GeoConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GeoConfig: NewGeoConfig(),
	}
}

// GeoConfig is a struct that holds all configuration options for the
// geography / geology / climate generation.
type GeoConfig struct {
	Width                int     // Width of the world grid in tiles
	Height               int     // Height of the world grid in tiles
	NumRivers            int     // Number of rivers we attempt to carve
	FeatureDensity       float64 // Multiplier for the regional feature target count
	MinFeatureSeparation float64 // Minimum distance between regional features (in tiles)
}

// NewGeoConfig returns a new config for geography / geology / climate generation.
func NewGeoConfig() *GeoConfig {
	return &GeoConfig{
		Width:                256,
		Height:               128,
		NumRivers:            10,
		FeatureDensity:       1.0,
		MinFeatureSeparation: 10.0,
	}
}
