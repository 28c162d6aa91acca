package genworldgrid

import "math"

const (
	// equatorTemp is the base temperature at latitude 0.
	equatorTemp = 25.0
	// latitudeFalloff is the temperature drop from equator to pole.
	latitudeFalloff = 35.0
	// elevationLapse is the temperature drop from sea level to the
	// highest possible elevation (1.0).
	elevationLapse = 60.0
)

// getTileTemperature returns the temperature in °C for the given normalized
// latitude (in [-1,1]) and elevation (in [0,1]). The result is deliberately
// unclamped: negative values represent extreme cold.
func getTileTemperature(lat, elevation float64) float64 {
	return equatorTemp - math.Abs(lat)*latitudeFalloff - elevation*elevationLapse
}

// assignTileTemperature derives the temperature field from latitude and
// elevation lapse.
func (m *Geo) assignTileTemperature() {
	for y := 0; y < m.Height; y++ {
		lat := m.latitude(y)
		for x := 0; x < m.Width; x++ {
			idx := m.tileIndex(x, y)
			m.Temperature[idx] = getTileTemperature(lat, m.Elevation[idx])
		}
	}
}
