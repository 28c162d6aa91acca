package genworldgrid

import (
	"math"

	"github.com/Flokey82/genworldgrid/various"
)

// getGlobalWindVector returns a vector for the global wind at the given
// latitude (in degrees).
// NOTE: This is based on the trade winds on... well, earth.
// See: https://en.wikipedia.org/wiki/Trade_winds
func getGlobalWindVector(lat float64) [2]float64 {
	// Based on latitude, we calculate the wind vector angle.
	var degree float64
	if latAbs := math.Abs(lat); latAbs <= 30 {
		// +30° ... 0°, 0° ... -30° -> Primitive Hadley Cell.
		// In a Hadley cell, we turn the wind vector until we are exactly
		// parallel with the equator once we reach 0° Lat.
		change := 90 * latAbs / 30
		if lat > 0 {
			degree = 180 + change // Northern hemisphere.
		} else {
			degree = 180 - change // Southern hemisphere.
		}
	} else if latAbs <= 60 {
		// +60° ... +30°, -30° ... -60° -> Primitive Mid Latitude Cell.
		change := 90 * (latAbs - 30) / 30
		if lat > 0 {
			degree = 90 - change // Northern hemisphere.
		} else {
			degree = 270 + change // Southern hemisphere.
		}
	} else {
		// +90° ... +60°, -60° ... -90° -> Primitive Polar Cell.
		change := 90 * (latAbs - 60) / 30
		if lat > 0 {
			degree = 180 + change // Northern hemisphere.
		} else {
			degree = 180 - change // Southern hemisphere.
		}
	}
	rad := degToRad(degree)
	return [2]float64{math.Cos(rad), math.Sin(rad)}
}

// assignWindVectors constructs faux global wind cells reminiscent of a
// simplified earth model, perturbed by coherent noise so that the bands do
// not look perfectly laminar. The wind field is a metadata overlay for
// downstream consumers; none of the core tile fields depend on it.
func (m *Geo) assignWindVectors() {
	windVec := make([][2]float64, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		latDeg := m.latitude(y) * 90
		base := getGlobalWindVector(latDeg)
		for x := 0; x < m.Width; x++ {
			// Perturb the angle of the prevailing wind by up to ~15°.
			perturb := (m.noise.Eval2(float64(x)/32, float64(y)/32) - 0.5) * math.Pi / 6
			sin, cos := math.Sincos(perturb)
			windVec[m.tileIndex(x, y)] = various.Normalize2([2]float64{
				base[0]*cos - base[1]*sin,
				base[0]*sin + base[1]*cos,
			})
		}
	}
	m.WindVec = windVec
}
