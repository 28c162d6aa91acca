package genworldgrid

import (
	"image/color"
	"math"

	"github.com/Flokey82/genworldgrid/various"
	"github.com/Flokey82/go_gens/utils"
)

var minMax = utils.MinMax[float64]

var initIntSlice = various.InitIntSlice

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// genBlue returns a blue color with the given intensity (0.0-1.0).
func genBlue(intensity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(intensity * 255),
		G: uint8(intensity * 255),
		B: 255,
		A: 255,
	}
}

// genColor converts the given color to an opaque NRGBA color.
func genColor(col color.Color) color.NRGBA {
	var col2 color.NRGBA
	cr, cg, cb, _ := col.RGBA()
	col2.R = uint8(float64(255) * float64(cr) / float64(0xffff))
	col2.G = uint8(float64(255) * float64(cg) / float64(0xffff))
	col2.B = uint8(float64(255) * float64(cb) / float64(0xffff))
	col2.A = 255
	return col2
}
