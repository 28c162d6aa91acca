package genworldgrid

import (
	"image"
	"image/color"
	"log"

	"github.com/Flokey82/genbiome"
	"github.com/Flokey82/genworldgrid/various"
	"github.com/Flokey82/go_gens/gameconstants"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"

	geojson "github.com/paulmach/go.geojson"
)

// Display modes for rendered map images.
const (
	DisplayModeBiomes = iota
	DisplayModeElevation
	DisplayModeTemperature
	DisplayModeMoisture
	DisplayModePlates
)

// tilePixels is the edge length of a single tile in rendered images.
const tilePixels = 4

const (
	minTemp          = genbiome.MinTemperatureC
	maxTemp          = genbiome.MaxTemperatureC
	maxPrecipitation = genbiome.MaxPrecipitationDM // 450cm
)

// getBiomeColor returns the Whittaker color for the tile. This is purely
// cosmetic: the authoritative biome classification is the decision tree in
// classifyBiome, the Whittaker table is only consulted for plausible
// coloring.
func (m *Geo) getBiomeColor(idx int) color.NRGBA {
	temp := int(various.Clamp(m.Temperature[idx], minTemp, maxTemp))
	precip := int(various.Clamp(m.Moisture[idx], 0, 1) * maxPrecipitation)
	return genbiome.GetWhittakerModBiomeColor(temp, precip, 1.0)
}

// GetImage renders the world grid with the given display mode, optionally
// drawing rivers and regional features on top.
func (m *Geo) GetImage(displayMode int, drawRivers, drawFeatures bool) image.Image {
	var colorFunc func(idx int) color.Color
	switch displayMode {
	case DisplayModeElevation:
		// Get a blue to red elevation gradient.
		colorGrad := colorgrad.NewGradient()
		colorGrad.Colors(
			color.RGBA{0, 0, 255, 255},
			color.RGBA{0, 255, 255, 255},
			color.RGBA{0, 255, 0, 255},
			color.RGBA{255, 255, 0, 255},
			color.RGBA{255, 0, 0, 255},
		)
		cb, err := colorGrad.Build()
		if err != nil {
			log.Fatal(err)
		}
		colorFunc = func(idx int) color.Color {
			return genColor(cb.At(m.Elevation[idx]))
		}
	case DisplayModeTemperature:
		minVal, maxVal := minMax(m.Temperature)
		cb := colorgrad.Plasma()
		colorFunc = func(idx int) color.Color {
			return genColor(cb.At((m.Temperature[idx] - minVal) / (maxVal - minVal)))
		}
	case DisplayModeMoisture:
		minVal, maxVal := minMax(m.Moisture)
		colorFunc = func(idx int) color.Color {
			return genBlue((m.Moisture[idx] - minVal) / (maxVal - minVal))
		}
	case DisplayModePlates:
		cols := colorgrad.Rainbow().Colors(uint(len(m.Plates)))
		colorFunc = func(idx int) color.Color {
			return genColor(cols[m.PlateID[idx]])
		}
	default:
		// Biome display: water in blue shaded by depth, land in its
		// Whittaker color.
		colorFunc = func(idx int) color.Color {
			if m.Biomes[idx].IsWater() {
				return genBlue(m.Elevation[idx] / oceanThreshold)
			}
			return m.getBiomeColor(idx)
		}
	}

	dest := image.NewRGBA(image.Rect(0, 0, m.Width*tilePixels, m.Height*tilePixels))
	gc := draw2dimg.NewGraphicContext(dest)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			col := colorFunc(m.tileIndex(x, y))
			for py := 0; py < tilePixels; py++ {
				for px := 0; px < tilePixels; px++ {
					dest.Set(x*tilePixels+px, y*tilePixels+py, col)
				}
			}
		}
	}

	if drawRivers {
		gc.SetStrokeColor(color.NRGBA{0, 0, 160, 255})
		gc.SetLineWidth(1.5)
		for _, riv := range m.Rivers {
			if len(riv.Path) < 2 {
				continue
			}
			gc.BeginPath()
			gc.MoveTo(tileCenter(riv.Path[0].X), tileCenter(riv.Path[0].Y))
			for _, p := range riv.Path[1:] {
				gc.LineTo(tileCenter(p.X), tileCenter(p.Y))
			}
			gc.Stroke()
		}
	}

	if drawFeatures {
		gc.SetStrokeColor(color.NRGBA{0, 0, 0, 255})
		gc.SetLineWidth(1)
		for _, f := range m.Features {
			cx, cy := tileCenter(f.X), tileCenter(f.Y)
			r := 2.0 + 2.0*f.Intensity

			// Draw a diamond marker scaled by intensity.
			gc.BeginPath()
			gc.MoveTo(cx, cy-r)
			gc.LineTo(cx+r, cy)
			gc.LineTo(cx, cy+r)
			gc.LineTo(cx-r, cy)
			gc.Close()
			gc.Stroke()
		}
	}
	return dest
}

// tileCenter returns the pixel coordinate of the center of a tile.
func tileCenter(t int) float64 {
	return float64(t)*tilePixels + tilePixels/2
}

// ExportPng exports the world as a PNG image with rivers and features drawn
// on top of the biome layer.
func (m *Geo) ExportPng(name string) error {
	return draw2dimg.SaveToPngFile(name, m.GetImage(DisplayModeBiomes, true, true))
}

// GetGeoJSONRivers returns the river network as a GeoJSON feature
// collection of line strings, using tile coordinates as positions.
func (m *Geo) GetGeoJSONRivers() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for _, riv := range m.Rivers {
		coords := make([][]float64, len(riv.Path))
		for i, p := range riv.Path {
			coords[i] = []float64{float64(p.X), float64(p.Y)}
		}
		f := geojson.NewLineStringFeature(coords)
		f.SetProperty("id", riv.ID)
		f.SetProperty("length", len(riv.Path))
		f.SetProperty("islake", riv.IsLake)
		f.SetProperty("source_elevation_m", riv.Source.Elevation*gameconstants.EarthMaxElevation)
		f.SetProperty("terminus_elevation_m", riv.Terminus.Elevation*gameconstants.EarthMaxElevation)
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// GetGeoJSONFeatures returns the regional features as a GeoJSON feature
// collection of points, using tile coordinates as positions.
func (m *Geo) GetGeoJSONFeatures() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for _, rf := range m.Features {
		idx := m.tileIndex(rf.X, rf.Y)
		f := geojson.NewPointFeature([]float64{float64(rf.X), float64(rf.Y)})
		f.SetProperty("id", rf.ID)
		f.SetProperty("name", rf.Name)
		f.SetProperty("type", rf.Type.String())
		f.SetProperty("intensity", rf.Intensity)
		f.SetProperty("biome", m.Biomes[idx].String())
		f.SetProperty("elevation_m", m.Elevation[idx]*gameconstants.EarthMaxElevation)
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}
