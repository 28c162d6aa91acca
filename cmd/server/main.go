package main

import (
	"bytes"
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/Flokey82/genworldgrid"
	"github.com/gorilla/mux"
)

var worldmap *genworldgrid.Map

var (
	seed           int64   = 12345
	width                  = 256
	height                 = 128
	numRivers              = 10
	featureDensity float64 = 1.0
	addr                   = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&width, "width", width, "world width in tiles")
	flag.IntVar(&height, "height", height, "world height in tiles")
	flag.IntVar(&numRivers, "num_rivers", numRivers, "number of rivers")
	flag.Float64Var(&featureDensity, "feature_density", featureDensity, "regional feature density")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	// Initialize the config.
	cfg := genworldgrid.NewConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.NumRivers = numRivers
	cfg.FeatureDensity = featureDensity

	// Generate the world.
	wg, err := genworldgrid.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}
	worldmap = wg

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/map/{mode}", mapHandler)
	router.HandleFunc("/geojson_rivers", geoJSONRiversHandler)
	router.HandleFunc("/geojson_features", geoJSONFeaturesHandler)
	log.Fatal(http.ListenAndServe(addr, router))
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	mode, err := strconv.Atoi(vars["mode"])
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	img := worldmap.GetImage(mode, true, true)
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "image/png")
	res.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	res.Write(buf.Bytes())
}

func geoJSONRiversHandler(res http.ResponseWriter, req *http.Request) {
	data, err := worldmap.GetGeoJSONRivers()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

func geoJSONFeaturesHandler(res http.ResponseWriter, req *http.Request) {
	data, err := worldmap.GetGeoJSONFeatures()
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}
