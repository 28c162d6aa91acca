package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genworldgrid"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed   int64 = 1234
	width        = 256
	height       = 128
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the world seed")
	flag.IntVar(&width, "width", width, "world width in tiles")
	flag.IntVar(&height, "height", height, "world height in tiles")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genworldgrid.NewConfig()
	cfg.Width = width
	cfg.Height = height

	wg, err := genworldgrid.NewMapFromConfig(seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := wg.ExportPng("world.png"); err != nil {
		log.Fatal(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
