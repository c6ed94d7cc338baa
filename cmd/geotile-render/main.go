package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"geotile"
	"geotile/config"
	"geotile/geom"
	"geotile/render"
)

var (
	hf    bool
	cf    string
	debug bool
)

func init() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.StringVar(&cf, "c", "conf.toml", "set config `file`")
	flag.BoolVar(&debug, "v", false, "verbose (debug) logging")
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `geotile-render version: geotile-render/v0.1.0
Usage: geotile-render [-h] [-v] [-c filename]
`)
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if hf {
		flag.Usage()
		return
	}
	config.InitLogging(debug)

	if cf == "" {
		cf = "conf.toml"
	}
	cfg, err := config.Load(cf)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	start := time.Now()

	store, err := geotile.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	job := RenderJob{
		Name: "render",
		Box: geom.GeographicBoundingBox{
			MinLat: cfg.Render.MinLat,
			MinLon: cfg.Render.MinLon,
			MaxLat: cfg.Render.MaxLat,
			MaxLon: cfg.Render.MaxLon,
		},
		Zoom: cfg.Render.Zoom,
	}

	task := NewRenderTask(store, render.DefaultStyleTable(), cfg.Render.Width, cfg.Render.Height, cfg.Output.Workers, cfg.Output.Directory)
	if err := task.Run([]RenderJob{job}); err != nil {
		log.Fatalf("render: %v", err)
	}

	log.Printf("\n%.3fs finished...", time.Since(start).Seconds())
}
