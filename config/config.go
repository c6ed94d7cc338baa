// Package config loads the toml configuration for the render command,
// the same way the original tiler loaded conf.toml: viper with
// AutomaticEnv, defaults set before the file is read so a missing or
// partial file still produces a usable config.
package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds everything the render command needs to turn a tile store
// into rendered output.
type Config struct {
	Store  StoreConfig
	Render RenderConfig
	Output OutputConfig
}

// StoreConfig points at the memory-mapped tile file to open.
type StoreConfig struct {
	Path string
}

// RenderConfig fixes the bounding box, zoom level and canvas size used
// to build one render job.
type RenderConfig struct {
	MinLat, MinLon, MaxLat, MaxLon float64
	Zoom                           int
	Width, Height                  int
}

// OutputConfig names where rendered PNGs are written and how many
// render jobs run concurrently.
type OutputConfig struct {
	Directory string
	Workers   int
}

func setDefaults() {
	viper.SetDefault("store.path", "tiles.bin")
	viper.SetDefault("render.minlat", -90.0)
	viper.SetDefault("render.minlon", -180.0)
	viper.SetDefault("render.maxlat", 90.0)
	viper.SetDefault("render.maxlon", 180.0)
	viper.SetDefault("render.zoom", 8)
	viper.SetDefault("render.width", 1024)
	viper.SetDefault("render.height", 1024)
	viper.SetDefault("output.directory", "output")
	viper.SetDefault("output.workers", 4)
}

// Load reads cfgFile (toml) into a Config, falling back to defaults for
// anything missing. A nonexistent file is only a warning, matching the
// original tool's tolerance for running off defaults alone.
func Load(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		log.Warnf("config file(%s) does not exist, using defaults", cfgFile)
	}

	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("read config file(%s) error: %s", viper.ConfigFileUsed(), err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Path: viper.GetString("store.path"),
		},
		Render: RenderConfig{
			MinLat: viper.GetFloat64("render.minlat"),
			MinLon: viper.GetFloat64("render.minlon"),
			MaxLat: viper.GetFloat64("render.maxlat"),
			MaxLon: viper.GetFloat64("render.maxlon"),
			Zoom:   viper.GetInt("render.zoom"),
			Width:  viper.GetInt("render.width"),
			Height: viper.GetInt("render.height"),
		},
		Output: OutputConfig{
			Directory: viper.GetString("output.directory"),
			Workers:   viper.GetInt("output.workers"),
		},
	}

	if cfg.Render.MinLat > cfg.Render.MaxLat || cfg.Render.MinLon > cfg.Render.MaxLon {
		return nil, fmt.Errorf("config: render bounding box is inverted")
	}
	return cfg, nil
}
