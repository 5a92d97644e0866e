package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// Defaults applied by Resolve to fields left unset
const (
	DefaultWidth     = 400
	DefaultHeight    = 200
	DefaultSamples   = 100
	DefaultOutput    = "render.ppm"
	DefaultScene     = "default"
	DefaultScenesDir = "scenes"
)

// Config holds all render settings.
type Config struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Samples   int    `json:"samples"`
	MaxDepth  int    `json:"max_depth"`
	Workers   int    `json:"workers"`
	Seed      uint64 `json:"seed"` // 0 = pick one at startup
	Scene     string `json:"scene"`
	SceneFile string `json:"scene_file"`
	ScenesDir string `json:"scenes_dir"`
	Output    string `json:"output"`
	Thumbnail int    `json:"thumbnail"` // Longest side of an extra downscaled copy, 0 = none
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Samples > 0 {
		c.Samples = flags.Samples
	}
	if flags.MaxDepth > 0 {
		c.MaxDepth = flags.MaxDepth
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed > 0 {
		c.Seed = flags.Seed
	}
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.ScenesDir != "" {
		c.ScenesDir = flags.ScenesDir
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = integrator.DefaultMaxDepth
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.ScenesDir == "" {
		c.ScenesDir = DefaultScenesDir
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Thumbnail < 0 {
		c.Thumbnail = 0
	}
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      uint64
	Scene     string
	SceneFile string
	ScenesDir string
	Output    string
	Thumbnail int
}
