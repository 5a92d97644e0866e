package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/imageio"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	var flags config.Flags
	configPath := flag.String("config", "", "JSON config file (flags override its values)")
	flag.StringVar(&flags.Scene, "scene", "", "Built-in scene ('default', 'random', 'spheregrid') or 'file:<name>' from the scenes directory")
	flag.StringVar(&flags.SceneFile, "scene-file", "", "Path to a JSON scene description (overrides -scene)")
	flag.StringVar(&flags.ScenesDir, "scenes-dir", "", "Directory searched for JSON scene descriptions")
	flag.IntVar(&flags.Width, "width", 0, "Image width in pixels")
	flag.IntVar(&flags.Height, "height", 0, "Image height in pixels")
	flag.IntVar(&flags.Samples, "samples", 0, "Samples per pixel")
	flag.IntVar(&flags.MaxDepth, "max-depth", 0, "Maximum ray bounce depth")
	flag.IntVar(&flags.Workers, "workers", 0, "Number of parallel workers (default: number of CPUs)")
	flag.Uint64Var(&flags.Seed, "seed", 0, "Random seed (default: time based)")
	flag.StringVar(&flags.Output, "output", "", "Output file; extension selects the format (.ppm, .png, .webp, .tga, .bmp)")
	flag.IntVar(&flags.Thumbnail, "thumbnail", 0, "Also write a copy downscaled to this many pixels on its longest side")
	dumpScene := flag.String("dump-scene", "", "Write the selected scene as JSON to this path and exit")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig(*configPath, flags)
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		if err := printScenes(cfg.ScenesDir); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *dumpScene != "" {
		desc, err := describeScene(cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := scene.Save(*dumpScene, desc); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scene saved as %s\n", *dumpScene)
		return
	}

	selectedScene, err := createScene(cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Using scene %q (%d spheres, seed %d)\n", sceneLabel(cfg), selectedScene.GetPrimitiveCount(), cfg.Seed)

	raytracer := renderer.NewRaytracer(selectedScene, cfg.Width, cfg.Height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.MaxDepth,
		NumWorkers:      cfg.Workers,
		Seed:            cfg.Seed,
	})
	raytracer.SetLogger(renderer.NewDefaultLogger())

	buffer, stats := raytracer.Render()
	fmt.Printf("Render completed in %v (%d samples, %d workers)\n", stats.Duration, stats.TotalSamples, stats.Workers)

	if err := imageio.Save(cfg.Output, buffer); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Render saved as %s (%dx%d)\n", cfg.Output, raytracer.Width(), raytracer.Height())

	if cfg.Thumbnail > 0 {
		thumbPath := imageio.ThumbnailPath(cfg.Output)
		thumb := imageio.Thumbnail(imageio.ToImage(buffer), cfg.Thumbnail)
		if err := imageio.Save(thumbPath, imageio.FromImage(thumb)); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbPath)
	}
}

// loadConfig merges the optional config file with the command line flags and
// fixes the seed so every run is reproducible from its log output
func loadConfig(path string, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(flags)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// describeScene returns the description for the configured scene
func describeScene(cfg config.Config) (*scene.Description, error) {
	if cfg.SceneFile != "" {
		return scene.Load(cfg.SceneFile)
	}
	if name, ok := strings.CutPrefix(cfg.Scene, "file:"); ok {
		return scene.Load(filepath.Join(cfg.ScenesDir, name+".json"))
	}
	return scene.Describe(cfg.Scene, cfg.Seed)
}

// createScene builds the configured scene for the configured image size
func createScene(cfg config.Config) (*scene.Scene, error) {
	desc, err := describeScene(cfg)
	if err != nil {
		return nil, err
	}
	return desc.Build(cfg.AspectRatio())
}

func sceneLabel(cfg config.Config) string {
	if cfg.SceneFile != "" {
		return cfg.SceneFile
	}
	return cfg.Scene
}

func printScenes(dir string) error {
	scenes, err := scene.ListAllScenes(dir)
	if err != nil {
		return err
	}

	fmt.Println("Available scenes:")
	for _, s := range scenes {
		fmt.Printf("  %-20s %s (%d spheres)\n", s.ID, s.Name, s.Spheres)
		if s.Description != "" {
			fmt.Printf("  %-20s %s\n", "", s.Description)
		}
	}
	return nil
}
