// Package config holds the settings for both asset tools. The built-in
// defaults mirror the site's current layout, so running with no config file
// behaves exactly like the hard-coded scripts the tools replace.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML configuration. A config file only needs
// the keys it wants to change; everything else keeps its default.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
}

// GeneratorConfig controls the Open Graph image.
type GeneratorConfig struct {
	Title      string `yaml:"title"`
	Subtitle   string `yaml:"subtitle"`
	OutputPath string `yaml:"output_path"`
	Quality    int    `yaml:"quality"`
}

// OptimizerConfig controls the batch optimizer.
type OptimizerConfig struct {
	Quality  int     `yaml:"quality"`
	MaxWidth int     `yaml:"max_width"`
	Assets   []Asset `yaml:"assets"`
}

// Asset identifies one image to optimize and the format to re-encode it as.
type Asset struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Generator: GeneratorConfig{
			Title:      "CACHE McCLURE",
			Subtitle:   "Science Fiction Author",
			OutputPath: filepath.Join("public", "cache-mcclure-og.jpg"),
			Quality:    90,
		},
		Optimizer: OptimizerConfig{
			Quality: 90,
			Assets: []Asset{
				{Path: "src/assets/covers/fracture-engine.png", Format: "png"},
				{Path: "public/covers/fracture-engine.png", Format: "png"},
				{Path: "src/assets/covers/fracture-engine.webp", Format: "webp"},
				{Path: "public/covers/fracture-engine.webp", Format: "webp"},
				{Path: "public/cache-mcclure-og.jpg", Format: "jpg"},
			},
		},
	}
}

// Load reads a YAML config file and overlays its non-zero values on the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Generator.Title != "" {
		cfg.Generator.Title = file.Generator.Title
	}
	if file.Generator.Subtitle != "" {
		cfg.Generator.Subtitle = file.Generator.Subtitle
	}
	if file.Generator.OutputPath != "" {
		cfg.Generator.OutputPath = file.Generator.OutputPath
	}
	if file.Generator.Quality > 0 {
		cfg.Generator.Quality = file.Generator.Quality
	}
	if file.Optimizer.Quality > 0 {
		cfg.Optimizer.Quality = file.Optimizer.Quality
	}
	if file.Optimizer.MaxWidth > 0 {
		cfg.Optimizer.MaxWidth = file.Optimizer.MaxWidth
	}
	if len(file.Optimizer.Assets) > 0 {
		cfg.Optimizer.Assets = file.Optimizer.Assets
	}

	return cfg, nil
}
