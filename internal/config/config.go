// Package config loads rendering defaults from an optional YAML file.
// Fields omitted from the file keep their built-in values, so partial
// configs are safe.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the toolkit settings shared by every figure.
type Config struct {
	// GMTBin is the toolkit binary, resolved via PATH when not absolute.
	GMTBin string `yaml:"gmt_bin"`

	// Page and font defaults applied per session.
	PaperSize string `yaml:"paper_size"`
	FontAnnot string `yaml:"font_annot"`
	FontLabel string `yaml:"font_label"`
	FontTitle string `yaml:"font_title"`

	// MapWidth is the projection width, e.g. "6i".
	MapWidth string `yaml:"map_width"`

	// GridDensity is the number of interpolation cells per axis used
	// when gridding the scattered samples.
	GridDensity int `yaml:"grid_density"`

	// MarkerSize is the symbol size for best-source markers, e.g. "0.25c".
	MarkerSize string `yaml:"marker_size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		GMTBin:      "gmt",
		PaperSize:   "A4",
		FontAnnot:   "12p,Helvetica,black",
		FontLabel:   "14p,Helvetica,black",
		FontTitle:   "18p,Helvetica,black",
		MapWidth:    "6i",
		GridDensity: 100,
		MarkerSize:  "0.25c",
	}
}

// Load reads a YAML config file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return cfg, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.merge(file)
	return cfg, nil
}

// merge overlays non-zero fields from other onto c.
func (c *Config) merge(other Config) {
	if other.GMTBin != "" {
		c.GMTBin = other.GMTBin
	}
	if other.PaperSize != "" {
		c.PaperSize = other.PaperSize
	}
	if other.FontAnnot != "" {
		c.FontAnnot = other.FontAnnot
	}
	if other.FontLabel != "" {
		c.FontLabel = other.FontLabel
	}
	if other.FontTitle != "" {
		c.FontTitle = other.FontTitle
	}
	if other.MapWidth != "" {
		c.MapWidth = other.MapWidth
	}
	if other.GridDensity != 0 {
		c.GridDensity = other.GridDensity
	}
	if other.MarkerSize != "" {
		c.MarkerSize = other.MarkerSize
	}
}
