// Package config holds the tunable constants of the tracing engine.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// HitConfig holds hit-testing radii in device pixels
type HitConfig struct {
	VertexThreshold float64 `toml:"vertex_threshold"`
	EdgeThreshold   float64 `toml:"edge_threshold"`
	SplitThreshold  float64 `toml:"split_threshold"`
	ClickTolerance  float64 `toml:"click_tolerance"` // Max pointer travel for a press/release to count as a click
}

// ViewConfig holds zoom limits and wheel step factors
type ViewConfig struct {
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
	ZoomIn  float64 `toml:"zoom_in"`
	ZoomOut float64 `toml:"zoom_out"`
}

// UnitsConfig names the real-world unit used in reports
type UnitsConfig struct {
	Name string `toml:"name"`
}

// LayersConfig holds the layer color cycle
type LayersConfig struct {
	Palette []string `toml:"palette"`
}

// Config is the complete engine configuration
type Config struct {
	Hit    HitConfig    `toml:"hit"`
	View   ViewConfig   `toml:"view"`
	Units  UnitsConfig  `toml:"units"`
	Layers LayersConfig `toml:"layers"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Hit: HitConfig{
			VertexThreshold: 10,
			EdgeThreshold:   8,
			SplitThreshold:  15,
			ClickTolerance:  5,
		},
		View: ViewConfig{
			MinZoom: 0.1,
			MaxZoom: 5.0,
			ZoomIn:  1.1,
			ZoomOut: 0.9,
		},
		Units: UnitsConfig{Name: "ft"},
		Layers: LayersConfig{
			Palette: []string{"#2196F3", "#4CAF50", "#FF9800", "#9C27B0", "#F44336", "#00BCD4"},
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all values are usable
func (c Config) Validate() error {
	var errs []error

	if c.Hit.VertexThreshold <= 0 || c.Hit.EdgeThreshold <= 0 || c.Hit.SplitThreshold <= 0 {
		errs = append(errs, errors.New("hit thresholds must be positive"))
	}
	if c.Hit.ClickTolerance < 0 {
		errs = append(errs, errors.New("click tolerance must not be negative"))
	}
	if c.View.MinZoom <= 0 || c.View.MaxZoom < c.View.MinZoom {
		errs = append(errs, fmt.Errorf("zoom range [%g, %g] is invalid", c.View.MinZoom, c.View.MaxZoom))
	}
	if c.View.ZoomIn <= 1 || c.View.ZoomOut <= 0 || c.View.ZoomOut >= 1 {
		errs = append(errs, errors.New("zoom_in must be > 1 and zoom_out in (0, 1)"))
	}
	if len(c.Layers.Palette) == 0 {
		errs = append(errs, errors.New("layer palette must not be empty"))
	}

	return errors.Join(errs...)
}
