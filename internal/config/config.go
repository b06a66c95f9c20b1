package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/carousel/internal/carousel"
	"github.com/llehouerou/carousel/internal/tween"
)

const appName = "carousel"

type Config struct {
	Catalog string `koanf:"catalog"` // path to a YAML catalog, empty for built-in

	Carousel CarouselConfig `koanf:"carousel"`
	View     ViewConfig     `koanf:"view"`
	Log      LogConfig      `koanf:"log"`
}

// CarouselConfig holds ring geometry and animation timing.
type CarouselConfig struct {
	Spacing          float64 `koanf:"spacing"`            // world units between slots (default: 200)
	FocusedScale     float64 `koanf:"focused_scale"`      // scale of the center item (default: 2)
	SideScale        float64 `koanf:"side_scale"`         // scale of the other items (default: 1)
	MoveDurationMs   int     `koanf:"move_duration_ms"`   // default: 500
	ResizeDurationMs int     `koanf:"resize_duration_ms"` // default: 500
	MoveEase         string  `koanf:"move_ease"`          // see tween.Names (default: "out-cubic")
	ResizeEase       string  `koanf:"resize_ease"`        // default: "out-cubic"
	OffScreenLeft    float64 `koanf:"offscreen_left"`     // spawn/despawn X on the left (default: -1000)
	OffScreenRight   float64 `koanf:"offscreen_right"`    // spawn/despawn X on the right (default: 1000)
}

// ViewConfig holds terminal rendering settings.
type ViewConfig struct {
	FPS            int     `koanf:"fps"`              // animation frame rate (1-120, default: 30)
	UnitsPerColumn float64 `koanf:"units_per_column"` // world units per terminal column (default: 10)
	CardWidth      int     `koanf:"card_width"`       // card width in columns at scale 1 (default: 9)
	CardHeight     int     `koanf:"card_height"`      // card height in rows at scale 1 (default: 4)
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Debug bool   `koanf:"debug"` // write a debug log (default: false)
	File  string `koanf:"file"`  // log file path, empty for the XDG state dir
}

// Load reads the config files in priority order. Extra paths are loaded
// last and must exist.
func Load(extra ...string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}
	for _, path := range extra {
		if path == "" {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/carousel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetCarouselConfig returns the carousel configuration with defaults applied.
func (c *Config) GetCarouselConfig() CarouselConfig {
	cfg := c.Carousel

	if cfg.Spacing <= 0 {
		cfg.Spacing = 200
	}
	if cfg.FocusedScale <= 0 {
		cfg.FocusedScale = 2
	}
	if cfg.SideScale <= 0 {
		cfg.SideScale = 1
	}
	if cfg.MoveDurationMs <= 0 {
		cfg.MoveDurationMs = 500
	}
	if cfg.ResizeDurationMs <= 0 {
		cfg.ResizeDurationMs = 500
	}
	if cfg.MoveEase == "" {
		cfg.MoveEase = "out-cubic"
	}
	if cfg.ResizeEase == "" {
		cfg.ResizeEase = "out-cubic"
	}
	if cfg.OffScreenLeft >= 0 {
		cfg.OffScreenLeft = -1000
	}
	if cfg.OffScreenRight <= 0 {
		cfg.OffScreenRight = 1000
	}

	return cfg
}

// GetViewConfig returns the view configuration with defaults applied.
func (c *Config) GetViewConfig() ViewConfig {
	cfg := c.View

	if cfg.FPS <= 0 || cfg.FPS > 120 {
		cfg.FPS = 30
	}
	if cfg.UnitsPerColumn <= 0 {
		cfg.UnitsPerColumn = 10
	}
	if cfg.CardWidth < 3 {
		cfg.CardWidth = 9
	}
	if cfg.CardHeight < 3 {
		cfg.CardHeight = 4
	}

	return cfg
}

// Ring builds the carousel configuration, resolving ease names.
func (c CarouselConfig) Ring() (carousel.Config, error) {
	moveEase, err := tween.Lookup(c.MoveEase)
	if err != nil {
		return carousel.Config{}, fmt.Errorf("move_ease: %w", err)
	}
	resizeEase, err := tween.Lookup(c.ResizeEase)
	if err != nil {
		return carousel.Config{}, fmt.Errorf("resize_ease: %w", err)
	}

	return carousel.Config{
		Spacing:         c.Spacing,
		FocusedScale:    c.FocusedScale,
		SideScale:       c.SideScale,
		MoveDuration:    time.Duration(c.MoveDurationMs) * time.Millisecond,
		ResizeDuration:  time.Duration(c.ResizeDurationMs) * time.Millisecond,
		MoveEase:        moveEase,
		ResizeEase:      resizeEase,
		OffScreenLeftX:  c.OffScreenLeft,
		OffScreenRightX: c.OffScreenRight,
	}, nil
}
