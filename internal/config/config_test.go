//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/catalogs",
			expected: filepath.Join(home, "catalogs"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/catalogs/themes/night.yaml",
			expected: filepath.Join(home, "catalogs", "themes", "night.yaml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/etc/carousel/catalog.yaml",
			expected: "/etc/carousel/catalog.yaml",
		},
		{
			name:     "relative path unchanged",
			input:    "catalog.yaml",
			expected: "catalog.yaml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	// Should have at least one path
	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	// If we have home dir, first path should be ~/.config/carousel/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "carousel", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoad_ExtraFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	data := `
catalog = "/tmp/catalog.yaml"

[carousel]
spacing = 120
move_ease = "spring"

[view]
fps = 60

[log]
debug = true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog != "/tmp/catalog.yaml" {
		t.Errorf("Catalog = %q, want /tmp/catalog.yaml", cfg.Catalog)
	}
	if cfg.Carousel.Spacing != 120 {
		t.Errorf("Spacing = %f, want 120", cfg.Carousel.Spacing)
	}
	if cfg.Carousel.MoveEase != "spring" {
		t.Errorf("MoveEase = %q, want spring", cfg.Carousel.MoveEase)
	}
	if cfg.View.FPS != 60 {
		t.Errorf("FPS = %d, want 60", cfg.View.FPS)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug = false, want true")
	}
}

func TestLoad_MissingExtraFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Load() with missing explicit file should fail")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[carousel\nspacing ="), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid TOML should fail")
	}
}

func TestGetCarouselConfig_Defaults(t *testing.T) {
	// Empty config should get all defaults
	cfg := Config{}
	c := cfg.GetCarouselConfig()

	if c.Spacing != 200 {
		t.Errorf("Spacing = %f, want 200", c.Spacing)
	}
	if c.FocusedScale != 2 {
		t.Errorf("FocusedScale = %f, want 2", c.FocusedScale)
	}
	if c.SideScale != 1 {
		t.Errorf("SideScale = %f, want 1", c.SideScale)
	}
	if c.MoveDurationMs != 500 {
		t.Errorf("MoveDurationMs = %d, want 500", c.MoveDurationMs)
	}
	if c.ResizeDurationMs != 500 {
		t.Errorf("ResizeDurationMs = %d, want 500", c.ResizeDurationMs)
	}
	if c.MoveEase != "out-cubic" {
		t.Errorf("MoveEase = %q, want out-cubic", c.MoveEase)
	}
	if c.ResizeEase != "out-cubic" {
		t.Errorf("ResizeEase = %q, want out-cubic", c.ResizeEase)
	}
	if c.OffScreenLeft != -1000 {
		t.Errorf("OffScreenLeft = %f, want -1000", c.OffScreenLeft)
	}
	if c.OffScreenRight != 1000 {
		t.Errorf("OffScreenRight = %f, want 1000", c.OffScreenRight)
	}
}

func TestGetCarouselConfig_CustomValues(t *testing.T) {
	cfg := Config{
		Carousel: CarouselConfig{
			Spacing:          150,
			FocusedScale:     1.5,
			SideScale:        0.75,
			MoveDurationMs:   250,
			ResizeDurationMs: 100,
			MoveEase:         "linear",
			ResizeEase:       "spring",
			OffScreenLeft:    -600,
			OffScreenRight:   700,
		},
	}
	c := cfg.GetCarouselConfig()

	if c != cfg.Carousel {
		t.Errorf("GetCarouselConfig() = %+v, want %+v", c, cfg.Carousel)
	}
}

func TestGetCarouselConfig_InvalidOffScreen(t *testing.T) {
	// Off-screen points on the wrong side of the anchor fall back to defaults
	cfg := Config{
		Carousel: CarouselConfig{
			OffScreenLeft:  50,
			OffScreenRight: -50,
		},
	}
	c := cfg.GetCarouselConfig()

	if c.OffScreenLeft != -1000 {
		t.Errorf("OffScreenLeft = %f, want -1000", c.OffScreenLeft)
	}
	if c.OffScreenRight != 1000 {
		t.Errorf("OffScreenRight = %f, want 1000", c.OffScreenRight)
	}
}

func TestGetViewConfig(t *testing.T) {
	tests := []struct {
		name string
		in   ViewConfig
		want ViewConfig
	}{
		{
			name: "defaults",
			in:   ViewConfig{},
			want: ViewConfig{FPS: 30, UnitsPerColumn: 10, CardWidth: 9, CardHeight: 4},
		},
		{
			name: "custom",
			in:   ViewConfig{FPS: 60, UnitsPerColumn: 5, CardWidth: 12, CardHeight: 5},
			want: ViewConfig{FPS: 60, UnitsPerColumn: 5, CardWidth: 12, CardHeight: 5},
		},
		{
			name: "out of range",
			in:   ViewConfig{FPS: 500, UnitsPerColumn: -1, CardWidth: 2, CardHeight: 1},
			want: ViewConfig{FPS: 30, UnitsPerColumn: 10, CardWidth: 9, CardHeight: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{View: tt.in}
			if got := cfg.GetViewConfig(); got != tt.want {
				t.Errorf("GetViewConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCarouselConfig_Ring(t *testing.T) {
	cfg := Config{}
	rc, err := cfg.GetCarouselConfig().Ring()
	if err != nil {
		t.Fatalf("Ring() error = %v", err)
	}

	if rc.MoveDuration != 500*time.Millisecond {
		t.Errorf("MoveDuration = %v, want 500ms", rc.MoveDuration)
	}
	if rc.MoveEase == nil || rc.ResizeEase == nil {
		t.Fatal("eases not resolved")
	}
	if got := rc.MoveEase(0.5); got != 0.875 {
		t.Errorf("MoveEase(0.5) = %f, want out-cubic 0.875", got)
	}
	if rc.OffScreenLeftX != -1000 || rc.OffScreenRightX != 1000 {
		t.Errorf("off-screen = %f/%f, want -1000/1000", rc.OffScreenLeftX, rc.OffScreenRightX)
	}
}

func TestCarouselConfig_RingUnknownEase(t *testing.T) {
	cfg := Config{Carousel: CarouselConfig{ResizeEase: "wobble"}}

	_, err := cfg.GetCarouselConfig().Ring()
	if err == nil {
		t.Fatal("Ring() with unknown ease should fail")
	}
}
