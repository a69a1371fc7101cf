package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/errors"
	"github.com/corkboard/corkboard/pkg/settings"
)

// Config is the TOML application configuration. Every field has a working
// default, so a missing config file is not an error.
type Config struct {
	Canvas   CanvasConfig   `toml:"canvas"`
	Grid     GridConfig     `toml:"grid"`
	Node     NodeConfig     `toml:"node"`
	Settings SettingsConfig `toml:"settings"`
	Serve    ServeConfig    `toml:"serve"`
}

// CanvasConfig sizes the viewport and bounds the zoom.
type CanvasConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	MinZoom float64 `toml:"min_zoom"`
	MaxZoom float64 `toml:"max_zoom"`
}

// GridConfig is the default grid-snap policy. With the file settings backend
// this same table is re-read live on every drag update.
type GridConfig struct {
	SnapToGrid bool    `toml:"snap_to_grid"`
	GridSize   float64 `toml:"grid_size"`
}

// NodeConfig is the fixed footprint nodes occupy on the canvas.
type NodeConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SettingsConfig selects the grid-policy backend.
type SettingsConfig struct {
	// Backend is one of "static", "file", "redis".
	Backend string `toml:"backend"`
	// RedisAddr is the host:port of the Redis instance (redis backend).
	RedisAddr string `toml:"redis_addr"`
	// RedisPrefix namespaces the policy keys (redis backend).
	RedisPrefix string `toml:"redis_prefix"`
}

// ServeConfig configures the HTTP control surface.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:   1280,
			Height:  800,
			MinZoom: canvas.DefaultMinZoom,
			MaxZoom: canvas.DefaultMaxZoom,
		},
		Grid: GridConfig{
			SnapToGrid: false,
			GridSize:   20,
		},
		Node: NodeConfig{
			Width:  200,
			Height: 100,
		},
		Settings: SettingsConfig{
			Backend:     settings.BackendStatic,
			RedisAddr:   "localhost:6379",
			RedisPrefix: appName + ":",
		},
		Serve: ServeConfig{
			Addr: ":8480",
		},
	}
}

// DefaultConfigPath returns the conventional config file location,
// ~/.config/corkboard/config.toml, or "" when the home directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// LoadConfig reads and validates the config file at path. A missing file
// yields the defaults; a present but invalid file is an error, so typos do
// not silently fall back.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values against the boundary rules the canvas
// core does not enforce itself.
func (c Config) Validate() error {
	if err := errors.ValidateCanvasSize(c.Canvas.Width, c.Canvas.Height); err != nil {
		return err
	}
	if err := errors.ValidateZoomBounds(c.Canvas.MinZoom, c.Canvas.MaxZoom); err != nil {
		return err
	}
	if err := errors.ValidateGridPolicy(c.Grid.SnapToGrid, c.Grid.GridSize); err != nil {
		return err
	}
	if err := errors.ValidateFootprint(c.Node.Width, c.Node.Height); err != nil {
		return err
	}
	switch c.Settings.Backend {
	case settings.BackendStatic, settings.BackendFile, settings.BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown settings backend %q", c.Settings.Backend)
	}
	return nil
}

// GridPolicy returns the configured default grid policy.
func (c Config) GridPolicy() canvas.GridPolicy {
	return canvas.GridPolicy{SnapToGrid: c.Grid.SnapToGrid, GridSize: c.Grid.GridSize}
}

// Footprint returns the configured fixed node footprint.
func (c Config) Footprint() canvas.FootprintFunc {
	size := canvas.Size{Width: c.Node.Width, Height: c.Node.Height}
	return func(string) canvas.Size { return size }
}

// NewViewport builds a viewport from the configured canvas table.
func (c Config) NewViewport() *canvas.Viewport {
	return canvas.NewViewport(
		canvas.Size{Width: c.Canvas.Width, Height: c.Canvas.Height},
		&canvas.ViewportOptions{MinZoom: c.Canvas.MinZoom, MaxZoom: c.Canvas.MaxZoom},
	)
}
