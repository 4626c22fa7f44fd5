// Package config provides YAML-based configuration loading for ALLFARM.
package config

import (
	"fmt"

	"allfarm/pkg/engine/input"
	"allfarm/pkg/engine/world"
	"allfarm/pkg/game/generator"
)

// Config contains all configuration for the game.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	World    WorldConfig       `yaml:"world"`
	Atlas    AtlasConfig       `yaml:"atlas"`
	Player   PlayerConfig      `yaml:"player"`
	Camera   CameraConfig      `yaml:"camera"`
	Debug    DebugConfig       `yaml:"debug"`
	Language string            `yaml:"language"`
	Bindings map[string]string `yaml:"bindings"` // action name -> key code
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	TPS        int    `yaml:"tps"`
}

// WorldConfig defines the tile grid.
type WorldConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`
	Fill     string  `yaml:"fill"`
	Layout   string  `yaml:"layout"` // plain, plots or paths
	Seed     int64   `yaml:"seed"`   // 0 picks a new layout every run
}

// AtlasConfig locates the texture atlas image and gives its tile size in pixels.
type AtlasConfig struct {
	Path     string `yaml:"path"`
	TileSize int    `yaml:"tile_size"`
}

// PlayerConfig defines player movement and drawing.
type PlayerConfig struct {
	Accel            float64 `yaml:"accel"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	SpriteSize       float64 `yaml:"sprite_size"`
	FrameDuration    float64 `yaml:"frame_duration"` // seconds per animation frame
}

// CameraConfig defines zoom limits and how the camera trails the player.
type CameraConfig struct {
	Zoom         float64 `yaml:"zoom"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
	FollowOffset float64 `yaml:"follow_offset"`
}

// DebugConfig toggles developer aids.
type DebugConfig struct {
	Grid     bool   `yaml:"grid"`
	LogLevel string `yaml:"log_level"`
}

// FillType returns the tile type the world starts filled with
func (c Config) FillType() world.TileType {
	t, _ := world.ParseTileType(c.World.Fill)
	return t
}

// GeneratorParams returns the field generator input for the world section
func (c Config) GeneratorParams() generator.Params {
	return generator.Params{
		Cols:     c.World.Cols,
		Rows:     c.World.Rows,
		TileSize: c.World.TileSize,
		Fill:     c.FillType(),
		Seed:     c.World.Seed,
	}
}

// InputBindings returns the default bindings with the configured overrides applied
func (c Config) InputBindings() *input.Bindings {
	b := input.DefaultBindings()
	for name, code := range c.Bindings {
		if act, ok := input.ParseAction(name); ok {
			b.SetSingleBinding(act, code)
		}
	}
	return b
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if c.World.Cols <= 0 || c.World.Rows <= 0 {
		return fmt.Errorf("world size must be positive, got %dx%d", c.World.Cols, c.World.Rows)
	}
	if c.World.TileSize <= 0 {
		return fmt.Errorf("world tile_size must be positive, got %v", c.World.TileSize)
	}
	if _, ok := world.ParseTileType(c.World.Fill); !ok {
		return fmt.Errorf("unknown world fill %q", c.World.Fill)
	}
	if _, ok := generator.ByName(c.World.Layout); !ok {
		return fmt.Errorf("unknown world layout %q (want one of %v)", c.World.Layout, generator.Names())
	}
	if c.Atlas.Path == "" {
		return fmt.Errorf("atlas path is required")
	}
	if c.Atlas.TileSize <= 0 {
		return fmt.Errorf("atlas tile_size must be positive, got %d", c.Atlas.TileSize)
	}
	if c.Player.Accel < 0 || c.Player.SprintMultiplier < 1 {
		return fmt.Errorf("player accel %v / sprint_multiplier %v out of range", c.Player.Accel, c.Player.SprintMultiplier)
	}
	if c.Player.FrameDuration <= 0 {
		return fmt.Errorf("player frame_duration must be positive, got %v", c.Player.FrameDuration)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		return fmt.Errorf("camera zoom limits [%v, %v] are invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	switch c.Debug.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.Debug.LogLevel)
	}
	for name, code := range c.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("unknown action %q in bindings", name)
		}
		if !input.IsKnownCode(code) {
			return fmt.Errorf("binding %s: unsupported key %q", name, code)
		}
	}
	return nil
}
