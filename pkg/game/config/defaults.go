package config

import (
	_ "embed"
)

//go:embed defaults/allfarm.yaml
var defaultYAML []byte

// Default returns the default configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "ALLFARM",
			Width:  1920,
			Height: 1080,
			TPS:    60,
		},
		World: WorldConfig{
			Cols:     30,
			Rows:     15,
			TileSize: 50,
			Fill:     "grass",
			Layout:   "plain",
		},
		Atlas: AtlasConfig{
			Path:     "Assets/TextureAtlas.png",
			TileSize: 16,
		},
		Player: PlayerConfig{
			Accel:            200,
			SprintMultiplier: 2,
			SpriteSize:       64,
			FrameDuration:    0.15,
		},
		Camera: CameraConfig{
			Zoom:         1,
			MinZoom:      0.5,
			MaxZoom:      5,
			FollowOffset: 20,
		},
		Debug: DebugConfig{
			LogLevel: "info",
		},
		Language: "en",
	}
}
