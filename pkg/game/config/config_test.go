package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"allfarm/pkg/engine/input"
	"allfarm/pkg/engine/world"
)

// isolate points the user and local search paths at empty temp directories
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	def := Default()

	if cfg.Window != def.Window {
		t.Errorf("embedded window = %+v, want %+v", cfg.Window, def.Window)
	}
	if cfg.World != def.World {
		t.Errorf("embedded world = %+v, want %+v", cfg.World, def.World)
	}
	if cfg.Atlas != def.Atlas {
		t.Errorf("embedded atlas = %+v, want %+v", cfg.Atlas, def.Atlas)
	}
	if cfg.Player != def.Player {
		t.Errorf("embedded player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Camera != def.Camera {
		t.Errorf("embedded camera = %+v, want %+v", cfg.Camera, def.Camera)
	}
	if cfg.Debug != def.Debug || cfg.Language != def.Language {
		t.Errorf("embedded debug/language = %+v/%q, want %+v/%q", cfg.Debug, cfg.Language, def.Debug, def.Language)
	}
}

func TestLoad_EmbeddedWhenNothingElse(t *testing.T) {
	isolate(t)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if source != "embedded" {
		t.Errorf("source = %q, want embedded", source)
	}
	if cfg.World.Cols != 30 || cfg.World.Rows != 15 {
		t.Errorf("world = %dx%d, want 30x15", cfg.World.Cols, cfg.World.Rows)
	}
}

func TestLoad_SearchOrder(t *testing.T) {
	home, work := isolate(t)
	userPath := filepath.Join(home, ".allfarm", "config.yaml")
	localPath := filepath.Join(work, LocalPath)

	writeFile(t, userPath, "world:\n  cols: 11\n")
	writeFile(t, localPath, "world:\n  cols: 22\n")

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.World.Cols != 11 || source != userPath {
		t.Errorf("Load() = cols %d from %q, want 11 from user config", cfg.World.Cols, source)
	}

	// A broken user config falls through to the local one
	writeFile(t, userPath, "world: [not a map\n")
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.World.Cols != 22 || source != LocalPath {
		t.Errorf("Load() = cols %d from %q, want 22 from %s", cfg.World.Cols, source, LocalPath)
	}

	// So does one that parses but fails validation
	writeFile(t, userPath, "world:\n  cols: -1\n")
	cfg, _, err = Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.World.Cols != 22 {
		t.Errorf("cols = %d, want 22 from local config", cfg.World.Cols)
	}
}

func TestLoad_CustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "world:\n  cols: 8\n  fill: dirt\nplayer:\n  accel: 120\n")

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if source != path {
		t.Errorf("source = %q, want %q", source, path)
	}
	if cfg.World.Cols != 8 {
		t.Errorf("cols = %d, want 8", cfg.World.Cols)
	}
	if cfg.World.Rows != 15 {
		t.Errorf("rows = %d, want default 15", cfg.World.Rows)
	}
	if cfg.FillType() != world.Dirt {
		t.Errorf("FillType() = %v, want Dirt", cfg.FillType())
	}
	if cfg.Player.Accel != 120 || cfg.Player.SprintMultiplier != 2 {
		t.Errorf("player = %+v, want accel 120 and default sprint", cfg.Player)
	}
}

func TestLoad_CustomPathErrors(t *testing.T) {
	_, work := isolate(t)

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing", "", "failed to read config"},
		{"bad yaml", "window: [", "failed to parse config"},
		{"invalid", "world:\n  fill: lava\n", "unknown world fill"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(work, tt.name+".yaml")
			if tt.content != "" {
				writeFile(t, path, tt.content)
			}
			_, _, err := Load(path)
			if err == nil {
				t.Fatalf("Load(%s) = nil error, want %q", path, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load(%s) error = %v, want it to contain %q", path, err, tt.wantErr)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
		{"zero rows", func(c *Config) { c.World.Rows = 0 }},
		{"zero tile size", func(c *Config) { c.World.TileSize = 0 }},
		{"unknown fill", func(c *Config) { c.World.Fill = "water" }},
		{"unknown layout", func(c *Config) { c.World.Layout = "maze" }},
		{"no atlas", func(c *Config) { c.Atlas.Path = "" }},
		{"zero atlas tile size", func(c *Config) { c.Atlas.TileSize = 0 }},
		{"slow sprint", func(c *Config) { c.Player.SprintMultiplier = 0.5 }},
		{"zero frame duration", func(c *Config) { c.Player.FrameDuration = 0 }},
		{"inverted zoom", func(c *Config) { c.Camera.MinZoom, c.Camera.MaxZoom = 5, 0.5 }},
		{"bad log level", func(c *Config) { c.Debug.LogLevel = "loud" }},
		{"unknown action", func(c *Config) { c.Bindings = map[string]string{"jump": "space"} }},
		{"unsupported key", func(c *Config) { c.Bindings = map[string]string{"paint_grass": "numpad_enter"} }},
		{"empty key", func(c *Config) { c.Bindings = map[string]string{"quit": ""} }},
		{"mouse button", func(c *Config) { c.Bindings = map[string]string{"erase": "mouse_left"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() = nil, want error")
			}
		})
	}
}

func TestInputBindings_Overrides(t *testing.T) {
	cfg := Default()
	cfg.Bindings = map[string]string{"paint_grass": "r", "toggle_grid": "f1"}

	b := cfg.InputBindings()
	if got := b.Lookup("r"); got != input.ActionPaintGrass {
		t.Errorf("Lookup(r) = %v, want Paint Grass", input.ActionName(got))
	}
	if got := b.Lookup("e"); got != input.ActionNone {
		t.Errorf("Lookup(e) = %v, want None", input.ActionName(got))
	}
	if got := b.Lookup("f1"); got != input.ActionToggleGrid {
		t.Errorf("Lookup(f1) = %v, want Toggle Grid", input.ActionName(got))
	}
	if got := b.Lookup("w"); got != input.ActionMoveNorth {
		t.Errorf("Lookup(w) = %v, want Move North", input.ActionName(got))
	}
}

func TestParse_BindingKeys(t *testing.T) {
	cfg, err := Parse([]byte("bindings:\n  paint_grass: z\n  quit: gamepad_back\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	b := cfg.InputBindings()
	if got := b.Lookup("z"); got != input.ActionPaintGrass {
		t.Errorf("Lookup(z) = %v, want Paint Grass", input.ActionName(got))
	}
	if got := b.Lookup("gamepad_back"); got != input.ActionQuit {
		t.Errorf("Lookup(gamepad_back) = %v, want Quit", input.ActionName(got))
	}

	if _, err := Parse([]byte("bindings:\n  paint_grass: kp_enter\n")); err == nil {
		t.Error("Parse() accepted a key no backend reports")
	}
}

func TestMarshal_RoundTripsThroughParse(t *testing.T) {
	cfg := Default()
	cfg.World.Cols = 12
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(cfg)) error: %v", err)
	}
	if got.World != cfg.World {
		t.Errorf("world = %+v, want %+v", got.World, cfg.World)
	}
}
