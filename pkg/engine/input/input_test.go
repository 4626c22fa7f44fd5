package input

import "testing"

func key(code string) RawInput {
	return RawInput{Device: DeviceKeyboard, Code: code}
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		code string
		want Action
	}{
		{"w", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"a", ActionMoveWest},
		{"d", ActionMoveEast},
		{"shift_left", ActionSprint},
		{"e", ActionPaintGrass},
		{"f", ActionPaintDirt},
		{"q", ActionErase},
		{"g", ActionToggleGrid},
		{"f2", ActionDumpMap},
		{"escape", ActionQuit},
		{"gamepad_dpad_up", ActionMoveNorth},
		{"z", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		if got := b.Lookup(tt.code); got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestSetSingleBinding(t *testing.T) {
	b := DefaultBindings()
	b.SetSingleBinding(ActionPaintGrass, "r")

	if got := b.Lookup("r"); got != ActionPaintGrass {
		t.Errorf("Lookup(r) = %v, want Paint Grass", ActionName(got))
	}
	if got := b.Lookup("e"); got != ActionNone {
		t.Errorf("Lookup(e) = %v after rebind, want None", ActionName(got))
	}
	if got := b.Lookup("gamepad_a"); got != ActionNone {
		t.Errorf("Lookup(gamepad_a) = %v after rebind, want None", ActionName(got))
	}
}

func TestSetSingleBinding_ArrowsReserved(t *testing.T) {
	b := DefaultBindings()
	b.SetSingleBinding(ActionMoveNorth, "i")
	b.SetSingleBinding(ActionQuit, "arrow_up")

	if got := b.Lookup("arrow_up"); got != ActionMoveNorth {
		t.Errorf("Lookup(arrow_up) = %v, want Move North", ActionName(got))
	}
	if got := b.Lookup("i"); got != ActionMoveNorth {
		t.Errorf("Lookup(i) = %v, want Move North", ActionName(got))
	}
	if got := b.Lookup("escape"); got != ActionNone {
		t.Errorf("Lookup(escape) = %v, want None", ActionName(got))
	}
}

func TestByAction(t *testing.T) {
	got := DefaultBindings().ByAction()[ActionMoveNorth]
	want := []string{"arrow_up", "gamepad_dpad_up", "w"}

	if len(got) != len(want) {
		t.Fatalf("ByAction()[Move North] = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ByAction()[Move North][%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"paint_grass", ActionPaintGrass, true},
		{"Paint Grass", ActionPaintGrass, true},
		{"toggle_grid", ActionToggleGrid, true},
		{"dump_map", ActionDumpMap, true},
		{" move_north ", ActionMoveNorth, true},
		{"none", ActionNone, false},
		{"jump", ActionNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseAction(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAction(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector(DefaultBindings())
	c.Held(key("d"))
	c.Held(key("shift_left"))
	c.Pressed(key("g"))
	c.Held(key("unbound"))
	c.Scroll(1)
	c.Scroll(0.5)

	f := c.Frame()
	if !f.IsHeld(ActionMoveEast) || !f.IsHeld(ActionSprint) {
		t.Errorf("frame missing held actions: %d held", f.Held.Size())
	}
	if !f.JustPressed(ActionToggleGrid) || !f.IsHeld(ActionToggleGrid) {
		t.Error("pressed toggle should be both pressed and held")
	}
	if f.JustPressed(ActionMoveEast) {
		t.Error("held-only action reported as just pressed")
	}
	if f.Held.Size() != 3 {
		t.Errorf("Held.Size() = %d, want 3", f.Held.Size())
	}
	if f.Wheel != 1.5 {
		t.Errorf("Wheel = %v, want 1.5", f.Wheel)
	}

	next := c.Frame()
	if next.Held.Size() != 0 || next.Pressed.Size() != 0 || next.Wheel != 0 {
		t.Error("Frame() did not reset the collector")
	}
}

func TestFrameAxis(t *testing.T) {
	tests := []struct {
		name   string
		codes  []string
		dx, dy float64
	}{
		{"idle", nil, 0, 0},
		{"east", []string{"d"}, 1, 0},
		{"north west", []string{"w", "a"}, -1, -1},
		{"opposites cancel", []string{"a", "d", "s"}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(DefaultBindings())
			for _, code := range tt.codes {
				c.Held(key(code))
			}
			dx, dy := c.Frame().Axis()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Axis() = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestStickCodes(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want []string
	}{
		{"centred", 0, 0, nil},
		{"inside dead zone", 0.4, -0.5, nil},
		{"left", -0.9, 0.1, []string{"gamepad_dpad_left"}},
		{"down right", 0.8, 0.7, []string{"gamepad_dpad_right", "gamepad_dpad_down"}},
		{"up", 0, -1, []string{"gamepad_dpad_up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StickCodes(tt.x, tt.y)
			if len(got) != len(tt.want) {
				t.Fatalf("StickCodes(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("StickCodes(%v, %v)[%d] = %q, want %q", tt.x, tt.y, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"A", "a"},
		{"F2", "f2"},
		{"Digit7", "digit7"},
		{"ArrowUp", "arrow_up"},
		{"ShiftLeft", "shift_left"},
		{"Escape", "escape"},
	}

	for _, tt := range tests {
		if got := KeyCode(tt.name); got != tt.want {
			t.Errorf("KeyCode(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsKnownCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"z", true},
		{"digit0", true},
		{"f12", true},
		{"control_right", true},
		{"gamepad_lb", true},
		{"f13", false},
		{"mouse_left", false},
		{"W", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsKnownCode(tt.code); got != tt.want {
			t.Errorf("IsKnownCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestDefaultBindings_UseKnownCodes(t *testing.T) {
	for act, codes := range DefaultBindings().ByAction() {
		for _, code := range codes {
			if !IsKnownCode(code) {
				t.Errorf("%s is bound to %q, which no backend reports", ActionName(act), code)
			}
		}
	}
}
