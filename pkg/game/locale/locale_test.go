package locale

import "testing"

func TestNew_LanguageSelection(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "en"},
		{"de", "de"},
		{"de_DE.UTF-8", "de"},
		{"EN-gb", "en"},
		{"", "en"},
		{"xx", "en"},
	}

	for _, tt := range tests {
		c, err := New(tt.lang)
		if err != nil {
			t.Fatalf("New(%q) error: %v", tt.lang, err)
		}
		if c.Language != tt.want {
			t.Errorf("New(%q).Language = %q, want %q", tt.lang, c.Language, tt.want)
		}
	}
}

func TestGet(t *testing.T) {
	en, err := New("en")
	if err != nil {
		t.Fatalf("New(en) error: %v", err)
	}
	de, err := New("de")
	if err != nil {
		t.Fatalf("New(de) error: %v", err)
	}

	tests := []struct {
		name string
		c    *Catalog
		key  string
		vars []any
		want string
	}{
		{"cell", en, "OVERLAY_CELL", []any{3, 7}, "Cell 3, 7"},
		{"world", en, "OVERLAY_WORLD", []any{150.0, 350.0}, "World 150, 350"},
		{"scale", en, "OVERLAY_SCALE", []any{1.35}, "Scale 1.350000"},
		{"facing", en, "OVERLAY_FACING", []any{"East"}, "Facing East"},
		{"german", de, "OVERLAY_CELL", []any{1, 2}, "Feld 1, 2"},
		{"no vars", en, "DUMP_LEGEND", nil, "g = grass  d = dirt  . = empty"},
		{"unknown key", en, "NOT_A_KEY", nil, "NOT_A_KEY"},
		{"nil catalog", nil, "OVERLAY_CELL", []any{4, 7}, "OVERLAY_CELL 4 7"},
		{"nil catalog format verbs", nil, "Cell %d", []any{4}, "Cell %d 4"},
		{"nil catalog no vars", nil, "GOODBYE", nil, "GOODBYE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Get(tt.key, tt.vars...); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLanguages(t *testing.T) {
	got := Languages()
	if len(got) != 2 || got[0] != "de" || got[1] != "en" {
		t.Errorf("Languages() = %v, want [de en]", got)
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"en", true},
		{"de_AT", true},
		{"DE", true},
		{"fr", false},
		{"", true},
	}

	for _, tt := range tests {
		if got := Supported(tt.lang); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}
