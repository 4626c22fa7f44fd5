package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"
)

// GamepadCodes are the standard-layout gamepad buttons a backend reports
var GamepadCodes = []string{
	"gamepad_dpad_up",
	"gamepad_dpad_down",
	"gamepad_dpad_left",
	"gamepad_dpad_right",
	"gamepad_a",
	"gamepad_b",
	"gamepad_x",
	"gamepad_y",
	"gamepad_lb",
	"gamepad_rb",
	"gamepad_start",
	"gamepad_back",
}

// KeyboardCodes returns the keyboard codes a backend reports: letters,
// digits, arrows, modifiers, function keys and a few editing keys.
func KeyboardCodes() []string {
	codes := []string{
		"arrow_up", "arrow_down", "arrow_left", "arrow_right",
		"shift_left", "shift_right",
		"control_left", "control_right",
		"alt_left", "alt_right",
		"space", "enter", "escape", "tab", "backspace",
	}
	for r := 'a'; r <= 'z'; r++ {
		codes = append(codes, string(r))
	}
	for d := 0; d <= 9; d++ {
		codes = append(codes, fmt.Sprintf("digit%d", d))
	}
	for f := 1; f <= 12; f++ {
		codes = append(codes, fmt.Sprintf("f%d", f))
	}
	return codes
}

var knownCodes = func() mapset.Set[string] {
	set := mapset.New[string]()
	for _, c := range KeyboardCodes() {
		set.Put(c)
	}
	for _, c := range GamepadCodes {
		set.Put(c)
	}
	return set
}()

// IsKnownCode reports whether a backend can deliver code, so it may be bound
func IsKnownCode(code string) bool {
	return knownCodes.Has(code)
}

// KeyCode converts a CamelCase key name such as "ArrowUp" or "F2" to its
// binding code ("arrow_up", "f2").
func KeyCode(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
