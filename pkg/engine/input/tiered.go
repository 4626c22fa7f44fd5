package input

import (
	"sort"
	"strings"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast
	ActionSprint

	// Editing
	ActionPaintGrass
	ActionPaintDirt
	ActionErase

	// Meta / UI
	ActionToggleGrid
	ActionDumpMap
	ActionQuit

	actionCount
)

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device Device
	Code   string
}

// reservedCodes can never be rebound, so the player can always walk.
var reservedCodes = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
}

// Bindings maps raw codes to actions (3rd layer). Multiple codes may point to
// the same Action.
type Bindings struct {
	codes map[string]Action
}

// DefaultBindings returns the stock keyboard and gamepad layout
func DefaultBindings() *Bindings {
	return &Bindings{codes: map[string]Action{
		// Movement (WASD, arrows)
		"w":           ActionMoveNorth,
		"arrow_up":    ActionMoveNorth,
		"s":           ActionMoveSouth,
		"arrow_down":  ActionMoveSouth,
		"a":           ActionMoveWest,
		"arrow_left":  ActionMoveWest,
		"d":           ActionMoveEast,
		"arrow_right": ActionMoveEast,
		"shift_left":  ActionSprint,

		// Painting under the player
		"e": ActionPaintGrass,
		"f": ActionPaintDirt,
		"q": ActionErase,

		"g":      ActionToggleGrid,
		"f2":     ActionDumpMap,
		"escape": ActionQuit,

		// Controller/gamepad specific bindings
		"gamepad_dpad_up":    ActionMoveNorth,
		"gamepad_dpad_down":  ActionMoveSouth,
		"gamepad_dpad_left":  ActionMoveWest,
		"gamepad_dpad_right": ActionMoveEast,
		"gamepad_rb":         ActionSprint,
		"gamepad_a":          ActionPaintGrass,
		"gamepad_b":          ActionPaintDirt,
		"gamepad_x":          ActionErase,
		"gamepad_y":          ActionToggleGrid,
	}}
}

// Lookup returns the action bound to code, or ActionNone
func (b *Bindings) Lookup(code string) Action {
	if act, ok := b.codes[code]; ok {
		return act
	}
	return ActionNone
}

// MapToAction applies the bindings to a raw input
func (b *Bindings) MapToAction(ev RawInput) Action {
	return b.Lookup(ev.Code)
}

// ByAction returns the current bindings grouped by action.
func (b *Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b.codes {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys keep their movement bindings and cannot be taken by another action.
func (b *Bindings) SetSingleBinding(action Action, code string) {
	for c, a := range b.codes {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(b.codes, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		b.codes[code] = action
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionSprint:
		return "Sprint"
	case ActionPaintGrass:
		return "Paint Grass"
	case ActionPaintDirt:
		return "Paint Dirt"
	case ActionErase:
		return "Erase"
	case ActionToggleGrid:
		return "Toggle Grid"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction accepts a config key such as "paint_grass" or a display name
// such as "Paint Grass".
func ParseAction(name string) (Action, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
	for a := ActionNone + 1; a < actionCount; a++ {
		if strings.ToLower(ActionName(a)) == key {
			return a, true
		}
	}
	return ActionNone, false
}
