// Package input turns device codes into game actions: raw codes are bound to
// actions, and each tick's actions are collected into a Frame.
package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Frame is the input snapshot for one tick
type Frame struct {
	// Held contains every action whose key is down this tick
	Held mapset.Set[Action]
	// Pressed contains actions whose key went down this tick
	Pressed mapset.Set[Action]
	// Wheel is the vertical mouse wheel movement, positive away from the user
	Wheel float64
}

// NewFrame returns an empty frame
func NewFrame() Frame {
	return Frame{
		Held:    mapset.New[Action](),
		Pressed: mapset.New[Action](),
	}
}

// IsHeld returns true if the action is held down this tick
func (f Frame) IsHeld(a Action) bool {
	return f.Held.Has(a)
}

// JustPressed returns true if the action started this tick
func (f Frame) JustPressed(a Action) bool {
	return f.Pressed.Has(a)
}

// Axis returns the movement direction as (right - left, down - up)
func (f Frame) Axis() (dx, dy float64) {
	if f.IsHeld(ActionMoveEast) {
		dx++
	}
	if f.IsHeld(ActionMoveWest) {
		dx--
	}
	if f.IsHeld(ActionMoveSouth) {
		dy++
	}
	if f.IsHeld(ActionMoveNorth) {
		dy--
	}
	return dx, dy
}

// Collector accumulates raw inputs for the current tick
type Collector struct {
	bindings *Bindings
	frame    Frame
}

// NewCollector creates a collector that maps codes through bindings
func NewCollector(bindings *Bindings) *Collector {
	return &Collector{bindings: bindings, frame: NewFrame()}
}

// Held records a code that is down this tick
func (c *Collector) Held(ev RawInput) {
	if act := c.bindings.MapToAction(ev); act != ActionNone {
		c.frame.Held.Put(act)
	}
}

// Pressed records a code that went down this tick. Pressed codes are also held.
func (c *Collector) Pressed(ev RawInput) {
	if act := c.bindings.MapToAction(ev); act != ActionNone {
		c.frame.Pressed.Put(act)
		c.frame.Held.Put(act)
	}
}

// Scroll adds wheel movement
func (c *Collector) Scroll(dy float64) {
	c.frame.Wheel += dy
}

// Frame returns the collected frame and starts a new one
func (c *Collector) Frame() Frame {
	f := c.frame
	c.frame = NewFrame()
	return f
}

// StickDeadZone is the analog stick deflection below which the stick is ignored
const StickDeadZone = 0.5

// StickCodes converts a left stick position into the matching d-pad codes.
// Axes run -1..1 with positive x to the right and positive y down.
func StickCodes(x, y float64) []string {
	var codes []string
	switch {
	case x < -StickDeadZone:
		codes = append(codes, "gamepad_dpad_left")
	case x > StickDeadZone:
		codes = append(codes, "gamepad_dpad_right")
	}
	switch {
	case y < -StickDeadZone:
		codes = append(codes, "gamepad_dpad_up")
	case y > StickDeadZone:
		codes = append(codes, "gamepad_dpad_down")
	}
	return codes
}
