package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "allfarm/pkg/engine/input"
	"allfarm/pkg/game/devtools"
	"allfarm/pkg/game/gameplay"
)

// Update polls input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("Main window opened", "width", w, "height", h)
	}

	e.pollKeyboard()
	e.pollGamepads()
	_, wheel := ebiten.Wheel()
	e.collector.Scroll(wheel)

	ev := gameplay.Step(e.game, e.collector.Frame(), 1/float64(ebiten.TPS()))
	e.handleEvents(ev)

	if e.game.Quit {
		return ebiten.Termination
	}
	return nil
}

// pollKeyboard feeds every mapped key that is down into the collector
func (e *EbitenRenderer) pollKeyboard() {
	for _, k := range keyCodes {
		raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: k.code}
		switch {
		case inpututil.IsKeyJustPressed(k.key):
			e.collector.Pressed(raw)
		case ebiten.IsKeyPressed(k.key):
			e.collector.Held(raw)
		}
	}
}

// pollGamepads feeds standard-layout buttons and the left stick into the collector.
// Gamepads without a standard layout are ignored.
func (e *EbitenRenderer) pollGamepads() {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCodes {
			raw := engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: b.code}
			switch {
			case inpututil.IsStandardGamepadButtonJustPressed(id, b.button):
				e.collector.Pressed(raw)
			case ebiten.IsStandardGamepadButtonPressed(id, b.button):
				e.collector.Held(raw)
			}
		}

		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, code := range engineinput.StickCodes(x, y) {
			e.collector.Held(engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code})
		}
	}
}

// handleEvents logs what the tick changed and runs the requested debug tools
func (e *EbitenRenderer) handleEvents(ev gameplay.Events) {
	if ev.Painted {
		e.logger.Debug("Painted tile", "col", ev.PaintedCol, "row", ev.PaintedRow, "type", ev.PaintedType)
	}
	if ev.Zoomed {
		e.logger.Debug("Zoom changed", "zoom", e.game.Camera.Zoom, "factor", e.game.Camera.ScaleFactor)
	}
	if ev.GridToggled {
		e.logger.Info("Grid overlay toggled", "enabled", e.game.DebugGrid)
	}
	if ev.DumpRequested {
		path, err := devtools.DumpGridToFile(e.game.Grid, devtools.MapDumpFilename, e.catalog)
		if err != nil {
			e.logger.Error("Map dump failed", "err", err)
		} else {
			e.logger.Info("Map dumped", "path", path)
		}
	}
	if ev.Quit {
		e.logger.Info("Quit requested", "edits", e.game.Edits)
	}
}
