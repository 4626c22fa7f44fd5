package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "allfarm/pkg/engine/input"
)

type keyCode struct {
	key  ebiten.Key
	code string
}

// keyCodes maps every Ebiten key whose name is a known binding code
var keyCodes = buildKeyCodes()

func buildKeyCodes() []keyCode {
	var codes []keyCode
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if code := engineinput.KeyCode(k.String()); engineinput.IsKnownCode(code) {
			codes = append(codes, keyCode{key: k, code: code})
		}
	}
	return codes
}

// gamepadCodes maps standard-layout gamepad buttons to raw codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y"},
	{ebiten.StandardGamepadButtonFrontTopLeft, "gamepad_lb"},
	{ebiten.StandardGamepadButtonFrontTopRight, "gamepad_rb"},
	{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
	{ebiten.StandardGamepadButtonCenterLeft, "gamepad_back"},
}
