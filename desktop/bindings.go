package desktop

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps an action to keyboard keys and standard gamepad buttons.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionJump: {
		Keys:    []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionAttack: {
		Keys:    []ebiten.Key{ebiten.KeyJ, ebiten.KeyX},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionSwitchWeapon: {
		Keys:    []ebiten.Key{ebiten.KeyK, ebiten.KeyTab},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionPause: {
		Keys:    []ebiten.Key{ebiten.KeyP},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionBack: {
		Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
	cfg.ActionConfirm: {
		Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
}

func init() {
	for n := 1; n <= 9; n++ {
		action, _ := cfg.ActionForLevel(n)
		Bindings[action] = Binding{Keys: []ebiten.Key{
			ebiten.Key1 + ebiten.Key(n-1),
			ebiten.KeyNumpad1 + ebiten.Key(n-1),
		}}
	}
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollHeld reads which actions are held right now. A left click counts as
// confirm so menus work with the mouse.
func pollHeld() [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					held[action] = true
				}
			}
		}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		held[cfg.ActionConfirm] = true
	}
	return held
}
