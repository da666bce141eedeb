package components

import (
	cfg "github.com/automoto/hedgecop/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Action derives the temporal state of an action.
func (in *InputData) Action(a cfg.ActionID) ActionState {
	if a < 0 || a >= cfg.ActionCount {
		return ActionState{}
	}
	return ActionState{
		Pressed:      in.Current[a],
		JustPressed:  in.Current[a] && !in.Previous[a],
		JustReleased: !in.Current[a] && in.Previous[a],
	}
}

var Input = donburi.NewComponentType[InputData]()
