package config

import "fmt"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionSwitchWeapon
	ActionPause
	ActionBack
	ActionConfirm
	ActionLevel1
	ActionLevel2
	ActionLevel3
	ActionLevel4
	ActionLevel5
	ActionLevel6
	ActionLevel7
	ActionLevel8
	ActionLevel9
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:         "none",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionJump:         "jump",
	ActionAttack:       "attack",
	ActionSwitchWeapon: "switch_weapon",
	ActionPause:        "pause",
	ActionBack:         "back",
	ActionConfirm:      "confirm",
}

func (a ActionID) String() string {
	if n, ok := a.LevelNumber(); ok {
		return fmt.Sprintf("level_%d", n)
	}
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

// LevelNumber returns the 1-based level a numeric select action refers to.
func (a ActionID) LevelNumber() (int, bool) {
	if a >= ActionLevel1 && a <= ActionLevel9 {
		return int(a-ActionLevel1) + 1, true
	}
	return 0, false
}

// ActionForLevel is the inverse of LevelNumber.
func ActionForLevel(n int) (ActionID, bool) {
	if n < 1 || n > 9 {
		return ActionNone, false
	}
	return ActionLevel1 + ActionID(n-1), true
}

// ParseAction looks an action up by its name.
func ParseAction(name string) (ActionID, bool) {
	for id := ActionID(0); id < ActionCount; id++ {
		if id.String() == name {
			return id, true
		}
	}
	return ActionNone, false
}
