package components

import "github.com/yohamta/donburi"

// SessionData is the outcome state of the current run of a level.
type SessionData struct {
	Score    int
	Kills    int
	GameOver bool
}

var Session = donburi.NewComponentType[SessionData]()
