package components

import "github.com/yohamta/donburi"

// DeathData marks a dead player. Its presence is the death flag and Timer is
// the respawn countdown in seconds.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
