package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Clamp keeps Current within [0, Max].
func (h *HealthData) Clamp() {
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

var Health = donburi.NewComponentType[HealthData]()
