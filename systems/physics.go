package systems

import (
	"math"

	"github.com/automoto/hedgecop/components"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sanitizeVelocity zeroes any non-finite velocity component so a single bad
// tick cannot poison later integration.
func sanitizeVelocity(physics *components.PhysicsData) {
	if !finite(physics.VX) {
		physics.VX = 0
	}
	if !finite(physics.VY) {
		physics.VY = 0
	}
}

// integrate moves obj by its velocity. The pre-move position is kept in
// PrevX/PrevY and restored if the result is not finite.
func integrate(obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	sanitizeVelocity(physics)

	physics.PrevX = obj.X
	physics.PrevY = obj.Y

	x := obj.X + physics.VX*dt
	y := obj.Y + physics.VY*dt
	if !finite(x) {
		x = physics.PrevX
		physics.VX = 0
	}
	if !finite(y) {
		y = physics.PrevY
		physics.VY = 0
	}
	obj.MoveTo(x, y)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
