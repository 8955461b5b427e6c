package floor

import "github.com/o0olele/villawalk/math32"

const (
	// UpperFloor is the elevation of the villa's first floor.
	UpperFloor float32 = 3.5
	// UpperFloorThreshold is the hint above which a caller inside the
	// footprint stands on the upper floor.
	UpperFloorThreshold float32 = 2.0
	// EyeHeight is the player's camera height above the floor.
	EyeHeight float32 = 1.7
)

// Rect is a closed XZ rectangle.
type Rect struct {
	MinX, MaxX, MinZ, MaxZ float32
}

// Contains reports whether (x, z) is inside the rectangle, edges included.
func (r Rect) Contains(x, z float32) bool {
	return x >= r.MinX && x <= r.MaxX && z >= r.MinZ && z <= r.MaxZ
}

var (
	// Ramp is the staircase corridor, rising from z = 1.5 toward z = -8.
	Ramp = Rect{MinX: -2.5, MaxX: 0.5, MinZ: -8.0, MaxZ: 1.5}
	// Footprint is the villa's floor plan.
	Footprint = Rect{MinX: -12, MaxX: 12, MinZ: -8, MaxZ: 8}
)

// Height returns the floor elevation under (x, z). hint is the caller's
// current elevation (eye position minus EyeHeight).
//
// The ramp is tested first and interpolates 0 -> UpperFloor as z falls from
// 1.5 to -8. Elsewhere in the footprint the floor is UpperFloor only while
// the caller is already above UpperFloorThreshold, so walking off the top of
// the ramp keeps you upstairs and walking in at ground level keeps you down.
func Height(x, z, hint float32) float32 {
	if Ramp.Contains(x, z) {
		return RampProgress(z) * UpperFloor
	}
	if Footprint.Contains(x, z) && hint > UpperFloorThreshold {
		return UpperFloor
	}
	return 0
}

// RampProgress is how far up the ramp z is, in [0, 1].
func RampProgress(z float32) float32 {
	return math32.Clamp((Ramp.MaxZ-z)/(Ramp.MaxZ-Ramp.MinZ), 0, 1)
}
