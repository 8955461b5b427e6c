package ambient

import "github.com/o0olele/villawalk/math32"

const (
	LegSwingSpeed float32 = 8
	LegSwingAngle float32 = 0.5
)

// LegSwing returns the pitch of leg i of a four-legged walk cycle at t
// seconds. Front legs (0, 1) and hind legs (2, 3) run half a cycle apart and
// each pair alternates.
func LegSwing(i int, t float32) float32 {
	var offset float32
	if i >= 2 {
		offset = math32.Pi
	}
	return math32.Sin(t*LegSwingSpeed+offset+float32(i%2)*math32.Pi) * LegSwingAngle
}

// TailWag returns the tail roll at scene time ms.
func TailWag(ms float32) float32 {
	return math32.Sin(ms*0.008) * 0.4
}

// VentSwing returns the pitch of AC vent slat i at t seconds.
func VentSwing(i int, t float32) float32 {
	return math32.Sin(t*2+float32(i)) * 0.15
}

// ChandelierGlow returns the emissive intensity of bulb i at scene time ms.
func ChandelierGlow(i int, ms float32) float32 {
	return 0.8 + math32.Sin(ms*0.003+float32(i)*1.5)*0.15
}
