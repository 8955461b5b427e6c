package ambient

import "github.com/o0olele/villawalk/math32"

const (
	DefaultWaveSpeed     float32 = 2
	DefaultWaveAmplitude float32 = 0.1
	timeScale            float32 = 0.001
)

// Wave is the pool surface ripple.
type Wave struct {
	Speed     float32 `json:"speed" yaml:"speed"`
	Amplitude float32 `json:"amplitude" yaml:"amplitude"`
}

// DefaultWave returns the pool's ripple settings.
func DefaultWave() Wave {
	return Wave{Speed: DefaultWaveSpeed, Amplitude: DefaultWaveAmplitude}
}

// Offset returns the surface displacement at plane coordinates (x, y) after
// t seconds. The pool plane lies flat, so plane y is world -z.
func (w Wave) Offset(x, y, t float32) float32 {
	s, a := w.Speed, w.Amplitude
	return math32.Sin(x*2+t*s)*a + math32.Cos(y*3+t*s*0.7)*a*0.6
}

// Water is an animated wave surface with its own clock.
type Water struct {
	Wave
	Time float32 `json:"time"`
}

func NewWater(w Wave) *Water {
	return &Water{Wave: w}
}

func (w *Water) Tick(dt float32) {
	w.Time += dt * timeScale
}

// Height returns the surface offset at world (x, z).
func (w *Water) Height(x, z float32) float32 {
	return w.Offset(x, -z, w.Time)
}

// Float is a body bobbing on a wave, like the pool ball.
type Float struct {
	Wave
	Position math32.Vector3 `json:"position"`
	Time     float32        `json:"time"`
	restY    float32
}

func NewFloat(pos math32.Vector3, w Wave) *Float {
	return &Float{Wave: w, Position: pos, restY: pos.Y}
}

func (f *Float) Tick(dt float32) {
	if dt == 0 {
		return
	}
	f.Time += dt * timeScale
	f.Position.Y = f.restY + f.Offset(f.Position.X, -f.Position.Z, f.Time)
}
