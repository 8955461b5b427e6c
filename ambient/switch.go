package ambient

import "github.com/o0olele/villawalk/math32"

const (
	FanSpeedOn float32 = 25

	LightIntensityOn  float32 = 0.6
	LightIntensityOff float32 = 0
	BulbEmissiveOn    float32 = 1
	BulbEmissiveOff   float32 = 0.1
)

// Fan is a ceiling fan behind a wall switch.
type Fan struct {
	Name string  `json:"name"`
	On   bool    `json:"on"`
	Yaw  float32 `json:"yaw"`
}

func NewFan(name string, on bool) *Fan {
	return &Fan{Name: name, On: on}
}

// Speed is the blade speed in radians per second.
func (f *Fan) Speed() float32 {
	if f.On {
		return FanSpeedOn
	}
	return 0
}

func (f *Fan) Toggle() {
	f.On = !f.On
}

func (f *Fan) Tick(dt float32) {
	f.Yaw = math32.Mod(f.Yaw+f.Speed()*dt*timeScale, 2*math32.Pi)
}

// Light is a switched room light.
type Light struct {
	Name string `json:"name"`
	On   bool   `json:"on"`
}

func NewLight(name string, on bool) *Light {
	return &Light{Name: name, On: on}
}

func (l *Light) Toggle() {
	l.On = !l.On
}

func (l *Light) Intensity() float32 {
	if l.On {
		return LightIntensityOn
	}
	return LightIntensityOff
}

// Emissive is the glow of the fixture's bulbs.
func (l *Light) Emissive() float32 {
	if l.On {
		return BulbEmissiveOn
	}
	return BulbEmissiveOff
}
