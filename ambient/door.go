package ambient

import (
	"fmt"

	"github.com/o0olele/villawalk/math32"
)

// DoorKind selects how a door opens.
type DoorKind string

const (
	DoorRotate DoorKind = "rotate"
	DoorSlide  DoorKind = "slide"
)

const (
	DefaultTriggerDistance float32 = 2.5
	DefaultDoorSpeed       float32 = 2
	// SlideTravel is how far a sliding door moves along X when open.
	SlideTravel float32 = 1.5
	// doorEpsilon stops the approach once the door is close enough.
	doorEpsilon float32 = 0.01
	doorRate    float32 = 0.005
)

// Door opens while the player is within its trigger distance and closes
// again once they leave. Rotating doors swing a quarter turn about Y, sliding
// doors move along X.
type Door struct {
	Name     string         `json:"name"`
	Kind     DoorKind       `json:"kind"`
	Dir      float32        `json:"dir"`
	Speed    float32        `json:"speed"`
	Trigger  float32        `json:"trigger"`
	Origin   math32.Vector3 `json:"origin"`
	Position math32.Vector3 `json:"position"`
	Yaw      float32        `json:"yaw"`
	Open     bool           `json:"open"`
	baseYaw  float32
}

// NewDoor builds a closed door at pos. dir is +1 or -1; speed and trigger
// fall back to defaults when non-positive.
func NewDoor(name string, kind DoorKind, pos math32.Vector3, yaw, dir, speed, trigger float32) (*Door, error) {
	switch kind {
	case DoorRotate, DoorSlide:
	case "":
		kind = DoorRotate
	default:
		return nil, fmt.Errorf("door %q: unknown kind %q", name, kind)
	}
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	if speed <= 0 {
		speed = DefaultDoorSpeed
	}
	if trigger <= 0 {
		trigger = DefaultTriggerDistance
	}
	return &Door{
		Name:     name,
		Kind:     kind,
		Dir:      dir,
		Speed:    speed,
		Trigger:  trigger,
		Origin:   pos,
		Position: pos,
		Yaw:      yaw,
		baseYaw:  yaw,
	}, nil
}

// Tick eases the door toward open or closed depending on where the player is.
func (d *Door) Tick(dt float32, player math32.Vector3) {
	d.Open = player.Sub(d.Position).Planar().Length() < d.Trigger
	factor := dt * doorRate * d.Speed

	if d.Kind == DoorSlide {
		target := d.Origin.X
		if d.Open {
			target += d.Dir * SlideTravel
		}
		if diff := target - d.Position.X; math32.Abs(diff) > doorEpsilon {
			d.Position.X += diff * factor
		}
		return
	}

	target := d.baseYaw
	if d.Open {
		target += d.Dir * math32.Pi / 2
	}
	if diff := target - d.Yaw; math32.Abs(diff) > doorEpsilon {
		d.Yaw += diff * factor
	}
}
