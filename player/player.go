package player

import (
	"github.com/o0olele/villawalk/floor"
	"github.com/o0olele/villawalk/math32"
)

const (
	DefaultSpeed     float32 = 5
	DefaultJumpSpeed float32 = 5
	// Gravity is the downward acceleration in units/s².
	Gravity float32 = 15
	// MaxFrame drops frames longer than this many milliseconds (tab switches, stalls).
	MaxFrame float32 = 100
	timeScale        float32 = 0.001
)

// Input is the state of the movement keys for one frame. Yaw is the camera's
// rotation about +Y in radians.
type Input struct {
	Forward bool    `json:"forward"`
	Back    bool    `json:"back"`
	Left    bool    `json:"left"`
	Right   bool    `json:"right"`
	Jump    bool    `json:"jump"`
	Yaw     float32 `json:"yaw"`
}

// Controller is a first-person walker with gravity, jumping, and ramp/upper
// floor resolution. Position is the eye position.
type Controller struct {
	Position  math32.Vector3
	VelocityY float32
	OnGround  bool
	Speed     float32
	JumpSpeed float32
}

// NewController places the player's eye at pos.
func NewController(pos math32.Vector3, speed, jumpSpeed float32) *Controller {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	if jumpSpeed <= 0 {
		jumpSpeed = DefaultJumpSpeed
	}
	return &Controller{
		Position:  pos,
		OnGround:  true,
		Speed:     speed,
		JumpSpeed: jumpSpeed,
	}
}

// Direction converts keys into a unit planar direction in world space.
// Forward is -Z before the yaw rotation.
func (in Input) Direction() math32.Vector3 {
	var dir math32.Vector3
	if in.Forward {
		dir.Z -= 1
	}
	if in.Back {
		dir.Z += 1
	}
	if in.Left {
		dir.X -= 1
	}
	if in.Right {
		dir.X += 1
	}
	return dir.Normalize().RotateY(in.Yaw)
}

// Floor returns the floor elevation under the player.
func (c *Controller) Floor() float32 {
	return floor.Height(c.Position.X, c.Position.Z, c.Position.Y-floor.EyeHeight)
}

// Tick moves, applies gravity, and lands the player on the floor.
func (c *Controller) Tick(dt float32, in Input) {
	if dt <= 0 || dt > MaxFrame {
		return
	}
	secs := dt * timeScale

	dir := in.Direction()
	c.Position.X += dir.X * c.Speed * secs
	c.Position.Z += dir.Z * c.Speed * secs

	ground := c.Floor()
	if in.Jump && c.OnGround {
		c.VelocityY = c.JumpSpeed
		c.OnGround = false
	}
	c.VelocityY -= Gravity * secs
	c.Position.Y += c.VelocityY * secs
	if c.Position.Y <= ground+floor.EyeHeight {
		c.Position.Y = ground + floor.EyeHeight
		c.VelocityY = 0
		c.OnGround = true
	}
}
