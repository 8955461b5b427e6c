package agent

import (
	"github.com/charmbracelet/log"

	"github.com/o0olele/villawalk/geometry"
	"github.com/o0olele/villawalk/math32"
	"github.com/o0olele/villawalk/sampler"
	"github.com/o0olele/villawalk/zone"
)

// ID is a non-owning handle to an agent in a Registry.
type ID int32

// Kind names the scene entity an agent drives.
type Kind string

const (
	KindWalker Kind = "walker"
	KindChaser Kind = "chaser"
	KindBird   Kind = "bird"
)

// Mode is the behavior variant an agent was built with.
type Mode string

const (
	ModeWandering Mode = "wandering"
	ModeFollowing Mode = "following"
	ModeFlying    Mode = "flying"
)

const (
	// TimeScale converts frame milliseconds to seconds.
	TimeScale float32 = 0.001
	// FollowMultiplier lets followers close the gap on a leader of equal speed.
	FollowMultiplier float32 = 1.1
	// BirdSpeed is the flying agent's default base speed.
	BirdSpeed float32 = 2
	// BirdArrivalRadius is the 3-D distance at which a bird picks a new target.
	BirdArrivalRadius float32 = 1
	// groundFacing turns the dog models, which face -Z, toward travel.
	groundFacing = math32.Pi
)

// Profile fixes the tuning of one ground kind.
type Profile struct {
	Speed         float32
	ArrivalRadius float32
}

var (
	WalkerProfile = Profile{Speed: 1.5, ArrivalRadius: 0.5}
	ChaserProfile = Profile{Speed: 6, ArrivalRadius: 1.5}
)

var (
	// YardDomain is where ground waypoints are drawn: the front yard, on the ground.
	YardDomain = geometry.NewAABB(-28, 28, 0, 0, 10, 28)
	// SkyDomain is where bird waypoints are drawn.
	SkyDomain = geometry.NewAABB(-50, 50, 15, 25, -50, 50)
)

// Agent is an autonomously moving scene entity ticked once per frame.
type Agent interface {
	ID() ID
	Kind() Kind
	Mode() Mode
	Position() math32.Vector3
	Heading() float32
	// Target reports the point the agent is heading for, if it has one.
	Target() (math32.Vector3, bool)
	// Tick advances the agent by dt milliseconds.
	Tick(dt float32) Outcome
}

// Locator resolves a handle to the agent's current position.
type Locator interface {
	Locate(id ID) (math32.Vector3, bool)
}

// Outcome reports what one tick did.
type Outcome uint8

const (
	OutcomeIdle Outcome = iota
	OutcomeMoved
	OutcomeArrived
	OutcomeBlocked
	OutcomeLeaderLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeArrived:
		return "arrived"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeLeaderLost:
		return "leader-lost"
	}
	return "unknown"
}

// env is shared by every agent of one registry.
type env struct {
	zones     *zone.Set
	sampler   *sampler.Sampler
	locator   Locator
	timeScale float32
	logger    *log.Logger
}

type body struct {
	id      ID
	kind    Kind
	pos     math32.Vector3
	heading float32
}

func (b *body) ID() ID                   { return b.id }
func (b *body) Kind() Kind               { return b.kind }
func (b *body) Position() math32.Vector3 { return b.pos }
func (b *body) Heading() float32         { return b.heading }

func (b *body) commit(next, dir math32.Vector3, facing float32) {
	b.pos = next
	b.heading = dir.Yaw() + facing
}

// planarStep computes the candidate position one ground step toward target.
// dist is the horizontal distance before the step.
func planarStep(pos, target math32.Vector3, step float32) (next, dir math32.Vector3, dist float32) {
	delta := target.Sub(pos).Planar()
	dist = delta.Length()
	dir = delta.Normalize()
	next = pos.Add(dir.Mul(step))
	return next, dir, dist
}
