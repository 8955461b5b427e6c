package agent

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/o0olele/villawalk/math32"
	"github.com/o0olele/villawalk/sampler"
	"github.com/o0olele/villawalk/zone"
)

// ErrUnknownAgent is returned when a handle does not resolve.
var ErrUnknownAgent = errors.New("agent: unknown agent")

// TickStats counts tick outcomes across a registry.
type TickStats struct {
	Idle       int `json:"idle"`
	Moved      int `json:"moved"`
	Arrived    int `json:"arrived"`
	Blocked    int `json:"blocked"`
	LeaderLost int `json:"leaderLost"`
}

func (s *TickStats) add(o Outcome) {
	switch o {
	case OutcomeIdle:
		s.Idle++
	case OutcomeMoved:
		s.Moved++
	case OutcomeArrived:
		s.Arrived++
	case OutcomeBlocked:
		s.Blocked++
	case OutcomeLeaderLost:
		s.LeaderLost++
	}
}

// Registry owns the agents of a scene and hands out ID handles. Followers
// hold handles, never pointers, so a leader can be removed at any time.
type Registry struct {
	env    *env
	agents []Agent
	index  map[ID]int
	next   ID
}

// NewRegistry creates an empty registry whose ground agents avoid zones and
// draw waypoints from s.
func NewRegistry(zones *zone.Set, s *sampler.Sampler) *Registry {
	if zones == nil {
		zones = zone.Villa()
	}
	if s == nil {
		s = sampler.New(nil)
	}
	r := &Registry{
		index: make(map[ID]int),
		next:  1,
	}
	r.env = &env{
		zones:     zones,
		sampler:   s,
		locator:   r,
		timeScale: TimeScale,
		logger:    log.Default(),
	}
	return r
}

// SetLogger sets the logger used for per-tick debug output.
func (r *Registry) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	r.env.logger = logger
}

// SetTimeScale sets the frame-time multiplier (milliseconds to seconds by default).
func (r *Registry) SetTimeScale(scale float32) {
	if scale <= 0 {
		scale = TimeScale
	}
	r.env.timeScale = scale
}

// GetTimeScale returns the frame-time multiplier.
func (r *Registry) GetTimeScale() float32 {
	return r.env.timeScale
}

// Zones returns the zone set shared by the registry's ground agents.
func (r *Registry) Zones() *zone.Set {
	return r.env.zones
}

func (r *Registry) add(build func(id ID) Agent) ID {
	id := r.next
	r.next++
	r.index[id] = len(r.agents)
	r.agents = append(r.agents, build(id))
	return id
}

// AddWanderer adds a waypoint-wandering ground agent. Its first waypoint is
// drawn immediately.
func (r *Registry) AddWanderer(kind Kind, pos math32.Vector3, profile Profile) ID {
	return r.add(func(id ID) Agent {
		return newWanderer(id, kind, pos, profile, r.env)
	})
}

// AddFollower adds a chase agent that tracks leader. The leader does not need
// to exist yet; until it does, the follower's ticks are skipped.
func (r *Registry) AddFollower(pos math32.Vector3, leader ID, profile Profile) ID {
	return r.add(func(id ID) Agent {
		return newFollower(id, pos, leader, profile, r.env)
	})
}

// AddFlyer adds a bird.
func (r *Registry) AddFlyer(pos math32.Vector3, speed float32) ID {
	if speed <= 0 {
		speed = BirdSpeed
	}
	return r.add(func(id ID) Agent {
		return newFlyer(id, pos, speed, r.env)
	})
}

// Remove drops an agent. Followers of it keep their handle and idle.
func (r *Registry) Remove(id ID) error {
	i, ok := r.index[id]
	if !ok {
		return ErrUnknownAgent
	}
	r.agents = append(r.agents[:i], r.agents[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.agents); j++ {
		r.index[r.agents[j].ID()] = j
	}
	return nil
}

// Get resolves a handle.
func (r *Registry) Get(id ID) (Agent, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.agents[i], true
}

// Locate implements Locator.
func (r *Registry) Locate(id ID) (math32.Vector3, bool) {
	a, ok := r.Get(id)
	if !ok {
		return math32.Vector3{}, false
	}
	return a.Position(), true
}

// Len returns the number of live agents.
func (r *Registry) Len() int {
	return len(r.agents)
}

// Each visits agents in insertion order.
func (r *Registry) Each(fn func(Agent)) {
	for _, a := range r.agents {
		fn(a)
	}
}

// Tick advances every agent once by dt milliseconds.
func (r *Registry) Tick(dt float32) TickStats {
	var stats TickStats
	for _, a := range r.agents {
		outcome := a.Tick(dt)
		stats.add(outcome)
		switch outcome {
		case OutcomeBlocked:
			r.env.logger.Debug("step blocked", "agent", a.ID(), "kind", a.Kind(), "mode", a.Mode(), "pos", a.Position())
		case OutcomeLeaderLost:
			r.env.logger.Debug("leader not found, holding", "agent", a.ID())
		}
	}
	return stats
}
