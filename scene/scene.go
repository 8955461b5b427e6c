package scene

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/o0olele/villawalk/agent"
	"github.com/o0olele/villawalk/ambient"
	"github.com/o0olele/villawalk/config"
	"github.com/o0olele/villawalk/floor"
	"github.com/o0olele/villawalk/player"
	"github.com/o0olele/villawalk/sampler"
	"github.com/o0olele/villawalk/zone"
)

// ErrNotFound is returned for an unknown agent, fan or light name.
var ErrNotFound = errors.New("scene: not found")

const (
	// VentSlats and ChandelierBulbs size the fixture animations in snapshots.
	VentSlats       = 6
	ChandelierBulbs = 5
)

type named struct {
	name string
	id   agent.ID
}

// Scene is the running villa: agents, player and props advanced by one frame
// clock. It is not safe for concurrent use.
type Scene struct {
	cfg      config.Scene
	logger   *log.Logger
	zones    *zone.Set
	registry *agent.Registry
	agents   []named
	ids      map[string]agent.ID

	player *player.Controller
	water  *ambient.Water
	floats []*ambient.Float
	doors  []*ambient.Door
	fans   []*ambient.Fan
	lights []*ambient.Light

	frame uint64
	clock float32
	stats agent.TickStats
}

// New builds a scene from cfg. Agents are registered leaders first: every
// non-follower, then followers in waves, each wave taking the followers whose
// leader is already registered. Chains of followers resolve whatever their
// order in the file.
func New(cfg config.Scene, logger *log.Logger) (*Scene, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		cfg:    cfg,
		logger: logger.WithPrefix("scene"),
		zones:  zone.Villa(),
		ids:    make(map[string]agent.ID, len(cfg.Agents)),
	}

	rng := sampler.NewDeterministicRNG(cfg.Seed, "agents")
	s.registry = agent.NewRegistry(s.zones, sampler.New(rng))
	s.registry.SetLogger(logger.WithPrefix("agent"))
	s.registry.SetTimeScale(cfg.TimeScale)

	for _, a := range cfg.Agents {
		if !a.Follower {
			s.addAgent(a)
		}
	}
	if err := s.addFollowers(cfg.Agents); err != nil {
		return nil, err
	}

	p := cfg.Player
	s.player = player.NewController(p.Position, p.Speed, p.JumpSpeed)

	wave := ambient.DefaultWave()
	s.water = ambient.NewWater(wave)
	for _, f := range cfg.Floats {
		s.floats = append(s.floats, ambient.NewFloat(f.Position, wave))
	}
	for _, d := range cfg.Doors {
		door, err := ambient.NewDoor(d.Name, ambient.DoorKind(d.Kind), d.Position, d.Yaw, d.Dir, d.Speed, d.Trigger)
		if err != nil {
			return nil, fmt.Errorf("build scene: %w", err)
		}
		s.doors = append(s.doors, door)
	}
	for _, f := range cfg.Fans {
		s.fans = append(s.fans, ambient.NewFan(f.Name, f.On))
	}
	for _, l := range cfg.Lights {
		s.lights = append(s.lights, ambient.NewLight(l.Name, l.On))
	}

	s.logger.Info("scene ready", "seed", cfg.Seed, "zones", s.zones.Len(), "agents", s.registry.Len(), "doors", len(s.doors))
	return s, nil
}

func (s *Scene) addFollowers(agents []config.Agent) error {
	var pending []config.Agent
	for _, a := range agents {
		if a.Follower {
			pending = append(pending, a)
		}
	}
	for len(pending) > 0 {
		var waiting []config.Agent
		for _, a := range pending {
			if _, ok := s.ids[a.Leader]; ok {
				s.addAgent(a)
			} else {
				waiting = append(waiting, a)
			}
		}
		if len(waiting) == len(pending) {
			return fmt.Errorf("build scene: agent %q: %w", waiting[0].Name, config.ErrLeaderCycle)
		}
		pending = waiting
	}
	return nil
}

func (s *Scene) addAgent(a config.Agent) {
	if a.Kind == agent.KindBird {
		if !agent.SkyDomain.Contains(a.Position) {
			s.logger.Warn("bird starts outside the sky", "agent", a.Name, "pos", a.Position)
		}
	} else {
		if z, blocked := s.zones.Blocking(a.Position.X, a.Position.Z); blocked {
			s.logger.Warn("agent starts inside an obstacle", "agent", a.Name, "zone", z.Name, "pos", a.Position)
		}
	}

	var id agent.ID
	switch {
	case a.Kind == agent.KindBird:
		id = s.registry.AddFlyer(a.Position, a.Speed)
	case a.Follower:
		profile := agent.ChaserProfile
		profile.Speed = a.Speed
		id = s.registry.AddFollower(a.Position, s.ids[a.Leader], profile)
	default:
		profile := agent.WalkerProfile
		if a.Kind == agent.KindChaser {
			profile = agent.ChaserProfile
		}
		profile.Speed = a.Speed
		id = s.registry.AddWanderer(a.Kind, a.Position, profile)
	}
	s.ids[a.Name] = id
	s.agents = append(s.agents, named{name: a.Name, id: id})
}

// Config returns the normalized configuration the scene was built from.
func (s *Scene) Config() config.Scene {
	return s.cfg
}

func (s *Scene) Registry() *agent.Registry {
	return s.registry
}

func (s *Scene) Zones() *zone.Set {
	return s.zones
}

func (s *Scene) Player() *player.Controller {
	return s.player
}

// Frame returns the number of ticks that advanced the scene.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Clock returns the scene time in milliseconds.
func (s *Scene) Clock() float32 {
	return s.clock
}

// Lookup resolves an agent name to its handle.
func (s *Scene) Lookup(name string) (agent.ID, bool) {
	id, ok := s.ids[name]
	return id, ok
}

// Floor resolves the floor height at (x, z) for a caller at elevation hint.
func (s *Scene) Floor(x, z, hint float32) float32 {
	return floor.Height(x, z, hint)
}

// Tick advances the scene by dt milliseconds. Non-positive dt leaves the
// scene untouched.
func (s *Scene) Tick(dt float32, in player.Input) agent.TickStats {
	if dt <= 0 {
		return agent.TickStats{}
	}
	s.frame++
	s.clock += dt

	s.stats = s.registry.Tick(dt)
	s.player.Tick(dt, in)

	s.water.Tick(dt)
	for _, f := range s.floats {
		f.Tick(dt)
	}
	eye := s.player.Position
	for _, d := range s.doors {
		d.Tick(dt, eye)
	}
	for _, f := range s.fans {
		f.Tick(dt)
	}
	return s.stats
}

// ToggleFan flips a fan switch and returns its new state.
func (s *Scene) ToggleFan(name string) (bool, error) {
	for _, f := range s.fans {
		if f.Name == name {
			f.Toggle()
			s.logger.Debug("fan switched", "fan", name, "on", f.On)
			return f.On, nil
		}
	}
	return false, fmt.Errorf("fan %q: %w", name, ErrNotFound)
}

// ToggleLight flips a light switch and returns its new state.
func (s *Scene) ToggleLight(name string) (bool, error) {
	for _, l := range s.lights {
		if l.Name == name {
			l.Toggle()
			s.logger.Debug("light switched", "light", name, "on", l.On)
			return l.On, nil
		}
	}
	return false, fmt.Errorf("light %q: %w", name, ErrNotFound)
}
