package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/o0olele/villawalk/agent"
	"github.com/o0olele/villawalk/floor"
	"github.com/o0olele/villawalk/math32"
	"github.com/o0olele/villawalk/player"
	"github.com/o0olele/villawalk/sampler"
)

const (
	DefaultAddr     = ":8080"
	DefaultTickRate = 60
)

var (
	ErrUnknownKind   = errors.New("config: unknown agent kind")
	ErrUnknownLeader = errors.New("config: unknown leader")
	ErrDuplicateName = errors.New("config: duplicate agent name")
	ErrNotChaser     = errors.New("config: only chasers can follow")
	ErrLeaderCycle   = errors.New("config: followers lead each other in a cycle")
)

// Agent describes one autonomous agent in the scene file.
type Agent struct {
	Name     string         `yaml:"name"`
	Kind     agent.Kind     `yaml:"kind"`
	Speed    float32        `yaml:"speed"`
	Follower bool           `yaml:"follower"`
	Leader   string         `yaml:"leader"`
	Position math32.Vector3 `yaml:"position"`
}

type Player struct {
	Position  math32.Vector3 `yaml:"position"`
	Speed     float32        `yaml:"speed"`
	JumpSpeed float32        `yaml:"jumpSpeed"`
}

type Door struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Position math32.Vector3 `yaml:"position"`
	Yaw      float32        `yaml:"yaw"`
	Dir      float32        `yaml:"dir"`
	Speed    float32        `yaml:"speed"`
	Trigger  float32        `yaml:"trigger"`
}

// Switch is a fan or light and its initial state.
type Switch struct {
	Name string `yaml:"name"`
	On   bool   `yaml:"on"`
}

// Float is a body bobbing on the pool surface.
type Float struct {
	Name     string         `yaml:"name"`
	Position math32.Vector3 `yaml:"position"`
}

type Server struct {
	Addr           string   `yaml:"addr"`
	TickRate       int      `yaml:"tickRate"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// Scene is the scene file.
type Scene struct {
	Seed      string   `yaml:"seed"`
	TimeScale float32  `yaml:"timeScale"`
	Agents    []Agent  `yaml:"agents"`
	Player    Player   `yaml:"player"`
	Doors     []Door   `yaml:"doors"`
	Fans      []Switch `yaml:"fans"`
	Lights    []Switch `yaml:"lights"`
	Floats    []Float  `yaml:"floats"`
	Server    Server   `yaml:"server"`
}

// Default returns the villa as it ships: two wandering dogs, a chaser with a
// follower, two birds, the player at the gate, and the house fittings.
func Default() Scene {
	return Scene{
		Seed:      sampler.DefaultSeed,
		TimeScale: agent.TimeScale,
		Agents: []Agent{
			{Name: "bruno", Kind: agent.KindWalker, Position: math32.Vec3(-5, 0, 15)},
			{Name: "daisy", Kind: agent.KindWalker, Position: math32.Vec3(12, 0, 24)},
			{Name: "rex", Kind: agent.KindChaser, Position: math32.Vec3(-20, 0, 24)},
			{Name: "pup", Kind: agent.KindChaser, Follower: true, Leader: "rex", Position: math32.Vec3(-22, 0, 26)},
			{Name: "crow", Kind: agent.KindBird, Position: math32.Vec3(0, 20, 0)},
			{Name: "gull", Kind: agent.KindBird, Position: math32.Vec3(10, 18, -10)},
		},
		Player: Player{
			Position:  math32.Vec3(0, floor.EyeHeight, 26),
			Speed:     player.DefaultSpeed,
			JumpSpeed: player.DefaultJumpSpeed,
		},
		Doors: []Door{
			{Name: "front", Kind: "rotate", Position: math32.Vec3(0, 0, 8.5), Dir: 1},
			{Name: "patio", Kind: "slide", Position: math32.Vec3(6, 0, 8.5), Dir: -1},
			{Name: "gate", Kind: "rotate", Position: math32.Vec3(0, 0, 29.5), Dir: -1},
		},
		Fans:   []Switch{{Name: "living", On: true}, {Name: "bedroom", On: true}},
		Lights: []Switch{{Name: "hall", On: true}, {Name: "upstairs", On: true}},
		Floats: []Float{{Name: "ball", Position: math32.Vec3(16, 0.3, 15)}},
		Server: Server{
			Addr:           DefaultAddr,
			TickRate:       DefaultTickRate,
			AllowedOrigins: []string{"*"},
		},
	}
}

func (s Scene) normalized() Scene {
	normalized := s
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if normalized.Seed == "" {
		normalized.Seed = sampler.DefaultSeed
	}
	if normalized.TimeScale <= 0 {
		normalized.TimeScale = agent.TimeScale
	}
	normalized.Agents = append([]Agent(nil), s.Agents...)
	for i := range normalized.Agents {
		a := &normalized.Agents[i]
		a.Name = strings.TrimSpace(a.Name)
		a.Kind = agent.Kind(strings.ToLower(strings.TrimSpace(string(a.Kind))))
		a.Leader = strings.TrimSpace(a.Leader)
		if a.Speed <= 0 {
			a.Speed = DefaultSpeed(a.Kind)
		}
	}
	if normalized.Player.Speed <= 0 {
		normalized.Player.Speed = player.DefaultSpeed
	}
	if normalized.Player.JumpSpeed <= 0 {
		normalized.Player.JumpSpeed = player.DefaultJumpSpeed
	}
	if normalized.Player.Position.Y < floor.EyeHeight {
		normalized.Player.Position.Y = floor.EyeHeight
	}
	if strings.TrimSpace(normalized.Server.Addr) == "" {
		normalized.Server.Addr = DefaultAddr
	}
	if normalized.Server.TickRate <= 0 {
		normalized.Server.TickRate = DefaultTickRate
	}
	return normalized
}

func (s Scene) Normalized() Scene {
	return s.normalized()
}

// DefaultSpeed is the base speed of a kind, 0 when the kind is unknown.
func DefaultSpeed(kind agent.Kind) float32 {
	switch kind {
	case agent.KindWalker:
		return agent.WalkerProfile.Speed
	case agent.KindChaser:
		return agent.ChaserProfile.Speed
	case agent.KindBird:
		return agent.BirdSpeed
	}
	return 0
}

// Validate checks agent kinds, names and leader references.
func (s Scene) Validate() error {
	names := make(map[string]agent.Kind, len(s.Agents))
	for i, a := range s.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d: missing name", i)
		}
		switch a.Kind {
		case agent.KindWalker, agent.KindChaser, agent.KindBird:
		default:
			return fmt.Errorf("agent %q: %w %q", a.Name, ErrUnknownKind, a.Kind)
		}
		if _, ok := names[a.Name]; ok {
			return fmt.Errorf("agent %q: %w", a.Name, ErrDuplicateName)
		}
		names[a.Name] = a.Kind
	}
	for _, a := range s.Agents {
		if !a.Follower {
			continue
		}
		if a.Kind != agent.KindChaser {
			return fmt.Errorf("agent %q: %w", a.Name, ErrNotChaser)
		}
		if _, ok := names[a.Leader]; !ok || a.Leader == a.Name {
			return fmt.Errorf("agent %q: %w %q", a.Name, ErrUnknownLeader, a.Leader)
		}
	}
	if err := s.checkLeaderChains(); err != nil {
		return err
	}
	for _, d := range s.Doors {
		switch d.Kind {
		case "", "rotate", "slide":
		default:
			return fmt.Errorf("door %q: unknown kind %q", d.Name, d.Kind)
		}
	}
	return nil
}

// checkLeaderChains walks every follower's chain of leaders. Each chain must
// end at an agent that is not itself following.
func (s Scene) checkLeaderChains() error {
	leaders := make(map[string]string)
	for _, a := range s.Agents {
		if a.Follower {
			leaders[a.Name] = a.Leader
		}
	}
	for _, a := range s.Agents {
		if !a.Follower {
			continue
		}
		seen := map[string]bool{a.Name: true}
		for name, ok := leaders[a.Name]; ok; name, ok = leaders[name] {
			if seen[name] {
				return fmt.Errorf("agent %q: %w", a.Name, ErrLeaderCycle)
			}
			seen[name] = true
		}
	}
	return nil
}

// Parse decodes a scene file, fills defaults and validates it.
func Parse(data []byte) (Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scene{}, fmt.Errorf("parse scene: %w", err)
	}
	s = s.normalized()
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Load reads a scene file. An empty path yields Default().
func Load(path string) (Scene, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes s as YAML.
func Save(path string, s Scene) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
