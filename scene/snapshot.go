package scene

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/o0olele/villawalk/agent"
	"github.com/o0olele/villawalk/ambient"
	"github.com/o0olele/villawalk/math32"
)

// AgentState is the wire view of one agent.
type AgentState struct {
	Name     string          `json:"name"`
	ID       agent.ID        `json:"id"`
	Kind     agent.Kind      `json:"kind"`
	Mode     agent.Mode      `json:"mode"`
	Position math32.Vector3  `json:"position"`
	Heading  float32         `json:"heading"`
	Target   *math32.Vector3 `json:"target,omitempty"`
	Legs     []float32       `json:"legs,omitempty"`
	Tail     float32         `json:"tail,omitempty"`
}

type PlayerState struct {
	Position  math32.Vector3 `json:"position"`
	VelocityY float32        `json:"velocityY"`
	OnGround  bool           `json:"onGround"`
	Floor     float32        `json:"floor"`
}

type DoorState struct {
	Name     string           `json:"name"`
	Kind     ambient.DoorKind `json:"kind"`
	Open     bool             `json:"open"`
	Position math32.Vector3   `json:"position"`
	Yaw      float32          `json:"yaw"`
}

type FanState struct {
	Name  string  `json:"name"`
	On    bool    `json:"on"`
	Yaw   float32 `json:"yaw"`
	Speed float32 `json:"speed"`
}

type LightState struct {
	Name      string  `json:"name"`
	On        bool    `json:"on"`
	Intensity float32 `json:"intensity"`
	Emissive  float32 `json:"emissive"`
}

type FloatState struct {
	Position math32.Vector3 `json:"position"`
}

// Snapshot is a copy of the scene state after a frame.
type Snapshot struct {
	Frame      uint64          `json:"frame"`
	Clock      float32         `json:"clock"`
	Stats      agent.TickStats `json:"stats"`
	Agents     []AgentState    `json:"agents"`
	Player     PlayerState     `json:"player"`
	Doors      []DoorState     `json:"doors"`
	Fans       []FanState      `json:"fans"`
	Lights     []LightState    `json:"lights"`
	Floats     []FloatState    `json:"floats"`
	Vents      []float32       `json:"vents"`
	Chandelier []float32       `json:"chandelier"`
}

func (s *Scene) agentState(n named) (AgentState, bool) {
	a, ok := s.registry.Get(n.id)
	if !ok {
		return AgentState{}, false
	}
	st := AgentState{
		Name:     n.name,
		ID:       a.ID(),
		Kind:     a.Kind(),
		Mode:     a.Mode(),
		Position: a.Position(),
		Heading:  a.Heading(),
	}
	if target, ok := a.Target(); ok {
		st.Target = &target
	}
	if a.Kind() != agent.KindBird {
		secs := s.clock * 0.001
		st.Legs = make([]float32, 4)
		for i := range st.Legs {
			st.Legs[i] = ambient.LegSwing(i, secs)
		}
		st.Tail = ambient.TailWag(s.clock)
	}
	return st, true
}

// Agents returns the state of every live agent, leaders first.
func (s *Scene) Agents() []AgentState {
	out := make([]AgentState, 0, len(s.agents))
	for _, n := range s.agents {
		if st, ok := s.agentState(n); ok {
			out = append(out, st)
		}
	}
	return out
}

// Agent returns the state of the named agent.
func (s *Scene) Agent(name string) (AgentState, error) {
	id, ok := s.ids[name]
	if !ok {
		return AgentState{}, fmt.Errorf("agent %q: %w", name, ErrNotFound)
	}
	st, ok := s.agentState(named{name: name, id: id})
	if !ok {
		return AgentState{}, fmt.Errorf("agent %q: %w", name, ErrNotFound)
	}
	return st, nil
}

// Snapshot copies the current state out of the scene.
func (s *Scene) Snapshot() (Snapshot, error) {
	snap := Snapshot{
		Frame:  s.frame,
		Clock:  s.clock,
		Stats:  s.stats,
		Agents: s.Agents(),
	}
	if err := copier.Copy(&snap.Player, s.player); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot player: %w", err)
	}
	snap.Player.Floor = s.player.Floor()
	if err := copier.Copy(&snap.Doors, s.doors); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot doors: %w", err)
	}
	if err := copier.Copy(&snap.Fans, s.fans); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot fans: %w", err)
	}
	if err := copier.Copy(&snap.Lights, s.lights); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot lights: %w", err)
	}
	if err := copier.Copy(&snap.Floats, s.floats); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot floats: %w", err)
	}

	secs := s.clock * 0.001
	snap.Vents = make([]float32, VentSlats)
	for i := range snap.Vents {
		snap.Vents[i] = ambient.VentSwing(i, secs)
	}
	snap.Chandelier = make([]float32, ChandelierBulbs)
	for i := range snap.Chandelier {
		snap.Chandelier[i] = ambient.ChandelierGlow(i, s.clock)
	}
	return snap, nil
}
