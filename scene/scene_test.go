package scene

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/o0olele/villawalk/agent"
	"github.com/o0olele/villawalk/config"
	"github.com/o0olele/villawalk/floor"
	"github.com/o0olele/villawalk/math32"
	"github.com/o0olele/villawalk/player"
)

func newTestScene(t *testing.T, cfg config.Scene) *Scene {
	t.Helper()
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	s, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Agents = append(cfg.Agents, config.Agent{Name: "rex", Kind: agent.KindWalker})
	if _, err := New(cfg, nil); !errors.Is(err, config.ErrDuplicateName) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
}

func TestLeadersRegisteredFirst(t *testing.T) {
	cfg := config.Default()
	cfg.Agents = []config.Agent{
		{Name: "pup", Kind: agent.KindChaser, Follower: true, Leader: "rex", Position: math32.Vec3(-22, 0, 26)},
		{Name: "rex", Kind: agent.KindChaser, Position: math32.Vec3(-20, 0, 24)},
	}
	s := newTestScene(t, cfg)
	agents := s.Agents()
	if len(agents) != 2 || agents[0].Name != "rex" || agents[1].Name != "pup" {
		t.Fatalf("expected rex then pup, got %+v", agents)
	}
	if agents[1].Mode != agent.ModeFollowing {
		t.Fatalf("expected pup to follow, got %s", agents[1].Mode)
	}
	if agents[1].Target == nil || *agents[1].Target != agents[0].Position {
		t.Fatalf("expected pup to target rex at %v, got %v", agents[0].Position, agents[1].Target)
	}
}

func TestTickAdvancesEverything(t *testing.T) {
	s := newTestScene(t, config.Default())
	before := s.Agents()

	if stats := s.Tick(0, player.Input{Forward: true}); stats != (agent.TickStats{}) || s.Frame() != 0 {
		t.Fatalf("expected zero dt to be ignored, got %+v frame %d", stats, s.Frame())
	}

	stats := s.Tick(16, player.Input{Forward: true})
	if s.Frame() != 1 || s.Clock() != 16 {
		t.Fatalf("expected frame 1 at 16ms, got %d at %f", s.Frame(), s.Clock())
	}
	total := stats.Idle + stats.Moved + stats.Arrived + stats.Blocked + stats.LeaderLost
	if total != len(before) {
		t.Fatalf("expected every agent ticked once, got %+v", stats)
	}
	if s.Player().Position.Z >= 26 {
		t.Fatalf("expected player to walk forward, at %v", s.Player().Position)
	}
}

func TestDeterministicReplay(t *testing.T) {
	a := newTestScene(t, config.Default())
	b := newTestScene(t, config.Default())
	for i := 0; i < 500; i++ {
		a.Tick(16, player.Input{})
		b.Tick(16, player.Input{})
	}
	sa, sb := a.Agents(), b.Agents()
	for i := range sa {
		if sa[i].Position != sb[i].Position {
			t.Fatalf("expected identical runs, %s at %v vs %v", sa[i].Name, sa[i].Position, sb[i].Position)
		}
	}
}

func TestGroundAgentsStayClear(t *testing.T) {
	s := newTestScene(t, config.Default())
	zones := s.Zones()
	for i := 0; i < 3000; i++ {
		s.Tick(16, player.Input{})
		for _, st := range s.Agents() {
			if st.Kind == agent.KindBird {
				continue
			}
			if zones.Contains(st.Position.X, st.Position.Z) {
				t.Fatalf("frame %d: %s inside an obstacle at %v", i, st.Name, st.Position)
			}
		}
	}
}

func TestAgentLookup(t *testing.T) {
	s := newTestScene(t, config.Default())
	st, err := s.Agent("crow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Mode != agent.ModeFlying || st.Legs != nil {
		t.Fatalf("expected a legless flyer, got %+v", st)
	}
	dog, err := s.Agent("bruno")
	if err != nil || len(dog.Legs) != 4 {
		t.Fatalf("expected four legs on bruno, got %+v (%v)", dog, err)
	}
	if _, err := s.Agent("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSwitches(t *testing.T) {
	s := newTestScene(t, config.Default())
	on, err := s.ToggleFan("living")
	if err != nil || on {
		t.Fatalf("expected fan off, got %v (%v)", on, err)
	}
	on, err = s.ToggleLight("hall")
	if err != nil || on {
		t.Fatalf("expected light off, got %v (%v)", on, err)
	}
	if _, err := s.ToggleFan("attic"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := s.ToggleLight("attic"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestScene(t, config.Default())
	if _, err := s.ToggleLight("hall"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		s.Tick(16, player.Input{})
	}
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Frame != 10 || len(snap.Agents) != len(config.Default().Agents) {
		t.Fatalf("expected 10 frames and all agents, got %d / %d", snap.Frame, len(snap.Agents))
	}
	if snap.Player.Position != s.Player().Position || !snap.Player.OnGround || snap.Player.Floor != 0 {
		t.Fatalf("expected player copied, got %+v", snap.Player)
	}
	if len(snap.Doors) != 3 || snap.Doors[0].Name != "front" {
		t.Fatalf("expected doors copied, got %+v", snap.Doors)
	}
	if len(snap.Fans) != 2 || snap.Fans[0].Speed != 25 || snap.Fans[0].Yaw == 0 {
		t.Fatalf("expected spinning fan, got %+v", snap.Fans)
	}
	if snap.Lights[0].On || snap.Lights[0].Intensity != 0 || snap.Lights[0].Emissive != 0.1 {
		t.Fatalf("expected hall light off, got %+v", snap.Lights[0])
	}
	if snap.Lights[1].Intensity != 0.6 {
		t.Fatalf("expected upstairs light on, got %+v", snap.Lights[1])
	}
	if len(snap.Floats) != 1 || len(snap.Vents) != VentSlats || len(snap.Chandelier) != ChandelierBulbs {
		t.Fatalf("expected props in snapshot, got %+v", snap)
	}

	// The snapshot is a copy.
	snap.Doors[0].Yaw = 42
	again, _ := s.Snapshot()
	if again.Doors[0].Yaw == 42 {
		t.Fatalf("expected snapshot to be detached from the scene")
	}
}

func TestFloorPassthrough(t *testing.T) {
	s := newTestScene(t, config.Default())
	if got := s.Floor(5, 0, 3); got != floor.UpperFloor {
		t.Fatalf("expected upper floor, got %f", got)
	}
}

func TestChainedFollowersResolveInAnyOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Agents = []config.Agent{
		{Name: "rex", Kind: agent.KindChaser, Position: math32.Vec3(-20, 0, 24)},
		{Name: "tail", Kind: agent.KindChaser, Follower: true, Leader: "pup", Position: math32.Vec3(-24, 0, 26)},
		{Name: "pup", Kind: agent.KindChaser, Follower: true, Leader: "rex", Position: math32.Vec3(-22, 0, 26)},
	}
	s := newTestScene(t, cfg)

	agents := s.Agents()
	if len(agents) != 3 || agents[1].Name != "pup" || agents[2].Name != "tail" {
		t.Fatalf("expected rex, pup, tail, got %+v", agents)
	}

	stats := s.Tick(16, player.Input{})
	if stats.LeaderLost != 0 {
		t.Fatalf("expected every follower to find its leader, got %+v", stats)
	}
	tail, err := s.Agent("tail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pup, err := s.Agent("pup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tail.Target == nil || *tail.Target != pup.Position {
		t.Fatalf("expected tail to target pup at %v, got %v", pup.Position, tail.Target)
	}
}

func TestNewRejectsLeaderCycle(t *testing.T) {
	cfg := config.Default()
	cfg.Agents = []config.Agent{
		{Name: "a", Kind: agent.KindChaser, Follower: true, Leader: "b", Position: math32.Vec3(-20, 0, 24)},
		{Name: "b", Kind: agent.KindChaser, Follower: true, Leader: "a", Position: math32.Vec3(-22, 0, 26)},
	}
	if _, err := New(cfg, log.New(io.Discard)); !errors.Is(err, config.ErrLeaderCycle) {
		t.Fatalf("expected leader cycle error, got %v", err)
	}
}
