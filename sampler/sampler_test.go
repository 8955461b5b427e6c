package sampler

import (
	"testing"

	"github.com/o0olele/villawalk/geometry"
	"github.com/o0olele/villawalk/zone"
)

// scripted replays fixed fractions and counts draws.
type scripted struct {
	values []float32
	calls  int
}

func (s *scripted) Float32() float32 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

var yard = geometry.NewAABB(-28, 28, 0, 0, 10, 28)

func TestGroundAcceptsFirstClearDraw(t *testing.T) {
	rng := &scripted{values: []float32{0.5, 0.5}}
	p, ok := New(rng).Ground(yard, zone.Villa())
	if !ok {
		t.Fatalf("expected accepted waypoint")
	}
	if p.X != 0 || p.Z != 19 || p.Y != 0 {
		t.Fatalf("expected (0,0,19), got %v", p)
	}
	if rng.calls != 2 {
		t.Fatalf("expected 2 draws, got %d", rng.calls)
	}
}

func TestGroundRejectsBlockedDraw(t *testing.T) {
	// (15,15) is inside the pool; (0,19) is clear.
	rng := &scripted{values: []float32{43.0 / 56.0, 5.0 / 18.0, 0.5, 0.5}}
	p, ok := New(rng).Ground(yard, zone.Villa())
	if !ok {
		t.Fatalf("expected accepted waypoint")
	}
	if zone.Villa().Contains(p.X, p.Z) {
		t.Fatalf("accepted a blocked waypoint %v", p)
	}
	if rng.calls != 4 {
		t.Fatalf("expected 4 draws, got %d", rng.calls)
	}
}

func TestGroundFallsBackToLastDrawWhenExhausted(t *testing.T) {
	everything := zone.NewSet(zone.YardBoundary, zone.Zone{MinX: -100, MaxX: 100, MinZ: -100, MaxZ: 100})
	rng := &scripted{values: []float32{0.1, 0.2, 0.3, 0.4}}
	s := New(rng)
	s.SetMaxAttempts(3)

	p, ok := s.Ground(yard, everything)
	if ok {
		t.Fatalf("expected exhausted budget to report ok=false")
	}
	if rng.calls != 6 {
		t.Fatalf("expected 3 attempts (6 draws), got %d draws", rng.calls)
	}
	// Third attempt consumed values[4%4]=0.1 and values[5%4]=0.2.
	want := yard.Lerp(0.1, 0, 0.2)
	if p != want {
		t.Fatalf("expected last draw %v, got %v", want, p)
	}
}

func TestGroundDefaultBudget(t *testing.T) {
	s := New(&scripted{values: []float32{0}})
	if s.GetMaxAttempts() != MaxAttempts {
		t.Fatalf("expected default budget %d, got %d", MaxAttempts, s.GetMaxAttempts())
	}
	s.SetMaxAttempts(0)
	if s.GetMaxAttempts() != 1 {
		t.Fatalf("expected budget floor of 1, got %d", s.GetMaxAttempts())
	}
}

func TestGroundSeededNeverEmitsBlockedPoint(t *testing.T) {
	s := New(NewDeterministicRNG("test", "ground"))
	for i := 0; i < 2000; i++ {
		p, ok := s.Ground(yard, zone.Villa())
		if !ok {
			t.Fatalf("sample %d exhausted its budget", i)
		}
		if zone.Villa().Contains(p.X, p.Z) {
			t.Fatalf("sample %d is blocked: %v", i, p)
		}
		if !yard.Contains(p) {
			t.Fatalf("sample %d outside domain: %v", i, p)
		}
	}
}

func TestSkyUsesWholeDomain(t *testing.T) {
	sky := geometry.NewAABB(-50, 50, 15, 25, -50, 50)
	rng := &scripted{values: []float32{0, 0.5, 1}}
	p := New(rng).Sky(sky)
	if p.X != -50 || p.Y != 20 || p.Z != 50 {
		t.Fatalf("expected (-50,20,50), got %v", p)
	}
	if rng.calls != 3 {
		t.Fatalf("expected 3 draws, got %d", rng.calls)
	}
}

func TestDeterministicRNGReplays(t *testing.T) {
	a := NewDeterministicRNG("seed", "dogs")
	b := NewDeterministicRNG("seed", "dogs")
	c := NewDeterministicRNG("seed", "birds")
	same := true
	for i := 0; i < 8; i++ {
		av, bv, cv := a.Float32(), b.Float32(), c.Float32()
		if av != bv {
			t.Fatalf("draw %d differs for identical seeds: %v vs %v", i, av, bv)
		}
		if av != cv {
			same = false
		}
	}
	if same {
		t.Fatalf("expected different labels to diverge")
	}
	if DeterministicSeedValue("", "") == 0 {
		t.Fatalf("seed value must be non-zero")
	}
}
