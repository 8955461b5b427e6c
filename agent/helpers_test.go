package agent

import (
	"testing"

	"github.com/o0olele/villawalk/math32"
	"github.com/o0olele/villawalk/sampler"
	"github.com/o0olele/villawalk/zone"
)

const eps = 1e-4

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

// openGround has no obstacles and a boundary far beyond any test position.
var openGround = zone.NewSet(zone.Zone{Name: "open", MinX: -100, MaxX: 100, MinZ: -100, MaxZ: 100})

func newTestRegistry(zones *zone.Set, values ...float32) (*Registry, *scripted, *sampler.Sampler) {
	rng := &scripted{values: values}
	s := sampler.New(rng)
	return NewRegistry(zones, s), rng, s
}

func mustGet(t *testing.T, r *Registry, id ID) Agent {
	t.Helper()
	a, ok := r.Get(id)
	if !ok {
		t.Fatalf("agent %d not found", id)
	}
	return a
}

func nearVec(a, b math32.Vector3) bool {
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}
