package sampler

import (
	"github.com/o0olele/villawalk/geometry"
	"github.com/o0olele/villawalk/math32"
)

// MaxAttempts is the rejection budget for one ground waypoint.
const MaxAttempts = 50

// Obstacles is the blocked-ground predicate a ground waypoint must avoid.
type Obstacles interface {
	Contains(x, z float32) bool
}

// Sampler draws uniform waypoints inside a domain.
type Sampler struct {
	rng         Rand
	maxAttempts int
}

// New creates a sampler over rng. A nil rng falls back to the default seed.
func New(rng Rand) *Sampler {
	if rng == nil {
		rng = NewDeterministicRNG(DefaultSeed, "sampler")
	}
	return &Sampler{rng: rng, maxAttempts: MaxAttempts}
}

// SetMaxAttempts overrides the rejection budget. Values below 1 mean 1.
func (s *Sampler) SetMaxAttempts(n int) {
	if n < 1 {
		n = 1
	}
	s.maxAttempts = n
}

// GetMaxAttempts returns the rejection budget.
func (s *Sampler) GetMaxAttempts() int {
	return s.maxAttempts
}

// Float32 exposes the underlying source for callers that add jitter.
func (s *Sampler) Float32() float32 {
	return s.rng.Float32()
}

// Ground draws points on the domain's floor (Y = domain.Min.Y) until one is
// clear of obstacles. When the budget runs out the last draw is returned
// anyway and ok is false; callers walk toward it and get redirected when a
// step is blocked.
func (s *Sampler) Ground(domain geometry.AABB, obstacles Obstacles) (p math32.Vector3, ok bool) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		tx := s.rng.Float32()
		tz := s.rng.Float32()
		p = domain.Lerp(tx, 0, tz)
		if obstacles == nil || !obstacles.Contains(p.X, p.Z) {
			return p, true
		}
	}
	return p, false
}

// Sky draws one point anywhere in the domain. Open sky has no obstacles.
func (s *Sampler) Sky(domain geometry.AABB) math32.Vector3 {
	tx := s.rng.Float32()
	ty := s.rng.Float32()
	tz := s.rng.Float32()
	return domain.Lerp(tx, ty, tz)
}
