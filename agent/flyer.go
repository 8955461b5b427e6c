package agent

import "github.com/o0olele/villawalk/math32"

// Flyer drifts between random points in the sky. Nothing up there blocks it.
type Flyer struct {
	body
	env    *env
	speed  float32
	target math32.Vector3
}

func newFlyer(id ID, pos math32.Vector3, speed float32, e *env) *Flyer {
	f := &Flyer{
		body:  body{id: id, kind: KindBird, pos: pos},
		env:   e,
		speed: speed,
	}
	f.target = e.sampler.Sky(SkyDomain)
	return f
}

func (f *Flyer) Mode() Mode { return ModeFlying }

func (f *Flyer) Target() (math32.Vector3, bool) { return f.target, true }

// Tick flies straight at the target with a little per-frame speed jitter,
// never overshooting it. Bird models face +Z so no facing offset is applied.
func (f *Flyer) Tick(dt float32) Outcome {
	if dt <= 0 {
		return OutcomeIdle
	}

	delta := f.target.Sub(f.pos)
	dist := delta.Length()
	if dist < BirdArrivalRadius {
		f.target = f.env.sampler.Sky(SkyDomain)
		return OutcomeArrived
	}

	dir := delta.Normalize()
	step := (f.speed + f.env.sampler.Float32()) * dt * f.env.timeScale * 2
	f.commit(f.pos.Add(dir.Mul(math32.Min(step, dist))), dir, 0)
	return OutcomeMoved
}
