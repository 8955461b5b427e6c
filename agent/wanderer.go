package agent

import "github.com/o0olele/villawalk/math32"

// Wanderer walks between random yard waypoints, avoiding obstacle zones.
// Walking dogs and non-following chase dogs are both wanderers; only their
// profile differs.
type Wanderer struct {
	body
	env       *env
	profile   Profile
	waypoint  math32.Vector3
	fallbacks int
}

func newWanderer(id ID, kind Kind, pos math32.Vector3, profile Profile, e *env) *Wanderer {
	w := &Wanderer{
		body:    body{id: id, kind: kind, pos: pos},
		env:     e,
		profile: profile,
	}
	w.resample()
	return w
}

func (w *Wanderer) Mode() Mode { return ModeWandering }

func (w *Wanderer) Target() (math32.Vector3, bool) { return w.waypoint, true }

// Waypoint returns the current sampled waypoint.
func (w *Wanderer) Waypoint() math32.Vector3 { return w.waypoint }

// Fallbacks counts waypoints accepted after the sampler ran out of attempts.
func (w *Wanderer) Fallbacks() int { return w.fallbacks }

func (w *Wanderer) resample() {
	p, ok := w.env.sampler.Ground(YardDomain, w.env.zones)
	if !ok {
		w.fallbacks++
		w.env.logger.Debug("waypoint budget exhausted, using last draw", "agent", w.id, "waypoint", p)
	}
	w.waypoint = p
}

// Tick arrives, redirects, or steps toward the waypoint. A step that would
// land in a blocked cell is dropped and a fresh waypoint is drawn instead.
func (w *Wanderer) Tick(dt float32) Outcome {
	if dt <= 0 {
		return OutcomeIdle
	}

	step := w.profile.Speed * dt * w.env.timeScale
	next, dir, dist := planarStep(w.pos, w.waypoint, step)
	if dist < w.profile.ArrivalRadius {
		w.resample()
		return OutcomeArrived
	}

	if w.env.zones.Contains(next.X, next.Z) {
		w.resample()
		return OutcomeBlocked
	}

	w.commit(next, dir, groundFacing)
	return OutcomeMoved
}
