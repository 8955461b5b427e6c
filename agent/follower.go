package agent

import "github.com/o0olele/villawalk/math32"

// Follower chases another agent's live position. It never samples waypoints:
// its target belongs to the leader.
type Follower struct {
	body
	env     *env
	profile Profile
	leader  ID
}

func newFollower(id ID, pos math32.Vector3, leader ID, profile Profile, e *env) *Follower {
	return &Follower{
		body:    body{id: id, kind: KindChaser, pos: pos},
		env:     e,
		profile: profile,
		leader:  leader,
	}
}

func (f *Follower) Mode() Mode { return ModeFollowing }

// Leader returns the handle being followed.
func (f *Follower) Leader() ID { return f.leader }

func (f *Follower) Target() (math32.Vector3, bool) {
	return f.env.locator.Locate(f.leader)
}

// Tick re-reads the leader's position and steps toward it at
// FollowMultiplier times the base speed. Inside the arrival radius, or when
// the step is blocked, the follower holds still.
func (f *Follower) Tick(dt float32) Outcome {
	if dt <= 0 {
		return OutcomeIdle
	}

	target, ok := f.env.locator.Locate(f.leader)
	if !ok {
		return OutcomeLeaderLost
	}

	step := f.profile.Speed * FollowMultiplier * dt * f.env.timeScale
	next, dir, dist := planarStep(f.pos, target, step)
	if dist < f.profile.ArrivalRadius {
		return OutcomeArrived
	}

	if f.env.zones.Contains(next.X, next.Z) {
		return OutcomeBlocked
	}

	f.commit(next, dir, groundFacing)
	return OutcomeMoved
}
