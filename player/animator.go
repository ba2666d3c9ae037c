package player

import "time"

// Phase is the animation state of one slide object.
type Phase string

const (
	// PhaseIn is the entrance animation window.
	PhaseIn Phase = "in"
	// PhaseVisible is the resting state after the entrance completes.
	PhaseVisible Phase = "visible"
	// PhaseOut is the exit animation window.
	PhaseOut Phase = "out"
	// PhaseHidden means the object renders nothing. Terminal; reachable
	// only through a completed exit with stayOnScreen unset.
	PhaseHidden Phase = "hidden"
)

// animator drives one object's phase machine for one slide activation.
// All three timers are single-shot, anchored at slide start, and owned by
// the controller's current epoch: a slide change cancels them together and
// stale fires are discarded by the epoch guard before they reach us.
type animator struct {
	object Object
	index  int
	phase  Phase
	timers []TimerHandle
}

// startAnimators builds and arms animators for every object of a slide.
// schedule must register the callback against the caller's current epoch.
func startAnimators(objects []Object, schedule func(d time.Duration, f func()) TimerHandle, transition func(objectIndex int, p Phase)) []*animator {
	animators := make([]*animator, len(objects))
	for i, obj := range objects {
		a := &animator{object: obj, index: i, phase: PhaseIn}
		animators[i] = a

		idx := i
		inDone := time.Duration(obj.AnimationInDelay+obj.AnimationInDuration) * time.Millisecond
		a.timers = append(a.timers, schedule(inDone, func() {
			transition(idx, PhaseVisible)
		}))

		if obj.HasExit() {
			outStart := time.Duration(*obj.AnimationOutDelay) * time.Millisecond
			a.timers = append(a.timers, schedule(outStart, func() {
				transition(idx, PhaseOut)
			}))
			if !obj.StayOnScreen {
				outDone := outStart + time.Duration(obj.AnimationOutDuration)*time.Millisecond
				a.timers = append(a.timers, schedule(outDone, func() {
					transition(idx, PhaseHidden)
				}))
			}
		}
	}
	return animators
}

// apply advances the phase machine. Transitions out of order are ignored:
// visible only follows in, and nothing leaves hidden.
func (a *animator) apply(p Phase) bool {
	switch p {
	case PhaseVisible:
		if a.phase != PhaseIn {
			return false
		}
	case PhaseOut:
		if a.phase == PhaseHidden {
			return false
		}
	case PhaseHidden:
		if a.object.StayOnScreen {
			return false
		}
	}
	if a.phase == p {
		return false
	}
	a.phase = p
	return true
}

func (a *animator) stop() {
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}
