// Package anim runs cancelable, tick-driven visual effects.
//
// Tasks are stepped cooperatively by Scheduler.Tick with the elapsed time
// since the previous tick. At most one task is live per Key; starting a task
// for a key stops the previous one first. The scheduler is not safe for
// concurrent use: it is owned by the goroutine that mutates game state.
package anim

import "time"

// Effect is the kind of visual property an animation writes.
type Effect int

const (
	EffectBounce Effect = iota
	EffectFade
	EffectFlip
	EffectTimer
	EffectCycle
)

var effectNames = map[Effect]string{
	EffectBounce: "bounce",
	EffectFade:   "fade",
	EffectFlip:   "flip",
	EffectTimer:  "timer",
	EffectCycle:  "cycle",
}

func (e Effect) String() string {
	if s, ok := effectNames[e]; ok {
		return s
	}
	return "unknown"
}

// Key serializes animations: one live task per (target, effect).
type Key struct {
	Target string
	Effect Effect
}

func (k Key) String() string { return k.Target + "/" + k.Effect.String() }

// Task is one resumable animation. Step advances it by dt and reports whether
// it has finished. A finished task is never stepped again.
type Task interface {
	Step(dt time.Duration) (done bool)
}

// Beginner is implemented by tasks that write an initial state. Begin runs
// once, inside Start, after any previous task for the key has stopped.
type Beginner interface {
	Begin()
}

// Stopper is implemented by tasks that must clean up when cancelled.
// The last value written by Step stays as the final value.
type Stopper interface {
	Stop()
}

type handleState int

const (
	stateRunning handleState = iota
	stateDone
	stateCancelled
)

// Handle references a started task.
type Handle struct {
	key   Key
	task  Task
	sched *Scheduler
	state handleState
}

// Key returns the key the task was started under.
func (h *Handle) Key() Key { return h.key }

// Cancel stops the task if it is still running. Cancel is idempotent.
func (h *Handle) Cancel() { h.sched.stop(h, stateCancelled) }

// Running reports whether the task is still live.
func (h *Handle) Running() bool { return h.state == stateRunning }

// Cancelled reports whether the task was stopped before finishing.
func (h *Handle) Cancelled() bool { return h.state == stateCancelled }

// Scheduler owns the table of live animations.
type Scheduler struct {
	live  map[Key]*Handle
	order []*Handle // start order, compacted after every tick
}

func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[Key]*Handle)}
}

// Start installs task under key. A task already live for key is cancelled,
// and its Stop hook has run, before the new task's Begin. The new task is
// first stepped on the next Tick.
func (s *Scheduler) Start(key Key, task Task) *Handle {
	if prev, ok := s.live[key]; ok {
		s.stop(prev, stateCancelled)
	}
	h := &Handle{key: key, task: task, sched: s}
	s.live[key] = h
	s.order = append(s.order, h)
	if b, ok := task.(Beginner); ok {
		b.Begin()
	}
	return h
}

// Tick advances every task that was live when the tick began, in start order.
// Negative deltas are treated as zero.
func (s *Scheduler) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	n := len(s.order)
	for i := 0; i < n; i++ {
		h := s.order[i]
		if h.state != stateRunning {
			continue
		}
		if h.task.Step(dt) {
			s.stop(h, stateDone)
		}
	}
	kept := s.order[:0]
	for _, h := range s.order {
		if h.state == stateRunning {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = nil
	}
	s.order = kept
}

// Cancel stops the task live under key, if any.
func (s *Scheduler) Cancel(key Key) {
	if h, ok := s.live[key]; ok {
		s.stop(h, stateCancelled)
	}
}

// CancelAll stops every live task.
func (s *Scheduler) CancelAll() {
	for _, h := range append([]*Handle(nil), s.order...) {
		s.stop(h, stateCancelled)
	}
}

// Active reports whether a task is live under key.
func (s *Scheduler) Active(key Key) bool {
	_, ok := s.live[key]
	return ok
}

// Len is the number of live tasks.
func (s *Scheduler) Len() int { return len(s.live) }

// Keys lists the live keys in start order.
func (s *Scheduler) Keys() []Key {
	keys := make([]Key, 0, len(s.live))
	for _, h := range s.order {
		if h.state == stateRunning {
			keys = append(keys, h.key)
		}
	}
	return keys
}

func (s *Scheduler) stop(h *Handle, state handleState) {
	if h.state != stateRunning {
		return
	}
	h.state = state
	if s.live[h.key] == h {
		delete(s.live, h.key)
	}
	if state == stateCancelled {
		if st, ok := h.task.(Stopper); ok {
			st.Stop()
		}
	}
}
