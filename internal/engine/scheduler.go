// Package engine provides the small set of simulation collaborators the lane
// runner needs: timed callbacks, eased tweens and velocity-driven bodies with
// overlap tests. Everything is advanced explicitly by the caller's frame loop;
// nothing here runs on its own goroutine.
package engine

// TimerFunc is invoked when a timer fires. The target is passed in by
// Scheduler.Advance, so callbacks never capture the state they mutate.
type TimerFunc[T any] func(target T)

// Timer is a handle to a scheduled callback.
type Timer struct {
	interval  float64
	remaining float64
	repeating bool
	done      bool
}

// Cancel stops the timer. Cancelling is idempotent and safe from inside any
// callback, including the timer's own.
func (t *Timer) Cancel() {
	if t == nil {
		return
	}
	t.done = true
}

// Active reports whether the timer will fire again.
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

type scheduled[T any] struct {
	timer *Timer
	fn    TimerFunc[T]
}

// Scheduler runs millisecond-based timers on the caller's clock.
type Scheduler[T any] struct {
	entries   []scheduled[T]
	advancing bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler[T any]() *Scheduler[T] {
	return &Scheduler[T]{
		entries: make([]scheduled[T], 0, 4),
	}
}

// Schedule registers fn to fire after interval milliseconds, and then every
// interval milliseconds if repeating is set.
func (s *Scheduler[T]) Schedule(interval float64, repeating bool, fn TimerFunc[T]) *Timer {
	t := &Timer{
		interval:  interval,
		remaining: interval,
		repeating: repeating,
	}
	s.entries = append(s.entries, scheduled[T]{timer: t, fn: fn})
	return t
}

// Advance moves the clock forward by dt milliseconds and fires every timer
// that came due, in registration order. A repeating timer that fell several
// periods behind fires once per elapsed period. Timers scheduled from inside
// a callback start counting on the next Advance.
func (s *Scheduler[T]) Advance(dt float64, target T) {
	s.advancing = true
	for _, e := range s.entries {
		t := e.timer
		if t.done {
			continue
		}

		t.remaining -= dt
		for t.remaining <= 0 && !t.done {
			e.fn(target)
			if !t.repeating {
				t.done = true
				break
			}
			if t.interval <= 0 {
				t.remaining = 0
				break
			}
			t.remaining += t.interval
		}
	}
	s.advancing = false
	s.compact()
}

// CancelAll stops every pending timer.
func (s *Scheduler[T]) CancelAll() {
	for _, e := range s.entries {
		e.timer.Cancel()
	}
	if !s.advancing {
		s.compact()
	}
}

// Pending returns the number of timers that have not finished or been cancelled.
func (s *Scheduler[T]) Pending() int {
	count := 0
	for _, e := range s.entries {
		if !e.timer.done {
			count++
		}
	}
	return count
}

// compact drops finished timers without reallocating.
func (s *Scheduler[T]) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.timer.done {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = scheduled[T]{}
	}
	s.entries = live
}
