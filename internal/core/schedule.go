package core

import "time"

// Task is a handle to a periodic job registered with a Scheduler.
type Task struct {
	period    time.Duration
	next      time.Duration
	fn        func()
	cancelled bool
}

// Cancel stops the task. It never fires again, even if it is already due.
// Cancel is idempotent and safe on a nil task.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
}

// Active reports whether the task is still scheduled.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler is a cooperative timer. Tasks fire on the goroutine that calls
// Advance, interleaved with frame updates and input handling, so callbacks
// never run concurrently with the rest of the game.
type Scheduler struct {
	now   time.Duration
	tasks []*Task
}

// NewScheduler creates an empty scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Every registers fn to run once per period, first after one full period.
// Panics if period is not positive.
func (s *Scheduler) Every(period time.Duration, fn func()) *Task {
	if period <= 0 {
		panic("core: scheduler period must be positive")
	}
	t := &Task{
		period: period,
		next:   s.now + period,
		fn:     fn,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt and runs every task that came due,
// in due-time order. A task that missed several periods fires once per period.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	fired := 0
	for {
		t := s.nextDue()
		if t == nil {
			break
		}
		t.next += t.period
		t.fn()
		fired++
	}

	s.compact()
	return fired
}

// nextDue returns the active task with the earliest due time at or before now.
func (s *Scheduler) nextDue() *Task {
	var due *Task
	for _, t := range s.tasks {
		if t.cancelled || t.next > s.now {
			continue
		}
		if due == nil || t.next < due.next {
			due = t
		}
	}
	return due
}

// compact drops cancelled tasks.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Now returns the scheduler's clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of active tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}
