package filament

import "container/heap"

// Scheduler is a single-threaded cooperative timer queue. Virtual time
// only moves when the host calls Advance — in production once per
// Ebitengine update tick (see [Run]), in tests directly.
//
// All callbacks run synchronously inside Advance, on the caller's
// goroutine, in due order. A callback may schedule further tasks; tasks
// that come due within the same Advance window fire in that same call.
type Scheduler struct {
	now   float64 // virtual time in milliseconds
	seq   uint64
	tasks taskQueue
}

// Task is a handle to a scheduled callback.
type Task struct {
	fn       func()
	due      float64
	interval float64 // 0 for one-shot
	seq      uint64  // FIFO tie-break for equal due times
	index    int
	canceled bool
}

// Cancel prevents the task from firing again. Safe to call more than
// once, and safe to call from inside the task's own callback.
func (t *Task) Cancel() {
	t.canceled = true
}

// NewScheduler creates an empty scheduler at virtual time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time in milliseconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// After schedules fn to run once, delayMS milliseconds from now.
// Negative delays are treated as zero.
func (s *Scheduler) After(delayMS float64, fn func()) *Task {
	if delayMS < 0 {
		delayMS = 0
	}
	return s.push(&Task{fn: fn, due: s.now + delayMS})
}

// Every schedules fn to run repeatedly with the given period, first
// firing one full period from now. Periods below 1ms are clamped to 1ms
// so a zero interval cannot spin Advance forever.
func (s *Scheduler) Every(intervalMS float64, fn func()) *Task {
	if intervalMS < 1 {
		intervalMS = 1
	}
	return s.push(&Task{fn: fn, due: s.now + intervalMS, interval: intervalMS})
}

// Advance moves virtual time forward by dtMS milliseconds, firing every
// task that comes due, in due order. The scheduler's clock sits at each
// task's due time while it runs, so rescheduling is drift-free.
func (s *Scheduler) Advance(dtMS float64) {
	if dtMS < 0 {
		dtMS = 0
	}
	target := s.now + dtMS
	for len(s.tasks) > 0 && s.tasks[0].due <= target {
		t := heap.Pop(&s.tasks).(*Task)
		if t.canceled {
			continue
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
			t.seq = s.seq
			s.seq++
			heap.Push(&s.tasks, t)
		}
		t.fn()
	}
	s.now = target
}

// CancelAll cancels every pending task, one-shot and periodic alike.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.canceled = true
	}
	s.tasks = s.tasks[:0]
}

// Pending returns the number of tasks still scheduled to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.canceled {
			n++
		}
	}
	return n
}

func (s *Scheduler) push(t *Task) *Task {
	t.seq = s.seq
	s.seq++
	heap.Push(&s.tasks, t)
	return t
}

// taskQueue is a min-heap on (due, seq).
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
