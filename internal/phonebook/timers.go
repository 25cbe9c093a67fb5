package phonebook

import (
	"sync"
	"time"
)

type stopper interface {
	Stop() bool
}

type pendingTimer struct {
	seq   uint64
	timer stopper
}

// Timers turns [Expiry] values into scheduled tasks, one per slot.
// Scheduling an expiry for a slot stops the task still pending for that slot
// before starting the new countdown. When a task fires, fire is called with
// its expiry from the timer goroutine; callers are expected to hand it back
// to their event loop (for example with tea.Program.Send) and apply it there
// with [Book.Expire].
type Timers struct {
	mu      sync.Mutex
	pending map[Slot]pendingTimer
	stopped bool

	fire      func(Expiry)
	afterFunc func(d time.Duration, f func()) stopper
}

// NewTimers creates Timers backed by time.AfterFunc.
func NewTimers(fire func(Expiry)) *Timers {
	return &Timers{
		pending: make(map[Slot]pendingTimer, slotCount),
		fire:    fire,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
	}
}

// Schedule starts the countdown for e, cancelling the task pending for the
// same slot. It is a no-op after Stop.
func (t *Timers) Schedule(e Expiry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	if prev, ok := t.pending[e.Slot]; ok {
		prev.timer.Stop()
	}

	t.pending[e.Slot] = pendingTimer{
		seq:   e.Seq,
		timer: t.afterFunc(e.After, func() { t.expired(e) }),
	}
}

// Pending reports how many slots have a countdown running.
func (t *Timers) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Stop cancels every pending task. Timers cannot be restarted.
func (t *Timers) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopped = true
	for slot, p := range t.pending {
		p.timer.Stop()
		delete(t.pending, slot)
	}
}

func (t *Timers) expired(e Expiry) {
	t.mu.Lock()
	current, ok := t.pending[e.Slot]
	if !ok || current.seq != e.Seq || t.stopped {
		t.mu.Unlock()
		return
	}
	delete(t.pending, e.Slot)
	t.mu.Unlock()

	if t.fire != nil {
		t.fire(e)
	}
}
