package tracker

import (
	"strings"
	"sync"
	"time"

	"github.com/dshills/chordscope/internal/binding"
	"github.com/dshills/chordscope/internal/prefixtree"
)

// DefaultTimeout is how long the tracker waits for the next chord
// before going quiescent.
const DefaultTimeout = 3000 * time.Millisecond

// Observer receives the full current sequence after every observable
// transition. The timeout itself never notifies; its reset is lazy.
type Observer func(sequence []string)

// Subscription represents an active observer registration.
type Subscription struct {
	id      uint64
	tracker *Tracker
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.tracker != nil {
		s.tracker.unsubscribe(s.id)
	}
}

// Tracker accumulates chord events into a live sequence and filters
// bindings against it. States: idle, armed (active, empty sequence),
// tracking (active, one timer pending). A fired timer clears the
// sequence internally and sets the quiescent flag without notifying;
// the next event starts a fresh one-element sequence.
type Tracker struct {
	mu sync.Mutex

	active    bool
	quiescent bool
	sequence  []string

	timeout  time.Duration
	timer    *time.Timer
	timerGen uint64

	observers map[uint64]Observer
	nextSub   uint64
}

// New creates a tracker. A non-positive timeout selects DefaultTimeout.
func New(timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Tracker{
		timeout:   timeout,
		observers: make(map[uint64]Observer),
	}
}

// Subscribe registers an observer for sequence changes. At most one
// notification channel exists per tracker instance; every observer on
// it sees every notification.
func (t *Tracker) Subscribe(fn Observer) *Subscription {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextSub++
	id := t.nextSub
	t.observers[id] = fn
	return &Subscription{id: id, tracker: t}
}

func (t *Tracker) unsubscribe(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.observers, id)
}

// Activate arms the tracker: sequence and quiescent flag cleared.
// Re-activating an active tracker cancels its pending timer so a
// stale timeout cannot mark the fresh arming quiescent.
func (t *Tracker) Activate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active = true
	t.quiescent = false
	t.sequence = nil
	t.stopTimerLocked()
}

// Deactivate returns the tracker to idle, cancels any pending timer,
// and notifies with an empty sequence.
func (t *Tracker) Deactivate() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.active = false
	t.quiescent = false
	t.sequence = nil
	t.stopTimerLocked()
	observers := t.observersLocked()
	t.mu.Unlock()

	notify(observers, nil)
}

// Reset clears the sequence while staying armed, cancels the timer,
// and notifies with an empty sequence.
func (t *Tracker) Reset() {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}
	t.quiescent = false
	t.sequence = nil
	t.stopTimerLocked()
	observers := t.observersLocked()
	t.mu.Unlock()

	notify(observers, nil)
}

// KeyEvent records one chord. A quiescent tracker discards the stale
// sequence and starts fresh with this chord. The pending timer is
// always cancelled and replaced. Observers receive the full updated
// sequence.
func (t *Tracker) KeyEvent(raw string) {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return
	}

	if t.quiescent {
		t.quiescent = false
		t.sequence = []string{raw}
	} else {
		t.sequence = append(t.sequence, raw)
	}

	t.stopTimerLocked()
	gen := t.timerGen
	t.timer = time.AfterFunc(t.timeout, func() { t.onTimeout(gen) })

	seq := t.sequenceLocked()
	observers := t.observersLocked()
	t.mu.Unlock()

	notify(observers, seq)
}

// onTimeout performs the lazy reset. A stale generation means the
// timer was replaced after this callback was scheduled.
func (t *Tracker) onTimeout(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.timerGen || !t.active {
		return
	}
	t.quiescent = true
	t.sequence = nil
	t.timer = nil
	// No notification: the reset is observable only on the next event.
}

// Active reports whether the tracker is armed or tracking.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Quiescent reports whether the timeout fired since the last event.
func (t *Tracker) Quiescent() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quiescent
}

// CurrentSequence returns a copy of the live sequence.
func (t *Tracker) CurrentSequence() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sequenceLocked()
}

// FilterBindings narrows bindings to those whose key sequence equals
// the live sequence or extends it by whole chords. An empty live
// sequence returns the input unchanged, same order.
func (t *Tracker) FilterBindings(all []*binding.Parsed) []*binding.Parsed {
	t.mu.Lock()
	seq := t.sequenceLocked()
	t.mu.Unlock()

	if len(seq) == 0 {
		return all
	}

	prefix := strings.ToLower(strings.Join(seq, " "))
	filtered := make([]*binding.Parsed, 0, len(all))
	for _, b := range all {
		key := strings.ToLower(b.SequenceString())
		if key == prefix || strings.HasPrefix(key, prefix+" ") {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// NextKeys returns the canonical chord keys that extend the live
// sequence in the tree. With an empty sequence it returns every root
// key. complete is true when the current sequence already terminates a
// binding (and may still be extensible). A sequence with no node in
// the tree is a dead end: empty keys, complete false.
func (t *Tracker) NextKeys(tree prefixtree.Tree) (keys []string, complete bool) {
	t.mu.Lock()
	seq := t.sequenceLocked()
	t.mu.Unlock()

	if len(seq) == 0 {
		return prefixtree.RootKeys(tree), false
	}

	node, ok := prefixtree.Find(tree, seq)
	if !ok {
		return nil, false
	}
	return prefixtree.ChildKeys(node), len(node.Bindings) > 0
}

// stopTimerLocked cancels the pending timer and invalidates any
// in-flight callback. Caller must hold the lock.
func (t *Tracker) stopTimerLocked() {
	t.timerGen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Tracker) sequenceLocked() []string {
	if len(t.sequence) == 0 {
		return nil
	}
	seq := make([]string, len(t.sequence))
	copy(seq, t.sequence)
	return seq
}

func (t *Tracker) observersLocked() []Observer {
	if len(t.observers) == 0 {
		return nil
	}
	observers := make([]Observer, 0, len(t.observers))
	for _, fn := range t.observers {
		observers = append(observers, fn)
	}
	return observers
}

func notify(observers []Observer, seq []string) {
	for _, fn := range observers {
		fn(seq)
	}
}
