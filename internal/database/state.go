package database

import (
	"sync"
)

// ConnState is the connectivity state of the persistence backend. The
// transitions mirror the driver's own lifecycle: Disconnected -> Connecting ->
// Connected, back to Disconnected when the link drops, with Disconnecting
// reserved for a deliberate shutdown.
type ConnState int32

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateDisconnecting
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// Tracker owns the process-wide connectivity state. Reads are a fast local
// check, never a network round-trip. Subscribers receive every transition,
// which feeds the status websocket and lets tests observe the machine.
type Tracker struct {
	mu          sync.RWMutex
	state       ConnState
	subscribers map[chan ConnState]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{
		state:       StateDisconnected,
		subscribers: make(map[chan ConnState]struct{}),
	}
}

// State returns the current connectivity state.
func (t *Tracker) State() ConnState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Connected reports whether the backend is currently reachable.
func (t *Tracker) Connected() bool {
	return t.State() == StateConnected
}

// Set moves the machine to the given state and notifies subscribers on a
// change. A subscriber that has fallen behind is skipped rather than blocked on.
func (t *Tracker) Set(state ConnState) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == state {
		return
	}
	t.state = state

	for ch := range t.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

// Subscribe registers for transition notifications. The returned cancel
// function must be called to release the subscription.
func (t *Tracker) Subscribe() (<-chan ConnState, func()) {
	ch := make(chan ConnState, 8)

	t.mu.Lock()
	t.subscribers[ch] = struct{}{}
	t.mu.Unlock()

	cancel := func() {
		t.mu.Lock()
		delete(t.subscribers, ch)
		t.mu.Unlock()
	}
	return ch, cancel
}
