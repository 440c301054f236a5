// Package connectivity tracks network reachability and records transitions.
package connectivity

import "sync"

// Signal is the host environment's reachability source. The monitor never
// probes the network itself; it trusts whatever the signal reports.
type Signal interface {
	// Online reports current reachability.
	Online() bool
	// Events delivers reachability transitions as they happen.
	Events() <-chan bool
}

// ManualSignal is a programmable Signal, driven by whoever owns the
// process's notion of reachability. Also the test double.
type ManualSignal struct {
	mu     sync.Mutex
	online bool
	events chan bool
}

func NewManualSignal(online bool) *ManualSignal {
	return &ManualSignal{
		online: online,
		events: make(chan bool, 16),
	}
}

func (s *ManualSignal) Online() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online
}

func (s *ManualSignal) Events() <-chan bool {
	return s.events
}

// Set records the new state and emits an event when it actually changed.
func (s *ManualSignal) Set(online bool) {
	s.mu.Lock()
	changed := online != s.online
	s.online = online
	s.mu.Unlock()

	if !changed {
		return
	}
	select {
	case s.events <- online:
	default:
		// A stalled consumer loses intermediate flaps; the poll fallback
		// re-reads Online() so the final state is never lost.
	}
}
