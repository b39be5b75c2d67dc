// Package runtime owns the live-connection state of the gateway.
// It knows nothing about transports or business rules.
package runtime

import (
	"sync"

	"jobtalk/contract"
)

type Set map[contract.EventSink]struct{}

// Registry maps a user identity to its broadcast group: the set of live
// connection sinks currently open for that user. One user may hold several
// connections at once (multiple devices or tabs).
type Registry struct {
	mu     sync.RWMutex
	groups map[string]Set
}

func NewRegistry() *Registry {
	return &Registry{groups: make(map[string]Set)}
}

// Join adds a connection to the user's broadcast group, creating the group
// on first join.
func (r *Registry) Join(userID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.groups[userID]; !ok {
		r.groups[userID] = make(Set)
	}
	r.groups[userID][sink] = struct{}{}
}

// Leave removes a connection from its group. Empty groups are removed
// entirely to prevent the map from growing over time. Leaving has no other
// side effect; unread counts and message state are untouched.
func (r *Registry) Leave(userID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if group, ok := r.groups[userID]; ok {
		delete(group, sink)
		if len(group) == 0 {
			delete(r.groups, userID)
		}
	}
}

// Group returns the user's live connection sinks. Fan-out iterates the
// returned slice; a user with no open connection yields nil and delivery is
// simply skipped.
func (r *Registry) Group(userID string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	group, ok := r.groups[userID]
	if !ok {
		return nil
	}
	sinks := make([]contract.EventSink, 0, len(group))
	for sink := range group {
		sinks = append(sinks, sink)
	}
	return sinks
}

// Connections reports the number of live connections for a user.
func (r *Registry) Connections(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups[userID])
}
