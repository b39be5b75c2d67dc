package runtime

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"jobtalk/domain/event"
)

// recordingSink counts consumed events; enough for registry membership tests.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func TestRegistry_JoinLeave(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	first := &recordingSink{}
	second := &recordingSink{}

	req.Zero(registry.Connections("alice"))
	req.Nil(registry.Group("alice"))

	registry.Join("alice", first)
	registry.Join("alice", second)
	req.Equal(2, registry.Connections("alice"))
	req.Len(registry.Group("alice"), 2)

	registry.Leave("alice", first)
	req.Equal(1, registry.Connections("alice"))

	registry.Leave("alice", second)
	req.Zero(registry.Connections("alice"))
	req.Nil(registry.Group("alice"))

	t.Run("should tolerate leaving twice", func(t *testing.T) {
		registry.Leave("alice", second)
		require.Zero(t, registry.Connections("alice"))
	})
}

func TestRegistry_GroupsAreIndependent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	aliceSink := &recordingSink{}
	bobSink := &recordingSink{}

	registry.Join("alice", aliceSink)
	registry.Join("bob", bobSink)

	req.Len(registry.Group("alice"), 1)
	req.Len(registry.Group("bob"), 1)

	registry.Leave("alice", aliceSink)
	req.Nil(registry.Group("alice"))
	req.Len(registry.Group("bob"), 1)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink := &recordingSink{}
			registry.Join("alice", sink)
			registry.Group("alice")
			registry.Leave("alice", sink)
		}()
	}
	wg.Wait()

	require.Zero(t, registry.Connections("alice"))
}
