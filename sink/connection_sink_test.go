package sink

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"jobtalk/domain/event"
)

func TestConnectionSink_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("should buffer events up to capacity", func(t *testing.T) {
		req := require.New(t)
		s := NewConnectionSink(slog.Default(), 2)

		req.NoError(s.Consume(ctx, event.TypingNotified{UserID: "alice", IsTyping: true}))
		req.NoError(s.Consume(ctx, event.TypingNotified{UserID: "alice", IsTyping: false}))
		req.Len(s.Events, 2)

		first := <-s.Events
		req.Equal("user_typing", first.Name())
	})

	t.Run("should drop instead of blocking when the buffer is full", func(t *testing.T) {
		req := require.New(t)
		s := NewConnectionSink(slog.Default(), 1)

		req.NoError(s.Consume(ctx, event.DeliveryError{Reason: "kept"}))
		// The buffer is full; this must return immediately without error.
		req.NoError(s.Consume(ctx, event.DeliveryError{Reason: "dropped"}))

		req.Len(s.Events, 1)
		kept := (<-s.Events).(event.DeliveryError)
		req.Equal("kept", kept.Reason)
	})

	t.Run("should fail when the context is already cancelled", func(t *testing.T) {
		s := NewConnectionSink(slog.Default(), 0)
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Consume(cancelled, event.DeliveryError{Reason: "late"})
		require.ErrorIs(t, err, context.Canceled)
	})
}
