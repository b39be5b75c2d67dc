package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"jobtalk/errors"
)

func TestNewMessage(t *testing.T) {
	now := time.Now()

	t.Run("should build a valid unread message", func(t *testing.T) {
		req := require.New(t)
		jobID := "job-1"

		message, err := NewMessage("alice", "bob", "  hello  ", &jobID, nil, now)

		req.NoError(err)
		req.NotEqual(message.ID.String(), "00000000-0000-0000-0000-000000000000")
		req.Equal("hello", message.Body)
		req.False(message.Read)
		req.Equal(now.UTC(), message.CreatedAt)
	})

	t.Run("should fail when sender is missing", func(t *testing.T) {
		_, err := NewMessage("", "bob", "hi", nil, nil, now)
		require.ErrorIs(t, err, errors.ErrSenderRequired)
	})

	t.Run("should fail when receiver is missing", func(t *testing.T) {
		_, err := NewMessage("alice", "", "hi", nil, nil, now)
		require.ErrorIs(t, err, errors.ErrReceiverRequired)
	})

	t.Run("should fail when body is only whitespace", func(t *testing.T) {
		_, err := NewMessage("alice", "bob", "   \t  ", nil, nil, now)
		require.ErrorIs(t, err, errors.ErrBodyRequired)
	})

	t.Run("should fail when sender and receiver are the same user", func(t *testing.T) {
		_, err := NewMessage("alice", "alice", "hi", nil, nil, now)
		require.ErrorIs(t, err, errors.ErrSelfMessage)
	})
}

func TestMessage_Before(t *testing.T) {
	req := require.New(t)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	earlier, err := NewMessage("alice", "bob", "first", nil, nil, base)
	req.NoError(err)
	later, err := NewMessage("bob", "alice", "second", nil, nil, base.Add(time.Second))
	req.NoError(err)

	req.True(earlier.Before(later))
	req.False(later.Before(earlier))

	t.Run("should break timestamp ties deterministically", func(t *testing.T) {
		a, err := NewMessage("alice", "bob", "one", nil, nil, base)
		require.NoError(t, err)
		b, err := NewMessage("alice", "bob", "two", nil, nil, base)
		require.NoError(t, err)

		// Exactly one direction holds, whichever UUID sorts first.
		require.NotEqual(t, a.Before(b), b.Before(a))
	})
}

func TestMessage_CounterpartyOf(t *testing.T) {
	req := require.New(t)
	message, err := NewMessage("alice", "bob", "hi", nil, nil, time.Now())
	req.NoError(err)

	req.Equal("bob", message.CounterpartyOf("alice"))
	req.Equal("alice", message.CounterpartyOf("bob"))
}

func TestParseRole(t *testing.T) {
	t.Run("should accept the known roles", func(t *testing.T) {
		req := require.New(t)
		for _, name := range []string{"employer", "jobseeker", "admin"} {
			role, err := ParseRole(name)
			req.NoError(err)
			req.Equal(name, string(role))
		}
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := ParseRole("moderator")
		require.Error(t, err)
	})
}
