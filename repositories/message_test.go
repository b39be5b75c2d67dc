package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func disk(sender, receiver, body string, jobID *string, at time.Time) DiskMessage {
	return DiskMessage{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Body:       body,
		JobID:      jobID,
		At:         at.UTC(),
	}
}

func Test_Store_And_Fetch_Thread(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC().Truncate(time.Millisecond)
	diskMessages := []DiskMessage{
		disk("alice", "bob", "hello", nil, at),
		disk("bob", "alice", "hi back", nil, at.Add(1*time.Minute)),
		disk("alice", "bob", "how are you?", nil, at.Add(2*time.Minute)),
	}
	for _, dm := range diskMessages {
		req.NoError(repository.StoreMessage(dm))
	}
	// Noise from an unrelated pair must never leak into the thread.
	req.NoError(repository.StoreMessage(disk("carol", "bob", "other thread", nil, at)))

	fetched, err := repository.MessagesBetween("alice", "bob", nil)
	req.NoError(err)
	req.Equal(diskMessages, fetched)

	// Both argument orders resolve to the same thread.
	reversed, err := repository.MessagesBetween("bob", "alice", nil)
	req.NoError(err)
	req.Equal(diskMessages, reversed)
}

func Test_Thread_Job_Filter(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	jobID := "job-1"
	at := time.Now().UTC()
	scoped := disk("alice", "bob", "about the job", &jobID, at)
	req.NoError(repository.StoreMessage(scoped))
	req.NoError(repository.StoreMessage(disk("alice", "bob", "general", nil, at.Add(time.Second))))

	fetched, err := repository.MessagesBetween("alice", "bob", &jobID)
	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("about the job", fetched[0].Body)

	// No filter returns both.
	all, err := repository.MessagesBetween("alice", "bob", nil)
	req.NoError(err)
	req.Len(all, 2)
}

func Test_Messages_For_User_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(disk("alice", "bob", "oldest", nil, at)))
	req.NoError(repository.StoreMessage(disk("carol", "alice", "middle", nil, at.Add(time.Minute))))
	req.NoError(repository.StoreMessage(disk("alice", "dave", "newest", nil, at.Add(2*time.Minute))))

	fetched, err := repository.MessagesForUser("alice", nil)
	req.NoError(err)
	req.Equal([]string{"newest", "middle", "oldest"},
		lo.Map(fetched, func(m DiskMessage, _ int) string { return m.Body }))

	// Bob only sees the one thread he is part of.
	bobMessages, err := repository.MessagesForUser("bob", nil)
	req.NoError(err)
	req.Len(bobMessages, 1)
	req.Equal("oldest", bobMessages[0].Body)
}

func Test_Last_Message_Between(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	t.Run("should return nil for an empty thread", func(t *testing.T) {
		last, err := repository.LastMessageBetween("alice", "bob", nil)
		require.NoError(t, err)
		require.Nil(t, last)
	})

	jobID := "job-1"
	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(disk("alice", "bob", "first", &jobID, at)))
	req.NoError(repository.StoreMessage(disk("bob", "alice", "last scoped", &jobID, at.Add(time.Minute))))
	req.NoError(repository.StoreMessage(disk("alice", "bob", "last overall", nil, at.Add(2*time.Minute))))

	t.Run("should return the newest message of the pair", func(t *testing.T) {
		last, err := repository.LastMessageBetween("alice", "bob", nil)
		require.NoError(t, err)
		require.NotNil(t, last)
		require.Equal(t, "last overall", last.Body)
	})

	t.Run("should respect the job filter", func(t *testing.T) {
		last, err := repository.LastMessageBetween("alice", "bob", &jobID)
		require.NoError(t, err)
		require.NotNil(t, last)
		require.Equal(t, "last scoped", last.Body)
	})
}

func Test_Unread_Count_And_Mark_Read(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	jobID := "job-1"
	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(disk("bob", "alice", "one", nil, at)))
	req.NoError(repository.StoreMessage(disk("bob", "alice", "two", &jobID, at.Add(time.Second))))
	req.NoError(repository.StoreMessage(disk("alice", "bob", "mine", nil, at.Add(2*time.Second))))

	unread, err := repository.CountUnread("bob", "alice", nil)
	req.NoError(err)
	req.Equal(2, unread)

	// Scoped flip only touches the job-scoped message.
	flipped, err := repository.MarkRead("bob", "alice", &jobID)
	req.NoError(err)
	req.Equal(1, flipped)

	unread, err = repository.CountUnread("bob", "alice", nil)
	req.NoError(err)
	req.Equal(1, unread)

	// Unscoped flip catches the rest; alice's own outbound stays untouched.
	flipped, err = repository.MarkRead("bob", "alice", nil)
	req.NoError(err)
	req.Equal(1, flipped)

	unread, err = repository.CountUnread("bob", "alice", nil)
	req.NoError(err)
	req.Zero(unread)

	unreadByBob, err := repository.CountUnread("alice", "bob", nil)
	req.NoError(err)
	req.Equal(1, unreadByBob)

	t.Run("should be idempotent", func(t *testing.T) {
		flipped, err := repository.MarkRead("bob", "alice", nil)
		require.NoError(t, err)
		require.Zero(t, flipped)
	})
}

func Test_Has_Message_From(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	jobID := "job-1"
	otherJob := "job-2"
	req.NoError(repository.StoreMessage(disk("employer", "candidate", "interested?", &jobID, time.Now().UTC())))

	// Direction matters: the candidate has received, not sent.
	has, err := repository.HasMessageFrom("employer", "candidate", &jobID)
	req.NoError(err)
	req.True(has)

	has, err = repository.HasMessageFrom("candidate", "employer", &jobID)
	req.NoError(err)
	req.False(has)

	// A different job scope is a different relationship.
	has, err = repository.HasMessageFrom("employer", "candidate", &otherJob)
	req.NoError(err)
	req.False(has)

	has, err = repository.HasMessageFrom("employer", "candidate", nil)
	req.NoError(err)
	req.True(has)
}

func Test_Timestamp_Precision_Round_Trip(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	at := time.Unix(1748772000, 123456789).UTC()
	req.NoError(repository.StoreMessage(disk("alice", "bob", "precise", nil, at)))

	fetched, err := repository.MessagesBetween("alice", "bob", nil)
	req.NoError(err)
	req.Len(fetched, 1)
	req.True(fetched[0].At.Equal(at))
}
