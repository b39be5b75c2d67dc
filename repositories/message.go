//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"jobtalk/domain"
)

// IMessageRepository is the append-only message log. Messages are never
// deleted; the only permitted mutation is the false->true read flip done by
// MarkRead.
type IMessageRepository interface {
	StoreMessage(message DiskMessage) error
	MessagesBetween(userA, userB string, jobID *string) ([]DiskMessage, error)
	MessagesForUser(userID string, jobID *string) ([]DiskMessage, error)
	LastMessageBetween(userA, userB string, jobID *string) (*DiskMessage, error)
	CountUnread(senderID, receiverID string, jobID *string) (int, error)
	MarkRead(senderID, receiverID string, jobID *string) (int, error)
	HasMessageFrom(senderID, receiverID string, jobID *string) (bool, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// DiskMessage is the repository-layer representation of a chat message.
type DiskMessage struct {
	ID            uuid.UUID
	SenderID      string
	ReceiverID    string
	Body          string
	JobID         *string
	ApplicationID *string
	Read          bool
	At            time.Time
}

// diskRecord is the CBOR shape written to disk. Timestamps are stored as
// UnixNano so the value round-trips without precision loss.
type diskRecord struct {
	ID            string  `cbor:"id"`
	SenderID      string  `cbor:"sender_id"`
	ReceiverID    string  `cbor:"receiver_id"`
	Body          string  `cbor:"body"`
	JobID         *string `cbor:"job_id,omitempty"`
	ApplicationID *string `cbor:"application_id,omitempty"`
	Read          bool    `cbor:"read"`
	At            int64   `cbor:"at"`
}

// pairKey normalizes the two endpoints so both directions of a relationship
// share the same key prefix.
func pairKey(a, b string) string {
	if a < b {
		return a + "|" + b
	}
	return b + "|" + a
}

// messageKey formats the primary key as "msg:{pair}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
func messageKey(message DiskMessage) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s",
		pairKey(message.SenderID, message.ReceiverID),
		message.At.UnixNano(),
		message.ID,
	))
}

// userIndexKey formats the secondary index "usr:{user}:{timestamp_padded}:{uuid}".
// One entry per endpoint; the value is the primary key.
func userIndexKey(userID string, message DiskMessage) []byte {
	return []byte(fmt.Sprintf("usr:%s:%019d:%s", userID, message.At.UnixNano(), message.ID))
}

func pairPrefix(a, b string) []byte {
	return []byte(fmt.Sprintf("msg:%s:", pairKey(a, b)))
}

func userPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("usr:%s:", userID))
}

// seekEnd positions a reverse iterator past the newest entry of a prefix.
// Padded timestamps are all 19 digits, so 19 nines compare greater than any
// real key suffix.
func seekEnd(prefix []byte) []byte {
	return append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
}

// jobMatches applies the optional job filter. A nil filter accepts every
// message; a non-nil filter accepts only messages scoped to that exact job.
func jobMatches(filter, recordJob *string) bool {
	if filter == nil {
		return true
	}
	return recordJob != nil && *recordJob == *filter
}

// StoreMessage persists a message and its two per-user index entries in one
// transaction.
func (m MessageRepository) StoreMessage(message DiskMessage) error {
	bytes, err := cbor.Marshal(fromDiskMessage(message))
	if err != nil {
		return err
	}
	key := messageKey(message)
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		if err := txn.Set(userIndexKey(message.SenderID, message), key); err != nil {
			return err
		}
		return txn.Set(userIndexKey(message.ReceiverID, message), key)
	})
}

// MessagesBetween returns the full thread between two users, oldest first.
// Thanks to the padded timestamp in the key, messages are naturally sorted
// by time.
func (m MessageRepository) MessagesBetween(userA, userB string, jobID *string) ([]DiskMessage, error) {
	var messages []DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := pairPrefix(userA, userB)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if jobMatches(jobID, message.JobID) {
				messages = append(messages, message)
			}
		}
		return nil
	})
	return messages, err
}

// MessagesForUser returns every message where the user is either endpoint,
// newest first, via a reverse scan of the secondary index.
func (m MessageRepository) MessagesForUser(userID string, jobID *string) ([]DiskMessage, error) {
	var messages []DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := userPrefix(userID)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seekEnd(prefix)); it.ValidForPrefix(prefix); it.Next() {
			var primaryKey []byte
			if err := it.Item().Value(func(val []byte) error {
				primaryKey = append([]byte{}, val...)
				return nil
			}); err != nil {
				return err
			}
			item, err := txn.Get(primaryKey)
			if err != nil {
				return err
			}
			message, err := decodeItem(item)
			if err != nil {
				return err
			}
			if jobMatches(jobID, message.JobID) {
				messages = append(messages, message)
			}
		}
		return nil
	})
	return messages, err
}

// LastMessageBetween returns the most recent message of a thread, or nil
// when the thread is empty.
func (m MessageRepository) LastMessageBetween(userA, userB string, jobID *string) (*DiskMessage, error) {
	var last *DiskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := pairPrefix(userA, userB)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(seekEnd(prefix)); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if jobMatches(jobID, message.JobID) {
				last = &message
				return nil
			}
		}
		return nil
	})
	return last, err
}

// CountUnread counts messages from senderID to receiverID that the receiver
// has not read yet.
func (m MessageRepository) CountUnread(senderID, receiverID string, jobID *string) (int, error) {
	count := 0
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := pairPrefix(senderID, receiverID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if message.SenderID == senderID && message.ReceiverID == receiverID &&
				!message.Read && jobMatches(jobID, message.JobID) {
				count++
			}
		}
		return nil
	})
	return count, err
}

// MarkRead flips read=false to read=true on every message from senderID to
// receiverID (matching jobID when given) and returns the number of rows
// flipped. Messages sent by the caller are never touched; the flip is
// monotonic and runs in a single transaction.
func (m MessageRepository) MarkRead(senderID, receiverID string, jobID *string) (int, error) {
	count := 0
	err := m.db.Update(func(txn *badger.Txn) error {
		prefix := pairPrefix(senderID, receiverID)
		type pending struct {
			key    []byte
			record diskRecord
		}
		var updates []pending

		it := txn.NewIterator(badger.DefaultIteratorOptions)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var record diskRecord
			if err := item.Value(func(val []byte) error {
				return cbor.Unmarshal(val, &record)
			}); err != nil {
				it.Close()
				return err
			}
			if record.SenderID == senderID && record.ReceiverID == receiverID &&
				!record.Read && jobMatches(jobID, record.JobID) {
				record.Read = true
				updates = append(updates, pending{key: item.KeyCopy(nil), record: record})
			}
		}
		it.Close()

		for _, u := range updates {
			bytes, err := cbor.Marshal(u.record)
			if err != nil {
				return err
			}
			if err := txn.Set(u.key, bytes); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasMessageFrom reports whether at least one message from senderID to
// receiverID exists, matching jobID when given. The initiation gate relies
// on this to decide whether a reply-only sender may answer.
func (m MessageRepository) HasMessageFrom(senderID, receiverID string, jobID *string) (bool, error) {
	found := false
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := pairPrefix(senderID, receiverID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			message, err := decodeItem(it.Item())
			if err != nil {
				return err
			}
			if message.SenderID == senderID && message.ReceiverID == receiverID &&
				jobMatches(jobID, message.JobID) {
				found = true
				return nil
			}
		}
		return nil
	})
	return found, err
}

func decodeItem(item *badger.Item) (DiskMessage, error) {
	var record diskRecord
	if err := item.Value(func(val []byte) error {
		return cbor.Unmarshal(val, &record)
	}); err != nil {
		return DiskMessage{}, err
	}
	return toDiskMessage(record)
}

func fromDiskMessage(message DiskMessage) diskRecord {
	return diskRecord{
		ID:            message.ID.String(),
		SenderID:      message.SenderID,
		ReceiverID:    message.ReceiverID,
		Body:          message.Body,
		JobID:         message.JobID,
		ApplicationID: message.ApplicationID,
		Read:          message.Read,
		At:            message.At.UnixNano(),
	}
}

func toDiskMessage(record diskRecord) (DiskMessage, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return DiskMessage{}, err
	}
	return DiskMessage{
		ID:            parsedID,
		SenderID:      record.SenderID,
		ReceiverID:    record.ReceiverID,
		Body:          record.Body,
		JobID:         record.JobID,
		ApplicationID: record.ApplicationID,
		Read:          record.Read,
		At:            time.Unix(0, record.At).UTC(),
	}, nil
}

// FromMessage converts a domain message for storage.
func FromMessage(m domain.Message) DiskMessage {
	return DiskMessage{
		ID:            m.ID,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		Body:          m.Body,
		JobID:         m.JobID,
		ApplicationID: m.ApplicationID,
		Read:          m.Read,
		At:            m.CreatedAt,
	}
}

// ToMessage converts a stored message back into its domain shape.
func ToMessage(d DiskMessage) domain.Message {
	return domain.Message{
		ID:            d.ID,
		SenderID:      d.SenderID,
		ReceiverID:    d.ReceiverID,
		Body:          d.Body,
		JobID:         d.JobID,
		ApplicationID: d.ApplicationID,
		Read:          d.Read,
		CreatedAt:     d.At,
	}
}
