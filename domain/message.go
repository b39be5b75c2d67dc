// Package domain contains core concepts of the messaging system.
// This file defines the chat message and its creation rules.
// Messages are immutable once persisted; only the read flag may flip,
// and only from false to true.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtalk/errors"
)

// Message represents one entry of the append-only message log.
type Message struct {
	ID            uuid.UUID // unique identifier, assigned at creation
	SenderID      string
	ReceiverID    string
	Body          string
	JobID         *string // nil for job-independent messages
	ApplicationID *string
	Read          bool
	CreatedAt     time.Time
}

// NewMessage validates and builds a message. The body is trimmed before the
// emptiness check. Sender and receiver must be two distinct users.
func NewMessage(senderID, receiverID, body string, jobID, applicationID *string, at time.Time) (Message, error) {
	if senderID == "" {
		return Message{}, errors.ErrSenderRequired
	}
	if receiverID == "" {
		return Message{}, errors.ErrReceiverRequired
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, errors.ErrBodyRequired
	}
	if senderID == receiverID {
		return Message{}, errors.ErrSelfMessage
	}
	return Message{
		ID:            uuid.New(),
		SenderID:      senderID,
		ReceiverID:    receiverID,
		Body:          body,
		JobID:         jobID,
		ApplicationID: applicationID,
		Read:          false,
		CreatedAt:     at.UTC(),
	}, nil
}

// Before orders messages by (CreatedAt, ID). The ID tie-break keeps the
// order total when two messages share a timestamp.
func (m Message) Before(other Message) bool {
	if m.CreatedAt.Equal(other.CreatedAt) {
		return m.ID.String() < other.ID.String()
	}
	return m.CreatedAt.Before(other.CreatedAt)
}

// CounterpartyOf returns the endpoint of the message that is not the
// observer.
func (m Message) CounterpartyOf(observerID string) string {
	if m.SenderID == observerID {
		return m.ReceiverID
	}
	return m.SenderID
}
