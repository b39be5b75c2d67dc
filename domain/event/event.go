// Package event defines the events fanned out to live connections.
package event

import "jobtalk/domain"

// DomainEvent is delivered to connection sinks. Name is the protocol event
// name written on the wire.
type DomainEvent interface {
	Name() string
}

// MessageReceived is delivered to every live connection of the receiver.
type MessageReceived struct {
	Message domain.DeliveredMessage
}

func (MessageReceived) Name() string { return "receive_message" }

// MessageSent acknowledges a send on the issuing connection only.
type MessageSent struct {
	Message domain.DeliveredMessage
}

func (MessageSent) Name() string { return "message_sent" }

// DeliveryError reports a failed send to the issuing connection only.
type DeliveryError struct {
	Reason string
}

func (DeliveryError) Name() string { return "error" }

// TypingNotified relays a typing indicator to the receiver's connections.
// Ephemeral, best-effort, never persisted.
type TypingNotified struct {
	UserID   string
	IsTyping bool
}

func (TypingNotified) Name() string { return "user_typing" }
