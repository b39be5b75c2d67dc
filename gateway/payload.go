package gateway

import (
	"time"

	"jobtalk/domain"
)

// Wire shapes for events and query responses. Field names follow the
// client-facing protocol, not the Go domain names.

type PartyPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type JobPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ApplicationPayload struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessagePayload struct {
	ID            string        `json:"id"`
	SenderID      string        `json:"senderId"`
	Sender        *PartyPayload `json:"sender"`
	ReceiverID    string        `json:"receiverId"`
	Receiver      *PartyPayload `json:"receiver"`
	Message       string        `json:"message"`
	JobID         *string       `json:"jobId,omitempty"`
	Job           *JobPayload   `json:"job,omitempty"`
	ApplicationID *string       `json:"applicationId,omitempty"`
	Read          bool          `json:"read"`
	CreatedAt     time.Time     `json:"createdAt"`
}

type ConversationPayload struct {
	User        *PartyPayload       `json:"user"`
	Job         *JobPayload         `json:"job,omitempty"`
	Application *ApplicationPayload `json:"application,omitempty"`
	LastMessage *MessagePayload     `json:"lastMessage"`
	UnreadCount int                 `json:"unreadCount"`
}

type TypingPayload struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func toPartyPayload(snapshot *domain.UserSnapshot) *PartyPayload {
	if snapshot == nil {
		return nil
	}
	return &PartyPayload{
		ID:    snapshot.ID,
		Name:  snapshot.Name,
		Email: snapshot.Email,
		Role:  string(snapshot.Role),
	}
}

func toJobPayload(snapshot *domain.JobSnapshot) *JobPayload {
	if snapshot == nil {
		return nil
	}
	return &JobPayload{ID: snapshot.ID, Title: snapshot.Title}
}

func toApplicationPayload(application *domain.Application) *ApplicationPayload {
	if application == nil {
		return nil
	}
	return &ApplicationPayload{
		ID:        application.ID,
		Status:    application.Status,
		CreatedAt: application.CreatedAt,
	}
}

func toMessagePayload(m domain.DeliveredMessage) MessagePayload {
	return MessagePayload{
		ID:            m.ID.String(),
		SenderID:      m.SenderID,
		Sender:        toPartyPayload(m.Sender),
		ReceiverID:    m.ReceiverID,
		Receiver:      toPartyPayload(m.Receiver),
		Message:       m.Body,
		JobID:         m.JobID,
		Job:           toJobPayload(m.Job),
		ApplicationID: m.ApplicationID,
		Read:          m.Read,
		CreatedAt:     m.CreatedAt,
	}
}

func toConversationPayload(c domain.Conversation) ConversationPayload {
	payload := ConversationPayload{
		User:        toPartyPayload(c.OtherParty),
		Job:         toJobPayload(c.Job),
		Application: toApplicationPayload(c.Application),
		UnreadCount: c.UnreadCount,
	}
	if c.LastMessage != nil {
		message := toMessagePayload(*c.LastMessage)
		payload.LastMessage = &message
	}
	return payload
}
