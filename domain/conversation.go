package domain

// ConversationKey identifies one conversation group from an observer's point
// of view. JobID is empty for job-independent threads; two threads between
// the same pair of users with different jobs are never merged.
type ConversationKey struct {
	CounterpartyID string
	JobID          string
}

// Conversation is a derived summary of all messages between the observer and
// one counterparty, optionally scoped to one job. It is computed fresh on
// every query and never stored.
//
// OtherParty and Job may be nil when the referenced entity no longer
// resolves; the conversation is still returned.
type Conversation struct {
	OtherParty  *UserSnapshot
	Job         *JobSnapshot
	Application *Application
	LastMessage *DeliveredMessage
	UnreadCount int
}

// DeliveredMessage is a message enriched with denormalized snapshots of its
// endpoints and job. It is the payload fanned out to live connections and
// returned by the query operations.
type DeliveredMessage struct {
	Message
	Sender   *UserSnapshot
	Receiver *UserSnapshot
	Job      *JobSnapshot
}
