// Package projection derives read models from the message log.
// It never mutates messages and never talks to storage directly.
package projection

import (
	"sort"

	"jobtalk/domain"
)

// Group is one conversation summary before snapshot resolution.
type Group struct {
	Key         domain.ConversationKey
	LastMessage domain.Message
	UnreadCount int
}

// Conversations groups an observer's messages into per-(counterparty, job)
// summaries.
//
// The algorithm sorts descending by (CreatedAt, ID) and then takes the first
// message seen per group as its last message: a first-wins reduction over
// the sorted sequence, not a scan per group. Unread counts only ever count
// messages addressed to the observer. The returned order is group insertion
// order, which after the descending sort equals "most recent conversation
// first".
func Conversations(observerID string, messages []domain.Message) []Group {
	sorted := make([]domain.Message, len(messages))
	copy(sorted, messages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Before(sorted[i])
	})

	index := make(map[domain.ConversationKey]int)
	var groups []Group
	for _, m := range sorted {
		key := domain.ConversationKey{CounterpartyID: m.CounterpartyOf(observerID)}
		if m.JobID != nil {
			key.JobID = *m.JobID
		}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, LastMessage: m})
		}
		if m.ReceiverID == observerID && !m.Read {
			groups[i].UnreadCount++
		}
	}
	return groups
}
