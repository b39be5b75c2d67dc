package gateway

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"jobtalk/auth"
	"jobtalk/domain"
	"jobtalk/errors"
	"jobtalk/services"
)

// API exposes the query operations over HTTP. All handlers run behind the
// auth middleware, so the identity is always present.
type API struct {
	log  *slog.Logger
	chat services.IChatService
}

func NewAPI(log *slog.Logger, chat services.IChatService) *API {
	return &API{log: log, chat: chat}
}

// optionalJobID reads the jobId query parameter; absence means the caller
// wants job-independent and job-scoped threads alike.
func optionalJobID(c *gin.Context) *string {
	if jobID := c.Query("jobId"); jobID != "" {
		return &jobID
	}
	return nil
}

func (a *API) fail(c *gin.Context, err error) {
	c.JSON(errors.MapToHTTPStatus(err), gin.H{"message": err.Error()})
}

// ListConversations returns the caller's conversation summaries, most
// recent first.
func (a *API) ListConversations(c *gin.Context) {
	identity, _ := auth.IdentityFrom(c)

	conversations, err := a.chat.ListConversations(c.Request.Context(), identity, optionalJobID(c))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success":       true,
		"conversations": lo.Map(conversations, toConversation),
	})
}

// ListMessages returns the full thread with one counterparty, oldest first,
// and marks the inbound messages as read as a side effect.
func (a *API) ListMessages(c *gin.Context) {
	identity, _ := auth.IdentityFrom(c)
	counterpartyID := c.Param("userId")

	messages, err := a.chat.ListMessages(c.Request.Context(), identity, counterpartyID, optionalJobID(c))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success": true,
		"messages": lo.Map(messages, func(m domain.DeliveredMessage, _ int) MessagePayload {
			return toMessagePayload(m)
		}),
	})
}

// JobConversations returns one conversation per applicant of a job the
// caller owns.
func (a *API) JobConversations(c *gin.Context) {
	identity, _ := auth.IdentityFrom(c)
	jobID := c.Param("jobId")

	conversations, err := a.chat.JobConversations(c.Request.Context(), identity, jobID)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success":       true,
		"conversations": lo.Map(conversations, toConversation),
	})
}

// ApplicationConversations returns one conversation per application filed
// by the caller.
func (a *API) ApplicationConversations(c *gin.Context) {
	identity, _ := auth.IdentityFrom(c)

	conversations, err := a.chat.ApplicationConversations(c.Request.Context(), identity)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success":       true,
		"conversations": lo.Map(conversations, toConversation),
	})
}

// CanSend is the advisory initiation gate check.
func (a *API) CanSend(c *gin.Context) {
	identity, _ := auth.IdentityFrom(c)
	counterpartyID := c.Param("userId")

	allowed, reason, err := a.chat.CanSend(c.Request.Context(), identity, counterpartyID, optionalJobID(c))
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"success": true,
		"canSend": allowed,
		"message": reason,
	})
}

func toConversation(c domain.Conversation, _ int) ConversationPayload {
	return toConversationPayload(c)
}
