//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"jobtalk/contract"
	"jobtalk/domain"
	"jobtalk/errors"
	"jobtalk/gate"
	"jobtalk/projection"
	"jobtalk/repositories"
)

// SendMessageCommand is a sending intent from one live connection.
type SendMessageCommand struct {
	ReceiverID    string `validate:"required"`
	Body          string `validate:"required"`
	JobID         *string
	ApplicationID *string
}

type IChatService interface {
	SendMessage(ctx context.Context, sender domain.Identity, cmd SendMessageCommand) (domain.DeliveredMessage, error)
	ListConversations(ctx context.Context, observer domain.Identity, jobID *string) ([]domain.Conversation, error)
	ListMessages(ctx context.Context, observer domain.Identity, counterpartyID string, jobID *string) ([]domain.DeliveredMessage, error)
	JobConversations(ctx context.Context, caller domain.Identity, jobID string) ([]domain.Conversation, error)
	ApplicationConversations(ctx context.Context, caller domain.Identity) ([]domain.Conversation, error)
	CanSend(ctx context.Context, observer domain.Identity, counterpartyID string, jobID *string) (bool, string, error)
}

type ChatService struct {
	log          *slog.Logger
	messages     repositories.IMessageRepository
	users        contract.UserDirectory
	jobs         contract.JobDirectory
	applications contract.ApplicationDirectory
	gate         *gate.Gate
	validate     *validator.Validate
}

func NewChatService(log *slog.Logger, messages repositories.IMessageRepository,
	users contract.UserDirectory, jobs contract.JobDirectory,
	applications contract.ApplicationDirectory, g *gate.Gate) *ChatService {
	return &ChatService{
		log:          log,
		messages:     messages,
		users:        users,
		jobs:         jobs,
		applications: applications,
		gate:         g,
		validate:     validator.New(),
	}
}

// SendMessage validates, authorizes and persists one message, then returns
// the denormalized payload for fan-out. The checks run in a fixed order and
// the first failure aborts with nothing written; the persist step is the
// last possible failure point, so a returned message is always deliverable.
func (s *ChatService) SendMessage(ctx context.Context, sender domain.Identity, cmd SendMessageCommand) (domain.DeliveredMessage, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.DeliveredMessage{}, mapFieldError(err)
	}
	// "required" accepts whitespace; the body must survive trimming, and it
	// must do so before the gate runs so a blank body never reaches it.
	if strings.TrimSpace(cmd.Body) == "" {
		return domain.DeliveredMessage{}, errors.ErrBodyRequired
	}
	if cmd.ReceiverID == sender.UserID {
		return domain.DeliveredMessage{}, errors.ErrSelfMessage
	}

	if err := s.gate.Authorize(ctx, sender, cmd.ReceiverID, cmd.JobID); err != nil {
		return domain.DeliveredMessage{}, err
	}

	message, err := domain.NewMessage(sender.UserID, cmd.ReceiverID, cmd.Body,
		cmd.JobID, cmd.ApplicationID, time.Now().UTC())
	if err != nil {
		return domain.DeliveredMessage{}, err
	}

	if err := s.messages.StoreMessage(repositories.FromMessage(message)); err != nil {
		return domain.DeliveredMessage{}, err
	}

	return s.denormalize(ctx, message), nil
}

// mapFieldError converts the validator's report into the sentinel for the
// first failing field, in declaration order.
func mapFieldError(err error) error {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrors) == 0 {
		return err
	}
	switch fieldErrors[0].Field() {
	case "ReceiverID":
		return errors.ErrReceiverRequired
	case "Body":
		return errors.ErrBodyRequired
	default:
		return err
	}
}

// ListConversations derives the observer's conversation summaries from the
// message log, optionally filtered to one job.
func (s *ChatService) ListConversations(ctx context.Context, observer domain.Identity, jobID *string) ([]domain.Conversation, error) {
	disk, err := s.messages.MessagesForUser(observer.UserID, jobID)
	if err != nil {
		return nil, err
	}
	messages := lo.Map(disk, func(item repositories.DiskMessage, _ int) domain.Message {
		return repositories.ToMessage(item)
	})

	groups := projection.Conversations(observer.UserID, messages)

	conversations := make([]domain.Conversation, 0, len(groups))
	for _, group := range groups {
		conversation := domain.Conversation{
			OtherParty:  s.userSnapshot(ctx, group.Key.CounterpartyID),
			LastMessage: lo.ToPtr(s.denormalize(ctx, group.LastMessage)),
			UnreadCount: group.UnreadCount,
		}
		if group.Key.JobID != "" {
			conversation.Job = s.jobSnapshot(ctx, group.Key.JobID)
		}
		conversations = append(conversations, conversation)
	}
	return conversations, nil
}

// ListMessages returns the full thread with one counterparty, oldest first,
// and then marks the inbound unread messages as read. The flip happens after
// the response data is captured, so the returned messages still carry their
// pre-fetch read flags.
func (s *ChatService) ListMessages(ctx context.Context, observer domain.Identity, counterpartyID string, jobID *string) ([]domain.DeliveredMessage, error) {
	disk, err := s.messages.MessagesBetween(observer.UserID, counterpartyID, jobID)
	if err != nil {
		return nil, err
	}

	delivered := lo.Map(disk, func(item repositories.DiskMessage, _ int) domain.DeliveredMessage {
		return s.denormalize(ctx, repositories.ToMessage(item))
	})

	flipped, err := s.messages.MarkRead(counterpartyID, observer.UserID, jobID)
	if err != nil {
		return nil, err
	}
	if flipped > 0 {
		s.log.Debug("marked messages as read",
			"observer", observer.UserID, "counterparty", counterpartyID, "count", flipped)
	}
	return delivered, nil
}

// JobConversations is the employer-side, job-scoped view: one conversation
// per applicant, so an application with zero messages still shows up as a
// stub with no last message and a zero unread count.
func (s *ChatService) JobConversations(ctx context.Context, caller domain.Identity, jobID string) ([]domain.Conversation, error) {
	job, err := s.jobs.GetJobSnapshot(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, errors.ErrJobNotFound
	}
	if job.EmployerID != caller.UserID && caller.Role != domain.RoleAdmin {
		return nil, errors.ErrNotJobOwner
	}

	applications, err := s.applications.ListApplicants(ctx, jobID)
	if err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(applications))
	for _, application := range applications {
		conversation, err := s.applicationConversation(ctx, caller.UserID, application.UserID, job, application)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}
	sortByRecency(conversations)
	return conversations, nil
}

// ApplicationConversations is the candidate-side counterpart: one
// conversation per application filed by the caller, with the job's employer
// as counterparty.
func (s *ChatService) ApplicationConversations(ctx context.Context, caller domain.Identity) ([]domain.Conversation, error) {
	applications, err := s.applications.ListApplications(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	conversations := make([]domain.Conversation, 0, len(applications))
	for _, application := range applications {
		job, err := s.jobs.GetJobSnapshot(ctx, application.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			// The job was deleted; without it there is no employer to talk to.
			s.log.Warn("skipping application with missing job",
				"application", application.ID, "job", application.JobID)
			continue
		}
		conversation, err := s.applicationConversation(ctx, caller.UserID, job.EmployerID, job, application)
		if err != nil {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}
	sortByRecency(conversations)
	return conversations, nil
}

func (s *ChatService) applicationConversation(ctx context.Context, callerID, counterpartyID string,
	job *domain.JobSnapshot, application domain.Application) (domain.Conversation, error) {
	last, err := s.messages.LastMessageBetween(callerID, counterpartyID, &job.ID)
	if err != nil {
		return domain.Conversation{}, err
	}
	unread, err := s.messages.CountUnread(counterpartyID, callerID, &job.ID)
	if err != nil {
		return domain.Conversation{}, err
	}

	conversation := domain.Conversation{
		OtherParty:  s.userSnapshot(ctx, counterpartyID),
		Job:         job,
		Application: lo.ToPtr(application),
		UnreadCount: unread,
	}
	if last != nil {
		conversation.LastMessage = lo.ToPtr(s.denormalize(ctx, repositories.ToMessage(*last)))
	}
	return conversation, nil
}

// sortByRecency orders by last message time, falling back to the
// application's creation time for message-less stubs.
func sortByRecency(conversations []domain.Conversation) {
	at := func(c domain.Conversation) time.Time {
		if c.LastMessage != nil {
			return c.LastMessage.CreatedAt
		}
		if c.Application != nil {
			return c.Application.CreatedAt
		}
		return time.Time{}
	}
	sort.SliceStable(conversations, func(i, j int) bool {
		return at(conversations[j]).Before(at(conversations[i]))
	})
}

// CanSend is the advisory form of the initiation gate. The boolean is
// accompanied by a human-readable reason; the gateway still re-checks at
// send time.
func (s *ChatService) CanSend(ctx context.Context, observer domain.Identity, counterpartyID string, jobID *string) (bool, string, error) {
	err := s.gate.Authorize(ctx, observer, counterpartyID, jobID)
	if err == nil {
		if observer.Role == domain.RoleJobSeeker {
			return true, "You can reply to this conversation", nil
		}
		return true, "You can send messages", nil
	}
	if errors.IsAuthorization(err) {
		return false, err.Error(), nil
	}
	return false, "", err
}

// denormalize attaches display snapshots to a persisted message. Lookup
// failures degrade to nil snapshots; the message itself is already durable
// and must still reach its audience.
func (s *ChatService) denormalize(ctx context.Context, m domain.Message) domain.DeliveredMessage {
	delivered := domain.DeliveredMessage{
		Message:  m,
		Sender:   s.userSnapshot(ctx, m.SenderID),
		Receiver: s.userSnapshot(ctx, m.ReceiverID),
	}
	if m.JobID != nil {
		delivered.Job = s.jobSnapshot(ctx, *m.JobID)
	}
	return delivered
}

func (s *ChatService) userSnapshot(ctx context.Context, userID string) *domain.UserSnapshot {
	snapshot, err := s.users.GetSnapshot(ctx, userID)
	if err != nil {
		s.log.Warn("user snapshot lookup failed", "user", userID, "error", err)
		return nil
	}
	return snapshot
}

func (s *ChatService) jobSnapshot(ctx context.Context, jobID string) *domain.JobSnapshot {
	snapshot, err := s.jobs.GetJobSnapshot(ctx, jobID)
	if err != nil {
		s.log.Warn("job snapshot lookup failed", "job", jobID, "error", err)
		return nil
	}
	return snapshot
}
