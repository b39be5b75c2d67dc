package e2e

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"jobtalk/domain"
)

type testMessagingSuite struct {
	BaseSuite
}

func TestMessagingSuite(t *testing.T) {
	suite.Run(t, &testMessagingSuite{})
}

type messageBody struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	JobID      string `json:"jobId"`
}

type conversationBody struct {
	User        *struct{ ID string `json:"id"` } `json:"user"`
	LastMessage *messageBody                     `json:"lastMessage"`
	UnreadCount int                              `json:"unreadCount"`
}

func (s *testMessagingSuite) seedJobBoard() {
	s.Require().NoError(s.Directory.PutUser(domain.UserSnapshot{
		ID: "emp-1", Name: "Ada Recruiter", Email: "ada@acme.test", Role: domain.RoleEmployer,
	}, false))
	s.Require().NoError(s.Directory.PutUser(domain.UserSnapshot{
		ID: "cand-1", Name: "Bob Candidate", Email: "bob@mail.test", Role: domain.RoleJobSeeker,
	}, false))
	s.Require().NoError(s.Directory.PutJob(domain.JobSnapshot{
		ID: "job-1", Title: "Backend Engineer", EmployerID: "emp-1",
	}))
	s.Require().NoError(s.Directory.PutApplication(domain.Application{
		ID: "app-1", JobID: "job-1", UserID: "cand-1", Status: "pending",
		CreatedAt: time.Now().UTC(),
	}))
}

func (s *testMessagingSuite) TestEmployerInitiatesAndCandidateReplies() {
	s.seedJobBoard()
	jobID := "job-1"

	employerToken := s.Token("emp-1", domain.RoleEmployer)
	candidateToken := s.Token("cand-1", domain.RoleJobSeeker)

	employer := s.Dial(employerToken)
	defer employer.Close()
	candidate := s.Dial(candidateToken)
	defer candidate.Close()

	s.Run("Step 0: Candidate cannot start the conversation", func() {
		s.Send(candidate, "emp-1", "Hello, any news?", &jobID)

		event := s.ReadEvent(candidate)
		s.Require().Equal("error", event.Type)

		var failure struct{ Message string `json:"message"` }
		s.Require().NoError(json.Unmarshal(event.Payload, &failure))
		s.Require().Contains(failure.Message, "only reply")
	})

	s.Run("Step 1: Advisory check agrees with the gate", func() {
		var answer struct {
			Success bool   `json:"success"`
			CanSend bool   `json:"canSend"`
			Message string `json:"message"`
		}
		status := s.GetJSON("/api/chat/can-send-message/emp-1?jobId=job-1", candidateToken, &answer)
		s.Require().Equal(http.StatusOK, status)
		s.Require().True(answer.Success)
		s.Require().False(answer.CanSend)
	})

	s.Run("Step 2: Employer initiates, candidate receives in real time", func() {
		s.Send(employer, "cand-1", "Hi Bob, your profile looks great!", &jobID)

		received := s.ReadEvent(candidate)
		s.Require().Equal("receive_message", received.Type)
		var message messageBody
		s.Require().NoError(json.Unmarshal(received.Payload, &message))
		s.Require().Equal("emp-1", message.SenderID)
		s.Require().Equal("Hi Bob, your profile looks great!", message.Message)
		s.Require().False(message.Read)

		ack := s.ReadEvent(employer)
		s.Require().Equal("message_sent", ack.Type)
	})

	s.Run("Step 3: Candidate may now reply", func() {
		s.Send(candidate, "emp-1", "Thanks! Happy to talk.", &jobID)

		received := s.ReadEvent(employer)
		s.Require().Equal("receive_message", received.Type)
		var message messageBody
		s.Require().NoError(json.Unmarshal(received.Payload, &message))
		s.Require().Equal("cand-1", message.SenderID)

		ack := s.ReadEvent(candidate)
		s.Require().Equal("message_sent", ack.Type)
	})

	s.Run("Step 4: Unread count reflects the unanswered reply", func() {
		var listing struct {
			Success       bool               `json:"success"`
			Conversations []conversationBody `json:"conversations"`
		}
		status := s.GetJSON("/api/chat/conversations", employerToken, &listing)
		s.Require().Equal(http.StatusOK, status)
		s.Require().True(listing.Success)
		s.Require().Len(listing.Conversations, 1)
		s.Require().Equal("cand-1", listing.Conversations[0].User.ID)
		s.Require().Equal(1, listing.Conversations[0].UnreadCount)
		s.Require().Equal("Thanks! Happy to talk.", listing.Conversations[0].LastMessage.Message)
	})

	s.Run("Step 5: Fetching the thread marks it read", func() {
		var thread struct {
			Success  bool          `json:"success"`
			Messages []messageBody `json:"messages"`
		}
		status := s.GetJSON("/api/chat/messages/cand-1?jobId=job-1", employerToken, &thread)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Len(thread.Messages, 2)
		// Oldest first.
		s.Require().Equal("emp-1", thread.Messages[0].SenderID)
		s.Require().Equal("cand-1", thread.Messages[1].SenderID)

		var listing struct {
			Conversations []conversationBody `json:"conversations"`
		}
		s.GetJSON("/api/chat/conversations", employerToken, &listing)
		s.Require().Len(listing.Conversations, 1)
		s.Require().Zero(listing.Conversations[0].UnreadCount)
	})

	s.Run("Step 6: Job dashboard shows the applicant conversation", func() {
		var listing struct {
			Success       bool               `json:"success"`
			Conversations []conversationBody `json:"conversations"`
		}
		status := s.GetJSON("/api/chat/job/job-1/conversations", employerToken, &listing)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Len(listing.Conversations, 1)
		s.Require().Equal("cand-1", listing.Conversations[0].User.ID)
		s.Require().NotNil(listing.Conversations[0].LastMessage)

		// The candidate's side mirrors it.
		status = s.GetJSON("/api/chat/my-application-conversations", candidateToken, &listing)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Len(listing.Conversations, 1)
		s.Require().Equal("emp-1", listing.Conversations[0].User.ID)
	})

	s.Run("Step 7: Typing indicator passes through without persistence", func() {
		s.Require().NoError(candidate.WriteJSON(map[string]any{
			"type":       "typing",
			"receiverId": "emp-1",
			"isTyping":   true,
		}))

		event := s.ReadEvent(employer)
		s.Require().Equal("user_typing", event.Type)
	})
}

func (s *testMessagingSuite) TestAuthenticationGuards() {
	s.seedJobBoard()

	s.Run("should reject API calls without a token", func() {
		status := s.GetJSON("/api/chat/conversations", "", nil)
		s.Require().Equal(http.StatusUnauthorized, status)
	})

	s.Run("should reject a blocked user", func() {
		s.Require().NoError(s.Directory.PutUser(domain.UserSnapshot{
			ID: "blocked-1", Name: "Mallory", Email: "m@mail.test", Role: domain.RoleJobSeeker,
		}, true))

		token := s.Token("blocked-1", domain.RoleJobSeeker)
		status := s.GetJSON("/api/chat/conversations", token, nil)
		s.Require().Equal(http.StatusForbidden, status)
	})

	s.Run("should reject a non-owner reading a job dashboard", func() {
		s.Require().NoError(s.Directory.PutUser(domain.UserSnapshot{
			ID: "emp-2", Name: "Eve", Email: "eve@other.test", Role: domain.RoleEmployer,
		}, false))

		token := s.Token("emp-2", domain.RoleEmployer)
		status := s.GetJSON("/api/chat/job/job-1/conversations", token, nil)
		s.Require().Equal(http.StatusForbidden, status)
	})
}
