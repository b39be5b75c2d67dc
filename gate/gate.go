// Package gate decides who may create the next message in a relationship.
// The decision is evaluated per attempt as a query over the message log;
// nothing is stored. History only ever relaxes a decision, so the unfenced
// read before the subsequent append is a benign race.
package gate

import (
	"context"
	"fmt"

	"jobtalk/contract"
	"jobtalk/domain"
	"jobtalk/errors"
	"jobtalk/repositories"
)

// Policy is the per-role send rule.
type Policy interface {
	Authorize(ctx context.Context, senderID, receiverID string, jobID *string) error
}

// Gate maps each role to its policy. Employers and admins may initiate;
// job seekers may only reply.
type Gate struct {
	policies map[domain.Role]Policy
}

func New(messages repositories.IMessageRepository, applications contract.ApplicationDirectory) *Gate {
	replyOnly := &replyOnlyPolicy{messages: messages, applications: applications}
	return &Gate{
		policies: map[domain.Role]Policy{
			domain.RoleEmployer:  initiatorPolicy{},
			domain.RoleAdmin:     initiatorPolicy{},
			domain.RoleJobSeeker: replyOnly,
		},
	}
}

// Authorize returns nil when the sender may send, or the specific denial.
// Callers may use it as an advisory check, but the gateway re-evaluates it
// at send time; a cached answer is never trusted.
func (g *Gate) Authorize(ctx context.Context, sender domain.Identity, receiverID string, jobID *string) error {
	policy, ok := g.policies[sender.Role]
	if !ok {
		return fmt.Errorf("no send policy for role %q", sender.Role)
	}
	return policy.Authorize(ctx, sender.UserID, receiverID, jobID)
}

type initiatorPolicy struct{}

func (initiatorPolicy) Authorize(context.Context, string, string, *string) error {
	return nil
}

// replyOnlyPolicy allows a send only when the counterpart has already sent
// at least one message in the same relationship (same job when scoped), and,
// for job-scoped sends, when the sender has actually applied to that job.
// The application requirement deliberately applies to this role only.
type replyOnlyPolicy struct {
	messages     repositories.IMessageRepository
	applications contract.ApplicationDirectory
}

func (p *replyOnlyPolicy) Authorize(ctx context.Context, senderID, receiverID string, jobID *string) error {
	prior, err := p.messages.HasMessageFrom(receiverID, senderID, jobID)
	if err != nil {
		return err
	}
	if !prior {
		return errors.ErrReplyOnly
	}
	if jobID != nil {
		applied, err := p.applications.Exists(ctx, *jobID, senderID)
		if err != nil {
			return err
		}
		if !applied {
			return errors.ErrNoApplication
		}
	}
	return nil
}
