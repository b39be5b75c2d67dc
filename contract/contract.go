//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"jobtalk/domain"
	"jobtalk/domain/event"
)

// IdentityProvider resolves a connection credential into a user identity.
// Identity issuance itself lives outside this system.
type IdentityProvider interface {
	ResolveCredential(ctx context.Context, token string) (domain.Identity, error)
}

// UserDirectory exposes the user records owned by the job-board system.
// GetSnapshot returns (nil, nil) when the user no longer exists.
type UserDirectory interface {
	GetSnapshot(ctx context.Context, userID string) (*domain.UserSnapshot, error)
	IsBlocked(ctx context.Context, userID string) (bool, error)
}

// JobDirectory exposes the job records owned by the job-board system.
// GetJobSnapshot returns (nil, nil) when the job no longer exists.
type JobDirectory interface {
	GetJobSnapshot(ctx context.Context, jobID string) (*domain.JobSnapshot, error)
}

// ApplicationDirectory exposes the application records owned by the
// job-board system.
type ApplicationDirectory interface {
	Exists(ctx context.Context, jobID, userID string) (bool, error)
	ListApplicants(ctx context.Context, jobID string) ([]domain.Application, error)
	ListApplications(ctx context.Context, userID string) ([]domain.Application, error)
}

// EventSink is one live connection's inbox. Consume must not block the
// caller beyond the context: fan-out to one slow connection must never stall
// delivery to the others.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}
