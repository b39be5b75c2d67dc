package auth

import (
	"context"

	"jobtalk/contract"
	"jobtalk/domain"
	"jobtalk/errors"
)

// TokenProvider resolves JWT credentials against the live user directory.
// The role is taken from the directory, not the token, so a role change or
// a block takes effect on the next connection rather than at token expiry.
type TokenProvider struct {
	secret []byte
	users  contract.UserDirectory
}

func NewTokenProvider(secret []byte, users contract.UserDirectory) *TokenProvider {
	return &TokenProvider{secret: secret, users: users}
}

func (p *TokenProvider) ResolveCredential(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.ErrTokenMissing
	}

	claims, err := ValidateToken(p.secret, token)
	if err != nil {
		return domain.Identity{}, errors.ErrTokenInvalid
	}

	snapshot, err := p.users.GetSnapshot(ctx, claims.UserID)
	if err != nil {
		return domain.Identity{}, err
	}
	if snapshot == nil {
		return domain.Identity{}, errors.ErrTokenInvalid
	}

	blocked, err := p.users.IsBlocked(ctx, claims.UserID)
	if err != nil {
		return domain.Identity{}, err
	}

	return domain.Identity{
		UserID:  snapshot.ID,
		Role:    snapshot.Role,
		Blocked: blocked,
	}, nil
}
