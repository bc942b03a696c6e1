package user

import (
	"context"
	c "storefront/internal/core/domain/common"
)

type ResetTokenGenerator interface {
	// GenerateToken returns a fresh high-entropy opaque token.
	GenerateToken() ResetToken
	// Fingerprint derives the stored digest of a token. Deterministic: the
	// same token always yields the same fingerprint.
	Fingerprint(token ResetToken) ResetTokenFingerprint
}

type SessionClaims struct {
	UserID ID
	Email  c.Email
	Role   Role
}

type SessionTokenIssuer interface {
	Issue(u User) (SessionToken, error)
	// Parse verifies the signature and expiry of a token and yields the
	// embedded claims. Returns ErrInvalidSessionToken on any failure.
	Parse(token SessionToken) (SessionClaims, error)
}

type Notifier interface {
	SendWelcome(ctx context.Context, email c.Email, name string) error
	SendPasswordReset(ctx context.Context, email c.Email, resetLink string) error
}
