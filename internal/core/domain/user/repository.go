package user

import (
	"context"
	c "storefront/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         string
	PasswordHash PasswordHash
	Role         Role
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)

	// SetResetToken overwrites the stored fingerprint/expiry pair, superseding
	// any previously issued reset token for the user.
	SetResetToken(ctx context.Context, id ID, fingerprint ResetTokenFingerprint, expiresAt time.Time) error

	// GetByResetTokenFingerprint returns the user whose stored fingerprint
	// equals the given one and whose expiry is strictly after now, in a single
	// read. Returns ErrUserDoesNotExist otherwise.
	GetByResetTokenFingerprint(ctx context.Context, fingerprint ResetTokenFingerprint, now time.Time) (User, error)

	// SetPasswordAndClearResetToken updates the password hash and clears the
	// fingerprint/expiry pair in one conditional write that only applies while
	// the stored fingerprint still equals the given one. Returns
	// ErrUserDoesNotExist if the condition no longer holds, so concurrent
	// redemptions of the same token cannot both succeed.
	SetPasswordAndClearResetToken(ctx context.Context, id ID, fingerprint ResetTokenFingerprint, password PasswordHash) error
}
