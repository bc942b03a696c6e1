package user

import (
	"fmt"
	c "storefront/internal/core/domain/common"
	e "storefront/internal/core/domain/errors"
	"time"
)

type ID int64

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// ResetToken is the raw one-time secret handed to the end user. It is never
// persisted and never logged, only its Fingerprint is.
type ResetToken string

func (t ResetToken) String() string {
	return "***"
}

// ResetTokenFingerprint is the deterministic one-way digest of a ResetToken,
// stored on the user record for later lookup.
type ResetTokenFingerprint string

// SessionToken is a signed, self-contained identity assertion. It is not
// persisted; validity is established by signature and expiry alone.
type SessionToken string

type User struct {
	ID                    ID
	Email                 c.Email
	Name                  string
	PasswordHash          PasswordHash
	Role                  Role
	ResetTokenFingerprint c.Optional[ResetTokenFingerprint]
	ResetTokenExpiresAt   c.Optional[time.Time]
	CreatedAt             time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if u.ResetTokenFingerprint.IsPresent != u.ResetTokenExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("reset token fingerprint and expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

// HasLiveResetToken reports whether the stored reset token fingerprint may
// still authorize a password change at the given moment.
func (u *User) HasLiveResetToken(now time.Time) bool {
	return u.ResetTokenFingerprint.IsPresent &&
		u.ResetTokenExpiresAt.IsPresent &&
		u.ResetTokenExpiresAt.Value.After(now)
}
