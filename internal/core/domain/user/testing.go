package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "storefront/internal/core/domain/common"
	"strconv"
	"strings"
	"sync"
	"time"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

// FakeResetTokenGenerator hands out the configured tokens in order and derives
// fingerprints by prefixing, so tests can predict both sides.
type FakeResetTokenGenerator struct {
	Tokens []ResetToken
	next   int
	lock   sync.Mutex
}

func NewFakeResetTokenGenerator(tokens ...string) *FakeResetTokenGenerator {
	g := &FakeResetTokenGenerator{}
	for _, t := range tokens {
		g.Tokens = append(g.Tokens, ResetToken(t))
	}
	return g
}

func (g *FakeResetTokenGenerator) GenerateToken() ResetToken {
	g.lock.Lock()
	defer g.lock.Unlock()
	if g.next >= len(g.Tokens) {
		panic("fake reset token generator is exhausted")
	}
	token := g.Tokens[g.next]
	g.next++
	return token
}

func (g *FakeResetTokenGenerator) Fingerprint(token ResetToken) ResetTokenFingerprint {
	return ResetTokenFingerprint("fingerprint::" + string(token))
}

type FakeSessionTokenIssuer struct {
	ReturnError bool
}

func NewFakeSessionTokenIssuer() *FakeSessionTokenIssuer {
	return &FakeSessionTokenIssuer{}
}

func (i *FakeSessionTokenIssuer) Issue(u User) (SessionToken, error) {
	if i.ReturnError {
		return "", fmt.Errorf("could not issue session token for user %d", u.ID)
	}
	return SessionToken(fmt.Sprintf("session::%d::%s::%s", u.ID, u.Email, u.Role)), nil
}

func (i *FakeSessionTokenIssuer) Parse(token SessionToken) (claims SessionClaims, err error) {
	parts := strings.Split(string(token), "::")
	if len(parts) != 4 || parts[0] != "session" {
		return claims, ErrInvalidSessionToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return claims, ErrInvalidSessionToken
	}
	return SessionClaims{UserID: ID(id), Email: c.Email(parts[2]), Role: Role(parts[3])}, nil
}

type FakeNotifierRecord struct {
	Email c.Email
	Name  string
	Link  string
}

type FakeNotifier struct {
	SentWelcome        []FakeNotifierRecord
	SentPasswordResets []FakeNotifierRecord
	ReturnError        bool
	lock               sync.Mutex
}

func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (n *FakeNotifier) SendWelcome(ctx context.Context, email c.Email, name string) error {
	if n.ReturnError {
		return fmt.Errorf("could not send welcome message to %s", email)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.SentWelcome = append(n.SentWelcome, FakeNotifierRecord{Email: email, Name: name})
	return nil
}

func (n *FakeNotifier) SendPasswordReset(ctx context.Context, email c.Email, resetLink string) error {
	if n.ReturnError {
		return fmt.Errorf("could not send password reset message to %s", email)
	}
	n.lock.Lock()
	defer n.lock.Unlock()
	n.SentPasswordResets = append(n.SentPasswordResets, FakeNotifierRecord{Email: email, Link: resetLink})
	return nil
}

func (n *FakeNotifier) SentCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.SentWelcome) + len(n.SentPasswordResets)
}

func (n *FakeNotifier) LastPasswordResetLink() string {
	n.lock.Lock()
	defer n.lock.Unlock()
	l := len(n.SentPasswordResets)
	if l == 0 {
		panic("no password reset messages were sent")
	}
	return n.SentPasswordResets[l-1].Link
}

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		maxID = existing.ID
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetResetToken(
	ctx context.Context,
	id ID,
	fingerprint ResetTokenFingerprint,
	expiresAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].ResetTokenFingerprint = c.NewOptional(fingerprint, true)
			r.Users[ix].ResetTokenExpiresAt = c.NewOptional(expiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByResetTokenFingerprint(
	ctx context.Context,
	fingerprint ResetTokenFingerprint,
	now time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by reset token fingerprint")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.ResetTokenFingerprint.IsPresent &&
			existing.ResetTokenFingerprint.Value == fingerprint &&
			existing.ResetTokenExpiresAt.Value.After(now) {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordAndClearResetToken(
	ctx context.Context,
	id ID,
	fingerprint ResetTokenFingerprint,
	password PasswordHash,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id &&
			r.Users[ix].ResetTokenFingerprint.IsPresent &&
			r.Users[ix].ResetTokenFingerprint.Value == fingerprint {
			r.Users[ix].PasswordHash = password
			r.Users[ix].ResetTokenFingerprint = c.Optional[ResetTokenFingerprint]{}
			r.Users[ix].ResetTokenExpiresAt = c.Optional[time.Time]{}
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByID(id ID) (u User, ok bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.ID == id {
			return existing, true
		}
	}
	return u, false
}
