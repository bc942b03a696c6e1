package session

import (
	c "storefront/internal/core/domain/common"
	"storefront/internal/core/domain/user"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	jwt.RegisteredClaims
	Email c.Email   `json:"email"`
	Role  user.Role `json:"role"`
}

// JWT issues signed, self-contained session tokens. Issue is pure given its
// inputs, the secret and the clock; nothing is persisted.
type JWT struct {
	secretKey     []byte
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secretKey string, validDuration time.Duration, now func() time.Time) *JWT {
	return &JWT{
		secretKey:     []byte(secretKey),
		validDuration: validDuration,
		now:           now,
	}
}

func (i *JWT) Issue(u user.User) (user.SessionToken, error) {
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(int64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validDuration)),
		},
		Email: u.Email,
		Role:  u.Role,
	})

	signed, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}
	return user.SessionToken(signed), nil
}

func (i *JWT) Parse(token user.SessionToken) (sessionClaims user.SessionClaims, err error) {
	parsedClaims := &claims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		parsedClaims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return sessionClaims, user.ErrInvalidSessionToken
	}

	userID, err := strconv.ParseInt(parsedClaims.Subject, 10, 64)
	if err != nil {
		return sessionClaims, user.ErrInvalidSessionToken
	}
	return user.SessionClaims{
		UserID: user.ID(userID),
		Email:  parsedClaims.Email,
		Role:   parsedClaims.Role,
	}, nil
}
